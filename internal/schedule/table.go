package schedule

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gitglyph/internal/model"
)

// RenderPlan prints one line per pixel with its commit date and record
// count, followed by a totals line.
func RenderPlan(w io.Writer, events []model.Event, intensity int) error {
	if intensity < 1 {
		intensity = 1
	}
	var rows [][]string
	for _, ev := range events {
		if ev.Seq != 0 {
			continue
		}
		rows = append(rows, []string{
			ev.Time.Format("2006-01-02"),
			fmt.Sprintf("%d", ev.Col),
			fmt.Sprintf("%d", ev.Row),
			fmt.Sprintf("%d", intensity),
		})
	}
	headers := []string{"date", "col", "row", "commits"}
	rightAlign := map[int]bool{1: true, 2: true, 3: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d pixels, %d commits\n", len(rows), len(events))
	return err
}

// formatTable pads every column to the widest cell it holds. Rows are
// assumed to have one cell per header.
func formatTable(headers []string, rows [][]string, rightAlign map[int]bool) []string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := utf8.RuneCountInString(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths, rightAlign))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlign))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlign map[int]bool) string {
	var b strings.Builder
	for i, cell := range row {
		if i > 0 {
			b.WriteByte(' ')
		}
		pad := widths[i] - utf8.RuneCountInString(cell)
		if pad < 0 {
			pad = 0
		}
		if rightAlign[i] {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}
