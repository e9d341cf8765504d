// Package preview renders the contribution grid to the terminal.
package preview

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"gitglyph/internal/calendar"
	"gitglyph/internal/grid"
	"gitglyph/internal/model"
)

const (
	litCell             = '#'
	emptyCell           = '.'
	gutterWidth         = 3
	colorLit            = "\x1b[32m"
	colorDim            = "\x1b[90m"
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

var dayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Render prints the placed word as a contribution grid: a month-label
// header and one row per weekday, one cell per week column.
func Render(w io.Writer, r model.Rendering, p model.Placement, weekZero time.Time, cellWidth int, forceColor bool) error {
	if cellWidth < 1 {
		cellWidth = 1
	}
	var marks [7][grid.Weeks]bool
	for _, px := range r.Pixels {
		col := px.Col + p.Effective
		if col >= 0 && col < grid.Weeks {
			marks[px.Row][col] = true
		}
	}

	useColor := shouldUseColor(w, forceColor)
	if _, err := fmt.Fprintln(w, monthHeader(weekZero, cellWidth)); err != nil {
		return err
	}
	lit := strings.Repeat(string(litCell), cellWidth)
	empty := strings.Repeat(string(emptyCell), cellWidth)
	for row := 0; row < 7; row++ {
		var b strings.Builder
		b.WriteString(dayNames[row])
		b.WriteByte(' ')
		for col := 0; col < grid.Weeks; col++ {
			switch {
			case marks[row][col] && useColor:
				b.WriteString(colorLit + lit + colorReset)
			case marks[row][col]:
				b.WriteString(lit)
			case useColor:
				b.WriteString(colorDim + empty + colorReset)
			default:
				b.WriteString(empty)
			}
		}
		if _, err := fmt.Fprintln(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// monthHeader labels the columns where a new month begins, skipping
// labels that would collide with the previous one.
func monthHeader(weekZero time.Time, cellWidth int) string {
	cells := make([]byte, grid.Weeks*cellWidth)
	for i := range cells {
		cells[i] = ' '
	}
	lastEnd := 0
	prevMonth := time.Month(0)
	for col := 0; col < grid.Weeks; col++ {
		d := calendar.DateFor(weekZero, col, 0)
		if d.Month() != prevMonth {
			label := d.Format("Jan")
			pos := col * cellWidth
			if pos >= lastEnd && pos+len(label) <= len(cells) {
				copy(cells[pos:], label)
				lastEnd = pos + len(label) + 1
			}
		}
		prevMonth = d.Month()
	}
	return strings.Repeat(" ", gutterWidth+1) + strings.TrimRight(string(cells), " ")
}

// CellWidthFor picks a cell width that fits the whole grid within
// totalWidth, preferring 2-column cells.
func CellWidthFor(totalWidth int) int {
	if totalWidth >= gutterWidth+1+grid.Weeks*2 {
		return 2
	}
	return 1
}

// AutoCellWidth probes the terminal for the cell width to use.
func AutoCellWidth() int {
	return CellWidthFor(terminalWidth())
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
