// Package schedule expands placed pixels into an ordered sequence of
// dated commit events and replays them against a recorder.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"gitglyph/internal/calendar"
	"gitglyph/internal/model"
)

// Commits for a pixel start at midday so the stamped day is stable
// across timezones; each repeat advances one minute, which keeps the
// whole sequence strictly increasing without leaving the calendar day.
const (
	baselineHour = 12
	step         = time.Minute
)

// Build expands pixels into one event per intensity repeat, ordered by
// (column, row): earlier calendar weeks first, earlier weekdays within
// a week first. offsetCols shifts the dates right; the events keep the
// rendering coordinates. Intensity below 1 is treated as 1.
func Build(pixels []model.Pixel, weekZero time.Time, offsetCols, intensity int) []model.Event {
	if intensity < 1 {
		intensity = 1
	}
	sorted := make([]model.Pixel, len(pixels))
	copy(sorted, pixels)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Col != sorted[j].Col {
			return sorted[i].Col < sorted[j].Col
		}
		return sorted[i].Row < sorted[j].Row
	})

	events := make([]model.Event, 0, len(sorted)*intensity)
	for _, p := range sorted {
		day := calendar.DateFor(weekZero, p.Col+offsetCols, p.Row)
		baseline := time.Date(day.Year(), day.Month(), day.Day(), baselineHour, 0, 0, 0, day.Location())
		for k := 0; k < intensity; k++ {
			events = append(events, model.Event{
				Time: baseline.Add(time.Duration(k) * step),
				Col:  p.Col,
				Row:  p.Row,
				Seq:  k,
			})
		}
	}
	return events
}

// Message returns the commit message for ev.
func Message(ev model.Event, intensity int) string {
	return fmt.Sprintf("pixel col=%d row=%d [%d/%d]", ev.Col, ev.Row, ev.Seq+1, intensity)
}

// ArtifactLine returns the line appended to the working-tree artifact
// for ev.
func ArtifactLine(ev model.Event) string {
	return fmt.Sprintf("%s col=%d row=%d", ev.Time.Format(time.RFC3339), ev.Col, ev.Row)
}

// Recorder creates the dated change records. gitrepo.Repo implements
// it against a real repository; tests substitute fakes.
type Recorder interface {
	AppendArtifact(line string) error
	CreateRecord(message string, stamp time.Time) error
}

// Execute replays events against rec in order, appending the artifact
// line and then creating the record for each one. The first failure
// aborts the run with the count of fully recorded events; nothing is
// retried or rolled back, cleanup is left to version-control tooling.
func Execute(events []model.Event, intensity int, rec Recorder) (int, error) {
	if intensity < 1 {
		intensity = 1
	}
	made := 0
	for _, ev := range events {
		if err := rec.AppendArtifact(ArtifactLine(ev)); err != nil {
			return made, fmt.Errorf("failed to append artifact line: %w", err)
		}
		if err := rec.CreateRecord(Message(ev, intensity), ev.Time); err != nil {
			return made, fmt.Errorf("failed to create record: %w", err)
		}
		made++
	}
	return made, nil
}
