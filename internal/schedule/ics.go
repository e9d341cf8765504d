package schedule

import (
	"fmt"
	"io"
	"strings"

	ical "github.com/arran4/golang-ical"

	"gitglyph/internal/model"
)

// WriteICS serializes the schedule as an iCalendar feed, one event per
// commit, so the backdated history can be reviewed in a calendar app
// before anything is created.
func WriteICS(w io.Writer, word string, events []model.Event, intensity int) error {
	if intensity < 1 {
		intensity = 1
	}
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//gitglyph//schedule//EN")
	slug := strings.ReplaceAll(strings.ToLower(word), " ", "-")
	for _, ev := range events {
		e := cal.AddEvent(fmt.Sprintf("%s-c%dr%d-%d@gitglyph", slug, ev.Col, ev.Row, ev.Seq))
		e.SetDtStampTime(ev.Time)
		e.SetStartAt(ev.Time)
		e.SetEndAt(ev.Time.Add(step))
		e.SetSummary(Message(ev, intensity))
	}
	return cal.SerializeTo(w)
}
