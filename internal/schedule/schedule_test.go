package schedule

import (
	"fmt"
	"testing"
	"time"

	"gitglyph/internal/model"
)

var weekZero = time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)

func TestBuildOrdersPixels(t *testing.T) {
	pixels := []model.Pixel{{Col: 2, Row: 1}, {Col: 0, Row: 3}, {Col: 0, Row: 0}, {Col: 1, Row: 6}}
	events := Build(pixels, weekZero, 0, 3)

	if len(events) != len(pixels)*3 {
		t.Fatalf("event count %d, want %d", len(events), len(pixels)*3)
	}
	for i := 1; i < len(events); i++ {
		if !events[i].Time.After(events[i-1].Time) {
			t.Fatalf("timestamps not strictly increasing at %d: %v then %v",
				i, events[i-1].Time, events[i].Time)
		}
	}
	first := events[0]
	if first.Col != 0 || first.Row != 0 || first.Seq != 0 {
		t.Fatalf("first event = %+v, want pixel (0,0) seq 0", first)
	}
	want := time.Date(2023, 6, 11, 12, 0, 0, 0, time.UTC)
	if !first.Time.Equal(want) {
		t.Fatalf("first timestamp %v, want %v", first.Time, want)
	}
}

func TestBuildExpandsIntensity(t *testing.T) {
	events := Build([]model.Pixel{{Col: 5, Row: 2}}, weekZero, 0, 4)
	if len(events) != 4 {
		t.Fatalf("event count %d, want 4", len(events))
	}
	for k, ev := range events {
		if ev.Seq != k {
			t.Fatalf("event %d has seq %d", k, ev.Seq)
		}
		want := time.Date(2023, 7, 18, 12, k, 0, 0, time.UTC)
		if !ev.Time.Equal(want) {
			t.Fatalf("event %d at %v, want %v", k, ev.Time, want)
		}
	}
}

func TestBuildKeepsPixelWithinDay(t *testing.T) {
	events := Build([]model.Pixel{{Col: 0, Row: 0}}, weekZero, 0, 60)
	last := events[len(events)-1].Time
	if last.Day() != weekZero.Day() || last.Hour() != 12 || last.Minute() != 59 {
		t.Fatalf("last repeat at %v, want 12:59 on the pixel day", last)
	}
}

func TestBuildAppliesOffset(t *testing.T) {
	events := Build([]model.Pixel{{Col: 0, Row: 0}}, weekZero, 6, 1)
	want := time.Date(2023, 7, 23, 12, 0, 0, 0, time.UTC)
	if !events[0].Time.Equal(want) {
		t.Fatalf("offset date %v, want %v", events[0].Time, want)
	}
	if events[0].Col != 0 {
		t.Fatalf("event col %d, want the rendering coordinate 0", events[0].Col)
	}
}

func TestBuildClampsIntensity(t *testing.T) {
	events := Build([]model.Pixel{{Col: 0, Row: 0}, {Col: 1, Row: 1}}, weekZero, 0, 0)
	if len(events) != 2 {
		t.Fatalf("event count %d, want 2", len(events))
	}
}

func TestMessageFormat(t *testing.T) {
	ev := model.Event{Col: 2, Row: 1, Seq: 0}
	if got := Message(ev, 5); got != "pixel col=2 row=1 [1/5]" {
		t.Fatalf("message %q", got)
	}
	ev.Seq = 4
	if got := Message(ev, 5); got != "pixel col=2 row=1 [5/5]" {
		t.Fatalf("message %q", got)
	}
}

func TestArtifactLineFormat(t *testing.T) {
	ev := model.Event{Time: time.Date(2023, 6, 11, 12, 0, 0, 0, time.UTC), Col: 2, Row: 1}
	want := "2023-06-11T12:00:00Z col=2 row=1"
	if got := ArtifactLine(ev); got != want {
		t.Fatalf("artifact line %q, want %q", got, want)
	}
}

type fakeRecorder struct {
	calls   []string
	stamps  []time.Time
	failAt  int // fail the n-th CreateRecord call, 0 = never
	records int
}

func (f *fakeRecorder) AppendArtifact(line string) error {
	f.calls = append(f.calls, "append "+line)
	return nil
}

func (f *fakeRecorder) CreateRecord(message string, stamp time.Time) error {
	f.records++
	if f.failAt != 0 && f.records == f.failAt {
		return fmt.Errorf("record rejected")
	}
	f.calls = append(f.calls, "record "+message)
	f.stamps = append(f.stamps, stamp)
	return nil
}

func TestExecuteCallsRecorderInOrder(t *testing.T) {
	pixels := []model.Pixel{{Col: 0, Row: 0}, {Col: 0, Row: 1}}
	events := Build(pixels, weekZero, 0, 2)
	rec := &fakeRecorder{}

	made, err := Execute(events, 2, rec)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if made != 4 {
		t.Fatalf("made %d, want 4", made)
	}
	want := []string{
		"append 2023-06-11T12:00:00Z col=0 row=0",
		"record pixel col=0 row=0 [1/2]",
		"append 2023-06-11T12:01:00Z col=0 row=0",
		"record pixel col=0 row=0 [2/2]",
		"append 2023-06-12T12:00:00Z col=0 row=1",
		"record pixel col=0 row=1 [1/2]",
		"append 2023-06-12T12:01:00Z col=0 row=1",
		"record pixel col=0 row=1 [2/2]",
	}
	if len(rec.calls) != len(want) {
		t.Fatalf("call count %d, want %d", len(rec.calls), len(want))
	}
	for i := range want {
		if rec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q", i, rec.calls[i], want[i])
		}
	}
	for i, ev := range events {
		if !rec.stamps[i].Equal(ev.Time) {
			t.Fatalf("stamp %d = %v, want %v", i, rec.stamps[i], ev.Time)
		}
	}
}

func TestExecuteAbortsOnFailure(t *testing.T) {
	events := Build([]model.Pixel{{Col: 0, Row: 0}, {Col: 1, Row: 0}}, weekZero, 0, 2)
	rec := &fakeRecorder{failAt: 3}

	made, err := Execute(events, 2, rec)
	if err == nil {
		t.Fatalf("expected error from failing recorder")
	}
	if made != 2 {
		t.Fatalf("made %d, want 2 completed before the failure", made)
	}
	// Two full events plus the failing one's append; nothing after.
	if len(rec.calls) != 5 {
		t.Fatalf("call count %d, want 5", len(rec.calls))
	}
}
