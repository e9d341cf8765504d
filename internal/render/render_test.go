package render

import (
	"errors"
	"testing"

	"gitglyph/internal/font"
	"gitglyph/internal/model"
)

func TestRenderWidthFormula(t *testing.T) {
	table := font.Builtin()
	cases := []struct {
		word    string
		spacing int
	}{
		{"A", 1},
		{"GO", 1},
		{"HI", 0},
		{"SHOWKAT", 1},
		{"WIDE", 3},
	}
	for _, c := range cases {
		r, err := Render(table, c.word, c.spacing)
		if err != nil {
			t.Fatalf("render %q: %v", c.word, err)
		}
		n := len([]rune(c.word))
		want := 5*n + c.spacing*(n-1)
		if r.Width != want {
			t.Fatalf("render %q spacing %d: width %d, want %d", c.word, c.spacing, r.Width, want)
		}
	}
}

func TestRenderShowkatWidth(t *testing.T) {
	r, err := Render(font.Builtin(), "SHOWKAT", 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if r.Width != 41 {
		t.Fatalf("width %d, want 41", r.Width)
	}
}

func TestRenderPixelBounds(t *testing.T) {
	r, err := Render(font.Builtin(), "SHOWKAT", 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(r.Pixels) == 0 {
		t.Fatalf("expected pixels")
	}
	for _, p := range r.Pixels {
		if p.Col < 0 || p.Col >= r.Width {
			t.Fatalf("pixel col %d outside [0,%d)", p.Col, r.Width)
		}
		if p.Row < 0 || p.Row > 6 {
			t.Fatalf("pixel row %d outside [0,6]", p.Row)
		}
	}
}

func TestRenderUnsupportedCharacter(t *testing.T) {
	r, err := Render(font.Builtin(), "A?", 1)
	if err == nil {
		t.Fatalf("expected error for unsupported character")
	}
	if !errors.Is(err, font.ErrUnsupportedChar) {
		t.Fatalf("expected ErrUnsupportedChar, got %v", err)
	}
	if len(r.Pixels) != 0 {
		t.Fatalf("expected no pixels on failure, got %d", len(r.Pixels))
	}
}

func TestRenderFoldsCase(t *testing.T) {
	upper, err := Render(font.Builtin(), "GO", 1)
	if err != nil {
		t.Fatalf("render GO: %v", err)
	}
	lower, err := Render(font.Builtin(), "go", 1)
	if err != nil {
		t.Fatalf("render go: %v", err)
	}
	if upper.Width != lower.Width || len(upper.Pixels) != len(lower.Pixels) {
		t.Fatalf("case fold mismatch: %d/%d pixels, %d/%d width",
			len(upper.Pixels), len(lower.Pixels), upper.Width, lower.Width)
	}
	for i := range upper.Pixels {
		if upper.Pixels[i] != lower.Pixels[i] {
			t.Fatalf("pixel %d differs: %v vs %v", i, upper.Pixels[i], lower.Pixels[i])
		}
	}
}

func TestRenderSpacingColumnStaysBlank(t *testing.T) {
	r, err := Render(font.Builtin(), "TT", 1)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, p := range r.Pixels {
		if p.Col == 5 {
			t.Fatalf("spacing column 5 has ink at row %d", p.Row)
		}
	}
	second := false
	for _, p := range r.Pixels {
		if p == (model.Pixel{Col: 6, Row: 0}) {
			second = true
		}
	}
	if !second {
		t.Fatalf("second glyph is not shifted to column 6")
	}
}

func TestRenderEmptyWord(t *testing.T) {
	if _, err := Render(font.Builtin(), "", 1); err == nil {
		t.Fatalf("expected error for empty word")
	}
}

func TestRenderNegativeSpacing(t *testing.T) {
	if _, err := Render(font.Builtin(), "GO", -1); err == nil {
		t.Fatalf("expected error for negative spacing")
	}
}
