// Package font provides the fixed 5x7 bitmap glyphs used to paint
// words onto the contribution grid.
package font

import (
	"errors"
	"fmt"
	"sort"
)

// Glyph dimensions. Every glyph is GlyphRows strings of GlyphCols
// cells, '1' for ink and '.' for blank, row 0 at the top.
const (
	GlyphRows = 7
	GlyphCols = 5
)

// ErrUnsupportedChar reports a character with no glyph definition.
var ErrUnsupportedChar = errors.New("unsupported character")

// Glyph is one bitmap: 7 rows of 5 cells.
type Glyph [GlyphRows]string

// Ink reports whether the cell at (col, row) is ink.
func (g Glyph) Ink(col, row int) bool {
	return g[row][col] == '1'
}

// Table maps characters to glyphs. Tables are immutable once built;
// WithOverrides returns a new table instead of mutating the receiver.
type Table struct {
	glyphs map[rune]Glyph
}

// Builtin returns the table shipped with the binary: A-Z, 0-9 and space.
func Builtin() *Table {
	return &Table{glyphs: builtin}
}

// Lookup returns the glyph for r.
func (t *Table) Lookup(r rune) (Glyph, error) {
	g, ok := t.glyphs[r]
	if !ok {
		return Glyph{}, fmt.Errorf("%w: %q", ErrUnsupportedChar, r)
	}
	return g, nil
}

// Runes lists the supported characters in sorted order.
func (t *Table) Runes() []rune {
	rs := make([]rune, 0, len(t.glyphs))
	for r := range t.glyphs {
		rs = append(rs, r)
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	return rs
}

// WithOverrides returns a new table with m merged over t. Entries in m
// replace definitions for the same character.
func (t *Table) WithOverrides(m map[rune]Glyph) *Table {
	merged := make(map[rune]Glyph, len(t.glyphs)+len(m))
	for r, g := range t.glyphs {
		merged[r] = g
	}
	for r, g := range m {
		merged[r] = g
	}
	return &Table{glyphs: merged}
}

func validate(name string, g Glyph) error {
	for i, row := range g {
		if len(row) != GlyphCols {
			return fmt.Errorf("glyph %q row %d has %d cells, want %d", name, i, len(row), GlyphCols)
		}
		for _, c := range row {
			if c != '1' && c != '.' {
				return fmt.Errorf("glyph %q row %d contains %q, want '1' or '.'", name, i, c)
			}
		}
	}
	return nil
}
