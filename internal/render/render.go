// Package render composes words into contribution-grid pixels.
package render

import (
	"fmt"
	"strings"

	"gitglyph/internal/font"
	"gitglyph/internal/model"
)

// Render lays out word left to right: each glyph occupies 5 columns,
// with spacing blank columns between glyphs. Letters are folded to
// upper case before lookup. Width is the total number of columns
// covered, including inter-glyph spacing; every pixel column is below
// it and every row is in [0,6].
func Render(table *font.Table, word string, spacing int) (model.Rendering, error) {
	if word == "" {
		return model.Rendering{}, fmt.Errorf("word must not be empty")
	}
	if spacing < 0 {
		return model.Rendering{}, fmt.Errorf("spacing must be >= 0, got %d", spacing)
	}
	runes := []rune(strings.ToUpper(word))
	var pixels []model.Pixel
	x := 0
	for i, r := range runes {
		g, err := table.Lookup(r)
		if err != nil {
			return model.Rendering{}, err
		}
		for row := 0; row < font.GlyphRows; row++ {
			for col := 0; col < font.GlyphCols; col++ {
				if g.Ink(col, row) {
					pixels = append(pixels, model.Pixel{Col: x + col, Row: row})
				}
			}
		}
		x += font.GlyphCols
		if i < len(runes)-1 {
			x += spacing
		}
	}
	return model.Rendering{Pixels: pixels, Width: x}, nil
}
