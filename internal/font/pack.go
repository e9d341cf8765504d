package font

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type packFile struct {
	Glyphs map[string][]string `yaml:"glyphs"`
}

// LoadPack reads a YAML glyph pack mapping single characters to 5x7
// bitmaps, for example:
//
//	glyphs:
//	  "@":
//	    - ".111."
//	    - "1...1"
//	    - "1.111"
//	    - "1.1.1"
//	    - "1.111"
//	    - "1...."
//	    - ".111."
//
// The result is merged over the builtin table with WithOverrides.
func LoadPack(path string) (map[rune]Glyph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read glyph pack: %w", err)
	}
	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse glyph pack: %w", err)
	}
	glyphs := make(map[rune]Glyph, len(pf.Glyphs))
	for key, rows := range pf.Glyphs {
		rs := []rune(key)
		if len(rs) != 1 {
			return nil, fmt.Errorf("glyph pack key %q must be a single character", key)
		}
		if len(rows) != GlyphRows {
			return nil, fmt.Errorf("glyph %q has %d rows, want %d", key, len(rows), GlyphRows)
		}
		var g Glyph
		copy(g[:], rows)
		if err := validate(key, g); err != nil {
			return nil, err
		}
		glyphs[rs[0]] = g
	}
	return glyphs, nil
}
