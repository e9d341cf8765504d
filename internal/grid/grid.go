// Package grid places a rendered word horizontally within the fixed
// contribution window.
package grid

import (
	"errors"
	"fmt"

	"gitglyph/internal/model"
)

// Weeks is the number of columns a contribution calendar displays.
const Weeks = 53

// Anchor selects the horizontal alignment of the word within the grid.
type Anchor string

const (
	AnchorLeft   Anchor = "left"
	AnchorCenter Anchor = "center"
	AnchorRight  Anchor = "right"
)

// ParseAnchor validates a user-supplied anchor name.
func ParseAnchor(s string) (Anchor, error) {
	switch Anchor(s) {
	case AnchorLeft, AnchorCenter, AnchorRight:
		return Anchor(s), nil
	}
	return "", fmt.Errorf("unknown anchor %q (valid: left, center, right)", s)
}

// ErrWordTooWide reports a rendering wider than the grid.
var ErrWordTooWide = errors.New("word too wide for grid")

// ErrPlacementOutOfRange reports an anchor/offset combination that
// pushes the word outside the grid.
var ErrPlacementOutOfRange = errors.New("placement out of range")

// Place computes the base offset for the anchor policy and applies the
// extra user adjustment. It fails before any scheduling happens when
// the word cannot fit.
func Place(width, gridWidth int, anchor Anchor, extra int) (model.Placement, error) {
	if width > gridWidth {
		return model.Placement{}, fmt.Errorf("%w: width %d exceeds available %d weeks",
			ErrWordTooWide, width, gridWidth)
	}
	var base int
	switch anchor {
	case AnchorLeft:
		base = 0
	case AnchorRight:
		base = gridWidth - width
	case AnchorCenter:
		base = (gridWidth - width) / 2
	default:
		return model.Placement{}, fmt.Errorf("unknown anchor %q (valid: left, center, right)", anchor)
	}
	p := model.Placement{Base: base, Extra: extra, Effective: base + extra}
	if p.Effective < 0 {
		return model.Placement{}, fmt.Errorf("%w: effective offset %d is negative; increase the offset or choose a different anchor",
			ErrPlacementOutOfRange, p.Effective)
	}
	if p.Effective+width > gridWidth {
		return model.Placement{}, fmt.Errorf("%w: offset %d plus width %d exceeds %d weeks",
			ErrPlacementOutOfRange, p.Effective, width, gridWidth)
	}
	return p, nil
}
