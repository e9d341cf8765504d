// Package model defines shared data structures.
package model

import "time"

// Pixel is one lit cell in the rendering grid. Col is the week column
// starting at 0, Row is the day-of-week row in [0,6].
type Pixel struct {
	Col int
	Row int
}

// Rendering is the result of rendering a word: the lit pixels and the
// total width in columns.
type Rendering struct {
	Pixels []Pixel
	Width  int
}

// Placement locates a rendering horizontally within the grid.
// Effective is Base plus the user-supplied Extra adjustment.
type Placement struct {
	Base      int
	Extra     int
	Effective int
}

// Event is a single scheduled commit for one pixel. Col and Row keep
// the pixel's rendering coordinates; Time already includes the
// placement offset. Seq is the index within the pixel's intensity run,
// starting at 0.
type Event struct {
	Time time.Time
	Col  int
	Row  int
	Seq  int
}
