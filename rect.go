package layoutproc

import (
	"math"
)

// Rect are the dimensions of the bounding box of a detected layout region
// using page pixel coordinates.  Xmin/Ymin is the top left corner and
// Xmax/Ymax the bottom right corner.
type Rect struct {
	Xmin float32
	Ymin float32
	Xmax float32
	Ymax float32
}

// NewRect creates a new Rect with given corner coordinates
func NewRect(xmin, ymin, xmax, ymax float32) Rect {
	return Rect{
		Xmin: xmin,
		Ymin: ymin,
		Xmax: xmax,
		Ymax: ymax,
	}
}

// Width returns the width of the rectangle
func (r Rect) Width() float32 {
	return r.Xmax - r.Xmin
}

// Height returns the height of the rectangle
func (r Rect) Height() float32 {
	return r.Ymax - r.Ymin
}

// Area returns the area of the rectangle.  Inverted rectangles are not
// normalised so a single inverted axis produces a negative area.
func (r Rect) Area() float32 {
	return (r.Xmax - r.Xmin) * (r.Ymax - r.Ymin)
}

// Intersect returns the raw pixel area of overlap with other, zero when
// the rectangles are disjoint
func (r Rect) Intersect(other Rect) float32 {

	x1 := maxF32(r.Xmin, other.Xmin)
	y1 := maxF32(r.Ymin, other.Ymin)
	x2 := minF32(r.Xmax, other.Xmax)
	y2 := minF32(r.Ymax, other.Ymax)

	if x2 <= x1 || y2 <= y1 {
		return 0
	}

	return (x2 - x1) * (y2 - y1)
}

// Contains reports whether the rectangle fully encloses other on all
// four sides
func (r Rect) Contains(other Rect) bool {
	return r.Xmin <= other.Xmin && r.Ymin <= other.Ymin &&
		r.Xmax >= other.Xmax && r.Ymax >= other.Ymax
}

// Scale multiplies all four coordinates by factor f.  It is used to remap
// region coordinates between zoomed page renderings and the original page
// size, eg. regions detected on a 2x page image are restored with f=0.5.
func (r Rect) Scale(f float32) Rect {
	return Rect{
		Xmin: r.Xmin * f,
		Ymin: r.Ymin * f,
		Xmax: r.Xmax * f,
		Ymax: r.Ymax * f,
	}
}

// Pad grows the rectangle outwards by t pixels on each side, clamped to the
// page bounds of width w and height h so the padded region never extends
// outside the page
func (r Rect) Pad(t, w, h float32) Rect {
	return Rect{
		Xmin: float32(math.Max(0, float64(r.Xmin-t))),
		Ymin: float32(math.Max(0, float64(r.Ymin-t))),
		Xmax: float32(math.Min(float64(w), float64(r.Xmax+t))),
		Ymax: float32(math.Min(float64(h), float64(r.Ymax+t))),
	}
}

// IoU works out the Intersection over Union value of two rectangles.  The
// intersection extents are clamped to zero so disjoint or degenerate
// rectangles never produce a negative intersection area.  A zero union
// returns 0.0 rather than dividing by zero.
func IoU(a, b Rect) float32 {

	w := math.Max(0.0, math.Min(float64(a.Xmax), float64(b.Xmax))-math.Max(float64(a.Xmin), float64(b.Xmin)))
	h := math.Max(0.0, math.Min(float64(a.Ymax), float64(b.Ymax))-math.Max(float64(a.Ymin), float64(b.Ymin)))
	intersection := float32(w * h)

	union := a.Area() + b.Area() - intersection

	if union == 0 {
		return 0.0
	}

	return intersection / union
}
