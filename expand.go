package layoutproc

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// ExpandRegion grows a region outwards by a distance derived from its area
// and perimeter, distance = area * ratio / perimeter.  A ratio of 1.5-2.0
// adds a margin proportional to the region size which is used to widen tight
// model boxes before cropping text regions for OCR.
//
// The expansion is performed as a polygon offset and the bounding rectangle
// of the offset polygon is returned.  Degenerate regions with a zero or
// negative perimeter are returned unchanged.
func ExpandRegion(r Rect, ratio float32) Rect {

	distance := contourDistance(r, ratio)

	if distance <= 0 {
		return r
	}

	// convert the rectangle corners to a Clipper Path
	path := clipper.Path{
		&clipper.IntPoint{X: clipper.CInt(r.Xmin), Y: clipper.CInt(r.Ymin)},
		&clipper.IntPoint{X: clipper.CInt(r.Xmax), Y: clipper.CInt(r.Ymin)},
		&clipper.IntPoint{X: clipper.CInt(r.Xmax), Y: clipper.CInt(r.Ymax)},
		&clipper.IntPoint{X: clipper.CInt(r.Xmin), Y: clipper.CInt(r.Ymax)},
	}

	// create a ClipperOffset object and add the path
	co := clipper.NewClipperOffset()
	co.AddPath(path, clipper.JtRound, clipper.EtClosedPolygon)

	// execute the offset operation
	solution := co.Execute(float64(distance))

	if len(solution) == 0 {
		return r
	}

	// take the bounding rectangle over all solution points
	xmin := float32(math.Inf(1))
	ymin := float32(math.Inf(1))
	xmax := float32(math.Inf(-1))
	ymax := float32(math.Inf(-1))

	for _, sol := range solution {
		for _, pt := range sol {
			x := float32(pt.X)
			y := float32(pt.Y)

			xmin = minF32(xmin, x)
			ymin = minF32(ymin, y)
			xmax = maxF32(xmax, x)
			ymax = maxF32(ymax, y)
		}
	}

	return NewRect(xmin, ymin, xmax, ymax)
}

// contourDistance calculates the offset distance for the rectangle contour
// based on the expand ratio
func contourDistance(r Rect, ratio float32) float32 {

	perimeter := 2 * (r.Width() + r.Height())

	if perimeter <= 0 {
		return 0
	}

	area := float32(math.Abs(float64(r.Area())))

	return area * ratio / perimeter
}
