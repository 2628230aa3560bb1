package render

import (
	"errors"
	"image"

	layoutproc "github.com/swdee/go-layoutproc"
	"gocv.io/x/gocv"
)

const (
	// MinCropSize is the minimum width and height in pixels a padded
	// region must have to be worth cropping
	MinCropSize = 5
)

var (
	ErrRegionTooSmall = errors.New("region too small to crop")
)

// CropRegion cuts the region out of the page image with pad pixels of
// margin on each side, clamped to the page bounds.  The returned Mat is a
// view into img and must be closed by the caller.  Regions smaller than
// MinCropSize after padding return ErrRegionTooSmall, which filters out
// the stray slivers a layout model emits at page edges.
func CropRegion(img gocv.Mat, r layoutproc.Rect, pad float32) (gocv.Mat, error) {

	w := float32(img.Cols())
	h := float32(img.Rows())

	padded := r.Pad(pad, w, h)

	if padded.Width() < MinCropSize || padded.Height() < MinCropSize {
		return gocv.Mat{}, ErrRegionTooSmall
	}

	rect := image.Rect(int(padded.Xmin), int(padded.Ymin),
		int(padded.Xmax), int(padded.Ymax))

	return img.Region(rect), nil
}
