package layoutproc

import (
	"sync"
)

// Detection defines the attributes of a single layout region detected on a
// document page
type Detection struct {
	// Label is the layout class of the region, eg. "text", "title",
	// "figure".  It is carried through unchanged and never interpreted.
	Label string
	// Box are the bounding box dimensions of the region location
	Box Rect
}

// FilterLabels returns the detections whose label is not in the skip list.
// Layout pipelines typically drop the page furniture classes such as
// "header", "footer", and "reference" before further processing.
func FilterLabels(dets []Detection, skip ...string) []Detection {

	keep := make([]Detection, 0, len(dets))

	for _, det := range dets {
		skipped := false

		for _, label := range skip {
			if det.Label == label {
				skipped = true
				break
			}
		}

		if !skipped {
			keep = append(keep, det)
		}
	}

	return keep
}

// IDGenerator is a struct to hold a counter for generating the next
// incremental ID number
type IDGenerator struct {
	id int64
	sync.Mutex
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// GetNext returns the next incremental number
func (id *IDGenerator) GetNext() int64 {
	id.Lock()
	defer id.Unlock()
	id.id++
	return id.id
}
