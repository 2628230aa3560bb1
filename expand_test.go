package layoutproc

import (
	"testing"
)

func TestExpandRegion(t *testing.T) {

	r := NewRect(100, 100, 200, 200)

	// distance = area * ratio / perimeter = 10000 * 1.5 / 400 = 37.5
	got := ExpandRegion(r, 1.5)

	if !got.Contains(r) {
		t.Errorf("Expanded region %+v does not contain original %+v", got, r)
	}

	// the offset polygon extremes sit a full offset distance out from the
	// rectangle edges, allow one pixel of integer rounding
	if got.Width() < r.Width()+73 || got.Height() < r.Height()+73 {
		t.Errorf("Expanded region too small: got %fx%f from %fx%f",
			got.Width(), got.Height(), r.Width(), r.Height())
	}

	if got.Width() > r.Width()+77 || got.Height() > r.Height()+77 {
		t.Errorf("Expanded region too large: got %fx%f from %fx%f",
			got.Width(), got.Height(), r.Width(), r.Height())
	}
}

func TestExpandRegionDegenerate(t *testing.T) {

	tests := []struct {
		name string
		r    Rect
	}{
		{"zero size", NewRect(10, 10, 10, 10)},
		{"inverted", NewRect(20, 20, 10, 10)},
	}

	for _, tc := range tests {
		if got := ExpandRegion(tc.r, 1.5); got != tc.r {
			t.Errorf("Test %q failed: expected degenerate region unchanged, got %+v",
				tc.name, got)
		}
	}
}

func TestExpandRegionZeroRatio(t *testing.T) {

	r := NewRect(0, 0, 50, 50)

	if got := ExpandRegion(r, 0); got != r {
		t.Errorf("Expected region unchanged for zero ratio, got %+v", got)
	}
}
