package layoutproc

import (
	"math"
	"testing"
)

func TestOverlapMatrix(t *testing.T) {

	dets := []Detection{
		{Label: "a", Box: NewRect(0, 0, 10, 10)},
		{Label: "b", Box: NewRect(5, 5, 15, 15)},
		{Label: "c", Box: NewRect(50, 50, 60, 60)},
	}

	m := OverlapMatrix(dets)

	rows, cols := m.Dims()

	if rows != 3 || cols != 3 {
		t.Fatalf("Expected 3x3 matrix, got %dx%d", rows, cols)
	}

	for i := 0; i < rows; i++ {
		if m.At(i, i) != 0 {
			t.Errorf("Expected zero diagonal at %d, got %f", i, m.At(i, i))
		}

		for j := 0; j < cols; j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("Matrix not symmetric at (%d,%d): %f != %f",
					i, j, m.At(i, j), m.At(j, i))
			}
		}
	}

	expected := float64(float32(25.0 / 175.0))

	if math.Abs(m.At(0, 1)-expected) > 1e-9 {
		t.Errorf("Expected IoU %f at (0,1), got %f", expected, m.At(0, 1))
	}

	if m.At(0, 2) != 0 {
		t.Errorf("Expected zero IoU for disjoint regions, got %f", m.At(0, 2))
	}
}

func TestOverlapMatrixEmptyInput(t *testing.T) {

	if m := OverlapMatrix(nil); m != nil {
		t.Errorf("Expected nil matrix for empty input, got %v", m)
	}

	if m := OverlapMatrix([]Detection{}); m != nil {
		t.Errorf("Expected nil matrix for empty slice, got %v", m)
	}
}

func TestAreaStats(t *testing.T) {

	dets := []Detection{
		{Label: "a", Box: NewRect(0, 0, 10, 10)}, // area 100
		{Label: "b", Box: NewRect(0, 0, 10, 30)}, // area 300
	}

	mean, std := AreaStats(dets)

	if mean != 200 {
		t.Errorf("Expected mean area 200, got %f", mean)
	}

	if std == 0 || math.IsNaN(std) {
		t.Errorf("Expected non-zero finite std, got %f", std)
	}

	// empty and single element cases must not produce NaN
	mean, std = AreaStats(nil)

	if mean != 0 || std != 0 {
		t.Errorf("Expected zero stats for empty input, got mean=%f std=%f", mean, std)
	}

	mean, std = AreaStats(dets[:1])

	if mean != 100 || std != 0 {
		t.Errorf("Expected mean=100 std=0 for single region, got mean=%f std=%f", mean, std)
	}
}

func TestMergeOverlapping(t *testing.T) {

	tests := []struct {
		name           string
		dets           []Detection
		iouThreshold   float32
		coverThreshold float32
		expectedLabels []string
	}{
		{
			name: "overlapping pair keeps larger",
			dets: []Detection{
				{Label: "small", Box: NewRect(0, 0, 10, 10)},
				{Label: "large", Box: NewRect(2, 2, 20, 20)},
			},
			iouThreshold:   0.1,
			coverThreshold: 0.7,
			expectedLabels: []string{"large"},
		},
		{
			name: "covered small box joins cluster without high IoU",
			dets: []Detection{
				{Label: "page", Box: NewRect(0, 0, 100, 100)},
				{Label: "crumb", Box: NewRect(10, 10, 14, 14)},
			},
			iouThreshold:   0.5,
			coverThreshold: 0.7,
			expectedLabels: []string{"page"},
		},
		{
			name: "disjoint regions all survive",
			dets: []Detection{
				{Label: "a", Box: NewRect(0, 0, 10, 10)},
				{Label: "b", Box: NewRect(20, 0, 30, 10)},
				{Label: "c", Box: NewRect(0, 20, 10, 30)},
			},
			iouThreshold:   0.1,
			coverThreshold: 0.7,
			expectedLabels: []string{"a", "b", "c"},
		},
		{
			name:           "empty input",
			dets:           []Detection{},
			iouThreshold:   0.1,
			coverThreshold: 0.7,
			expectedLabels: []string{},
		},
	}

	for _, tc := range tests {
		got := MergeOverlapping(tc.dets, tc.iouThreshold, tc.coverThreshold)

		if len(got) != len(tc.expectedLabels) {
			t.Errorf("Test %q failed: expected %d regions, got %d: %+v",
				tc.name, len(tc.expectedLabels), len(got), got)
			continue
		}

		for i, label := range tc.expectedLabels {
			if got[i].Label != label {
				t.Errorf("Test %q failed: expected label %q at %d, got %q",
					tc.name, label, i, got[i].Label)
			}
		}
	}
}

func TestMergeOverlappingDeterministic(t *testing.T) {

	dets := []Detection{
		{Label: "a", Box: NewRect(0, 0, 10, 10)},
		{Label: "b", Box: NewRect(5, 5, 15, 15)},
		{Label: "c", Box: NewRect(8, 8, 18, 18)},
	}

	first := MergeOverlapping(dets, 0.1, 0.7)

	for trial := 0; trial < 20; trial++ {
		got := MergeOverlapping(dets, 0.1, 0.7)

		if len(got) != len(first) {
			t.Fatalf("Trial %d: output length changed: %d vs %d",
				trial, len(got), len(first))
		}

		for i := range got {
			if got[i] != first[i] {
				t.Errorf("Trial %d: output differs at %d: %+v vs %+v",
					trial, i, got[i], first[i])
			}
		}
	}
}
