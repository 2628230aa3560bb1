package layoutproc

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// OverlapMatrix computes the pairwise IoU values of all detections and
// returns them as a symmetric NxN matrix with a zero diagonal.  A nil
// matrix is returned for empty input as gonum does not allow zero sized
// dimensions.
func OverlapMatrix(dets []Detection) *mat.Dense {

	n := len(dets)

	if n == 0 {
		return nil
	}

	m := mat.NewDense(n, n, nil)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			iou := float64(IoU(dets[i].Box, dets[j].Box))
			m.Set(i, j, iou)
			m.Set(j, i, iou)
		}
	}

	return m
}

// AreaStats returns the mean and standard deviation of the detection region
// areas.  Outlier regions such as a stray full page box stand out against
// these statistics.
func AreaStats(dets []Detection) (mean, std float64) {

	if len(dets) == 0 {
		return 0, 0
	}

	areas := make([]float64, len(dets))

	for i, det := range dets {
		areas[i] = float64(det.Box.Area())
	}

	mean, std = stat.MeanStdDev(areas, nil)

	if len(dets) == 1 {
		// MeanStdDev returns NaN std for a single sample
		std = 0
	}

	return mean, std
}

// MergeOverlapping picks one region per overlapping cluster, choosing the
// largest area member.  Regions join a cluster when their IoU with the
// cluster base exceeds iouThreshold, or when the overlap covers more than
// coverThreshold of the smaller region's own area which catches small boxes
// swallowed by a larger one without a high IoU.
//
// Unlike Deduplicator.Filter this is fully deterministic and suitable for
// callers that need reproducible output.
func MergeOverlapping(dets []Detection, iouThreshold, coverThreshold float32) []Detection {

	n := len(dets)

	if n == 0 {
		return []Detection{}
	}

	overlaps := OverlapMatrix(dets)

	suppressed := make([]bool, n)
	keep := make([]Detection, 0, n)

	for i, base := range dets {
		if suppressed[i] {
			continue
		}

		// start a new cluster with "base"
		cluster := []Detection{base}
		suppressed[i] = true

		for j := i + 1; j < n; j++ {
			if suppressed[j] {
				continue
			}

			other := dets[j]

			// decide if "other" belongs in this cluster
			inCluster := false

			if overlaps.At(i, j) > float64(iouThreshold) {
				inCluster = true
			} else {
				// small box cover test
				inter := base.Box.Intersect(other.Box)
				areaOther := other.Box.Area()

				if areaOther > 0 && inter/areaOther > coverThreshold {
					inCluster = true
				}
			}

			if !inCluster {
				continue
			}

			suppressed[j] = true
			cluster = append(cluster, other)
		}

		// pick the single largest area region from the cluster
		best := cluster[0]
		bestArea := best.Box.Area()

		for _, c := range cluster[1:] {
			a := c.Box.Area()

			if a > bestArea {
				best = c
				bestArea = a
			}
		}

		keep = append(keep, best)
	}

	return keep
}

// maxF32 returns max between two numbers
func maxF32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

// minF32 returns minimum between two numbers
func minF32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
