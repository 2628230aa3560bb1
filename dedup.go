package layoutproc

import (
	"math/rand"
	"time"
)

// Deduplicator filters a set of layout detections down to a non redundant
// set where no two surviving regions overlap above the IoU threshold or
// fully contain one another
type Deduplicator struct {
	rng *rand.Rand
}

// NewDeduplicator returns a Deduplicator using a time seeded random source
// for resolving overlap conflicts
func NewDeduplicator() *Deduplicator {
	return NewDeduplicatorWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewDeduplicatorWithSource returns a Deduplicator using the given random
// source.  Pass a fixed seed source to get reproducible conflict
// resolution in tests.
func NewDeduplicatorWithSource(src rand.Source) *Deduplicator {
	return &Deduplicator{
		rng: rand.New(src),
	}
}

// Filter removes overlapping and nested regions from the detections using a
// greedy work list algorithm.  The first remaining detection is taken as the
// anchor and compared against all others:
//
//   - an IoU above iouThreshold is a genuine conflict and is resolved by a
//     coin flip, either the other region is dropped or the anchor loses and
//     scanning stops
//   - a region fully contained inside the anchor is dropped without
//     consulting the threshold
//   - an anchor fully contained inside another region is itself dropped
//
// The overlap branch is evaluated before the containment branches, so a
// pair that conflicts on IoU is always resolved randomly even when one
// contains the other.  Input order determines which detection of a pair is
// examined first.  Duplicate valued detections marked for removal are
// removed along with all their copies.
//
// Due to the random conflict resolution repeated calls with the same input
// can return different surviving subsets.  Callers needing deterministic
// output should use MergeOverlapping instead.
func (d *Deduplicator) Filter(dets []Detection, iouThreshold float32) []Detection {

	working := make([]Detection, len(dets))
	copy(working, dets)

	filtered := make([]Detection, 0, len(dets))

	for len(working) > 0 {

		// take the next anchor off the front of the work list
		anchor := working[0]
		working = working[1:]

		keep := true
		toRemove := make([]Detection, 0)

		// scan a snapshot of the current work list so removals applied
		// below never shift elements mid scan
		snapshot := make([]Detection, len(working))
		copy(snapshot, working)

		for _, other := range snapshot {

			if IoU(anchor.Box, other.Box) > iouThreshold {
				// conflict with no containment priority, resolve randomly
				if d.rng.Float64() < 0.5 {
					toRemove = append(toRemove, other)
				} else {
					keep = false
					break
				}

			} else if anchor.Box.Contains(other.Box) {
				// anchor dominates a sub region
				toRemove = append(toRemove, other)

			} else if other.Box.Contains(anchor.Box) {
				// anchor is the redundant nested region
				keep = false
				break
			}
		}

		for _, item := range toRemove {
			working = removeDetection(working, item)
		}

		if keep {
			filtered = append(filtered, anchor)
		}
	}

	return filtered
}

// removeDetection filters out all entries equal in value to det.  Removal is
// by exact label and coordinate match, so duplicate valued entries are all
// removed together.
func removeDetection(dets []Detection, det Detection) []Detection {

	keep := dets[:0]

	for _, d := range dets {
		if d != det {
			keep = append(keep, d)
		}
	}

	return keep
}
