package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	layoutproc "github.com/swdee/go-layoutproc"
	"go.uber.org/zap"
)

// detectionJSON is the wire shape of a single labeled region.  Surviving
// regions are stamped with an incremental ID on output so downstream
// stages can reference them.
type detectionJSON struct {
	ID    int64      `json:"id,omitempty"`
	Label string     `json:"label"`
	Box   [4]float32 `json:"box"`
}

var (
	filterInput string
	filterSeed  int64
	filterMerge bool
	filterSkip  []string
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Remove overlapping and nested regions from detections",
	Long: `Reads layout detections as JSON and removes regions that overlap above
the IoU threshold or are fully contained in another region.

By default overlap conflicts are resolved randomly, so repeated runs can
keep different members of a conflicting pair.  Pass --merge for the
deterministic cluster variant which always keeps the largest region, or
--seed for reproducible random resolution.`,
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterInput, "input", "i", "-",
		"input file of JSON detections, - for stdin")
	filterCmd.Flags().Float32P("threshold", "t", 0.5,
		"IoU threshold above which two regions conflict")
	filterCmd.Flags().Float32("cover", 0.7,
		"fraction of a small region's area that must be covered to merge it (merge mode)")
	filterCmd.Flags().Int64Var(&filterSeed, "seed", 0,
		"random seed for conflict resolution, 0 seeds from the clock")
	filterCmd.Flags().BoolVar(&filterMerge, "merge", false,
		"use deterministic cluster merging instead of random resolution")
	filterCmd.Flags().StringSliceVar(&filterSkip, "skip", nil,
		"labels to drop before filtering, eg. header,footer,reference")

	_ = viper.BindPFlag("filter.threshold", filterCmd.Flags().Lookup("threshold"))
	_ = viper.BindPFlag("filter.cover", filterCmd.Flags().Lookup("cover"))
}

func runFilter(cmd *cobra.Command, args []string) error {

	dets, err := readDetections(filterInput)

	if err != nil {
		return err
	}

	if len(filterSkip) > 0 {
		dets = layoutproc.FilterLabels(dets, filterSkip...)
	}

	threshold := float32(viper.GetFloat64("filter.threshold"))

	var filtered []layoutproc.Detection

	if filterMerge {
		cover := float32(viper.GetFloat64("filter.cover"))
		filtered = layoutproc.MergeOverlapping(dets, threshold, cover)
	} else {
		dedup := layoutproc.NewDeduplicator()

		if filterSeed != 0 {
			dedup = layoutproc.NewDeduplicatorWithSource(rand.NewSource(filterSeed))
		}

		filtered = dedup.Filter(dets, threshold)
	}

	logger.Info("filtered detections",
		zap.Int("input", len(dets)),
		zap.Int("output", len(filtered)),
		zap.Float32("threshold", threshold),
	)

	return writeDetections(os.Stdout, filtered)
}

// readDetections loads the JSON detections from the given file, or stdin
// when file is "-"
func readDetections(file string) ([]layoutproc.Detection, error) {

	var r io.Reader = os.Stdin

	if file != "-" {
		f, err := os.Open(file)

		if err != nil {
			return nil, fmt.Errorf("error opening input: %w", err)
		}

		defer f.Close()
		r = f
	}

	var raw []detectionJSON

	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("error decoding detections: %w", err)
	}

	dets := make([]layoutproc.Detection, len(raw))

	for i, d := range raw {
		dets[i] = layoutproc.Detection{
			Label: d.Label,
			Box:   layoutproc.NewRect(d.Box[0], d.Box[1], d.Box[2], d.Box[3]),
		}
	}

	return dets, nil
}

// writeDetections encodes the detections as JSON to w, stamping each one
// with the next incremental ID
func writeDetections(w io.Writer, dets []layoutproc.Detection) error {

	idGen := layoutproc.NewIDGenerator()

	raw := make([]detectionJSON, len(dets))

	for i, d := range dets {
		raw[i] = detectionJSON{
			ID:    idGen.GetNext(),
			Label: d.Label,
			Box:   [4]float32{d.Box.Xmin, d.Box.Ymin, d.Box.Xmax, d.Box.Ymax},
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(raw)
}
