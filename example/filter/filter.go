package main

import (
	"flag"
	"log"

	layoutproc "github.com/swdee/go-layoutproc"
)

func main() {

	threshold := flag.Float64("t", 0.5, "IoU threshold for overlap conflicts")
	flag.Parse()

	// detections as produced by a layout model over a page image, in
	// confidence order
	dets := []layoutproc.Detection{
		{Label: "title", Box: layoutproc.NewRect(40, 30, 560, 80)},
		{Label: "text", Box: layoutproc.NewRect(40, 100, 560, 400)},
		// overlapping duplicate of the text block
		{Label: "text", Box: layoutproc.NewRect(42, 104, 558, 396)},
		// nested fragment inside the text block
		{Label: "text", Box: layoutproc.NewRect(60, 120, 300, 200)},
		{Label: "figure", Box: layoutproc.NewRect(40, 420, 560, 700)},
		{Label: "footer", Box: layoutproc.NewRect(40, 760, 560, 780)},
	}

	// drop page furniture before deduplication
	dets = layoutproc.FilterLabels(dets, "header", "footer", "reference")

	dedup := layoutproc.NewDeduplicator()

	filtered := dedup.Filter(dets, float32(*threshold))

	log.Printf("kept %d of %d regions", len(filtered), len(dets))

	for _, det := range filtered {
		log.Printf("  %-8s (%.0f,%.0f)-(%.0f,%.0f)", det.Label,
			det.Box.Xmin, det.Box.Ymin, det.Box.Xmax, det.Box.Ymax)
	}

	mean, std := layoutproc.AreaStats(filtered)
	log.Printf("region area mean=%.0f std=%.0f", mean, std)
}
