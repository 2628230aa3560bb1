package main

import (
	"flag"
	"log"

	layoutproc "github.com/swdee/go-layoutproc"
	"github.com/swdee/go-layoutproc/render"
	"gocv.io/x/gocv"
)

func main() {

	imgFile := flag.String("i", "page.png", "page image to draw regions on")
	outFile := flag.String("o", "out.png", "output image file")
	ttfFile := flag.String("f", "", "optional TTF font for drawing CJK labels")
	flag.Parse()

	img := gocv.IMRead(*imgFile, gocv.IMReadColor)

	if img.Empty() {
		log.Fatalf("error reading image from: %s", *imgFile)
	}

	defer img.Close()

	dets := []layoutproc.Detection{
		{Label: "title", Box: layoutproc.NewRect(40, 30, 560, 80)},
		{Label: "text", Box: layoutproc.NewRect(40, 100, 560, 400)},
		{Label: "figure", Box: layoutproc.NewRect(40, 420, 560, 700)},
	}

	// deduplicate with deterministic merging so repeated runs draw the
	// same boxes
	dets = layoutproc.MergeOverlapping(dets, 0.5, 0.7)

	render.Regions(&img, dets, render.DefaultFont(), 2)

	// the Hershey fonts used by Regions only cover Latin characters, CJK
	// annotations need a TTF face
	if *ttfFile != "" {
		ttf, err := render.NewTTFFont(*ttfFile, 24)

		if err != nil {
			log.Fatalf("error loading font: %v", err)
		}

		defer ttf.Close()

		err = ttf.PutText(&img, "版面分析", 40, 760, render.Yellow)

		if err != nil {
			log.Fatalf("error drawing text: %v", err)
		}
	}

	if ok := gocv.IMWrite(*outFile, img); !ok {
		log.Fatalf("error writing image to: %s", *outFile)
	}

	log.Printf("wrote %s with %d regions", *outFile, len(dets))
}
