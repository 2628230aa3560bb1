package render

import (
	"image"

	layoutproc "github.com/swdee/go-layoutproc"
	"gocv.io/x/gocv"
)

// boxLabel holds the rendering details of a region label so all labels can
// be painted as the top most layer
type boxLabel struct {
	rect    image.Rectangle
	clr     int
	text    string
	textPos image.Point
}

// Regions renders the bounding boxes of the layout regions detected on the
// page image.  Regions sharing a label are drawn in the same color.
func Regions(img *gocv.Mat, dets []layoutproc.Detection, font Font,
	lineThickness int) {

	// color slot per label so repeated classes render consistently
	labelColors := make(map[string]int)

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(dets))

	for _, det := range dets {

		colorIndex, ok := labelColors[det.Label]

		if !ok {
			colorIndex = len(labelColors) % len(classColors)
			labelColors[det.Label] = colorIndex
		}

		useClr := classColors[colorIndex]

		boxLeft := int(det.Box.Xmin)
		boxTop := int(det.Box.Ymin)
		boxRight := int(det.Box.Xmax)
		boxBottom := int(det.Box.Ymax)

		// draw rectangle around the detected region
		rect := image.Rect(boxLeft, boxTop, boxRight, boxBottom)
		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := det.Label
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// Calculate the alignment of text label
		var centerX int

		switch font.Alignment {
		case Center:
			centerX = (boxLeft + boxRight) / 2

		case Right:
			centerX = boxRight - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

		case Left:
			fallthrough
		default:
			centerX = boxLeft + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
		}

		// Adjust the label position so the text is centered horizontally
		labelPosition := image.Pt(centerX-textSize.X/2, boxTop-font.BottomPad)

		// create box for placing text on
		bRect := image.Rect(centerX-textSize.X/2-font.LeftPad,
			boxTop-textSize.Y-font.TopPad-font.BottomPad,
			centerX+textSize.X/2+font.RightPad, boxTop)

		boxLabels = append(boxLabels, boxLabel{
			rect:    bRect,
			clr:     colorIndex,
			text:    text,
			textPos: labelPosition,
		})
	}

	// draw all precalculated box labels so they are the top most layer on
	// the image and don't get overlapped by neighbouring region boxes
	for _, box := range boxLabels {
		// draw box text gets written on
		gocv.Rectangle(img, box.rect, classColors[box.clr], -1)

		// Draw the label over box
		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}
