package debugdraw

import (
	"fmt"
	"image"
	"log"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"

	"github.com/kant/sleap"
)

// Options controls what DrawFrame draws and how.
type Options struct {
	Palette     []Color
	PointRadius int
	LineWidth   int
	DrawBox     bool
	DrawLabel   bool
}

// DefaultOptions draws points, boxes, and labels with the Tab10 palette.
func DefaultOptions() Options {
	return Options{
		Palette:     Tab10,
		PointRadius: 3,
		LineWidth:   2,
		DrawBox:     true,
		DrawLabel:   true,
	}
}

// DrawFrame draws every tracked instance in frame onto a copy of base
// and returns it; base is never modified. Instances whose Track is nil
// are skipped with a warning — DrawFrame is meant to run on already
// tracked output. Colors are assigned per call, in the order tracks first
// appear in frame.Instances, so a track's color is not kept across
// separate DrawFrame calls.
func DrawFrame(base gocv.Mat, frame *sleap.MatchedFrame, opts Options) gocv.Mat {
	out := base.Clone()
	colorOf := make(map[*sleap.Track]Color)
	nextColor := 0

	for _, inst := range frame.Instances {
		if inst.Track == nil {
			log.Printf("Warning: skipping instance with no track in debug overlay")
			continue
		}
		c, ok := colorOf[inst.Track]
		if !ok {
			c = ColorForIndex(opts.Palette, nextColor)
			colorOf[inst.Track] = c
			nextColor++
		}
		scalar := gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0)

		drawPoints(&out, inst.Points, scalar, opts.PointRadius)

		if opts.DrawBox {
			drawBox(&out, inst.BoundingBox(), scalar, opts.LineWidth)
		}
		if opts.DrawLabel {
			drawLabel(&out, inst.BoundingBox(), buildText(inst.Track, inst.TrackingScore), scalar)
		}
	}
	return out
}

func drawPoints(img *gocv.Mat, points *mat.Dense, c gocv.Scalar, radius int) {
	r, _ := points.Dims()
	for i := 0; i < r; i++ {
		y, x := points.At(i, 0), points.At(i, 1)
		if math.IsNaN(y) || math.IsNaN(x) {
			continue
		}
		gocv.Circle(img, image.Pt(int(x), int(y)), radius, c, -1)
	}
}

func drawBox(img *gocv.Mat, box [4]float64, c gocv.Scalar, thickness int) {
	yMin, xMin, yMax, xMax := box[0], box[1], box[2], box[3]
	if math.IsNaN(yMin) || math.IsNaN(xMin) || math.IsNaN(yMax) || math.IsNaN(xMax) {
		return
	}
	rect := image.Rect(int(xMin), int(yMin), int(xMax), int(yMax))
	gocv.Rectangle(img, rect, c, thickness)
}

func drawLabel(img *gocv.Mat, box [4]float64, text string, c gocv.Scalar) {
	yMin, xMin := box[0], box[1]
	if math.IsNaN(yMin) || math.IsNaN(xMin) {
		return
	}
	origin := image.Pt(int(xMin), int(math.Max(0, yMin-6)))
	gocv.PutText(img, text, origin, gocv.FontHersheySimplex, 0.5, c, 1)
}

// buildText is a small formatting helper for labels that also want the
// tracking score displayed, e.g. "track_3 (0.87)".
func buildText(track *sleap.Track, score *float64) string {
	if score == nil {
		return track.Name
	}
	return fmt.Sprintf("%s (%.2f)", track.Name, *score)
}
