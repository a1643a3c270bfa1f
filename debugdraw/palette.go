// Package debugdraw renders a tracker's output — instance keypoints,
// bounding boxes, and track labels — onto a copy of the frame image for
// a human reviewing tracker behavior. It is not a neural-net confidence
// map viewer; it only ever draws what the tracker itself emitted.
package debugdraw

// Color is BGR, matching OpenCV/gocv's channel order.
type Color struct {
	B, G, R uint8
}

// Tab10 is a 10-color palette, ported from Matplotlib's tab10 colormap,
// cycled by index via ColorForIndex.
var Tab10 = []Color{
	{214, 127, 31},
	{134, 86, 255},
	{113, 178, 44},
	{83, 64, 214},
	{190, 117, 148},
	{107, 76, 140},
	{218, 127, 227},
	{114, 114, 127},
	{51, 176, 188},
	{201, 195, 23},
}

// Colorblind is an 8-color colorblind-friendly palette, ported from
// Seaborn's colorblind palette.
var Colorblind = []Color{
	{30, 119, 180},
	{255, 158, 74},
	{153, 121, 44},
	{181, 77, 204},
	{107, 74, 222},
	{217, 127, 227},
	{128, 128, 128},
	{0, 153, 214},
}

// ColorForIndex cycles a palette by index, so the i-th distinct track
// seen gets a stable, repeatable color.
func ColorForIndex(palette []Color, i int) Color {
	if len(palette) == 0 {
		return Color{255, 255, 255}
	}
	return palette[i%len(palette)]
}
