package sleap

import (
	"image"
	"math"

	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

// FlowCandidateMaker warps every past instance's keypoints into the
// current frame with pyramidal Lucas-Kanade optical flow, so a track is
// represented once per past frame in the window (not once overall) —
// the tracker core reduces across these duplicates when it builds the
// similarity matrix.
type FlowCandidateMaker struct {
	ImgScale float64

	// OfWindowSize is the square Lucas-Kanade search window (21 when
	// unset) and OfMaxLevels the pyramid depth passed to the LK call,
	// which stops after 30 iterations or a 0.01 step.
	OfWindowSize     int
	OfMaxLevels      int
	MinShiftedPoints int

	// KeepShifted, when set, records the emitted ShiftedInstances keyed
	// by (source frame, target frame) for debugging.
	KeepShifted bool
	shiftedLog  map[[2]int][]*ShiftedInstance
}

func (m *FlowCandidateMaker) UsesImage() bool { return true }

// shiftedFor returns the recorded shifted instances for a (source,
// target) frame pair, or nil if none were kept.
func (m *FlowCandidateMaker) shiftedFor(source, target int) []*ShiftedInstance {
	if m.shiftedLog == nil {
		return nil
	}
	return m.shiftedLog[[2]int{source, target}]
}

func (m *FlowCandidateMaker) GetCandidates(window []*MatchedFrame, t int, img image.Image) ([]candidate, error) {
	if img == nil {
		return nil, newShapeMismatch("flow candidate maker", "called without a current-frame image")
	}
	newGray, err := toGrayMat(img)
	if err != nil {
		return nil, err
	}
	defer newGray.Close()

	scale := m.ImgScale
	if scale == 0 {
		scale = 1.0
	}
	if scale != 1.0 {
		resized := gocv.NewMat()
		gocv.Resize(newGray, &resized, image.Point{}, scale, scale, gocv.InterpolationLinear)
		newGray.Close()
		newGray = resized
	}

	var out []candidate
	for _, frame := range window {
		if frame.Image == nil || len(frame.Instances) == 0 {
			continue
		}
		refGray, err := toGrayMat(frame.Image)
		if err != nil {
			return nil, err
		}
		if scale != 1.0 {
			resized := gocv.NewMat()
			gocv.Resize(refGray, &resized, image.Point{}, scale, scale, gocv.InterpolationLinear)
			refGray.Close()
			refGray = resized
		}

		shifted, err := m.shiftFrame(frame, refGray, newGray, scale, t)
		refGray.Close()
		if err != nil {
			return nil, err
		}
		for _, s := range shifted {
			out = append(out, s)
		}
	}
	return out, nil
}

// shiftFrame flows every instance's keypoints in one past frame into the
// current image and splits the result back per-instance.
func (m *FlowCandidateMaker) shiftFrame(frame *MatchedFrame, refGray, newGray gocv.Mat, scale float64, t int) ([]*ShiftedInstance, error) {
	counts := make([]int, len(frame.Instances))
	var rows [][2]float64
	for i, inst := range frame.Instances {
		r, _ := inst.Points.Dims()
		counts[i] = r
		for j := 0; j < r; j++ {
			y, x := inst.Points.At(j, 0), inst.Points.At(j, 1)
			if scale != 1.0 {
				y, x = y*scale, x*scale
			}
			rows = append(rows, [2]float64{y, x})
		}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	prevPts := pointsToGocvMat(rows)
	defer prevPts.Close()

	currPts := gocv.NewMat()
	defer currPts.Close()
	status := gocv.NewMat()
	defer status.Close()
	errs := gocv.NewMat()
	defer errs.Close()

	winSize := m.OfWindowSize
	if winSize <= 0 {
		winSize = 21
	}
	criteria := gocv.NewTermCriteria(gocv.Count|gocv.EPS, 30, 0.01)
	gocv.CalcOpticalFlowPyrLKWithParams(refGray, newGray, prevPts, currPts, &status, &errs,
		image.Pt(winSize, winSize), m.OfMaxLevels, criteria, 0, 1e-4)

	minPoints := m.MinShiftedPoints

	var out []*ShiftedInstance
	offset := 0
	for i, inst := range frame.Instances {
		n := counts[i]
		pts := mat.NewDense(n, 2, nil)
		found := 0
		var errSum float64
		for j := 0; j < n; j++ {
			idx := offset + j
			ok := status.GetUCharAt(idx, 0) == 1
			if !ok {
				pts.Set(j, 0, math.NaN())
				pts.Set(j, 1, math.NaN())
				continue
			}
			vec := currPts.GetVecfAt(idx, 0)
			y, x := float64(vec[1]), float64(vec[0])
			if scale != 1.0 {
				y, x = y/scale, x/scale
			}
			pts.Set(j, 0, y)
			pts.Set(j, 1, x)
			found++
			errSum += float64(errs.GetFloatAt(idx, 0))
		}
		offset += n

		if found <= minPoints {
			continue
		}
		shifted := &ShiftedInstance{
			Points:      pts,
			Track:       inst.Track,
			SourceFrame: frame.T,
			ShiftScore:  -errSum / float64(found),
		}
		out = append(out, shifted)
		if m.KeepShifted {
			if m.shiftedLog == nil {
				m.shiftedLog = make(map[[2]int][]*ShiftedInstance)
			}
			key := [2]int{frame.T, t}
			m.shiftedLog[key] = append(m.shiftedLog[key], shifted)
		}
	}
	return out, nil
}

// toGrayMat converts a Go image to a single-channel gocv Mat, converting
// from color and squeezing singleton channels as needed.
func toGrayMat(img image.Image) (gocv.Mat, error) {
	rgb, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return gocv.Mat{}, newShapeMismatch("flow candidate maker", "unsupported image: %v", err)
	}
	defer rgb.Close()
	gray := gocv.NewMat()
	gocv.CvtColor(rgb, &gray, gocv.ColorBGRToGray)
	return gray, nil
}

// pointsToGocvMat converts (y, x) rows into the interleaved CV_32FC2
// point Mat gocv's optical-flow calls expect, storing (x, y) order as
// OpenCV convention requires.
func pointsToGocvMat(rows [][2]float64) gocv.Mat {
	data := make([]float32, len(rows)*2)
	for i, rc := range rows {
		data[i*2] = float32(rc[1])   // x
		data[i*2+1] = float32(rc[0]) // y
	}
	m, err := gocv.NewMatFromBytes(len(rows), 1, gocv.MatTypeCV32FC2, float32BytesLE(data))
	if err != nil {
		return gocv.NewMat()
	}
	return m
}

// float32BytesLE packs float32 values little-endian, matching gocv.Mat's
// in-memory layout.
func float32BytesLE(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, v := range data {
		bits := math.Float32bits(v)
		out[i*4] = byte(bits)
		out[i*4+1] = byte(bits >> 8)
		out[i*4+2] = byte(bits >> 16)
		out[i*4+3] = byte(bits >> 24)
	}
	return out
}
