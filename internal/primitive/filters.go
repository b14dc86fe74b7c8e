package primitive

import (
	"math"

	"ffgestures/internal/recognizer"
	"ffgestures/internal/touch"
)

// NoMovement fails a recognizer if the fingers' average distance from
// their baseline positions (Snapshot.MeanDist) exceeds ThresholdMM; a
// single finger may slide further than that while the average stays
// under it. Fingers are allowed to arrive
// and depart; NoMovement accepts newly-arrived fingers into its baseline
// each tick rather than resetting the bound for fingers already being
// tracked.
type NoMovement struct {
	ThresholdMM float64

	baseline touch.Snapshot
}

// NewNoMovement returns a NoMovement filter with the default 1.0mm
// threshold.
func NewNoMovement() *NoMovement {
	return &NoMovement{ThresholdMM: 1.0}
}

func (f *NoMovement) Init(frame *touch.Frame) {
	f.baseline = frame.Cur
}

func (f *NoMovement) Update(frame *touch.Frame) recognizer.FilterResult {
	if frame.Cur.MeanDist(f.baseline) > f.ThresholdMM {
		return recognizer.FilterFailed
	}
	f.baseline.Merge(frame.Cur)
	return recognizer.Passed
}

// NoRelativeMovement fails a recognizer if the fingers' positions
// relative to their shared centroid drift more than ThresholdMM, i.e. if
// the "shape" of the hand changes. The hand as a whole is free to move;
// fingers are also free to arrive or depart mid-gesture.
type NoRelativeMovement struct {
	ThresholdMM     float64
	AdaptivityPerMM float64

	rel touch.Snapshot
}

// NewNoRelativeMovement returns a NoRelativeMovement filter with the
// default tuning: 5.0mm threshold, 0.02/mm adaptivity.
func NewNoRelativeMovement() *NoRelativeMovement {
	return &NoRelativeMovement{ThresholdMM: 5.0, AdaptivityPerMM: 0.02}
}

func (f *NoRelativeMovement) Init(frame *touch.Frame) {
	f.rel = frame.Cur
	f.rel.Translate(frame.Cur.MeanPos().Neg())
}

func (f *NoRelativeMovement) Update(frame *touch.Frame) recognizer.FilterResult {
	if frame.TouchDown || frame.TouchUp {
		meanDiffAll := frame.Cur.MeanPos().Sub(frame.Last.MeanPos())
		meanDiffCommon := frame.Cur.MeanPosFiltered(frame.Last).Sub(frame.Last.MeanPosFiltered(frame.Cur))
		offset := meanDiffAll.Sub(meanDiffCommon)
		f.rel.Translate(offset.Neg())
	}

	relNow := frame.Cur
	relNow.Translate(frame.Cur.MeanPos().Neg())

	if frame.TouchDown || frame.TouchUp {
		f.rel.Merge(relNow)
	}

	if relNow.MeanDist(f.rel) > f.ThresholdMM {
		return recognizer.FilterFailed
	}

	dist := frame.Cur.MeanPos().Sub(frame.Last.MeanPos()).Length()
	lambda := math.Min(dist*f.AdaptivityPerMM, 1.0)
	f.rel.InterpolateTo(relNow, lambda)
	return recognizer.Passed
}
