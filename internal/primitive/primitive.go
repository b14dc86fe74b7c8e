// Package primitive implements the leaf recognizers and filters of the
// gesture recognition core: NFingers, FingersUp, InitialAngle,
// StraightSwipe, NoMovement, and NoRelativeMovement. Package compound
// wires these together into the gestures the daemon actually registers.
package primitive

import (
	"math"

	"ffgestures/internal/geom"
	"ffgestures/internal/recognizer"
	"ffgestures/internal/touch"
)

// NFingers succeeds the first tick on which exactly n fingers are down.
// It fails if any finger has gone up since Init, or if more than n
// fingers are ever down at once (an overshoot, e.g. the start of a
// pinch). Note that it does not require the n fingers to arrive
// simultaneously — only that no finger lifts before the count is
// reached.
type NFingers struct {
	n int
}

// NewNFingers returns a recognizer that succeeds once n fingers are down.
func NewNFingers(n int) *NFingers {
	return &NFingers{n: n}
}

func (r *NFingers) Init(recognizer.Unit, *touch.Frame) {}

func (r *NFingers) Update(frame *touch.Frame) recognizer.RecResult[recognizer.Unit] {
	switch {
	case frame.TouchUp || frame.Cur.NumDown > r.n:
		return recognizer.Fail[recognizer.Unit]()
	case frame.Cur.NumDown == r.n:
		return recognizer.Success(recognizer.Unit{})
	default:
		return recognizer.Continue[recognizer.Unit]()
	}
}

// FingersUp succeeds once every finger has lifted. It fails if any
// finger comes back down first.
type FingersUp struct{}

// NewFingersUp returns a recognizer that succeeds once all fingers are up.
func NewFingersUp() *FingersUp {
	return &FingersUp{}
}

func (r *FingersUp) Init(recognizer.Unit, *touch.Frame) {}

func (r *FingersUp) Update(frame *touch.Frame) recognizer.RecResult[recognizer.Unit] {
	switch {
	case frame.TouchDown:
		return recognizer.Fail[recognizer.Unit]()
	case frame.Cur.NumDown == 0:
		return recognizer.Success(recognizer.Unit{})
	default:
		return recognizer.Continue[recognizer.Unit]()
	}
}

// InitialAngleOutcome is what InitialAngle reports on success: where the
// fingers started, and the direction they first moved in.
type InitialAngleOutcome struct {
	StartPos geom.Point
	Angle    geom.Angle
}

// InitialAngle waits for the mean finger position to move by more than
// ThresholdMM, then reports the starting position and the angle of that
// initial movement (in screen-natural orientation: y grows downward, so
// the y component is inverted before atan2, to match Direction.FromAngle's
// convention). It fails if any finger goes up or down while waiting.
type InitialAngle struct {
	ThresholdMM float64

	start geom.Point
}

// NewInitialAngle returns an InitialAngle recognizer with the default
// 1.0mm movement threshold.
func NewInitialAngle() *InitialAngle {
	return &InitialAngle{ThresholdMM: 1.0}
}

func (r *InitialAngle) Init(_ recognizer.Unit, frame *touch.Frame) {
	r.start = frame.Cur.MeanPos()
}

func (r *InitialAngle) Update(frame *touch.Frame) recognizer.RecResult[InitialAngleOutcome] {
	if frame.TouchUp || frame.TouchDown {
		return recognizer.Fail[InitialAngleOutcome]()
	}

	pos := frame.Cur.MeanPos()
	diff := pos.Sub(r.start)
	if diff.Length() <= r.ThresholdMM {
		return recognizer.Continue[InitialAngleOutcome]()
	}

	angle := geom.FromRadians(math.Atan2(-diff.Y, diff.X))
	return recognizer.Success(InitialAngleOutcome{StartPos: r.start, Angle: angle})
}

// StraightSwipeReason is why a StraightSwipe finished recognizing.
type StraightSwipeReason int

const (
	// ChangedAngle means the swipe finished recognizing because the
	// direction of travel drifted outside tolerance.
	ChangedAngle StraightSwipeReason = iota
	// LiftedFinger means the swipe finished recognizing because a
	// finger was lifted.
	LiftedFinger
)

// StraightSwipeOutcome is what StraightSwipe reports on success.
type StraightSwipeOutcome struct {
	Reason   StraightSwipeReason
	InitPos  geom.Point
	FinalPos geom.Point
	Angle    geom.Angle
}

// StraightSwipe tracks the mean finger position and succeeds once it has
// either (a) moved a minimum distance in a straight line and then a
// finger lifted, or (b) moved a minimum distance and then changed
// direction beyond tolerance. It fails immediately on a finger going
// down, and fails (rather than succeeding) if a finger lifts or the
// angle changes before MinLengthMM has been covered.
type StraightSwipe struct {
	MinLengthMM       float64
	StepMM            float64
	AdaptivityPerMM   float64
	AngleToleranceRad float64

	initPos geom.Point
	lastPos geom.Point
	angle   geom.Angle
}

// NewStraightSwipe returns a StraightSwipe recognizer with the default
// tuning: 10mm minimum length, 3mm sampling step, 0.01/mm adaptivity, 20°
// angle tolerance.
func NewStraightSwipe() *StraightSwipe {
	return &StraightSwipe{
		MinLengthMM:       10.0,
		StepMM:            3.0,
		AdaptivityPerMM:   0.01,
		AngleToleranceRad: 20 * math.Pi / 180,
	}
}

// StraightSwipeInput is the input StraightSwipe expects at Init: the starting position
// and the initial direction of travel.
type StraightSwipeInput struct {
	Pos   geom.Point
	Angle geom.Angle
}

func (r *StraightSwipe) Init(in StraightSwipeInput, _ *touch.Frame) {
	r.initPos = in.Pos
	r.lastPos = in.Pos
	r.angle = in.Angle
}

func (r *StraightSwipe) outcome(reason StraightSwipeReason, frame *touch.Frame) StraightSwipeOutcome {
	return StraightSwipeOutcome{
		Reason:   reason,
		InitPos:  r.initPos,
		FinalPos: frame.Cur.MeanPos(),
		Angle:    r.angle,
	}
}

func (r *StraightSwipe) Update(frame *touch.Frame) recognizer.RecResult[StraightSwipeOutcome] {
	if frame.TouchDown {
		return recognizer.Fail[StraightSwipeOutcome]()
	}

	if frame.TouchUp {
		if frame.Cur.MeanPos().Sub(r.initPos).Length() > r.MinLengthMM {
			return recognizer.Success(r.outcome(LiftedFinger, frame))
		}
		return recognizer.Fail[StraightSwipeOutcome]()
	}

	diff := frame.Cur.MeanPos().Sub(r.lastPos)
	if diff.Length() < r.StepMM {
		return recognizer.Continue[StraightSwipeOutcome]()
	}

	sampled := geom.FromRadians(math.Atan2(-diff.Y, diff.X))
	angleDiff := sampled.Sub(r.angle).Abs()
	if angleDiff.Radians() > r.AngleToleranceRad {
		if frame.Cur.MeanPos().Sub(r.initPos).Length() > r.MinLengthMM {
			return recognizer.Success(r.outcome(ChangedAngle, frame))
		}
		return recognizer.Fail[StraightSwipeOutcome]()
	}

	r.lastPos = frame.Cur.MeanPos()
	lambda := math.Min(diff.Length()*r.AdaptivityPerMM, 1.0)
	r.angle = r.angle.Interpolate(sampled, lambda)
	return recognizer.Continue[StraightSwipeOutcome]()
}
