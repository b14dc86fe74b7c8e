// Package compound wires the primitive recognizers and filters in
// package primitive into the gestures the daemon actually registers with
// the Manager: DirectionSwipe (cardinal-direction swipes, used by
// cmd/ffgestures) and AngleSwipe (raw-angle swipes, for callers that want
// an unrounded angle instead of a cardinal direction).
package compound

import (
	"ffgestures/internal/geom"
	"ffgestures/internal/primitive"
	"ffgestures/internal/recognizer"
)

// directionAngleTolerance is how far from a cardinal angle an initial
// swipe direction may be and still round to that cardinal direction.
const directionAngleTolerance = 25.0

type posDir struct {
	Pos geom.Point
	Dir geom.Direction
}

// DirectionSwipe builds a recognizer for an n-fingered straight swipe
// that is recognized as one of the four cardinal directions:
//
//  1. NFingers(n), constrained by NoMovement, detects the hand arriving.
//  2. InitialAngle detects the first movement and rounds it to a
//     Direction (failing outright if it's not within 25° of one).
//  3. StraightSwipe (adaptivity disabled) tracks the straight-line
//     motion, constrained by NoRelativeMovement so the hand's shape can't
//     drift, and is only accepted if it finished because a finger lifted
//     (not because the angle changed).
//  4. FingersUp detects the hand leaving.
//
// The result is just the recognized Direction.
func DirectionSwipe(numFingers int) recognizer.Recognizer[recognizer.Unit, geom.Direction] {
	roundToDirection := func(out primitive.InitialAngleOutcome) recognizer.RecResult[posDir] {
		dir, ok := geom.FromAngle(out.Angle, geom.UAngleFromDegrees(directionAngleTolerance))
		if !ok {
			return recognizer.Fail[posDir]()
		}
		return recognizer.Success(posDir{Pos: out.StartPos, Dir: dir})
	}

	initialAngle := recognizer.FlatMapOutcome[recognizer.Unit, primitive.InitialAngleOutcome, posDir](primitive.NewInitialAngle(), roundToDirection)

	straight := primitive.NewStraightSwipe()
	straight.AdaptivityPerMM = 0

	straightWithDirection := recognizer.SplitInput(
		recognizer.Recognizer[primitive.StraightSwipeInput, primitive.StraightSwipeOutcome](straight),
		func(in posDir) (geom.Direction, primitive.StraightSwipeInput) {
			return in.Dir, primitive.StraightSwipeInput{Pos: in.Pos, Angle: in.Dir.ToAngle()}
		},
	)

	swipe := recognizer.Compose[recognizer.Unit, posDir, struct {
		Stash geom.Direction
		Out   primitive.StraightSwipeOutcome
	}](initialAngle, straightWithDirection)

	constrained := recognizer.Constrain[recognizer.Unit, struct {
		Stash geom.Direction
		Out   primitive.StraightSwipeOutcome
	}](swipe, primitive.NewNoRelativeMovement())

	liftedOnly := recognizer.FilterOutcome(constrained, func(out struct {
		Stash geom.Direction
		Out   primitive.StraightSwipeOutcome
	}) bool {
		return out.Out.Reason == primitive.LiftedFinger
	})

	direction := recognizer.MapOutcome(liftedOnly, func(out struct {
		Stash geom.Direction
		Out   primitive.StraightSwipeOutcome
	}) geom.Direction {
		return out.Stash
	})

	up := recognizer.MapOutcome(
		recognizer.SplitInput(
			recognizer.Recognizer[recognizer.Unit, recognizer.Unit](primitive.NewFingersUp()),
			func(d geom.Direction) (geom.Direction, recognizer.Unit) { return d, recognizer.Unit{} },
		),
		func(out struct {
			Stash geom.Direction
			Out   recognizer.Unit
		}) geom.Direction {
			return out.Stash
		},
	)

	start := recognizer.Constrain[recognizer.Unit, recognizer.Unit](
		primitive.NewNFingers(numFingers), primitive.NewNoMovement(),
	)

	return recognizer.Compose(recognizer.Compose(start, direction), up)
}

// AngleSwipe builds a 3-fingered straight swipe recognizer that accepts
// any direction, reporting the raw Angle instead of rounding to a
// cardinal direction. cmd/ffgestures doesn't register it by default
// (the configuration grammar only names cardinal directions), but it's
// useful for callers that want the unrounded angle, e.g. diagnostics.
func AngleSwipe() recognizer.Recognizer[recognizer.Unit, geom.Angle] {
	start := recognizer.Constrain[recognizer.Unit, recognizer.Unit](
		primitive.NewNFingers(3), primitive.NewNoMovement(),
	)

	toStraightInput := recognizer.MapOutcome[recognizer.Unit, primitive.InitialAngleOutcome, primitive.StraightSwipeInput](
		primitive.NewInitialAngle(),
		func(out primitive.InitialAngleOutcome) primitive.StraightSwipeInput {
			return primitive.StraightSwipeInput{Pos: out.StartPos, Angle: out.Angle}
		},
	)

	straight := recognizer.Compose[recognizer.Unit, primitive.StraightSwipeInput, primitive.StraightSwipeOutcome](
		toStraightInput, primitive.NewStraightSwipe(),
	)

	constrained := recognizer.Constrain[recognizer.Unit, primitive.StraightSwipeOutcome](straight, primitive.NewNoRelativeMovement())

	liftedOnly := recognizer.FilterOutcome(constrained, func(out primitive.StraightSwipeOutcome) bool {
		return out.Reason == primitive.LiftedFinger
	})

	angle := recognizer.MapOutcome(liftedOnly, func(out primitive.StraightSwipeOutcome) geom.Angle {
		return out.Angle
	})

	up := recognizer.MapOutcome(
		recognizer.SplitInput(
			recognizer.Recognizer[recognizer.Unit, recognizer.Unit](primitive.NewFingersUp()),
			func(a geom.Angle) (geom.Angle, recognizer.Unit) { return a, recognizer.Unit{} },
		),
		func(out struct {
			Stash geom.Angle
			Out   recognizer.Unit
		}) geom.Angle {
			return out.Stash
		},
	)

	return recognizer.Compose(recognizer.Compose(start, angle), up)
}
