// Package recognizer implements the minimal combinator algebra the
// gesture recognition core is built from: primitive recognizers and
// filters are plain values implementing small generic interfaces, and
// compound gestures are built by composing them with the functions in
// this package (Compose, MapOutcome, FlatMapOutcome, FilterOutcome,
// SplitInput, Constrain). There is no dynamic dispatch inside a
// statically built recognizer tree; the only place an interface value is
// actually needed is where the Manager holds a heterogeneous set of
// candidate recognizers that all produce the same gesture type.
package recognizer

import "ffgestures/internal/touch"

// Unit is the "no input" type, used as the In type of the primitive
// recognizers that don't need anything passed to Init beyond the current
// frame.
type Unit = struct{}

// Status is the tag of a RecResult.
type Status int

const (
	// Continuing means more input is needed before a verdict is reached.
	Continuing Status = iota
	// Succeeded means the gesture finished recognizing successfully.
	Succeeded
	// Failed means the gesture was not recognized.
	Failed
)

// RecResult is the result of one Recognizer.Update call. Out is only
// meaningful when Status is Succeeded.
type RecResult[T any] struct {
	Status Status
	Out    T
}

// Continue returns a RecResult reporting that more input is needed.
func Continue[T any]() RecResult[T] {
	return RecResult[T]{Status: Continuing}
}

// Success returns a RecResult reporting that the gesture finished
// recognizing, with the given output.
func Success[T any](out T) RecResult[T] {
	return RecResult[T]{Status: Succeeded, Out: out}
}

// Fail returns a RecResult reporting that the gesture was not recognized.
func Fail[T any]() RecResult[T] {
	return RecResult[T]{Status: Failed}
}

// Map transforms a successful result's payload, passing Continuing and
// Failed through unchanged.
func Map[T, U any](r RecResult[T], f func(T) U) RecResult[U] {
	switch r.Status {
	case Succeeded:
		return Success(f(r.Out))
	case Failed:
		return Fail[U]()
	default:
		return Continue[U]()
	}
}

// AndThen lets f downgrade a success into a failure (or leave it
// succeeding, under a new payload type); Continuing and Failed pass
// through unchanged.
func AndThen[T, U any](r RecResult[T], f func(T) RecResult[U]) RecResult[U] {
	switch r.Status {
	case Succeeded:
		return f(r.Out)
	case Failed:
		return Fail[U]()
	default:
		return Continue[U]()
	}
}

// Recognizer is the main abstraction of the recognition core: a
// stateful, single-shot component that inspects successive frames and
// eventually reports Succeeded or Failed. Once a Recognizer has returned
// a terminal result, it is not queried again until the Manager
// re-initializes it for a new gesture window.
type Recognizer[In, Out any] interface {
	// Init prepares the recognizer for a new activation, given its input
	// and the frame as of the start of the activation.
	Init(input In, frame *touch.Frame)
	// Update inspects the current tick's frame and returns a verdict.
	Update(frame *touch.Frame) RecResult[Out]
}

// FilterResult is the result of one Filter.Update call.
type FilterResult int

const (
	Passed FilterResult = iota
	FilterFailed
)

// Filter runs in parallel with a Recognizer and can force it to fail. It
// has no typed input or output of its own.
type Filter interface {
	Init(frame *touch.Frame)
	Update(frame *touch.Frame) FilterResult
}
