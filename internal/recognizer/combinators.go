package recognizer

import "ffgestures/internal/touch"

// composition runs a, then, once a succeeds, initializes and runs b with
// a's output as b's input. It forwards b's eventual verdict.
type composition[In, Mid, Out any] struct {
	a   Recognizer[In, Mid]
	b   Recognizer[Mid, Out]
	onB bool
}

// Compose builds a Recognizer that recognizes a, then b, threading a's
// output into b's Init. This is the "and_then" sequencing combinator.
func Compose[In, Mid, Out any](a Recognizer[In, Mid], b Recognizer[Mid, Out]) Recognizer[In, Out] {
	return &composition[In, Mid, Out]{a: a, b: b}
}

func (c *composition[In, Mid, Out]) Init(input In, frame *touch.Frame) {
	c.a.Init(input, frame)
	c.onB = false
}

func (c *composition[In, Mid, Out]) Update(frame *touch.Frame) RecResult[Out] {
	if c.onB {
		return c.b.Update(frame)
	}
	r := c.a.Update(frame)
	switch r.Status {
	case Failed:
		return Fail[Out]()
	case Continuing:
		return Continue[Out]()
	default: // Succeeded
		c.onB = true
		c.b.Init(r.Out, frame)
		return Continue[Out]()
	}
}

// mapOutcome transforms a successful output with f.
type mapOutcome[In, T, Out any] struct {
	rec Recognizer[In, T]
	f   func(T) Out
}

// MapOutcome builds a Recognizer with the same In type as rec, whose
// successful output is f applied to rec's output.
func MapOutcome[In, T, Out any](rec Recognizer[In, T], f func(T) Out) Recognizer[In, Out] {
	return &mapOutcome[In, T, Out]{rec: rec, f: f}
}

func (m *mapOutcome[In, T, Out]) Init(input In, frame *touch.Frame) {
	m.rec.Init(input, frame)
}

func (m *mapOutcome[In, T, Out]) Update(frame *touch.Frame) RecResult[Out] {
	return Map(m.rec.Update(frame), m.f)
}

// flatMapOutcome lets f downgrade a success into a failure.
type flatMapOutcome[In, T, Out any] struct {
	rec Recognizer[In, T]
	f   func(T) RecResult[Out]
}

// FlatMapOutcome builds a Recognizer whose successful output is produced
// by applying f to rec's output; f may itself report Failed, letting a
// recognized-but-rejected outcome (e.g. "no cardinal direction matched")
// fail the whole composite.
func FlatMapOutcome[In, T, Out any](rec Recognizer[In, T], f func(T) RecResult[Out]) Recognizer[In, Out] {
	return &flatMapOutcome[In, T, Out]{rec: rec, f: f}
}

func (m *flatMapOutcome[In, T, Out]) Init(input In, frame *touch.Frame) {
	m.rec.Init(input, frame)
}

func (m *flatMapOutcome[In, T, Out]) Update(frame *touch.Frame) RecResult[Out] {
	return AndThen(m.rec.Update(frame), m.f)
}

// filterOutcome only lets a success through if p(out) holds.
type filterOutcome[In, Out any] struct {
	rec Recognizer[In, Out]
	p   func(Out) bool
}

// FilterOutcome builds a Recognizer that succeeds only when rec succeeds
// and p holds for its output; otherwise the success is downgraded to a
// failure.
func FilterOutcome[In, Out any](rec Recognizer[In, Out], p func(Out) bool) Recognizer[In, Out] {
	return &filterOutcome[In, Out]{rec: rec, p: p}
}

func (f *filterOutcome[In, Out]) Init(input In, frame *touch.Frame) {
	f.rec.Init(input, frame)
}

func (f *filterOutcome[In, Out]) Update(frame *touch.Frame) RecResult[Out] {
	return AndThen(f.rec.Update(frame), func(out Out) RecResult[Out] {
		if f.p(out) {
			return Success(out)
		}
		return Fail[Out]()
	})
}

// splitInput rewraps rec to accept a richer input X, stashing the part of
// X that rec doesn't need and rejoining it with rec's output on success.
type splitInput[X, Stash, In, Out any] struct {
	rec    Recognizer[In, Out]
	split  func(X) (Stash, In)
	stash  Stash
}

// SplitInput builds a Recognizer that accepts input of type X, using
// split to separate it into a part to stash (Stash) and a part to pass
// to rec (In); on success, the stashed part is rejoined with rec's
// output. This threads data past a recognizer that only needs part of
// the input it was handed.
func SplitInput[X, Stash, In, Out any](rec Recognizer[In, Out], split func(X) (Stash, In)) Recognizer[X, struct {
	Stash Stash
	Out   Out
}] {
	return &splitInput[X, Stash, In, Out]{rec: rec, split: split}
}

func (s *splitInput[X, Stash, In, Out]) Init(input X, frame *touch.Frame) {
	stash, recIn := s.split(input)
	s.stash = stash
	s.rec.Init(recIn, frame)
}

func (s *splitInput[X, Stash, In, Out]) Update(frame *touch.Frame) RecResult[struct {
	Stash Stash
	Out   Out
}] {
	return Map(s.rec.Update(frame), func(out Out) struct {
		Stash Stash
		Out   Out
	} {
		return struct {
			Stash Stash
			Out   Out
		}{Stash: s.stash, Out: out}
	})
}

// constraint runs fil in parallel with rec; if fil fails on a tick, the
// whole composite fails without updating rec that tick.
type constraint[In, Out any] struct {
	rec Recognizer[In, Out]
	fil Filter
}

// Constrain builds a Recognizer that recognizes the same gesture as rec,
// but fails immediately whenever fil fails.
func Constrain[In, Out any](rec Recognizer[In, Out], fil Filter) Recognizer[In, Out] {
	return &constraint[In, Out]{rec: rec, fil: fil}
}

func (c *constraint[In, Out]) Init(input In, frame *touch.Frame) {
	c.rec.Init(input, frame)
	c.fil.Init(frame)
}

func (c *constraint[In, Out]) Update(frame *touch.Frame) RecResult[Out] {
	if c.fil.Update(frame) == FilterFailed {
		return Fail[Out]()
	}
	return c.rec.Update(frame)
}
