// Package manager implements the lifecycle and dispatch logic that
// multiplexes a set of candidate recognizers against a single touch
// event stream: Manager owns the active/inactive/retired bookkeeping and
// the single Frame all recognizers observe.
package manager

import (
	"ffgestures/internal/recognizer"
	"ffgestures/internal/touch"
)

// Manager owns a heterogeneous set of recognizer instances that all
// produce gesture values of type G, dispatching touch events to them and
// rearming them at the start of each new gesture window. G is typically
// an application-level enum such as cmd/ffgestures's Gesture type; the
// recognition core itself never refers to it by name.
type Manager[G any] struct {
	active   []recognizer.Recognizer[recognizer.Unit, G]
	inactive []recognizer.Recognizer[recognizer.Unit, G]
	buf      []recognizer.Recognizer[recognizer.Unit, G]

	frame *touch.Frame
}

// New returns an empty Manager ready to have recognizers Push'd onto it.
func New[G any]() *Manager[G] {
	return &Manager[G]{frame: touch.NewFrame()}
}

// Push registers a recognizer. It is inserted directly into the active
// set without an Init call, so it is dispatched from the next frame
// boundary on, even mid-gesture; Manager first calls Init on it at the
// rearm that follows its retirement.
func (m *Manager[G]) Push(r recognizer.Recognizer[recognizer.Unit, G]) {
	m.active = append(m.active, r)
}

// Update feeds one touch event into the frame. It returns a recognized
// gesture and true only when ev is a frame boundary and some recognizer
// succeeded on this tick; at most one gesture is returned per tick, and
// if multiple recognizers succeed simultaneously the last one dispatched
// wins.
func (m *Manager[G]) Update(ev touch.Event) (G, bool) {
	m.frame.Update(ev)

	var zero G
	if ev.Kind != touch.FrameBoundary {
		return zero, false
	}

	if m.frame.Last.NumDown == 0 && m.frame.Cur.NumDown > 0 {
		for _, r := range m.inactive {
			r.Init(recognizer.Unit{}, m.frame)
		}
		m.active = append(m.active, m.inactive...)
		m.inactive = m.inactive[:0]
	}

	var (
		ret   G
		found bool
	)

	for _, r := range m.active {
		switch result := r.Update(m.frame); result.Status {
		case recognizer.Continuing:
			m.buf = append(m.buf, r)
		case recognizer.Failed:
			m.inactive = append(m.inactive, r)
		case recognizer.Succeeded:
			ret = result.Out
			found = true
			m.inactive = append(m.inactive, r)
		}
	}

	m.active, m.buf = m.buf, m.active[:0]
	m.frame.Advance()

	return ret, found
}
