package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ffgestures/internal/geom"
	"ffgestures/internal/recognizer"
	"ffgestures/internal/touch"
)

// scriptedGesture is a minimal Recognizer[Unit, string] driven by a fixed
// results script, used to exercise Manager's own lifecycle logic
// (rearm/dispatch/arbitration) without pulling in the real primitives.
type scriptedGesture struct {
	script    []recognizer.RecResult[string]
	i         int
	initCount int
}

func (s *scriptedGesture) Init(recognizer.Unit, *touch.Frame) {
	s.initCount++
	s.i = 0
}

func (s *scriptedGesture) Update(*touch.Frame) recognizer.RecResult[string] {
	r := s.script[s.i]
	if s.i < len(s.script)-1 {
		s.i++
	}
	return r
}

func down(slot int) touch.Event { return touch.Down(slot, geom.Point{}) }

func TestManagerIgnoresNonBoundaryEvents(t *testing.T) {
	assert := assert.New(t)

	m := New[string]()
	r := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Success("g")}}
	m.Push(r)

	_, ok := m.Update(down(0))
	assert.False(ok)
	assert.Equal(0, r.initCount)
}

// A recognizer goes straight into the active set on Push, per the manager's
// contract (push(r) inserts into active); it is dispatched on the very
// first boundary without Manager ever calling Init on it itself. Only a
// recognizer found in inactive at a rearm gets an explicit Init call.
func TestManagerPushedRecognizerDispatchesWithoutManagerInit(t *testing.T) {
	assert := assert.New(t)

	m := New[string]()
	r := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Continue[string]()}}
	m.Push(r)

	m.Update(down(0))
	m.Update(touch.FrameEvent())

	assert.Equal(0, r.initCount)
	assert.Len(m.active, 1)
}

func TestManagerDoesNotReinitMidGesture(t *testing.T) {
	assert := assert.New(t)

	m := New[string]()
	// One failed activation to get r retired into inactive, so the next
	// rearm gives it a real Init call to track.
	r := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Fail[string]()}}
	m.Push(r)
	m.Update(down(0))
	m.Update(touch.FrameEvent())
	m.Update(touch.Up(0))
	m.Update(touch.FrameEvent())
	assert.Equal(0, r.initCount)

	r.script = []recognizer.RecResult[string]{
		recognizer.Continue[string](),
		recognizer.Continue[string](),
	}
	m.Update(down(0))
	m.Update(touch.FrameEvent())
	assert.Equal(1, r.initCount)

	m.Update(touch.Motion(0, geom.Point{X: 1}))
	m.Update(touch.FrameEvent())
	assert.Equal(1, r.initCount, "active recognizer must not be reinitialized mid-gesture")
}

func TestManagerReturnsGestureOnSuccessAndRetires(t *testing.T) {
	assert := assert.New(t)

	m := New[string]()
	r := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Success("swipe")}}
	m.Push(r)

	m.Update(down(0))
	g, ok := m.Update(touch.FrameEvent())
	require.True(t, ok)
	assert.Equal("swipe", g)
	assert.Len(m.inactive, 1)
	assert.Len(m.active, 0)
}

func TestManagerRearmsRetiredRecognizerOnNextWindow(t *testing.T) {
	assert := assert.New(t)

	m := New[string]()
	r := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Success("swipe")}}
	m.Push(r)

	m.Update(down(0))
	_, ok := m.Update(touch.FrameEvent())
	require.True(t, ok)
	assert.Equal(0, r.initCount, "Manager never Inits a freshly pushed, still-active recognizer")

	// Hand leaves, then returns: a new gesture window opens and the
	// retired recognizer is reinitialized, this time via the rearm path.
	m.Update(touch.Up(0))
	m.Update(touch.FrameEvent())

	m.Update(down(0))
	m.Update(touch.FrameEvent())
	assert.Equal(1, r.initCount)
}

func TestManagerLastWriterWinsOnSimultaneousSuccess(t *testing.T) {
	assert := assert.New(t)

	m := New[string]()
	a := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Success("a")}}
	b := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Success("b")}}
	m.Push(a)
	m.Push(b)

	m.Update(down(0))
	g, ok := m.Update(touch.FrameEvent())
	require.True(t, ok)
	assert.Equal("b", g, "the last-dispatched recognizer should win")
}

func TestManagerAtMostOneGesturePerTick(t *testing.T) {
	m := New[string]()
	a := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Success("a")}}
	b := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Success("b")}}
	m.Push(a)
	m.Push(b)

	m.Update(down(0))
	_, ok := m.Update(touch.FrameEvent())
	assert.True(t, ok)

	// Both recognizers retired on that tick, so the next tick boundary
	// produces no further gesture.
	_, ok2 := m.Update(touch.FrameEvent())
	assert.False(t, ok2)
}

func TestManagerFailedRecognizerGoesInactive(t *testing.T) {
	assert := assert.New(t)

	m := New[string]()
	r := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Fail[string]()}}
	m.Push(r)

	m.Update(down(0))
	_, ok := m.Update(touch.FrameEvent())
	assert.False(ok)
	assert.Len(m.active, 0)
	assert.Len(m.inactive, 1)
}

func TestManagerPushInsertsDirectlyIntoActive(t *testing.T) {
	assert := assert.New(t)

	m := New[string]()
	r := &scriptedGesture{script: []recognizer.RecResult[string]{recognizer.Success("late")}}
	m.Push(r)

	assert.Len(m.active, 1)
	assert.Len(m.inactive, 0)

	m.Update(down(0))
	g, ok := m.Update(touch.FrameEvent())
	require.True(t, ok)
	assert.Equal("late", g)
}
