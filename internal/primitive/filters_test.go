package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ffgestures/internal/geom"
	"ffgestures/internal/recognizer"
	"ffgestures/internal/touch"
)

func TestNoMovementPassesBelowThreshold(t *testing.T) {
	assert := assert.New(t)

	f := touch.NewFrame()
	f.Update(touch.Down(0, geom.Point{X: 0, Y: 0}))
	f.Advance()

	nm := NewNoMovement()
	nm.Init(f)

	f.Update(touch.Motion(0, geom.Point{X: 0.3, Y: 0}))
	assert.Equal(recognizer.Passed, nm.Update(f))
}

func TestNoMovementFailsAboveThreshold(t *testing.T) {
	assert := assert.New(t)

	f := touch.NewFrame()
	f.Update(touch.Down(0, geom.Point{X: 0, Y: 0}))
	f.Advance()

	nm := NewNoMovement()
	nm.Init(f)

	f.Update(touch.Motion(0, geom.Point{X: 5, Y: 0}))
	assert.Equal(recognizer.FilterFailed, nm.Update(f))
}

func TestNoMovementAcceptsArrivingFinger(t *testing.T) {
	assert := assert.New(t)

	f := touch.NewFrame()
	f.Update(touch.Down(0, geom.Point{X: 0, Y: 0}))
	f.Advance()

	nm := NewNoMovement()
	nm.Init(f)

	// A second finger arrives; its baseline should be absorbed, not
	// compared against the empty original baseline.
	f.Update(touch.Down(1, geom.Point{X: 50, Y: 50}))
	assert.Equal(recognizer.Passed, nm.Update(f))
	f.Advance()

	// The new finger sliding slightly should still pass.
	f.Update(touch.Motion(1, geom.Point{X: 50.3, Y: 50}))
	assert.Equal(recognizer.Passed, nm.Update(f))
}

func TestNoRelativeMovementPassesOnRigidTranslation(t *testing.T) {
	assert := assert.New(t)

	f := touch.NewFrame()
	f.Update(touch.Down(0, geom.Point{X: 0, Y: 0}))
	f.Update(touch.Down(1, geom.Point{X: 10, Y: 0}))
	f.Advance()

	nrm := NewNoRelativeMovement()
	nrm.Init(f)

	// Translate the whole hand together: shape unchanged.
	f.Update(touch.Motion(0, geom.Point{X: 3, Y: 0}))
	f.Update(touch.Motion(1, geom.Point{X: 13, Y: 0}))
	assert.Equal(recognizer.Passed, nrm.Update(f))
}

func TestNoRelativeMovementFailsOnShapeChange(t *testing.T) {
	assert := assert.New(t)

	f := touch.NewFrame()
	f.Update(touch.Down(0, geom.Point{X: 0, Y: 0}))
	f.Update(touch.Down(1, geom.Point{X: 10, Y: 0}))
	f.Advance()

	nrm := NewNoRelativeMovement()
	nrm.Init(f)

	// Only one finger slides far enough to shift the centroid relative to
	// the other: the hand's shape changes.
	f.Update(touch.Motion(0, geom.Point{X: 25, Y: 0}))
	assert.Equal(recognizer.FilterFailed, nrm.Update(f))
}

func TestNoRelativeMovementToleratesFingerArrival(t *testing.T) {
	assert := assert.New(t)

	f := touch.NewFrame()
	f.Update(touch.Down(0, geom.Point{X: 0, Y: 0}))
	f.Update(touch.Down(1, geom.Point{X: 10, Y: 0}))
	f.Advance()

	nrm := NewNoRelativeMovement()
	nrm.Init(f)

	f.Update(touch.Down(2, geom.Point{X: 5, Y: 10}))
	assert.Equal(recognizer.Passed, nrm.Update(f))
}
