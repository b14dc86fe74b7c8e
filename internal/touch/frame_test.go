package touch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ffgestures/internal/geom"
)

func TestFrameAdvanceClearsFlagsAndCopiesCur(t *testing.T) {
	assert := assert.New(t)

	f := NewFrame()
	f.Update(Down(0, geom.Point{X: 1, Y: 1}))
	assert.True(f.TouchDown)
	assert.False(f.TouchUp)

	f.Advance()

	assert.False(f.TouchDown)
	assert.False(f.TouchUp)
	assert.Equal(f.Cur, f.Last)
	assert.Equal(1, f.Last.NumDown)
}

func TestFrameDownUpMotionSequence(t *testing.T) {
	assert := assert.New(t)

	f := NewFrame()
	f.Update(Down(0, geom.Point{X: 0, Y: 0}))
	f.Update(Down(1, geom.Point{X: 10, Y: 0}))
	f.Advance()

	f.Update(Motion(0, geom.Point{X: 3, Y: 0}))
	assert.False(f.TouchDown)
	assert.False(f.TouchUp)
	assert.Equal(geom.Point{X: 3, Y: 0}, f.Cur.Pos[0])

	f.Update(Up(1))
	assert.True(f.TouchUp)
	assert.Equal(1, f.Cur.NumDown)
}

func TestFrameDropsOutOfRangeSlot(t *testing.T) {
	assert := assert.New(t)

	f := NewFrame()
	f.Update(Down(MaxSlots, geom.Point{X: 1, Y: 1}))
	assert.False(f.TouchDown)
	assert.Equal(0, f.Cur.NumDown)
	assert.Equal(1, f.Anomalies)
}

func TestFrameDropsDoubleDown(t *testing.T) {
	assert := assert.New(t)

	f := NewFrame()
	f.Update(Down(0, geom.Point{X: 1, Y: 1}))
	f.Update(Down(0, geom.Point{X: 2, Y: 2}))

	assert.Equal(1, f.Cur.NumDown)
	assert.Equal(1, f.Anomalies)
	// Position from the dropped second down event must not apply.
	assert.Equal(geom.Point{X: 1, Y: 1}, f.Cur.Pos[0])
}

func TestFrameDropsUpOnAlreadyUpSlot(t *testing.T) {
	assert := assert.New(t)

	f := NewFrame()
	f.Update(Up(0))

	assert.False(f.TouchUp)
	assert.Equal(1, f.Anomalies)
}

func TestFrameCancelLiftsAllDownFingers(t *testing.T) {
	assert := assert.New(t)

	f := NewFrame()
	f.Update(Down(0, geom.Point{X: 1, Y: 1}))
	f.Update(Down(1, geom.Point{X: 2, Y: 2}))
	f.Advance()

	f.Update(Cancel())

	assert.True(f.TouchUp)
	assert.Equal(0, f.Cur.NumDown)
	assert.False(f.Cur.Down[0])
	assert.False(f.Cur.Down[1])
}

func TestFrameBoundaryEventIsNoOpOnState(t *testing.T) {
	assert := assert.New(t)

	f := NewFrame()
	f.Update(Down(0, geom.Point{X: 1, Y: 1}))
	before := f.Cur
	f.Update(FrameEvent())

	assert.Equal(before, f.Cur)
	assert.True(f.TouchDown)
}
