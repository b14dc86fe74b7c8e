package touch

import "ffgestures/internal/geom"

// MaxSlots bounds how many simultaneous fingers the recognizer core pays
// attention to. Slots at or beyond this index are dropped by Frame.Update.
const MaxSlots = 10

// Snapshot is the state of all tracked fingers at a single tick: which
// slots are down, and their positions. NumDown is always kept consistent
// with the popcount of Down.
type Snapshot struct {
	NumDown int
	Down    [MaxSlots]bool
	Pos     [MaxSlots]geom.Point
}

// MeanPos returns the arithmetic mean of the positions of all down
// fingers, or the zero vector if none are down.
func (s Snapshot) MeanPos() geom.Point {
	var sum geom.Point
	for i := 0; i < MaxSlots; i++ {
		if s.Down[i] {
			sum = sum.Add(s.Pos[i])
		}
	}
	if s.NumDown == 0 {
		return geom.Point{}
	}
	return sum.Div(float64(s.NumDown))
}

// MeanPosFiltered returns the arithmetic mean of the positions of fingers
// down in both s and other, or the zero vector if the intersection is
// empty.
func (s Snapshot) MeanPosFiltered(other Snapshot) geom.Point {
	var sum geom.Point
	count := 0
	for i := 0; i < MaxSlots; i++ {
		if s.Down[i] && other.Down[i] {
			sum = sum.Add(s.Pos[i])
			count++
		}
	}
	if count == 0 {
		return geom.Point{}
	}
	return sum.Div(float64(count))
}

// MeanDist returns the average Euclidean distance, over the intersection
// of down slots in s and other, between each finger's position in s and
// in other. Returns zero if the intersection is empty or if s has no
// fingers down.
func (s Snapshot) MeanDist(other Snapshot) float64 {
	sum := 0.0
	count := 0
	for i := 0; i < MaxSlots; i++ {
		if s.Down[i] && other.Down[i] {
			sum += s.Pos[i].Sub(other.Pos[i]).Length()
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// SetDown marks slot i as down at position pos, incrementing NumDown if
// it wasn't already down.
func (s *Snapshot) SetDown(i int, pos geom.Point) {
	if !s.Down[i] {
		s.NumDown++
		s.Down[i] = true
	}
	s.Pos[i] = pos
}

// SetUp marks slot i as up, decrementing NumDown if it was down.
func (s *Snapshot) SetUp(i int) {
	if s.Down[i] {
		s.NumDown--
		s.Down[i] = false
	}
}

// Merge makes s's down set exactly match other's: slots down only in
// other are set down at other's position, slots down only in s are set
// up, and slots down in both keep s's position.
func (s *Snapshot) Merge(other Snapshot) {
	for i := 0; i < MaxSlots; i++ {
		switch {
		case !s.Down[i] && other.Down[i]:
			s.SetDown(i, other.Pos[i])
		case s.Down[i] && !other.Down[i]:
			s.SetUp(i)
		}
	}
}

// Translate offsets every stored position (down or not) by delta. Used by
// filters that track a hand configuration relative to its own centroid.
func (s *Snapshot) Translate(delta geom.Point) {
	for i := 0; i < MaxSlots; i++ {
		s.Pos[i] = s.Pos[i].Add(delta)
	}
}

// InterpolateTo blends, for every slot down in other, s's position toward
// other's by lambda in [0, 1].
func (s *Snapshot) InterpolateTo(other Snapshot, lambda float64) {
	if lambda < 0 || lambda > 1 {
		panic("touch: InterpolateTo lambda out of [0,1]")
	}
	for i := 0; i < MaxSlots; i++ {
		if other.Down[i] {
			s.Pos[i] = geom.Point{
				X: s.Pos[i].X*(1-lambda) + other.Pos[i].X*lambda,
				Y: s.Pos[i].Y*(1-lambda) + other.Pos[i].Y*lambda,
			}
		}
	}
}
