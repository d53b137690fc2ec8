package control

import "github.com/san-kum/loopsim/internal/dynamo"

// Leader exposes the live state another controller chases.
type Leader interface {
	State() dynamo.State
}

// Follow targets the leader's current position shifted by Offset, at the
// leader's current velocity. It reads the leader at Compute time, so the
// caller decides whether the follower sees the pre- or post-step state.
type Follow struct {
	Leader Leader
	Offset float64
}

func NewFollow(leader Leader, offset float64) *Follow {
	return &Follow{Leader: leader, Offset: offset}
}

func (f *Follow) Compute(x dynamo.State, t float64) dynamo.Control {
	s := f.Leader.State()
	return dynamo.Control{s.Position() + f.Offset, s.Velocity()}
}
