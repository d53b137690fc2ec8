package control

import (
	"math"
	"testing"

	"github.com/san-kum/loopsim/internal/dynamo"
)

func TestRamp(t *testing.T) {
	r := NewRamp(0.5, math.Pi)

	tests := []struct {
		t      float64
		target float64
	}{
		{0, 0.5},
		{1, 0.5 + math.Pi},
		{-2, 0.5 - 2*math.Pi},
	}

	for _, tt := range tests {
		u := r.Compute(nil, tt.t)
		if math.Abs(u[0]-tt.target) > 1e-12 {
			t.Errorf("t=%v: target = %v, want %v", tt.t, u[0], tt.target)
		}
		if u[1] != math.Pi {
			t.Errorf("t=%v: rate = %v, want pi", tt.t, u[1])
		}
	}
}

type fixedLeader struct{ s dynamo.State }

func (l *fixedLeader) State() dynamo.State { return l.s }

func TestFollowReadsLiveLeader(t *testing.T) {
	leader := &fixedLeader{s: dynamo.State{1.0, 2.0}}
	f := NewFollow(leader, math.Pi/2)

	u := f.Compute(nil, 0)
	if u[0] != 1.0+math.Pi/2 || u[1] != 2.0 {
		t.Errorf("unexpected control %v", u)
	}

	leader.s = dynamo.State{3.0, -1.0}
	u = f.Compute(nil, 0)
	if u[0] != 3.0+math.Pi/2 || u[1] != -1.0 {
		t.Errorf("follow did not pick up the new leader state: %v", u)
	}
}
