package game

import "testing"

// scriptedRoller replays fixed rolls in order.
type scriptedRoller struct {
	t     *testing.T
	rolls []int
}

func (r *scriptedRoller) IntN(n int) int {
	r.t.Helper()
	if len(r.rolls) == 0 {
		r.t.Fatalf("scriptedRoller: out of rolls (IntN(%d))", n)
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	if v < 0 || v >= n {
		r.t.Fatalf("scriptedRoller: roll %d out of range [0,%d)", v, n)
	}
	return v
}

func rolls(t *testing.T, v ...int) *scriptedRoller {
	return &scriptedRoller{t: t, rolls: v}
}

func mustUniverse(t *testing.T) *Universe {
	t.Helper()
	u, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	return u
}

func mustSession(t *testing.T, d Difficulty, rng Roller) *Session {
	t.Helper()
	s, err := NewSession(mustUniverse(t), d, rng, nil)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

// routeIndex returns the 1-based menu choice for dest from the current planet.
func routeIndex(t *testing.T, s *Session, dest string) int {
	t.Helper()
	for i, r := range s.Routes() {
		if r.To == dest {
			return i + 1
		}
	}
	t.Fatalf("no route from %s to %s", s.Player.Location, dest)
	return 0
}
