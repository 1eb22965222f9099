package game

import (
	"testing"

	"github.com/smartystreets/assertions"
)

func so(t *testing.T, actual interface{}, assert func(interface{}, ...interface{}) string, expected ...interface{}) {
	t.Helper()
	if ok, message := assertions.So(actual, assert, expected...); !ok {
		t.Error(message)
	}
}

// rollMany feeds the same pin count into g n times.
func rollMany(t *testing.T, g *Game, pins, n int) {
	t.Helper()
	for x := 0; x < n; x++ {
		if _, err := g.Roll(pins); err != nil {
			t.Fatalf("roll %d of %d pins: %v", x+1, pins, err)
		}
	}
}

func rollAll(t *testing.T, g *Game, pins ...int) {
	t.Helper()
	for i, p := range pins {
		if _, err := g.Roll(p); err != nil {
			t.Fatalf("roll #%d (%d pins): %v", i+1, p, err)
		}
	}
}

// values returns the resolved cumulative values, stopping at the first pending frame.
func values(totals []Total) []int {
	var out []int
	for _, s := range totals {
		if !s.Resolved {
			break
		}
		out = append(out, s.Value)
	}
	return out
}
