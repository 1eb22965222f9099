package game

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
)

func TestRackKnockBounds(t *testing.T) {
	for standing := 0; standing <= PinCount; standing++ {
		for n := -1; n <= PinCount+1; n++ {
			r := &Rack{standing: standing}
			left, err := r.Knock(n)
			if n < 0 || n > standing {
				so(t, errors.Is(err, ErrInvalidRoll), should.BeTrue)
				so(t, r.Standing(), should.Equal, standing)
				continue
			}
			so(t, err, should.BeNil)
			so(t, left, should.Equal, standing-n)
			so(t, r.Standing(), should.Equal, standing-n)
		}
	}
}

func TestRackResetAndCleared(t *testing.T) {
	r := NewRack()
	so(t, r.Cleared(), should.BeFalse)

	_, err := r.Knock(10)
	so(t, err, should.BeNil)
	so(t, r.Cleared(), should.BeTrue)

	r.Reset()
	so(t, r.Standing(), should.Equal, PinCount)
}
