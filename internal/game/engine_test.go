package game

import (
	"errors"
	"testing"

	"github.com/smartystreets/assertions/should"
)

func TestNewGame(t *testing.T) {
	g := New("ABC")
	so(t, g.Player(), should.Equal, "ABC")
	so(t, g.ID, should.HaveLength, 16)
	so(t, g.CurrentFrame(), should.Equal, 1)
	so(t, g.Slot(), should.Equal, 1)
	so(t, g.Ended(), should.BeFalse)
	so(t, New("ABC").ID, should.NotEqual, g.ID)
}

func TestRollAdvancesFrames(t *testing.T) {
	g := New("ABC")
	rollAll(t, g, 10)
	so(t, g.CurrentFrame(), should.Equal, 2)

	rollAll(t, g, 3)
	so(t, g.CurrentFrame(), should.Equal, 2)
	so(t, g.Slot(), should.Equal, 2)

	rollAll(t, g, 6)
	so(t, g.CurrentFrame(), should.Equal, 3)
	so(t, g.Symbols(), should.Resemble, [][]string{{"X"}, {"3", "6"}, {}})
}

func TestInvalidRollDoesNotAdvance(t *testing.T) {
	g := New("ABC")
	rollAll(t, g, 7)

	_, err := g.Roll(4)
	so(t, errors.Is(err, ErrInvalidRoll), should.BeTrue)
	so(t, g.CurrentFrame(), should.Equal, 1)
	so(t, g.Slot(), should.Equal, 2)
}

func TestGameEndsAfterOpenTenth(t *testing.T) {
	g := New("ABC")
	rollMany(t, g, 0, 18)
	rollAll(t, g, 4)
	so(t, g.Ended(), should.BeFalse)
	rollAll(t, g, 5)
	so(t, g.Ended(), should.BeTrue)

	_, err := g.Roll(1)
	so(t, errors.Is(err, ErrGameOver), should.BeTrue)
	so(t, errors.Is(err, ErrNoNextFrame), should.BeTrue)
}

func TestGameWaitsForBonusRoll(t *testing.T) {
	for _, opening := range [][]int{{10, 3}, {6, 4}} {
		g := New("ABC")
		rollMany(t, g, 0, 18)
		rollAll(t, g, opening...)
		so(t, g.Ended(), should.BeFalse)
		so(t, g.Slot(), should.Equal, 3)

		rollAll(t, g, 0)
		so(t, g.Ended(), should.BeTrue)
		so(t, g.CurrentFrame(), should.Equal, FrameCount)
	}
}

func TestChainAdvanceBounds(t *testing.T) {
	c := NewChain()
	so(t, c.Advance(), should.NotBeNil)

	for i := 1; i < FrameCount; i++ {
		_, _ = c.Current().Record(10)
		so(t, c.Advance(), should.BeNil)
	}
	so(t, c.CurrentIndex(), should.Equal, FrameCount)
	so(t, errors.Is(c.Advance(), ErrNoNextFrame), should.BeTrue)
	so(t, c.Frame(11), should.BeNil)
	so(t, c.Frame(3).Index(), should.Equal, 3)
}

func TestOutcomeKinds(t *testing.T) {
	so(t, KindStrike.String(), should.Equal, "strike")
	so(t, KindGutter.String(), should.Equal, "gutter")
	so(t, Outcome{Kind: KindOpen, Pins: 7}.Symbol(), should.Equal, "7")
}
