package game

import (
	"testing"

	"github.com/smartystreets/assertions/should"
)

func TestPerfectGame(t *testing.T) {
	g := New("ABC")
	rollMany(t, g, 10, 12)

	so(t, g.Ended(), should.BeTrue)
	totals := g.Scores()
	for i, s := range totals {
		so(t, s.Resolved, should.BeTrue)
		so(t, s.Value, should.Equal, 30*(i+1))
	}
	so(t, totals[FrameCount-1].Value, should.Equal, 300)
}

func TestGutterGame(t *testing.T) {
	g := New("ABC")
	rollMany(t, g, 0, 20)

	so(t, g.Ended(), should.BeTrue)
	so(t, values(g.Scores()), should.Resemble, []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
}

func TestAllOnes(t *testing.T) {
	g := New("ABC")
	rollMany(t, g, 1, 20)
	so(t, g.Scores()[FrameCount-1].Value, should.Equal, 20)
}

func TestSpareWaitsForNextRoll(t *testing.T) {
	g := New("ABC")
	rollAll(t, g, 5, 5)
	so(t, g.Scores()[0].Resolved, should.BeFalse)

	rollAll(t, g, 3)
	so(t, g.Scores()[0], should.Resemble, Total{Value: 13, Resolved: true})
	so(t, g.Scores()[1].Resolved, should.BeFalse)

	rollAll(t, g, 4)
	so(t, values(g.Scores()), should.Resemble, []int{13, 20})
}

func TestSpareThenOpenFramesThenSpareBonus(t *testing.T) {
	g := New("ABC")
	rollAll(t, g, 5, 5)
	for frame := 2; frame < FrameCount; frame++ {
		rollAll(t, g, 3, 4)
	}
	rollAll(t, g, 5, 5)
	so(t, g.Ended(), should.BeFalse)
	rollAll(t, g, 5)
	so(t, g.Ended(), should.BeTrue)

	totals := g.Scores()
	so(t, totals[0].Value, should.Equal, 13)
	so(t, totals[1].Value, should.Equal, 20)
	so(t, totals[FrameCount-1].Value, should.Equal, 13+7*8+15)
}

func TestStrikeBonusCascades(t *testing.T) {
	g := New("ABC")
	rollAll(t, g, 10, 10)
	so(t, values(g.Scores()), should.BeEmpty)

	rollAll(t, g, 4)
	so(t, values(g.Scores()), should.Resemble, []int{24})

	rollAll(t, g, 2)
	so(t, values(g.Scores()), should.Resemble, []int{24, 40, 46})
}

func TestSpareFollowedByStrike(t *testing.T) {
	g := New("ABC")
	rollAll(t, g, 7, 3, 10, 0, 0)
	so(t, values(g.Scores()), should.Resemble, []int{20, 30, 30})
}

func TestStrikeInNinthWaitsForTenth(t *testing.T) {
	g := New("ABC")
	rollMany(t, g, 0, 16)
	rollAll(t, g, 10)

	so(t, g.CurrentFrame(), should.Equal, FrameCount)
	totals := g.Scores()
	so(t, totals[7], should.Resemble, Total{Value: 0, Resolved: true})
	so(t, totals[8].Resolved, should.BeFalse)
	so(t, totals[9].Resolved, should.BeFalse)

	rollAll(t, g, 10)
	so(t, g.Scores()[8].Resolved, should.BeFalse)

	rollAll(t, g, 10, 10)
	totals = g.Scores()
	so(t, totals[8].Value, should.Equal, 30)
	so(t, totals[9].Value, should.Equal, 60)
}

func TestResolveIsIdempotent(t *testing.T) {
	g := New("ABC")
	rollAll(t, g, 10, 9, 1, 5, 3, 10, 10)
	so(t, Resolve(g.Chain()), should.Resemble, Resolve(g.Chain()))
	so(t, values(g.Scores()), should.Resemble, []int{20, 35, 43})
}

func TestIncompleteFrameIsPending(t *testing.T) {
	g := New("ABC")
	rollAll(t, g, 3, 4, 2)
	totals := g.Scores()
	so(t, totals[0], should.Resemble, Total{Value: 7, Resolved: true})
	so(t, totals[1].Resolved, should.BeFalse)
}
