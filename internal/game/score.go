// internal/game/score.go
//
// Score resolution.
// Walks the chain and produces one cumulative Total per frame:
//   - open frame:  both rolls.
//   - spare:       10 + the next roll.
//   - strike:      10 + the next two rolls, wherever they were thrown
//                  (consecutive strikes cascade, into frame 10's bonus balls).
//   - frame 10:    the sum of its rolls once complete.
//
// A frame whose rolls or bonus rolls are missing is pending, and so is every
// frame after it. Resolve keeps no state and never writes to the chain.

package game

// Resolve computes the ten cumulative totals for the chain.
func Resolve(c *Chain) []Total {
	totals := make([]Total, FrameCount)
	rolls, starts := c.rolls()

	sum := 0
	for i, start := range starts {
		f := c.frames[i]
		if !f.Complete() {
			break
		}
		v, ok := frameValue(f, rolls, start)
		if !ok {
			break
		}
		sum += v
		totals[i] = Total{Value: sum, Resolved: true}
	}
	return totals
}

// frameValue is the points a complete frame earns, or false while its bonus
// rolls are still to come.
func frameValue(f *Frame, rolls []int, start int) (int, bool) {
	if f.Final() {
		return f.pinTotal(), true
	}
	switch f.outcomes[len(f.outcomes)-1].Kind {
	case KindStrike:
		return withBonus(rolls, start+1, 2)
	case KindSpare:
		return withBonus(rolls, start+2, 1)
	case KindOpen, KindGutter:
		return f.pinTotal(), true
	}
	return 0, false
}

// withBonus is 10 plus the n rolls from offset from.
func withBonus(rolls []int, from, n int) (int, bool) {
	if from+n > len(rolls) {
		return 0, false
	}
	v := PinCount
	for _, p := range rolls[from : from+n] {
		v += p
	}
	return v, true
}
