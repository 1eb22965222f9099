// internal/game/frame.go
//
// Frame state machine.
// Frames 1-9 take one strike or two balls at a single rack.
// Frame 10 adds bonus deliveries:
//   - slot 1 strike: the rack is reset and two more balls follow.
//   - slots 1-2 spare: the rack is reset and one more ball follows.
//   - after X n the third ball is the second delivery at the slot 2 rack,
//     so it can be a spare but never more than the pins left.

package game

import "fmt"

// FrameCount is the number of frames in a game.
const FrameCount = 10

// Frame records the deliveries of a single frame.
type Frame struct {
	index     int
	rack      *Rack
	delivered int // balls thrown at the current rack
	rolls     []int
	outcomes  []Outcome
	complete  bool
}

func newFrame(index int) *Frame {
	return &Frame{index: index, rack: NewRack()}
}

// Index is the 1-based frame number.
func (f *Frame) Index() int { return f.index }

// Final reports whether this is the tenth frame.
func (f *Frame) Final() bool { return f.index == FrameCount }

// Complete reports whether the frame accepts no more rolls.
func (f *Frame) Complete() bool { return f.complete }

// Record knocks down pins on the frame's rack and classifies the delivery.
// On error the frame is unchanged.
func (f *Frame) Record(pins int) (Outcome, error) {
	if f.complete {
		return Outcome{}, fmt.Errorf("%w: frame %d", ErrFrameComplete, f.index)
	}
	if _, err := f.rack.Knock(pins); err != nil {
		return Outcome{}, fmt.Errorf("frame %d: %w", f.index, err)
	}
	f.delivered++

	o := classify(f.delivered, f.rack.Cleared(), pins)
	f.rolls = append(f.rolls, pins)
	f.outcomes = append(f.outcomes, o)

	if f.Final() {
		f.settleFinal()
	} else {
		f.complete = o.Kind == KindStrike || f.delivered == 2
	}
	return o, nil
}

// settleFinal decides whether the tenth frame is over and, if not, whether
// the next ball is thrown at a fresh rack.
func (f *Frame) settleFinal() {
	switch len(f.rolls) {
	case 3:
		f.complete = true
		return
	case 2:
		if !f.earnedBonus() {
			f.complete = true
			return
		}
	}
	if f.rack.Cleared() {
		f.rack.Reset()
		f.delivered = 0
	}
}

// earnedBonus is true once slot 1 was a strike or slots 1-2 a spare.
func (f *Frame) earnedBonus() bool {
	if len(f.outcomes) > 0 && f.outcomes[0].Kind == KindStrike {
		return true
	}
	return len(f.outcomes) > 1 && f.outcomes[1].Kind == KindSpare
}

// Slot is the 1-based delivery slot the next roll fills.
// A complete frame reports its last slot.
func (f *Frame) Slot() int {
	if f.complete {
		return len(f.rolls)
	}
	return len(f.rolls) + 1
}

// Deliveries is 1 for a strike frame and 2 otherwise; the tenth frame
// reports the number of balls recorded.
func (f *Frame) Deliveries() int {
	if f.Final() {
		return len(f.rolls)
	}
	if len(f.outcomes) > 0 && f.outcomes[0].Kind == KindStrike {
		return 1
	}
	return 2
}

// Rolls returns a copy of the raw pin counts.
func (f *Frame) Rolls() []int {
	return append([]int(nil), f.rolls...)
}

// Outcomes returns a copy of the recorded outcomes.
func (f *Frame) Outcomes() []Outcome {
	return append([]Outcome(nil), f.outcomes...)
}

// Symbols returns the scoreboard marks for the recorded rolls.
func (f *Frame) Symbols() []string {
	out := make([]string, len(f.outcomes))
	for i, o := range f.outcomes {
		out[i] = o.Symbol()
	}
	return out
}

// pinTotal sums the raw pin counts.
func (f *Frame) pinTotal() int {
	n := 0
	for _, p := range f.rolls {
		n += p
	}
	return n
}
