package game

import "fmt"

// PinCount is the number of pins in a full rack.
const PinCount = 10

// Rack tracks the pins still standing within one delivery sub-sequence.
type Rack struct {
	standing int
}

// NewRack returns a full rack.
func NewRack() *Rack {
	return &Rack{standing: PinCount}
}

// Reset stands all pins back up.
func (r *Rack) Reset() { r.standing = PinCount }

// Knock removes n pins and returns how many are left standing.
// The rack is left untouched when n is out of range.
func (r *Rack) Knock(n int) (int, error) {
	if n < 0 || n > r.standing {
		return r.standing, fmt.Errorf("%w: %d pins with %d standing", ErrInvalidRoll, n, r.standing)
	}
	r.standing -= n
	return r.standing, nil
}

// Standing reports the pins currently up.
func (r *Rack) Standing() int { return r.standing }

// Cleared reports whether every pin is down.
func (r *Rack) Cleared() bool { return r.standing == 0 }
