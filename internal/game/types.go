// internal/game/types.go
//
// Core type definitions for the bowling engine.
// Defines:
//   - Kind/Outcome: per-roll classification (strike/spare/open/gutter).
//   - Total: cumulative score through a frame, possibly still pending.
//   - Game: state for a single player's game.

package game

// Kind identifies which variant of Outcome a roll produced.
// The set is closed; every switch over Kind handles all four values.
type Kind uint8

const (
	// KindOpen: the rack was not cleared and at least one pin fell.
	KindOpen Kind = iota
	// KindGutter: the rack was not cleared and no pin fell.
	KindGutter
	// KindStrike: all ten pins on the first delivery of a rack.
	KindStrike
	// KindSpare: the rack cleared on its second delivery.
	KindSpare
)

func (k Kind) String() string {
	switch k {
	case KindStrike:
		return "strike"
	case KindSpare:
		return "spare"
	case KindGutter:
		return "gutter"
	default:
		return "open"
	}
}

// Scoreboard symbols.
const (
	SymbolStrike = "X"
	SymbolSpare  = "/"
	SymbolGutter = "-"
)

// Outcome is the immutable result of one recorded roll.
type Outcome struct {
	Kind Kind
	Pins int // pins knocked down by this delivery
}

// Total is the running score through one frame.
// Resolved is false while the frame, or one of the bonus rolls it depends on,
// has not been thrown yet; Value is meaningless in that case.
type Total struct {
	Value    int
	Resolved bool
}

// Game holds the state of a single player's game.
type Game struct {
	ID     string // Unique game identifier (random hex string).
	player string // Opaque label supplied by the caller.
	chain  *Chain
}
