// internal/game/engine.go
//
// Core game engine for a single player's bowling game.
// Responsibilities:
//   - Create new games bound to an opaque player label.
//   - Route each roll to the current frame and advance the chain when it completes.
//   - Expose the prompt context (frame number, delivery slot) and the derived
//     scoreboard (symbols per frame, cumulative totals).
//
// Notes:
//   - Validation of the player label is the caller's job.
//   - randomID() is a compact hex identifier for correlating logs and snapshots.
package game

import (
	"crypto/rand"
	"encoding/hex"
)

// New constructs a new game for player, positioned on frame 1.
func New(player string) *Game {
	return &Game{
		ID:     randomID(),
		player: player,
		chain:  NewChain(),
	}
}

// Roll records a pin count for the current frame.
// Returns the classified outcome, or an error wrapping ErrInvalidRoll
// (state untouched, ask again) or ErrGameOver.
//
// State transitions:
//   - The frame completes and frames remain → the chain advances.
//   - Frame 10 completes → Ended() becomes true.
func (g *Game) Roll(pins int) (Outcome, error) {
	if g.chain.Ended() {
		return Outcome{}, ErrGameOver
	}
	o, err := g.chain.Current().Record(pins)
	if err != nil {
		return Outcome{}, err
	}
	if g.chain.Current().Complete() && !g.chain.Current().Final() {
		if err := g.chain.Advance(); err != nil {
			return o, err
		}
	}
	return o, nil
}

// Player is the label the game was created with.
func (g *Game) Player() string { return g.player }

// Ended reports whether the tenth frame is complete.
func (g *Game) Ended() bool { return g.chain.Ended() }

// CurrentFrame is the 1-based number of the frame taking rolls.
func (g *Game) CurrentFrame() int { return g.chain.CurrentIndex() }

// Slot is the 1-based delivery within the current frame.
func (g *Game) Slot() int { return g.chain.Current().Slot() }

// Chain exposes the frames for read-only use.
func (g *Game) Chain() *Chain { return g.chain }

// Scores resolves the cumulative totals for all ten frames.
func (g *Game) Scores() []Total { return Resolve(g.chain) }

// Symbols returns the scoreboard marks of every frame reached so far.
func (g *Game) Symbols() [][]string {
	frames := g.chain.Frames()
	out := make([][]string, len(frames))
	for i, f := range frames {
		out[i] = f.Symbols()
	}
	return out
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
