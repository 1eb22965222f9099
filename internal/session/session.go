// internal/session/session.go
//
// Turn loop for one or more players.
// Responsibilities:
//   - Seat players: ask each seat for a name, refusing duplicates.
//   - Play frame by frame: every player bowls their whole current frame
//     before the next player steps up.
//   - Re-prompt on rejected rolls; any other error ends the session.
//   - After every roll publish a snapshot to the store and redraw the board.
//
// Notes:
//   - Each player owns an independent *game.Game; only this loop mutates it.
//   - Readers (spectator API, export) only ever see board.Sheet copies.

package session

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/bowling/internal/board"
	"github.com/robalobadob/bowling/internal/game"
	"github.com/robalobadob/bowling/internal/store"
)

// NameSource supplies a player label for a seat (1-based).
type NameSource interface {
	Name(ctx context.Context, seat int) (string, error)
}

// RollSource supplies one pin count for the given frame and delivery slot.
type RollSource interface {
	Roll(ctx context.Context, player string, frame, slot int) (int, error)
}

// Renderer draws the board for the current sheets.
type Renderer interface {
	Render(sheets []board.Sheet) string
}

// Session owns the games of everyone bowling.
type Session struct {
	games  []*game.Game
	rolls  RollSource
	render Renderer
	store  store.Store
	out    io.Writer
}

// Seat asks names for count players and starts a game for each.
func Seat(ctx context.Context, names NameSource, out io.Writer, count int) ([]*game.Game, error) {
	games := make([]*game.Game, 0, count)
	taken := make(map[string]bool, count)
	for seat := 1; seat <= count; {
		name, err := names.Name(ctx, seat)
		if err != nil {
			return nil, fmt.Errorf("read name for seat %d: %w", seat, err)
		}
		if taken[name] {
			fmt.Fprintf(out, "%s is already playing.\n", name)
			continue
		}
		taken[name] = true
		g := game.New(name)
		log.Info().Str("player", name).Str("game", g.ID).Int("seat", seat).Msg("game started")
		games = append(games, g)
		seat++
	}
	return games, nil
}

// New builds a session over already seated games.
func New(games []*game.Game, rolls RollSource, render Renderer, st store.Store, out io.Writer) *Session {
	return &Session{games: games, rolls: rolls, render: render, store: st, out: out}
}

// Run plays every game to the end.
func (s *Session) Run(ctx context.Context) error {
	if err := s.refresh(ctx); err != nil {
		return err
	}
	for frame := 1; frame <= game.FrameCount; frame++ {
		for _, g := range s.games {
			for !g.Ended() && g.CurrentFrame() == frame {
				if err := s.turn(ctx, g); err != nil {
					return err
				}
			}
		}
	}
	for _, g := range s.games {
		sheet := board.FromGame(g)
		log.Info().Str("player", g.Player()).Str("game", g.ID).Int("score", sheet.Score()).Msg("game ended")
	}
	return nil
}

// turn asks for and records a single roll.
func (s *Session) turn(ctx context.Context, g *game.Game) error {
	frame, slot := g.CurrentFrame(), g.Slot()
	pins, err := s.rolls.Roll(ctx, g.Player(), frame, slot)
	if err != nil {
		return fmt.Errorf("read roll for %s: %w", g.Player(), err)
	}

	o, err := g.Roll(pins)
	if errors.Is(err, game.ErrInvalidRoll) {
		log.Warn().Err(err).Str("player", g.Player()).Int("frame", frame).Int("slot", slot).Msg("roll rejected")
		fmt.Fprintf(s.out, "%s: %v, try again.\n", g.Player(), err)
		return nil
	}
	if err != nil {
		return fmt.Errorf("roll for %s: %w", g.Player(), err)
	}

	log.Debug().
		Str("player", g.Player()).
		Int("frame", frame).
		Int("slot", slot).
		Int("pins", pins).
		Stringer("outcome", o.Kind).
		Msg("roll")
	return s.refresh(ctx)
}

// refresh publishes every sheet and redraws the board.
func (s *Session) refresh(ctx context.Context) error {
	sheets := s.Sheets()
	for _, sheet := range sheets {
		if err := s.store.Save(ctx, sheet); err != nil {
			return fmt.Errorf("publish sheet for %s: %w", sheet.Player, err)
		}
	}
	fmt.Fprint(s.out, s.render.Render(sheets))
	return nil
}

// Sheets snapshots every game in seat order.
func (s *Session) Sheets() []board.Sheet {
	sheets := make([]board.Sheet, len(s.games))
	for i, g := range s.games {
		sheets[i] = board.FromGame(g)
	}
	return sheets
}
