// internal/board/sheet.go
//
// Sheet is an immutable snapshot of one player's score sheet.
// It is what the renderer, the YAML export and the spectator API consume;
// none of them ever hold a *game.Game.

package board

import "github.com/robalobadob/bowling/internal/game"

// Sheet holds the displayable state of a single game.
type Sheet struct {
	Player string     `json:"player" yaml:"player"`
	GameID string     `json:"gameId" yaml:"game"`
	Frame  int        `json:"frame" yaml:"frame"`   // frame being bowled (10 once ended)
	Ended  bool       `json:"ended" yaml:"ended"`   // true once frame 10 is complete
	Marks  [][]string `json:"marks" yaml:"marks"`   // symbols per frame reached
	Totals []*int     `json:"totals" yaml:"totals"` // cumulative per frame; nil while pending
}

// FromGame takes a snapshot of g.
func FromGame(g *game.Game) Sheet {
	scores := g.Scores()
	totals := make([]*int, len(scores))
	for i, s := range scores {
		if s.Resolved {
			v := s.Value
			totals[i] = &v
		}
	}
	return Sheet{
		Player: g.Player(),
		GameID: g.ID,
		Frame:  g.CurrentFrame(),
		Ended:  g.Ended(),
		Marks:  g.Symbols(),
		Totals: totals,
	}
}

// Score is the latest resolved cumulative total, 0 before any frame resolves.
func (s Sheet) Score() int {
	score := 0
	for _, t := range s.Totals {
		if t == nil {
			break
		}
		score = *t
	}
	return score
}
