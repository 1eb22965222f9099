package game

import "strconv"

// classify turns one delivery into an Outcome.
// delivery is 1 for the first ball thrown at a fresh rack, 2 for the second.
func classify(delivery int, cleared bool, pins int) Outcome {
	switch {
	case cleared && delivery == 1:
		return Outcome{Kind: KindStrike, Pins: pins}
	case cleared:
		return Outcome{Kind: KindSpare, Pins: pins}
	case pins == 0:
		return Outcome{Kind: KindGutter}
	default:
		return Outcome{Kind: KindOpen, Pins: pins}
	}
}

// Symbol is the scoreboard mark for the outcome: X, /, - or the pin count.
func (o Outcome) Symbol() string {
	switch o.Kind {
	case KindStrike:
		return SymbolStrike
	case KindSpare:
		return SymbolSpare
	case KindGutter:
		return SymbolGutter
	case KindOpen:
		return strconv.Itoa(o.Pins)
	}
	return ""
}

func (o Outcome) String() string { return o.Symbol() }
