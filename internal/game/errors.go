package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoll is returned when a pin count is negative or larger than
	// the pins still standing. Nothing is mutated; the caller should ask again.
	ErrInvalidRoll = errors.New("invalid roll")
	// ErrFrameComplete is returned when a roll is routed to a finished frame.
	ErrFrameComplete = errors.New("frame already complete")
	// ErrNoNextFrame is returned when advancing past the tenth frame.
	ErrNoNextFrame = errors.New("no next frame")
	// ErrGameOver is returned by Game.Roll once the tenth frame is complete.
	ErrGameOver = fmt.Errorf("game over: %w", ErrNoNextFrame)
)
