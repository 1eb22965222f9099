package game

import "fmt"

// Chain owns the ten frames of a game and a cursor to the one taking rolls.
// Frames are created when the cursor reaches them.
type Chain struct {
	frames [FrameCount]*Frame
	cursor int // 0-based
}

// NewChain returns a chain positioned on an empty first frame.
func NewChain() *Chain {
	c := &Chain{}
	c.frames[0] = newFrame(1)
	return c
}

// Current is the frame accepting rolls (the tenth once the game has ended).
func (c *Chain) Current() *Frame { return c.frames[c.cursor] }

// CurrentIndex is the 1-based number of the current frame.
func (c *Chain) CurrentIndex() int { return c.cursor + 1 }

// Frame returns frame i (1-based), or nil if it has not been reached.
func (c *Chain) Frame(i int) *Frame {
	if i < 1 || i > FrameCount {
		return nil
	}
	return c.frames[i-1]
}

// Frames returns the frames reached so far, in order.
func (c *Chain) Frames() []*Frame {
	return append([]*Frame(nil), c.frames[:c.cursor+1]...)
}

// Advance moves the cursor to a fresh frame.
// The current frame must be complete and must not be the tenth.
func (c *Chain) Advance() error {
	if c.cursor+1 >= FrameCount {
		return ErrNoNextFrame
	}
	if !c.Current().Complete() {
		return fmt.Errorf("frame %d is still open", c.CurrentIndex())
	}
	c.cursor++
	c.frames[c.cursor] = newFrame(c.cursor + 1)
	return nil
}

// Ended reports whether the tenth frame is complete.
func (c *Chain) Ended() bool {
	last := c.frames[FrameCount-1]
	return last != nil && last.Complete()
}

// rolls flattens every recorded pin count and returns, for each reached
// frame, the offset of its first roll.
func (c *Chain) rolls() ([]int, []int) {
	var all []int
	starts := make([]int, 0, FrameCount)
	for _, f := range c.frames {
		if f == nil {
			break
		}
		starts = append(starts, len(all))
		all = append(all, f.rolls...)
	}
	return all, starts
}
