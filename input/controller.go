// Package input models the NES controller port's 8-bit parallel-load
// shift register, independent of any particular input backend. A host
// (cmd/nescore's ebiten loop, a test, a TUI) calls SetButtons once per
// frame with the live button mask; the console bus drives Strobe and
// Read exactly as the CPU does through $4016/$4017.
package input

import "github.com/mtellier/nescore/types"

// Button bit positions, matching the order the shift register reads
// them out in: A, B, Select, Start, Up, Down, Left, Right.
const (
	ButtonA types.Byte = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Controller is one physical pad's shift register.
type Controller struct {
	strobe bool
	live   types.Byte
	latch  types.Byte
}

func New() *Controller {
	return &Controller{}
}

// SetButtons records the live button state; it takes effect on the
// next Strobe(true) or the next Read while strobe is already held high.
func (c *Controller) SetButtons(buttons types.Byte) {
	c.live = buttons
}

// Strobe mirrors a write to $4016's bit 0: Strobe(true) reloads the
// shift register from the live button state, and every Read while
// strobe stays high reloads it again. Strobe(false) does not reload, so
// the following reads shift out the last snapshot taken.
func (c *Controller) Strobe(on bool) {
	c.strobe = on
	if on {
		c.latch = c.live
	}
}

// Read shifts out one bit, LSB first (A, B, Select, Start, Up, Down,
// Left, Right). Once all 8 have been read, further reads return 1
// (the shift register fills with open-bus ones), matching hardware.
func (c *Controller) Read() types.Byte {
	if c.strobe {
		c.latch = c.live
	}
	bit := c.latch & 0x01
	c.latch = (c.latch >> 1) | 0x80
	return bit
}
