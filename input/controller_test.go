package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadOrderIsAThenBThenSelectStart(t *testing.T) {
	c := New()
	c.SetButtons(ButtonA | ButtonStart)
	c.Strobe(true)
	c.Strobe(false)

	assert.Equal(t, byte(1), byte(c.Read())) // A
	assert.Equal(t, byte(0), byte(c.Read())) // B
	assert.Equal(t, byte(0), byte(c.Read())) // Select
	assert.Equal(t, byte(1), byte(c.Read())) // Start
}

func TestReadsPastEighthBitReturnOne(t *testing.T) {
	c := New()
	c.SetButtons(0)
	c.Strobe(true)
	c.Strobe(false)

	for i := 0; i < 8; i++ {
		c.Read()
	}
	assert.Equal(t, byte(1), byte(c.Read()))
	assert.Equal(t, byte(1), byte(c.Read()))
}

func TestStrobeHeldHighAlwaysReturnsCurrentAState(t *testing.T) {
	c := New()
	c.Strobe(true)

	c.SetButtons(ButtonA)
	assert.Equal(t, byte(1), byte(c.Read()))

	c.SetButtons(0)
	assert.Equal(t, byte(0), byte(c.Read()))
}
