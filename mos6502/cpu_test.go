package mos6502

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtellier/nescore/types"
)

// testBus is a flat 64KiB RAM used only to exercise the CPU in
// isolation; the console package's real Bus routes through PPU/APU/
// cartridge instead.
type testBus struct {
	mem [65536]types.Byte
}

func (b *testBus) Read(addr types.Addr) types.Byte  { return b.mem[addr] }
func (b *testBus) Write(addr types.Addr, v types.Byte) { b.mem[addr] = v }

func (b *testBus) loadAt(addr types.Addr, bytes ...byte) {
	for i, v := range bytes {
		b.mem[int(addr)+i] = types.Byte(v)
	}
}

func (b *testBus) setResetVector(addr types.Addr) {
	b.Write(0xFFFC, addr.Low())
	b.Write(0xFFFD, addr.High())
}

func newTestCPU(resetAt types.Addr) (*CPU, *testBus) {
	bus := &testBus{}
	bus.setResetVector(resetAt)
	c := New()
	c.Reset(bus)
	for c.cycles > 0 {
		c.Step(bus) // burn the 8 post-reset idle cycles so tests measure instructions cleanly
	}
	return c, bus
}

// run steps the CPU through exactly n instructions, draining each
// one's full pacing cost, and returns the total cycle count spent.
func run(c *CPU, bus *testBus, n int) int {
	cycles := 0
	started := 0
	for {
		before := c.cycles
		c.Step(bus)
		cycles++
		if before == 0 {
			started++
		}
		if started == n && c.cycles == 0 {
			return cycles
		}
	}
}

func TestResetLoadsVectorAndDefaults(t *testing.T) {
	bus := &testBus{}
	bus.setResetVector(0xC000)
	c := New()
	c.Reset(bus)

	assert.Equal(t, types.Addr(0xC000), c.PC)
	assert.Equal(t, types.Byte(0xFD), c.S)
	assert.Equal(t, types.Byte(0x24), c.P)
}

func TestADCOverflowAndCarry(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0x69, 0x50) // ADC #$50
	c.A = 0x50
	c.setFlag(FlagCarry, false)

	run(c, bus, 1)

	assert.Equal(t, types.Byte(0xA0), c.A)
	assert.True(t, c.getFlag(FlagNegative))
	assert.True(t, c.getFlag(FlagOverflow))
	assert.False(t, c.getFlag(FlagZero))
	assert.False(t, c.getFlag(FlagCarry))
}

func TestSBCBorrow(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0xE9, 0x01) // SBC #$01
	c.A = 0x00
	c.setFlag(FlagCarry, true) // carry set means "no borrow" going in

	run(c, bus, 1)

	assert.Equal(t, types.Byte(0xFF), c.A)
	assert.False(t, c.getFlag(FlagCarry)) // borrow occurred
	assert.True(t, c.getFlag(FlagNegative))
}

func TestLDAAbsoluteXPageCrossCostsExtraCycle(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0xBD, 0xFF, 0x20) // LDA $20FF,X
	c.X = 0x01                          // effective address 0x2100: crosses page

	cycles := run(c, bus, 1)
	assert.Equal(t, 5, cycles)
	assert.Equal(t, types.Byte(0), c.A) // uninitialized RAM reads as 0
}

func TestLDAAbsoluteXNoPageCrossIsBaseCycles(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0xBD, 0x00, 0x20) // LDA $2000,X
	c.X = 0x01

	cycles := run(c, bus, 1)
	assert.Equal(t, 4, cycles)
}

func TestSTAAbsoluteXNeverGetsPageCrossDiscount(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0x9D, 0x00, 0x20) // STA $2000,X (no page cross)
	c.X = 0x01
	c.A = 0x42

	cycles := run(c, bus, 1)
	assert.Equal(t, 5, cycles) // store opcodes never take the boundary bonus
	assert.Equal(t, types.Byte(0x42), bus.Read(0x2001))
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0x6C, 0xFF, 0x20) // JMP ($20FF)
	bus.Write(0x20FF, 0x34)
	bus.Write(0x2000, 0x12) // hi byte wrongly fetched from $2000, not $2100
	bus.Write(0x2100, 0x99)

	run(c, bus, 1)

	assert.Equal(t, types.Addr(0x1234), c.PC)
}

func TestBranchNotTakenCosts2Cycles(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0xF0, 0x10) // BEQ +16
	c.setFlag(FlagZero, false)

	cycles := run(c, bus, 1)
	assert.Equal(t, 2, cycles)
	assert.Equal(t, types.Addr(0x8002), c.PC)
}

func TestBranchTakenSamePageCosts3Cycles(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0xF0, 0x10) // BEQ +16, target 0x8012, same page
	c.setFlag(FlagZero, true)

	cycles := run(c, bus, 1)
	assert.Equal(t, 3, cycles)
	assert.Equal(t, types.Addr(0x8012), c.PC)
}

func TestBranchTakenCrossingPageCosts4Cycles(t *testing.T) {
	c, bus := newTestCPU(0x80F0)
	bus.loadAt(0x80F0, 0xF0, 0x20) // BEQ +32 from 0x80F0 -> target crosses into 0x8112
	c.setFlag(FlagZero, true)

	cycles := run(c, bus, 1)
	assert.Equal(t, 4, cycles)
	assert.Equal(t, types.Addr(0x8112), c.PC)
}

func TestJSRAndRTSRoundTrip(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0x20, 0x00, 0x90) // JSR $9000
	bus.loadAt(0x9000, 0x60)             // RTS

	run(c, bus, 1)
	assert.Equal(t, types.Addr(0x9000), c.PC)

	run(c, bus, 1)
	assert.Equal(t, types.Addr(0x8003), c.PC)
	assert.Equal(t, types.Byte(0xFD), c.S) // stack balanced after call/return
}

func TestPHPSetsBreakAndReserved(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0x08) // PHP
	c.P = 0x00

	run(c, bus, 1)

	pushed := bus.Read(types.Addr(0x0100) + types.Addr(c.S+1))
	assert.True(t, types.Byte(pushed).InspectBit(4))
	assert.True(t, types.Byte(pushed).InspectBit(5))
}

func TestPLPForcesReservedAndClearsBreak(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0x28) // PLP
	c.push(bus, 0xFF)        // everything set, including break

	run(c, bus, 1)

	assert.True(t, c.getFlag(FlagReserved))
	assert.False(t, c.getFlag(FlagBreak))
}

func TestBRKThenRTIRestoresState(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0x00, 0xEA) // BRK, then a padding byte (skipped)
	bus.Write(0xFFFE, 0x00)
	bus.Write(0xFFFF, 0x90)
	bus.loadAt(0x9000, 0x40) // RTI

	c.P = 0x20 // reserved only
	run(c, bus, 1)

	require.Equal(t, types.Addr(0x9000), c.PC)
	assert.True(t, c.getFlag(FlagInterruptDisable))

	run(c, bus, 1) // RTI
	assert.Equal(t, types.Addr(0x8002), c.PC)
	assert.False(t, c.getFlag(FlagBreak))
}

func TestNMICannotBeMaskedByInterruptDisable(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.Write(0xFFFA, 0x00)
	bus.Write(0xFFFB, 0xA0)
	c.setFlag(FlagInterruptDisable, true)

	c.NMI(bus)

	assert.Equal(t, types.Addr(0xA000), c.PC)
}

func TestIRQIgnoredWhenInterruptDisableSet(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.Write(0xFFFE, 0x00)
	bus.Write(0xFFFF, 0xA0)
	c.setFlag(FlagInterruptDisable, true)

	c.IRQ(bus)

	assert.Equal(t, types.Addr(0x8000), c.PC)
}

func TestStackPushPullWraps(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	c.S = 0x00
	c.push(bus, 0xAB)
	assert.Equal(t, types.Byte(0xFF), c.S)
	assert.Equal(t, types.Byte(0xAB), c.pull(bus))
	assert.Equal(t, types.Byte(0x00), c.S)
}

func TestZeroPageXWrapsWithinZeroPage(t *testing.T) {
	c, bus := newTestCPU(0x8000)
	bus.loadAt(0x8000, 0xB5, 0xFF) // LDA $FF,X
	bus.Write(0x007F, 0x55)
	c.X = 0x80 // 0xFF + 0x80 wraps to 0x7F, staying in the zero page

	run(c, bus, 1)
	assert.Equal(t, types.Byte(0x55), c.A)
}
