package mos6502

import "github.com/mtellier/nescore/types"

// Status flag bit positions within P (spec.md §3).
const (
	FlagCarry            types.Byte = 1 << 0
	FlagZero             types.Byte = 1 << 1
	FlagInterruptDisable types.Byte = 1 << 2
	FlagDecimal          types.Byte = 1 << 3
	FlagBreak            types.Byte = 1 << 4
	FlagReserved         types.Byte = 1 << 5
	FlagOverflow         types.Byte = 1 << 6
	FlagNegative         types.Byte = 1 << 7
)

const (
	vectorNMI   types.Addr = 0xFFFA
	vectorReset types.Addr = 0xFFFC
	vectorIRQ   types.Addr = 0xFFFE
)

// CPU is the register file and instruction sequencer for the NES's MOS
// 6502 (no decimal mode). It owns no memory; every access goes through
// the Bus passed to Reset/IRQ/NMI/Step.
type CPU struct {
	A, X, Y types.Byte
	S       types.Byte
	PC      types.Addr
	P       types.Byte

	cycles int // cycles remaining before the next instruction fetch
}

// New returns a CPU with all registers zeroed. Callers must call Reset
// before the first Step to load PC from the reset vector.
func New() *CPU {
	return &CPU{}
}

func (c *CPU) getFlag(mask types.Byte) bool {
	return c.P&mask != 0
}

func (c *CPU) setFlag(mask types.Byte, v bool) {
	if v {
		c.P |= mask
	} else {
		c.P &^= mask
	}
}

// setZN sets the zero and negative flags from v, as nearly every
// load/transfer/arithmetic instruction does.
func (c *CPU) setZN(v types.Byte) {
	c.setFlag(FlagZero, v == 0)
	c.setFlag(FlagNegative, v.IsNegative())
}

func (c *CPU) push(bus Bus, v types.Byte) {
	bus.Write(types.Addr(0x0100)+types.Addr(c.S), v)
	c.S--
}

func (c *CPU) pull(bus Bus) types.Byte {
	c.S++
	return bus.Read(types.Addr(0x0100) + types.Addr(c.S))
}

func (c *CPU) pushAddr(bus Bus, a types.Addr) {
	c.push(bus, a.High())
	c.push(bus, a.Low())
}

func (c *CPU) pullAddr(bus Bus) types.Addr {
	lo := c.pull(bus)
	hi := c.pull(bus)
	return types.AddrFrom(lo, hi)
}

// Reset loads PC from the reset vector, sets S and P to their documented
// power-on-reset values, and schedules 8 idle cycles (spec.md §4.1).
func (c *CPU) Reset(bus Bus) {
	lo := bus.Read(vectorReset)
	hi := bus.Read(vectorReset + 1)
	c.PC = types.AddrFrom(lo, hi)
	c.S = 0xFD
	c.P = 0x24
	c.cycles = 8
}

// IRQ requests a maskable interrupt. It is a no-op if interrupt-disable
// is set; otherwise it enters the interrupt sequence from 0xFFFE and
// schedules 7 cycles.
func (c *CPU) IRQ(bus Bus) {
	if c.getFlag(FlagInterruptDisable) {
		return
	}
	c.enterInterrupt(bus, vectorIRQ, false)
	c.cycles = 7
}

// NMI requests a non-maskable interrupt from 0xFFFA and schedules 8
// cycles. Unlike IRQ it cannot be suppressed by the interrupt-disable
// flag.
func (c *CPU) NMI(bus Bus) {
	c.enterInterrupt(bus, vectorNMI, false)
	c.cycles = 8
}

// enterInterrupt pushes PC and P (break set per brk), sets
// interrupt-disable, and loads PC from vector. Used by IRQ, NMI, and
// BRK itself.
func (c *CPU) enterInterrupt(bus Bus, vector types.Addr, brk bool) {
	c.pushAddr(bus, c.PC)
	p := c.P
	if brk {
		p |= FlagBreak
	} else {
		p &^= FlagBreak
	}
	p |= FlagReserved
	c.push(bus, p)
	c.setFlag(FlagInterruptDisable, true)
	lo := bus.Read(vector)
	hi := bus.Read(vector + 1)
	c.PC = types.AddrFrom(lo, hi)
}

// Step advances the CPU by one cycle. Instructions execute atomically
// on the cycle their pacing counter reaches zero; side effects are
// visible to the bus only at that point (spec.md §4.1).
func (c *CPU) Step(bus Bus) {
	if c.cycles == 0 {
		c.cycles = c.executeNext(bus)
	}
	c.cycles--
}

// AtInstructionBoundary reports whether the CPU has just finished
// draining an instruction's cycle cost and is about to fetch the next
// one. NMI/IRQ delivery is only safe to call here: interrupting a CPU
// with cycles still pending would corrupt the instruction in flight.
func (c *CPU) AtInstructionBoundary() bool {
	return c.cycles == 0
}

// fetchByte reads the byte at PC and advances PC.
func (c *CPU) fetchByte(bus Bus) types.Byte {
	v := bus.Read(c.PC)
	c.PC = c.PC.Add(1)
	return v
}

// fetchAddr reads a little-endian address at PC and advances PC by 2.
func (c *CPU) fetchAddr(bus Bus) types.Addr {
	lo := c.fetchByte(bus)
	hi := c.fetchByte(bus)
	return types.AddrFrom(lo, hi)
}

func (c *CPU) executeNext(bus Bus) int {
	opByte := c.fetchByte(bus)
	op := opcodeTable[opByte]

	addr, pageCrossed := c.fetchOperand(bus, op.mode)

	cycles := op.cycles
	if op.boundary && pageCrossed {
		cycles++
	}
	cycles += op.fn(c, bus, op.mode, addr, pageCrossed)
	return cycles
}

// operand reads the value an instruction operates on: the accumulator
// for accumulator-mode opcodes, otherwise the byte at addr.
func (c *CPU) operand(bus Bus, mode addrMode, addr types.Addr) types.Byte {
	if mode == modeACC {
		return c.A
	}
	return bus.Read(addr)
}

// storeResult writes an instruction's result back to the accumulator
// or to addr, mirroring operand's dispatch.
func (c *CPU) storeResult(bus Bus, mode addrMode, addr types.Addr, v types.Byte) {
	if mode == modeACC {
		c.A = v
		return
	}
	bus.Write(addr, v)
}
