package mos6502

import "github.com/mtellier/nescore/types"

type addrMode uint8

const (
	modeIMP addrMode = iota // implied: no operand
	modeACC                 // accumulator: operand is A
	modeIMM                 // immediate: operand is the next byte
	modeZP0                 // zero-page
	modeZPX                 // zero-page,X
	modeZPY                 // zero-page,Y
	modeREL                 // relative (branches)
	modeABS                 // absolute
	modeABX                 // absolute,X
	modeABY                 // absolute,Y
	modeIND                 // indirect (JMP only)
	modeIZX                 // (indirect,X)
	modeIZY                 // (indirect),Y
)

// fetchOperand advances PC past the instruction's operand bytes and
// returns the effective address, plus whether computing it crossed a
// page boundary. Implied and accumulator modes return no address; the
// instruction body reads c.A directly for those.
func (c *CPU) fetchOperand(bus Bus, mode addrMode) (addr types.Addr, pageCrossed bool) {
	switch mode {
	case modeIMP, modeACC:
		return 0, false

	case modeIMM:
		addr = c.PC
		c.PC = c.PC.Add(1)
		return addr, false

	case modeZP0:
		zp := c.fetchByte(bus)
		return types.Addr(zp), false

	case modeZPX:
		zp := c.fetchByte(bus)
		return types.Addr(zp + c.X), false // wraps within the zero page

	case modeZPY:
		zp := c.fetchByte(bus)
		return types.Addr(zp + c.Y), false

	case modeREL:
		offset := int8(c.fetchByte(bus))
		base := c.PC // address of the byte after the operand
		addr = base.Add(int(offset))
		return addr, !addr.SamePage(base)

	case modeABS:
		return c.fetchAddr(bus), false

	case modeABX:
		base := c.fetchAddr(bus)
		addr = base.Add(int(c.X))
		return addr, !addr.SamePage(base)

	case modeABY:
		base := c.fetchAddr(bus)
		addr = base.Add(int(c.Y))
		return addr, !addr.SamePage(base)

	case modeIND:
		ptr := c.fetchAddr(bus)
		lo := bus.Read(ptr)
		var hi types.Byte
		if ptr.Low() == 0xFF {
			// Documented JMP ($xxFF) bug: the high byte wraps to the
			// start of the same page instead of crossing into the next.
			hi = bus.Read(types.AddrFrom(0x00, ptr.High()))
		} else {
			hi = bus.Read(ptr.Add(1))
		}
		return types.AddrFrom(lo, hi), false

	case modeIZX:
		zp := c.fetchByte(bus)
		idx := zp + c.X
		lo := bus.Read(types.Addr(idx))
		hi := bus.Read(types.Addr(idx + 1))
		return types.AddrFrom(lo, hi), false

	case modeIZY:
		zp := c.fetchByte(bus)
		lo := bus.Read(types.Addr(zp))
		hi := bus.Read(types.Addr(zp + 1))
		base := types.AddrFrom(lo, hi)
		addr = base.Add(int(c.Y))
		return addr, !addr.SamePage(base)
	}
	return 0, false
}
