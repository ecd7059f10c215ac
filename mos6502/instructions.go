package mos6502

import "github.com/mtellier/nescore/types"

// execFunc performs an instruction's side effects once its operand
// address has been computed and the generic page-cross cycle (if any)
// has already been folded in. It returns cycles beyond the table's
// base count; only branches use this (taken / taken-and-crossed).
type execFunc func(c *CPU, bus Bus, mode addrMode, addr types.Addr, pageCrossed bool) int

func opADC(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr)
	carry := types.Byte(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(v) + uint16(carry)
	result := types.Byte(sum)
	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (c.A^v)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	return 0
}

func opSBC(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr)
	// SBC is ADC with the operand's bits inverted (no decimal mode on NES).
	inverted := v ^ 0xFF
	carry := types.Byte(0)
	if c.getFlag(FlagCarry) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(inverted) + uint16(carry)
	result := types.Byte(sum)
	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (c.A^inverted)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
	return 0
}

func opAND(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	c.A &= c.operand(bus, mode, addr)
	c.setZN(c.A)
	return 0
}

func opORA(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	c.A |= c.operand(bus, mode, addr)
	c.setZN(c.A)
	return 0
}

func opEOR(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	c.A ^= c.operand(bus, mode, addr)
	c.setZN(c.A)
	return 0
}

func opASL(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr)
	c.setFlag(FlagCarry, v.IsNegative())
	v <<= 1
	c.storeResult(bus, mode, addr, v)
	c.setZN(v)
	return 0
}

func opLSR(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	c.storeResult(bus, mode, addr, v)
	c.setZN(v)
	return 0
}

func opROL(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr)
	oldCarry := c.getFlag(FlagCarry)
	c.setFlag(FlagCarry, v.IsNegative())
	v <<= 1
	if oldCarry {
		v |= 0x01
	}
	c.storeResult(bus, mode, addr, v)
	c.setZN(v)
	return 0
}

func opROR(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr)
	oldCarry := c.getFlag(FlagCarry)
	c.setFlag(FlagCarry, v&0x01 != 0)
	v >>= 1
	if oldCarry {
		v |= 0x80
	}
	c.storeResult(bus, mode, addr, v)
	c.setZN(v)
	return 0
}

func opINC(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr) + 1
	c.storeResult(bus, mode, addr, v)
	c.setZN(v)
	return 0
}

func opDEC(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr) - 1
	c.storeResult(bus, mode, addr, v)
	c.setZN(v)
	return 0
}

func opINX(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.X++; c.setZN(c.X); return 0 }
func opINY(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.Y++; c.setZN(c.Y); return 0 }
func opDEX(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.X--; c.setZN(c.X); return 0 }
func opDEY(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.Y--; c.setZN(c.Y); return 0 }

func opCMP(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	return compare(c, c.A, c.operand(bus, mode, addr))
}
func opCPX(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	return compare(c, c.X, c.operand(bus, mode, addr))
}
func opCPY(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	return compare(c, c.Y, c.operand(bus, mode, addr))
}

func compare(c *CPU, reg, v types.Byte) int {
	result := reg - v
	c.setFlag(FlagCarry, reg >= v)
	c.setZN(result)
	return 0
}

func opBIT(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	v := c.operand(bus, mode, addr)
	c.setFlag(FlagZero, c.A&v == 0)
	c.setFlag(FlagOverflow, v.InspectBit(6))
	c.setFlag(FlagNegative, v.InspectBit(7))
	return 0
}

func opLDA(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	c.A = c.operand(bus, mode, addr)
	c.setZN(c.A)
	return 0
}
func opLDX(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	c.X = c.operand(bus, mode, addr)
	c.setZN(c.X)
	return 0
}
func opLDY(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int {
	c.Y = c.operand(bus, mode, addr)
	c.setZN(c.Y)
	return 0
}

func opSTA(c *CPU, bus Bus, _ addrMode, addr types.Addr, _ bool) int { bus.Write(addr, c.A); return 0 }
func opSTX(c *CPU, bus Bus, _ addrMode, addr types.Addr, _ bool) int { bus.Write(addr, c.X); return 0 }
func opSTY(c *CPU, bus Bus, _ addrMode, addr types.Addr, _ bool) int { bus.Write(addr, c.Y); return 0 }

func opTAX(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.X = c.A; c.setZN(c.X); return 0 }
func opTAY(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.Y = c.A; c.setZN(c.Y); return 0 }
func opTXA(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.A = c.X; c.setZN(c.A); return 0 }
func opTYA(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.A = c.Y; c.setZN(c.A); return 0 }
func opTSX(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.X = c.S; c.setZN(c.X); return 0 }
func opTXS(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.S = c.X; return 0 }

func opPHA(c *CPU, bus Bus, _ addrMode, _ types.Addr, _ bool) int { c.push(bus, c.A); return 0 }
func opPHP(c *CPU, bus Bus, _ addrMode, _ types.Addr, _ bool) int {
	// PHP pushes P with break=1 and reserved=1 (spec.md §4.1).
	c.push(bus, c.P|FlagBreak|FlagReserved)
	return 0
}
func opPLA(c *CPU, bus Bus, _ addrMode, _ types.Addr, _ bool) int {
	c.A = c.pull(bus)
	c.setZN(c.A)
	return 0
}
func opPLP(c *CPU, bus Bus, _ addrMode, _ types.Addr, _ bool) int {
	// PLP restores P but forces reserved=1 and break=0.
	p := c.pull(bus)
	p |= FlagReserved
	p &^= FlagBreak
	c.P = p
	return 0
}

func opCLC(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.setFlag(FlagCarry, false); return 0 }
func opSEC(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int { c.setFlag(FlagCarry, true); return 0 }
func opCLI(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int {
	c.setFlag(FlagInterruptDisable, false)
	return 0
}
func opSEI(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int {
	c.setFlag(FlagInterruptDisable, true)
	return 0
}
func opCLV(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int {
	c.setFlag(FlagOverflow, false)
	return 0
}
func opCLD(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int {
	c.setFlag(FlagDecimal, false)
	return 0
}
func opSED(c *CPU, _ Bus, _ addrMode, _ types.Addr, _ bool) int {
	c.setFlag(FlagDecimal, true)
	return 0
}

func opJMP(c *CPU, _ Bus, _ addrMode, addr types.Addr, _ bool) int { c.PC = addr; return 0 }

func opJSR(c *CPU, bus Bus, _ addrMode, addr types.Addr, _ bool) int {
	c.pushAddr(bus, c.PC.Add(-1))
	c.PC = addr
	return 0
}

func opRTS(c *CPU, bus Bus, _ addrMode, _ types.Addr, _ bool) int {
	c.PC = c.pullAddr(bus).Add(1)
	return 0
}

func opBRK(c *CPU, bus Bus, _ addrMode, _ types.Addr, _ bool) int {
	// The byte after BRK's opcode is a padding byte that real programs
	// (and debuggers) conventionally skip.
	c.PC = c.PC.Add(1)
	c.enterInterrupt(bus, vectorIRQ, true)
	return 0
}

func opRTI(c *CPU, bus Bus, _ addrMode, _ types.Addr, _ bool) int {
	p := c.pull(bus)
	p |= FlagReserved
	p &^= FlagBreak
	c.P = p
	c.PC = c.pullAddr(bus)
	return 0
}

func opNOP(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int { return 0 }

// opXXX handles every undocumented opcode slot except 0xEB (which the
// table maps to opSBC) as a NOP: it consumes
// whatever operand bytes its addressing mode implies (already done by
// fetchOperand) and otherwise does nothing (spec.md §4.1).
func opXXX(c *CPU, bus Bus, mode addrMode, addr types.Addr, _ bool) int { return 0 }

func branch(c *CPU, addr types.Addr, pageCrossed, taken bool) int {
	if !taken {
		return 0
	}
	c.PC = addr
	if pageCrossed {
		return 2
	}
	return 1
}

func opBCC(c *CPU, _ Bus, _ addrMode, addr types.Addr, pc bool) int {
	return branch(c, addr, pc, !c.getFlag(FlagCarry))
}
func opBCS(c *CPU, _ Bus, _ addrMode, addr types.Addr, pc bool) int {
	return branch(c, addr, pc, c.getFlag(FlagCarry))
}
func opBEQ(c *CPU, _ Bus, _ addrMode, addr types.Addr, pc bool) int {
	return branch(c, addr, pc, c.getFlag(FlagZero))
}
func opBNE(c *CPU, _ Bus, _ addrMode, addr types.Addr, pc bool) int {
	return branch(c, addr, pc, !c.getFlag(FlagZero))
}
func opBMI(c *CPU, _ Bus, _ addrMode, addr types.Addr, pc bool) int {
	return branch(c, addr, pc, c.getFlag(FlagNegative))
}
func opBPL(c *CPU, _ Bus, _ addrMode, addr types.Addr, pc bool) int {
	return branch(c, addr, pc, !c.getFlag(FlagNegative))
}
func opBVC(c *CPU, _ Bus, _ addrMode, addr types.Addr, pc bool) int {
	return branch(c, addr, pc, !c.getFlag(FlagOverflow))
}
func opBVS(c *CPU, _ Bus, _ addrMode, addr types.Addr, pc bool) int {
	return branch(c, addr, pc, c.getFlag(FlagOverflow))
}
