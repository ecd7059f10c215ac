// Package mos6502 implements the NES's MOS 6502 CPU core: register
// file, interrupt entry points, and a table-driven instruction
// decoder. It never touches cartridge or PPU state directly; all
// memory traffic goes through the Bus interface so the console package
// can route addresses to RAM, PPU registers, APU stubs, and the
// cartridge mapper.
package mos6502

import "github.com/mtellier/nescore/types"

// Bus is the CPU-side view of the address space. Implementations are
// expected to mirror 0x0000-0x1FFF RAM, dispatch 0x2000-0x3FFF to PPU
// registers, and route 0x4020-0xFFFF to the cartridge mapper.
type Bus interface {
	Read(addr types.Addr) types.Byte
	Write(addr types.Addr, v types.Byte)
}
