// Package console assembles the CPU, PPU, APU stub, cartridge, and
// joystick ports into a single NES, and drives them with a 3:1
// master clock and an OAM-DMA engine (spec.md §3-4.6).
package console

import (
	"github.com/mtellier/nescore/apu"
	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/input"
	"github.com/mtellier/nescore/mos6502"
	"github.com/mtellier/nescore/ppu"
	"github.com/mtellier/nescore/types"
)

const (
	regJoy1       types.Addr = 0x4016
	regJoy2       types.Addr = 0x4017
	regOAMDMA     types.Addr = 0x4014
	cartridgeBase types.Addr = 0x4020
)

// Bus implements mos6502.Bus, routing the CPU's 16-bit address space
// across internal RAM, the PPU's 8 mirrored registers, the APU stub,
// the two joystick ports, and the cartridge (spec.md §6's CPU address
// map). It never retains the DMA engine's transfer state itself; that
// lives in Emulator, which is the only thing that needs to stall CPU
// ticks.
type Bus struct {
	Cart  *cartridge.Cartridge
	PPU   *ppu.PPU
	APU   *apu.APU
	Ctrl1 *input.Controller
	Ctrl2 *input.Controller

	ram       [2048]byte
	dmaLatch  types.Byte
	dmaWanted bool
}

func NewBus(cart *cartridge.Cartridge) *Bus {
	return &Bus{
		Cart:  cart,
		PPU:   ppu.New(),
		APU:   apu.New(),
		Ctrl1: input.New(),
		Ctrl2: input.New(),
	}
}

func (b *Bus) Read(addr types.Addr) types.Byte {
	switch {
	case addr <= 0x1FFF:
		return types.Byte(b.ram[addr&0x07FF])
	case addr <= 0x3FFF:
		return b.PPU.ReadReg(b.Cart, 0x2000+(addr&0x0007))
	case addr == regJoy1:
		return b.Ctrl1.Read()
	case addr == regJoy2:
		return b.Ctrl2.Read()
	case addr <= 0x4017:
		return b.APU.ReadReg(addr)
	case addr < cartridgeBase:
		return 0 // $4018-$401F: disabled
	default:
		return b.Cart.ReadCPU(addr)
	}
}

func (b *Bus) Write(addr types.Addr, v types.Byte) {
	switch {
	case addr <= 0x1FFF:
		b.ram[addr&0x07FF] = byte(v)
	case addr <= 0x3FFF:
		b.PPU.WriteReg(b.Cart, 0x2000+(addr&0x0007), v)
	case addr == regOAMDMA:
		b.dmaLatch = v
		b.dmaWanted = true
	case addr == regJoy1:
		b.Ctrl1.Strobe(v&0x01 != 0)
		b.Ctrl2.Strobe(v&0x01 != 0)
	case addr == regJoy2:
		b.APU.WriteReg(addr, v) // $4017 doubles as the APU frame-counter register
	case addr <= 0x4013 || addr == 0x4015:
		b.APU.WriteReg(addr, v)
	case addr < cartridgeBase:
		// $4018-$401F: disabled
	default:
		b.Cart.WriteCPU(addr, v)
	}
}

// takeDMARequest reports and consumes a pending $4014 write, for the
// DMA engine to pick up on the master clock's next even CPU cycle.
func (b *Bus) takeDMARequest() (types.Byte, bool) {
	if !b.dmaWanted {
		return 0, false
	}
	b.dmaWanted = false
	return b.dmaLatch, true
}

var _ mos6502.Bus = (*Bus)(nil)
