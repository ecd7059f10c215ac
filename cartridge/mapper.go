package cartridge

import (
	"fmt"

	"github.com/mtellier/nescore/types"
)

// Mapper arbitrates address translation between the CPU/PPU address
// spaces and a Cartridge's PRG/CHR arrays. A mapper may also override
// nametable mirroring, raise scanline-derived IRQs, or consume
// scanline-tick notifications; those are optional per spec.md §4.3 and
// default to inert here.
type Mapper interface {
	// Attach gives the mapper a reference to the cartridge it will
	// translate addresses for, so it can read header-derived state
	// (bank counts) at construction time.
	Attach(c *Cartridge)

	// MapCPURead translates a CPU-space address (0x4020-0xFFFF) to
	// a PRG-ROM offset. ok is false for an address the mapper does
	// not claim.
	MapCPURead(addr types.Addr) (ext types.ExtAddr, ok bool)

	// MapCPUWrite translates a CPU-space write. ok is true when the
	// cartridge should store v at PRG offset ext. ok is false when the
	// mapper does not claim the address or absorbs the write into its
	// own state; the cartridge then stores nothing (spec.md §7).
	MapCPUWrite(addr types.Addr, v types.Byte) (ext types.ExtAddr, ok bool)

	// MapPPURead translates a PPU-space pattern-table address
	// (0x0000-0x1FFF) to a CHR offset.
	MapPPURead(addr types.Addr) (ext types.ExtAddr, ok bool)

	// MapPPUWrite translates a PPU-space pattern-table write.
	MapPPUWrite(addr types.Addr) (ext types.ExtAddr, ok bool)

	// MirrorOverride lets a mapper report a mirroring mode that
	// supersedes the one in the iNES header (bank-switchable
	// single-screen mirroring, four-screen VRAM). ok is false when
	// the header's mirroring mode should be used as-is.
	MirrorOverride() (m Mirror, ok bool)

	// IRQPending reports and clears a mapper-generated IRQ line.
	IRQPending() bool

	// NotifyScanline is called once per PPU scanline.
	NotifyScanline()
}

// baseMapper implements the optional parts of Mapper (no mirroring
// override, no IRQ) so that concrete mappers only need to supply
// address translation.
type baseMapper struct {
	cart *Cartridge
}

func (b *baseMapper) Attach(c *Cartridge)             { b.cart = c }
func (b *baseMapper) MirrorOverride() (Mirror, bool)  { return 0, false }
func (b *baseMapper) IRQPending() bool                { return false }
func (b *baseMapper) NotifyScanline()                 {}

var registry = map[uint16]func() Mapper{}

// registerMapper adds a constructor for a mapper id to the registry.
// Called from each mapper's init().
func registerMapper(id uint16, ctor func() Mapper) {
	if _, ok := registry[id]; ok {
		panic(fmt.Sprintf("cartridge: mapper %d registered twice", id))
	}
	registry[id] = ctor
}

func newMapper(id uint16) (Mapper, error) {
	ctor, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("cartridge: unsupported mapper %d", id)
	}
	return ctor(), nil
}
