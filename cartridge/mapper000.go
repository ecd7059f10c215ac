package cartridge

import "github.com/mtellier/nescore/types"

func init() {
	registerMapper(0, func() Mapper { return &mapper000{} })
}

// mapper000 is NROM: no bank switching. CPU reads in 0x8000-0xFFFF are
// masked with 0x7FFF for 32KiB PRG-ROM, or 0x3FFF (mirrored) for
// 16KiB PRG-ROM. PPU reads pass through to CHR unchanged. CHR writes
// are only honored when the cartridge reports CHR-RAM.
type mapper000 struct {
	baseMapper
}

const (
	cpuPRGStart = 0x8000
)

func (m *mapper000) MapCPURead(addr types.Addr) (types.ExtAddr, bool) {
	if addr < cpuPRGStart {
		return 0, false
	}
	mask := types.Addr(0x7FFF)
	if m.cart.PRGLen() <= 16*1024 {
		mask = 0x3FFF
	}
	return types.ExtAddr(addr-cpuPRGStart) & types.ExtAddr(mask), true
}

func (m *mapper000) MapCPUWrite(addr types.Addr, v types.Byte) (types.ExtAddr, bool) {
	// NROM has no writable PRG space; writes to cartridge-space are
	// silently discarded (spec.md §7).
	return 0, false
}

func (m *mapper000) MapPPURead(addr types.Addr) (types.ExtAddr, bool) {
	if addr > 0x1FFF {
		return 0, false
	}
	return types.ExtAddr(addr), true
}

func (m *mapper000) MapPPUWrite(addr types.Addr) (types.ExtAddr, bool) {
	if addr > 0x1FFF {
		return 0, false
	}
	return types.ExtAddr(addr), true
}
