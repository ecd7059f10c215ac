// Package cartridge implements the iNES v1 cartridge loader and the
// Mapper abstraction that virtualizes cartridge-local memory.
// https://www.nesdev.org/wiki/INES
package cartridge

import (
	"fmt"

	"github.com/mtellier/nescore/types"
)

// Mirror identifies how the PPU's logical 2KiB nametable region is
// wired onto the console's two physical 1KiB nametables.
type Mirror uint8

const (
	MirrorHorizontal Mirror = iota
	MirrorVertical
	MirrorSingleScreenLo
	MirrorSingleScreenHi
	MirrorFourScreen
)

const (
	headerSize    = 16
	trainerSize   = 512
	prgBlockSize  = 16384
	chrBlockSize  = 8192
	pcInstSize    = 8192
	pcPromSize    = 32
	nes2SentinelM = 0x0C
	nes2Sentinel  = 0x08
)

// flags6 bits
const (
	flag6Mirroring    = 1 << 0
	flag6BatteryRAM   = 1 << 1
	flag6Trainer      = 1 << 2
	flag6FourScreen   = 1 << 3
	flag6MapperLoMask = 0xF0
)

// flags7 bits
const (
	flag7PlayChoice  = 1 << 1
	flag7MapperHi    = 0xF0
	flag7NES2Sentinl = 0x0C
)

type header struct {
	magic   [4]byte
	prgSize uint8 // 16KiB units
	chrSize uint8 // 8KiB units
	flags6  uint8
	flags7  uint8
	flags8  uint8
	flags9  uint8
	flags10 uint8
}

func parseHeader(b []byte) (*header, error) {
	if len(b) != headerSize {
		return nil, fmt.Errorf("cartridge: short header (%d bytes)", len(b))
	}
	if string(b[0:4]) != "NES\x1A" {
		return nil, fmt.Errorf("cartridge: bad magic %q", b[0:4])
	}

	h := &header{
		prgSize: b[4],
		chrSize: b[5],
		flags6:  b[6],
		flags7:  b[7],
		flags8:  b[8],
		flags9:  b[9],
		flags10: b[10],
	}
	copy(h.magic[:], b[0:4])
	return h, nil
}

func (h *header) isNES2() bool {
	return h.flags7&flag7NES2Sentinl == nes2Sentinel
}

func (h *header) hasTrainer() bool {
	return h.flags6&flag6Trainer != 0
}

func (h *header) hasPlayChoice() bool {
	return h.flags7&flag7PlayChoice != 0
}

func (h *header) mapperID() uint16 {
	id := uint16((h.flags6&flag6MapperLoMask)>>4) | uint16(h.flags7&flag7MapperHi)
	if h.isNES2() {
		id |= uint16(types.Byte(h.flags8).Lo()) << 8
	}
	return id
}

func (h *header) mirror() Mirror {
	if h.flags6&flag6FourScreen != 0 {
		return MirrorFourScreen
	}
	if h.flags6&flag6Mirroring != 0 {
		return MirrorVertical
	}
	return MirrorHorizontal
}

func (h *header) hasBatteryRAM() bool {
	return h.flags6&flag6BatteryRAM != 0
}

// prgUnits returns the number of 16KiB PRG-ROM banks, honoring the
// NES 2.0 extra high bits in flags8 when present.
func (h *header) prgUnits() int {
	n := int(h.prgSize)
	if h.isNES2() {
		n |= int(types.Byte(h.flags9).Lo()) << 8
	}
	return n
}

// chrUnits returns the number of 8KiB CHR banks. A count of zero means
// the board uses 8KiB of CHR-RAM instead of CHR-ROM (see the Open
// Question in spec.md §9).
func (h *header) chrUnits() int {
	n := int(h.chrSize)
	if h.isNES2() {
		n |= int(types.Byte(h.flags9).Hi()) << 8
	}
	return n
}

func (h *header) String() string {
	return fmt.Sprintf("iNES prg=%d chr=%d mapper=%d mirror=%d nes2=%v",
		h.prgUnits(), h.chrUnits(), h.mapperID(), h.mirror(), h.isNES2())
}
