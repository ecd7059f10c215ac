package cartridge

import (
	"fmt"
	"io"
	"os"

	"github.com/mtellier/nescore/types"
)

// Cartridge owns program-ROM and character-ROM banks, the mirroring
// mode reported to the PPU, and the Mapper that arbitrates address
// translation onto those banks.
type Cartridge struct {
	prg []byte // prgUnits * 16KiB
	chr []byte // chrUnits * 8KiB, or 8KiB of CHR-RAM if the header said 0
	chrIsRAM bool

	mirror Mirror
	mapper Mapper
}

// Load reads an iNES v1 (or NES 2.0) image from path and constructs a
// Cartridge with its mapper initialized. Load errors are fatal to the
// attempted load only; the caller decides whether to retry with a
// different image.
func Load(path string) (*Cartridge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: couldn't open %q: %w", path, err)
	}
	defer f.Close()

	return LoadFrom(f)
}

// LoadFrom parses an iNES image from an arbitrary reader, letting
// tests build cartridges from in-memory byte slices.
func LoadFrom(r io.Reader) (*Cartridge, error) {
	hbytes := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hbytes); err != nil {
		return nil, fmt.Errorf("cartridge: couldn't read header: %w", err)
	}

	h, err := parseHeader(hbytes)
	if err != nil {
		return nil, err
	}

	if h.hasTrainer() {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, fmt.Errorf("cartridge: couldn't skip trainer: %w", err)
		}
	}

	prgLen := h.prgUnits() * prgBlockSize
	if prgLen <= 0 {
		return nil, fmt.Errorf("cartridge: invalid PRG-ROM size (%d banks)", h.prgUnits())
	}
	prg := make([]byte, prgLen)
	if _, err := io.ReadFull(r, prg); err != nil {
		return nil, fmt.Errorf("cartridge: short PRG-ROM (wanted %d bytes): %w", prgLen, err)
	}

	var chr []byte
	chrIsRAM := h.chrUnits() == 0
	if chrIsRAM {
		// Open Question in spec.md §9: a CHR count of zero means
		// 8KiB of CHR-RAM. Some images set the count to 1 but the
		// file ends before the CHR data; that is a load error, not
		// a second way to request CHR-RAM.
		chr = make([]byte, chrBlockSize)
	} else {
		chrLen := h.chrUnits() * chrBlockSize
		chr = make([]byte, chrLen)
		if _, err := io.ReadFull(r, chr); err != nil {
			return nil, fmt.Errorf("cartridge: short CHR-ROM (wanted %d bytes): %w", chrLen, err)
		}
	}

	if h.hasPlayChoice() {
		// PlayChoice inst-ROM/PROM data is recognized but unused;
		// skip it rather than fail the load.
		io.CopyN(io.Discard, r, pcInstSize+pcPromSize)
	}

	mapper, err := newMapper(h.mapperID())
	if err != nil {
		return nil, err
	}

	c := &Cartridge{
		prg:      prg,
		chr:      chr,
		chrIsRAM: chrIsRAM,
		mirror:   h.mirror(),
		mapper:   mapper,
	}
	mapper.Attach(c)
	return c, nil
}

// Mirror reports the nametable mirroring mode, honoring a mapper
// override (e.g. single-screen bank select) when the mapper reports
// one.
func (c *Cartridge) Mirror() Mirror {
	if ov, ok := c.mapper.MirrorOverride(); ok {
		return ov
	}
	return c.mirror
}

// PRGLen returns the size in bytes of the PRG-ROM array.
func (c *Cartridge) PRGLen() int {
	return len(c.prg)
}

// CHRLen returns the size in bytes of the CHR-ROM/CHR-RAM array.
func (c *Cartridge) CHRLen() int {
	return len(c.chr)
}

// ChrIsRAM reports whether the character memory is writable RAM.
func (c *Cartridge) ChrIsRAM() bool {
	return c.chrIsRAM
}

// ReadCPU services a CPU-space read in 0x4020-0xFFFF, asking the
// mapper to translate the address and indexing the resulting PRG
// offset. Unmapped reads return 0 (open-bus approximation, spec.md §7).
func (c *Cartridge) ReadCPU(addr types.Addr) types.Byte {
	ext, ok := c.mapper.MapCPURead(addr)
	if !ok {
		return 0
	}
	if int(ext) >= len(c.prg) {
		return 0
	}
	return types.Byte(c.prg[ext])
}

// WriteCPU services a CPU-space write in 0x4020-0xFFFF. When the mapper
// returns ok, v is stored at the returned PRG offset; otherwise nothing
// is stored. Mapper 0 discards every write; a mapper that absorbs the
// write into its own state (bank-select registers) returns ok=false.
func (c *Cartridge) WriteCPU(addr types.Addr, v types.Byte) {
	ext, ok := c.mapper.MapCPUWrite(addr, v)
	if !ok {
		return
	}
	if int(ext) < len(c.prg) {
		c.prg[ext] = byte(v)
	}
}

// ReadCHR services a PPU-space pattern-table read in 0x0000-0x1FFF.
func (c *Cartridge) ReadCHR(addr types.Addr) types.Byte {
	ext, ok := c.mapper.MapPPURead(addr)
	if !ok || int(ext) >= len(c.chr) {
		return 0
	}
	return types.Byte(c.chr[ext])
}

// WriteCHR services a PPU-space pattern-table write. Honored only
// when the character memory is RAM (spec.md §4.3).
func (c *Cartridge) WriteCHR(addr types.Addr, v types.Byte) {
	if !c.chrIsRAM {
		return
	}
	ext, ok := c.mapper.MapPPUWrite(addr)
	if !ok || int(ext) >= len(c.chr) {
		return
	}
	c.chr[ext] = byte(v)
}

// IRQPending reports and clears a mapper-generated scanline IRQ.
// Mapper 0 never raises one; the hook exists so mappers that track
// scanlines (none shipped here; see DESIGN.md) have somewhere to
// plug in.
func (c *Cartridge) IRQPending() bool {
	return c.mapper.IRQPending()
}

// NotifyScanline lets scanline-counting mappers observe PPU scanline
// boundaries. Called once per scanline by the PPU.
func (c *Cartridge) NotifyScanline() {
	c.mapper.NotifyScanline()
}

func (m Mirror) String() string {
	switch m {
	case MirrorHorizontal:
		return "horizontal"
	case MirrorVertical:
		return "vertical"
	case MirrorSingleScreenLo:
		return "single-screen-lo"
	case MirrorSingleScreenHi:
		return "single-screen-hi"
	case MirrorFourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}
