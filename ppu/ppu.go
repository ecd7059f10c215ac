// Package ppu implements the NES Picture Processing Unit: the 8
// memory-mapped registers the CPU sees at 0x2000-0x2007, and a
// dot-by-dot rendering state machine that walks 341 dots across 262
// scanlines per frame, emitting one 256x240 framebuffer of palette
// indices per frame and a one-shot NMI request at the start of
// vertical blank.
package ppu

import (
	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/types"
)

const (
	ScreenWidth  = 256
	ScreenHeight = 240

	oamSize     = 256
	vramSize    = 2048
	paletteSize = 32
)

// CPU-visible register addresses (0x2000-0x2007, before the console
// bus mirrors 0x2008-0x3FFF down onto this range).
const (
	RegPPUCTRL   types.Addr = 0x2000
	RegPPUMASK   types.Addr = 0x2001
	RegPPUSTATUS types.Addr = 0x2002
	RegOAMADDR   types.Addr = 0x2003
	RegOAMDATA   types.Addr = 0x2004
	RegPPUSCROLL types.Addr = 0x2005
	RegPPUADDR   types.Addr = 0x2006
	RegPPUDATA   types.Addr = 0x2007
)

// PPUCTRL bits.
const (
	CtrlNametableX    types.Byte = 1 << 0
	CtrlNametableY    types.Byte = 1 << 1
	CtrlIncrementMode types.Byte = 1 << 2 // 0: +1 across, 1: +32 down
	CtrlSpritePattern types.Byte = 1 << 3
	CtrlBgPattern     types.Byte = 1 << 4
	CtrlSpriteSize    types.Byte = 1 << 5 // 0: 8x8, 1: 8x16
	CtrlMasterSlave   types.Byte = 1 << 6
	CtrlGenerateNMI   types.Byte = 1 << 7
)

// PPUMASK bits.
const (
	MaskGrayscale       types.Byte = 1 << 0
	MaskShowBgLeft      types.Byte = 1 << 1
	MaskShowSpritesLeft types.Byte = 1 << 2
	MaskShowBg          types.Byte = 1 << 3
	MaskShowSprites     types.Byte = 1 << 4
	MaskEmphasizeRed    types.Byte = 1 << 5
	MaskEmphasizeGreen  types.Byte = 1 << 6
	MaskEmphasizeBlue   types.Byte = 1 << 7
)

// PPUSTATUS bits.
const (
	StatusSpriteOverflow types.Byte = 1 << 5
	StatusSprite0Hit     types.Byte = 1 << 6
	StatusVerticalBlank  types.Byte = 1 << 7
)

// spriteSlot holds one of up to 8 sprites selected for the scanline
// below the one currently being evaluated (spec.md §4.2's compressed
// two-point sprite pipeline: select at dot 257, fetch at dot 340).
type spriteSlot struct {
	x                    types.Byte
	tileID               types.Byte
	row                  int
	patternLo, patternHi types.Byte
	isZero               bool

	palette  types.Byte
	renderP  priority
	flipH    bool
	flipV    bool
}

// PPU owns nametable/palette/OAM RAM and the rendering pipeline. It
// never stores a reference to the active Cartridge: every method that
// needs pattern-table or mirroring data takes one as a parameter, so
// a console can swap cartridges without leaving a stale pointer behind.
type PPU struct {
	ctrl, mask, status types.Byte
	oamAddr            types.Byte
	oam                [oamSize]byte
	vram               [vramSize]byte
	paletteRAM         [paletteSize]byte

	v, t        loopy
	fineX       types.Byte
	writeToggle bool
	readBuffer  types.Byte

	scanline int // -1 (pre-render) through 260
	dot      int // 0 through 340
	frameOdd bool

	ntByte                     types.Byte
	nextAttr                   types.Byte
	nextPatternLo, nextPatternHi types.Byte
	bgPatternLo, bgPatternHi   uint16
	bgAttrLo, bgAttrHi         uint16

	spriteCount int
	sprites     [8]spriteSlot

	pendingNMI  bool
	frameReady  bool
	framebuffer [ScreenWidth * ScreenHeight]byte
}

// New returns a PPU in its power-on state, starting mid-vblank on the
// pre-render line so the first Step begins a fresh frame.
func New() *PPU {
	return &PPU{scanline: -1}
}

// Reset restores power-on register state without discarding VRAM/OAM
// contents (the real chip's RAM is not cleared by /RESET either).
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.v, p.t = loopy{}, loopy{}
	p.fineX, p.writeToggle, p.readBuffer = 0, false, 0
	p.scanline, p.dot, p.frameOdd = -1, 0, false
	p.pendingNMI, p.frameReady = false, false
}

func (p *PPU) renderingEnabled() bool {
	return p.mask&(MaskShowBg|MaskShowSprites) != 0
}

// HasNMI reports and consumes a pending vertical-blank NMI request.
func (p *PPU) HasNMI() bool {
	v := p.pendingNMI
	p.pendingNMI = false
	return v
}

// FrameReady reports and consumes the end-of-frame latch the frame
// loop polls to know when a framebuffer is ready to present.
func (p *PPU) FrameReady() bool {
	v := p.frameReady
	p.frameReady = false
	return v
}

// Framebuffer returns the current 256x240 array of system-palette
// indices (0-63). The caller is expected to look colors up in a fixed
// 64-entry RGB table; this package does not perform that translation.
func (p *PPU) Framebuffer() []byte {
	return p.framebuffer[:]
}

func (p *PPU) Scanline() int { return p.scanline }
func (p *PPU) Dot() int      { return p.dot }

// Step advances the PPU by exactly one dot (spec.md §4.2).
func (p *PPU) Step(cart *cartridge.Cartridge) {
	if p.scanline >= -1 && p.scanline < 240 {
		p.runBackgroundPipeline(cart)
		if p.scanline >= 0 {
			if p.dot == 257 {
				p.evaluateSprites()
			}
			if p.dot == 340 {
				p.fetchSpritePatterns(cart)
			}
			if p.dot >= 1 && p.dot <= 256 {
				p.renderPixel()
			}
		}
	}

	if p.scanline == -1 && p.dot == 1 {
		p.status &^= StatusVerticalBlank | StatusSprite0Hit | StatusSpriteOverflow
	}
	if p.scanline == 241 && p.dot == 1 {
		p.status |= StatusVerticalBlank
		if p.ctrl&CtrlGenerateNMI != 0 {
			p.pendingNMI = true
		}
	}

	p.advance(cart)
}

func (p *PPU) advance(cart *cartridge.Cartridge) {
	p.dot++
	if p.dot > 340 {
		p.dot = 0
		p.scanline++
		cart.NotifyScanline()
		if p.scanline > 260 {
			p.scanline = -1
			p.frameOdd = !p.frameOdd
			p.frameReady = true
		}
	}
	if p.scanline == 0 && p.dot == 0 && p.frameOdd && p.renderingEnabled() {
		p.dot = 1 // odd-frame dot-0 skip
	}
}

func boolToBit(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

func (p *PPU) runBackgroundPipeline(cart *cartridge.Cartridge) {
	if !p.renderingEnabled() {
		return
	}

	inFetchWindow := (p.dot >= 2 && p.dot <= 257) || (p.dot >= 321 && p.dot <= 337)
	if inFetchWindow {
		p.bgPatternLo <<= 1
		p.bgPatternHi <<= 1
		p.bgAttrLo <<= 1
		p.bgAttrHi <<= 1

		switch (p.dot - 1) % 8 {
		case 0:
			p.loadBackgroundShiftRegisters()
			p.ntByte = p.readNametable(cart, types.Addr(0x2000|(p.v.addr()&0x0FFF)))
		case 2:
			atAddr := types.Addr(0x23C0 | (p.v.raw() & 0x0C00) | ((p.v.coarseY() >> 2) << 3) | (p.v.coarseX() >> 2))
			at := p.readNametable(cart, atAddr)
			if p.v.coarseY()&0x02 != 0 {
				at >>= 4
			}
			if p.v.coarseX()&0x02 != 0 {
				at >>= 2
			}
			p.nextAttr = at & 0x03
		case 4:
			p.nextPatternLo = cart.ReadCHR(p.bgPatternAddr())
		case 6:
			p.nextPatternHi = cart.ReadCHR(p.bgPatternAddr() + 8)
		case 7:
			p.v.incrementCoarseX()
		}
	}

	if p.dot == 256 {
		p.v.incrementCoarseY()
	}
	if p.dot == 257 {
		p.loadBackgroundShiftRegisters()
		p.v.copyHorizontalBits(&p.t)
	}
	if p.scanline == -1 && p.dot >= 280 && p.dot <= 304 {
		p.v.copyVerticalBits(&p.t)
	}
}

func (p *PPU) bgPatternAddr() types.Addr {
	base := types.Addr(0)
	if p.ctrl&CtrlBgPattern != 0 {
		base = 0x1000
	}
	return base + types.Addr(p.ntByte)*16 + types.Addr(p.v.fineY())
}

func (p *PPU) loadBackgroundShiftRegisters() {
	p.bgPatternLo = (p.bgPatternLo & 0xFF00) | uint16(p.nextPatternLo)
	p.bgPatternHi = (p.bgPatternHi & 0xFF00) | uint16(p.nextPatternHi)
	var loFill, hiFill uint16
	if p.nextAttr&0x01 != 0 {
		loFill = 0x00FF
	}
	if p.nextAttr&0x02 != 0 {
		hiFill = 0x00FF
	}
	p.bgAttrLo = (p.bgAttrLo & 0xFF00) | loFill
	p.bgAttrHi = (p.bgAttrHi & 0xFF00) | hiFill
}

// evaluateSprites runs at dot 257: pick up to 8 OAM entries covering
// the scanline after the current one.
func (p *PPU) evaluateSprites() {
	p.spriteCount = 0
	height := 8
	if p.ctrl&CtrlSpriteSize != 0 {
		height = 16
	}
	target := p.scanline + 1

	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4])
		row := target - y
		if row < 0 || row >= height {
			continue
		}
		if p.spriteCount == 8 {
			p.status |= StatusSpriteOverflow
			break
		}
		s := &p.sprites[p.spriteCount]
		s.tileID = types.Byte(p.oam[i*4+1])
		s.palette, s.renderP, s.flipH, s.flipV = decodeSpriteAttr(types.Byte(p.oam[i*4+2]))
		s.x = types.Byte(p.oam[i*4+3])
		s.row = row
		s.isZero = i == 0
		p.spriteCount++
	}
}

// fetchSpritePatterns runs at dot 340: resolve pattern bytes for the
// sprites evaluateSprites selected, honoring 8x8/8x16 mode and flips.
func (p *PPU) fetchSpritePatterns(cart *cartridge.Cartridge) {
	height := 8
	if p.ctrl&CtrlSpriteSize != 0 {
		height = 16
	}

	for i := 0; i < p.spriteCount; i++ {
		s := &p.sprites[i]

		row := s.row
		if s.flipV {
			row = height - 1 - row
		}

		var addr types.Addr
		if height == 16 {
			bank := types.Addr(s.tileID&0x01) * 0x1000
			tile := s.tileID &^ 0x01
			if row >= 8 {
				tile++
				row -= 8
			}
			addr = bank + types.Addr(tile)*16 + types.Addr(row)
		} else {
			bank := types.Addr(0)
			if p.ctrl&CtrlSpritePattern != 0 {
				bank = 0x1000
			}
			addr = bank + types.Addr(s.tileID)*16 + types.Addr(row)
		}

		lo := cart.ReadCHR(addr)
		hi := cart.ReadCHR(addr + 8)
		if s.flipH {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}
		s.patternLo, s.patternHi = lo, hi
	}
}

func reverseBits(b types.Byte) types.Byte {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

func (p *PPU) renderPixel() {
	x := p.dot - 1

	var bgPixel, bgPalette uint16
	if p.mask&MaskShowBg != 0 && (x >= 8 || p.mask&MaskShowBgLeft != 0) {
		mux := uint16(0x8000) >> p.fineX
		p0 := boolToBit(p.bgPatternLo&mux != 0)
		p1 := boolToBit(p.bgPatternHi&mux != 0)
		bgPixel = p1<<1 | p0
		a0 := boolToBit(p.bgAttrLo&mux != 0)
		a1 := boolToBit(p.bgAttrHi&mux != 0)
		bgPalette = a1<<1 | a0
	}

	var fgPixel, fgPalette uint16
	var fgBehind, fgIsZero bool
	if p.mask&MaskShowSprites != 0 && (x >= 8 || p.mask&MaskShowSpritesLeft != 0) {
		for i := 0; i < p.spriteCount; i++ {
			s := &p.sprites[i]
			offset := x - int(s.x)
			if offset < 0 || offset > 7 {
				continue
			}
			bit := uint(7 - offset)
			lo := boolToBit(s.patternLo.InspectBit(bit))
			hi := boolToBit(s.patternHi.InspectBit(bit))
			px := hi<<1 | lo
			if px == 0 {
				continue
			}
			fgPixel = px
			fgPalette = uint16(s.palette)
			fgBehind = s.renderP == BACK
			fgIsZero = s.isZero
			break
		}
	}

	if bgPixel != 0 && fgPixel != 0 && fgIsZero && x != 255 {
		p.status |= StatusSprite0Hit
	}

	var paletteAddr types.Addr
	switch {
	case bgPixel == 0 && fgPixel == 0:
		paletteAddr = 0x3F00
	case bgPixel == 0:
		paletteAddr = 0x3F10 + types.Addr(fgPalette*4+fgPixel)
	case fgPixel == 0:
		paletteAddr = 0x3F00 + types.Addr(bgPalette*4+bgPixel)
	case fgBehind:
		paletteAddr = 0x3F00 + types.Addr(bgPalette*4+bgPixel)
	default:
		paletteAddr = 0x3F10 + types.Addr(fgPalette*4+fgPixel)
	}

	p.framebuffer[p.scanline*ScreenWidth+x] = byte(p.readPaletteRAM(paletteAddr) & 0x3F)
}

// nametableOffset maps a PPU-space nametable address (0x2000-0x3EFF)
// onto one of the two physical 1KiB tables, honoring cartridge
// mirroring (spec.md §4.2).
func (p *PPU) nametableOffset(addr types.Addr, mirror cartridge.Mirror) int {
	rel := int(addr-0x2000) % 0x1000
	table := rel / 0x400
	offset := rel % 0x400

	var page int
	switch mirror {
	case cartridge.MirrorVertical:
		page = table % 2
	case cartridge.MirrorSingleScreenLo:
		page = 0
	case cartridge.MirrorSingleScreenHi:
		page = 1
	default: // horizontal, and four-screen (unsupported, falls back to horizontal)
		page = table / 2
	}
	return page*0x400 + offset
}

func (p *PPU) readNametable(cart *cartridge.Cartridge, addr types.Addr) types.Byte {
	return types.Byte(p.vram[p.nametableOffset(addr, cart.Mirror())])
}

func (p *PPU) writeNametable(cart *cartridge.Cartridge, addr types.Addr, v types.Byte) {
	p.vram[p.nametableOffset(addr, cart.Mirror())] = byte(v)
}

func paletteIndex(addr types.Addr) types.Addr {
	i := addr & 0x1F
	// $3F10/$14/$18/$1C mirror the backdrop color of the preceding
	// background palette.
	if i&0x13 == 0x10 {
		i &^= 0x10
	}
	return i
}

func (p *PPU) readPaletteRAM(addr types.Addr) types.Byte {
	v := types.Byte(p.paletteRAM[paletteIndex(addr)])
	if p.mask&MaskGrayscale != 0 {
		v &= 0x30
	}
	return v
}

func (p *PPU) writePaletteRAM(addr types.Addr, v types.Byte) {
	p.paletteRAM[paletteIndex(addr)] = byte(v & 0x3F)
}

// ReadReg services a CPU read of one of the 8 mapped registers
// (spec.md §4.2); reg must already be reduced to 0x2000-0x2007.
func (p *PPU) ReadReg(cart *cartridge.Cartridge, reg types.Addr) types.Byte {
	switch reg {
	case RegPPUSTATUS:
		result := (p.status & 0xE0) | (p.readBuffer & 0x1F) // low 5 bits: stale bus contents
		p.status &^= StatusVerticalBlank
		p.writeToggle = false
		return result
	case RegOAMDATA:
		return types.Byte(p.oam[p.oamAddr])
	case RegPPUDATA:
		return p.readPPUDATA(cart)
	default:
		return 0
	}
}

func (p *PPU) readPPUDATA(cart *cartridge.Cartridge) types.Byte {
	addr := types.Addr(p.v.addr())
	var result types.Byte
	if addr >= 0x3F00 {
		result = p.readPaletteRAM(addr)
		p.readBuffer = p.readVRAMThrough(cart, addr-0x1000)
	} else {
		result = p.readBuffer
		p.readBuffer = p.readVRAMThrough(cart, addr)
	}
	p.incrementVRAMAddr()
	return result
}

func (p *PPU) readVRAMThrough(cart *cartridge.Cartridge, addr types.Addr) types.Byte {
	switch {
	case addr < 0x2000:
		return cart.ReadCHR(addr)
	case addr < 0x3F00:
		return p.readNametable(cart, addr)
	default:
		return p.readPaletteRAM(addr)
	}
}

func (p *PPU) incrementVRAMAddr() {
	step := uint16(1)
	if p.ctrl&CtrlIncrementMode != 0 {
		step = 32
	}
	p.v.set(p.v.raw() + step)
}

// WriteReg services a CPU write to one of the 8 mapped registers.
func (p *PPU) WriteReg(cart *cartridge.Cartridge, reg types.Addr, val types.Byte) {
	switch reg {
	case RegPPUCTRL:
		p.ctrl = val
		p.t.setNametableX(uint16(val & 0x01))
		p.t.setNametableY(uint16((val >> 1) & 0x01))
	case RegPPUMASK:
		p.mask = val
	case RegOAMADDR:
		p.oamAddr = val
	case RegOAMDATA:
		p.oam[p.oamAddr] = byte(val)
		p.oamAddr++
	case RegPPUSCROLL:
		if !p.writeToggle {
			p.t.setCoarseX(uint16(val >> 3))
			p.fineX = val & 0x07
		} else {
			p.t.setCoarseY(uint16(val >> 3))
			p.t.setFineY(uint16(val & 0x07))
		}
		p.writeToggle = !p.writeToggle
	case RegPPUADDR:
		if !p.writeToggle {
			p.t.set((uint16(val&0x3F) << 8) | (p.t.raw() & 0x00FF))
		} else {
			p.t.set((p.t.raw() & 0xFF00) | uint16(val))
			p.v = p.t
		}
		p.writeToggle = !p.writeToggle
	case RegPPUDATA:
		p.writePPUDATA(cart, val)
	}
}

func (p *PPU) writePPUDATA(cart *cartridge.Cartridge, val types.Byte) {
	addr := types.Addr(p.v.addr())
	switch {
	case addr < 0x2000:
		cart.WriteCHR(addr, val)
	case addr < 0x3F00:
		p.writeNametable(cart, addr, val)
	default:
		p.writePaletteRAM(addr, val)
	}
	p.incrementVRAMAddr()
}

// DMAWrite lands one byte of an OAM-DMA transfer at the current OAM
// address and advances it, matching how $4014 actually drives OAMDATA.
func (p *PPU) DMAWrite(v types.Byte) {
	p.oam[p.oamAddr] = byte(v)
	p.oamAddr++
}

// OAMEntry returns the 4 raw bytes of OAM sprite i, for debugger dumps.
func (p *PPU) OAMEntry(i int) [4]byte {
	var e [4]byte
	copy(e[:], p.oam[i*4:i*4+4])
	return e
}
