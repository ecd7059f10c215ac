// Package dump formats CPU, PPU, and cartridge state for the step
// debugger, leaning on go-spew for the structural dumps rather than
// hand-rolled formatting.
package dump

import (
	"fmt"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/mos6502"
	"github.com/mtellier/nescore/ppu"
)

var config = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// CPU renders the CPU's registers and flags as a one-line status
// string, in the teacher debugger's "PC: ... A: ... X: ..." register
// line style.
func CPU(c *mos6502.CPU) string {
	return fmt.Sprintf(
		"PC:%04X A:%02X X:%02X Y:%02X S:%02X P:%02X boundary:%t",
		c.PC, c.A, c.X, c.Y, c.S, c.P, c.AtInstructionBoundary(),
	)
}

// PPU renders the PPU's scanline/dot position.
func PPU(p *ppu.PPU) string {
	return fmt.Sprintf("scanline:%d dot:%d", p.Scanline(), p.Dot())
}

// Cartridge prints the cartridge's mirroring mode, then dumps the
// Cartridge struct via go-spew, since there's no single-line summary
// worth hand-writing for it.
func Cartridge(c *cartridge.Cartridge) string {
	var b strings.Builder
	b.WriteString("mirror: ")
	b.WriteString(mirrorName(c.Mirror()))
	b.WriteString("\n")
	b.WriteString(config.Sdump(c))
	return b.String()
}

func mirrorName(m cartridge.Mirror) string {
	switch m {
	case cartridge.MirrorHorizontal:
		return "horizontal"
	case cartridge.MirrorVertical:
		return "vertical"
	case cartridge.MirrorSingleScreenLo:
		return "single-screen-lo"
	case cartridge.MirrorSingleScreenHi:
		return "single-screen-hi"
	case cartridge.MirrorFourScreen:
		return "four-screen"
	default:
		return "unknown"
	}
}

// OAM dumps the first n sprite entries of the PPU's OAM table.
func OAM(p *ppu.PPU, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		e := p.OAMEntry(i)
		fmt.Fprintf(&b, "sprite %02d: y=%02X tile=%02X attr=%02X x=%02X\n", i, e[0], e[1], e[2], e[3])
	}
	return b.String()
}
