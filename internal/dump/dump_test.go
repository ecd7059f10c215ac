package dump

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/mos6502"
	"github.com/mtellier/nescore/ppu"
)

func testCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	data := make([]byte, 16+32*1024)
	data[0], data[1], data[2], data[3] = 'N', 'E', 'S', 0x1A
	data[4] = 2
	cart, err := cartridge.LoadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	return cart
}

func TestCPUDumpIncludesRegisters(t *testing.T) {
	c := mos6502.New()
	s := CPU(c)
	assert.Contains(t, s, "PC:")
	assert.Contains(t, s, "A:")
}

func TestPPUDumpIncludesScanlineAndDot(t *testing.T) {
	p := ppu.New()
	s := PPU(p)
	assert.Contains(t, s, "scanline:-1")
	assert.Contains(t, s, "dot:0")
}

func TestCartridgeDumpIncludesMirrorName(t *testing.T) {
	s := Cartridge(testCartridge(t))
	assert.True(t, strings.Contains(s, "horizontal"))
}

func TestOAMDumpListsRequestedSpriteCount(t *testing.T) {
	p := ppu.New()
	s := OAM(p, 2)
	assert.Contains(t, s, "sprite 00")
	assert.Contains(t, s, "sprite 01")
	assert.NotContains(t, s, "sprite 02")
}
