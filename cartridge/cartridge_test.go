package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtellier/nescore/types"
)

func buildINES(prgBanks, chrBanks int, flags6, flags7 byte, fill func(prg, chr []byte)) []byte {
	prg := make([]byte, prgBanks*prgBlockSize)
	chr := make([]byte, chrBanks*chrBlockSize)
	if fill != nil {
		fill(prg, chr)
	}

	buf := new(bytes.Buffer)
	buf.WriteString("NES\x1A")
	buf.WriteByte(byte(prgBanks))
	buf.WriteByte(byte(chrBanks))
	buf.WriteByte(flags6)
	buf.WriteByte(flags7)
	buf.Write(make([]byte, 8)) // flags 8-15, zero padding
	buf.Write(prg)
	buf.Write(chr)
	return buf.Bytes()
}

func TestLoadFromRejectsBadMagic(t *testing.T) {
	bad := buildINES(1, 1, 0, 0, nil)
	bad[0] = 'X'
	_, err := LoadFrom(bytes.NewReader(bad))
	assert.Error(t, err)
}

func TestLoadFromRejectsShortHeader(t *testing.T) {
	_, err := LoadFrom(bytes.NewReader([]byte{'N', 'E', 'S'}))
	assert.Error(t, err)
}

func TestLoadFromUnsupportedMapper(t *testing.T) {
	raw := buildINES(1, 1, 0x10, 0, nil) // mapper id 1
	_, err := LoadFrom(bytes.NewReader(raw))
	assert.Error(t, err)
}

func TestLoadFromNROM32K(t *testing.T) {
	raw := buildINES(2, 1, 0, 0, func(prg, chr []byte) {
		prg[len(prg)-4] = 0x00
		prg[len(prg)-3] = 0x80
		prg[len(prg)-2] = 0x00
		prg[len(prg)-1] = 0x80
	})

	c, err := LoadFrom(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, 32*1024, c.PRGLen())
	assert.Equal(t, 8*1024, c.CHRLen())
	assert.False(t, c.ChrIsRAM())
	assert.Equal(t, MirrorHorizontal, c.Mirror())

	lo := c.ReadCPU(0xFFFC)
	hi := c.ReadCPU(0xFFFD)
	assert.Equal(t, types.Byte(0x00), lo)
	assert.Equal(t, types.Byte(0x80), hi)
}

func TestLoadFromNROM16KMirrors(t *testing.T) {
	raw := buildINES(1, 1, 0, 0, func(prg, chr []byte) {
		prg[0] = 0xEA // NOP at the very start of the bank
	})

	c, err := LoadFrom(bytes.NewReader(raw))
	require.NoError(t, err)

	// 0x8000 and 0xC000 must mirror the same 16KiB bank.
	assert.Equal(t, c.ReadCPU(0x8000), c.ReadCPU(0xC000))
	assert.Equal(t, types.Byte(0xEA), c.ReadCPU(0x8000))
}

func TestLoadFromZeroCHRIsRAM(t *testing.T) {
	raw := buildINES(1, 0, 0, 0, nil)

	c, err := LoadFrom(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.True(t, c.ChrIsRAM())
	assert.Equal(t, 8*1024, c.CHRLen())

	c.WriteCHR(0x0010, 0x42)
	assert.Equal(t, types.Byte(0x42), c.ReadCHR(0x0010))
}

func TestLoadFromVerticalMirroring(t *testing.T) {
	raw := buildINES(1, 1, flag6Mirroring, 0, nil)

	c, err := LoadFrom(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, MirrorVertical, c.Mirror())
}

func TestWriteCPUIsDiscardedOnNROM(t *testing.T) {
	raw := buildINES(1, 1, 0, 0, nil)
	c, err := LoadFrom(bytes.NewReader(raw))
	require.NoError(t, err)

	before := c.ReadCPU(0x8000)
	c.WriteCPU(0x8000, 0xFF)
	assert.Equal(t, before, c.ReadCPU(0x8000))
}
