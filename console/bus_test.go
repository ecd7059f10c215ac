package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/types"
)

func testCartridge(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	data := make([]byte, 16+32*1024)
	data[0], data[1], data[2], data[3] = 'N', 'E', 'S', 0x1A
	data[4] = 2
	data[5] = 0
	data[6] = 0
	cart, err := cartridge.LoadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	return cart
}

func TestRAMIsMirroredAcrossFourAliases(t *testing.T) {
	b := NewBus(testCartridge(t))
	b.Write(0x0000, 0x42)

	assert.Equal(t, types.Byte(0x42), b.Read(0x0800))
	assert.Equal(t, types.Byte(0x42), b.Read(0x1000))
	assert.Equal(t, types.Byte(0x42), b.Read(0x1800))
}

func TestPPURegistersMirrorEveryEightBytes(t *testing.T) {
	b := NewBus(testCartridge(t))
	b.Write(0x2003, 0x04) // OAMADDR
	b.Write(0x200C, 0xAB) // mirrors 0x2004 (OAMDATA)

	assert.Equal(t, [4]byte{0xAB, 0, 0, 0}, b.PPU.OAMEntry(1))
}

func TestJoy1StrobeReadsAPressedFirst(t *testing.T) {
	b := NewBus(testCartridge(t))
	b.Ctrl1.SetButtons(0x01) // A

	b.Write(0x4016, 0x01)
	b.Write(0x4016, 0x00)

	assert.Equal(t, types.Byte(0x01), b.Read(0x4016))
	assert.Equal(t, types.Byte(0x00), b.Read(0x4016))
}

func TestOAMDMATriggerIsLatchedNotImmediate(t *testing.T) {
	b := NewBus(testCartridge(t))
	b.Write(0x4014, 0x02)

	page, ok := b.takeDMARequest()
	assert.True(t, ok)
	assert.Equal(t, types.Byte(0x02), page)

	_, ok = b.takeDMARequest()
	assert.False(t, ok) // one-shot
}

func TestCartridgeRangeRoutesToROM(t *testing.T) {
	b := NewBus(testCartridge(t))
	assert.Equal(t, b.Cart.ReadCPU(0xC000), b.Read(0xC000))
}
