package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/types"
)

// programCartridge builds a 32KiB NROM image with prg bytes placed at
// CPU address 0x8000 and the reset vector pointed at 0x8000.
func programCartridge(t *testing.T, prg ...byte) *cartridge.Cartridge {
	t.Helper()
	data := make([]byte, 16+32*1024)
	data[0], data[1], data[2], data[3] = 'N', 'E', 'S', 0x1A
	data[4] = 2
	data[5] = 0
	data[6] = 0
	copy(data[16:], prg)
	// reset vector at the end of the 32KiB PRG window (0xFFFC/0xFFFD)
	data[16+32*1024-4] = 0x00
	data[16+32*1024-3] = 0x80
	cart, err := cartridge.LoadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	return cart
}

func TestResetLoadsVectorIntoCPU(t *testing.T) {
	e := New(programCartridge(t, 0xEA)) // NOP
	assert.Equal(t, types.Addr(0x8000), e.CPU.PC)
}

func TestStepRunsUntilFrameReady(t *testing.T) {
	// An infinite loop of NOPs; Step must still terminate once the PPU
	// completes one frame, since the CPU never blocks the PPU/clock.
	prg := make([]byte, 32*1024)
	for i := range prg {
		prg[i] = 0xEA
	}
	e := New(programCartridge(t, prg...))

	e.Step()

	assert.Equal(t, -1, e.Bus.PPU.Scanline())
}

func TestOAMDMAStallsCPUWhileActive(t *testing.T) {
	e := New(programCartridge(t, 0xEA))
	for i := 0; i < 8; i++ { // burn the post-reset idle cycles first
		e.tickCPUOrDMA()
		e.clock.cpuCycles++
	}
	for i := 0; i < 256; i++ {
		e.Bus.Write(types.Addr(0x0200+i), types.Byte(i))
	}
	e.Bus.Write(0x4014, 0x02)

	pcBefore := e.CPU.PC

	// cpuCycles is 8 (even) at this point, so the DMA engine needs no
	// alignment wait: exactly 512 CPU ticks transfer the 256 bytes and
	// the CPU never gets a tick in between.
	for i := 0; i < 512; i++ {
		e.tickCPUOrDMA()
		e.clock.cpuCycles++
		assert.True(t, e.dma.active() || i == 511)
	}

	assert.Equal(t, pcBefore, e.CPU.PC)
	assert.False(t, e.dma.active())
	assert.Equal(t, [4]byte{0, 1, 2, 3}, e.Bus.PPU.OAMEntry(0))

	e.tickCPUOrDMA() // next CPU tick runs a real instruction again
	assert.NotEqual(t, pcBefore, e.CPU.PC)
}
