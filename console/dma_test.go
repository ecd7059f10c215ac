package console

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtellier/nescore/types"
)

func TestDMATransfersFromLatchedPageToOAM(t *testing.T) {
	b := NewBus(testCartridge(t))
	for i := 0; i < 256; i++ {
		b.Write(types.Addr(0x0200+i), types.Byte(i))
	}

	d := dma{}
	d.request(0x02)

	cycles := 0
	even := true // already aligned: no stall cycle needed
	for d.active() {
		consumed := d.tick(even, b)
		assert.True(t, consumed)
		even = !even
		cycles++
		if cycles > 600 {
			t.Fatal("DMA never completed")
		}
	}

	assert.Equal(t, [4]byte{0, 1, 2, 3}, b.PPU.OAMEntry(0))
	assert.Equal(t, 512, cycles) // already aligned: no extra wait cycle
}

func TestDMAWaitsForEvenCycleAlignment(t *testing.T) {
	d := dma{}
	d.request(0x00)

	b := NewBus(testCartridge(t))
	consumed := d.tick(false, b) // odd cycle: must wait
	assert.True(t, consumed)
	assert.Equal(t, dmaPendingStart, d.phase)

	d.tick(true, b) // even cycle: transfer begins
	assert.Equal(t, dmaRunning, d.phase)
}
