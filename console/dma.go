package console

import "github.com/mtellier/nescore/types"

type dmaPhase int

const (
	dmaIdle dmaPhase = iota
	dmaPendingStart
	dmaRunning
)

// dma is the OAM-DMA engine: a page-aligned CPU→OAM byte pump that
// steals 512 CPU cycles per transfer, or 513 when it first has to wait
// for an even CPU cycle (spec.md §4.4). It never runs
// concurrently with a CPU instruction; MasterClock hands it the CPU
// tick instead of the CPU whenever it is active.
type dma struct {
	phase    dmaPhase
	page     types.Byte
	offset   int
	haveRead bool
	readByte types.Byte
}

func (d *dma) active() bool {
	return d.phase != dmaIdle
}

// request latches the source page and arms the engine; it takes
// effect starting on the next even CPU cycle (spec.md §4.4, §9's
// "DMA alignment" note).
func (d *dma) request(page types.Byte) {
	d.phase = dmaPendingStart
	d.page = page
	d.offset = 0
	d.haveRead = false
}

// tick runs one CPU-cycle's worth of DMA work and reports whether this
// cycle belongs to the DMA engine (true) rather than the CPU.
func (d *dma) tick(cpuCycleEven bool, bus *Bus) bool {
	if d.phase == dmaPendingStart {
		if !cpuCycleEven {
			return true // stalling until alignment, no transfer work yet
		}
		d.phase = dmaRunning
	}

	if d.phase != dmaRunning {
		return false
	}

	if !d.haveRead {
		addr := types.Addr(d.page)<<8 + types.Addr(d.offset)
		d.readByte = bus.Read(addr)
		d.haveRead = true
		return true
	}

	bus.PPU.DMAWrite(d.readByte)
	d.haveRead = false
	d.offset++
	if d.offset > 255 {
		d.phase = dmaIdle
	}
	return true
}
