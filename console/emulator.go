package console

import (
	"github.com/mtellier/nescore/cartridge"
	"github.com/mtellier/nescore/mos6502"
	"github.com/mtellier/nescore/types"
)

// Emulator owns every component of one NES and drives them with the
// master clock described in spec.md §4.5-4.6. All cross-component
// access happens through the Bus passed into CPU/PPU methods each
// tick; Emulator itself never lets a component reach into another.
type Emulator struct {
	Bus   *Bus
	CPU   *mos6502.CPU
	clock masterClock
	dma   dma
}

// New constructs an Emulator around cart and resets it to power-on
// state.
func New(cart *cartridge.Cartridge) *Emulator {
	e := &Emulator{
		Bus: NewBus(cart),
		CPU: mos6502.New(),
	}
	e.Reset()
	return e
}

// Reset reloads the cartridge's reset vector into the CPU, zeroes the
// PPU's internal rendering state, and clears the master clock, per the
// lifecycle contract in spec.md §3.
func (e *Emulator) Reset() {
	e.CPU.Reset(e.Bus)
	e.Bus.PPU.Reset()
	e.clock = masterClock{}
	e.dma = dma{}
}

// Step advances simulation until the PPU announces a completed frame,
// per spec.md §4.6's frame loop.
func (e *Emulator) Step() {
	for {
		e.Bus.PPU.Step(e.Bus.Cart)

		if e.clock.cpuTickDue() {
			e.tickCPUOrDMA()
			e.clock.cpuCycles++
		}

		e.clock.dots++

		if e.Bus.PPU.FrameReady() {
			return
		}
	}
}

// TickOne advances the master clock by a single dot, running the PPU
// and (every third dot) the CPU/DMA tick, without the frame-boundary
// exit Step uses. It exists for the step debugger, which needs finer
// granularity than "run until frame ready".
func (e *Emulator) TickOne() {
	e.Bus.PPU.Step(e.Bus.Cart)

	if e.clock.cpuTickDue() {
		e.tickCPUOrDMA()
		e.clock.cpuCycles++
	}

	e.clock.dots++
}

func (e *Emulator) tickCPUOrDMA() {
	if page, ok := e.Bus.takeDMARequest(); ok {
		e.dma.request(page)
	}
	if e.dma.active() {
		e.dma.tick(e.clock.cpuCycleIsEven(), e.Bus)
		return
	}

	// Interrupts are only safe to deliver right before a fetch: the
	// CPU's cycle-pacing counter has just drained to zero, so NMI/IRQ's
	// own push-and-vector side effects land atomically in its place
	// (spec.md §5's "observed by the CPU on cycle >= c+1" guarantee).
	if e.CPU.AtInstructionBoundary() {
		if e.Bus.PPU.HasNMI() {
			e.CPU.NMI(e.Bus)
		} else if e.Bus.Cart.IRQPending() {
			e.CPU.IRQ(e.Bus)
		}
	}
	e.CPU.Step(e.Bus)
}

// Framebuffer returns the current 256x240 array of system-palette
// indices, ready for the host to translate through the fixed RGB
// palette and present.
func (e *Emulator) Framebuffer() []byte {
	return e.Bus.PPU.Framebuffer()
}

// SetButtons updates the live state of one controller port (0 or 1).
func (e *Emulator) SetButtons(port int, buttons types.Byte) {
	if port == 0 {
		e.Bus.Ctrl1.SetButtons(buttons)
	} else {
		e.Bus.Ctrl2.SetButtons(buttons)
	}
}
