package console

// masterClock is the sole scheduler: a monotonically increasing dot
// counter that ticks the PPU every cycle and hands every third cycle
// to either the CPU or, while one is in flight, the DMA engine
// (spec.md §4.5). There are no goroutines and no locks; Emulator.Step
// is a straight-line loop driven entirely by this counter.
type masterClock struct {
	dots      uint64
	cpuCycles uint64
}

func (m *masterClock) cpuTickDue() bool {
	return m.dots%3 == 0
}

func (m *masterClock) cpuCycleIsEven() bool {
	return m.cpuCycles%2 == 0
}
