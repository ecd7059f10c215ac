// Package apu stubs out the NES Audio Processing Unit's CPU-visible
// register surface. Audio synthesis is an explicit non-goal: the APU
// exists here only so the console bus has somewhere to route
// $4000-$4013/$4015/$4017 without special-casing them, and so a
// cartridge that polls $4015 for a DMC/frame IRQ gets a stable zero
// rather than an open-bus panic.
package apu

import "github.com/mtellier/nescore/types"

const (
	RegFirst   types.Addr = 0x4000
	RegLast    types.Addr = 0x4013
	RegStatus  types.Addr = 0x4015
	RegCounter types.Addr = 0x4017
)

// APU holds no channel state; every register write is discarded and
// every read returns 0. A future iteration implementing audio would
// keep this same register surface and fill in the channel units the
// way RNG999-gones' apu package models them.
type APU struct{}

func New() *APU { return &APU{} }

func (a *APU) Reset() {}

// ReadReg services a CPU read of $4000-$4017. Only $4015 is real
// hardware-readable; everything else is write-only and reads as 0.
func (a *APU) ReadReg(reg types.Addr) types.Byte {
	return 0
}

// WriteReg services a CPU write to $4000-$4017. A no-op until audio
// synthesis is implemented.
func (a *APU) WriteReg(reg types.Addr, v types.Byte) {}

// IRQPending always reports false: neither the frame counter nor the
// DMC channel exists yet to raise one.
func (a *APU) IRQPending() bool { return false }
