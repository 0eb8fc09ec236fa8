// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build tinygo

package exti

import (
	"runtime/volatile"
	"unsafe"
)

// Reg32 is a single 32-bit peripheral register, accessed as volatile
// memory.
type Reg32 struct {
	r volatile.Register32
}

// Get returns the value of the register.
func (r *Reg32) Get() uint32 {
	return r.r.Get()
}

// Set replaces the value of the register.
func (r *Reg32) Set(v uint32) {
	r.r.Set(v)
}

// SetBits sets the masked bits of the register.
func (r *Reg32) SetBits(mask uint32) {
	r.r.SetBits(mask)
}

// ClearBits clears the masked bits of the register.
func (r *Reg32) ClearBits(mask uint32) {
	r.r.ClearBits(mask)
}

const (
	regsBase uintptr = 0x58000000
	muxBase  uintptr = 0x58000408
)

// Regs is the memory-mapped register file of the peripheral.
var Regs = (*RegisterFile)(unsafe.Pointer(regsBase))

// Mux is the memory-mapped GPIO port selection bank, in the system
// configuration block.
var Mux = (*PortMux)(unsafe.Pointer(muxBase))

// ackPending clears the masked pending bits.  PR is write-1-to-clear.
func (b *ModeBank) ackPending(mask uint32) {
	b.PR.Set(mask)
}

// swTrigger writes the masked bits to SWIER.  Bits written 0 are
// unaffected by hardware.
func (b *ConfigBank) swTrigger(mask uint32) {
	b.SWIER.Set(mask)
}
