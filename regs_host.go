// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build !tinygo

package exti

import "sync/atomic"

// Reg32 is a single 32-bit peripheral register.
//
// On host builds the register is plain memory, accessed through
// sync/atomic so accesses are neither elided nor reordered.
type Reg32 struct {
	v uint32
}

// Get returns the value of the register.
func (r *Reg32) Get() uint32 {
	return atomic.LoadUint32(&r.v)
}

// Set replaces the value of the register.
func (r *Reg32) Set(v uint32) {
	atomic.StoreUint32(&r.v, v)
}

// SetBits sets the masked bits of the register.
func (r *Reg32) SetBits(mask uint32) {
	r.Set(r.Get() | mask)
}

// ClearBits clears the masked bits of the register.
func (r *Reg32) ClearBits(mask uint32) {
	r.Set(r.Get() &^ mask)
}

// Regs is the register file of the peripheral.
//
// On host builds this is ordinary memory with the same layout and
// addressing arithmetic as the memory-mapped peripheral.
var Regs = &RegisterFile{}

// Mux is the GPIO port selection bank.
var Mux = &PortMux{}

// ackPending clears the masked pending bits.
//
// On hardware PR is write-1-to-clear; plain memory emulates that here.
func (b *ModeBank) ackPending(mask uint32) {
	b.PR.ClearBits(mask)
}

// swTrigger latches the masked bits into SWIER.
//
// On hardware SWIER bits written 0 are unaffected; plain memory emulates
// that here.
func (b *ConfigBank) swTrigger(mask uint32) {
	b.SWIER.SetBits(mask)
}
