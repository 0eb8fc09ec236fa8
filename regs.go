// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package exti

// NumBanks is the number of 32-line register banks provided by the
// peripheral.
const NumBanks = 2

// ConfigBank holds the edge configuration registers for one bank of lines.
//
// The blocks are replicated at a 0x20 byte stride from the base of the
// peripheral, interleaved with registers not used by this package.
type ConfigBank struct {
	// RTSR enables rising edge detection per line.
	RTSR Reg32

	// FTSR enables falling edge detection per line.
	FTSR Reg32

	// SWIER synthesizes a trigger for each line written as 1.
	SWIER Reg32

	_ [5]Reg32
}

// ModeBank holds the mode and pending registers for one bank of lines.
//
// The blocks are replicated at a 0x10 byte stride from offset 0x80.
type ModeBank struct {
	// IMR enables the CPU interrupt per line.
	IMR Reg32

	// EMR enables the wake event per line.
	EMR Reg32

	// PR latches a 1 per line whose configured edge has occurred.
	// Write 1 to clear.
	PR Reg32

	_ Reg32
}

// RegisterFile is the register block of the peripheral.
//
// Register groups are replicated per bank, indexed by [Line.Bank], with
// reserved padding preserving the hardware layout.
type RegisterFile struct {
	Config [NumBanks]ConfigBank
	_      [16]Reg32
	Mode   [NumBanks]ModeBank
}

// PortMux is the GPIO port selection bank, physically part of the system
// configuration block rather than the peripheral itself.
//
// Four lines are packed per register, in 8 bit slots holding a 4 bit port
// selector, so the selector for line position p is in EXTICR[p/4].
type PortMux struct {
	EXTICR [4]Reg32
}

const (
	// Width of the port selector field within its slot.
	muxFieldMask uint32 = 0xf

	// Distance between consecutive selector slots, in bits.
	muxSlotBits = 8
)

// muxShift returns the bit offset of the selector field for the line
// position within its EXTICR register.
func muxShift(pos uint) uint {
	return muxSlotBits * (pos & 0x3)
}

// Reset returns every register in the file to its power-on state.
func (r *RegisterFile) Reset() {
	for i := range r.Config {
		r.Config[i].RTSR.Set(0)
		r.Config[i].FTSR.Set(0)
		r.Config[i].SWIER.Set(0)
	}
	for i := range r.Mode {
		r.Mode[i].IMR.Set(0)
		r.Mode[i].EMR.Set(0)
		r.Mode[i].PR.Set(0)
	}
}

// Reset returns every selector register to its power-on state, routing
// port A to all GPIO lines.
func (m *PortMux) Reset() {
	for i := range m.EXTICR {
		m.EXTICR[i].Set(0)
	}
}
