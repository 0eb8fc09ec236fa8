// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package exti

// Line identifies one external interrupt/event line.
//
// The value encodes, in disjoint bit fields, the bank the line's register
// bits live in, the bit position within that bank, and the capabilities of
// the line.  It is the single source of truth for where in the register
// file the line's bits are found, and never changes once assigned.
type Line uint32

const (
	// Bit position of the line within its bank.
	pinMask Line = 0x0000001f

	// Index of the bank holding the line's register bits.
	regMask  Line = 0x00030000
	regShift      = 16

	// Capabilities of the line.
	propertyShift      = 24
	propertyMask  Line = 0x0f << propertyShift

	lineDirect Line = 0x01 << propertyShift
	lineConfig Line = 0x02 << propertyShift
	lineGPIO   Line = 0x04<<propertyShift | lineConfig
	lineEvent  Line = 0x08 << propertyShift

	bank0 Line = 0x0 << regShift
	bank1 Line = 0x1 << regShift
)

// The lines provided by the peripheral.
//
// Lines 0 to 15 are multiplexed GPIO lines.  The remainder are wired to
// fixed internal sources and only their interrupt and event enables are
// programmable.
const (
	Line0  Line = lineGPIO | lineEvent | bank0 | 0
	Line1  Line = lineGPIO | lineEvent | bank0 | 1
	Line2  Line = lineGPIO | lineEvent | bank0 | 2
	Line3  Line = lineGPIO | lineEvent | bank0 | 3
	Line4  Line = lineGPIO | lineEvent | bank0 | 4
	Line5  Line = lineGPIO | lineEvent | bank0 | 5
	Line6  Line = lineGPIO | lineEvent | bank0 | 6
	Line7  Line = lineGPIO | lineEvent | bank0 | 7
	Line8  Line = lineGPIO | lineEvent | bank0 | 8
	Line9  Line = lineGPIO | lineEvent | bank0 | 9
	Line10 Line = lineGPIO | lineEvent | bank0 | 10
	Line11 Line = lineGPIO | lineEvent | bank0 | 11
	Line12 Line = lineGPIO | lineEvent | bank0 | 12
	Line13 Line = lineGPIO | lineEvent | bank0 | 13
	Line14 Line = lineGPIO | lineEvent | bank0 | 14
	Line15 Line = lineGPIO | lineEvent | bank0 | 15

	// Line16 is the programmable voltage detector output.
	Line16 Line = lineConfig | lineEvent | bank0 | 16

	Line17 Line = lineDirect | lineEvent | bank0 | 17 // RTC alarm
	Line18 Line = lineDirect | lineEvent | bank0 | 18 // RTC tamper and timestamp
	Line19 Line = lineDirect | lineEvent | bank0 | 19 // RTC wakeup timer
	Line20 Line = lineDirect | lineEvent | bank0 | 20 // USB OTG FS wakeup
	Line21 Line = lineDirect | bank0 | 21             // Ethernet interrupt
	Line22 Line = lineDirect | bank0 | 22             // HSEM interrupt

	Line32 Line = lineDirect | lineEvent | bank1 | 0 // USART1 wakeup
	Line33 Line = lineDirect | lineEvent | bank1 | 1 // USART2 wakeup
	Line34 Line = lineDirect | lineEvent | bank1 | 2 // USART3 wakeup
	Line35 Line = lineDirect | lineEvent | bank1 | 3 // I2C1 wakeup
	Line36 Line = lineDirect | lineEvent | bank1 | 4 // LPTIM1 wakeup
	Line37 Line = lineDirect | lineEvent | bank1 | 5 // LPTIM2 wakeup
)

// Highest populated bit position in each bank.
var lastPos = [NumBanks]uint{22, 5}

// Lines returns all the lines provided by the peripheral, in bank and
// position order.
func Lines() []Line {
	return []Line{
		Line0, Line1, Line2, Line3, Line4, Line5, Line6, Line7,
		Line8, Line9, Line10, Line11, Line12, Line13, Line14, Line15,
		Line16, Line17, Line18, Line19, Line20, Line21, Line22,
		Line32, Line33, Line34, Line35, Line36, Line37,
	}
}

// Bank returns the index of the register bank holding the line's bits.
func (l Line) Bank() int {
	return int((l & regMask) >> regShift)
}

// Pos returns the bit position of the line within its bank.
func (l Line) Pos() uint {
	return uint(l & pinMask)
}

// Mask returns the single bit for the line within its bank's registers.
func (l Line) Mask() uint32 {
	return uint32(1) << l.Pos()
}

// Configurable returns true if the line's trigger edges may be selected.
//
// Lines wired to fixed internal sources are not configurable; only their
// interrupt and event enables apply.
func (l Line) Configurable() bool {
	return l&lineConfig != 0
}

// GPIOSourced returns true if the line's signal originates from a
// multiplexed GPIO pin.
func (l Line) GPIOSourced() bool {
	return l&lineGPIO == lineGPIO
}

// EventCapable returns true if the line can generate a low-power wake
// event.
func (l Line) EventCapable() bool {
	return l&lineEvent != 0
}

func (l Line) valid() bool {
	if l&^(pinMask|regMask|propertyMask) != 0 {
		return false
	}
	switch l &^ (pinMask | regMask | lineEvent) {
	case lineDirect, lineConfig, lineGPIO:
	default:
		return false
	}
	bank := l.Bank()
	if bank >= NumBanks || l.Pos() > lastPos[bank] {
		return false
	}
	if l.GPIOSourced() && (bank != 0 || l.Pos() > 15) {
		return false
	}
	return true
}
