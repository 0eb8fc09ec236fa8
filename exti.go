// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package exti

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNilHandle indicates an operation was attempted on an absent
	// handle.
	ErrNilHandle = errors.New("exti: nil handle")

	// ErrNilConfig indicates a configuration operation was attempted with
	// an absent configuration.
	ErrNilConfig = errors.New("exti: nil config")

	// ErrUnknownCallback indicates a callback registration with an
	// unrecognized callback identifier.
	ErrUnknownCallback = errors.New("exti: unknown callback id")
)

// Mode selects how a line reports its trigger to the CPU.
type Mode uint32

const (
	// ModeNone leaves the line masked.
	ModeNone Mode = 0x0

	// ModeInterrupt raises a CPU interrupt when the line triggers.
	ModeInterrupt Mode = 0x1

	// ModeEvent raises a low-power wake event when the line triggers.
	ModeEvent Mode = 0x2

	// ModeInterruptEvent raises both.
	ModeInterruptEvent = ModeInterrupt | ModeEvent
)

// Trigger selects the edges a configurable line reacts to.
type Trigger uint32

const (
	// TriggerNone disables edge detection on the line.
	TriggerNone Trigger = 0x0

	// TriggerRising triggers the line on a rising edge.
	TriggerRising Trigger = 0x1

	// TriggerFalling triggers the line on a falling edge.
	TriggerFalling Trigger = 0x2

	// TriggerRisingFalling triggers the line on either edge.
	TriggerRisingFalling = TriggerRising | TriggerFalling
)

// Port selects the GPIO port multiplexed onto a GPIO-sourced line.
type Port uint32

const (
	PortA Port = iota
	PortB
	PortC
	PortD
	PortE
	PortF
	PortG
	PortH
)

// CallbackID identifies the callback role being registered with
// [Handle.RegisterCallback].
type CallbackID int

const (
	// CallbackCommon is the common pending callback, invoked for any
	// pending edge on the line.  The pending flag does not record which
	// edge occurred, so this is the only role defined.
	CallbackCommon CallbackID = iota
)

// Config describes the configuration of one line.
type Config struct {
	// The line being described.
	Line Line

	// How the line reports a trigger.
	Mode Mode

	// The edges the line triggers on.
	//
	// Only meaningful for configurable lines.
	Trigger Trigger

	// The GPIO port multiplexed onto the line.
	//
	// Only meaningful for GPIO-sourced lines.
	Port Port
}

// Handle is the per-line state owned by the subsystem managing the line.
//
// A handle carries the line identifier, bound once at construction or by
// [Handle.SetConfig] and immutable thereafter, and at most one pending
// callback.
type Handle struct {
	// The line serviced through this handle.
	Line Line

	// The registered pending callback, or nil if none.
	cb func()
}

// NewHandle constructs a handle bound to the given line.
//
// Panics if the line is not one provided by the peripheral.
func NewHandle(line Line) *Handle {
	mustLine(line)
	return &Handle{Line: line}
}

// SetConfig programs the hardware so the line's interrupt mode, event
// mode, and, where the line supports them, edge triggers and GPIO port
// selection match cfg, and binds cfg.Line to the handle.
//
// Bits belonging to other lines sharing the same registers are left
// untouched.  Pending flags are not touched.
//
// Enabling event mode on a line that is not event capable is a contract
// violation and panics.
func (h *Handle) SetConfig(cfg *Config) error {
	if h == nil {
		return ErrNilHandle
	}
	if cfg == nil {
		return ErrNilConfig
	}
	mustLine(cfg.Line)
	mustMode(cfg.Mode)
	if cfg.Mode&ModeEvent != 0 && !cfg.Line.EventCapable() {
		panic(fmt.Sprintf("exti: line %#08x does not support event mode", uint32(cfg.Line)))
	}

	h.Line = cfg.Line

	bank := cfg.Line.Bank()
	mask := cfg.Line.Mask()

	if cfg.Line.Configurable() {
		mustTrigger(cfg.Trigger)

		rtsr := Regs.Config[bank].RTSR.Get()
		if cfg.Trigger&TriggerRising != 0 {
			rtsr |= mask
		} else {
			rtsr &^= mask
		}
		Regs.Config[bank].RTSR.Set(rtsr)

		ftsr := Regs.Config[bank].FTSR.Get()
		if cfg.Trigger&TriggerFalling != 0 {
			ftsr |= mask
		} else {
			ftsr &^= mask
		}
		Regs.Config[bank].FTSR.Set(ftsr)

		if cfg.Line.GPIOSourced() {
			mustPort(cfg.Port)
			pos := cfg.Line.Pos()
			sel := Mux.EXTICR[pos>>2].Get()
			sel &^= muxFieldMask << muxShift(pos)
			sel |= uint32(cfg.Port) << muxShift(pos)
			Mux.EXTICR[pos>>2].Set(sel)
		}
	}

	imr := Regs.Mode[bank].IMR.Get()
	if cfg.Mode&ModeInterrupt != 0 {
		imr |= mask
	} else {
		imr &^= mask
	}
	Regs.Mode[bank].IMR.Set(imr)

	emr := Regs.Mode[bank].EMR.Get()
	if cfg.Mode&ModeEvent != 0 {
		emr |= mask
	} else {
		emr &^= mask
	}
	Regs.Mode[bank].EMR.Set(emr)

	return nil
}

// Config returns the configuration of the line as currently programmed in
// the hardware.
//
// The trigger is reported as [TriggerNone] for non-configurable lines, and
// the port as [PortA] for lines not sourced from GPIO.  A pure read, with
// no side effects.
func (h *Handle) Config() (Config, error) {
	if h == nil {
		return Config{}, ErrNilHandle
	}
	mustLine(h.Line)

	bank := h.Line.Bank()
	mask := h.Line.Mask()
	cfg := Config{Line: h.Line}

	if Regs.Mode[bank].IMR.Get()&mask != 0 {
		cfg.Mode |= ModeInterrupt
	}
	if Regs.Mode[bank].EMR.Get()&mask != 0 {
		cfg.Mode |= ModeEvent
	}

	if h.Line.Configurable() {
		if Regs.Config[bank].RTSR.Get()&mask != 0 {
			cfg.Trigger |= TriggerRising
		}
		if Regs.Config[bank].FTSR.Get()&mask != 0 {
			cfg.Trigger |= TriggerFalling
		}
		if h.Line.GPIOSourced() {
			pos := h.Line.Pos()
			sel := Mux.EXTICR[pos>>2].Get()
			cfg.Port = Port((sel >> muxShift(pos)) & muxFieldMask)
		}
	}

	return cfg, nil
}

// ClearConfig returns the line to its reset configuration: interrupt and
// event modes masked and, for configurable lines, triggers disabled and
// the GPIO port selection returned to port A.
//
// Bits belonging to other lines sharing the same registers are left
// untouched.
func (h *Handle) ClearConfig() error {
	if h == nil {
		return ErrNilHandle
	}
	mustLine(h.Line)

	bank := h.Line.Bank()
	mask := h.Line.Mask()

	Regs.Mode[bank].IMR.ClearBits(mask)
	Regs.Mode[bank].EMR.ClearBits(mask)

	if h.Line.Configurable() {
		Regs.Config[bank].RTSR.ClearBits(mask)
		Regs.Config[bank].FTSR.ClearBits(mask)

		if h.Line.GPIOSourced() {
			pos := h.Line.Pos()
			Mux.EXTICR[pos>>2].ClearBits(muxFieldMask << muxShift(pos))
		}
	}

	return nil
}

// RegisterCallback stores fn as the callback for the given role,
// replacing any previously registered callback.
//
// Only [CallbackCommon] is recognized; any other id returns
// [ErrUnknownCallback] and leaves the stored callback unchanged.
// A nil fn unregisters the callback.
func (h *Handle) RegisterCallback(id CallbackID, fn func()) error {
	if h == nil {
		return ErrNilHandle
	}
	switch id {
	case CallbackCommon:
		h.cb = fn
	default:
		return ErrUnknownCallback
	}
	return nil
}

// IRQHandler services a pending trigger on the line.
//
// It is intended to be called by the interrupt controller routing the
// line's CPU interrupt.  If the line is pending, the pending flag is
// cleared and then the registered callback, if any, is invoked, so a
// callback that re-triggers the line observes a fresh pending state.
// If the line is not pending this is a no-op.
func (h *Handle) IRQHandler() {
	bank := h.Line.Bank()
	mask := h.Line.Mask()

	if Regs.Mode[bank].PR.Get()&mask == 0 {
		return
	}
	Regs.Mode[bank].ackPending(mask)
	if h.cb != nil {
		h.cb()
	}
}

// Pending returns true if the line's pending flag is set.
//
// A pure read, with no side effects.  Defined only for configurable
// lines; panics otherwise.
func (h *Handle) Pending() bool {
	mustLine(h.Line)
	mustConfigurable(h.Line)

	return Regs.Mode[h.Line.Bank()].PR.Get()&h.Line.Mask() != 0
}

// ClearPending clears the line's pending flag, whether or not it is set.
//
// Defined only for configurable lines; panics otherwise.
func (h *Handle) ClearPending() {
	mustLine(h.Line)
	mustConfigurable(h.Line)

	Regs.Mode[h.Line.Bank()].ackPending(h.Line.Mask())
}

// GenerateSWI triggers the line in software, as if its configured edge
// had occurred.
//
// Defined only for configurable lines; panics otherwise.
func (h *Handle) GenerateSWI() {
	mustLine(h.Line)
	mustConfigurable(h.Line)

	Regs.Config[h.Line.Bank()].swTrigger(h.Line.Mask())
}

func mustLine(l Line) {
	if !l.valid() {
		panic(fmt.Sprintf("exti: invalid line %#08x", uint32(l)))
	}
}

func mustConfigurable(l Line) {
	if !l.Configurable() {
		panic(fmt.Sprintf("exti: line %#08x is not configurable", uint32(l)))
	}
}

func mustMode(m Mode) {
	if m&^ModeInterruptEvent != 0 {
		panic(fmt.Sprintf("exti: invalid mode %#x", uint32(m)))
	}
}

func mustTrigger(t Trigger) {
	if t&^TriggerRisingFalling != 0 {
		panic(fmt.Sprintf("exti: invalid trigger %#x", uint32(t)))
	}
}

func mustPort(p Port) {
	if p > PortH {
		panic(fmt.Sprintf("exti: invalid port %d", uint32(p)))
	}
}
