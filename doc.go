// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
Package exti configures and services the external interrupt/event lines of an
STM32H7-series EXTI peripheral.

The peripheral exposes a fixed set of [Line]s, grouped into banks of 32.
Lines 0 to 15 are wired to GPIO pins through a port multiplexer, while the
remaining lines are wired to fixed internal wakeup sources.  Each line can
independently raise a CPU interrupt, a low-power wake event, or both, on a
rising edge, falling edge, or either.

A [Handle] associates a line with at most one pending callback.  The line is
configured by passing a [Config] to [Handle.SetConfig], read back with
[Handle.Config], and returned to its reset state with [Handle.ClearConfig].
The interrupt controller that routes the line's CPU interrupt is expected to
call [Handle.IRQHandler] when the interrupt fires; the handler clears the
hardware pending flag before invoking the registered callback, so a callback
that re-arms the line observes a clean pending state.

All operations are direct, non-blocking register accesses.  The register
file is a process-wide singleton, [Regs], together with the port multiplexer
bank [Mux].  On tinygo builds they are mapped onto the memory-mapped
peripheral; on other builds they are ordinary memory, so the package, and
drivers built on it, can be exercised on a host.

Configuration operations read-modify-write registers shared by all lines in
a bank, so the package provides no internal locking.  Callers configuring
lines that share a bank must serialize those calls themselves, and must not
run them concurrently with [Handle.IRQHandler] for a line in the same bank.

The [Sim] drives the host-side register file from the hardware side,
latching pending flags as simulated pin edges occur, for testing drivers
built on this package.

# Example Usage

Configure line 3, multiplexed to port B, to interrupt on a rising edge:

	h := exti.NewHandle(exti.Line3)
	err := h.SetConfig(&exti.Config{
		Line:    exti.Line3,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
		Port:    exti.PortB,
	})
	h.RegisterCallback(exti.CallbackCommon, func() {
		// runs in interrupt context, must not block
	})
*/
package exti
