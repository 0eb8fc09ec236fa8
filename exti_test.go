// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package exti_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warthog618/go-exti"
)

// resetPeripheral returns the shared register file to its power-on state.
//
// The register file is a process-wide singleton, so tests are sequential
// and each starts from reset.
func resetPeripheral() {
	exti.Regs.Reset()
	exti.Mux.Reset()
}

func checkConfig(t *testing.T, h *exti.Handle, xc exti.Config) {
	t.Helper()
	cfg, err := h.Config()
	assert.Nil(t, err)
	assert.Equal(t, xc, cfg)
}

func TestSetConfig(t *testing.T) {
	resetPeripheral()

	modes := []exti.Mode{
		exti.ModeNone,
		exti.ModeInterrupt,
		exti.ModeEvent,
		exti.ModeInterruptEvent,
	}
	triggers := []exti.Trigger{
		exti.TriggerNone,
		exti.TriggerRising,
		exti.TriggerFalling,
		exti.TriggerRisingFalling,
	}

	h := exti.NewHandle(exti.Line3)
	for _, m := range modes {
		for _, trig := range triggers {
			xc := exti.Config{
				Line:    exti.Line3,
				Mode:    m,
				Trigger: trig,
				Port:    exti.PortC,
			}
			err := h.SetConfig(&xc)
			require.Nil(t, err)
			checkConfig(t, h, xc)
		}
	}
}

func TestSetConfigNonConfigurable(t *testing.T) {
	resetPeripheral()

	// mode applies, but trigger is ignored and reads back as none
	h := exti.NewHandle(exti.Line17)
	err := h.SetConfig(&exti.Config{
		Line:    exti.Line17,
		Mode:    exti.ModeInterruptEvent,
		Trigger: exti.TriggerRising,
	})
	require.Nil(t, err)
	checkConfig(t, h, exti.Config{
		Line: exti.Line17,
		Mode: exti.ModeInterruptEvent,
	})
}

func TestSetConfigBank1(t *testing.T) {
	resetPeripheral()

	h := exti.NewHandle(exti.Line35)
	err := h.SetConfig(&exti.Config{
		Line: exti.Line35,
		Mode: exti.ModeInterrupt,
	})
	require.Nil(t, err)
	checkConfig(t, h, exti.Config{Line: exti.Line35, Mode: exti.ModeInterrupt})

	// bank 0 registers are untouched
	h0 := exti.NewHandle(exti.Line3)
	checkConfig(t, h0, exti.Config{Line: exti.Line3})
}

func TestSetConfigBindsLine(t *testing.T) {
	resetPeripheral()

	h := exti.NewHandle(exti.Line2)
	err := h.SetConfig(&exti.Config{
		Line:    exti.Line7,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerFalling,
	})
	require.Nil(t, err)
	assert.Equal(t, exti.Line7, h.Line)
	checkConfig(t, h, exti.Config{
		Line:    exti.Line7,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerFalling,
	})
}

func TestSetConfigSiblingIsolation(t *testing.T) {
	resetPeripheral()

	// lines 4 and 5 share mode, trigger and selector registers
	h4 := exti.NewHandle(exti.Line4)
	xc4 := exti.Config{
		Line:    exti.Line4,
		Mode:    exti.ModeInterruptEvent,
		Trigger: exti.TriggerRisingFalling,
		Port:    exti.PortD,
	}
	require.Nil(t, h4.SetConfig(&xc4))

	h5 := exti.NewHandle(exti.Line5)
	require.Nil(t, h5.SetConfig(&exti.Config{
		Line:    exti.Line5,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
		Port:    exti.PortB,
	}))
	checkConfig(t, h4, xc4)

	require.Nil(t, h5.ClearConfig())
	checkConfig(t, h4, xc4)
}

func TestClearConfig(t *testing.T) {
	resetPeripheral()

	h := exti.NewHandle(exti.Line3)
	require.Nil(t, h.SetConfig(&exti.Config{
		Line:    exti.Line3,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
		Port:    exti.PortC,
	}))
	checkConfig(t, h, exti.Config{
		Line:    exti.Line3,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
		Port:    exti.PortC,
	})

	require.Nil(t, h.ClearConfig())
	checkConfig(t, h, exti.Config{Line: exti.Line3})
}

func TestConfigNilHandle(t *testing.T) {
	resetPeripheral()

	var h *exti.Handle
	err := h.SetConfig(&exti.Config{Line: exti.Line3})
	assert.Equal(t, exti.ErrNilHandle, err)

	_, err = h.Config()
	assert.Equal(t, exti.ErrNilHandle, err)

	err = h.ClearConfig()
	assert.Equal(t, exti.ErrNilHandle, err)

	err = h.RegisterCallback(exti.CallbackCommon, func() {})
	assert.Equal(t, exti.ErrNilHandle, err)
}

func TestSetConfigNilConfig(t *testing.T) {
	resetPeripheral()

	h := exti.NewHandle(exti.Line3)
	err := h.SetConfig(nil)
	assert.Equal(t, exti.ErrNilConfig, err)

	// hardware untouched
	checkConfig(t, h, exti.Config{Line: exti.Line3})
}

func TestSetConfigEventContract(t *testing.T) {
	resetPeripheral()

	// Line21 is interrupt only
	h := exti.NewHandle(exti.Line21)
	assert.Panics(t, func() {
		h.SetConfig(&exti.Config{
			Line: exti.Line21,
			Mode: exti.ModeEvent,
		})
	})

	// hardware untouched
	checkConfig(t, h, exti.Config{Line: exti.Line21})
}

func TestRegisterCallback(t *testing.T) {
	resetPeripheral()

	h := exti.NewHandle(exti.Line6)
	require.Nil(t, h.SetConfig(&exti.Config{
		Line:    exti.Line6,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
	}))

	calls := 0
	err := h.RegisterCallback(exti.CallbackCommon, func() { calls++ })
	require.Nil(t, err)

	// unknown id is rejected and the stored callback unchanged
	err = h.RegisterCallback(exti.CallbackID(42), func() { calls += 100 })
	assert.Equal(t, exti.ErrUnknownCallback, err)

	s := exti.NewSim()
	s.High(exti.Line6)
	h.IRQHandler()
	assert.Equal(t, 1, calls)

	// last writer wins
	err = h.RegisterCallback(exti.CallbackCommon, func() { calls += 10 })
	require.Nil(t, err)
	s.Low(exti.Line6)
	s.High(exti.Line6)
	h.IRQHandler()
	assert.Equal(t, 11, calls)

	// nil unregisters
	err = h.RegisterCallback(exti.CallbackCommon, nil)
	require.Nil(t, err)
	s.Low(exti.Line6)
	s.High(exti.Line6)
	h.IRQHandler()
	assert.Equal(t, 11, calls)
	assert.False(t, h.Pending())
}

func TestIRQHandler(t *testing.T) {
	resetPeripheral()

	h := exti.NewHandle(exti.Line8)
	require.Nil(t, h.SetConfig(&exti.Config{
		Line:    exti.Line8,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
	}))
	calls := 0
	require.Nil(t, h.RegisterCallback(exti.CallbackCommon, func() {
		calls++
		// pending is cleared before the callback runs
		assert.False(t, h.Pending())
	}))

	// not pending - no-op
	h.IRQHandler()
	assert.Equal(t, 0, calls)

	s := exti.NewSim()
	s.High(exti.Line8)
	require.True(t, h.Pending())
	h.IRQHandler()
	assert.Equal(t, 1, calls)
	assert.False(t, h.Pending())

	// already serviced - no-op
	h.IRQHandler()
	assert.Equal(t, 1, calls)
}

func TestIRQHandlerNoCallback(t *testing.T) {
	resetPeripheral()

	h := exti.NewHandle(exti.Line9)
	require.Nil(t, h.SetConfig(&exti.Config{
		Line:    exti.Line9,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
	}))

	s := exti.NewSim()
	s.High(exti.Line9)
	require.True(t, h.Pending())

	// the event is acknowledged and dropped
	h.IRQHandler()
	assert.False(t, h.Pending())
}

func TestIRQHandlerSiblingPending(t *testing.T) {
	resetPeripheral()

	cfg := exti.Config{
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
	}
	h10 := exti.NewHandle(exti.Line10)
	cfg.Line = exti.Line10
	require.Nil(t, h10.SetConfig(&cfg))
	h11 := exti.NewHandle(exti.Line11)
	cfg.Line = exti.Line11
	require.Nil(t, h11.SetConfig(&cfg))

	s := exti.NewSim()
	s.High(exti.Line10)
	s.High(exti.Line11)

	// servicing one line leaves the other pending
	h10.IRQHandler()
	assert.False(t, h10.Pending())
	assert.True(t, h11.Pending())
}

func TestGenerateSWI(t *testing.T) {
	resetPeripheral()

	h := exti.NewHandle(exti.Line12)
	require.Nil(t, h.SetConfig(&exti.Config{
		Line:    exti.Line12,
		Mode:    exti.ModeInterrupt,
		Trigger: exti.TriggerRising,
	}))
	require.False(t, h.Pending())

	s := exti.NewSim()
	h.GenerateSWI()
	s.Step()
	assert.True(t, h.Pending())

	h.ClearPending()
	assert.False(t, h.Pending())

	// clearing when not pending is a no-op
	h.ClearPending()
	assert.False(t, h.Pending())
}

func TestPendingContracts(t *testing.T) {
	resetPeripheral()

	// Line17 is not configurable
	h := exti.NewHandle(exti.Line17)
	assert.Panics(t, func() { h.Pending() })
	assert.Panics(t, func() { h.ClearPending() })
	assert.Panics(t, func() { h.GenerateSWI() })
}
