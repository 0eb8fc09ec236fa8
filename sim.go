// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package exti

const (
	// Line is inactive.
	LevelInactive int = iota

	// Line is active.
	LevelActive
)

// Sim drives the register file from the hardware side, for testing
// drivers built on this package on a host.
//
// The Sim tracks a level per configurable line.  Changing a level latches
// the line's pending flag if the matching edge trigger is enabled, just
// as the edge detector does in silicon.
//
// The Sim drives [Regs] directly, so is only of use on host builds where
// the register file is ordinary memory.
type Sim struct {
	// Current level of each line, one bit per line, indexed by bank.
	levels [NumBanks]uint32
}

// NewSim constructs a Sim based on the provided options.
//
// All lines start inactive unless overridden with [WithInitialLevel].
func NewSim(options ...NewSimOption) *Sim {
	s := Sim{}
	for _, o := range options {
		o.applySimOption(&s)
	}
	return &s
}

// Level returns the level the line is currently being driven to.
func (s *Sim) Level(line Line) int {
	mustLine(line)
	mustConfigurable(line)

	if s.levels[line.Bank()]&line.Mask() != 0 {
		return LevelActive
	}
	return LevelInactive
}

// SetLevel drives the line to the given level.
//
// A change of level latches the line's pending flag if the corresponding
// edge trigger is enabled.  Driving a line to its current level is a
// no-op.
func (s *Sim) SetLevel(line Line, level int) {
	mustLine(line)
	mustConfigurable(line)

	bank := line.Bank()
	mask := line.Mask()
	high := s.levels[bank]&mask != 0
	if high == (level == LevelActive) {
		return
	}
	s.levels[bank] ^= mask
	if level == LevelActive {
		if Regs.Config[bank].RTSR.Get()&mask != 0 {
			Regs.Mode[bank].PR.SetBits(mask)
		}
	} else {
		if Regs.Config[bank].FTSR.Get()&mask != 0 {
			Regs.Mode[bank].PR.SetBits(mask)
		}
	}
}

// High drives the line active.
func (s *Sim) High(line Line) {
	s.SetLevel(line, LevelActive)
}

// Low drives the line inactive.
func (s *Sim) Low(line Line) {
	s.SetLevel(line, LevelInactive)
}

// Toggle flips the level of the line.
//
// If it was inactive it becomes active, and vice versa.
func (s *Sim) Toggle(line Line) {
	if s.Level(line) == LevelActive {
		s.Low(line)
	} else {
		s.High(line)
	}
}

// Step propagates software trigger requests into the pending flags, as
// the silicon does on a SWIER write, and retires the serviced requests.
func (s *Sim) Step() {
	for i := range Regs.Config {
		sw := Regs.Config[i].SWIER.Get()
		if sw == 0 {
			continue
		}
		Regs.Mode[i].PR.SetBits(sw)
		Regs.Config[i].SWIER.ClearBits(sw)
	}
}

// IRQAsserted returns true if the line is requesting a CPU interrupt,
// i.e. it is pending and its interrupt mode is enabled.
//
// This is the view the interrupt controller sees.
func (s *Sim) IRQAsserted(line Line) bool {
	mustLine(line)

	bank := line.Bank()
	mask := line.Mask()
	return Regs.Mode[bank].PR.Get()&Regs.Mode[bank].IMR.Get()&mask != 0
}
