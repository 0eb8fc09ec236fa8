// SPDX-FileCopyrightText: 2024 Kent Gibson <warthog618@gmail.com>
//
// SPDX-License-Identifier: Apache-2.0 OR MIT

package exti

// NewSimOption defines the interface required to provide an option to
// NewSim.
type NewSimOption interface {
	applySimOption(*Sim)
}

// InitialLevel is an option that seeds the level of a line.
type InitialLevel struct {
	Line  Line
	Level int
}

// WithInitialLevel returns an option that seeds the level a line is
// driven to when the Sim is constructed.
//
// Seeding a level does not latch a pending flag - there has been no edge.
func WithInitialLevel(line Line, level int) InitialLevel {
	return InitialLevel{line, level}
}

func (o InitialLevel) applySimOption(s *Sim) {
	mustLine(o.Line)
	mustConfigurable(o.Line)
	if o.Level == LevelActive {
		s.levels[o.Line.Bank()] |= o.Line.Mask()
	} else {
		s.levels[o.Line.Bank()] &^= o.Line.Mask()
	}
}
