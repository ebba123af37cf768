// Copyright 2025 Nguyen Nhat Nguyen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package types

import "fmt"

// Mode is the build mode a binary was compiled in.
type Mode string

const (
	ModeDebug   Mode = "debug"
	ModeRelease Mode = "release"
)

func (m Mode) String() string {
	return string(m)
}

// UnmarshalText implements encoding.TextUnmarshaler so Mode can be read by the
// env config loader.
func (m *Mode) UnmarshalText(text []byte) error {
	switch Mode(text) {
	case ModeDebug, ModeRelease:
		*m = Mode(text)
		return nil
	default:
		return fmt.Errorf("unknown mode %q (want %q or %q)", string(text), ModeDebug, ModeRelease)
	}
}

// BuildFlags are the compile-time switches a binary reports on startup.
type BuildFlags struct {
	Mode            Mode
	AssertsDisabled bool
}

// ModeLine returns the line naming the active build mode.
func (f BuildFlags) ModeLine() string {
	if f.Mode == ModeDebug {
		return "(in debug mode)"
	}
	return "(in release mode)"
}

// Lines returns the mode line, followed by "(no asserts)" when assertions
// were compiled out.
func (f BuildFlags) Lines() []string {
	lines := []string{f.ModeLine()}
	if f.AssertsDisabled {
		lines = append(lines, "(no asserts)")
	}
	return lines
}
