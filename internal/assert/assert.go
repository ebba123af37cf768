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

//go:build !ndebug

// Package assert provides runtime self-checks that are compiled out when the
// binary is built with the ndebug tag.
package assert

import "fmt"

// Enabled reports whether assertions are compiled in. Guard checks that are
// expensive to evaluate with `if assert.Enabled { ... }`.
const Enabled = true

// Assert panics with msg if ok is false.
func Assert(ok bool, msg string) {
	if !ok {
		panic(fmt.Sprintf("assertion failed: %s", msg))
	}
}

// NoError panics if err is not nil.
func NoError(err error) {
	if err != nil {
		panic(fmt.Errorf("assertion failed: unexpected error: %w", err))
	}
}
