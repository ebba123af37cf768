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

// Package demo implements the test-next program: the configured greeting,
// the build configuration, then a failure raised one call down and recovered
// by the most specific handler.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/xpack-dev-tools/test-next-xpack/internal/assert"
	"github.com/xpack-dev-tools/test-next-xpack/internal/config"
	"github.com/xpack-dev-tools/test-next-xpack/internal/exception"
	"github.com/xpack-dev-tools/test-next-xpack/internal/greeting"
)

var errNoFailure = errors.New("raise returned without a failure")

// Raise always fails with a MyException value.
func Raise() error {
	return exception.MyException{}
}

type Program struct {
	// Raise is the call whose failure is recovered.
	Raise func() error
}

func New() *Program {
	return &Program{Raise: Raise}
}

// Run is the test-next program.
func (p *Program) Run(ctx context.Context, w io.Writer, cfg *config.Config) error {
	if err := greeting.Print(w, cfg.Message, cfg.Build()); err != nil {
		return err
	}

	err := p.Raise()
	assert.Assert(err != nil, "raise must fail")
	if err == nil {
		return errNoFailure
	}

	line, ok := exception.Catch(err)
	if !ok {
		return fmt.Errorf("unhandled failure: %w", err)
	}
	slog.DebugContext(ctx, "failure recovered", "error", err, "handler", line)

	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("write handler output: %w", err)
	}
	return nil
}
