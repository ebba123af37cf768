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

// Package greeting implements the hello program: a greeting followed by the
// build configuration the binary was compiled with.
package greeting

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/xpack-dev-tools/test-next-xpack/internal/config"
	"github.com/xpack-dev-tools/test-next-xpack/internal/types"
)

const Hello = "Hello from next build!"

// Print writes message and the build mode lines, one per line.
func Print(w io.Writer, message string, flags types.BuildFlags) error {
	if _, err := fmt.Fprintln(w, message); err != nil {
		return fmt.Errorf("write greeting: %w", err)
	}
	for _, line := range flags.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write build flags: %w", err)
		}
	}
	return nil
}

// Run is the hello program.
func Run(ctx context.Context, w io.Writer, cfg *config.Config) error {
	slog.DebugContext(ctx, "printing greeting", "message", Hello)
	return Print(w, Hello, cfg.Build())
}
