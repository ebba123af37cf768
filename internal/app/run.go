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

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/xpack-dev-tools/test-next-xpack/internal/buildinfo"
	"github.com/xpack-dev-tools/test-next-xpack/internal/config"
	"github.com/xpack-dev-tools/test-next-xpack/internal/logger"
)

// ExitSuccess is the only exit code either program returns.
const ExitSuccess = 0

const shutdownTimeout = 5 * time.Second

// Program writes its whole output to out.
type Program func(ctx context.Context, out io.Writer, cfg *config.Config) error

type Options struct {
	Name    string
	Stdout  io.Writer
	Stderr  io.Writer
	Program Program

	// Config is loaded from the build when nil. Name overrides its service
	// name.
	Config *config.Config
}

func Run(ctx context.Context, opts Options) error {
	if opts.Program == nil {
		return errors.New("no program to run")
	}
	if opts.Stdout == nil {
		opts.Stdout = io.Discard
	}
	if opts.Stderr == nil {
		opts.Stderr = io.Discard
	}

	var fallbacks []error

	var cfg config.Config
	if opts.Config != nil {
		cfg = *opts.Config
	} else {
		loaded, err := config.Load()
		if err != nil {
			fallbacks = append(fallbacks, err)
			loaded = config.Default(buildinfo.Flags(), buildinfo.HelloWorldMessage)
		}
		cfg = *loaded
	}
	if opts.Name != "" {
		cfg.Service = opts.Name
	}
	if err := cfg.ValidateProgram(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	if err := cfg.Logger.Validate(); err != nil {
		fallbacks = append(fallbacks, err)
		cfg.Logger = config.DefaultLoggerConfig(cfg.Mode)
	}

	lg, err := logger.NewLogger(ctx, &cfg, opts.Stderr)
	if err != nil {
		fallbacks = append(fallbacks, err)
		cfg.Logger = config.DefaultLoggerConfig(cfg.Mode)
		if lg, err = logger.NewLogger(ctx, &cfg, opts.Stderr); err != nil {
			return err
		}
	}
	previous := slog.Default()
	slog.SetDefault(lg.Slogger)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := lg.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down logger provider", "error", err)
		}
		slog.SetDefault(previous)
	}()

	for _, err := range fallbacks {
		slog.WarnContext(ctx, "unusable build configuration, using defaults", "error", err)
	}
	slog.DebugContext(ctx, "build configuration resolved",
		"version", cfg.GetVersion(),
		"no_asserts", cfg.NoAsserts,
	)

	return opts.Program(ctx, opts.Stdout, &cfg)
}

// Main runs program against the process streams. Failures are logged to
// stderr; the exit code is ExitSuccess regardless. Command-line arguments are
// not read.
func Main(name string, program Program) int {
	err := Run(context.Background(), Options{
		Name:    name,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Program: program,
	})
	if err != nil {
		slog.Error(name+" exited with error", "error", err)
	}
	return ExitSuccess
}
