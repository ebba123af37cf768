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

package config

import (
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/xpack-dev-tools/test-next-xpack/internal/buildinfo"
	"github.com/xpack-dev-tools/test-next-xpack/internal/types"
)

func validConfig() *Config {
	return &Config{
		Service: "test-service",
		Version: "v1.0.0",
		Mode:    types.ModeDebug,
		Message: "Hello World!",
		Logger: LoggerConfig{
			Level:        "info",
			Format:       "auto",
			OTELExporter: "none",
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing service name",
			mutate:  func(c *Config) { c.Service = "" },
			wantErr: true,
			errMsg:  "service name is required",
		},
		{
			name:    "missing version",
			mutate:  func(c *Config) { c.Version = " " },
			wantErr: true,
			errMsg:  "version is required",
		},
		{
			name:    "unknown mode",
			mutate:  func(c *Config) { c.Mode = "profile" },
			wantErr: true,
			errMsg:  "unknown mode",
		},
		{
			name:    "missing message",
			mutate:  func(c *Config) { c.Message = "" },
			wantErr: true,
			errMsg:  "message is required",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logger.Level = "verbose" },
			wantErr: true,
			errMsg:  "unknown log level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logger.Format = "xml" },
			wantErr: true,
			errMsg:  "unknown log format",
		},
		{
			name:    "unknown otel exporter",
			mutate:  func(c *Config) { c.Logger.OTELExporter = "stdout" },
			wantErr: true,
			errMsg:  "unknown log otel exporter",
		},
		{
			name:    "otel exporter without endpoint",
			mutate:  func(c *Config) { c.Logger.OTELExporter = "otlp-http" },
			wantErr: true,
			errMsg:  "endpoint is required",
		},
		{
			name: "otel exporter with endpoint",
			mutate: func(c *Config) {
				c.Logger.OTELExporter = "otlp-grpc"
				c.Logger.OTELEndpoint = "localhost:4317"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Validate() expected error, got nil")
					return
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() error = %v, want wrapped ErrInvalidConfig", err)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Validate() error = %v, want error containing %v", err, tt.errMsg)
				}
			} else {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
			}
		})
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	if err != nil {
		t.Fatalf("LoadFrom() unexpected error = %v", err)
	}

	if cfg.Service != "test-next" {
		t.Errorf("Service = %q, want %q", cfg.Service, "test-next")
	}
	if cfg.Mode != types.ModeRelease {
		t.Errorf("Mode = %v, want %v", cfg.Mode, types.ModeRelease)
	}
	if cfg.NoAsserts {
		t.Errorf("NoAsserts = true, want false")
	}
	if cfg.Message != "Hello World!" {
		t.Errorf("Message = %q, want %q", cfg.Message, "Hello World!")
	}
	if cfg.Logger.Level != "warn" {
		t.Errorf("Logger.Level = %q, want %q", cfg.Logger.Level, "warn")
	}
	if cfg.Logger.OTELExporter != "none" {
		t.Errorf("Logger.OTELExporter = %q, want %q", cfg.Logger.OTELExporter, "none")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() on defaults unexpected error = %v", err)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"BUILD_MODE":          "debug",
		"BUILD_NDEBUG":        "true",
		"HELLO_WORLD_MESSAGE": "Hi there",
		"LOG_FORMAT":          "text",
		"LOG_CORRELATION":     "true",
	})
	if err != nil {
		t.Fatalf("LoadFrom() unexpected error = %v", err)
	}

	want := types.BuildFlags{Mode: types.ModeDebug, AssertsDisabled: true}
	if got := cfg.Build(); got != want {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
	if cfg.Message != "Hi there" {
		t.Errorf("Message = %q, want %q", cfg.Message, "Hi there")
	}
	if cfg.Logger.Level != "debug" {
		t.Errorf("Logger.Level = %q, want debug default for debug mode", cfg.Logger.Level)
	}
	if cfg.LogFormat() != "text" {
		t.Errorf("LogFormat() = %q, want %q", cfg.LogFormat(), "text")
	}
	if !cfg.Correlation() {
		t.Errorf("Correlation() = false, want true")
	}
}

func TestLoadFrom_InvalidMode(t *testing.T) {
	_, err := LoadFrom(map[string]string{"BUILD_MODE": "fast"})
	if err == nil {
		t.Fatal("LoadFrom() expected error for unknown mode, got nil")
	}
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadFrom() error = %v, want wrapped ErrInvalidConfig", err)
	}
}

func TestLoad_MatchesBuild(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if got, want := cfg.Build(), buildinfo.Flags(); got != want {
		t.Errorf("Build() = %+v, want %+v", got, want)
	}
}

func TestConfig_LogFormat(t *testing.T) {
	tests := []struct {
		mode   types.Mode
		format string
		want   string
	}{
		{types.ModeDebug, "auto", "pretty"},
		{types.ModeRelease, "auto", "json"},
		{types.ModeRelease, "", "json"},
		{types.ModeRelease, "pretty", "pretty"},
		{types.ModeDebug, "json", "json"},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode)+"/"+tt.format, func(t *testing.T) {
			cfg := &Config{Mode: tt.mode, Logger: LoggerConfig{Format: tt.format}}
			if got := cfg.LogFormat(); got != tt.want {
				t.Errorf("LogFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfig_LogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelWarn,
		" debug ": slog.LevelDebug,
	}

	for level, want := range tests {
		t.Run(level, func(t *testing.T) {
			cfg := &Config{Logger: LoggerConfig{Level: level}}
			if got := cfg.LogLevel(); got != want {
				t.Errorf("LogLevel() = %v, want %v", got, want)
			}
		})
	}
}

func TestConfig_ServiceName(t *testing.T) {
	cfg := &Config{
		Service: "test-service",
	}

	if got := cfg.ServiceName(); got != "test-service" {
		t.Errorf("ServiceName() = %v, want %v", got, "test-service")
	}
}

func TestConfig_GetVersion(t *testing.T) {
	cfg := &Config{
		Version: "v1.2.3",
	}

	if got := cfg.GetVersion(); got != "v1.2.3" {
		t.Errorf("GetVersion() = %v, want %v", got, "v1.2.3")
	}
}

func TestDefault(t *testing.T) {
	tests := []struct {
		name      string
		flags     types.BuildFlags
		message   string
		wantMode  types.Mode
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "debug build",
			flags:     types.BuildFlags{Mode: types.ModeDebug},
			message:   "Hi",
			wantMode:  types.ModeDebug,
			wantLevel: "debug",
			wantMsg:   "Hi",
		},
		{
			name:      "release build without asserts",
			flags:     types.BuildFlags{Mode: types.ModeRelease, AssertsDisabled: true},
			message:   "Hi",
			wantMode:  types.ModeRelease,
			wantLevel: "warn",
			wantMsg:   "Hi",
		},
		{
			name:      "empty message",
			flags:     types.BuildFlags{Mode: types.ModeRelease},
			wantMode:  types.ModeRelease,
			wantLevel: "warn",
			wantMsg:   DefaultMessage,
		},
		{
			name:      "zero flags",
			flags:     types.BuildFlags{},
			message:   "Hi",
			wantMode:  types.ModeRelease,
			wantLevel: "warn",
			wantMsg:   "Hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default(tt.flags, tt.message)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() on Default unexpected error = %v", err)
			}
			if cfg.Mode != tt.wantMode {
				t.Errorf("Mode = %v, want %v", cfg.Mode, tt.wantMode)
			}
			if cfg.NoAsserts != tt.flags.AssertsDisabled {
				t.Errorf("NoAsserts = %v, want %v", cfg.NoAsserts, tt.flags.AssertsDisabled)
			}
			if cfg.Logger.Level != tt.wantLevel {
				t.Errorf("Logger.Level = %q, want %q", cfg.Logger.Level, tt.wantLevel)
			}
			if cfg.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", cfg.Message, tt.wantMsg)
			}
		})
	}
}

func TestConfig_ValidateProgramIgnoresLogger(t *testing.T) {
	cfg := validConfig()
	cfg.Logger.Level = "verbose"

	if err := cfg.ValidateProgram(); err != nil {
		t.Errorf("ValidateProgram() unexpected error = %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Errorf("Validate() expected logger error, got nil")
	}
	lc := DefaultLoggerConfig(cfg.Mode)
	if err := lc.Validate(); err != nil {
		t.Errorf("DefaultLoggerConfig().Validate() unexpected error = %v", err)
	}
}
