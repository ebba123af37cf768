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
	"fmt"
	"log/slog"
	"strings"

	"github.com/xpack-dev-tools/test-next-xpack/internal/types"
)

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.Level(-8)

type LoggerConfig struct {
	// trace|debug|info|warn|error; empty picks a default from the build mode.
	Level string `json:"level" env:"LEVEL"`

	// auto|json|text|pretty
	Format string `json:"format" env:"FORMAT" envDefault:"auto"`

	// none|otlp-http|otlp-grpc
	OTELExporter string `json:"otel_exporter" env:"OTEL_EXPORTER" envDefault:"none"`
	OTELEndpoint string `json:"otel_endpoint" env:"OTEL_ENDPOINT"`
	Correlation  bool   `json:"correlation" env:"CORRELATION" envDefault:"false"`
}

// Debug builds log everything by default; release builds stay quiet unless
// something goes wrong.
func defaultLevel(mode types.Mode) string {
	if mode == types.ModeDebug {
		return "debug"
	}
	return "warn"
}

// DefaultLoggerConfig is what a binary logs with when its link-time logger
// settings are unusable.
func DefaultLoggerConfig(mode types.Mode) LoggerConfig {
	return LoggerConfig{
		Level:        defaultLevel(mode),
		Format:       "auto",
		OTELExporter: "none",
	}
}

func (lc *LoggerConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(lc.Level)) {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, lc.Level)
	}
	switch lc.Format {
	case "auto", "json", "text", "pretty":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalidConfig, lc.Format)
	}
	switch lc.OTELExporter {
	case "none":
	case "otlp-http", "otlp-grpc":
		if lc.OTELEndpoint == "" {
			return fmt.Errorf("%w: log otel endpoint is required for exporter %q", ErrInvalidConfig, lc.OTELExporter)
		}
	default:
		return fmt.Errorf("%w: unknown log otel exporter %q", ErrInvalidConfig, lc.OTELExporter)
	}
	return nil
}

func (lc *LoggerConfig) ParseLevel() string {
	if lc == nil {
		return "warn"
	}
	lvl := strings.ToLower(strings.TrimSpace(lc.Level))
	switch lvl {
	case "trace", "debug", "info", "warn", "error":
		return lvl
	default:
		return "warn"
	}
}

// Interface compliance helpers for logger.LoggerOptions
func (c *Config) LogLevel() slog.Level {
	switch c.Logger.ParseLevel() {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LogFormat resolves "auto" to pretty output in debug builds and JSON in
// release builds.
func (c *Config) LogFormat() string {
	if c.Logger.Format == "auto" || c.Logger.Format == "" {
		if c.Mode == types.ModeDebug {
			return "pretty"
		}
		return "json"
	}
	return c.Logger.Format
}

func (c *Config) OTELExporter() string  { return c.Logger.OTELExporter }
func (c *Config) OTELEndpoint() string  { return c.Logger.OTELEndpoint }
func (c *Config) Correlation() bool     { return c.Logger.Correlation }
func (c *Config) ModeField() types.Mode { return c.Mode }
