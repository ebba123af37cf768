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
	"fmt"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/xpack-dev-tools/test-next-xpack/internal/assert"
	"github.com/xpack-dev-tools/test-next-xpack/internal/buildinfo"
	"github.com/xpack-dev-tools/test-next-xpack/internal/types"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultService = "test-next"
	DefaultVersion = "v0.1.0"
	DefaultMessage = "Hello World!"
)

// Config holds the complete application configuration
type Config struct {
	Service   string       `json:"service_name" env:"APP_NAME"            envDefault:"test-next"`
	Version   string       `json:"version"      env:"APP_VERSION"         envDefault:"v0.1.0"`
	Mode      types.Mode   `json:"mode"         env:"BUILD_MODE"          envDefault:"release"`
	NoAsserts bool         `json:"no_asserts"   env:"BUILD_NDEBUG"        envDefault:"false"`
	Message   string       `json:"message"      env:"HELLO_WORLD_MESSAGE" envDefault:"Hello World!"`
	Logger    LoggerConfig `json:"logger"       envPrefix:"LOG_"`
}

// Load resolves the configuration baked into the binary at build time. The
// process environment is not consulted.
func Load() (*Config, error) {
	return LoadFrom(buildinfo.Environment())
}

// LoadFrom resolves the configuration from an explicit key/value set.
func LoadFrom(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if cfg.Logger.Level == "" {
		cfg.Logger.Level = defaultLevel(cfg.Mode)
	}
	return &cfg, nil
}

// Default returns the configuration a binary falls back to when its
// link-time settings cannot be parsed.
func Default(flags types.BuildFlags, message string) *Config {
	if message == "" {
		message = DefaultMessage
	}
	if flags.Mode != types.ModeDebug {
		flags.Mode = types.ModeRelease
	}
	cfg := &Config{
		Service:   DefaultService,
		Version:   DefaultVersion,
		Mode:      flags.Mode,
		NoAsserts: flags.AssertsDisabled,
		Message:   message,
		Logger:    DefaultLoggerConfig(flags.Mode),
	}
	assert.NoError(cfg.Validate())
	return cfg
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.ValidateProgram(); err != nil {
		return err
	}
	return c.Logger.Validate()
}

// ValidateProgram checks the fields the programs print from. Logger settings
// are checked separately so a bad one never suppresses program output.
func (c *Config) ValidateProgram() error {
	if strings.TrimSpace(c.Service) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.Version) == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidConfig)
	}
	if c.Mode != types.ModeDebug && c.Mode != types.ModeRelease {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidConfig)
	}
	return nil
}

// Build returns the compile-time switches carried by the configuration.
func (c *Config) Build() types.BuildFlags {
	return types.BuildFlags{
		Mode:            c.Mode,
		AssertsDisabled: c.NoAsserts,
	}
}

func (c *Config) ServiceName() string {
	return c.Service
}

func (c *Config) GetVersion() string {
	return c.Version
}
