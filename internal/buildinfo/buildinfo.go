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

// Package buildinfo exposes the values fixed when the binary was built: the
// build tags it was compiled with and the strings set through -ldflags -X.
//
//	go build -tags debug ./cmd/...
//	go build -tags ndebug -ldflags "-X github.com/xpack-dev-tools/test-next-xpack/internal/buildinfo.HelloWorldMessage=Hi" ./cmd/...
package buildinfo

import (
	"strconv"

	"github.com/xpack-dev-tools/test-next-xpack/internal/assert"
	"github.com/xpack-dev-tools/test-next-xpack/internal/types"
)

// Link-time settings. Empty values fall back to the config defaults.
var (
	HelloWorldMessage = "Hello World!"
	Version           = ""
	LogLevel          = ""
	LogFormat         = ""
	LogOTELExporter   = ""
	LogOTELEndpoint   = ""
	LogCorrelation    = ""
)

// Debug reports whether the binary was built with the debug tag.
func Debug() bool {
	return debugEnabled
}

// AssertsDisabled reports whether assertions were compiled out (ndebug tag).
func AssertsDisabled() bool {
	return !assert.Enabled
}

// Mode returns the build mode selected by the debug tag.
func Mode() types.Mode {
	if debugEnabled {
		return types.ModeDebug
	}
	return types.ModeRelease
}

// Flags returns the compile-time switches of this binary.
func Flags() types.BuildFlags {
	return types.BuildFlags{
		Mode:            Mode(),
		AssertsDisabled: AssertsDisabled(),
	}
}

// Environment returns the build-time key/value set the config loader reads in
// place of the process environment.
func Environment() map[string]string {
	environ := map[string]string{
		"BUILD_MODE":   Mode().String(),
		"BUILD_NDEBUG": strconv.FormatBool(AssertsDisabled()),
	}

	set := func(key, value string) {
		if value != "" {
			environ[key] = value
		}
	}
	set("HELLO_WORLD_MESSAGE", HelloWorldMessage)
	set("APP_VERSION", Version)
	set("LOG_LEVEL", LogLevel)
	set("LOG_FORMAT", LogFormat)
	set("LOG_OTEL_EXPORTER", LogOTELExporter)
	set("LOG_OTEL_ENDPOINT", LogOTELEndpoint)
	set("LOG_CORRELATION", LogCorrelation)

	return environ
}
