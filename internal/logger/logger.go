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

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	color "github.com/fatih/color"
	"github.com/gofrs/uuid/v5"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/xpack-dev-tools/test-next-xpack/internal/types"
)

type Logger struct {
	Slogger *slog.Logger
	*sdklog.LoggerProvider
}

// LoggerOptions is satisfied by *config.Config.
type LoggerOptions interface {
	ServiceName() string
	GetVersion() string
	ModeField() types.Mode
	LogLevel() slog.Level
	LogFormat() string
	OTELExporter() string
	OTELEndpoint() string
	Correlation() bool
}

// NewLogger builds the process logger writing to out. The OTel provider is
// only created when an exporter is configured.
func NewLogger(ctx context.Context, opts LoggerOptions, out io.Writer) (*Logger, error) {
	if out == nil {
		return nil, fmt.Errorf("no log writer")
	}
	level := opts.LogLevel()
	handlers := make([]slog.Handler, 0, 2)

	switch opts.LogFormat() {
	case "pretty":
		handlers = append(handlers, NewDebugHandler(out, level))
	case "text":
		handlers = append(handlers, slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	default:
		handlers = append(handlers, slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}

	var loggerFactory *sdklog.LoggerProvider
	if exp := opts.OTELExporter(); exp != "" && exp != "none" {
		exporter, err := newExporter(ctx, exp, opts.OTELEndpoint())
		if err != nil {
			return nil, err
		}
		res, err := resource.Merge(
			resource.Default(),
			resource.NewSchemaless(
				semconv.ServiceName(opts.ServiceName()),
				semconv.ServiceVersion(opts.GetVersion()),
			),
		)
		if err != nil {
			return nil, err
		}

		loggerFactory = sdklog.NewLoggerProvider(
			sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter)),
			sdklog.WithResource(res),
		)
		handlers = append(handlers, otelslog.NewHandler(
			opts.ServiceName(), otelslog.WithLoggerProvider(loggerFactory)))
	}

	slogger := slog.New(&MultiHandler{handlers})
	slogger = slogger.With("service", opts.ServiceName(), "mode", opts.ModeField().String())
	if opts.Correlation() {
		id, err := uuid.NewV4()
		if err != nil {
			return nil, fmt.Errorf("generate run id: %w", err)
		}
		slogger = slogger.With("run_id", id.String())
	}

	return &Logger{
		Slogger:        slogger,
		LoggerProvider: loggerFactory,
	}, nil
}

func newExporter(ctx context.Context, kind, endpoint string) (sdklog.Exporter, error) {
	switch kind {
	case "otlp-http":
		return otlploghttp.New(ctx,
			otlploghttp.WithEndpoint(endpoint),
			otlploghttp.WithInsecure(),
		)
	case "otlp-grpc":
		return otlploggrpc.New(ctx,
			otlploggrpc.WithEndpoint(endpoint),
			otlploggrpc.WithInsecure(),
		)
	default:
		return nil, fmt.Errorf("unknown otel exporter %q", kind)
	}
}

// Shutdown flushes and stops the OTel provider, if one was created.
func (l *Logger) Shutdown(ctx context.Context) error {
	if l == nil || l.LoggerProvider == nil {
		return nil
	}
	return l.LoggerProvider.Shutdown(ctx)
}

type (
	DebugHandler struct {
		out   io.Writer
		level slog.Leveler
		attrs []slog.Attr
		mut   *sync.Mutex
	}

	MultiHandler struct {
		handlers []slog.Handler
	}
)

var _ slog.Handler = (*DebugHandler)(nil)

func NewDebugHandler(out io.Writer, level slog.Leveler) *DebugHandler {
	return &DebugHandler{
		out:   out,
		level: level,
		mut:   &sync.Mutex{},
	}
}

// Handle implements slog.Handler
func (h *DebugHandler) Handle(_ context.Context, r slog.Record) error {
	timeStr := color.New(color.FgHiBlack).Sprint(r.Time.Format("15:04:05"))
	level := levelColor(r.Level)
	attrs := append([]slog.Attr{}, h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	logEntry := fmt.Sprintf("%s %s %s%s\n",
		timeStr,
		level,
		r.Message,
		formatAttributes(attrs),
	)

	h.mut.Lock()
	defer h.mut.Unlock()
	_, err := io.WriteString(h.out, logEntry)
	return err
}

// WithAttrs implements slog.Handler
func (h *DebugHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &DebugHandler{
		out:   h.out,
		level: h.level,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
		mut:   h.mut, // shared so sibling handlers serialise writes to out
	}
}

// WithGroup implements slog.Handler
func (h *DebugHandler) WithGroup(name string) slog.Handler {
	return h
}

// Enabled implements slog.Handler
func (h *DebugHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Enabled implements slog.Handler
func (m *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range m.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle implements slog.Handler
func (m *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []string
	for _, h := range m.handlers {
		if !h.Enabled(ctx, record.Level) {
			continue
		}
		if err := h.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("slog handlers failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// WithAttrs implements slog.Handler
func (m *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: newHandlers}
}

// WithGroup implements slog.Handler
func (m *MultiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(m.handlers))
	for i, h := range m.handlers {
		newHandlers[i] = h.WithGroup(name)
	}
	return &MultiHandler{handlers: newHandlers}
}

// levelColor returns a colored string representation of the log level.
func levelColor(level slog.Level) string {
	var bg, fg color.Attribute
	switch {
	case level < slog.LevelDebug:
		bg, fg = color.BgCyan, color.FgBlack
	case level < slog.LevelInfo:
		bg, fg = color.BgMagenta, color.FgWhite
	case level < slog.LevelWarn:
		bg, fg = color.BgBlue, color.FgWhite
	case level < slog.LevelError:
		bg, fg = color.BgYellow, color.FgBlack
	default:
		bg, fg = color.BgRed, color.FgWhite
	}

	return color.New(bg, fg, color.Bold).Sprint(" " + strings.ToUpper(level.String()) + " ")
}

// formatAttributes formats a slice of attributes as a space-separated string.
func formatAttributes(attrs []slog.Attr) string {
	if len(attrs) == 0 {
		return ""
	}

	var parts []string
	for _, attr := range attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", attr.Key, formatAttrValue(attr.Value)))
	}

	return " " + strings.Join(parts, " ")
}

// formatAttrValue formats a slog.Value based on its kind.
func formatAttrValue(v slog.Value) string {
	v = v.Resolve()

	switch v.Kind() {
	case slog.KindString:
		return fmt.Sprintf("%q", v.String())
	case slog.KindInt64:
		return fmt.Sprintf("%d", v.Int64())
	case slog.KindUint64:
		return fmt.Sprintf("%d", v.Uint64())
	case slog.KindFloat64:
		return fmt.Sprintf("%f", v.Float64())
	case slog.KindBool:
		return fmt.Sprintf("%t", v.Bool())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	case slog.KindAny:
		if m, ok := v.Any().(map[string]string); ok {
			return formatStringMap(m)
		}
		return fmt.Sprintf("%v", v.Any())
	default:
		return fmt.Sprintf("%v", v.Any())
	}
}

// formatStringMap renders m as space-separated key:value pairs in key order.
func formatStringMap(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(m))
	for _, k := range keys {
		parts = append(parts, k+":"+m[k])
	}
	return strings.Join(parts, " ")
}
