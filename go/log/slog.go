/*
Copyright 2026 The Vitess Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

var (
	logFormat string
	logLevel  string

	// structured receives every record once set. While it is nil, records
	// go to glog.
	structured atomic.Pointer[slog.Logger]

	output io.Writer = os.Stderr
	exit             = os.Exit
)

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func slogLevel(name string) (slog.Level, error) {
	if level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return level, nil
	}
	return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn or error", name)
}

var formats = map[string]func(w io.Writer, level slog.Level) slog.Handler{
	"json": func(w io.Writer, level slog.Level) slog.Handler {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{AddSource: true, Level: level})
	},
	"logfmt": func(w io.Writer, level slog.Level) slog.Handler {
		return slog.NewTextHandler(w, &slog.HandlerOptions{AddSource: true, Level: level})
	},
	"console": func(w io.Writer, level slog.Level) slog.Handler {
		return tint.NewHandler(w, &tint.Options{
			AddSource:  true,
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		})
	},
}

// slogHandler builds the handler for a --log-fmt value. Console output is
// colored only on a terminal.
func slogHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	newHandler, ok := formats[strings.ToLower(strings.TrimSpace(format))]
	if !ok {
		return nil, fmt.Errorf("invalid log-fmt %q: expected json, logfmt or console", format)
	}
	return newHandler(w, level), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// Init switches to structured logging when --log-fmt was given explicitly.
func Init(fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}
	if f := fs.Lookup("log-fmt"); f == nil || !f.Changed {
		return nil
	}
	level, err := slogLevel(logLevel)
	if err != nil {
		return err
	}
	handler, err := slogHandler(output, logFormat, level)
	if err != nil {
		return err
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	structured.Store(logger)
	return nil
}

// SetLogger routes records to logger until the returned function is called.
func SetLogger(logger *slog.Logger) func() {
	if logger == nil {
		return func() {}
	}
	prev := structured.Swap(logger)
	return func() { structured.Store(prev) }
}

// Enabled reports whether a record at level would be written. Under glog,
// debug records need -v=1.
func Enabled(level slog.Level) bool {
	if logger := structured.Load(); logger != nil {
		return logger.Enabled(context.Background(), level)
	}
	return level >= slog.LevelInfo || V(1)
}

func glogAt(level slog.Level) func(depth int, args ...any) {
	switch {
	case level >= slog.LevelError:
		return glog.ErrorDepth
	case level >= slog.LevelWarn:
		return glog.WarningDepth
	default:
		return glog.InfoDepth
	}
}

// emit writes one record attributed to the caller depth frames above the
// function that called emit.
func emit(level slog.Level, depth int, msg string, args ...any) {
	logger := structured.Load()
	if logger == nil {
		if Enabled(level) {
			glogAt(level)(depth+2, append([]any{msg}, args...)...)
		}
		return
	}

	ctx := context.Background()
	if !logger.Enabled(ctx, level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(depth+3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = logger.Handler().Handle(ctx, r)
}

// InfoS logs msg with key/value pairs at the Info level.
func InfoS(msg string, args ...any) { emit(slog.LevelInfo, 0, msg, args...) }

// WarnS logs msg with key/value pairs at the Warn level.
func WarnS(msg string, args ...any) { emit(slog.LevelWarn, 0, msg, args...) }

// DebugS logs msg with key/value pairs at the Debug level.
func DebugS(msg string, args ...any) { emit(slog.LevelDebug, 0, msg, args...) }

// ErrorS logs msg with key/value pairs at the Error level.
func ErrorS(msg string, args ...any) { emit(slog.LevelError, 0, msg, args...) }
