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

// Package log routes the collation engine's diagnostics either through glog
// or, once --log-fmt is given, through a structured slog handler.
package log

import (
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"vitess.io/collate/go/utils"
)

// Flush ensures any pending I/O is written.
var Flush = glog.Flush

// Level is the glog verbosity level.
type Level = glog.Level

// V reports whether glog verbosity is at least level.
func V(level Level) bool {
	return bool(glog.V(level))
}

// RegisterFlags installs log flags on the given FlagSet.
func RegisterFlags(fs *pflag.FlagSet) {
	flagVal := logRotateMaxSize{
		val: strconv.FormatUint(atomic.LoadUint64(&glog.MaxSize), 10),
	}
	utils.SetFlagVar(fs, &flagVal, "log-rotate-max-size", "size in bytes at which logs are rotated (glog.MaxSize)")

	utils.SetFlagStringVar(fs, &logFormat, "log-fmt", "console", "format for structured logging output: json, logfmt or console")
	utils.SetFlagStringVar(fs, &logLevel, "log-level", "info", "minimum structured logging level: info, warn, debug, or error")
}

// Infof logs a formatted message at the Info level.
func Infof(format string, args ...any) {
	printf(slog.LevelInfo, format, args...)
}

// Warningf logs a formatted message at the Warn level.
func Warningf(format string, args ...any) {
	printf(slog.LevelWarn, format, args...)
}

// Errorf logs a formatted message at the Error level.
func Errorf(format string, args ...any) {
	printf(slog.LevelError, format, args...)
}

// Fatalf logs a formatted message and terminates the process.
func Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if structured.Load() == nil {
		glog.FatalDepth(1, msg)
		return
	}
	emit(slog.LevelError, 0, msg)
	exit(1)
}

func printf(level slog.Level, format string, args ...any) {
	emit(level, 1, fmt.Sprintf(format, args...))
}

// logRotateMaxSize implements pflag.Value and is used to
// try and provide thread-safe access to glog.MaxSize.
type logRotateMaxSize struct {
	val string
}

func (lrms *logRotateMaxSize) Set(s string) error {
	maxSize, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	atomic.StoreUint64(&glog.MaxSize, maxSize)
	lrms.val = s
	return nil
}

func (lrms *logRotateMaxSize) String() string {
	return lrms.val
}

func (lrms *logRotateMaxSize) Type() string {
	return "uint64"
}
