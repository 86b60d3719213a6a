// Copyright 2026 The ImmuxDB Authors
// This file is part of ImmuxDB.
//
// ImmuxDB is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ImmuxDB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ImmuxDB. If not, see <http://www.gnu.org/licenses/>.

// Package logging wraps zap behind the key-value call shape used
// throughout this codebase's teacher lineage: Info(msg, "key", value, ...)
// rather than zap's own With()/Sugar() conventions, so call sites read the
// same regardless of which logger backs them.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the handle every package in this module logs through.
type Logger struct {
	z *zap.SugaredLogger
}

var root = New("info")

// Root returns the process-wide default logger.
func Root() *Logger {
	return root
}

// New builds a Logger writing leveled, console-formatted output to stderr.
// level is one of "debug", "info", "warn", "error".
func New(level string) *Logger {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(os.Stderr), zapLevel)
	return &Logger{z: zap.New(core).Sugar()}
}

// Named returns a child logger tagging every entry with name, e.g. "vkv"
// or "executor".
func (l *Logger) Named(name string) *Logger {
	return &Logger{z: l.z.Named(name)}
}

func (l *Logger) Debug(msg string, kv ...interface{}) {
	l.z.Debugw(msg, kv...)
}

func (l *Logger) Info(msg string, kv ...interface{}) {
	l.z.Infow(msg, kv...)
}

func (l *Logger) Warn(msg string, kv ...interface{}) {
	l.z.Warnw(msg, kv...)
}

func (l *Logger) Error(msg string, kv ...interface{}) {
	l.z.Errorw(msg, kv...)
}

// Sync flushes any buffered log entries, deferred by callers at process
// shutdown.
func (l *Logger) Sync() error {
	return l.z.Sync()
}
