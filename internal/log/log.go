// Copyright 2026 The Ryzen SMU Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package log wraps logrus behind a package-level logger so commands share
// one configuration point. The smu library itself never logs; only the
// tooling built on top of it does.
package log

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})
	return l
}

// SetLevel sets the logging level by name, case-insensitively. Unknown
// names leave the current level unchanged.
func SetLevel(level string) {
	parsed, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return
	}
	logger.SetLevel(parsed)
}

// GetLevel returns the current logging level.
func GetLevel() logrus.Level {
	return logger.GetLevel()
}

// SetOutput redirects log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	if w == nil {
		return
	}
	logger.SetOutput(w)
}

// AddHook registers a logrus hook on the shared logger.
func AddHook(hook logrus.Hook) {
	logger.AddHook(hook)
}

// WithError adds err as a field to a new entry.
func WithError(err error) *logrus.Entry {
	return logger.WithError(err)
}

// WithField adds a single field to a new entry.
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}

func Trace(args ...any) { logger.Trace(args...) }
func Debug(args ...any) { logger.Debug(args...) }
func Info(args ...any)  { logger.Info(args...) }
func Warn(args ...any)  { logger.Warn(args...) }
func Error(args ...any) { logger.Error(args...) }
func Panic(args ...any) { logger.Panic(args...) }
func Fatal(args ...any) { logger.Fatal(args...) }

func Tracef(format string, args ...any) { logger.Tracef(format, args...) }
func Debugf(format string, args ...any) { logger.Debugf(format, args...) }
func Infof(format string, args ...any)  { logger.Infof(format, args...) }
func Warnf(format string, args ...any)  { logger.Warnf(format, args...) }
func Errorf(format string, args ...any) { logger.Errorf(format, args...) }
func Panicf(format string, args ...any) { logger.Panicf(format, args...) }
func Fatalf(format string, args ...any) { logger.Fatalf(format, args...) }
