// Destinations for the console that bridge its text into host-application loggers.
// Every console flush arrives as a single Write call, so each adapter turns one
// Write into one entry of the host logger, with the trailing newline trimmed.
package sinks

import (
	"bytes"
	"io"
	"sync"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Discard accepts and drops everything.
var Discard io.Writer = io.Discard

// Returns the message text without trailing line breaks.
func trimText(p []byte) string {
	return string(bytes.TrimRight(p, "\r\n"))
}

/////////////////////////////////////////////////////////////////////////////////////////

type zapSink struct {
	logger *zap.Logger
	level  zapcore.Level
}

// Zap writes every message as a zap entry of the given level. Levels above error
// (dpanic, panic, fatal) are lowered to error: a diagnostic must never end the process.
func Zap(l *zap.Logger, level zapcore.Level) io.Writer {
	if l == nil {
		l = zap.NewNop()
	}
	if level > zapcore.ErrorLevel {
		level = zapcore.ErrorLevel
	}
	return &zapSink{logger: l, level: level}
}

func (s *zapSink) Write(p []byte) (int, error) {
	if ce := s.logger.Check(s.level, trimText(p)); ce != nil {
		ce.Write()
	}
	return len(p), nil
}

/////////////////////////////////////////////////////////////////////////////////////////

type zerologSink struct {
	logger zerolog.Logger
	level  zerolog.Level
}

// Zerolog writes every message as a zerolog event of the given level.
func Zerolog(l zerolog.Logger, level zerolog.Level) io.Writer {
	return &zerologSink{logger: l, level: level}
}

func (s *zerologSink) Write(p []byte) (int, error) {
	s.logger.WithLevel(s.level).Msg(trimText(p))
	return len(p), nil
}

/////////////////////////////////////////////////////////////////////////////////////////

type logrusSink struct {
	logger logrus.FieldLogger
	level  logrus.Level
}

// Logrus writes every message as a logrus entry of the given level. Fatal and panic
// levels are lowered to error: a diagnostic must never end the process. Trace is
// logged as debug when l does not support it.
func Logrus(l logrus.FieldLogger, level logrus.Level) io.Writer {
	if l == nil {
		l = logrus.StandardLogger()
	}
	if level < logrus.ErrorLevel {
		level = logrus.ErrorLevel
	}
	return &logrusSink{logger: l, level: level}
}

func (s *logrusSink) Write(p []byte) (int, error) {
	msg := trimText(p)
	switch s.level {
	case logrus.ErrorLevel:
		s.logger.Error(msg)
	case logrus.WarnLevel:
		s.logger.Warn(msg)
	case logrus.InfoLevel:
		s.logger.Info(msg)
	case logrus.TraceLevel:
		if tl, ok := s.logger.(logrus.Ext1FieldLogger); ok {
			tl.Trace(msg)
		} else {
			s.logger.Debug(msg)
		}
	default:
		s.logger.Debug(msg)
	}
	return len(p), nil
}

/////////////////////////////////////////////////////////////////////////////////////////

// LockedWriter serializes writes to a shared stream. Lock/Unlock are exported so the
// same mutex can be installed as console lock hooks (Console.SetLocker), which keeps
// console flushes and other users of the stream from interleaving.
type LockedWriter struct {
	mtx sync.Mutex
	out io.Writer
}

// Locked wraps w (nil becomes io.Discard).
func Locked(w io.Writer) *LockedWriter {
	if w == nil {
		w = io.Discard
	}
	return &LockedWriter{out: w}
}

func (lw *LockedWriter) Lock()   { lw.mtx.Lock() }
func (lw *LockedWriter) Unlock() { lw.mtx.Unlock() }

// Write writes p to the wrapped writer without locking; callers hold the lock through
// Lock() (console hooks do) or use WriteLocked.
func (lw *LockedWriter) Write(p []byte) (int, error) {
	return lw.out.Write(p)
}

// WriteLocked takes the lock for a single write, for users outside the console.
func (lw *LockedWriter) WriteLocked(p []byte) (int, error) {
	lw.mtx.Lock()
	defer lw.mtx.Unlock()
	return lw.out.Write(p)
}
