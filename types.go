package console

/*
Defines the core data types of the console:
  - LogLevel: integer severity, higher is more severe
  - sinkTable: per-level destinations with "nearest lower" resolution
  - enableGate: reentrant suppression counter with its own lock
  - hookFunc/lockHooks: caller supplied callbacks run around every flush
  - timeOrigin: fixed instant used for elapsed time in headers
  - Console: the central state object behind the facade.

Also defines package-wide constants and helper utilities used by the console.
*/

import (
	"bytes"
	"io"
	"sync"
	"time"
)

type LogLevel int // Message severity, any int is allowed (see LVL_* for conventions)

type OutType io.Writer // Console destinations (alias for io.Writer)

// sinkTable is a growable level-indexed slice of destinations. Nil slots are unset,
// slot 0 is always populated.
type sinkTable struct {
	outputs []OutType
}

// enableGate counts outstanding Disable() calls. Output is allowed only at zero.
type enableGate struct {
	mtx   sync.Mutex
	count int
}

// hookFunc is a callback with an opaque argument captured at registration.
type hookFunc struct {
	fn  func(arg any)
	arg any
}

// lockHooks is the pre/post flush callback pair. Unset hooks are no-ops.
type lockHooks struct {
	lock   hookFunc // called right after the flush mutex is taken
	unlock hookFunc // called right before the flush mutex is released
}

// timeOrigin remembers the console creation instant.
type timeOrigin struct {
	start time.Time
	now   func() time.Time // clock, replaced in tests
}

// Console is the central state holder. The flush engine state (buffer, pending level,
// destinations, flags and hooks) is guarded by procMtx for the whole flush; the gate
// counter has its own lock so Disable/Enable never wait for a flush.
type Console struct {
	sync struct {
		procMtx sync.Mutex   // guards everything below except gate and fallbck
		fbckMtx sync.RWMutex // guards access to fallback writer
	}
	gate      enableGate
	origin    timeOrigin
	sinks     sinkTable
	hooks     lockHooks
	fallbck   OutType       // fallback writer used to report internal errors
	msgbuf    *bytes.Buffer // text accumulated since the last flush
	outbuf    *bytes.Buffer // scratch buffer for header + text
	outlevel  LogLevel      // output threshold, LVL_DISABLED switches everything off
	level     LogLevel      // level of the next flush
	showtime  bool          // prefix messages with elapsed seconds
	showlevel bool          // prefix messages with a level letter
}

// Config is a batch of console settings for Apply. Nil fields are left unchanged.
type Config struct {
	OutputLevel *LogLevel
	ShowTime    *bool
	ShowLevel   *bool
	Outputs     map[LogLevel]OutType
	Fallback    OutType
}
