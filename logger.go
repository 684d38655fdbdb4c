// A leveled, thread-safe debug console. Text written to the console is collected
// in a buffer and sent as one message to a level-selected destination on flush,
// optionally prefixed with a level letter and the time since the console was created.
//
// Example usage:
//
//	c := console.New()
//	c.SetOutputLevel(2)
//	c.Lvl(console.LVL_WARNING).Print("disk low: ", 93, "%").Endl()
//	fmt.Fprintf(c.Lvl(console.LVL_DEBUG), "step %d", 7)
//	c.Endl()
//
// Output can be muted from any goroutine with Disable()/Enable() pairs, which nest.
package console

import (
	"bytes"
	"io"
	"os"
	"time"
)

// Creates a console with default settings: os.Stderr as destination for all levels and
// as fallback, output level 3 (LVL_INFO), level letter shown, time hidden.
func New() *Console {
	return newWithClock(time.Now)
}

func newWithClock(now func() time.Time) *Console {
	c := new(Console)
	c.origin = newTimeOrigin(now)
	c.msgbuf = bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
	c.outbuf = bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
	c.sinks.register(0, os.Stderr)
	c.outlevel = DEFAULT_OUTPUT_LEVEL
	c.level = LVL_BASE
	c.showtime = DEFAULT_SHOW_TIME
	c.showlevel = DEFAULT_SHOW_LEVEL
	c.SetFallback(os.Stderr)
	return c
}

// Sets the minimal level a message needs to be written. LVL_DISABLED (or any
// negative value) switches all output off.
func (c *Console) SetOutputLevel(level LogLevel) *Console {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.outlevel = level
	return c
}

// Returns the minimal level a message needs to be written.
func (c *Console) OutputLevel() LogLevel {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	return c.outlevel
}

// Tells the console whether time passed since its creation is written in headers.
func (c *Console) SetShowTime(show bool) *Console {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.showtime = show
	return c
}

func (c *Console) ShowTime() bool {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	return c.showtime
}

// Tells the console whether the level letter (I, W or E) is written in headers.
func (c *Console) SetShowLevel(show bool) *Console {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.showlevel = show
	return c
}

func (c *Console) ShowLevel() bool {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	return c.showlevel
}

// Sets the destination for messages of the given level and above, up to the next
// level with its own destination. Level 0 is the default for everything.
//
// Nil clears the destination of a level (not of level 0), negative levels and levels
// above 4096 are ignored. The table takes one slot per level up to the
// highest registered one.
func (c *Console) SetOutput(w OutType, level LogLevel) *Console {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.sinks.register(level, w)
	return c
}

// Returns the destination messages of the given level are written to.
func (c *Console) Output(level LogLevel) OutType {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	return c.sinks.resolve(level)
}

// Sets the fallback output used to report internal errors, io.Discard is used
// instead of nil to silently drop fallback messages.
func (c *Console) SetFallback(f OutType) *Console {
	c.sync.fbckMtx.Lock()
	defer c.sync.fbckMtx.Unlock()
	if f != nil {
		c.fallbck = f
	} else {
		c.fallbck = io.Discard
	}
	return c
}

// Returns the time the console was created (the origin of header times).
func (c *Console) StartTime() time.Time {
	return c.origin.start
}

// Applies all non-nil settings of cfg.
func (c *Console) Apply(cfg Config) *Console {
	if cfg.OutputLevel != nil {
		c.SetOutputLevel(*cfg.OutputLevel)
	}
	if cfg.ShowTime != nil {
		c.SetShowTime(*cfg.ShowTime)
	}
	if cfg.ShowLevel != nil {
		c.SetShowLevel(*cfg.ShowLevel)
	}
	for level, w := range cfg.Outputs {
		c.SetOutput(w, level)
	}
	if cfg.Fallback != nil {
		c.SetFallback(cfg.Fallback)
	}
	return c
}

/////////////////////////////////////////////////////////////////////////////////////////

// Disables all console output until a matching Enable().
//
// Disable() and Enable() work like a thread-safe push and pop, so several goroutines can
// define their own blocks with output disabled. Calls nest.
func (c *Console) Disable() {
	c.gate.disable()
}

// Enables console output again, once every Disable() got its Enable(). Extra calls are
// ignored.
func (c *Console) Enable() {
	c.gate.enable()
}

// True while at least one Disable() is not matched by Enable().
func (c *Console) IsDisabled() bool {
	return c.gate.closed()
}
