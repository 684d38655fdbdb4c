package console

import "sync"

// Process-wide console. Created on first use so it works from package init code,
// and never released: diagnostics written during late shutdown still find it.
var (
	defaultConsole *Console
	defaultOnce    sync.Once
)

// Returns the process-wide console, creating it with New() defaults on first call.
func Default() *Console {
	defaultOnce.Do(func() {
		defaultConsole = New()
	})
	return defaultConsole
}

// Sets the level of the next message of the process-wide console.
func Lvl(level LogLevel) *Console {
	return Default().Lvl(level)
}

// Writes a complete message to the process-wide console (see Console.Log).
func Log(level LogLevel, s string) {
	Default().Log(level, s)
}

// Disables output of the process-wide console (see Console.Disable).
func Disable() {
	Default().Disable()
}

// Enables output of the process-wide console (see Console.Enable).
func Enable() {
	Default().Enable()
}

// Best-effort teardown of the process-wide console: output is switched off and any
// text buffered but not flushed yet is dropped. Later writes are accepted and
// silently discarded until the output level is raised again.
func Shutdown() {
	Default().Shutdown()
}

// Switches output off and drops any buffered text (see the package-level Shutdown).
func (c *Console) Shutdown() {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.outlevel = LVL_DISABLED
	c.flushLocked()
}
