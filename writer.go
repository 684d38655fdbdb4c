package console

/*********************************************************************************
io.Writer interface implementation

The Console implements io.Writer and io.StringWriter so it can be used with
fmt.Fprintf and other formatting helpers. The semantics are:
  - Lvl(level) sets the level of the next flushed message.
  - Write(p) only appends to the message buffer, it never fails.
  - Endl() ends the message with a newline and flushes it.

This allows patterns like:

	fmt.Fprintf(c.Lvl(LVL_WARNING), "disk low: %d%%", percent)
	c.Endl()

Several goroutines writing fragments to the same console share one buffer, use
Log()/LogBytes() when a message must not be mixed with text from other goroutines.
*/

import "fmt"

// Sets the level of the next flushed message and returns the same console for
// convenient chaining. The level is reset to LVL_BASE after every flush.
func (c *Console) Lvl(level LogLevel) *Console {
	c.setLevel(level)
	return c
}

// Write implements io.Writer. The bytes are appended to the message buffer and
// n is always len(p).
func (c *Console) Write(p []byte) (n int, err error) {
	if len(p) > 0 {
		c.appendBytes(p)
	}
	return len(p), nil
}

// WriteString implements io.StringWriter.
func (c *Console) WriteString(s string) (n int, err error) {
	if len(s) > 0 {
		c.appendString(s)
	}
	return len(s), nil
}

// Appends the default formatting of a to the message buffer (like fmt.Sprint).
func (c *Console) Print(a ...any) *Console {
	c.appendString(fmt.Sprint(a...))
	return c
}

// Appends formatted text to the message buffer (like fmt.Sprintf).
func (c *Console) Printf(format string, a ...any) *Console {
	c.appendString(fmt.Sprintf(format, a...))
	return c
}

// Ends the message: appends a newline and flushes.
func (c *Console) Endl() {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.msgbuf.WriteByte('\n')
	c.flushLocked()
}
