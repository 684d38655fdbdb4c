package console

/*
Flush engine. Text is collected in msgbuf by Write/WriteString/Print* and sent on
flush as a single write to the destination resolved for the pending level:

	lock -> lock hook -> elapsed time -> filter -> [header + text to destination]
	     -> clear buffer, reset level -> unlock hook -> unlock

The whole sequence runs under procMtx, including the hooks and the destination
write. Nothing escapes a flush: write errors and panics from destinations or hooks
go to the fallback writer.
*/

import (
	"bytes"
	"errors"
	"strconv"
	"time"
)

// Appends data to the message buffer. Nothing is written before a flush.
func (c *Console) appendBytes(data []byte) {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.msgbuf.Write(data)
}

func (c *Console) appendString(s string) {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.msgbuf.WriteString(s)
}

// Sets the level of the next flushed message.
func (c *Console) setLevel(level LogLevel) {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.level = level
}

// Sends the buffered text to the destination of the pending level if it passes the
// output level and the gate is open. The buffer is cleared either way.
func (c *Console) Flush() {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.flushLocked()
}

// Writes a complete message at the given level atomically: no text written by other
// goroutines can get into it. The message is flushed as is, no newline is added.
func (c *Console) LogBytes(level LogLevel, data []byte) {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.msgbuf.Write(data)
	c.level = level
	c.flushLocked()
}

// Same as LogBytes() for a string.
func (c *Console) Log(level LogLevel, s string) {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.msgbuf.WriteString(s)
	c.level = level
	c.flushLocked()
}

// flushLocked must be called with procMtx held.
func (c *Console) flushLocked() {
	c.runHook(c.hooks.lock)
	elapsed := c.origin.elapsed()
	if c.mayEmit(c.level) {
		c.emit(c.level, elapsed)
	}
	c.msgbuf.Reset()
	c.level = LVL_BASE
	c.runHook(c.hooks.unlock)
}

// A message is emitted only if output is enabled (output level >= 0), the message
// level reaches the output level and no Disable() is pending.
func (c *Console) mayEmit(level LogLevel) bool {
	return c.outlevel >= 0 && level >= c.outlevel && !c.gate.closed()
}

// Builds header + text and writes them to the level destination with one Write.
func (c *Console) emit(level LogLevel, elapsed time.Duration) {
	output := c.sinks.resolve(level)
	if output == nil {
		return
	}
	buildTextMessage(c.outbuf, c.msgbuf.Bytes(), level, elapsed, c.showlevel, c.showtime)
	if err := c.logTextData(output, c.outbuf.Bytes()); err != nil {
		c.handleLogWriteError(err.Error())
	}
}

// logTextData writes data to output and converts any write error, short write or
// panic into an error value.
func (c *Console) logTextData(output OutType, data []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.New(_ERROR_MESSAGE_WRITE_PANIC + panicDesc(r))
		}
	}()
	n, e := output.Write(data)
	if e == nil && n < len(data) {
		e = errors.New(_ERROR_MESSAGE_SHORT_WRITE)
	}
	if e != nil {
		err = errors.New(_ERROR_MESSAGE_WRITE_FAILED + " (" + strconv.Itoa(n) + " bytes written): " + e.Error())
	}
	return
}

// handleLogWriteError writes a one-line error message to the fallback writer.
// Panics of the fallback itself are dropped, there is nowhere left to report them.
func (c *Console) handleLogWriteError(errormsg string) {
	c.sync.fbckMtx.RLock()
	defer func() {
		recover()
		c.sync.fbckMtx.RUnlock()
	}()
	if c.fallbck != nil {
		c.fallbck.Write([]byte(errormsg + "\n"))
	}
}

// buildTextMessage resets outBuffer and fills it with the optional header followed
// by the raw text:
//
//	no flags:    text
//	level only:  [W] text
//	time only:   [ 12.34] text
//	both:        [W 12.34] text
//
// The time token is a space and the elapsed seconds with two decimals, zero-padded
// to six columns in total.
func buildTextMessage(outBuffer *bytes.Buffer, text []byte, level LogLevel, elapsed time.Duration, showlevel, showtime bool) *bytes.Buffer {
	outBuffer.Reset()
	if showlevel || showtime {
		outBuffer.WriteByte(_HEADER_OPEN)
		if showlevel {
			outBuffer.WriteByte(levelTag(level))
		}
		if showtime {
			outBuffer.WriteByte(_HEADER_SEP)
			outBuffer.Write(formatSeconds(elapsed))
		}
		outBuffer.WriteString(_HEADER_CLOSE)
	}
	outBuffer.Write(text)
	return outBuffer
}

// Fixed-point seconds with _TIME_DECIMALS digits, left-padded with zeros to _TIME_WIDTH.
func formatSeconds(d time.Duration) []byte {
	var digits [24]byte
	num := strconv.AppendFloat(digits[:0], d.Seconds(), 'f', _TIME_DECIMALS, 64)
	if pad := _TIME_WIDTH - len(num); pad > 0 {
		out := make([]byte, 0, _TIME_WIDTH)
		out = append(out, bytes.Repeat([]byte{'0'}, pad)...)
		return append(out, num...)
	}
	return append([]byte(nil), num...)
}
