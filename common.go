package console

import (
	"errors"
	"strconv"
	"strings"
)

const (
	// Conventional levels. Any other int is a valid level too.
	LVL_DISABLED LogLevel = -1 // threshold value that switches all output off
	LVL_BASE     LogLevel = 0  // pending level after every flush
	LVL_DEBUG    LogLevel = 1
	LVL_INFO     LogLevel = 3
	LVL_WARNING  LogLevel = 4
	LVL_ERROR    LogLevel = 5
)

const (
	// Default values used by New()
	DEFAULT_OUTPUT_LEVEL = LVL_INFO
	DEFAULT_SHOW_TIME    = false
	DEFAULT_SHOW_LEVEL   = true
	DEFAULT_OUT_BUFF     = 256 // initial capacity of message buffers
)

// Highest level that can get its own destination.
const _MAX_OUTPUT_SLOT LogLevel = 1 << 12

const (
	// Header pieces
	_HEADER_OPEN   = '['
	_HEADER_CLOSE  = "] "
	_HEADER_SEP    = ' '
	_TAG_ERROR     = 'E'
	_TAG_WARNING   = 'W'
	_TAG_INFO      = 'I'
	_TIME_DECIMALS = 2
	_TIME_WIDTH    = 5 // digits column after the separator, 6 with it
)

const (
	// Error messages reported to the fallback writer (used for testing).
	_ERROR_MESSAGE_WRITE_FAILED = "console write failed"
	_ERROR_MESSAGE_WRITE_PANIC  = "panic writing console message"
	_ERROR_MESSAGE_HOOK_PANIC   = "panic in console lock hook"
	_ERROR_MESSAGE_SHORT_WRITE  = "short write"
	_ERROR_UNKNOWN_PANIC_TEXT   = "[no panic description]"
)

// Single letter level tag used in headers.
func levelTag(level LogLevel) byte {
	switch {
	case level >= LVL_ERROR:
		return _TAG_ERROR
	case level >= LVL_WARNING:
		return _TAG_WARNING
	default:
		return _TAG_INFO
	}
}

// ParseLevel converts a level name or a decimal number into a LogLevel.
// Accepts debug, info, warning (warn), error and disabled (off), case-insensitive.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LVL_DEBUG, nil
	case "info":
		return LVL_INFO, nil
	case "warning", "warn":
		return LVL_WARNING, nil
	case "error":
		return LVL_ERROR, nil
	case "disabled", "off":
		return LVL_DISABLED, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return LVL_DISABLED, errors.New("unknown log level `" + s + "`")
	}
	if n < int(LVL_DISABLED) {
		n = int(LVL_DISABLED)
	}
	return LogLevel(n), nil
}

// Level name for display purposes only; headers use levelTag.
func (level LogLevel) String() string {
	switch level {
	case LVL_DISABLED:
		return "DISABLED"
	case LVL_DEBUG:
		return "DEBUG"
	case LVL_INFO:
		return "INFO"
	case LVL_WARNING:
		return "WARNING"
	case LVL_ERROR:
		return "ERROR"
	}
	return "LEVEL(" + strconv.Itoa(int(level)) + ")"
}

// Converts a panic value into a compact readable string (used when
// translating panics into fallback messages)
func panicDesc(panic any) (errtext string) {
	switch v := panic.(type) {
	case string:
		errtext = ": `" + v + "`"
	case error:
		errtext = ": (error) `" + v.Error() + "`"
	default:
		errtext = " " + _ERROR_UNKNOWN_PANIC_TEXT
	}
	return errtext
}
