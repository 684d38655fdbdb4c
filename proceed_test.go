package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildTextMessage(t *testing.T) {
	outBuffer := bytes.NewBuffer(make([]byte, 0, DEFAULT_OUT_BUFF))
	text := []byte(testlogstr)
	elapsed := 12340 * time.Millisecond
	tests := []struct {
		name      string // description of this test case
		level     LogLevel
		showlevel bool
		showtime  bool
		result    string
	}{
		{"no_flags", LVL_WARNING, false, false, testlogstr},
		{"level_info", LVL_INFO, true, false, "[I] " + testlogstr},
		{"level_base", LVL_BASE, true, false, "[I] " + testlogstr},
		{"level_negative", -4, true, false, "[I] " + testlogstr},
		{"level_warning", LVL_WARNING, true, false, "[W] " + testlogstr},
		{"level_error", LVL_ERROR, true, false, "[E] " + testlogstr},
		{"level_above_error", 99, true, false, "[E] " + testlogstr},
		{"time_only", LVL_WARNING, false, true, "[ 12.34] " + testlogstr},
		{"both_info", LVL_INFO, true, true, "[I 12.34] " + testlogstr},
		{"both_warning", LVL_WARNING, true, true, "[W 12.34] " + testlogstr},
		{"both_error", LVL_ERROR, true, true, "[E 12.34] " + testlogstr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buff := buildTextMessage(outBuffer, text, tt.level, elapsed, tt.showlevel, tt.showtime)
			assert.Equal(t, tt.result, buff.String())
		})
	}
	t.Run("empty_text", func(t *testing.T) {
		assert.Equal(t, "[W] ", buildTextMessage(outBuffer, nil, LVL_WARNING, 0, true, false).String())
		assert.Equal(t, "", buildTextMessage(outBuffer, nil, LVL_WARNING, 0, false, false).String())
	})
}

func Test_formatSeconds(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00.00"},
		{1500 * time.Millisecond, "01.50"},
		{12340 * time.Millisecond, "12.34"},
		{59999 * time.Millisecond, "60.00"},
		{123456 * time.Millisecond, "123.46"},
		{100000 * time.Second, "100000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, string(formatSeconds(tt.in)))
		})
	}
}

func Test_Flush_Threshold(t *testing.T) {
	out, ferr := &FakeWriter{}, &FakeWriter{}
	c := testConsole(out, ferr).SetShowLevel(false)
	for threshold := LogLevel(-2); threshold <= 7; threshold++ {
		for level := LogLevel(-1); level <= 8; level++ {
			out.Clear()
			c.SetOutputLevel(threshold)
			c.Lvl(level).WriteString("msg")
			c.Flush()
			emitted := threshold >= 0 && level >= threshold
			if emitted {
				assert.Equal(t, "msg", out.String(), "threshold %d level %d", threshold, level)
			} else {
				assert.Empty(t, out.buffer, "threshold %d level %d", threshold, level)
			}
			assert.Zero(t, c.msgbuf.Len(), "buffer not cleared (threshold %d level %d)", threshold, level)
			assert.Equal(t, LVL_BASE, c.level, "pending level not reset")
		}
	}
	assert.Empty(t, ferr.buffer)
}

func Test_Flush_Scenarios(t *testing.T) {
	t.Run("threshold_2", func(t *testing.T) {
		out := &FakeWriter{}
		c := testConsole(out, &FakeWriter{}).SetOutputLevel(2)
		c.Lvl(1).Print("hidden").Endl()
		assert.Empty(t, out.buffer)
		assert.Zero(t, c.msgbuf.Len())
		c.Lvl(3).Print("shown").Endl()
		assert.Equal(t, "[I] shown\n", out.String())
	})
	t.Run("time_and_level", func(t *testing.T) {
		out := &FakeWriter{}
		c, now := testClockConsole(out)
		c.SetShowTime(true).SetShowLevel(true)
		*now = now.Add(12340 * time.Millisecond)
		c.Lvl(LVL_WARNING).Print("hot").Endl()
		assert.Equal(t, "[W 12.34] hot\n", out.String())
	})
	t.Run("time_only", func(t *testing.T) {
		out := &FakeWriter{}
		c, now := testClockConsole(out)
		c.SetShowTime(true).SetShowLevel(false)
		*now = now.Add(12340 * time.Millisecond)
		c.Lvl(LVL_WARNING).Print("hot").Endl()
		assert.Equal(t, "[ 12.34] hot\n", out.String())
	})
	t.Run("no_header", func(t *testing.T) {
		out := &FakeWriter{}
		c, _ := testClockConsole(out)
		c.SetShowTime(false).SetShowLevel(false)
		c.Lvl(LVL_ERROR).Print("plain").Endl()
		assert.Equal(t, "plain\n", out.String())
	})
	t.Run("pending_level_reset", func(t *testing.T) {
		out := &FakeWriter{}
		c := testConsole(out, &FakeWriter{}).SetOutputLevel(0)
		c.Lvl(LVL_ERROR).Print("first").Endl()
		c.Print("second").Endl()
		assert.Equal(t, "[E] first\n[I] second\n", out.String())
		assert.Equal(t, LVL_BASE, c.level)
	})
}

func Test_Flush_Destinations(t *testing.T) {
	out0, out2, out5, ferr := &FakeWriter{}, &FakeWriter{}, &FakeWriter{}, &FakeWriter{}
	c := testConsole(out0, ferr).SetOutputLevel(0).SetShowLevel(false)
	c.SetOutput(out2, 2).SetOutput(out5, 5)
	for level := LogLevel(0); level <= 7; level++ {
		c.Lvl(level).Print(int(level)).Endl()
	}
	assert.Equal(t, "0\n1\n", out0.String())
	assert.Equal(t, "2\n3\n4\n", out2.String())
	assert.Equal(t, "5\n6\n7\n", out5.String())
	assert.Empty(t, ferr.buffer)
}

func Test_Flush_SingleWrite(t *testing.T) {
	out := &FakeWriter{}
	c := testConsole(out, &FakeWriter{}).SetShowTime(true)
	c.Lvl(LVL_ERROR)
	for range 10 {
		c.WriteString("part ")
	}
	c.Endl()
	assert.Equal(t, 1, out.writes, "header and text must be written at once")
	assert.True(t, strings.HasPrefix(out.String(), "[E "))
	assert.True(t, strings.HasSuffix(out.String(), strings.Repeat("part ", 10)+"\n"))
}

func Test_Flush_FailingOutputs(t *testing.T) {
	tests := []struct {
		name   string
		output OutType
		want   string
	}{
		{"error", &ErrorWriter{}, _ERROR_MESSAGE_WRITE_FAILED + " (0 bytes written): " + errorStr + "\n"},
		{"short", &ShortWriter{}, _ERROR_MESSAGE_SHORT_WRITE + "\n"},
		{"panic", &PanicWriter{}, _ERROR_MESSAGE_WRITE_PANIC + ": `" + panicStr + "`\n"},
		{"nil_panic", &NilPanicWriter{}, _ERROR_MESSAGE_WRITE_PANIC + ": (error) `"},
		{"zero_panic", &ZeroPanicWriter{}, _ERROR_MESSAGE_WRITE_PANIC + " " + _ERROR_UNKNOWN_PANIC_TEXT + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ferr := &FakeWriter{}
			c := testConsole(&FakeWriter{}, ferr)
			c.SetOutput(tt.output, LVL_ERROR)
			assert.NotPanics(t, func() {
				c.Lvl(LVL_ERROR).Print("fail").Endl()
			})
			assert.Contains(t, ferr.String(), tt.want)
			assert.Zero(t, c.msgbuf.Len())
			// the console stays usable
			c.SetOutput(nil, LVL_ERROR)
			assert.NotPanics(t, func() { c.LogError("ok") })
		})
	}
	t.Run("panicking_fallback", func(t *testing.T) {
		c := New().SetFallback(&PanicWriter{})
		c.SetOutput(&ErrorWriter{}, 0)
		assert.NotPanics(t, func() { c.LogError("x") })
	})
}

func Test_Console_Log(t *testing.T) {
	out := &FakeWriter{}
	c := testConsole(out, &FakeWriter{})
	c.WriteString("pending ")
	c.Log(LVL_WARNING, "now")
	assert.Equal(t, "[W] pending now", out.String())
	out.Clear()
	c.LogBytes(LVL_INFO, []byte("bytes"))
	assert.Equal(t, "[I] bytes", out.String())
	out.Clear()
	c.Log(LVL_DEBUG, "filtered")
	assert.Empty(t, out.buffer)
	require.Zero(t, c.msgbuf.Len())
}
