package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/abyssdigger/console"
	"github.com/abyssdigger/console/sinks"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	flagLevel = flag.String("level", "info", "output level: debug, info, warning, error, disabled or a number")
	flagTime  = flag.Bool("time", false, "show seconds since start in headers")
	flagNoLvl = flag.Bool("nolevel", false, "hide level letters in headers")
	flagStage = flag.Int("stage", 0, "run only this stage (0 runs all)")
)

// Levels, headers and per-level destinations.
func st1(c *console.Console) {
	c.Lvl(console.LVL_DEBUG).Print("debug: hidden with default output level").Endl()
	c.Lvl(console.LVL_INFO).Print("info #", 1).Endl()
	fmt.Fprintf(c.Lvl(console.LVL_WARNING), "warning: %d%% used", 93)
	c.Endl()
	c.SetOutput(os.Stdout, console.LVL_ERROR)
	c.LogError("error goes to stdout")
	c.SetOutput(nil, console.LVL_ERROR)
}

// Nested Disable/Enable from several goroutines.
func st2(c *console.Console) {
	var wg sync.WaitGroup
	for i := range 4 {
		wg.Go(func() {
			c.Disable()
			defer c.Enable()
			c.Log(console.LVL_ERROR, "never printed\n")
			time.Sleep(time.Duration(i) * time.Millisecond)
		})
	}
	wg.Wait()
	c.LogInfo("output enabled again")
}

// Console output bridged into a zap logger writing to stderr, serialized with other
// stderr users.
func st3(c *console.Console) {
	out := sinks.Locked(os.Stderr)
	zl := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(out),
		zap.DebugLevel,
	))
	defer zl.Sync()
	c.SetLocker(out)
	defer c.SetLocker(nil)
	c.SetOutput(sinks.Zap(zl, zap.WarnLevel), console.LVL_WARNING)
	c.LogWarning("routed to zap")
	out.WriteLocked([]byte("plain stderr line\n"))
	c.SetOutput(nil, console.LVL_WARNING)
}

func main() {
	flag.Parse()
	level, err := console.ParseLevel(*flagLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	showTime, showLevel := *flagTime, !*flagNoLvl
	c := console.Default().Apply(console.Config{
		OutputLevel: &level,
		ShowTime:    &showTime,
		ShowLevel:   &showLevel,
	})
	defer console.Shutdown()

	stages := []func(*console.Console){st1, st2, st3}
	for i, st := range stages {
		if *flagStage != 0 && *flagStage != i+1 {
			continue
		}
		fmt.Println("*** STAGE #", i+1, "***")
		st(c)
	}
}
