package console

/*
The gate works like a thread-safe push/pop: every goroutine can wrap its own block
with Disable()/Enable() and output stays suppressed while any block is open. There
is no per-goroutine ownership, the counter is a plain shared integer. Changing the
output level to mute a block and restoring it afterwards is not safe with several
goroutines doing the same, use the gate instead.
*/

func (g *enableGate) disable() {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	g.count++
}

// Unmatched enable() calls are ignored.
func (g *enableGate) enable() {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	if g.count > 0 {
		g.count--
	}
}

func (g *enableGate) closed() bool {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return g.count > 0
}

func (g *enableGate) depth() int {
	g.mtx.Lock()
	defer g.mtx.Unlock()
	return g.count
}
