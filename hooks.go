package console

import "sync"

// Sets a function (and optional argument) to be called before data is written to
// the current destination. Called on every flush, also for suppressed messages, while
// the console flush lock is held. Can be used for example to lock a mutex if the
// destination is shared with code outside the console. A nil func removes the hook.
//
// The hook must not write to the same console, the flush lock is not reentrant.
func (c *Console) SetLockHook(fn func(arg any), arg any) *Console {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.hooks.lock = hookFunc{fn: fn, arg: arg}
	return c
}

// Sets a function (and optional argument) to be called after data is written to the
// current destination. See SetLockHook.
func (c *Console) SetUnlockHook(fn func(arg any), arg any) *Console {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	c.hooks.unlock = hookFunc{fn: fn, arg: arg}
	return c
}

// Installs both hooks at once so every flush runs between locker.Lock() and
// locker.Unlock(). A nil locker removes both hooks.
func (c *Console) SetLocker(locker sync.Locker) *Console {
	c.sync.procMtx.Lock()
	defer c.sync.procMtx.Unlock()
	if locker == nil {
		c.hooks = lockHooks{}
		return c
	}
	// both halves change together so no flush sees an unbalanced pair
	c.hooks.lock = hookFunc{fn: func(arg any) { arg.(sync.Locker).Lock() }, arg: locker}
	c.hooks.unlock = hookFunc{fn: func(arg any) { arg.(sync.Locker).Unlock() }, arg: locker}
	return c
}

// Runs a hook if set. A panicking hook is reported to the fallback and the flush goes on.
func (c *Console) runHook(h hookFunc) {
	if h.fn == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.handleLogWriteError(_ERROR_MESSAGE_HOOK_PANIC + panicDesc(r))
		}
	}()
	h.fn(h.arg)
}
