package vgacon

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a spin-wait mutual exclusion lock. The console cannot use
// a blocking lock: its callers include interrupt-style handlers with no
// scheduler to sleep on, so a contender busy-waits until the holder
// releases. A caller that can be preempted by such a handler must mask
// interrupt delivery around the whole Lock/Unlock span (see Console),
// or a handler needing the lock would spin against the holder it just
// interrupted.
type SpinLock struct {
	held atomic.Bool
}

// Lock spins until the lock is acquired.
func (l *SpinLock) Lock() {
	for !l.held.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

// Unlock releases the lock.
func (l *SpinLock) Unlock() {
	l.held.Store(false)
}
