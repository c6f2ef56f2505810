// Package affinity binds benchmark execution units to operating system
// threads and, where the platform allows it, to individual CPUs.
package affinity

import "runtime"

// Thread is the handle returned by Lock. Release must be called on the
// same goroutine before it exits.
type Thread struct {
	pinned bool
}

// Lock wires the calling goroutine to its own OS thread. When cpu is
// non-negative it also tries to pin that thread to CPU cpu mod NumCPU;
// failure to pin leaves the thread locked but unpinned.
func Lock(cpu int) (Thread, error) {
	runtime.LockOSThread()
	if cpu < 0 {
		return Thread{}, nil
	}
	if err := pin(cpu % runtime.NumCPU()); err != nil {
		return Thread{}, err
	}
	return Thread{pinned: true}, nil
}

// Pinned reports whether the thread was bound to a CPU.
func (t Thread) Pinned() bool { return t.pinned }

// Release undoes Lock. A pinned thread keeps a stale affinity mask, so it
// stays locked and the runtime discards it when the goroutine exits.
func (t Thread) Release() {
	if t.pinned {
		return
	}
	runtime.UnlockOSThread()
}
