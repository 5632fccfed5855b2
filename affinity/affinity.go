// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_windows.go, etc.) guarded by build tags.

package affinity

import "runtime"

// Pin locks the calling goroutine to its OS thread and binds that thread
// to the given logical CPU. On unsupported platforms returns an error and
// leaves the goroutine unlocked.
func Pin(cpuID int) error {
	runtime.LockOSThread()
	if err := setAffinityPlatform(cpuID); err != nil {
		runtime.UnlockOSThread()
		return err
	}
	return nil
}

// Unpin restores the thread's default affinity mask and unlocks the
// goroutine from its OS thread.
func Unpin() error {
	defer runtime.UnlockOSThread()
	return clearAffinityPlatform()
}
