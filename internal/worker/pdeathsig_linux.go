//go:build linux

package worker

import "syscall"

// PR_SET_PDEATHSIG, from linux/prctl.h.
const prSetPDeathSig = 1

// EnableParentDeathSignal arranges for the kernel to send SIGTERM when the
// worker's direct parent dies. Supervisors and `go run` wrappers do not
// always forward signals, and an orphaned worker would otherwise keep
// holding BLPOP against the queue.
func EnableParentDeathSignal() error {
	if _, _, errno := syscall.RawSyscall(syscall.SYS_PRCTL, prSetPDeathSig, uintptr(syscall.SIGTERM), 0); errno != 0 {
		return errno
	}
	return nil
}
