package gdrom

import (
	"runtime"
	"time"

	"github.com/hansbonini/gdtools/pkg/common"
)

// cmdRetryMax is the maximum number of times a command submission is
// attempted before giving up.
const cmdRetryMax = 10

// Clock returns a monotonic millisecond timestamp. Injected so timeout
// behavior can be tested without real timing.
type Clock func() uint64

// Device is a GD-ROM drive accessed through a firmware syscall
// implementation. All command traffic is serialized through the
// device's hardware access gate; its methods are safe for concurrent
// use by multiple goroutines.
//
// The public API is blocking: every operation submits a command and
// polls it to a terminal state before returning. A non-blocking variant
// would only need the firmware's request handles checked manually, and
// would allow data reads while CDDA is playing without hiccups; that
// remains future work.
type Device struct {
	sys   Syscalls
	gate  gate
	clock Clock
	yield func()
}

// NewDevice returns a Device driving the given firmware implementation,
// using real wall-clock time and the Go scheduler's yield.
func NewDevice(sys Syscalls) *Device {
	start := time.Now()
	return &Device{
		sys:   sys,
		clock: func() uint64 { return uint64(time.Since(start) / time.Millisecond) },
		yield: runtime.Gosched,
	}
}

// ExecCmd executes a firmware command with no timeout, polling until it
// reaches a terminal state. Used for short, always-terminating
// commands.
func (d *Device) ExecCmd(cmd CmdCode, params any) error {
	return d.ExecCmdTimed(cmd, params, 0)
}

// ExecCmdTimed executes a firmware command, polling until it reaches a
// terminal state or the timeout (in milliseconds, 0 = none) elapses.
// On timeout the in-flight command is aborted before returning, so the
// drive is not left mid-command.
//
// This is the single translation point from raw firmware outcomes to
// the CmdError taxonomy; nil means the command completed (or entered
// streaming state) successfully.
func (d *Device) ExecCmdTimed(cmd CmdCode, params any, timeout uint32) error {
	var (
		status CmdCheckStatus
		hnd    CmdHandle
		begin  uint64
		n      CmdCheck
	)

	d.gate.lock()
	defer d.gate.unlock()

	// Submit the command
	for i := 0; i < cmdRetryMax; i++ {
		hnd = d.sys.SendCommand(cmd, params)
		if hnd != 0 {
			break
		}
		d.sys.ExecServer()
		d.yield()
	}

	if hnd <= 0 {
		return ErrSys
	}

	// Wait for the command to finish
	if timeout != 0 {
		begin = d.clock()
	}
	for {
		d.sys.ExecServer()
		n = d.sys.CheckCommand(hnd, &status)

		if n != CmdProcessing && n != CmdBusy {
			break
		}
		if timeout != 0 {
			if d.clock()-begin >= uint64(timeout) {
				d.sys.AbortCommand(hnd)
				d.sys.ExecServer()
				common.LogError(common.ErrCmdTimeoutExceeded, cmd, timeout)
				return ErrTimeout
			}
		}
		d.yield()
	}

	if n == CmdCompleted || n == CmdStreaming {
		return nil
	}
	if n == CmdNotFound {
		return ErrNotActive
	}

	// Err2 carries additional detail, but classification follows Err1
	// alone.
	switch status.Err1 {
	case 2:
		return ErrNoDisc
	case 6:
		return ErrDiscChanged
	default:
		return ErrSys
	}
}

// Initialize resets the drive firmware and brings the disc to a ready,
// negotiated state. The hardware reactivation ritual itself lives
// behind the Syscalls boundary.
func (d *Device) Initialize() error {
	d.gate.lock()
	d.sys.Reset()
	d.sys.Init()
	d.gate.unlock()

	return d.Reinit()
}
