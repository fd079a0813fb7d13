package gdrom

import "errors"

// CmdError is the result taxonomy for drive commands. It is the only
// error vocabulary the driver exposes: the execution engine folds every
// raw firmware outcome and sub-code into one of these values, and no
// layer above it reinterprets raw outcomes. Success is a nil error.
type CmdError int

// Command errors. The numeric values are part of the firmware contract
// and must not be renumbered.
const (
	ErrNoDisc      CmdError = 1 // No disc in drive
	ErrDiscChanged CmdError = 2 // Disc changed, but not reinitted yet
	ErrSys         CmdError = 3 // System error
	ErrAborted     CmdError = 4 // Command aborted
	ErrNotActive   CmdError = 5 // System inactive
	ErrTimeout     CmdError = 6 // Aborted due to timeout
)

// Error implements the error interface.
func (e CmdError) Error() string {
	switch e {
	case ErrNoDisc:
		return "gdrom: no disc in drive"
	case ErrDiscChanged:
		return "gdrom: disc changed, reinit required"
	case ErrSys:
		return "gdrom: system error"
	case ErrAborted:
		return "gdrom: command aborted"
	case ErrNotActive:
		return "gdrom: command no longer active"
	case ErrTimeout:
		return "gdrom: command timed out"
	default:
		return "gdrom: unknown error"
	}
}

// ErrGateBusy is returned by GetStatus when the hardware access gate
// could not be acquired without blocking. It is deliberately outside the
// CmdError taxonomy: it signals that the bus is occupied, not that the
// drive or a command failed.
var ErrGateBusy = errors.New("gdrom: hardware access gate unavailable")
