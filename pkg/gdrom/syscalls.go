// Package gdrom provides low-level command access to the Dreamcast GD-ROM
// drive. It wraps the firmware's asynchronous command interface (submit a
// command, then poll it to completion) into synchronous, mutex-serialized
// operations that a filesystem driver or CDDA playback code can call from
// multiple goroutines.
//
// By design this package does not access the high-density GD area of a
// disc; it reads the low-density area of standard bootable discs (one
// audio track plus one data track).
package gdrom

// CmdHandle identifies a command submitted to the firmware. It is valid
// from submission until the command reaches a terminal state or is
// aborted. Zero or negative values denote a failed submission, never a
// valid handle.
type CmdHandle int32

// CmdCheck is the raw command state reported by Syscalls.CheckCommand.
type CmdCheck int

// Command check results. Processing and Busy are the only non-terminal
// states; everything else ends the polling loop.
const (
	CmdFailed     CmdCheck = -1 // Command failed
	CmdNotFound   CmdCheck = 0  // Command requested not found
	CmdProcessing CmdCheck = 1  // Command still being processed
	CmdCompleted  CmdCheck = 2  // Command completed successfully
	CmdStreaming  CmdCheck = 3  // Stream type command is in progress
	CmdBusy       CmdCheck = 4  // Firmware command server is busy
)

// ATAStatus is the bus status reported in the 4th field of CmdCheckStatus.
type ATAStatus int32

// ATA statuses returned by CheckCommand.
const (
	ATAStatInternal ATAStatus = 0x00
	ATAStatIRQ      ATAStatus = 0x01
	ATAStatDRQ0     ATAStatus = 0x02
	ATAStatDRQ1     ATAStatus = 0x03
	ATAStatBusy     ATAStatus = 0x04
)

// CmdCheckStatus carries the extended status filled in by CheckCommand.
// It supplements the CmdCheck return value with the reasons a command
// may have failed.
type CmdCheckStatus struct {
	Err1 int32     // Error code 1
	Err2 int32     // Error code 2
	Size uint32    // Transferred size
	ATA  ATAStatus // ATA bus status
}

// Stat describes the current condition of the drive mechanism, as
// reported by CheckDrive.
type Stat int

// Drive statuses.
const (
	StatReadFail Stat = -1 // Can't read status
	StatBusy     Stat = 0  // Drive is busy
	StatPaused   Stat = 1  // Disc is paused
	StatStandby  Stat = 2  // Drive is in standby
	StatPlaying  Stat = 3  // Drive is currently playing
	StatSeeking  Stat = 4  // Drive is currently seeking
	StatScanning Stat = 5  // Drive is scanning
	StatOpen     Stat = 6  // Disc tray is open
	StatNoDisc   Stat = 7  // No disc inserted
	StatRetry    Stat = 8  // Retry is needed
	StatError    Stat = 9  // System error
	StatFatal    Stat = 12 // Firmware needs a reset
)

// String returns a human-readable drive status name.
func (s Stat) String() string {
	switch s {
	case StatBusy:
		return "busy"
	case StatPaused:
		return "paused"
	case StatStandby:
		return "standby"
	case StatPlaying:
		return "playing"
	case StatSeeking:
		return "seeking"
	case StatScanning:
		return "scanning"
	case StatOpen:
		return "tray open"
	case StatNoDisc:
		return "no disc"
	case StatRetry:
		return "retry"
	case StatError:
		return "error"
	case StatFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// DiscType identifies the kind of disc in the drive, as reported by
// CheckDrive.
type DiscType int

// Disc types.
const (
	DiscCDDA    DiscType = 0x00 // Audio CD (Red book) or no disc
	DiscCDROM   DiscType = 0x10 // CD-ROM or CD-R (Yellow book)
	DiscCDROMXA DiscType = 0x20 // CD-ROM XA (Yellow book extension)
	DiscCDI     DiscType = 0x30 // CD-i (Green book)
	DiscGDROM   DiscType = 0x80 // GD-ROM
	DiscFail    DiscType = 0xf0 // Firmware needs a reset
)

// String returns a human-readable disc type name.
func (t DiscType) String() string {
	switch t {
	case DiscCDDA:
		return "CDDA"
	case DiscCDROM:
		return "CD-ROM"
	case DiscCDROMXA:
		return "CD-ROM XA"
	case DiscCDI:
		return "CD-i"
	case DiscGDROM:
		return "GD-ROM"
	case DiscFail:
		return "fail"
	default:
		return "unknown"
	}
}

// CheckDriveParams receives the drive condition from CheckDrive.
type CheckDriveParams struct {
	Status   Stat
	DiscType DiscType
}

// Syscalls is the firmware command/status primitive boundary. On real
// hardware it is backed by the BIOS GD-ROM syscall vector; tests and
// tooling use the virtual drive instead. Implementations are treated as
// already-correct black boxes: the driver core never retries or
// reinterprets below this line.
type Syscalls interface {
	// Init initializes the drive firmware. Must be called before any
	// commands are sent.
	Init()

	// Reset resets the drive firmware.
	Reset()

	// SendCommand requests execution of a command. It returns the
	// request handle (>= 1) on success, or 0 on failure. Params may be
	// nil for commands that take none.
	SendCommand(cmd CmdCode, params any) CmdHandle

	// ExecServer advances the firmware's internal command processing by
	// one step. It must be called repeatedly for submitted commands to
	// make progress.
	ExecServer()

	// CheckCommand reports the state of a previously submitted command
	// and fills st with extended status information.
	CheckCommand(hnd CmdHandle, st *CmdCheckStatus) CmdCheck

	// AbortCommand tries to abort a previously submitted command.
	AbortCommand(hnd CmdHandle) int

	// CheckDrive retrieves the general condition of the drive. It
	// returns 0 on success, negative on failure, or the busy code while
	// the firmware cannot answer yet.
	CheckDrive(params *CheckDriveParams) int

	// SectorMode sets (RW=0) or gets (RW=1) the sector datatype
	// configuration. Returns 0 on success.
	SectorMode(params *SectorModeParams) int
}
