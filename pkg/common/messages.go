// Package common provides shared helpers for GDTools: leveled logging,
// message constants and safe integer conversions.
package common

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// Global variable to control debug output
var VerboseMode bool = false

// SetVerboseMode enables or disables verbose/debug output
func SetVerboseMode(verbose bool) {
	VerboseMode = verbose
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// Error messages
const (
	ErrCmdTimeoutExceeded    = "ExecCmdTimed: timeout exceeded for command %d after %d ms"
	ErrFailedToLoadDiscSheet = "failed to load disc sheet"
	ErrFailedToParseYAML     = "failed to parse YAML"
	ErrFailedToLoadPayload   = "failed to load disc payload"
	ErrFailedToCreateOutput  = "failed to create output file"
	ErrFailedToWriteOutput   = "failed to write output file"
	ErrFailedToReadTOC       = "failed to read table of contents"
	ErrFailedToReadSectors   = "failed to read sectors"
	ErrFailedToInitDrive     = "failed to initialize drive"
	ErrFailedToQueryDrive    = "failed to query drive status"
	ErrFailedToDumpTOC       = "failed to dump table of contents"
	ErrNoDataTrack           = "no data track found on disc"
	ErrTrackOutOfRange       = "track number out of range (1-99)"
	ErrUnknownDiscType       = "unknown disc type"
	ErrUnknownTrackType      = "unknown track type"
)

// Info messages
const (
	InfoDriveStatus      = "Drive status: %s, disc type: %s"
	InfoDriveInitialized = "Drive initialized"
	InfoDriveStopped     = "Drive spun down"
	InfoDataTrackAt      = "Data track starts at FAD %d"
	InfoSectorsRead      = "Read %d sectors of %d bytes from FAD %d"
	InfoTOCExported      = "Exported TOC to YAML: %s"
	InfoPlaybackStarted  = "CDDA playback started (%d-%d, repeat %d)"
	InfoPlaybackPaused   = "CDDA playback paused"
	InfoPlaybackResumed  = "CDDA playback resumed"
)

// Debug messages
const (
	DebugCmdSubmitted   = "Command %d submitted, handle %d"
	DebugCmdExecuted    = "Command %d reached state %d"
	DebugCmdAborted     = "Command handle %d aborted"
	DebugDiscSheetTrack = "Track %02d: %s, FAD %d, %d sectors"
	DebugSectorMode     = "Sector mode applied: part=0x%04X type=0x%04X size=%d"
	DebugInitsUntilUp   = "Drive reports disc changed, %d inits until ready"
)

// LogInfo logs an informational message
func LogInfo(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Infof(message, args...)
	} else {
		log.Info(message)
	}
}

// LogWarn logs a warning message
func LogWarn(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Warnf(message, args...)
	} else {
		log.Warn(message)
	}
}

// LogError logs an error message
func LogError(message string, args ...interface{}) {
	if len(args) > 0 {
		log.Errorf(message, args...)
	} else {
		log.Error(message)
	}
}

// LogDebug logs a debug message (only if VerboseMode is enabled)
func LogDebug(message string, args ...interface{}) {
	if !VerboseMode {
		return
	}
	if len(args) > 0 {
		log.Debugf(message, args...)
	} else {
		log.Debug(message)
	}
}

// FormatError creates a formatted error with additional context
func FormatError(baseMessage string, details interface{}) error {
	if err, ok := details.(error); ok {
		return fmt.Errorf("%s: %w", baseMessage, err)
	}
	return fmt.Errorf("%s: %v", baseMessage, details)
}
