package gdrom

import "fmt"

// SectorPart selects how much of each sector read operations return.
type SectorPart int

// Sector parts. SectorPartDefault is not understood by the firmware; it
// is resolved by ChangeDataType before the mode is applied.
const (
	SectorPartWhole   SectorPart = 0x1000 // Return the whole sector
	SectorPartData    SectorPart = 0x2000 // Return the data area only
	SectorPartDefault SectorPart = -1     // Resolve to the current default
)

// TrackType selects how sectors are interpreted when read.
type TrackType int

// Track types. TrackTypeDefault is not understood by the firmware; it
// is resolved by ChangeDataType before the mode is applied.
const (
	TrackTypeUnknown    TrackType = 0x0e00
	TrackTypeMode2NonXA TrackType = 0x0c00
	TrackTypeMode2Form2 TrackType = 0x0a00
	TrackTypeMode2Form1 TrackType = 0x0800
	TrackTypeMode2      TrackType = 0x0600
	TrackTypeMode1      TrackType = 0x0400
	TrackTypeCDDA       TrackType = 0x0200
	TrackTypeAny        TrackType = 0x0000
	TrackTypeDefault    TrackType = -1 // Resolve to the current default
)

// Common sector sizes. DefaultSectorSize resolves to SectorSizeData on
// the non-raw negotiation path.
const (
	SectorSizeData    = 2048 // Data portion of a Mode 1 sector
	SectorSizeRaw     = 2352 // Full raw sector
	DefaultSectorSize = -1   // Resolve to the current default
)

// ChangeDataType negotiates and applies the sector datatype used by
// read operations. Each parameter accepts its Default sentinel, which
// is resolved against the disc currently in the drive:
//
//   - A raw sector size (2352) resolves a default track type to
//     TrackTypeAny and a default sector part to SectorPartWhole, without
//     consulting the drive.
//   - Any other size resolves a default track type by asking the drive
//     for the disc type (TrackTypeMode2Form1 for CD-ROM XA, otherwise
//     TrackTypeMode1), a default sector part to SectorPartData, and a
//     default size to 2048.
//
// The negotiation either applies all three resolved fields or fails; it
// never applies a partial configuration.
func (d *Device) ChangeDataType(part SectorPart, track TrackType, size int) error {
	var check CheckDriveParams

	d.gate.lock()
	defer d.gate.unlock()

	// Check if we are using default params
	if size == SectorSizeRaw {
		if track == TrackTypeDefault {
			track = TrackTypeAny
		}

		if part == SectorPartDefault {
			part = SectorPartWhole
		}
	} else {
		if track == TrackTypeDefault {
			// If not overriding the track type, check what the drive
			// thinks we should use
			d.sys.CheckDrive(&check)

			if check.DiscType == DiscCDROMXA {
				track = TrackTypeMode2Form1
			} else {
				track = TrackTypeMode1
			}
		}

		if part == SectorPartDefault {
			part = SectorPartData
		}

		if size == DefaultSectorSize {
			size = SectorSizeData
		}
	}

	params := SectorModeParams{
		RW:         sectorModeSet,
		SectorPart: part,
		TrackType:  track,
		SectorSize: size,
	}

	if rv := d.sys.SectorMode(&params); rv != 0 {
		return fmt.Errorf("gdrom: sector mode syscall failed: %d", rv)
	}

	return nil
}

// SectorMode syscall directions.
const (
	sectorModeSet = 0
	sectorModeGet = 1
)
