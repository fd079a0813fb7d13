package gdrom

import "errors"

// reinitTimeout is how long a single INIT command may run, in
// milliseconds.
const reinitTimeout = 10000

// Reinit re-initializes the drive to its default sector datatype, e.g.
// after a disc change. Equivalent to ReinitEx with every parameter
// defaulted; any previously negotiated sector size is discarded.
func (d *Device) Reinit() error {
	return d.ReinitEx(SectorPartDefault, TrackTypeDefault, DefaultSectorSize)
}

// ReinitEx re-initializes the drive and then negotiates the requested
// sector datatype (each parameter may be its Default sentinel).
//
// A DiscChanged result from INIT means the new disc has not settled
// yet, so the command is repeated until some other result is produced.
// The loop is deliberately unbounded: a changed disc is expected to
// stabilize, and bounding the wait here would turn a settling disc into
// a spurious failure. While it runs it holds the bus against all other
// commands.
//
// NoDisc, system errors and timeouts are returned immediately without
// touching the datatype; the caller may retry later.
func (d *Device) ReinitEx(part SectorPart, track TrackType, size int) error {
	var err error

	for {
		err = d.ExecCmdTimed(CmdInit, nil, reinitTimeout)
		if !errors.Is(err, ErrDiscChanged) {
			break
		}
	}

	if errors.Is(err, ErrNoDisc) || errors.Is(err, ErrSys) || errors.Is(err, ErrTimeout) {
		return err
	}

	return d.ChangeDataType(part, track, size)
}

// SetSectorSize sets the sector size returned by ReadSectors. Common
// values are 2048 (CD-ROM data) and 2352 (raw sectors). Shortcut for
// ReinitEx; typically the size is the only thing changed.
func (d *Device) SetSectorSize(size int) error {
	return d.ReinitEx(SectorPartDefault, TrackTypeDefault, size)
}
