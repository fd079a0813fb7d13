package gdrom

// GetStatus returns the drive status and the type of the inserted disc
// as a read-only snapshot.
//
// It never blocks on the hardware access gate: this may be called from
// a restricted context (for example an interrupt-driven ISO cache
// flush check), so if a command is already in progress it fails
// immediately with ErrGateBusy instead of waiting. On any error the
// returned status and disc type are the -1 sentinels.
func (d *Device) GetStatus() (Stat, DiscType, error) {
	var params CheckDriveParams

	if !d.gate.tryLock() {
		return StatReadFail, DiscType(-1), ErrGateBusy
	}

	var rv int
	for {
		rv = d.sys.CheckDrive(&params)
		// It is unclear whether CheckDrive shares CheckCommand's busy
		// code; the firmware has always behaved as if it does.
		if rv != int(CmdBusy) {
			break
		}
		d.yield()
	}

	d.gate.unlock()

	if rv < 0 {
		return StatReadFail, DiscType(-1), ErrSys
	}

	return params.Status, params.DiscType, nil
}
