package gdrom

// maxCDDARepeat is the highest repeat count the firmware accepts;
// 15 means infinite.
const maxCDDARepeat = 15

// CDDAPlay starts CDDA audio playback from start to end, repeating the
// given number of times (clamped to 15). Mode selects whether start
// and end are track numbers or sector addresses.
func (d *Device) CDDAPlay(start, end, repeat uint32, mode CDDAMode) error {
	if repeat > maxCDDARepeat {
		repeat = maxCDDARepeat
	}

	params := PlayParams{
		Start:  start,
		End:    end,
		Repeat: repeat,
	}

	switch mode {
	case CDDATracks:
		return d.ExecCmd(CmdPlay, &params)
	case CDDASectors:
		return d.ExecCmd(CmdPlay2, &params)
	default:
		return ErrSys
	}
}

// CDDAPause pauses CDDA audio playback.
func (d *Device) CDDAPause() error {
	return d.ExecCmd(CmdPause, nil)
}

// CDDAResume resumes CDDA audio playback after a pause.
func (d *Device) CDDAResume() error {
	return d.ExecCmd(CmdRelease, nil)
}

// SpinDown stops the disc from spinning until it is accessed again.
func (d *Device) SpinDown() error {
	return d.ExecCmd(CmdStop, nil)
}
