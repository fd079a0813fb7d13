package gdrom

// ReadTOC reads the table of contents from the given disc area into
// toc.
func (d *Device) ReadTOC(toc *TOC, area Area) error {
	params := TOCParams{
		Area:   area,
		Buffer: toc,
	}

	return d.ExecCmd(CmdGetTOC2, &params)
}

// ReadSectorsEx reads count sectors starting at sector into buf, using
// the given transfer mode. Reads respect the sector size negotiated
// with ChangeDataType, and buf must have room for count sectors of
// that size. For DMA reads the transfer length must additionally be a
// multiple of 32 bytes; that is the caller's contract.
//
// DMA mode still blocks the calling goroutine for the duration of the
// command, but other goroutines keep running while it polls.
func (d *Device) ReadSectorsEx(buf []byte, sector, count uint32, mode ReadMode) error {
	params := ReadParams{
		StartSector: sector,
		SectorCount: count,
		Buffer:      buf,
		IsTest:      false,
	}

	switch mode {
	case ReadDMA:
		return d.ExecCmd(CmdDMARead, &params)
	case ReadPIO:
		return d.ExecCmd(CmdPIORead, &params)
	default:
		return ErrSys
	}
}

// ReadSectors reads count sectors starting at sector into buf in PIO
// mode.
func (d *Device) ReadSectors(buf []byte, sector, count uint32) error {
	return d.ReadSectorsEx(buf, sector, count, ReadPIO)
}

// GetSubcode reads subcode data for the most recently read sectors
// into buf. Reading positional subcode for every sector requires
// reading one sector at a time.
func (d *Device) GetSubcode(buf []byte, which SubcodeType) error {
	params := SubcodeParams{
		Which:  which,
		BufLen: uint32(len(buf)),
		Buffer: buf,
	}

	return d.ExecCmd(CmdGetSCD, &params)
}
