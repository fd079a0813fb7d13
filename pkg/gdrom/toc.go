package gdrom

// TOC is the table of contents returned by a GETTOC2 command, exactly
// as the firmware lays it out. Addresses are in FAD (frame address),
// not LBA/LSN. It is populated wholesale by a single read and treated
// as an immutable snapshot afterwards.
type TOC struct {
	Entry         [99]TOCEntry // TOC space for 99 tracks
	First         TOCEntry     // Point A0 information (first track)
	Last          TOCEntry     // Point A1 information (last track)
	LeadoutSector TOCEntry     // Point A2 information (leadout)
}

// TOCEntry is a raw 32-bit packed track descriptor. The accessor
// methods are the only supported way to read its fields.
type TOCEntry uint32

// FAD returns the frame address of the entry (bits 0-23).
func (e TOCEntry) FAD() uint32 {
	return uint32(e) & 0x00ffffff
}

// ADR returns the address-field nibble of the entry (bits 24-27).
func (e TOCEntry) ADR() uint32 {
	return (uint32(e) & 0x0f000000) >> 24
}

// Ctrl returns the control nibble of the entry (bits 28-31).
func (e TOCEntry) Ctrl() uint32 {
	return (uint32(e) & 0xf0000000) >> 28
}

// Track returns the track number of the entry (bits 16-23).
func (e TOCEntry) Track() uint32 {
	return (uint32(e) & 0x00ff0000) >> 16
}

// CtrlData is the control value marking a data track.
const CtrlData = 4

// LocateDataTrack returns the FAD of the data track described by toc,
// or 0 if none is found. Use after reading the TOC.
//
// The scan runs from the last track down to the first and stops at the
// first entry with a data control value, so the highest-numbered data
// track wins. That is where the data area of a bootable disc (one
// audio track plus one data track) starts.
//
// A TOC whose first track is below 1, whose last track is above 99, or
// whose first track exceeds its last is malformed for this purpose and
// yields 0; that is a not-found sentinel, not a fault.
func LocateDataTrack(toc *TOC) uint32 {
	first := toc.First.Track()
	last := toc.Last.Track()

	if first < 1 || last > 99 || first > last {
		return 0
	}

	for i := last; i >= first; i-- {
		if toc.Entry[i-1].Ctrl() == CtrlData {
			return toc.Entry[i-1].FAD()
		}
	}

	return 0
}
