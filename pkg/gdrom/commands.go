package gdrom

// CmdCode is a firmware command code. The numeric values are part of
// the wire contract with the firmware and must match exactly.
type CmdCode int

// Firmware command codes.
const (
	CmdCheckLicense    CmdCode = 2  // Check license
	CmdReqSPICmd       CmdCode = 4  // Request to Sega Packet Interface
	CmdPIORead         CmdCode = 16 // Read via PIO
	CmdDMARead         CmdCode = 17 // Read via DMA
	CmdGetTOC          CmdCode = 18 // Read TOC
	CmdGetTOC2         CmdCode = 19 // Read TOC
	CmdPlay            CmdCode = 20 // Play track
	CmdPlay2           CmdCode = 21 // Play sectors
	CmdPause           CmdCode = 22 // Pause playback
	CmdRelease         CmdCode = 23 // Resume from pause
	CmdInit            CmdCode = 24 // Initialize the drive
	CmdDMAAbort        CmdCode = 25 // Abort DMA transfer
	CmdOpenTray        CmdCode = 26 // Open CD tray
	CmdSeek            CmdCode = 27 // Seek to a new position
	CmdDMAReadStream   CmdCode = 28 // Stream DMA until end/abort
	CmdNop             CmdCode = 29 // No operation
	CmdReqMode         CmdCode = 30 // Request mode
	CmdSetMode         CmdCode = 31 // Setup mode
	CmdScanCD          CmdCode = 32 // Scan CD
	CmdStop            CmdCode = 33 // Stop the disc from spinning
	CmdGetSCD          CmdCode = 34 // Get subcode data
	CmdGetSes          CmdCode = 35 // Get session
	CmdReqStat         CmdCode = 36 // Request stat
	CmdPIOReadStream   CmdCode = 37 // Stream PIO until end/abort
	CmdDMAReadStreamEx CmdCode = 38 // Stream DMA transfer
	CmdPIOReadStreamEx CmdCode = 39 // Stream PIO transfer
	CmdGetVers         CmdCode = 40 // Get firmware driver version
)

// Area selects which disc area a TOC read targets.
type Area int

// Disc areas.
const (
	AreaLow  Area = 0
	AreaHigh Area = 1
)

// ReadMode selects how sector reads move data off the bus.
type ReadMode int

// Sector read modes.
const (
	ReadPIO ReadMode = iota // Read sector(s) in PIO mode
	ReadDMA                 // Read sector(s) in DMA mode
)

// CDDAMode selects how CDDA playback start/end positions are
// interpreted.
type CDDAMode int

// CDDA playback modes.
const (
	CDDATracks  CDDAMode = iota // Play by track number (CmdPlay)
	CDDASectors                 // Play by sector number (CmdPlay2)
)

// SubcodeType selects which subcode data a GETSCD command returns.
type SubcodeType int

// Subcode data types.
const (
	SubcodeQAll         SubcodeType = 0 // All subcode data
	SubcodeQChannel     SubcodeType = 1 // Q channel subcode data
	SubcodeMediaCatalog SubcodeType = 2 // Media catalog subcode data
	SubcodeTrackISRC    SubcodeType = 3 // ISRC subcode data
	SubcodeReserved     SubcodeType = 4 // Reserved
)

// Subcode audio statuses, returned in the second byte of a GETSCD
// buffer.
const (
	SubcodeAudioInvalid = 0x00
	SubcodeAudioPlaying = 0x11
	SubcodeAudioPaused  = 0x12
	SubcodeAudioEnded   = 0x13
	SubcodeAudioError   = 0x14
	SubcodeAudioNoInfo  = 0x15
)

// ReadParams is the parameter block for CmdPIORead and CmdDMARead.
type ReadParams struct {
	StartSector uint32 // Starting sector (FAD)
	SectorCount uint32 // Number of sectors
	Buffer      []byte // Output buffer
	IsTest      bool   // Enable test mode
}

// TOCParams is the parameter block for CmdGetTOC2.
type TOCParams struct {
	Area   Area // Disc area to read the TOC from
	Buffer *TOC // Output TOC
}

// PlayParams is the parameter block for CmdPlay and CmdPlay2.
type PlayParams struct {
	Start  uint32 // Track or sector to play from
	End    uint32 // Track or sector to play to
	Repeat uint32 // Times to repeat (0-15, 15 = infinite)
}

// SubcodeParams is the parameter block for CmdGetSCD.
type SubcodeParams struct {
	Which  SubcodeType // Subcode data type to read
	BufLen uint32      // Amount of data to read
	Buffer []byte      // Output buffer
}

// SectorModeParams is the parameter block for the SectorMode syscall.
type SectorModeParams struct {
	RW         uint32     // 0 = set, 1 = get
	SectorPart SectorPart // Data area or whole sector
	TrackType  TrackType  // Track interpretation
	SectorSize int        // Sector size in bytes
}
