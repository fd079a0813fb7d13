package virtual

import (
	"os"
	"sync"

	"github.com/hansbonini/gdtools/pkg/common"
	"github.com/hansbonini/gdtools/pkg/gdrom"
)

// pendingCmd tracks one submitted command through the virtual command
// server.
type pendingCmd struct {
	code   gdrom.CmdCode
	params any
	steps  int
	done   bool
	result gdrom.CmdCheck
	err1   int32
}

// Drive is an in-memory GD-ROM drive. It implements gdrom.Syscalls
// with the same asynchronous shape as the firmware: commands are
// queued by SendCommand, advanced by ExecServer and observed through
// CheckCommand.
//
// SendFailures and StepsPerCmd may be set before use to script
// submission failures and command latency.
type Drive struct {
	mu sync.Mutex

	sheet   *DiscSheet
	payload []byte
	toc     gdrom.TOC
	disc    gdrom.DiscType

	status    gdrom.Stat
	audio     byte
	mode      gdrom.SectorModeParams
	initsLeft int

	nextHandle gdrom.CmdHandle
	pending    map[gdrom.CmdHandle]*pendingCmd
	queue      []gdrom.CmdHandle

	// SendFailures makes the next N SendCommand calls fail. Test hook.
	SendFailures int
	// StepsPerCmd is how many ExecServer steps a command needs to
	// finish (minimum 1).
	StepsPerCmd int
}

// NewDrive builds a virtual drive for the given disc sheet, loading
// the data-track payload file if one is configured.
func NewDrive(sheet *DiscSheet) (*Drive, error) {
	disc, err := sheet.DiscType()
	if err != nil {
		return nil, err
	}

	d := &Drive{
		sheet:      sheet,
		toc:        sheet.TOC(),
		disc:       disc,
		status:     gdrom.StatStandby,
		audio:      gdrom.SubcodeAudioNoInfo,
		initsLeft:  sheet.InitsUntilReady,
		nextHandle: 1,
		pending:    make(map[gdrom.CmdHandle]*pendingCmd),
	}

	if sheet.Empty() {
		d.status = gdrom.StatNoDisc
	}

	if sheet.Payload != "" {
		d.payload, err = os.ReadFile(sheet.Payload)
		if err != nil {
			return nil, common.FormatError(common.ErrFailedToLoadPayload, err)
		}
	}

	return d, nil
}

// Init implements gdrom.Syscalls.
func (d *Drive) Init() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dropAll()
}

// Reset implements gdrom.Syscalls.
func (d *Drive) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dropAll()
	d.mode = gdrom.SectorModeParams{}
	d.initsLeft = d.sheet.InitsUntilReady
}

func (d *Drive) dropAll() {
	d.pending = make(map[gdrom.CmdHandle]*pendingCmd)
	d.queue = nil
}

// SendCommand implements gdrom.Syscalls.
func (d *Drive) SendCommand(cmd gdrom.CmdCode, params any) gdrom.CmdHandle {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.SendFailures > 0 {
		d.SendFailures--
		return 0
	}

	hnd := d.nextHandle
	d.nextHandle++

	steps := d.StepsPerCmd
	if steps < 1 {
		steps = 1
	}

	d.pending[hnd] = &pendingCmd{code: cmd, params: params, steps: steps}
	d.queue = append(d.queue, hnd)

	common.LogDebug(common.DebugCmdSubmitted, cmd, hnd)
	return hnd
}

// ExecServer implements gdrom.Syscalls. Each call advances the oldest
// unfinished command by one step and executes it once its steps are
// spent.
func (d *Drive) ExecServer() {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, hnd := range d.queue {
		p, ok := d.pending[hnd]
		if !ok || p.done {
			continue
		}
		p.steps--
		if p.steps <= 0 {
			d.execute(p)
			p.done = true
			common.LogDebug(common.DebugCmdExecuted, p.code, p.result)
		}
		return
	}
}

// CheckCommand implements gdrom.Syscalls. Reporting a terminal state
// consumes the handle, as on hardware.
func (d *Drive) CheckCommand(hnd gdrom.CmdHandle, st *gdrom.CmdCheckStatus) gdrom.CmdCheck {
	d.mu.Lock()
	defer d.mu.Unlock()

	p, ok := d.pending[hnd]
	if !ok {
		return gdrom.CmdNotFound
	}
	if !p.done {
		return gdrom.CmdProcessing
	}

	d.remove(hnd)
	st.Err1 = p.err1
	return p.result
}

// AbortCommand implements gdrom.Syscalls.
func (d *Drive) AbortCommand(hnd gdrom.CmdHandle) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.pending[hnd]; !ok {
		return -1
	}
	d.remove(hnd)
	common.LogDebug(common.DebugCmdAborted, hnd)
	return 0
}

func (d *Drive) remove(hnd gdrom.CmdHandle) {
	delete(d.pending, hnd)
	for i, h := range d.queue {
		if h == hnd {
			d.queue = append(d.queue[:i], d.queue[i+1:]...)
			break
		}
	}
}

// CheckDrive implements gdrom.Syscalls.
func (d *Drive) CheckDrive(params *gdrom.CheckDriveParams) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	params.Status = d.status
	params.DiscType = d.disc
	return 0
}

// SectorMode implements gdrom.Syscalls.
func (d *Drive) SectorMode(params *gdrom.SectorModeParams) int {
	d.mu.Lock()
	defer d.mu.Unlock()

	if params.RW == 1 {
		rw := params.RW
		*params = d.mode
		params.RW = rw
		return 0
	}

	d.mode = *params
	common.LogDebug(common.DebugSectorMode,
		int(params.SectorPart), int(params.TrackType), params.SectorSize)
	return 0
}

// Mode returns the currently negotiated sector mode.
func (d *Drive) Mode() gdrom.SectorModeParams {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.mode
}

// execute performs the side effects of a command and records its
// terminal state. Called with d.mu held.
func (d *Drive) execute(p *pendingCmd) {
	switch p.code {
	case gdrom.CmdInit:
		if d.sheet.Empty() {
			p.result = gdrom.CmdFailed
			p.err1 = 2 // no disc
			return
		}
		if d.initsLeft > 0 {
			d.initsLeft--
			common.LogDebug(common.DebugInitsUntilUp, d.initsLeft)
			p.result = gdrom.CmdFailed
			p.err1 = 6 // disc changed
			return
		}
		d.status = gdrom.StatPaused
		p.result = gdrom.CmdCompleted

	case gdrom.CmdGetTOC2:
		tp, ok := p.params.(*gdrom.TOCParams)
		if !ok || tp.Buffer == nil {
			p.result = gdrom.CmdFailed
			return
		}
		*tp.Buffer = d.toc
		p.result = gdrom.CmdCompleted

	case gdrom.CmdPIORead, gdrom.CmdDMARead:
		rp, ok := p.params.(*gdrom.ReadParams)
		if !ok || !d.readSectors(rp) {
			p.result = gdrom.CmdFailed
			return
		}
		d.status = gdrom.StatPaused
		p.result = gdrom.CmdCompleted

	case gdrom.CmdPlay, gdrom.CmdPlay2:
		d.status = gdrom.StatPlaying
		d.audio = gdrom.SubcodeAudioPlaying
		p.result = gdrom.CmdCompleted

	case gdrom.CmdPause:
		d.status = gdrom.StatPaused
		d.audio = gdrom.SubcodeAudioPaused
		p.result = gdrom.CmdCompleted

	case gdrom.CmdRelease:
		d.status = gdrom.StatPlaying
		d.audio = gdrom.SubcodeAudioPlaying
		p.result = gdrom.CmdCompleted

	case gdrom.CmdStop:
		d.status = gdrom.StatStandby
		d.audio = gdrom.SubcodeAudioEnded
		p.result = gdrom.CmdCompleted

	case gdrom.CmdGetSCD:
		sp, ok := p.params.(*gdrom.SubcodeParams)
		if !ok {
			p.result = gdrom.CmdFailed
			return
		}
		if len(sp.Buffer) >= 2 {
			sp.Buffer[0] = 0
			sp.Buffer[1] = d.audio
		}
		p.result = gdrom.CmdCompleted

	default:
		p.result = gdrom.CmdFailed
	}
}

// readSectors copies payload bytes for a read command, addressing the
// payload from the start of the data track at the negotiated sector
// size.
func (d *Drive) readSectors(rp *gdrom.ReadParams) bool {
	track := d.sheet.DataTrack()
	if track == nil || rp.StartSector < track.Start {
		return false
	}

	size := d.mode.SectorSize
	if size <= 0 {
		size = gdrom.SectorSizeData
	}

	offset := int(rp.StartSector-track.Start) * size
	length := int(rp.SectorCount) * size
	if offset+length > len(d.payload) || length > len(rp.Buffer) {
		return false
	}

	copy(rp.Buffer, d.payload[offset:offset+length])
	return true
}
