// Package virtual provides an in-memory GD-ROM drive implementing the
// gdrom.Syscalls firmware boundary. It is configured from a YAML disc
// sheet describing the track layout, and optionally serves data-track
// sectors from a payload file. The CLI and end-to-end tests run the
// driver core against it instead of real hardware.
package virtual

import (
	"fmt"
	"os"

	"github.com/hansbonini/gdtools/pkg/common"
	"github.com/hansbonini/gdtools/pkg/gdrom"
	"gopkg.in/yaml.v3"
)

// TrackSheet describes one track of a virtual disc.
type TrackSheet struct {
	Number  int    `yaml:"number"`  // Track number (1-99)
	Type    string `yaml:"type"`    // "audio" or "data"
	Start   uint32 `yaml:"start"`   // First FAD of the track
	Sectors uint32 `yaml:"sectors"` // Track length in sectors
}

// IsData reports whether the track is a data track.
func (t *TrackSheet) IsData() bool {
	return t.Type == "data"
}

// DiscSheet is the YAML description of a virtual disc.
type DiscSheet struct {
	Name            string       `yaml:"name"`
	Type            string       `yaml:"type"`                        // cdda, cdrom, cdrom-xa, cdi, gdrom, or none
	Payload         string       `yaml:"payload,omitempty"`           // File backing the data track
	InitsUntilReady int          `yaml:"inits_until_ready,omitempty"` // INIT commands needed before the disc settles
	Tracks          []TrackSheet `yaml:"tracks"`
}

// LoadDiscSheet reads and validates a disc sheet from a YAML file.
func LoadDiscSheet(path string) (*DiscSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToLoadDiscSheet, err)
	}

	sheet := &DiscSheet{}
	if err := yaml.Unmarshal(data, sheet); err != nil {
		return nil, common.FormatError(common.ErrFailedToParseYAML, err)
	}

	for i := range sheet.Tracks {
		t := &sheet.Tracks[i]
		if t.Number < 1 || t.Number > 99 {
			return nil, fmt.Errorf("%s: track %d", common.ErrTrackOutOfRange, t.Number)
		}
		common.LogDebug(common.DebugDiscSheetTrack, t.Number, t.Type, t.Start, t.Sectors)
	}

	if _, err := sheet.DiscType(); err != nil {
		return nil, err
	}

	return sheet, nil
}

// DiscType maps the sheet's type string onto the firmware disc type
// codes. The "none" (or empty) type models an empty drive.
func (s *DiscSheet) DiscType() (gdrom.DiscType, error) {
	switch s.Type {
	case "cdda", "", "none":
		return gdrom.DiscCDDA, nil
	case "cdrom":
		return gdrom.DiscCDROM, nil
	case "cdrom-xa":
		return gdrom.DiscCDROMXA, nil
	case "cdi":
		return gdrom.DiscCDI, nil
	case "gdrom":
		return gdrom.DiscGDROM, nil
	default:
		return gdrom.DiscFail, fmt.Errorf("%s: %q", common.ErrUnknownDiscType, s.Type)
	}
}

// Empty reports whether the sheet models an empty drive.
func (s *DiscSheet) Empty() bool {
	return s.Type == "none" || len(s.Tracks) == 0
}

// DataTrack returns the highest-numbered data track, or nil if the
// sheet has none.
func (s *DiscSheet) DataTrack() *TrackSheet {
	var found *TrackSheet
	for i := range s.Tracks {
		t := &s.Tracks[i]
		if t.IsData() && (found == nil || t.Number > found.Number) {
			found = t
		}
	}
	return found
}

// TOC builds the firmware TOC for the sheet, packing each track into
// the 32-bit entry format (control nibble, ADR nibble, FAD).
func (s *DiscSheet) TOC() gdrom.TOC {
	var toc gdrom.TOC

	first, last := 0, 0
	var leadout uint32

	for i := range s.Tracks {
		t := &s.Tracks[i]

		ctrl := uint32(0)
		if t.IsData() {
			ctrl = gdrom.CtrlData
		}
		toc.Entry[t.Number-1] = packEntry(ctrl, 1, t.Start)

		if first == 0 || t.Number < first {
			first = t.Number
		}
		if t.Number > last {
			last = t.Number
		}
		if end := t.Start + t.Sectors; end > leadout {
			leadout = end
		}
	}

	firstCtrl := entryCtrl(&toc, first)
	lastCtrl := entryCtrl(&toc, last)
	toc.First = packSummary(firstCtrl, 1, uint32(first))
	toc.Last = packSummary(lastCtrl, 1, uint32(last))
	toc.LeadoutSector = packEntry(lastCtrl, 1, leadout)

	return toc
}

func entryCtrl(toc *gdrom.TOC, track int) uint32 {
	if track < 1 || track > 99 {
		return 0
	}
	return toc.Entry[track-1].Ctrl()
}

// packEntry packs a full TOC entry: control and ADR nibbles plus a
// 24-bit FAD.
func packEntry(ctrl, adr, fad uint32) gdrom.TOCEntry {
	return gdrom.TOCEntry(ctrl<<28 | adr<<24 | fad&0x00ffffff)
}

// packSummary packs a first/last summary entry, which carries the
// track number in bits 16-23 instead of a FAD.
func packSummary(ctrl, adr, track uint32) gdrom.TOCEntry {
	return gdrom.TOCEntry(ctrl<<28 | adr<<24 | (track&0xff)<<16)
}
