package virtual

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hansbonini/gdtools/pkg/gdrom"
)

const sampleSheet = `name: sample disc
type: cdrom-xa
inits_until_ready: 1
tracks:
  - number: 1
    type: audio
    start: 150
    sectors: 4500
  - number: 2
    type: data
    start: 45150
    sectors: 1024
`

func writeSheet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disc.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing sheet: %v", err)
	}
	return path
}

func TestLoadDiscSheet(t *testing.T) {
	sheet, err := LoadDiscSheet(writeSheet(t, sampleSheet))
	if err != nil {
		t.Fatalf("LoadDiscSheet() = %v, want nil", err)
	}

	if sheet.Name != "sample disc" {
		t.Errorf("name = %q, want %q", sheet.Name, "sample disc")
	}
	if sheet.InitsUntilReady != 1 {
		t.Errorf("inits_until_ready = %d, want 1", sheet.InitsUntilReady)
	}
	if len(sheet.Tracks) != 2 {
		t.Fatalf("tracks = %d, want 2", len(sheet.Tracks))
	}

	disc, err := sheet.DiscType()
	if err != nil {
		t.Fatalf("DiscType() = %v", err)
	}
	if disc != gdrom.DiscCDROMXA {
		t.Errorf("disc type = %v, want CD-ROM XA", disc)
	}
}

func TestLoadDiscSheet_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{"track zero", "tracks:\n  - number: 0\n    type: data\n"},
		{"track hundred", "tracks:\n  - number: 100\n    type: data\n"},
		{"unknown disc type", "type: dvd\n"},
		{"malformed yaml", "tracks: ["},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadDiscSheet(writeSheet(t, tc.content)); err == nil {
				t.Error("LoadDiscSheet() = nil, want error")
			}
		})
	}
}

func TestLoadDiscSheet_MissingFile(t *testing.T) {
	if _, err := LoadDiscSheet(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadDiscSheet() = nil, want error for missing file")
	}
}

func TestDiscSheet_TOC(t *testing.T) {
	sheet, err := LoadDiscSheet(writeSheet(t, sampleSheet))
	if err != nil {
		t.Fatalf("LoadDiscSheet() = %v", err)
	}

	toc := sheet.TOC()

	if got := toc.First.Track(); got != 1 {
		t.Errorf("first track = %d, want 1", got)
	}
	if got := toc.Last.Track(); got != 2 {
		t.Errorf("last track = %d, want 2", got)
	}

	audio := toc.Entry[0]
	if audio.Ctrl() != 0 || audio.FAD() != 150 {
		t.Errorf("track 1 = ctrl %d fad %d, want ctrl 0 fad 150", audio.Ctrl(), audio.FAD())
	}

	data := toc.Entry[1]
	if data.Ctrl() != gdrom.CtrlData || data.FAD() != 45150 {
		t.Errorf("track 2 = ctrl %d fad %d, want ctrl 4 fad 45150", data.Ctrl(), data.FAD())
	}

	// Leadout is the end of the furthest track
	if got := toc.LeadoutSector.FAD(); got != 45150+1024 {
		t.Errorf("leadout = %d, want %d", got, 45150+1024)
	}

	if got := gdrom.LocateDataTrack(&toc); got != 45150 {
		t.Errorf("LocateDataTrack() = %d, want 45150", got)
	}
}

func TestDiscSheet_DataTrack(t *testing.T) {
	sheet := &DiscSheet{
		Type: "gdrom",
		Tracks: []TrackSheet{
			{Number: 1, Type: "data", Start: 150},
			{Number: 2, Type: "audio", Start: 4650},
			{Number: 3, Type: "data", Start: 45150},
		},
	}

	track := sheet.DataTrack()
	if track == nil {
		t.Fatal("DataTrack() = nil, want track 3")
	}
	if track.Number != 3 {
		t.Errorf("DataTrack().Number = %d, want 3 (highest data track)", track.Number)
	}
}

func TestDiscSheet_Empty(t *testing.T) {
	if !(&DiscSheet{Type: "none"}).Empty() {
		t.Error("sheet with type none should be empty")
	}
	if !(&DiscSheet{Type: "cdrom"}).Empty() {
		t.Error("sheet without tracks should be empty")
	}
	if (&DiscSheet{Type: "cdrom", Tracks: []TrackSheet{{Number: 1, Type: "data"}}}).Empty() {
		t.Error("sheet with tracks should not be empty")
	}
}
