package gdrom

import "testing"

func TestChangeDataType_Resolution(t *testing.T) {
	testCases := []struct {
		name      string
		part      SectorPart
		track     TrackType
		size      int
		disc      DiscType
		wantPart  SectorPart
		wantTrack TrackType
		wantSize  int
		wantQuery bool // whether the disc type should be consulted
	}{
		{
			name: "raw size defaults", part: SectorPartDefault,
			track: TrackTypeDefault, size: 2352, disc: DiscCDROMXA,
			wantPart: SectorPartWhole, wantTrack: TrackTypeAny, wantSize: 2352,
			wantQuery: false,
		},
		{
			name: "raw size explicit track kept", part: SectorPartDefault,
			track: TrackTypeCDDA, size: 2352, disc: DiscCDROM,
			wantPart: SectorPartWhole, wantTrack: TrackTypeCDDA, wantSize: 2352,
			wantQuery: false,
		},
		{
			name: "data size on XA disc", part: SectorPartDefault,
			track: TrackTypeDefault, size: 2048, disc: DiscCDROMXA,
			wantPart: SectorPartData, wantTrack: TrackTypeMode2Form1, wantSize: 2048,
			wantQuery: true,
		},
		{
			name: "data size on plain CD-ROM", part: SectorPartDefault,
			track: TrackTypeDefault, size: 2048, disc: DiscCDROM,
			wantPart: SectorPartData, wantTrack: TrackTypeMode1, wantSize: 2048,
			wantQuery: true,
		},
		{
			name: "default size resolves to 2048", part: SectorPartDefault,
			track: TrackTypeDefault, size: DefaultSectorSize, disc: DiscGDROM,
			wantPart: SectorPartData, wantTrack: TrackTypeMode1, wantSize: 2048,
			wantQuery: true,
		},
		{
			name: "explicit params pass through", part: SectorPartWhole,
			track: TrackTypeMode2, size: 2336, disc: DiscCDROMXA,
			wantPart: SectorPartWhole, wantTrack: TrackTypeMode2, wantSize: 2336,
			wantQuery: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeSyscalls{driveDisc: tc.disc}
			dev := newTestDevice(fake, nil)

			if err := dev.ChangeDataType(tc.part, tc.track, tc.size); err != nil {
				t.Fatalf("ChangeDataType() = %v, want nil", err)
			}

			applied := fake.modeParams
			if applied.RW != 0 {
				t.Errorf("applied RW = %d, want 0 (set)", applied.RW)
			}
			if applied.SectorPart != tc.wantPart {
				t.Errorf("applied part = 0x%04X, want 0x%04X", int(applied.SectorPart), int(tc.wantPart))
			}
			if applied.TrackType != tc.wantTrack {
				t.Errorf("applied track type = 0x%04X, want 0x%04X", int(applied.TrackType), int(tc.wantTrack))
			}
			if applied.SectorSize != tc.wantSize {
				t.Errorf("applied size = %d, want %d", applied.SectorSize, tc.wantSize)
			}

			queried := fake.driveCalls > 0
			if queried != tc.wantQuery {
				t.Errorf("disc type queried = %v, want %v", queried, tc.wantQuery)
			}
		})
	}
}

func TestChangeDataType_NeverAppliesSentinels(t *testing.T) {
	// Whatever the inputs, the applied mode must be fully resolved
	inputs := []struct {
		part  SectorPart
		track TrackType
		size  int
	}{
		{SectorPartDefault, TrackTypeDefault, DefaultSectorSize},
		{SectorPartDefault, TrackTypeDefault, 2352},
		{SectorPartDefault, TrackTypeDefault, 2048},
	}

	for _, in := range inputs {
		fake := &fakeSyscalls{driveDisc: DiscCDROM}
		dev := newTestDevice(fake, nil)

		if err := dev.ChangeDataType(in.part, in.track, in.size); err != nil {
			t.Fatalf("ChangeDataType(%v) = %v, want nil", in, err)
		}

		applied := fake.modeParams
		if applied.SectorPart == SectorPartDefault ||
			applied.TrackType == TrackTypeDefault ||
			applied.SectorSize == DefaultSectorSize {
			t.Errorf("ChangeDataType(%v) applied unresolved mode %+v", in, applied)
		}
	}
}

func TestChangeDataType_SyscallFailure(t *testing.T) {
	fake := &fakeSyscalls{modeResult: -1}
	dev := newTestDevice(fake, nil)

	if err := dev.ChangeDataType(SectorPartDefault, TrackTypeDefault, 2048); err == nil {
		t.Error("ChangeDataType() = nil, want error on sector mode failure")
	}
}
