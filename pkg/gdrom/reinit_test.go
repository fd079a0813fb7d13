package gdrom

import (
	"errors"
	"testing"
)

func TestReinit_RetriesWhileDiscChanges(t *testing.T) {
	fake := &fakeSyscalls{
		checks: []checkResult{
			{state: CmdFailed, err1: 6}, // disc changed
			{state: CmdFailed, err1: 6}, // still settling
			{state: CmdCompleted},
		},
		driveDisc: DiscCDROM,
	}
	dev := newTestDevice(fake, nil)

	if err := dev.Reinit(); err != nil {
		t.Fatalf("Reinit() = %v, want nil", err)
	}

	if len(fake.sentCmds) != 3 {
		t.Fatalf("submitted %d commands, want 3 (INIT retried twice)", len(fake.sentCmds))
	}
	for i, cmd := range fake.sentCmds {
		if cmd != CmdInit {
			t.Errorf("sentCmds[%d] = %d, want CmdInit", i, cmd)
		}
	}
	if fake.modeCalls != 1 {
		t.Errorf("sector mode applied %d times, want 1", fake.modeCalls)
	}
}

func TestReinit_ShortCircuits(t *testing.T) {
	testCases := []struct {
		name  string
		check checkResult
		want  error
	}{
		{"no disc", checkResult{state: CmdFailed, err1: 2}, ErrNoDisc},
		{"system error", checkResult{state: CmdFailed, err1: 9}, ErrSys},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fake := &fakeSyscalls{checks: []checkResult{tc.check}}
			dev := newTestDevice(fake, nil)

			err := dev.Reinit()
			if !errors.Is(err, tc.want) {
				t.Fatalf("Reinit() = %v, want %v", err, tc.want)
			}
			if fake.modeCalls != 0 {
				t.Errorf("sector mode applied %d times after %v, want 0", fake.modeCalls, tc.want)
			}
		})
	}
}

func TestReinit_TimeoutShortCircuits(t *testing.T) {
	fake := &fakeSyscalls{
		checks: []checkResult{{state: CmdProcessing}},
	}
	clk := &fakeClock{step: 4000}
	dev := newTestDevice(fake, clk)

	err := dev.Reinit()
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("Reinit() = %v, want ErrTimeout", err)
	}
	if fake.modeCalls != 0 {
		t.Errorf("sector mode applied %d times after timeout, want 0", fake.modeCalls)
	}
	if fake.abortCalls != 1 {
		t.Errorf("AbortCommand called %d times, want 1", fake.abortCalls)
	}
}

func TestReinitEx_ForwardsRequestedMode(t *testing.T) {
	fake := &fakeSyscalls{
		checks:    []checkResult{{state: CmdCompleted}},
		driveDisc: DiscCDROMXA,
	}
	dev := newTestDevice(fake, nil)

	if err := dev.ReinitEx(SectorPartWhole, TrackTypeMode2, 2336); err != nil {
		t.Fatalf("ReinitEx() = %v, want nil", err)
	}

	applied := fake.modeParams
	if applied.SectorPart != SectorPartWhole || applied.TrackType != TrackTypeMode2 || applied.SectorSize != 2336 {
		t.Errorf("applied mode = %+v, want whole/mode2/2336", applied)
	}
}

func TestSetSectorSize(t *testing.T) {
	fake := &fakeSyscalls{
		checks:    []checkResult{{state: CmdCompleted}},
		driveDisc: DiscCDROM,
	}
	dev := newTestDevice(fake, nil)

	if err := dev.SetSectorSize(2352); err != nil {
		t.Fatalf("SetSectorSize() = %v, want nil", err)
	}
	if fake.modeParams.SectorSize != 2352 {
		t.Errorf("applied size = %d, want 2352", fake.modeParams.SectorSize)
	}
	if fake.modeParams.SectorPart != SectorPartWhole {
		t.Errorf("applied part = 0x%04X, want whole sector", int(fake.modeParams.SectorPart))
	}
}
