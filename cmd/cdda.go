// Package cmd provides command-line interface for CDDA playback.
// This file contains commands controlling audio playback on the drive.
package cmd

import (
	"github.com/hansbonini/gdtools/pkg/common"
	"github.com/hansbonini/gdtools/pkg/gdrom"
	"github.com/spf13/cobra"
)

// cddaCmd represents the parent command for CDDA playback operations.
var cddaCmd = &cobra.Command{
	Use:   "cdda",
	Short: "Control CDDA audio playback",
	Long: `Control CDDA audio playback.

Commands:
  play      Start playback of tracks or sectors
  pause     Pause playback
  resume    Resume playback after a pause

Examples:
  gdtools cdda play 1 2 --disc disc.yaml
  gdtools cdda play 150 4650 --sectors --repeat 3 --disc disc.yaml
  gdtools cdda pause --disc disc.yaml`,
}

// cddaPlayCmd starts CDDA playback. Start and end are track numbers,
// or sector addresses with --sectors. Repeat counts above 15 are
// clamped by the driver (15 means infinite).
var cddaPlayCmd = &cobra.Command{
	Use:   "play [start] [end]",
	Short: "Start CDDA playback",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseFAD(args[0])
		if err != nil {
			return err
		}
		end, err := parseFAD(args[1])
		if err != nil {
			return err
		}

		repeat, err := cmd.Flags().GetUint32("repeat")
		if err != nil {
			return err
		}
		sectors, err := cmd.Flags().GetBool("sectors")
		if err != nil {
			return err
		}

		dev, _, err := openDevice(cmd)
		if err != nil {
			return err
		}

		mode := gdrom.CDDATracks
		if sectors {
			mode = gdrom.CDDASectors
		}

		if err := dev.CDDAPlay(start, end, repeat, mode); err != nil {
			return err
		}

		common.LogInfo(common.InfoPlaybackStarted, start, end, repeat)
		return nil
	},
}

// cddaPauseCmd pauses CDDA playback.
var cddaPauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause CDDA playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, _, err := openDevice(cmd)
		if err != nil {
			return err
		}

		if err := dev.CDDAPause(); err != nil {
			return err
		}

		common.LogInfo(common.InfoPlaybackPaused)
		return nil
	},
}

// cddaResumeCmd resumes CDDA playback after a pause.
var cddaResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Resume CDDA playback",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, _, err := openDevice(cmd)
		if err != nil {
			return err
		}

		if err := dev.CDDAResume(); err != nil {
			return err
		}

		common.LogInfo(common.InfoPlaybackResumed)
		return nil
	},
}

// init initializes the CDDA command with its subcommands and flags.
func init() {
	rootCmd.AddCommand(cddaCmd)
	cddaCmd.AddCommand(cddaPlayCmd)
	cddaCmd.AddCommand(cddaPauseCmd)
	cddaCmd.AddCommand(cddaResumeCmd)

	cddaPlayCmd.Flags().Uint32("repeat", 0, "Number of times to repeat (0-15, 15 = infinite)")
	cddaPlayCmd.Flags().Bool("sectors", false, "Interpret start/end as sector addresses")
}
