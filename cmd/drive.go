// Package cmd provides command-line interface for drive control.
// This file contains commands for querying and changing the state of
// the GD-ROM drive itself.
package cmd

import (
	"fmt"

	"github.com/hansbonini/gdtools/pkg/common"
	"github.com/spf13/cobra"
)

// driveCmd represents the parent command for all drive operations.
var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Query and control the GD-ROM drive",
	Long: `Query and control the GD-ROM drive.

Commands:
  status    Report the drive status and disc type
  init      (Re)initialize the drive and negotiate the sector mode
  stop      Spin the disc down

Examples:
  gdtools drive status --disc disc.yaml
  gdtools drive init --disc disc.yaml
  gdtools drive stop --disc disc.yaml`,
}

// driveStatusCmd reports the current drive status and disc type.
var driveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report the drive status and disc type",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, _, err := openDevice(cmd)
		if err != nil {
			return err
		}

		status, disc, err := dev.GetStatus()
		if err != nil {
			return common.FormatError(common.ErrFailedToQueryDrive, err)
		}

		fmt.Printf("Status:    %s\n", status)
		fmt.Printf("Disc type: %s\n", disc)
		return nil
	},
}

// driveInitCmd reinitializes the drive, waiting out a disc change and
// negotiating the default sector mode.
var driveInitCmd = &cobra.Command{
	Use:   "init",
	Short: "(Re)initialize the drive",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, drive, err := openDevice(cmd)
		if err != nil {
			return err
		}

		if err := dev.Initialize(); err != nil {
			return common.FormatError(common.ErrFailedToInitDrive, err)
		}

		mode := drive.Mode()
		common.LogInfo(common.InfoDriveInitialized)
		fmt.Printf("Sector mode: part=0x%04X type=0x%04X size=%d\n",
			int(mode.SectorPart), int(mode.TrackType), mode.SectorSize)
		return nil
	},
}

// driveStopCmd spins the disc down.
var driveStopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Spin the disc down",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, _, err := openDevice(cmd)
		if err != nil {
			return err
		}

		if err := dev.SpinDown(); err != nil {
			return err
		}

		common.LogInfo(common.InfoDriveStopped)
		return nil
	},
}

// init initializes the drive command with its subcommands.
func init() {
	rootCmd.AddCommand(driveCmd)
	driveCmd.AddCommand(driveStatusCmd)
	driveCmd.AddCommand(driveInitCmd)
	driveCmd.AddCommand(driveStopCmd)
}
