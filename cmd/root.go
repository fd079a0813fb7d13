// Package cmd provides command-line interface functionality for GDTools.
// GDTools is a collection of utilities for exercising the Dreamcast
// GD-ROM driver core against virtual drives described by YAML disc
// sheets.
package cmd

import (
	"os"

	"github.com/hansbonini/gdtools/pkg/common"
	"github.com/hansbonini/gdtools/pkg/gdrom"
	"github.com/hansbonini/gdtools/pkg/virtual"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the GDTools application.
var rootCmd = &cobra.Command{
	Use:   "gdtools",
	Short: "Tools for working with GD-ROM drives and disc images",
	Long: `GDTools - Utilities built on the Dreamcast GD-ROM driver core.

Every command operates on a virtual drive loaded from a YAML disc
sheet, which describes the disc type, the track layout and an optional
payload file backing the data track.

Currently supports:
  - drive commands (status / init / stop)
  - TOC inspection (dump tracks, locate the data track)
  - sector reads (PIO or DMA, selectable sector size)
  - CDDA playback control (play / pause / resume)

Examples:
  gdtools drive status --disc disc.yaml
  gdtools drive init --disc disc.yaml
  gdtools toc dump --disc disc.yaml --yaml toc.yaml
  gdtools read 45150 16 out.bin --disc disc.yaml
  gdtools cdda play 1 2 --repeat 3 --disc disc.yaml

Use 'gdtools [command] --help' for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command with flags and configuration settings.
func init() {
	rootCmd.PersistentFlags().String("disc", "disc.yaml", "Path to the YAML disc sheet")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
}

// openDevice loads the disc sheet selected by the --disc flag, builds a
// virtual drive for it and returns a driver device attached to that
// drive.
func openDevice(cmd *cobra.Command) (*gdrom.Device, *virtual.Drive, error) {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return nil, nil, err
	}
	common.SetVerboseMode(verbose)

	discPath, err := cmd.Flags().GetString("disc")
	if err != nil {
		return nil, nil, err
	}

	sheet, err := virtual.LoadDiscSheet(discPath)
	if err != nil {
		return nil, nil, err
	}

	drive, err := virtual.NewDrive(sheet)
	if err != nil {
		return nil, nil, err
	}

	return gdrom.NewDevice(drive), drive, nil
}
