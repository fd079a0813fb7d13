// Package cmd provides command-line interface for sector reads.
// This file contains the command that reads data sectors from a disc
// into a local file.
package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hansbonini/gdtools/pkg/common"
	"github.com/hansbonini/gdtools/pkg/gdrom"
	"github.com/spf13/cobra"
)

// readCmd reads sectors from the data track of a disc.
var readCmd = &cobra.Command{
	Use:   "read [start_fad] [count] [output_file]",
	Short: "Read data sectors from a disc into a file",
	Long: `Read data sectors from a disc into a file.

The drive is reinitialized with the requested sector size before
reading, then the sectors are read in PIO mode (or DMA with --dma) and
written to the output file. For DMA the total transfer length must be
a multiple of 32 bytes.

Examples:
  gdtools read 45150 16 out.bin --disc disc.yaml
  gdtools read 45150 16 out.bin --disc disc.yaml --dma --size 2352`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseFAD(args[0])
		if err != nil {
			return err
		}
		count, err := parseFAD(args[1])
		if err != nil {
			return err
		}
		outputFile := args[2]

		size, err := cmd.Flags().GetInt("size")
		if err != nil {
			return err
		}
		dma, err := cmd.Flags().GetBool("dma")
		if err != nil {
			return err
		}

		dev, _, err := openDevice(cmd)
		if err != nil {
			return err
		}

		if err := dev.SetSectorSize(size); err != nil {
			return common.FormatError(common.ErrFailedToInitDrive, err)
		}
		if size == gdrom.DefaultSectorSize {
			size = gdrom.SectorSizeData
		}

		mode := gdrom.ReadPIO
		if dma {
			mode = gdrom.ReadDMA
		}

		buf := make([]byte, int(count)*size)
		if err := dev.ReadSectorsEx(buf, start, count, mode); err != nil {
			return common.FormatError(common.ErrFailedToReadSectors, err)
		}

		if err := os.WriteFile(outputFile, buf, 0644); err != nil {
			return common.FormatError(common.ErrFailedToWriteOutput, err)
		}

		common.LogInfo(common.InfoSectorsRead, count, size, start)
		return nil
	},
}

// parseFAD parses a sector address or count argument.
func parseFAD(arg string) (uint32, error) {
	value, err := strconv.ParseInt(arg, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sector argument %q: %w", arg, err)
	}
	return common.SafeInt64ToUint32(value)
}

// init initializes the read command flags.
func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().Bool("dma", false, "Read in DMA mode instead of PIO")
	readCmd.Flags().Int("size", gdrom.DefaultSectorSize, "Sector size to negotiate (default: drive default)")
}
