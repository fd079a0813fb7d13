// Package cmd provides command-line interface for TOC inspection.
// This file contains commands for dumping the table of contents of a
// disc and locating its data track.
package cmd

import (
	"fmt"
	"os"

	"github.com/hansbonini/gdtools/pkg/common"
	"github.com/hansbonini/gdtools/pkg/gdrom"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// tocTrackEntry is one decoded TOC track in the YAML dump.
type tocTrackEntry struct {
	Track int    `yaml:"track"`
	FAD   uint32 `yaml:"fad"`
	ADR   uint32 `yaml:"adr"`
	Ctrl  uint32 `yaml:"ctrl"`
	Data  bool   `yaml:"data"`
}

// tocDump is the YAML shape of a dumped TOC.
type tocDump struct {
	First        int             `yaml:"first"`
	Last         int             `yaml:"last"`
	LeadoutFAD   uint32          `yaml:"leadout_fad"`
	DataTrackFAD uint32          `yaml:"data_track_fad"`
	Tracks       []tocTrackEntry `yaml:"tracks"`
}

// tocCmd represents the parent command for TOC operations.
var tocCmd = &cobra.Command{
	Use:   "toc",
	Short: "Inspect the table of contents of a disc",
	Long: `Inspect the table of contents of a disc.

Commands:
  dump      Print the decoded TOC and the located data track

Examples:
  gdtools toc dump --disc disc.yaml
  gdtools toc dump --disc disc.yaml --yaml toc.yaml`,
}

// tocDumpCmd reads the TOC, prints the decoded tracks and reports the
// FAD of the data track. With --yaml it also writes the decoded TOC to
// a YAML file.
var tocDumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the decoded TOC and the located data track",
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, _, err := openDevice(cmd)
		if err != nil {
			return err
		}

		if err := dev.Reinit(); err != nil {
			return common.FormatError(common.ErrFailedToInitDrive, err)
		}

		var toc gdrom.TOC
		if err := dev.ReadTOC(&toc, gdrom.AreaLow); err != nil {
			return common.FormatError(common.ErrFailedToReadTOC, err)
		}

		dump := decodeTOC(&toc)

		fmt.Printf("Tracks %d-%d, leadout FAD %d\n",
			dump.First, dump.Last, dump.LeadoutFAD)
		for _, t := range dump.Tracks {
			kind := "audio"
			if t.Data {
				kind = "data"
			}
			fmt.Printf("  Track %02d: %-5s FAD %-8d (adr %d, ctrl %d)\n",
				t.Track, kind, t.FAD, t.ADR, t.Ctrl)
		}

		if dump.DataTrackFAD == 0 {
			common.LogWarn(common.ErrNoDataTrack)
		} else {
			common.LogInfo(common.InfoDataTrackAt, dump.DataTrackFAD)
		}

		yamlPath, err := cmd.Flags().GetString("yaml")
		if err != nil {
			return err
		}
		if yamlPath != "" {
			if err := writeTOCYAML(dump, yamlPath); err != nil {
				return common.FormatError(common.ErrFailedToDumpTOC, err)
			}
			common.LogInfo(common.InfoTOCExported, yamlPath)
		}

		return nil
	},
}

// decodeTOC turns the packed firmware TOC into its dump form using the
// entry accessors.
func decodeTOC(toc *gdrom.TOC) *tocDump {
	dump := &tocDump{
		First:        int(toc.First.Track()),
		Last:         int(toc.Last.Track()),
		LeadoutFAD:   toc.LeadoutSector.FAD(),
		DataTrackFAD: gdrom.LocateDataTrack(toc),
	}

	for i := dump.First; i <= dump.Last && i >= 1 && i <= 99; i++ {
		e := toc.Entry[i-1]
		dump.Tracks = append(dump.Tracks, tocTrackEntry{
			Track: i,
			FAD:   e.FAD(),
			ADR:   e.ADR(),
			Ctrl:  e.Ctrl(),
			Data:  e.Ctrl() == gdrom.CtrlData,
		})
	}

	return dump
}

// writeTOCYAML writes the decoded TOC to a YAML file.
func writeTOCYAML(dump *tocDump, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	encoder := yaml.NewEncoder(out)
	defer encoder.Close()
	return encoder.Encode(dump)
}

// init initializes the TOC command with its subcommands and flags.
func init() {
	rootCmd.AddCommand(tocCmd)
	tocCmd.AddCommand(tocDumpCmd)

	tocDumpCmd.Flags().String("yaml", "", "Also write the decoded TOC to this YAML file")
}
