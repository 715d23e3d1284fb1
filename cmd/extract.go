// =============================================================================
// xmlsheets - Extract Command
// =============================================================================
//
// Converts a single NF-e XML file on disk into an XLSX spreadsheet.
//
// COMMAND USAGE:
//   xmlsheets extract --file nota.xml [--out ./output]
//
// PIPELINE:
//   1. Load configuration
//   2. Read the input XML
//   3. Extract the line records
//   4. Serialize them to a spreadsheet
//   5. Write the spreadsheet to the output directory
//   6. Optionally archive the processed input
//
// One invocation handles exactly one invoice document.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tgfriperie/xmlsheets/internal/config"
	"github.com/tgfriperie/xmlsheets/internal/exporter"
	"github.com/tgfriperie/xmlsheets/internal/nfe"
	"github.com/tgfriperie/xmlsheets/pkg/utils"
)

// inputFile is the NF-e XML file to convert.
var inputFile string

// outDir overrides the configured output directory.
var outDir string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Convert an NF-e XML file to an Excel spreadsheet",
	Long: `The extract command reads one NF-e XML document, extracts the buyer and
sale-line data and writes a spreadsheet named dados_nfe_<number>.xlsx to the
output directory, one row per sold item.

On error the input file is left untouched and nothing is written.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract()
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVar(
		&inputFile,
		"file",
		"",
		"Path to the NF-e XML file to convert",
	)
	extractCmd.Flags().StringVar(
		&outDir,
		"out",
		"",
		"Output directory (overrides the configured output_dir)",
	)
	extractCmd.MarkFlagRequired("file")
}

func runExtract() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if outDir != "" {
		cfg.OutputDir = outDir
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	records, err := nfe.Extract(data)
	if err != nil {
		return fmt.Errorf("failed to process %s: %w", filepath.Base(inputFile), err)
	}
	if len(records) == 0 {
		return fmt.Errorf("no line items found in %s", filepath.Base(inputFile))
	}

	blob, err := exporter.ToSpreadsheet(records)
	if err != nil {
		return fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	fm := utils.NewFileManager(cfg.OutputDir, cfg.ArchiveDir)
	if err := fm.EnsureDirectories(); err != nil {
		return err
	}

	outPath, err := fm.WriteOutput(exporter.Filename(records[0].NFNumber), blob)
	if err != nil {
		return err
	}

	fmt.Printf("  ✓ %s -> %s (%d item(s))\n", filepath.Base(inputFile), outPath, len(records))

	if cfg.ArchiveProcessed {
		archived, err := fm.ArchiveInput(inputFile)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Printf("  archived input as %s\n", archived)
		}
	}

	return nil
}
