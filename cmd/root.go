// =============================================================================
// xmlsheets - Root Command
// =============================================================================
//
// Base command of the CLI. Subcommands:
//   xmlsheets extract   - Convert one NF-e XML file to a spreadsheet
//   xmlsheets serve     - Run the upload web form
//   xmlsheets version   - Display the application version
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file, overridable with the
// --config flag.
var cfgFile string

// verbose enables verbose output when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xmlsheets",
	Short: "Extract buyer and sale data from NF-e XML invoices into spreadsheets",
	Long: `xmlsheets reads Brazilian electronic tax invoice (NF-e) XML documents,
extracts the buyer and sale-line data and renders the result as an Excel
spreadsheet, one row per sold item.

Example Usage:
  xmlsheets extract --file nota.xml   # Convert a single invoice on disk
  xmlsheets serve                     # Run the upload form web server
  xmlsheets serve --listen :9090      # Serve on a custom address`,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
