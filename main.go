// =============================================================================
// xmlsheets - Main Entry Point
// =============================================================================
//
// CLI entry point. Command definitions live in cmd/ (Cobra), core logic in
// internal/ and shared utilities in pkg/.
//
// USAGE:
//   xmlsheets extract --file nota.xml  - Convert one NF-e XML to a spreadsheet
//   xmlsheets serve                    - Run the upload web form
//   xmlsheets version                  - Display the application version
//
// =============================================================================

package main

import (
	"github.com/tgfriperie/xmlsheets/cmd"
)

func main() {
	cmd.Execute()
}
