// =============================================================================
// xmlsheets - Serve Command
// =============================================================================
//
// Runs the upload web form: a minimal page where the user uploads one NF-e
// XML file, previews the extracted data and downloads it as a spreadsheet.
//
// COMMAND USAGE:
//   xmlsheets serve [--listen :8080]
//
// The listen address comes from (highest wins): the PORT environment
// variable, the --listen flag, the config file. A .env file in the working
// directory is loaded when present.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tgfriperie/xmlsheets/internal/config"
	"github.com/tgfriperie/xmlsheets/internal/webui"
)

// listenAddr overrides the configured listen address.
var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the NF-e upload web form",
	Long: `The serve command starts an HTTP server with a single-page upload form.
Each uploaded XML document is extracted on the spot; on success a preview of
the buyer and the sold items is shown together with a download button for
the generated spreadsheet. Nothing is persisted between uploads.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(
		&listenAddr,
		"listen",
		"",
		"Listen address (overrides the configured server.listen_addr)",
	)
}

func runServe() error {
	// Optional; the server runs fine without a .env file.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if listenAddr != "" {
		cfg.Server.ListenAddr = listenAddr
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Server.ListenAddr = ":" + port
	}

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := webui.New(cfg)
	log.Printf("listening on %s", cfg.Server.ListenAddr)
	return srv.Run()
}
