// =============================================================================
// xmlsheets - Configuration Module
// =============================================================================
//
// Loads the application configuration from a YAML file. The tool must run
// with zero setup, so a missing config file is not an error: defaults are
// applied for anything unset and the file may be absent entirely.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the global application configuration.
type Config struct {
	// OutputDir is where the extract command writes spreadsheets.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// ArchiveDir is where processed input files are moved when
	// ArchiveProcessed is enabled.
	// Default: "./archive"
	ArchiveDir string `yaml:"archive_dir"`

	// ArchiveProcessed moves the input XML into ArchiveDir after a
	// successful extract run. Default: false.
	ArchiveProcessed bool `yaml:"archive_processed"`

	// Server configures the upload web form.
	Server ServerConfig `yaml:"server"`
}

// ServerConfig holds the settings of the serve command.
type ServerConfig struct {
	// ListenAddr is the address the HTTP server binds to.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr"`

	// MaxUploadMB caps the size of an uploaded XML file in mebibytes.
	// Default: 8
	MaxUploadMB int64 `yaml:"max_upload_mb"`

	// SessionTTLMinutes is how long an extraction result stays available
	// for download after the preview is rendered.
	// Default: 15
	SessionTTLMinutes int `yaml:"session_ttl_minutes"`
}

// Load reads the configuration from path. A missing file yields the
// defaults; a present but unparseable or invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}
	if cfg.Server.MaxUploadMB == 0 {
		cfg.Server.MaxUploadMB = 8
	}
	if cfg.Server.SessionTTLMinutes == 0 {
		cfg.Server.SessionTTLMinutes = 15
	}
}

// validate rejects values the rest of the program cannot work with.
func validate(cfg *Config) error {
	if cfg.Server.MaxUploadMB < 0 {
		return fmt.Errorf("server.max_upload_mb must not be negative, got %d", cfg.Server.MaxUploadMB)
	}
	if cfg.Server.SessionTTLMinutes < 0 {
		return fmt.Errorf("server.session_ttl_minutes must not be negative, got %d", cfg.Server.SessionTTLMinutes)
	}
	return nil
}
