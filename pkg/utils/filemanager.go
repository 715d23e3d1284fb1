// =============================================================================
// xmlsheets - File Manager Utility
// =============================================================================
//
// File placement for the extract command: output directory handling and
// optional archival of processed input files.
//
// ARCHIVAL STRATEGY:
//   - Spreadsheets are written to the output directory
//   - Processed input XML files are moved to the archive directory with a
//     uuid suffix so repeated names never collide
//   - Failed inputs stay where they are
//
// =============================================================================

package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// FileManager handles file operations for the extract command.
type FileManager struct {
	// OutputDir is where generated spreadsheets are written.
	OutputDir string

	// ArchiveDir is where processed input files are moved.
	ArchiveDir string
}

// NewFileManager creates a FileManager for the given directories.
func NewFileManager(outputDir, archiveDir string) *FileManager {
	return &FileManager{
		OutputDir:  outputDir,
		ArchiveDir: archiveDir,
	}
}

// EnsureDirectories creates the managed directories if they don't exist.
func (fm *FileManager) EnsureDirectories() error {
	for _, dir := range []string{fm.OutputDir, fm.ArchiveDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// WriteOutput writes data under the output directory and returns the full
// path of the written file.
func (fm *FileManager) WriteOutput(name string, data []byte) (string, error) {
	path := filepath.Join(fm.OutputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// ArchiveInput moves a processed input file into the archive directory,
// inserting a short uuid before the extension. Falls back to copy+remove
// when a rename crosses filesystems.
func (fm *FileManager) ArchiveInput(path string) (string, error) {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	dest := filepath.Join(fm.ArchiveDir, fmt.Sprintf("%s_%s%s", stem, uuid.NewString()[:8], ext))

	if err := os.Rename(path, dest); err == nil {
		return dest, nil
	}

	if err := copyFile(path, dest); err != nil {
		return "", fmt.Errorf("failed to archive %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return "", fmt.Errorf("failed to remove archived input %s: %w", path, err)
	}
	return dest, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
