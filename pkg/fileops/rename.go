package fileops

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// RenameDirectory renames the directory at currentPath to newName, keeping
// it inside the same parent directory. The from→to pair is reported on out
// in both modes; with dryRun set nothing on disk changes.
//
// The rename fails if the target name already exists, so a reconciliation
// never overwrites an unrelated directory.
func RenameDirectory(out io.Writer, currentPath, newName string, dryRun bool) error {
	parent := filepath.Dir(currentPath)
	if parent == currentPath {
		return fmt.Errorf("cannot get parent directory of '%s'", currentPath)
	}
	newPath := filepath.Join(parent, newName)

	currentDisplay := strings.TrimSuffix(currentPath, string(os.PathSeparator))
	newDisplay := strings.TrimSuffix(newPath, string(os.PathSeparator))

	if dryRun {
		fmt.Fprintf(out, "%s directory from '%s' to '%s'\n",
			color.New(color.FgYellow).Sprint("Would rename"), currentDisplay, newDisplay)
		return nil
	}

	fmt.Fprintf(out, "%s directory from '%s' to '%s'...\n",
		color.New(color.FgGreen).Sprint("Renaming"), currentDisplay, newDisplay)

	if _, err := os.Stat(newPath); err == nil {
		return fmt.Errorf("target path '%s' already exists", newDisplay)
	}

	if err := os.Rename(currentPath, newPath); err != nil {
		return fmt.Errorf("failed to rename directory: %w", err)
	}

	return nil
}

// SetSecurePermissions restricts a file to owner read/write (0600).
// Used for files under the config directory.
func SetSecurePermissions(path string) error {
	if err := os.Chmod(path, 0o600); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}
	return nil
}
