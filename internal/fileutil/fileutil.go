package fileutil

import (
	"fmt"
	"os"
)

// WriteFileMode writes data to path as a whole-file write and ensures the
// final mode even when the file already existed with different permissions.
// There is no partial-write recovery; an interrupted write leaves a truncated
// file for the next forced run to replace.
func WriteFileMode(path string, data []byte, mode os.FileMode) error {
	if err := os.WriteFile(path, data, mode); err != nil {
		return err
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("chmod %q: %w", path, err)
	}
	return nil
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
