package config

import (
	"os"
	"path/filepath"
)

const lockFileName = "config.lock"

// FileLock provides file-based locking for cross-process synchronization.
// It uses a separate lock file rather than locking the config file directly,
// so a reader never sees a half-written config from another process.
type FileLock struct {
	path string
	file *os.File
}

// NewFileLock creates a new FileLock for the given path.
// The lock file will be created in the same directory as the given path.
func NewFileLock(path string) *FileLock {
	lockPath := filepath.Join(filepath.Dir(path), lockFileName)
	return &FileLock{
		path: lockPath,
	}
}
