package platform

import (
	"os"
	"runtime"
)

// Permission modes for files the CLI writes on the user's behalf.
const (
	FilePermPrivate os.FileMode = 0600
	DirPermPrivate  os.FileMode = 0700
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// Perm reports the permission bits of path. On Windows it always reports
// want, so callers comparing against an expected mode see a match.
func Perm(path string, want os.FileMode) (os.FileMode, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if runtime.GOOS == "windows" {
		return want, nil
	}
	return info.Mode().Perm(), nil
}
