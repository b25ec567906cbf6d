package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// State classifies a destination directory before anything is written.
type State int

const (
	// StateEmpty covers both a missing directory and one with no entries.
	StateEmpty State = iota
	// StateNonEmpty means at least one entry exists.
	StateNonEmpty
)

func (s State) String() string {
	if s == StateEmpty {
		return "empty"
	}
	return "non-empty"
}

// Inspect reads the destination once. A missing directory is StateEmpty; any
// other read failure is returned wrapped in ErrInspect.
func Inspect(destination string) (State, error) {
	entries, err := os.ReadDir(destination)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return StateEmpty, nil
		}
		return StateEmpty, fmt.Errorf("%w %s: %w", ErrInspect, destination, err)
	}
	if len(entries) == 0 {
		return StateEmpty, nil
	}
	return StateNonEmpty, nil
}
