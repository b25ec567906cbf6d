package scaffold

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/thingssdk/thingssdk-cli/internal/console"
	"github.com/thingssdk/thingssdk-cli/internal/devices"
	"github.com/thingssdk/thingssdk-cli/internal/prompt"
	"github.com/thingssdk/thingssdk-cli/internal/runtime"
	"github.com/thingssdk/thingssdk-cli/internal/serialport"
)

var (
	// ErrInspect is a destination read failure other than "does not exist".
	ErrInspect = errors.New("inspecting destination")
	// ErrDeclined means the user refused to overwrite existing files.
	ErrDeclined = errors.New("overwrite declined")
	// ErrUnrecognizedConfirmation means the overwrite answer was neither yes nor no.
	ErrUnrecognizedConfirmation = errors.New("unrecognized overwrite confirmation")
	// ErrTemplate means the runtime's template scripts could not be listed.
	ErrTemplate = errors.New("reading templates")
)

// Options carries everything one scaffold operation needs. The CLI builds it
// once from flags and config.
type Options struct {
	Destination string
	Runtime     runtime.Runtime
	Prompter    prompt.Prompter
	Lister      serialport.Lister
	Logger      *zap.Logger
	Console     *console.Printer
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// normalized cleans Destination so an empty path names the current directory
// that will actually be written, and the emptiness check sees the same place.
func (o Options) normalized() Options {
	o.Destination = filepath.Clean(o.Destination)
	return o
}

func (o Options) deviceBuilder() *devices.Builder {
	return &devices.Builder{
		Lister:   o.Lister,
		Prompter: o.Prompter,
		Logger:   o.logger(),
	}
}

// Result holds the outcome of a scaffold operation.
type Result struct {
	Destination string
	// Files are the written paths, relative to Destination.
	Files []string
	// DevicesWritten is false when the device capture failed.
	DevicesWritten bool
	Warnings       []string
}

// Run scaffolds a project into opts.Destination. A non-empty destination is
// only written after the user confirms; ErrDeclined and
// ErrUnrecognizedConfirmation are returned without touching the filesystem.
func Run(ctx context.Context, opts Options) (*Result, error) {
	opts = opts.normalized()
	logger := opts.logger().With(zap.String("destination", opts.Destination))

	state, err := Inspect(opts.Destination)
	if err != nil {
		return nil, err
	}
	logger.Debug("destination inspected", zap.Stringer("state", state))

	if state == StateNonEmpty {
		if err := confirmOverwrite(ctx, opts); err != nil {
			return nil, err
		}
		opts.Console.Info("You answered yes. Overwriting existing project files.")
	}

	return Materialize(ctx, opts)
}

func confirmOverwrite(ctx context.Context, opts Options) error {
	msg := fmt.Sprintf("Files already exist at %s.\nWould you like to overwrite the existing files?\nType y or n:", opts.Destination)
	answer, err := opts.Prompter.Line(ctx, msg)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnrecognizedConfirmation, err)
	}

	yes, err := prompt.ParseConfirmation(answer)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnrecognizedConfirmation, err)
	}
	if !yes {
		return ErrDeclined
	}
	return nil
}

// NextSteps returns the instructions printed after a successful scaffold.
func NextSteps(destination string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "To install the project dependencies:\n    cd %s && npm install\n", destination)
	fmt.Fprintf(&b, "To upload to your device:\n    cd %s && npm run push", destination)
	return b.String()
}
