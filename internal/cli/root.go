package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thingssdk/thingssdk-cli/internal/branding"
	"github.com/thingssdk/thingssdk-cli/internal/config"
	"github.com/thingssdk/thingssdk-cli/internal/console"
	"github.com/thingssdk/thingssdk-cli/internal/logging"
	"github.com/thingssdk/thingssdk-cli/internal/scaffold"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Per-invocation state, set up in PersistentPreRunE.
var (
	noColor bool
	logger  = zap.NewNop()
	stdout  *console.Printer
	stderr  *console.Printer
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds JavaScript projects for microcontrollers: a package.json,
starter scripts, and a devices.json describing how to reach the board over serial.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		s, err := config.Current()
		if err != nil {
			return err
		}
		color := s.Color && !noColor
		stdout = console.New(cmd.OutOrStdout(), color)
		stderr = console.New(cmd.ErrOrStderr(), color)

		l, err := logging.New(s.Log)
		if err != nil {
			return fmt.Errorf("configuring logging: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.SetVersionTemplate(branding.CLIName() + " version {{.Version}}\n")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	return run(os.Args[1:], os.Stdout, os.Stderr, version, commit, date)
}

func run(args []string, out, errOut io.Writer, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		reportError(out, errOut, err)
	}
	return err
}

// reportError prints the user-facing line for a failed command. Printers may
// be unset when the failure happened before PersistentPreRunE finished.
func reportError(out, errOut io.Writer, err error) {
	o, e := stdout, stderr
	if o == nil {
		o = console.New(out, false)
	}
	if e == nil {
		e = console.New(errOut, false)
	}

	switch {
	case errors.Is(err, scaffold.ErrDeclined):
		o.Warn("No project files were changed. Aborting new project creation.")
	case errors.Is(err, scaffold.ErrUnrecognizedConfirmation):
		e.Error("I don't understand your input. No project files were changed. Aborting new project creation.")
	default:
		e.Error("Error: %v", err)
	}
}
