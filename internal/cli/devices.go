package cli

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thingssdk/thingssdk-cli/internal/config"
	"github.com/thingssdk/thingssdk-cli/internal/manifest"
	"github.com/thingssdk/thingssdk-cli/internal/runtime"
	"github.com/thingssdk/thingssdk-cli/internal/scaffold"
)

func init() {
	addDeviceFlags(devicesCmd)
	rootCmd.AddCommand(devicesCmd)
}

var devicesCmd = &cobra.Command{
	Use:   "devices [path]",
	Short: "Select the serial port for an existing project",
	Long: `Detect serial ports again and rewrite devices.json for the project at
[path] (default: current directory).

The runtime is taken from the project's package.json engines field when it
names exactly one registered runtime, otherwise from --runtime.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindRuntimeFlag,
	RunE: func(cmd *cobra.Command, args []string) error {
		dest := "."
		if len(args) == 1 {
			dest = args[0]
		}

		for _, w := range packageWarnings(dest) {
			stdout.Warn("  - %s", w)
		}
		if name, ok := projectRuntime(dest); ok && !cmd.Flags().Changed("runtime") {
			config.SetOverride(config.KeyRuntime, name)
		}

		opts, err := deviceOptions(dest)
		if err != nil {
			return err
		}

		result, err := scaffold.CaptureDevices(cmd.Context(), opts)
		if err != nil {
			return err
		}

		stdout.Info("Wrote %s", filepath.Join(result.Destination, result.Files[0]))
		for _, w := range result.Warnings {
			stdout.Warn("  - %s", w)
		}
		return nil
	},
}

// packageWarnings reports schema problems in an existing package.json. A
// missing or unreadable file yields none; projectRuntime logs those.
func packageWarnings(dest string) []string {
	res, err := manifest.ValidatePackageFile(filepath.Join(dest, "package.json"))
	if err != nil {
		logger.Debug("package.json not validated", zap.Error(err))
		return nil
	}
	var out []string
	for _, issue := range res.Issues {
		out = append(out, "package.json: "+issue.String())
	}
	return out
}

// projectRuntime reads the runtime from an existing package.json.
func projectRuntime(dest string) (string, bool) {
	pkg, err := manifest.ReadPackage(filepath.Join(dest, "package.json"))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logger.Warn("could not read package.json", zap.Error(err))
		}
		return "", false
	}
	if len(pkg.Engines) != 1 {
		return "", false
	}
	for name := range pkg.Engines {
		if _, err := runtime.Lookup(name); err != nil {
			logger.Warn("package.json names an unregistered runtime", zap.String("runtime", name))
			return "", false
		}
		return name, true
	}
	return "", false
}
