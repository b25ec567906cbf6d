package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/thingssdk/thingssdk-cli/internal/config"
	"github.com/thingssdk/thingssdk-cli/internal/devices"
	"github.com/thingssdk/thingssdk-cli/internal/prompt"
	"github.com/thingssdk/thingssdk-cli/internal/runtime"
	"github.com/thingssdk/thingssdk-cli/internal/scaffold"
	"github.com/thingssdk/thingssdk-cli/internal/serialport"
)

// Device flags shared by new and devices. --runtime is read through viper.
var (
	devicePort string
	deviceBaud string
	newYes     bool
)

func init() {
	addDeviceFlags(newCmd)
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Overwrite existing files without asking")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new device project",
	Long: `Create a new project at <path> for the selected runtime.

The directory is created if needed. When it already contains files you are
asked before anything is overwritten. The serial port and baud rate for
devices.json are picked from the detected ports unless given as flags.

Examples:
  thingssdk new blinky
  thingssdk new weather --runtime espruino --port /dev/ttyUSB0 --baud 115200`,
	Args:    cobra.ExactArgs(1),
	PreRunE: bindRuntimeFlag,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := deviceOptions(args[0])
		if err != nil {
			return err
		}
		if newYes {
			opts.Prompter = &prompt.Scripted{Lines: []string{"y"}, Fallback: opts.Prompter}
		}

		result, err := scaffold.Run(cmd.Context(), opts)
		if err != nil {
			return err
		}

		printResult(result)
		stdout.Help("%s", scaffold.NextSteps(result.Destination))
		return nil
	},
}

func addDeviceFlags(cmd *cobra.Command) {
	cmd.Flags().String("runtime", runtime.DefaultName,
		"Device runtime: "+strings.Join(runtimeChoices(), ", "))
	cmd.Flags().StringVar(&devicePort, "port", "", "Serial port to use instead of asking")
	cmd.Flags().StringVar(&deviceBaud, "baud", "", "Baud rate to use instead of asking: "+strings.Join(devices.BaudRates, ", "))
}

// runtimeChoices returns the registered runtimes that ship project templates.
func runtimeChoices() []string {
	templates := scaffold.Runtimes()
	var names []string
	for _, name := range runtime.Names() {
		if slices.Contains(templates, name) {
			names = append(names, name)
		}
	}
	return names
}

// bindRuntimeFlag lets an explicit --runtime override the configured default.
func bindRuntimeFlag(cmd *cobra.Command, args []string) error {
	return viper.BindPFlag(config.KeyRuntime, cmd.Flags().Lookup("runtime"))
}

// deviceOptions assembles scaffold options for dest from flags and config.
func deviceOptions(dest string) (scaffold.Options, error) {
	rt, err := runtime.Lookup(config.Get(config.KeyRuntime))
	if err != nil {
		return scaffold.Options{}, err
	}

	if deviceBaud != "" && !slices.Contains(devices.BaudRates, deviceBaud) {
		return scaffold.Options{}, fmt.Errorf("--baud must be one of %s, got %q", strings.Join(devices.BaudRates, ", "), deviceBaud)
	}

	var lister serialport.Lister = serialport.NewSystemLister(logger)
	answers := map[string]string{}
	if devicePort != "" {
		lister = serialport.StaticLister{devicePort}
		answers[devices.QuestionPort] = devicePort
	}
	if deviceBaud != "" {
		answers[devices.QuestionBaud] = deviceBaud
	}

	return scaffold.Options{
		Destination: dest,
		Runtime:     rt,
		Prompter: &prompt.Scripted{
			Answers:  answers,
			Fallback: prompt.NewSurveyPrompter(prompt.DefaultSurveyIO),
		},
		Lister:  lister,
		Logger:  logger,
		Console: stdout,
	}, nil
}

func printResult(result *scaffold.Result) {
	stdout.Info("Created project at %s", result.Destination)
	for _, f := range result.Files {
		stdout.Plain("  %s", f)
	}
	if len(result.Warnings) > 0 {
		stdout.Warn("\nWarnings:")
		for _, w := range result.Warnings {
			stdout.Warn("  - %s", w)
		}
	}
	if !result.DevicesWritten {
		stdout.Warn("Run '%s devices %s' once the board is connected.", rootCmd.Name(), result.Destination)
	}
}
