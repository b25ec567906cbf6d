package cli

import (
	"github.com/spf13/cobra"

	"github.com/thingssdk/thingssdk-cli/internal/serialport"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List detected serial ports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ports, err := serialport.NewSystemLister(logger).List(cmd.Context())
		if err != nil {
			return err
		}
		if len(ports) == 0 {
			stdout.Warn("No serial ports detected.")
			return nil
		}
		for _, p := range ports {
			stdout.Plain("%s", p)
		}
		return nil
	},
}
