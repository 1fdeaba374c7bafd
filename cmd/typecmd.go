package cmd

import (
	"github.com/mj1618/desktopctl/internal/action"
	"github.com/spf13/cobra"
)

var typeCmd = &cobra.Command{
	Use:   "type TEXT",
	Short: "Type literal text",
	Long:  "Type TEXT into the focused window exactly as given. Nothing is escaped or interpreted.",
	Args: validated(positional("TEXT"), func(cmd *cobra.Command, args []string) (action.TypeRequest, error) {
		// The configured delay is checked when the config is loaded.
		return typeRequest(cmd, args, 0), nil
	}),
	RunE: runType,
}

func init() {
	displayCommand(typeCmd)
	typeCmd.Flags().Int("delay", 0, "Delay between keystrokes in ms (default from config, else 12)")
}

// typeRequest uses --delay when given, else defaultDelay.
func typeRequest(cmd *cobra.Command, args []string, defaultDelay int) action.TypeRequest {
	delay := defaultDelay
	if cmd.Flags().Changed("delay") {
		delay, _ = cmd.Flags().GetInt("delay")
	}
	return action.TypeRequest{Text: args[0], DelayMs: delay}
}

func runType(cmd *cobra.Command, args []string) error {
	res, err := app.runner.Type(cmd.Context(), typeRequest(cmd, args, app.cfg.TypeDelayMs))
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
