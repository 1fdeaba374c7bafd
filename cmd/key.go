package cmd

import (
	"github.com/mj1618/desktopctl/internal/action"
	"github.com/spf13/cobra"
)

var keyCmd = &cobra.Command{
	Use:     "key KEYSPEC",
	Short:   "Send a key or key chord",
	Long:    "Send a key or chord in xdotool keysym syntax, e.g. ctrl+l or Return.",
	Example: "  desktopctl key ctrl+l\n  desktopctl key Return",
	Args:    validated(positional("KEYSPEC"), keyRequest),
	RunE:    runKey,
}

func init() {
	displayCommand(keyCmd)
}

func runKey(cmd *cobra.Command, args []string) error {
	req, err := keyRequest(cmd, args)
	if err != nil {
		return err
	}
	res, err := app.runner.Key(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func keyRequest(cmd *cobra.Command, args []string) (action.KeyRequest, error) {
	return action.KeyRequest{Keys: args[0]}, nil
}
