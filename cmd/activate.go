package cmd

import (
	"github.com/mj1618/desktopctl/internal/action"
	"github.com/spf13/cobra"
)

var activateCmd = &cobra.Command{
	Use:   "activate TITLE_SUBSTRING",
	Short: "Focus the first window whose title contains a substring",
	Long: `Raise and focus the first visible window whose title contains TITLE_SUBSTRING.
Matching is case-sensitive. When several windows match, the first one in the
order xdotool lists them wins. Exits 4 when nothing matches.`,
	Args: validated(positional("TITLE_SUBSTRING"), activateRequest),
	RunE: runActivate,
}

func init() {
	displayCommand(activateCmd)
}

func runActivate(cmd *cobra.Command, args []string) error {
	req, err := activateRequest(cmd, args)
	if err != nil {
		return err
	}
	res, err := app.runner.Activate(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func activateRequest(cmd *cobra.Command, args []string) (action.ActivateRequest, error) {
	return action.ActivateRequest{Title: args[0]}, nil
}
