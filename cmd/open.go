package cmd

import (
	"github.com/mj1618/desktopctl/internal/action"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open URL",
	Short: "Open a URL with the session's default handler",
	Long: `Open URL with the first available opener (xdg-open, then gio open, then
chromium-browser unless configured otherwise). The URL is passed through as is.`,
	Args: validated(positional("URL"), openRequest),
	RunE: runOpen,
}

func init() {
	displayCommand(openCmd)
}

func runOpen(cmd *cobra.Command, args []string) error {
	req, err := openRequest(cmd, args)
	if err != nil {
		return err
	}
	res, err := app.runner.Open(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

func openRequest(cmd *cobra.Command, args []string) (action.OpenRequest, error) {
	return action.OpenRequest{URL: args[0]}, nil
}
