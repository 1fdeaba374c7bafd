package cmd

import "github.com/spf13/cobra"

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List visible windows",
	Long:  "List visible windows, one per line: window id, a tab, then the title.",
	Args:  positional(),
	RunE:  runWindows,
}

func init() {
	displayCommand(windowsCmd)
}

func runWindows(cmd *cobra.Command, args []string) error {
	res, err := app.runner.Windows(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
