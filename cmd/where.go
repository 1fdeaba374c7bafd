package cmd

import "github.com/spf13/cobra"

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Print the pointer position as \"x y\"",
	Args:  positional(),
	RunE:  runWhere,
}

func init() {
	displayCommand(whereCmd)
}

func runWhere(cmd *cobra.Command, args []string) error {
	res, err := app.runner.Where(cmd.Context())
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
