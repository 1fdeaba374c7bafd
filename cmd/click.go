package cmd

import (
	"github.com/mj1618/desktopctl/internal/action"
	"github.com/mj1618/desktopctl/internal/platform"
	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click X Y",
	Short: "Move the pointer to X,Y and click",
	Long: `Move the pointer to absolute screen coordinates and click a button there.
Coordinates are not checked against the screen size. Use "--" before negative
values.`,
	Example: `  desktopctl click 640 360
  desktopctl click 640 360 --button 3`,
	Args: validated(positional("X", "Y"), clickRequest),
	RunE: runClick,
}

func init() {
	displayCommand(clickCmd)
	clickCmd.Flags().Int("button", int(platform.MouseLeft), "Mouse button: 1 (left), 2 (middle), 3 (right)")
}

func clickRequest(cmd *cobra.Command, args []string) (action.ClickRequest, error) {
	x, err := parseInt("X", args[0])
	if err != nil {
		return action.ClickRequest{}, err
	}
	y, err := parseInt("Y", args[1])
	if err != nil {
		return action.ClickRequest{}, err
	}
	button, _ := cmd.Flags().GetInt("button")
	return action.ClickRequest{X: x, Y: y, Button: platform.MouseButton(button)}, nil
}

func runClick(cmd *cobra.Command, args []string) error {
	req, err := clickRequest(cmd, args)
	if err != nil {
		return err
	}
	res, err := app.runner.Click(cmd.Context(), req)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
