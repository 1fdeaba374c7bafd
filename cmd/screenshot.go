package cmd

import (
	"github.com/mj1618/desktopctl/internal/action"
	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture the screen to a PNG file",
	Long: `Capture the whole screen with scrot and print the absolute path of the image.

Without --out the file is named desktop-YYYYMMDD-HHMMSS.mmm.png (UTC) inside
--out-dir. Missing parent directories are created.`,
	Args: positional(),
	RunE: runScreenshot,
}

func init() {
	displayCommand(screenshotCmd)
	screenshotCmd.Flags().String("out", "", "Output file path")
	screenshotCmd.Flags().String("out-dir", "", "Directory for auto-named screenshots (default from config, else ./tmp)")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")
	outDir, _ := cmd.Flags().GetString("out-dir")

	res, err := app.runner.Screenshot(cmd.Context(), action.ScreenshotRequest{Out: out, OutDir: outDir})
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
