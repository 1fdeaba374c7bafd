package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mj1618/desktopctl/internal/action"
	"github.com/mj1618/desktopctl/internal/config"
	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/mj1618/desktopctl/internal/logging"
	"github.com/mj1618/desktopctl/internal/output"
	"github.com/mj1618/desktopctl/internal/platform"
	"github.com/mj1618/desktopctl/internal/process"
	"github.com/mj1618/desktopctl/internal/session"
	"github.com/mj1618/desktopctl/internal/version"
	"github.com/spf13/cobra"
)

// annotationDisplay marks commands that talk to the X display. Only those
// resolve the session environment.
const annotationDisplay = "desktopctl/display"

var rootCmd = &cobra.Command{
	Use:   "desktopctl",
	Short: "Control an X11 desktop session from the command line",
	Long: `desktopctl drives an X11 desktop through xdotool, scrot and xdg-open so that an
automation loop can run: screenshot -> decide -> click/type -> repeat.

The display comes from --display, else $DISPLAY. The authorization cookie comes
from --xauthority, else $XAUTHORITY, and may be absent.`,
	Args:          cobra.ArbitraryArgs,
	RunE:          runRoot,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Test seams.
var (
	newInvoker = func(logger *slog.Logger) process.Invoker { return process.NewExecInvoker(logger) }
	environ    = os.Environ
	clock      = time.Now
)

// state is built once per invocation by the root pre-run hook.
type state struct {
	cfg    config.Config
	logger *slog.Logger
	env    session.Env
	runner *action.Runner
}

var app state

// Execute runs the command line and exits with the code for its outcome.
func Execute() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes args and returns the process exit code. Every failure is
// printed here, once.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return errs.ExitOK
	}

	var hint string
	if errs.Kind(err) == "usage" {
		path := rootCmd.Name()
		if cmd != nil {
			path = cmd.CommandPath()
		}
		hint = fmt.Sprintf("Run '%s --help' for usage.", path)
	}
	output.PrintError(stderr, err, hint)
	return errs.ExitCode(err)
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.SuggestionsMinimumDistance = 2

	rootCmd.PersistentFlags().String("display", "", "X display to use (default: $DISPLAY)")
	rootCmd.PersistentFlags().String("xauthority", "", "Path to the X authority cookie file (default: $XAUTHORITY)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/desktopctl/config.yaml)")
	rootCmd.PersistentFlags().String("format", "", "Output format: text, yaml, json (default from config, else text)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log external commands to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &errs.UsageError{Msg: err.Error()}
	})
	rootCmd.PersistentPreRunE = setup
}

func setup(cmd *cobra.Command, args []string) error {
	app = state{}
	if builtin(cmd) {
		return nil
	}
	flags := rootCmd.PersistentFlags()

	level := slog.LevelWarn
	if verbose, _ := flags.GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	app.logger = logging.New(cmd.ErrOrStderr(), level)

	cfgPath, _ := flags.GetString("config")
	explicit := flags.Changed("config")
	if !explicit {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath, explicit)
	if err != nil {
		return &errs.UsageError{Msg: err.Error()}
	}
	app.cfg = cfg

	format, _ := flags.GetString("format")
	if format == "" {
		format = cfg.Format
	}
	f, err := output.ParseFormat(format)
	if err != nil {
		return &errs.UsageError{Msg: err.Error()}
	}
	output.OutputFormat = f

	if cmd.Annotations[annotationDisplay] != "true" {
		return nil
	}

	display, _ := flags.GetString("display")
	xauth, _ := flags.GetString("xauthority")
	env, err := session.Resolve(environ(), session.Overrides{Display: display, XAuthority: xauth})
	if err != nil {
		return err
	}
	app.env = env
	app.logger.Debug("session resolved", "display", env.Display(), "xauthority", env.XAuthority() != "")

	provider, err := platform.NewProvider(platform.Options{
		Env:     env,
		Invoker: newInvoker(app.logger),
		Config:  cfg,
	})
	if err != nil {
		return err
	}
	app.runner = action.NewRunner(provider,
		action.WithClock(clock),
		action.WithScreenshotDir(cfg.ScreenshotDir),
	)
	return nil
}

// builtin reports whether cmd is one of cobra's help or completion commands,
// which need neither config nor a display.
func builtin(cmd *cobra.Command) bool {
	for c := cmd; c != nil && c != rootCmd; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}

// runRoot only runs when no subcommand matched.
func runRoot(cmd *cobra.Command, args []string) error {
	available := availableCommands(cmd)
	if len(args) == 0 {
		return errs.Usagef("missing command (available: %s)", strings.Join(available, ", "))
	}
	msg := fmt.Sprintf("unknown command %q (available: %s)", args[0], strings.Join(available, ", "))
	if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
		msg += fmt.Sprintf("; did you mean %s?", strings.Join(suggestions, " or "))
	}
	return &errs.UsageError{Msg: msg}
}

func availableCommands(cmd *cobra.Command) []string {
	var names []string
	for _, c := range cmd.Commands() {
		if c.IsAvailableCommand() {
			names = append(names, c.Name())
		}
	}
	return names
}
