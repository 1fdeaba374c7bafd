package cmd

import (
	"strconv"
	"strings"

	"github.com/mj1618/desktopctl/internal/errs"
	"github.com/mj1618/desktopctl/internal/output"
	"github.com/spf13/cobra"
)

// displayCommand marks cmd as needing the X session and registers it on root.
func displayCommand(cmd *cobra.Command) {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations[annotationDisplay] = "true"
	rootCmd.AddCommand(cmd)
}

// positional requires exactly the named positional arguments.
func positional(names ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < len(names) {
			missing := names[len(args):]
			noun := "argument"
			if len(missing) > 1 {
				noun = "arguments"
			}
			return errs.Usagef("missing required %s %s", noun, strings.Join(missing, " "))
		}
		if len(args) > len(names) {
			return errs.Usagef("unexpected argument %q", args[len(names)])
		}
		return nil
	}
}

type validator interface {
	Validate() error
}

// validated checks the positional arguments, then builds and validates the
// action request. It runs as the command's Args, which cobra calls before the
// root pre-run resolves the session.
func validated[R validator](check cobra.PositionalArgs, build func(*cobra.Command, []string) (R, error)) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return err
		}
		req, err := build(cmd, args)
		if err != nil {
			return err
		}
		return req.Validate()
	}
}

// parseInt parses a positional integer such as a coordinate.
func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errs.Usagef("invalid %s %q: must be an integer", name, s)
	}
	return n, nil
}

// printResult writes res to the command's stdout in the selected format.
func printResult(cmd *cobra.Command, res interface{}) error {
	return output.Print(cmd.OutOrStdout(), res)
}
