package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jward/shapearea"
	"github.com/spf13/cobra"
)

const defaultProgram = "shapearea"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line in args (args[0] is the program name as
// invoked) and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	program := defaultProgram
	rest := []string{}
	if len(args) > 0 {
		program = args[0]
		rest = append(rest, args[1:]...)
	}

	cmd := newRootCmd(program)
	cmd.SetArgs(rest)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	var err error
	if len(rest) > 0 && isCompletionRequest(rest[0]) {
		// cobra would route these to its hidden completion command.
		err = cmd.RunE(cmd, rest)
	} else {
		err = cmd.Execute()
	}
	if err != nil {
		formatError(stderr, err)
		return 1
	}
	return 0
}

// isCompletionRequest reports whether arg names one of cobra's hidden
// shell-completion commands, which Execute registers unconditionally.
func isCompletionRequest(arg string) bool {
	return arg == cobra.ShellCompRequestCmd || arg == cobra.ShellCompNoDescRequestCmd
}

func newRootCmd(program string) *cobra.Command {
	return &cobra.Command{
		Use:   filepath.Base(program) + " shape_name value",
		Short: "Compute the area of a square or circle",
		Long:  "Prints the area of a square (value is the width) or a circle (value is the radius), rounded to two decimal places.\nKnown shapes: " + knownShapes(),
		Args:  cobra.ArbitraryArgs,
		// Values such as -5 are positional, not flags.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArea(cmd.OutOrStdout(), program, args)
		},
	}
}

// runArea dispatches on the shape name. The value argument is only read once
// the shape is known.
func runArea(w io.Writer, program string, args []string) error {
	if len(args) == 0 {
		formatUsage(w, program)
		return nil
	}

	name := args[0]
	formula, ok := shapearea.Lookup(name)
	if !ok {
		formatUnknownShape(w)
		return nil
	}

	if len(args) < 2 {
		return fmt.Errorf("missing value argument for shape %q", name)
	}
	value, err := parseFloatArg(args[1])
	if err != nil {
		return err
	}

	formatArea(w, formula(value))
	return nil
}

// knownShapes lists the registered shape names, comma separated.
func knownShapes() string {
	shapes := shapearea.Shapes()
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// parseFloatArg parses a positional argument as a float with a clear error.
// Values beyond the float64 range become ±Inf. Hex literals are rejected.
func parseFloatArg(value string) (float64, error) {
	s := strings.TrimSpace(value)
	if hasHexPrefix(s) {
		return 0, fmt.Errorf("invalid value %q: must be a decimal number", value)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("invalid value %q: must be a number", value)
	}
	return f, nil
}

func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
