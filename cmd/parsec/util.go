package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var red = color.New(color.FgRed).SprintfFunc()

// printError prints err to stderr in red, preferring its
// FriendlyErrorMessage over Error() when it implements one -- the
// same type-assertion the teacher CLI does before printing a
// risor.Eval failure.
func printError(err error) {
	if friendly, ok := err.(interface{ FriendlyErrorMessage() string }); ok {
		fmt.Fprintf(os.Stderr, "%s\n", red(friendly.FriendlyErrorMessage()))
		return
	}
	fmt.Fprintf(os.Stderr, "%s\n", red(err.Error()))
}

func isTerminalIO() bool {
	stdin := os.Stdin.Fd()
	stdout := os.Stdout.Fd()
	inTerm := isatty.IsTerminal(stdin) || isatty.IsCygwinTerminal(stdin)
	outTerm := isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
	return inTerm && outTerm
}

// resolveInput determines what text a subcommand should run on: the
// --code flag, --stdin, or the first positional argument naming a
// file. Supplying more than one of these is an error. An empty, unset
// combination signals the caller to fall back to its REPL.
func resolveInput(cmd *cobra.Command, args []string) (text string, haveInput bool, err error) {
	codeFlagSet := cmd.Flags().Changed("code")
	stdinFlagSet := viper.GetBool("stdin")
	pathSupplied := len(args) > 0

	set := 0
	for _, b := range []bool{codeFlagSet, stdinFlagSet, pathSupplied} {
		if b {
			set++
		}
	}
	if set > 1 {
		return "", false, errors.New("multiple input sources specified: use only one of --code, --stdin, or a file argument")
	}

	switch {
	case codeFlagSet:
		return viper.GetString("code"), true, nil
	case stdinFlagSet:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", false, err
		}
		return string(data), true, nil
	case pathSupplied:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", false, err
		}
		return string(data), true, nil
	default:
		return "", false, nil
	}
}

// printResult renders result per the --output flag: "json" always
// marshals result as JSON, "text" always prints text(), and the
// default tries JSON first, falling back to text() for values that
// don't marshal -- the same three-way default the library's teacher
// CLI applies to its own result values.
func printResult(result interface{}, text func() string) error {
	format := strings.ToLower(viper.GetString("output"))
	switch format {
	case "":
		if s, err := marshalJSON(result); err == nil {
			fmt.Println(s)
		} else {
			fmt.Println(text())
		}
	case "json":
		s, err := marshalJSON(result)
		if err != nil {
			return err
		}
		fmt.Println(s)
	case "text":
		fmt.Println(text())
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}

func marshalJSON(result interface{}) (string, error) {
	var out []byte
	var err error
	if viper.GetBool("no-color") {
		out, err = json.MarshalIndent(result, "", "  ")
	} else {
		out, err = prettyjson.Marshal(result)
	}
	if err != nil {
		return "", err
	}
	return string(out), nil
}
