package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wrenfold/parsec/examples/go/cpplex"
)

var cpplexCmd = &cobra.Command{
	Use:   "cpplex",
	Short: "Tokenize a subset of C++ source, stripping comments and whitespace",
	RunE:  runCpplex,
}

type tokenView struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

func tokenViews(toks []cpplex.Token) []tokenView {
	views := make([]tokenView, len(toks))
	for i, tok := range toks {
		views[i] = tokenView{Kind: tok.Kind.String(), Value: tok.Value}
	}
	return views
}

func tokensText(toks []cpplex.Token) string {
	lines := make([]string, len(toks))
	for i, tok := range toks {
		lines[i] = tok.String()
	}
	return strings.Join(lines, "\n")
}

func runCpplex(cmd *cobra.Command, args []string) error {
	text, haveInput, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	if !haveInput {
		if !isTerminalIO() {
			return fmt.Errorf("cannot show repl: stdin or stdout is not a terminal")
		}
		return runCpplexRepl(cmd.Context())
	}

	toks, err := cpplex.Tokenize(cmd.Context(), text)
	if err != nil {
		return err
	}
	return printResult(tokenViews(toks), func() string { return tokensText(toks) })
}

// runCpplexRepl tokenizes one line of input at a time, printing the
// resulting tokens, until EOF.
func runCpplexRepl(ctx context.Context) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("cpplex> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		toks, err := cpplex.Tokenize(ctx, line)
		if err != nil {
			printError(err)
			continue
		}
		if err := printResult(tokenViews(toks), func() string { return tokensText(toks) }); err != nil {
			printError(err)
		}
	}
}
