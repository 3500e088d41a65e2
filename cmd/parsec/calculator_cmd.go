package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wrenfold/parsec/examples/go/calculator"
)

func init() {
	calculatorCmd.Flags().StringArray("var", []string{}, "Bind a free variable, as name=value (repeatable)")
	viper.BindPFlag("var", calculatorCmd.Flags().Lookup("var"))
}

var calculatorCmd = &cobra.Command{
	Use:     "calculator",
	Aliases: []string{"calc"},
	Short:   "Evaluate arithmetic expressions with variables and transcendentals",
	RunE:    runCalculator,
}

func parseVarBindings(raw []string) (map[string]float64, error) {
	env := map[string]float64{}
	for _, kv := range raw {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --var binding %q: expected name=value", kv)
		}
		value, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --var binding %q: %w", kv, err)
		}
		env[parts[0]] = value
	}
	return env, nil
}

func evalCalculatorLine(ctx context.Context, text string, overrides map[string]float64) (float64, error) {
	expr, err := calculator.Parse(ctx, text)
	if err != nil {
		return 0, err
	}
	env := map[string]float64{"theta": 999}
	for name, value := range overrides {
		env[name] = value
	}
	for _, name := range calculator.PendingVariables(expr) {
		if _, ok := env[name]; !ok {
			return 0, fmt.Errorf("unbound variable: %s", name)
		}
	}
	return calculator.Eval(expr, env)
}

func runCalculator(cmd *cobra.Command, args []string) error {
	overrides, err := parseVarBindings(viper.GetStringSlice("var"))
	if err != nil {
		return err
	}

	text, haveInput, err := resolveInput(cmd, args)
	if err != nil {
		return err
	}
	if !haveInput {
		if !isTerminalIO() {
			return fmt.Errorf("cannot show repl: stdin or stdout is not a terminal")
		}
		return runCalculatorRepl(cmd.Context(), overrides)
	}

	result, err := evalCalculatorLine(cmd.Context(), text, overrides)
	if err != nil {
		return err
	}
	return printResult(result, func() string { return strconv.FormatFloat(result, 'g', -1, 64) })
}

// runCalculatorRepl reads one expression per line from stdin and prints
// its value, until EOF; blank lines are skipped. It is a deliberately plain
// bufio.Scanner loop rather than a readline-backed REPL, since this
// module carries no terminal-editing dependency of its own.
func runCalculatorRepl(ctx context.Context, overrides map[string]float64) error {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("calc> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result, err := evalCalculatorLine(ctx, line, overrides)
		if err != nil {
			printError(err)
			continue
		}
		textFn := func() string { return strconv.FormatFloat(result, 'g', -1, 64) }
		if err := printResult(result, textFn); err != nil {
			printError(err)
		}
	}
}
