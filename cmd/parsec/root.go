package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)
	viper.SetEnvPrefix("parsec")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is $HOME/.parsec.yaml)")
	rootCmd.PersistentFlags().StringP("code", "c", "", "Code to evaluate")
	rootCmd.PersistentFlags().Bool("stdin", false, "Read code from stdin")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Set the output format (json or text)")

	viper.BindPFlag("code", rootCmd.PersistentFlags().Lookup("code"))
	viper.BindPFlag("stdin", rootCmd.PersistentFlags().Lookup("stdin"))
	viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))

	viper.AutomaticEnv()

	rootCmd.AddCommand(calculatorCmd)
	rootCmd.AddCommand(cpplexCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".parsec")
	}
	viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "parsec",
	Short: "Demo front-ends for the parsec combinator library",
	Long:  "parsec runs the library's bundled lexer/parser demos: an arithmetic calculator and a C++-subset tokenizer.",

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("no-color") {
			color.NoColor = true
		}
	},

	// Bare invocation is equivalent to `parsec calculator`, since that is
	// the demo most people reach for first.
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalculator(cmd, args)
	},

	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		dir, err := os.ReadDir(".")
		if err != nil {
			return nil, cobra.ShellCompDirectiveDefault
		}
		files := make([]string, 0, len(dir))
		for _, entry := range dir {
			files = append(files, filepath.Join(".", entry.Name()))
		}
		return files, cobra.ShellCompDirectiveNoSpace
	},
}
