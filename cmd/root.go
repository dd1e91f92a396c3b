package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ourlang",
	Short: "OurLang language front end",
	Long: `OurLang is the front end for the OurLang language: it tokenizes,
parses, and type-checks (.our) source files.

Commands:
  check  Run full semantic analysis over a source file
  ast    Parse a source file and dump its syntax tree
  lex    Dump the token stream for a source file
`,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(CheckCmd, AstCmd, LexCmd)
}
