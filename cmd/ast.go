package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ourlang/ourlang/internal/compiler"
	"github.com/ourlang/ourlang/internal/compiler/ast"
)

// ast: parse a file and dump the syntax tree
var AstCmd = &cobra.Command{
	Use:   "ast [file.our]",
	Short: "Parse a source file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		prog, err := compiler.ParseFile(args[0])
		if err != nil {
			return err
		}
		ast.Dump(os.Stdout, prog, "")
		return nil
	},
}
