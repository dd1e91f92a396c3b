package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ourlang/ourlang/internal/compiler"
	"github.com/ourlang/ourlang/internal/compiler/lexer"
	"github.com/ourlang/ourlang/internal/compiler/token"
)

// lex: dump the token stream
var LexCmd = &cobra.Command{
	Use:   "lex [file.our]",
	Short: "Dump the token stream for a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if filepath.Ext(args[0]) != compiler.SourceExt {
			return fmt.Errorf("source must have %s extension", compiler.SourceExt)
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		l := lexer.NewLexer(string(src))
		for {
			tok := l.NextToken()
			fmt.Printf("%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Literal)
			if tok.Type == token.TokenEOF {
				return nil
			}
		}
	},
}
