package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ourlang/ourlang/internal/compiler"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	diagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// check: run the full pipeline and print diagnostics
var CheckCmd = &cobra.Command{
	Use:   "check [file.our]",
	Short: "Run semantic analysis over a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		diags, ok, err := compiler.CheckFile(args[0])
		if err != nil {
			return err
		}

		if ok {
			fmt.Println(passStyle.Render("✓ Semantic Analysis PASSED"))
			return nil
		}

		fmt.Println(failStyle.Render("✗ Semantic Analysis FAILED"))
		for _, d := range diags {
			fmt.Println("  " + diagStyle.Render(d))
		}
		cmd.SilenceUsage = true
		return fmt.Errorf("%d problem(s) found", len(diags))
	},
}
