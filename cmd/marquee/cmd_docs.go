package main

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"marquee/internal/config"
)

//go:embed docs.md
var docsMarkdown string

// docsCmd renders the usage guide in the terminal.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the rendered usage guide",
	RunE: func(cmd *cobra.Command, args []string) error {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("docs renderer: %w", err)
		}
		out, err := renderer.Render(docsMarkdown)
		if err != nil {
			return fmt.Errorf("render docs: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

// initCmd writes a starter config file.
var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "marquee.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}
