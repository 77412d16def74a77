package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jackal/internal/diagfmt"
	"jackal/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.jack",
	Short: "Parse a Jack source file",
	Long:  `Parse validates a Jack source file against the grammar and prints its parse tree as markup`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func runParse(cmd *cobra.Command, args []string) error {
	result, err := driver.Parse(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Tree == nil || result.Bag.HasErrors() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
		return fmt.Errorf("%s: parse failed", args[0])
	}

	out := os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		out = f
	}
	return diagfmt.WriteTree(out, result.Tree)
}
