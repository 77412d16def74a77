package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jackal/internal/diagfmt"
	"jackal/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.jack",
	Short: "Tokenize a Jack source file",
	Long:  `Tokenize breaks a Jack source file into its classified tokens and prints them as markup`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	result, err := driver.Tokenize(args[0], maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	if result.Bag.HasErrors() {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
		return fmt.Errorf("%s: tokenization failed", args[0])
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
	return diagfmt.WriteTokens(out, result.Tokens)
}
