package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jackal/internal/diag"
	"jackal/internal/diagfmt"
	"jackal/internal/driver"
	"jackal/internal/project"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [flags] path",
	Short: "Analyze a Jack file or directory",
	Long: `Analyze runs the full front-end over one .jack file or every .jack file
under a directory, writing one parse-tree artifact per input file`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("out", "", "directory for artifacts (default: next to each source file)")
	analyzeCmd.Flags().Bool("tokens", false, "also write token-stream artifacts")
	analyzeCmd.Flags().Bool("cache", false, "reuse cached artifacts for unchanged files")
	analyzeCmd.Flags().Int("jobs", 0, "parallel workers (0 = GOMAXPROCS)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	startDir := path
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		startDir = filepath.Dir(path)
	}
	cfg, _, err := project.Load(startDir)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.OutDir = out
	}
	if jobs, _ := cmd.Flags().GetInt("jobs"); jobs > 0 {
		cfg.Jobs = jobs
	}
	if on, _ := cmd.Flags().GetBool("cache"); on {
		cfg.Cache = true
	}

	var cache *driver.DiskCache
	if cfg.Cache {
		cache, err = driver.OpenDiskCache("jackal")
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	emitTokens, _ := cmd.Flags().GetBool("tokens")
	_, results, err := driver.AnalyzeAll(cmd.Context(), path, driver.AnalyzeOptions{
		Config:         cfg,
		MaxDiagnostics: maxDiagnostics(cmd),
		EmitTokens:     emitTokens,
		Cache:          cache,
	})
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	all := diag.NewBag(maxDiagnostics(cmd))
	failed := 0
	for _, r := range results {
		if r.Bag.HasErrors() {
			failed++
		}
		all.Merge(r.Bag)
		if !quiet && r.TreePath != "" {
			note := ""
			if r.FromCache {
				note = " (cached)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s%s\n", r.Path, r.TreePath, note)
		}
	}

	if all.Len() > 0 {
		all.Sort()
		diagfmt.Pretty(os.Stderr, all, diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr)})
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}
