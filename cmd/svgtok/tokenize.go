package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svgtok/internal/diagfmt"
	"svgtok/internal/driver"
	"svgtok/internal/source"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.svg|dir",
	Short: "Tokenize an SVG file or every SVG file in a directory",
	Long:  `Tokenize breaks an SVG document into its structural tokens`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "", "output format (pretty|json|msgpack)")
	tokenizeCmd.Flags().String("ui", "auto", "interactive progress for directories (auto|on|off)")
	tokenizeCmd.Flags().Int("jobs", 0, "parallel workers for directories (0 = all CPUs)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	target := args[0]

	cfg, err := loadProjectConfig(".")
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Output.Format
	}
	if format == "" {
		format = "pretty"
	}
	switch format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	maxDiags := maxDiagnostics(cmd)
	if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && cfg.Tokenize.MaxDiagnostics > 0 {
		maxDiags = cfg.Tokenize.MaxDiagnostics
	}

	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	if info.IsDir() {
		jobs, _ := cmd.Flags().GetInt("jobs")
		if jobs == 0 {
			jobs = cfg.Tokenize.Jobs
		}
		return runTokenizeDir(cmd, target, format, maxDiags, jobs)
	}
	return runTokenizeFile(cmd, target, format, maxDiags)
}

func runTokenizeFile(cmd *cobra.Command, path, format string, maxDiags int) error {
	result, err := driver.Tokenize(path, maxDiags)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	printDiagnostics(cmd, result)

	if err := writeTokens(os.Stdout, format, result); err != nil {
		return err
	}
	if result.Err != nil {
		return fmt.Errorf("%s: %w", path, result.Err)
	}
	return nil
}

func runTokenizeDir(cmd *cobra.Command, dir, format string, maxDiags, jobs int) error {
	uiFlag, _ := cmd.Flags().GetString("ui")
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	ctx := context.Background()
	opts := driver.DirOptions{MaxDiagnostics: maxDiags, Jobs: jobs}

	var results []driver.TokenizeDirResult
	var fileSet *source.FileSet
	if shouldUseTUI(mode) && format == "pretty" {
		fileSet, results, err = runTokenizeDirWithUI(ctx, dir, opts)
	} else {
		fileSet, results, err = driver.TokenizeDir(ctx, dir, opts)
	}
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	failed := 0
	for _, r := range results {
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			r.Bag.Sort()
			diagfmt.Pretty(os.Stderr, r.Bag, fileSet, diagfmt.PrettyOpts{
				Color: useColor(cmd, os.Stderr),
			})
		}
		if r.Err != nil || r.Bag.HasErrors() {
			failed++
			continue
		}
		if !quiet {
			fmt.Fprintf(os.Stdout, "%s: %d tokens\n", r.Path, len(r.Tokens))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.TokenizeResult) {
	if !result.Bag.HasErrors() && !result.Bag.HasWarnings() {
		return
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color: useColor(cmd, os.Stderr),
	})
}

func writeTokens(w io.Writer, format string, result *driver.TokenizeResult) error {
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(w, result.Tokens, result.FileSet)
	case "json":
		return diagfmt.FormatTokensJSON(w, result.Tokens, result.File)
	case "msgpack":
		return diagfmt.FormatTokensMsgpack(w, result.Tokens, result.File)
	}
	return fmt.Errorf("unknown format: %s", format)
}
