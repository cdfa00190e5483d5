// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/meshintel/litscreen/internal/endnote"
	"github.com/meshintel/litscreen/internal/report"
	"github.com/meshintel/litscreen/internal/screen"
	"github.com/meshintel/litscreen/pkg/types"
)

const defaultOutput = "articles_classification.xlsx"

var screenCmd = &cobra.Command{
	Use:   "screen [file]",
	Short: "Classify records from a tagged export into screening categories",
	Long: `Screen reads an EndNote-style tagged text export, classifies every record
into one of six screening categories (included, systematic reviews, narrative
reviews, duplicates, unrelated, methodology lacking), and writes an xlsx
report with a summary sheet plus a detail sheet per non-empty category.

With no file argument and no --input flag, screen asks interactively for
the input file. Use --export to also save the run as YAML or JSON next to
the workbook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScreen,
}

func runScreen(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := screenConfig(cmd)

	switch cfg.Export {
	case types.ExportNone, types.ExportYAML, types.ExportJSON:
	default:
		return fmt.Errorf("unsupported export format %q: use yaml or json", cfg.Export)
	}

	inputPath, _ := cmd.Flags().GetString("input")
	if inputPath == "" && len(args) > 0 {
		inputPath = args[0]
	}
	if inputPath == "" {
		var err error
		inputPath, err = promptForInput(cmd.InOrStdin(), out)
		if err != nil {
			return err
		}
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	records := endnote.Parse(string(content))
	fmt.Fprintf(out, "Found %d entries to process\n", len(records))

	outcome := screen.Screen(records, screen.DefaultRuleSet())

	if err := report.WriteExcel(cfg.OutputPath, outcome); err != nil {
		return err
	}

	if cfg.Export != types.ExportNone {
		runPath := runFilePath(cfg.OutputPath, cfg.Export)
		if err := report.WriteRunFile(runPath, cfg.Export, report.BuildRun(inputPath, outcome)); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported run to %s\n", runPath)
	}

	fmt.Fprintln(out, "\nProcessing complete! Summary of results:")
	for _, cat := range types.Categories() {
		fmt.Fprintf(out, "%s: %d articles\n", cat.Title(), outcome.Count(cat))
	}
	fmt.Fprintf(out, "\nDone! Check %s for detailed results.\n", cfg.OutputPath)
	return nil
}

// screenConfig resolves output settings from flags, then the config file
// or environment, then built-in defaults.
func screenConfig(cmd *cobra.Command) types.ScreenConfig {
	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = viper.GetString("output")
	}
	if output == "" {
		output = defaultOutput
	}

	format, _ := cmd.Flags().GetString("export")
	if format == "" {
		format = viper.GetString("export")
	}

	return types.ScreenConfig{
		OutputPath: output,
		Export:     types.ExportFormat(format),
	}
}

// promptForInput walks the interactive file selection: a choice between a
// filename in the current directory and a full path, then the path itself.
func promptForInput(in io.Reader, out io.Writer) (string, error) {
	reader := bufio.NewReader(in)

	fmt.Fprintln(out, "Choose input method:")
	fmt.Fprintln(out, "1. Use file from current directory")
	fmt.Fprintln(out, "2. Enter full file path")
	fmt.Fprint(out, "Enter your choice (1 or 2): ")
	choice, err := readLine(reader)
	if err != nil {
		return "", err
	}

	// Any choice other than "1" falls through to the full-path prompt.
	if choice == "1" {
		fmt.Fprint(out, "Enter the filename (including .txt extension): ")
	} else {
		fmt.Fprint(out, "Enter the full file path: ")
	}
	path, err := readLine(reader)
	if err != nil {
		return "", err
	}
	if path == "" {
		return "", fmt.Errorf("no input file given")
	}
	return path, nil
}

func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// runFilePath swaps the workbook extension for the export format, so
// results.xlsx exports to results.yaml or results.json.
func runFilePath(outputPath string, format types.ExportFormat) string {
	ext := filepath.Ext(outputPath)
	return strings.TrimSuffix(outputPath, ext) + "." + string(format)
}

func init() {
	screenCmd.Flags().String("input", "", "tagged export file to screen (skips the interactive prompt)")
	screenCmd.Flags().String("output", "", "output xlsx path (default: "+defaultOutput+")")
	screenCmd.Flags().String("export", "", "also export the run as yaml or json next to the workbook")

	rootCmd.AddCommand(screenCmd)
}
