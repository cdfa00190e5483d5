package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/meshintel/litscreen/internal/endnote"
	"github.com/meshintel/litscreen/pkg/types"
)

var recordsCmd = &cobra.Command{
	Use:   "records [file]",
	Short: "List the records parsed from a tagged export",
	Long: `Records parses an EndNote-style tagged export and lists what it finds,
without classifying anything. Useful for checking an export before a
screening run.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecords,
}

func runRecords(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	if inputPath == "" && len(args) > 0 {
		inputPath = args[0]
	}
	if inputPath == "" {
		return fmt.Errorf("input file required: pass a path or --input")
	}

	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading input file: %w", err)
	}

	records := endnote.Parse(string(content))

	limit, _ := cmd.Flags().GetInt("limit")
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	formatRecordTable(cmd.OutOrStdout(), records)
	return nil
}

func formatRecordTable(w io.Writer, records []types.Record) {
	fmt.Fprintf(w, "%-4s  %-50s  %-25s  %-6s  %s\n", "#", "Title", "Authors", "Year", "Journal")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for i, rec := range records {
		fmt.Fprintf(w, "%-4d  %-50s  %-25s  %-6s  %s\n",
			i+1, truncate(rec.Title(), 50), truncate(rec.Authors(), 25), rec.Year(),
			truncate(rec.Journal(), 30))
	}

	fmt.Fprintf(w, "\n%d records\n", len(records))
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

func init() {
	recordsCmd.Flags().String("input", "", "tagged export file to parse")
	recordsCmd.Flags().Int("limit", 0, "show at most this many records (0 = all)")
	recordsCmd.Flags().Bool("json", false, "output records as JSON")

	rootCmd.AddCommand(recordsCmd)
}
