package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verdante/import-service/internal/store"
	"github.com/verdante/import-service/internal/types"
)

var (
	parseOutput string
	parseLimit  int
)

// parseCmd previews the canonical records a file produces
var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Preview the records a file would import",
	Long: `Parse and normalize a local file without persisting anything. The output shows
row counts, dropped rows and a sample of the canonical records.`,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.AddCommand(
		&cobra.Command{
			Use:   "products <file>",
			Short: "Preview products from a CSV, TSV or XLSX file",
			Example: `  import-service parse products ./catalog.csv
  import-service parse products ./catalog.xlsx --output json --limit 0`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runParse(types.EntityProducts, args[0])
			},
		},
		&cobra.Command{
			Use:     "blogs <file>",
			Short:   "Preview blog posts from a WordPress WXR export",
			Example: `  import-service parse blogs ./wordpress-export.xml`,
			Args:    cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runParse(types.EntityBlogPosts, args[0])
			},
		},
	)

	parseCmd.PersistentFlags().StringVar(&parseOutput, "output", "table", "Output format: table or json")
	parseCmd.PersistentFlags().IntVar(&parseLimit, "limit", 10, "Number of records to show (0 for all)")
}

func runParse(kind types.EntityKind, filePath string) error {
	format := strings.ToLower(parseOutput)
	if format != "table" && format != "json" {
		return fmt.Errorf("invalid output format: %s (use 'table' or 'json')", parseOutput)
	}

	logger.Info().Str("file", filePath).Msg("Reading file")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	logger.Info().Str("file", filePath).Msgf("Read %d bytes", len(content))

	p := newPipeline(store.NewMemory())

	switch kind {
	case types.EntityProducts:
		result, err := p.ParseProducts(filepath.Base(filePath), content)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
		result.Records = limitRecords(result.Records, parseLimit)
		if format == "json" {
			return outputJSON(os.Stdout, result)
		}
		printProductPreview(os.Stdout, result)
	case types.EntityBlogPosts:
		result, err := p.ParseBlogPosts(content)
		if err != nil {
			return fmt.Errorf("parse failed: %w", err)
		}
		result.Records = limitRecords(result.Records, parseLimit)
		if format == "json" {
			return outputJSON(os.Stdout, result)
		}
		printBlogPreview(os.Stdout, result)
	}
	return nil
}

func limitRecords[T any](records []T, limit int) []T {
	if limit <= 0 || len(records) <= limit {
		return records
	}
	return records[:limit]
}
