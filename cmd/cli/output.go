package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/verdante/import-service/internal/normalize"
	"github.com/verdante/import-service/internal/types"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	return t
}

func printImportResult(out io.Writer, result *types.ImportResult, maxErrors int) {
	t := newTable(out)
	t.SetTitle("Import %s (run %s)", result.Entity, result.RunID)
	t.AppendHeader(table.Row{"Total", "Success", "Failed", "Duration"})
	t.AppendRow(table.Row{result.Total, result.Success, result.Failed, result.FinishedAt.Sub(result.StartedAt).Round(time.Millisecond)})
	t.Render()

	if len(result.Errors) == 0 {
		return
	}
	shown := len(result.Errors)
	if maxErrors >= 0 && shown > maxErrors {
		shown = maxErrors
	}
	fmt.Fprintf(out, "\nErrors (%d):\n", len(result.Errors))
	for _, msg := range result.Errors[:shown] {
		fmt.Fprintf(out, "  - %s\n", msg)
	}
	if shown < len(result.Errors) {
		fmt.Fprintf(out, "  ... and %d more\n", len(result.Errors)-shown)
	}
}

func printProductPreview(out io.Writer, result *types.ProductParseResult) {
	summary := newTable(out)
	summary.AppendHeader(table.Row{"Rows", "Valid", "Dropped"})
	summary.AppendRow(table.Row{result.TotalRows, result.TotalRows - result.Dropped, result.Dropped})
	summary.Render()

	if len(result.Records) == 0 {
		return
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"Row", "Name", "Slug", "Category", "Price", "Compare At", "Stock", "Flags"})
	for _, r := range result.Records {
		compareAt := "-"
		if r.CompareAtPrice != nil {
			compareAt = normalize.FormatPrice(*r.CompareAtPrice)
		}
		t.AppendRow(table.Row{
			r.RowNumber,
			r.Name,
			r.Slug,
			r.Category,
			normalize.FormatPrice(r.Price),
			compareAt,
			r.StockQuantity,
			productFlags(r),
		})
	}
	t.Render()
}

func printBlogPreview(out io.Writer, result *types.BlogParseResult) {
	summary := newTable(out)
	summary.AppendHeader(table.Row{"Items", "Posts", "Skipped", "Dropped"})
	summary.AppendRow(table.Row{result.TotalItems, len(result.Records), result.Skipped, result.Dropped})
	summary.Render()

	if len(result.Records) == 0 {
		return
	}
	t := newTable(out)
	t.AppendHeader(table.Row{"Title", "Slug", "Status", "Published", "Author", "Categories", "Tags", "Minutes"})
	for _, r := range result.Records {
		t.AppendRow(table.Row{
			r.Title,
			r.Slug,
			r.Status,
			r.PublishedDate,
			r.Author,
			strings.Join(r.Categories, ", "),
			strings.Join(r.Tags, ", "),
			r.ReadingTime,
		})
	}
	t.Render()
}

func productFlags(r types.ProductRecord) string {
	flags := make([]string, 0, 3)
	if r.IsFeatured {
		flags = append(flags, "featured")
	}
	if r.IsOnSale {
		flags = append(flags, "sale")
	}
	if r.IsNew {
		flags = append(flags, "new")
	}
	return strings.Join(flags, ",")
}

func outputJSON(out io.Writer, v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
