package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/verdante/import-service/internal/database"
	"github.com/verdante/import-service/internal/store"
	"github.com/verdante/import-service/internal/types"
)

var (
	importDryRun    bool
	importMaxErrors int
)

// importCmd groups the per-entity import commands
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a product file or a WordPress export",
	Long: `Parse a file, normalize every record and persist the records one at a time.
Duplicates and other per-record failures are counted and reported; the run never stops early.

Use --dry-run to write into an in-memory store instead of the database. Duplicate slugs and
SKUs inside the file are still reported.`,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(
		newImportEntityCmd(types.EntityProducts, "products <file>", "Import products from a CSV, TSV or XLSX file",
			`  import-service import products ./catalog.csv
  import-service import products ./catalog.xlsx --dry-run`),
		newImportEntityCmd(types.EntityBlogPosts, "blogs <file>", "Import blog posts from a WordPress WXR export",
			`  import-service import blogs ./wordpress-export.xml`),
	)

	importCmd.PersistentFlags().BoolVar(&importDryRun, "dry-run", false, "Persist into an in-memory store instead of the database")
	importCmd.PersistentFlags().IntVar(&importMaxErrors, "max-errors", 20, "Maximum number of error lines to print")
}

func newImportEntityCmd(kind types.EntityKind, use, short, example string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Example: example,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), kind, args[0])
		},
	}
}

func runImport(ctx context.Context, kind types.EntityKind, filePath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info().Str("file", filePath).Msg("Reading file")
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var inserter store.Inserter
	var memory *store.Memory
	if importDryRun {
		memory = store.NewMemory()
		inserter = memory
		logger.Info().Msg("Dry run: records are kept in memory")
	} else {
		if err := initDatabase(ctx); err != nil {
			return fmt.Errorf("database initialization failed: %w", err)
		}
		defer database.Close()
		if err := database.EnsureSchema(ctx, database.Pool()); err != nil {
			return err
		}
		inserter = database.NewRepository(database.Pool())
	}

	p := newPipeline(inserter)
	filename := filepath.Base(filePath)

	var result *types.ImportResult
	switch kind {
	case types.EntityProducts:
		result, err = p.ImportProducts(ctx, filename, content)
	case types.EntityBlogPosts:
		result, err = p.ImportBlogPosts(ctx, filename, content)
	default:
		return fmt.Errorf("unsupported entity: %s", kind)
	}
	if err != nil {
		return fmt.Errorf("import of %s failed: %w", filePath, err)
	}

	printImportResult(os.Stdout, result, importMaxErrors)
	if memory != nil {
		products, posts := memory.Counts()
		fmt.Printf("\nDry run store: %d products, %d blog posts\n", products, posts)
	}
	return nil
}
