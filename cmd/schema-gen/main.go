// Schema Generator
//
// Generates JSON Schema files from Go types so the admin dashboard can validate
// import results and settings payloads against the same definitions.
//
// Usage:
//
//	go run ./cmd/schema-gen [output-dir]
//
// Output:
//
//	schemas/records.json
//	schemas/imports.json
//	schemas/settings.json
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/invopop/jsonschema"

	"github.com/verdante/import-service/internal/handlers"
	"github.com/verdante/import-service/internal/settings"
	"github.com/verdante/import-service/internal/storage"
	"github.com/verdante/import-service/internal/types"
)

const defaultOutputDir = "schemas"

// SchemaGroup represents a group of related schemas
type SchemaGroup struct {
	Name   string
	Types  []any
	Output string
}

func schemaGroups() []SchemaGroup {
	return []SchemaGroup{
		{
			Name: "records",
			Types: []any{
				types.ProductRecord{},
				types.BlogRecord{},
				types.ProductParseResult{},
				types.BlogParseResult{},
			},
			Output: "records.json",
		},
		{
			Name: "imports",
			Types: []any{
				types.ImportResult{},
				storage.FileInfo{},
				handlers.ListUploadsResponse{},
				handlers.ErrorResponse{},
				handlers.HealthResponse{},
			},
			Output: "imports.json",
		},
		{
			Name: "settings",
			Types: []any{
				settings.StoreSettings{},
				settings.ShippingSettings{},
				settings.SocialSettings{},
				settings.SEOSettings{},
			},
			Output: "settings.json",
		},
	}
}

func main() {
	outputDir := defaultOutputDir
	if len(os.Args) > 1 {
		outputDir = os.Args[1]
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	for _, group := range schemaGroups() {
		schema := generateGroupSchema(group)
		outputPath := filepath.Join(outputDir, group.Output)

		if err := writeSchema(schema, outputPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", group.Output, err)
			os.Exit(1)
		}

		fmt.Printf("Generated %s\n", outputPath)
	}

	fmt.Println("Schema generation complete!")
}

// generateGroupSchema creates a combined schema with all types in a group
func generateGroupSchema(group SchemaGroup) map[string]any {
	reflector := &jsonschema.Reflector{}

	definitions := make(map[string]any)
	for _, t := range group.Types {
		schema := reflector.Reflect(t)
		for name, def := range schema.Definitions {
			definitions[name] = def
		}
	}

	return map[string]any{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         fmt.Sprintf("https://verdante.example/schemas/%s.json", group.Name),
		"title":       fmt.Sprintf("%s Types", capitalize(group.Name)),
		"description": fmt.Sprintf("JSON Schema for %s types generated from Go structs", group.Name),
		"$defs":       definitions,
	}
}

// writeSchema writes a schema to a JSON file
func writeSchema(schema map[string]any, path string) error {
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
