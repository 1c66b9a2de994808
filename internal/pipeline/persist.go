package pipeline

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/verdante/import-service/internal/metrics"
	"github.com/verdante/import-service/internal/store"
	"github.com/verdante/import-service/internal/telemetry"
	"github.com/verdante/import-service/internal/types"
)

// persist inserts records in order, one call each, and never stops early.
// identity returns the display name used in error messages and the slug
// recorded on the insert span.
func persist[T any](
	ctx context.Context,
	kind types.EntityKind,
	records []T,
	insert func(context.Context, T) error,
	identity func(T) (string, string),
) types.ImportResult {
	ctx, span := telemetry.Tracer().Start(ctx, "import."+string(kind),
		trace.WithAttributes(attribute.Int("import.total", len(records))))
	defer span.End()

	recorder := metrics.NewRecorder(string(kind))
	result := types.ImportResult{
		Total:  len(records),
		Errors: make([]string, 0),
	}

	for i, record := range records {
		name, slug := identity(record)

		recordCtx, recordSpan := telemetry.Tracer().Start(ctx, "import.insert",
			trace.WithAttributes(
				attribute.Int("import.index", i),
				attribute.String("import.slug", slug),
			))
		err := insert(recordCtx, record)
		if err != nil {
			recordSpan.RecordError(err)
			recordSpan.SetStatus(codes.Error, err.Error())
		}
		recordSpan.End()

		switch {
		case err == nil:
			result.Success++
			recorder.RecordRecord(metrics.ResultSuccess)
		case store.IsDuplicate(err):
			result.Failed++
			result.Errors = append(result.Errors, duplicateMessage(name, err))
			recorder.RecordRecord(metrics.ResultDuplicate)
		default:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Failed to import %q: %v", name, err))
			recorder.RecordRecord(metrics.ResultFailed)
		}
	}

	span.SetAttributes(
		attribute.Int("import.success", result.Success),
		attribute.Int("import.failed", result.Failed),
	)
	if result.Failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d of %d records failed", result.Failed, result.Total))
	}

	return result
}

// duplicateMessage names the record and the key that collided, as reported
// by the store.
func duplicateMessage(name string, err error) string {
	var storeErr *store.Error
	if errors.As(err, &storeErr) && storeErr.Message != "" {
		return fmt.Sprintf("Duplicate: %q: %s", name, storeErr.Message)
	}
	return fmt.Sprintf("Duplicate: %q already exists", name)
}
