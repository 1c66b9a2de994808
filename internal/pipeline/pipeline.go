// Package pipeline runs imports: parse the upload, normalize it, then persist
// every canonical record through the store one at a time.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/verdante/import-service/internal/metrics"
	"github.com/verdante/import-service/internal/parsers/csv"
	"github.com/verdante/import-service/internal/parsers/xlsx"
	"github.com/verdante/import-service/internal/storage"
	"github.com/verdante/import-service/internal/store"
	"github.com/verdante/import-service/internal/types"
)

var (
	// ErrNoRecords is returned when an upload yields no canonical records.
	// Nothing is persisted in that case.
	ErrNoRecords = errors.New("no valid records found")
	// ErrUnsupportedFormat is returned for product files of an unknown type
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Pipeline imports products and blog posts
type Pipeline struct {
	products store.ProductInserter
	posts    store.BlogPostInserter
	archive  storage.Storage
	logger   zerolog.Logger
	board    *Board

	csvOptions  csv.Options
	xlsxOptions xlsx.Options
	now         func() time.Time
}

// Option configures a Pipeline
type Option func(*Pipeline)

// WithArchive stores every accepted upload before it is persisted
func WithArchive(s storage.Storage) Option {
	return func(p *Pipeline) { p.archive = s }
}

// WithCSVOptions overrides the CSV tokenizer settings
func WithCSVOptions(opts csv.Options) Option {
	return func(p *Pipeline) { p.csvOptions = opts }
}

// WithXLSXOptions selects the workbook sheet to read
func WithXLSXOptions(opts xlsx.Options) Option {
	return func(p *Pipeline) { p.xlsxOptions = opts }
}

// WithClock replaces time.Now for run timestamps
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// WithBoard shares a result board between pipelines
func WithBoard(b *Board) Option {
	return func(p *Pipeline) { p.board = b }
}

// New creates a pipeline writing through inserter
func New(inserter store.Inserter, logger zerolog.Logger, opts ...Option) *Pipeline {
	p := &Pipeline{
		products:   inserter,
		posts:      inserter,
		logger:     logger.With().Str("component", "pipeline").Logger(),
		board:      NewBoard(),
		csvOptions: csv.DefaultOptions(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ImportProducts parses a product file and persists every record in it.
// It returns a parse error, ErrNoRecords, or the run result.
func (p *Pipeline) ImportProducts(ctx context.Context, filename string, content []byte) (*types.ImportResult, error) {
	recorder := metrics.NewRecorder(string(types.EntityProducts))

	parsed, err := p.ParseProducts(filename, content)
	if err != nil {
		recorder.RecordRun(metrics.OutcomeParseError, 0)
		p.logger.Warn().Err(err).Str("filename", filename).Msg("Product file rejected")
		return nil, err
	}
	recorder.RecordDropped(parsed.Dropped)

	if len(parsed.Records) == 0 {
		recorder.RecordRun(metrics.OutcomeNoRecords, 0)
		p.logger.Warn().Str("filename", filename).Int("rows", parsed.TotalRows).Msg("No valid products found")
		return nil, ErrNoRecords
	}

	runID := uuid.NewString()
	p.logger.Info().
		Str("run_id", runID).
		Str("filename", filename).
		Int("rows", parsed.TotalRows).
		Int("dropped", parsed.Dropped).
		Msg("Parsed product file")
	p.archiveUpload(ctx, types.EntityProducts, runID, filename, content)

	return p.persistProducts(ctx, runID, parsed.Records), nil
}

// ImportBlogPosts parses a WordPress export and persists every post in it.
// It returns a parse error, ErrNoRecords, or the run result.
func (p *Pipeline) ImportBlogPosts(ctx context.Context, filename string, content []byte) (*types.ImportResult, error) {
	recorder := metrics.NewRecorder(string(types.EntityBlogPosts))

	parsed, err := p.ParseBlogPosts(content)
	if err != nil {
		recorder.RecordRun(metrics.OutcomeParseError, 0)
		p.logger.Warn().Err(err).Str("filename", filename).Msg("Blog export rejected")
		return nil, err
	}
	recorder.RecordDropped(parsed.Dropped)

	if len(parsed.Records) == 0 {
		recorder.RecordRun(metrics.OutcomeNoRecords, 0)
		p.logger.Warn().Str("filename", filename).Int("items", parsed.TotalItems).Msg("No valid blog posts found")
		return nil, ErrNoRecords
	}

	runID := uuid.NewString()
	p.logger.Info().
		Str("run_id", runID).
		Str("filename", filename).
		Int("items", parsed.TotalItems).
		Int("skipped", parsed.Skipped).
		Int("dropped", parsed.Dropped).
		Msg("Parsed blog export")
	p.archiveUpload(ctx, types.EntityBlogPosts, runID, filename, content)

	return p.persistBlogPosts(ctx, runID, parsed.Records), nil
}

// PersistProducts runs the orchestrator over already-normalized products
func (p *Pipeline) PersistProducts(ctx context.Context, records []types.ProductRecord) *types.ImportResult {
	return p.persistProducts(ctx, uuid.NewString(), records)
}

// PersistBlogPosts runs the orchestrator over already-normalized posts
func (p *Pipeline) PersistBlogPosts(ctx context.Context, records []types.BlogRecord) *types.ImportResult {
	return p.persistBlogPosts(ctx, uuid.NewString(), records)
}

// LastResult returns the most recent result for kind
func (p *Pipeline) LastResult(kind types.EntityKind) (types.ImportResult, bool) {
	return p.board.Get(kind)
}

func (p *Pipeline) persistProducts(ctx context.Context, runID string, records []types.ProductRecord) *types.ImportResult {
	return p.run(ctx, runID, types.EntityProducts, func(ctx context.Context) types.ImportResult {
		return persist(ctx, types.EntityProducts, records, p.products.InsertProduct, func(r types.ProductRecord) (string, string) {
			return r.Name, r.Slug
		})
	})
}

func (p *Pipeline) persistBlogPosts(ctx context.Context, runID string, records []types.BlogRecord) *types.ImportResult {
	return p.run(ctx, runID, types.EntityBlogPosts, func(ctx context.Context) types.ImportResult {
		return persist(ctx, types.EntityBlogPosts, records, p.posts.InsertBlogPost, func(r types.BlogRecord) (string, string) {
			return r.Title, r.Slug
		})
	})
}

// run stamps, logs and publishes one orchestrator pass
func (p *Pipeline) run(ctx context.Context, runID string, kind types.EntityKind, body func(context.Context) types.ImportResult) *types.ImportResult {
	recorder := metrics.NewRecorder(string(kind))
	done := recorder.Start()
	defer done()

	started := p.now()
	result := body(ctx)
	result.RunID = runID
	result.Entity = kind
	result.StartedAt = started
	result.FinishedAt = p.now()

	recorder.RecordRun(metrics.OutcomeOK, result.FinishedAt.Sub(started))
	p.board.Put(result)

	event := p.logger.Info()
	if result.Failed > 0 {
		event = p.logger.Warn()
	}
	event.
		Str("run_id", runID).
		Str("entity", string(kind)).
		Int("total", result.Total).
		Int("success", result.Success).
		Int("failed", result.Failed).
		Dur("duration", result.FinishedAt.Sub(started)).
		Msg("Import finished")

	return &result
}

// archiveUpload keeps a copy of the upload; failures are logged only
func (p *Pipeline) archiveUpload(ctx context.Context, kind types.EntityKind, runID, filename string, content []byte) {
	if p.archive == nil {
		return
	}
	at := p.now()
	key := storage.UploadKey(string(kind), runID, filename, at)
	err := p.archive.Put(ctx, key, content, &storage.Metadata{
		OriginalName: filename,
		Entity:       string(kind),
		RunID:        runID,
		UploadedAt:   at,
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("key", key).Msg("Failed to archive upload")
		return
	}
	p.logger.Debug().Str("key", key).Msg("Archived upload")
}
