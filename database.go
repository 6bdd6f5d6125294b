// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package memrank

import (
	"context"
	"log/slog"

	"github.com/poiesic/memrank/core"
	"github.com/poiesic/memrank/ingest"
	"github.com/poiesic/memrank/search"
	"github.com/poiesic/memrank/storage"
	"github.com/poiesic/memrank/storage/badger"
)

// Database bundles a memory repository with a search engine and an ingest
// pipeline. It is the main entry point for embedding memrank in a program.
type Database struct {
	repo        storage.MemoryRepository
	engine      *search.Engine
	pipeline    *ingest.Pipeline
	touchOnRead bool
	logger      *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	inMemory    bool
	touchOnRead bool
	engineOpts  []search.Option
	ingestOpts  []ingest.Option
	logger      *slog.Logger
}

// WithInMemory keeps all records in memory instead of on disk.
// Mostly useful for tests and short-lived tooling.
func WithInMemory() DatabaseOption {
	return func(o *databaseOptions) {
		o.inMemory = true
	}
}

// WithTouchOnRead controls whether records returned by Search get their
// access bookkeeping updated. Enabled by default; disabling it makes
// searches strictly read-only.
func WithTouchOnRead(enabled bool) DatabaseOption {
	return func(o *databaseOptions) {
		o.touchOnRead = enabled
	}
}

// WithEngineOptions forwards options to the search engine.
func WithEngineOptions(opts ...search.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// WithIngestOptions forwards options to the ingest pipeline.
func WithIngestOptions(opts ...ingest.Option) DatabaseOption {
	return func(o *databaseOptions) {
		o.ingestOpts = append(o.ingestOpts, opts...)
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) DatabaseOption {
	return func(o *databaseOptions) {
		o.logger = logger
	}
}

// NewDatabase opens (or creates) a memrank database at filePath.
func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	options := &databaseOptions{
		touchOnRead: true,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	var (
		repo storage.MemoryRepository
		err  error
	)
	if options.inMemory {
		repo, err = badger.NewMemoryRepository()
	} else {
		repo, err = badger.NewRepository(filePath)
	}
	if err != nil {
		return nil, err
	}

	engineOpts := append([]search.Option{search.WithLogger(options.logger)}, options.engineOpts...)
	engine, err := search.NewEngine(engineOpts...)
	if err != nil {
		repo.Close()
		return nil, err
	}

	ingestOpts := append([]ingest.Option{ingest.WithLogger(options.logger)}, options.ingestOpts...)
	pipeline, err := ingest.NewPipeline(repo, ingestOpts...)
	if err != nil {
		engine.Release()
		repo.Close()
		return nil, err
	}

	return &Database{
		repo:        repo,
		engine:      engine,
		pipeline:    pipeline,
		touchOnRead: options.touchOnRead,
		logger:      options.logger,
	}, nil
}

// Close releases the pipeline, the engine, and the underlying storage.
func (db *Database) Close() error {
	db.pipeline.Release()
	db.engine.Release()

	if err := db.repo.Close(); err != nil {
		db.logger.Error("error closing storage", "err", err)
		return err
	}
	return nil
}

// Repository exposes the underlying memory repository.
func (db *Database) Repository() storage.MemoryRepository {
	return db.repo
}

// Remember stores one or more content strings as memory records of the
// given type, with keyword-derived tags. It is a convenience wrapper over
// the ingest pipeline.
func (db *Database) Remember(ctx context.Context, recordType core.RecordType, contents ...string) ([]*core.MemoryRecord, error) {
	return db.pipeline.Ingest(ctx, recordType, contents, nil)
}

// Ingest stores content with full control over tags, importance, and
// metadata.
func (db *Database) Ingest(ctx context.Context, recordType core.RecordType, contents []string, opts *ingest.IngestOptions) ([]*core.MemoryRecord, error) {
	return db.pipeline.Ingest(ctx, recordType, contents, opts)
}

// Search runs the multi-strategy search over the full corpus.
//
// Records surfaced in the results get their access bookkeeping updated
// unless the database was opened with WithTouchOnRead(false). A touch
// failure is logged, never surfaced; search results are already in hand.
func (db *Database) Search(ctx context.Context, query string, opts search.Options) (*search.Outcome, error) {
	corpus, err := db.repo.GetAllMemories(ctx)
	if err != nil {
		return nil, err
	}

	outcome := db.engine.Search(query, corpus, opts)

	if db.touchOnRead && len(outcome.Results) > 0 {
		ids := make([]core.ID, len(outcome.Results))
		for i, result := range outcome.Results {
			ids[i] = result.Record.Id
		}
		if err := db.repo.TouchAccess(ctx, ids...); err != nil {
			db.logger.Error("error updating access bookkeeping", "err", err)
		}
	}

	return outcome, nil
}
