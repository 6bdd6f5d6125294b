package ingest

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/memrank/core"
	"github.com/poiesic/memrank/search"
	"github.com/poiesic/memrank/storage"
)

const defaultChunkSize = 64

// Pipeline orchestrates validation, tagging, and storage of memory records.
type Pipeline struct {
	repository storage.MemoryRepository
	pool       *ants.Pool
	chunkSize  int
	autoTag    bool
	logger     *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithAutoTag controls whether tags are derived from record content using
// the shared keyword table. Enabled by default.
func WithAutoTag(enabled bool) Option {
	return func(p *Pipeline) error {
		p.autoTag = enabled
		return nil
	}
}

// WithChunkSize sets the number of records written per storage transaction.
func WithChunkSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = defaultChunkSize
		}
		p.chunkSize = size
		return nil
	}
}

// NewPipeline creates a new ingest pipeline.
func NewPipeline(repository storage.MemoryRepository, opts ...Option) (*Pipeline, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		repository: repository,
		pool:       pool,
		chunkSize:  defaultChunkSize,
		autoTag:    true,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// IngestOptions holds optional parameters for ingestion.
type IngestOptions struct {
	Tags       []string          // Tags applied to every record in the batch
	Importance int               // 0-10, applied to every record in the batch
	Metadata   map[string]string // Optional metadata to attach to records
	CreatedAt  time.Time         // Optional timestamp (uses current time if zero)
}

// Ingest validates and stores each content string as a memory record of the
// given type. Tags are the union of opts.Tags and, when auto-tagging is
// enabled, tags suggested by the keyword table for the content. Batches
// larger than the chunk size are written concurrently.
//
// Returns the stored records with IDs and timestamps populated.
func (p *Pipeline) Ingest(ctx context.Context, recordType core.RecordType, contents []string, opts *IngestOptions) ([]*core.MemoryRecord, error) {
	if len(contents) == 0 {
		return nil, ErrNoContent
	}
	if opts == nil {
		opts = &IngestOptions{}
	}

	records := make([]*core.MemoryRecord, len(contents))
	for i, content := range contents {
		createdAt := opts.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}

		record := &core.MemoryRecord{
			Type:       recordType,
			Content:    content,
			Tags:       p.deriveTags(content, opts.Tags),
			Importance: opts.Importance,
			CreatedAt:  createdAt,
			Metadata:   opts.Metadata,
		}

		if err := core.ValidateMemoryRecord(record); err != nil {
			return nil, err
		}

		records[i] = record
	}

	if len(records) <= p.chunkSize {
		return p.repository.AddMemories(ctx, records...)
	}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		writeErrs []error
	)

	for start := 0; start < len(records); start += p.chunkSize {
		end := start + p.chunkSize
		if end > len(records) {
			end = len(records)
		}
		chunk := records[start:end]

		wg.Add(1)
		task := func() {
			defer wg.Done()
			if _, err := p.repository.AddMemories(ctx, chunk...); err != nil {
				p.logger.Error("error writing memory batch", "err", err, "size", len(chunk))
				mu.Lock()
				writeErrs = append(writeErrs, err)
				mu.Unlock()
			}
		}
		if err := p.pool.Submit(task); err != nil {
			// Pool rejected the task (released or overloaded); run inline.
			task()
		}
	}

	wg.Wait()

	if len(writeErrs) > 0 {
		return nil, errors.Join(writeErrs...)
	}
	return records, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// deriveTags merges explicit tags with keyword-table suggestions, dedupes,
// and returns them sorted for a stable record identity.
func (p *Pipeline) deriveTags(content string, explicit []string) []string {
	tagSet := make(map[string]bool, len(explicit))
	for _, tag := range explicit {
		tagSet[tag] = true
	}
	if p.autoTag {
		for _, tag := range search.SuggestTags(content) {
			tagSet[tag] = true
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
