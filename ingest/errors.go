package ingest

import "errors"

var (
	// ErrRepositoryRequired is returned when a memory repository is not provided.
	ErrRepositoryRequired = errors.New("memory repository required")

	// ErrNoContent is returned when an ingest call carries no content.
	ErrNoContent = errors.New("no content to ingest")
)
