package core

import (
	"encoding/binary"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// RecordType identifies the kind of memory a record holds.
type RecordType int

const (
	// RecordTypeObservation represents a free-form observed fact.
	RecordTypeObservation RecordType = iota + 1
	// RecordTypeEntity represents a named entity.
	RecordTypeEntity
	// RecordTypeRelation represents a relation between entities.
	RecordTypeRelation
	// RecordTypePreference represents a stated user preference.
	RecordTypePreference
)

var recordTypeNames = map[RecordType]string{
	RecordTypeObservation: "observation",
	RecordTypeEntity:      "entity",
	RecordTypeRelation:    "relation",
	RecordTypePreference:  "preference",
}

// String returns the canonical lower-case name of the record type.
func (t RecordType) String() string {
	if name, ok := recordTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseRecordType converts a record type name to a RecordType.
// Returns ErrInvalidRecordType for unrecognized names.
func ParseRecordType(name string) (RecordType, error) {
	for t, n := range recordTypeNames {
		if n == name {
			return t, nil
		}
	}
	return 0, ErrInvalidRecordType
}

// MemoryRecord is a single remembered fact.
//
// Content holds the record payload in its canonical string serialization.
// Structured payloads are serialized at the boundary (see ContentJSON); the
// search engine only ever consumes the string view.
//
// LastAccessedAt and AccessCount are bookkeeping fields maintained by the
// owning store, never by the search engine.
type MemoryRecord struct {
	Id             ID
	Type           RecordType
	Content        string
	Tags           []string
	Importance     int // 0-10, set at creation
	CreatedAt      time.Time
	LastAccessedAt time.Time
	AccessCount    int64
	Metadata       map[string]string // Optional metadata (e.g., "source", "session")
}

// IdentityText returns the text the record's content-based ID is derived
// from. Two records with the same content and tags share an identity.
func (r *MemoryRecord) IdentityText() string {
	return r.Content + "|" + strings.Join(r.Tags, ",")
}

// ContentJSON serializes a structured payload into the canonical content
// string. Map keys are emitted in sorted order, so the result is
// deterministic for a given payload.
func ContentJSON(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
