package badger

import (
	"encoding/binary"
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/memrank/core"
)

// Key prefixes for different data types
const (
	memoryRecordPrefix     = "memrec"
	memoryRecordDatePrefix = "memrecd"
	memoryRecordTagPrefix  = "memrect"
)

// makeMemoryRecordKey generates a key for a memory record by ID.
func makeMemoryRecordKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", memoryRecordPrefix, id))
}

// makeMemoryDateKey generates a composite key for the creation-date index.
// Format: prefix:timestamp:id
func makeMemoryDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := memoryRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makeMemoryTagKey generates a composite key for the tag index.
// Tags are lowered so lookups are case-insensitive.
// Format: prefix:tag:id
func makeMemoryTagKey(tag string, id core.ID) []byte {
	prefix := memoryRecordTagPrefix + ":" + strings.ToLower(tag) + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialMemoryTagKey generates a partial key for tag queries.
// Format: prefix:tag:
func makePartialMemoryTagKey(tag string) []byte {
	return []byte(memoryRecordTagPrefix + ":" + strings.ToLower(tag) + ":")
}
