package core

import (
	"sort"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// Hand-written MUS serializers for the domain types. Field order is part of
// the storage format and must not change between releases.
var (
	// IDMUS serializes ID values.
	IDMUS = idMUS{}
	// TimeMUS serializes timestamps at microsecond precision.
	TimeMUS = timeMUS{}
	// MemoryRecordMUS serializes MemoryRecord values.
	MemoryRecordMUS = memoryRecordMUS{}
)

type idMUS struct{}

func (idMUS) Marshal(id ID, bs []byte) int {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (ID, int, error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Skip(bs []byte) (int, error) {
	return varint.Uint64.Skip(bs)
}

// timeMUS encodes a presence flag followed by Unix microseconds, so the zero
// time round-trips as the zero time.
type timeMUS struct{}

func (timeMUS) Marshal(t time.Time, bs []byte) int {
	n := ord.Bool.Marshal(!t.IsZero(), bs)
	if t.IsZero() {
		return n
	}
	return n + varint.Int64.Marshal(t.UnixMicro(), bs[n:])
}

func (timeMUS) Unmarshal(bs []byte) (time.Time, int, error) {
	present, n, err := ord.Bool.Unmarshal(bs)
	if err != nil || !present {
		return time.Time{}, n, err
	}
	micros, n1, err := varint.Int64.Unmarshal(bs[n:])
	if err != nil {
		return time.Time{}, n + n1, err
	}
	return time.UnixMicro(micros).UTC(), n + n1, nil
}

func (timeMUS) Size(t time.Time) int {
	if t.IsZero() {
		return ord.Bool.Size(false)
	}
	return ord.Bool.Size(true) + varint.Int64.Size(t.UnixMicro())
}

type memoryRecordMUS struct{}

func (s memoryRecordMUS) Marshal(record MemoryRecord, bs []byte) int {
	n := IDMUS.Marshal(record.Id, bs)
	n += varint.PositiveInt.Marshal(int(record.Type), bs[n:])
	n += ord.String.Marshal(record.Content, bs[n:])
	n += varint.PositiveInt.Marshal(len(record.Tags), bs[n:])
	for _, tag := range record.Tags {
		n += ord.String.Marshal(tag, bs[n:])
	}
	n += varint.PositiveInt.Marshal(record.Importance, bs[n:])
	n += TimeMUS.Marshal(record.CreatedAt, bs[n:])
	n += TimeMUS.Marshal(record.LastAccessedAt, bs[n:])
	n += varint.Int64.Marshal(record.AccessCount, bs[n:])
	n += varint.PositiveInt.Marshal(len(record.Metadata), bs[n:])
	for _, key := range sortedKeys(record.Metadata) {
		n += ord.String.Marshal(key, bs[n:])
		n += ord.String.Marshal(record.Metadata[key], bs[n:])
	}
	return n
}

func (s memoryRecordMUS) Unmarshal(bs []byte) (record MemoryRecord, n int, err error) {
	var n1 int
	record.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var recordType int
	recordType, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	record.Type = RecordType(recordType)
	record.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var tagCount int
	tagCount, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if tagCount > 0 {
		record.Tags = make([]string, tagCount)
		for i := 0; i < tagCount; i++ {
			record.Tags[i], n1, err = ord.String.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
		}
	}
	record.Importance, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	record.CreatedAt, n1, err = TimeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	record.LastAccessedAt, n1, err = TimeMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	record.AccessCount, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var metaCount int
	metaCount, n1, err = varint.PositiveInt.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	if metaCount > 0 {
		record.Metadata = make(map[string]string, metaCount)
		for i := 0; i < metaCount; i++ {
			var key, value string
			key, n1, err = ord.String.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
			value, n1, err = ord.String.Unmarshal(bs[n:])
			n += n1
			if err != nil {
				return
			}
			record.Metadata[key] = value
		}
	}
	return
}

func (s memoryRecordMUS) Size(record MemoryRecord) int {
	size := IDMUS.Size(record.Id)
	size += varint.PositiveInt.Size(int(record.Type))
	size += ord.String.Size(record.Content)
	size += varint.PositiveInt.Size(len(record.Tags))
	for _, tag := range record.Tags {
		size += ord.String.Size(tag)
	}
	size += varint.PositiveInt.Size(record.Importance)
	size += TimeMUS.Size(record.CreatedAt)
	size += TimeMUS.Size(record.LastAccessedAt)
	size += varint.Int64.Size(record.AccessCount)
	size += varint.PositiveInt.Size(len(record.Metadata))
	for _, key := range sortedKeys(record.Metadata) {
		size += ord.String.Size(key)
		size += ord.String.Size(record.Metadata[key])
	}
	return size
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
