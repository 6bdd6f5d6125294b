package core

import (
	"reflect"
	"testing"
	"time"
)

func TestMemoryRecordMUS_RoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 26, 53, 589000, time.UTC)

	record := MemoryRecord{
		Id:             IDFromContent("roundtrip"),
		Type:           RecordTypeObservation,
		Content:        `{"note":"fix the login bug"}`,
		Tags:           []string{"critical", "auth"},
		Importance:     7,
		CreatedAt:      created,
		LastAccessedAt: created.Add(48 * time.Hour),
		AccessCount:    3,
		Metadata:       map[string]string{"source": "session-12"},
	}

	buf := make([]byte, MemoryRecordMUS.Size(record))
	n := MemoryRecordMUS.Marshal(record, buf)
	if n != len(buf) {
		t.Fatalf("Marshal wrote %d bytes, Size reported %d", n, len(buf))
	}

	decoded, n, err := MemoryRecordMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if n != len(buf) {
		t.Fatalf("Unmarshal consumed %d bytes, expected %d", n, len(buf))
	}
	if !reflect.DeepEqual(record, decoded) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", decoded, record)
	}
}

func TestMemoryRecordMUS_ZeroAccessTime(t *testing.T) {
	record := MemoryRecord{
		Id:        1,
		Type:      RecordTypePreference,
		Content:   "prefers tabs",
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	buf := make([]byte, MemoryRecordMUS.Size(record))
	MemoryRecordMUS.Marshal(record, buf)

	decoded, _, err := MemoryRecordMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if !decoded.LastAccessedAt.IsZero() {
		t.Errorf("zero LastAccessedAt should round trip as zero, got %v", decoded.LastAccessedAt)
	}
}

func TestIDMUS_RoundTrip(t *testing.T) {
	id := IDFromContent("some identity")

	buf := make([]byte, IDMUS.Size(id))
	IDMUS.Marshal(id, buf)

	decoded, _, err := IDMUS.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if decoded != id {
		t.Errorf("round trip mismatch: got %d, want %d", decoded, id)
	}
}
