package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateMemoryRecord(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		record  *MemoryRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &MemoryRecord{
				Id:         1,
				Type:       RecordTypeObservation,
				Content:    "the deploy failed on friday",
				Importance: 5,
				CreatedAt:  validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid record with ID 0",
			record: &MemoryRecord{
				Type:      RecordTypePreference,
				Content:   "prefers dark mode",
				CreatedAt: validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid record with access bookkeeping",
			record: &MemoryRecord{
				Id:             1,
				Type:           RecordTypeEntity,
				Content:        "login service",
				CreatedAt:      validTime,
				LastAccessedAt: validTime.Add(30 * time.Minute),
				AccessCount:    12,
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidMemoryRecord,
		},
		{
			name: "empty content",
			record: &MemoryRecord{
				Id:        1,
				Type:      RecordTypeObservation,
				Content:   "",
				CreatedAt: validTime,
			},
			wantErr: ErrEmptyContent,
		},
		{
			name: "invalid record type",
			record: &MemoryRecord{
				Id:        1,
				Type:      RecordType(999),
				Content:   "something",
				CreatedAt: validTime,
			},
			wantErr: ErrInvalidRecordType,
		},
		{
			name: "importance out of range",
			record: &MemoryRecord{
				Id:         1,
				Type:       RecordTypeObservation,
				Content:    "something",
				Importance: 11,
				CreatedAt:  validTime,
			},
			wantErr: ErrInvalidImportance,
		},
		{
			name: "negative importance",
			record: &MemoryRecord{
				Id:         1,
				Type:       RecordTypeObservation,
				Content:    "something",
				Importance: -1,
				CreatedAt:  validTime,
			},
			wantErr: ErrInvalidImportance,
		},
		{
			name: "future creation time",
			record: &MemoryRecord{
				Id:        1,
				Type:      RecordTypeObservation,
				Content:   "something",
				CreatedAt: futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
		{
			name: "access before creation",
			record: &MemoryRecord{
				Id:             1,
				Type:           RecordTypeObservation,
				Content:        "something",
				CreatedAt:      validTime,
				LastAccessedAt: validTime.Add(-1 * time.Minute),
			},
			wantErr: ErrAccessBeforeCreation,
		},
		{
			name: "negative access count",
			record: &MemoryRecord{
				Id:          1,
				Type:        RecordTypeObservation,
				Content:     "something",
				CreatedAt:   validTime,
				AccessCount: -1,
			},
			wantErr: ErrNegativeAccessCount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMemoryRecord(tt.record)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateMemoryRecord() unexpected error: %v", err)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateMemoryRecord() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidMemoryRecord) {
				t.Errorf("ValidateMemoryRecord() error = %v, want wrapped %v", err, ErrInvalidMemoryRecord)
			}
		})
	}
}

func TestValidateRecordType(t *testing.T) {
	for _, recordType := range []RecordType{RecordTypeObservation, RecordTypeEntity, RecordTypeRelation, RecordTypePreference} {
		if err := ValidateRecordType(recordType); err != nil {
			t.Errorf("ValidateRecordType(%v) returned error: %v", recordType, err)
		}
	}

	if err := ValidateRecordType(RecordType(0)); err == nil {
		t.Errorf("ValidateRecordType(0) expected error")
	}
}

func TestIsValidTimestamp(t *testing.T) {
	if !IsValidTimestamp(time.Now().Add(-1 * time.Second)) {
		t.Errorf("past timestamp should be valid")
	}
	if IsValidTimestamp(time.Now().Add(1 * time.Hour)) {
		t.Errorf("future timestamp should be invalid")
	}
}
