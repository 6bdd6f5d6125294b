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


package core

import (
	"fmt"
	"time"
)

// ValidateMemoryRecord validates a MemoryRecord according to domain rules.
//
// Validation rules:
//   - Content must not be empty
//   - Type must be a known RecordType
//   - Importance must be within 0-10
//   - CreatedAt must not be in the future
//   - LastAccessedAt, when set, must not precede CreatedAt
//   - AccessCount must not be negative
//
// NOT validated:
//   - ID (0 is valid before the store assigns a content-based ID)
//   - Tags and Metadata (may be empty)
func ValidateMemoryRecord(record *MemoryRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidMemoryRecord)
	}

	if record.Content == "" {
		return fmt.Errorf("%w: %w", ErrInvalidMemoryRecord, ErrEmptyContent)
	}

	if err := ValidateRecordType(record.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMemoryRecord, err)
	}

	if record.Importance < 0 || record.Importance > 10 {
		return fmt.Errorf("%w: %w: value %d", ErrInvalidMemoryRecord, ErrInvalidImportance, record.Importance)
	}

	if !IsValidTimestamp(record.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidMemoryRecord, ErrInvalidTimestamp)
	}

	if !record.LastAccessedAt.IsZero() && record.LastAccessedAt.Before(record.CreatedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidMemoryRecord, ErrAccessBeforeCreation)
	}

	if record.AccessCount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMemoryRecord, ErrNegativeAccessCount)
	}

	return nil
}

// ValidateRecordType validates that a RecordType has a valid value.
func ValidateRecordType(recordType RecordType) error {
	if _, ok := recordTypeNames[recordType]; !ok {
		return fmt.Errorf("%w: value %d", ErrInvalidRecordType, recordType)
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
