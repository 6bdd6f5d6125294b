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

import "errors"

// Domain validation errors
var (
	// ErrInvalidMemoryRecord indicates a MemoryRecord failed validation.
	ErrInvalidMemoryRecord = errors.New("invalid memory record")

	// ErrEmptyContent indicates the Content field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidRecordType indicates an invalid RecordType value.
	ErrInvalidRecordType = errors.New("invalid record type")

	// ErrInvalidImportance indicates an Importance value outside 0-10.
	ErrInvalidImportance = errors.New("importance must be between 0 and 10")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")

	// ErrAccessBeforeCreation indicates LastAccessedAt precedes CreatedAt.
	ErrAccessBeforeCreation = errors.New("last access cannot precede creation")

	// ErrNegativeAccessCount indicates a negative AccessCount value.
	ErrNegativeAccessCount = errors.New("access count cannot be negative")
)
