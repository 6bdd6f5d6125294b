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


// Package search implements multi-strategy relevance ranking over memory
// records.
//
// A query is first classified by Analyze (exact, fuzzy, semantic or
// tag-based) and candidate tags are extracted from a static keyword table.
// Five independent strategies then score the corpus:
//
//   - exact-match: verbatim substring hits in content and tags
//   - tag-based: extracted tags against record tags
//   - fuzzy-content: token-level edit-distance similarity
//   - semantic-similarity: word overlap with concept/synonym expansion
//   - partial-match: per-fragment substring containment
//
// The combiner applies static strategy weights and an optional time-decay
// weight, keeps the single strongest signal per record, filters by minimum
// score, and returns a bounded ranked list. Every stage degrades to "no
// contribution" rather than failing; the only user-visible failure mode is
// an empty result set.
//
// The engine holds no mutable state after construction and never mutates the
// corpus, so a single Engine may be shared by concurrent callers.
package search
