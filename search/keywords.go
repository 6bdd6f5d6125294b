package search

import (
	"sort"
	"strings"
)

// keywordTags maps query keywords to the canonical tags they expand to.
// Checked by substring containment against the normalized query.
var keywordTags = map[string][]string{
	"bug":      {"bugs", "debugging"},
	"error":    {"bugs", "errors", "debugging"},
	"crash":    {"bugs", "errors", "stability"},
	"urgent":   {"critical-issues", "high-priority"},
	"critical": {"critical-issues", "high-priority"},
	"security": {"security", "vulnerabilities"},
	"auth":     {"authentication", "security"},
	"login":    {"authentication", "sessions"},
	"config":   {"configuration", "settings"},
	"setting":  {"configuration", "settings"},
	"deploy":   {"deployment", "release"},
	"release":  {"deployment", "release"},
	"test":     {"testing", "quality"},
	"database": {"database", "storage"},
	"storage":  {"database", "storage"},
	"perf":     {"performance", "optimization"},
	"slow":     {"performance", "optimization"},
	"api":      {"api", "endpoints"},
	"docs":     {"documentation"},
	"refactor": {"refactoring", "code-quality"},
	"style":    {"code-quality", "formatting"},
	"user":     {"users", "accounts"},
	"prefer":   {"preferences"},
}

// keywordList holds the keyword table keys in sorted order so that tag
// extraction is deterministic.
var keywordList = func() []string {
	keywords := make([]string, 0, len(keywordTags))
	for keyword := range keywordTags {
		keywords = append(keywords, keyword)
	}
	sort.Strings(keywords)
	return keywords
}()

// SuggestTags returns the canonical tags whose keywords appear in text.
// Unlike Analyze, it does not add heuristic content words, so it is suitable
// for auto-tagging records at ingest time without flooding the tag index.
func SuggestTags(text string) []string {
	normalized := strings.ToLower(strings.TrimSpace(text))

	tagSet := make(map[string]bool)
	for _, keyword := range keywordList {
		if strings.Contains(normalized, keyword) {
			for _, tag := range keywordTags[keyword] {
				tagSet[tag] = true
			}
		}
	}

	tags := make([]string, 0, len(tagSet))
	for tag := range tagSet {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// conceptTerms maps a query word to related terms that count as conceptual
// matches for the semantic strategy.
var conceptTerms = map[string][]string{
	"error":    {"bug", "issue", "problem", "exception", "failure"},
	"bug":      {"error", "defect", "issue", "fault"},
	"fix":      {"repair", "resolve", "patch", "solve", "correct"},
	"create":   {"add", "new", "make", "build", "generate"},
	"delete":   {"remove", "destroy", "drop", "clean"},
	"update":   {"change", "modify", "edit", "revise"},
	"fast":     {"quick", "rapid", "speedy", "performance"},
	"slow":     {"sluggish", "laggy", "delayed", "timeout"},
	"user":     {"person", "account", "profile", "member"},
	"search":   {"find", "query", "lookup", "locate"},
	"config":   {"configuration", "settings", "options", "preferences"},
	"deploy":   {"release", "ship", "publish", "rollout"},
	"test":     {"check", "verify", "validate", "assert"},
	"security": {"auth", "vulnerability", "permission", "encryption"},
	"data":     {"record", "information", "storage", "database"},
}
