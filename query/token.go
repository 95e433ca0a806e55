// Package query turns user-typed search text into a storage-independent
// query plan: a token classifier, a small predicate tree, and a compiler
// that assembles the plan for the post search. Nothing in here touches the
// database; repositories lower the plan into SQL.
package query

import (
	"sort"
	"strings"
)

const (
	NegativePrefix = "-"
	RatingPrefix   = "rating:"
)

// TokenSets are the four disjoint, normalized filter sets parsed out of one
// query string. Slices are sorted and duplicate-free so compiled plans are
// deterministic.
type TokenSets struct {
	IncludeTags    []string
	ExcludeTags    []string
	IncludeRatings []string
	ExcludeRatings []string
}

// Classify splits text on whitespace and routes every token into exactly one
// set. Tokens are lowercased first. A leading "-" negates; a "rating:"
// prefix (checked after the negation is stripped) selects the rating sets.
// A tag that merely equals a rating value stays a tag: only the explicit
// prefix switches interpretation.
func Classify(text string) TokenSets {
	include := map[string]struct{}{}
	exclude := map[string]struct{}{}
	includeRatings := map[string]struct{}{}
	excludeRatings := map[string]struct{}{}

	for _, token := range strings.Fields(text) {
		token = strings.ToLower(token)
		if rest, ok := strings.CutPrefix(token, NegativePrefix); ok {
			if rating, ok := strings.CutPrefix(rest, RatingPrefix); ok {
				excludeRatings[rating] = struct{}{}
			} else if rest != "" {
				exclude[rest] = struct{}{}
			}
		} else if rating, ok := strings.CutPrefix(token, RatingPrefix); ok {
			includeRatings[rating] = struct{}{}
		} else {
			include[token] = struct{}{}
		}
	}

	return TokenSets{
		IncludeTags:    sortedKeys(include),
		ExcludeTags:    sortedKeys(exclude),
		IncludeRatings: sortedKeys(includeRatings),
		ExcludeRatings: sortedKeys(excludeRatings),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// CompletionKind says which completion list the in-progress token wants.
type CompletionKind int

const (
	CompleteNone CompletionKind = iota
	CompleteRating
	CompleteTag
)

// CurrentToken classifies the token under the caret for autocomplete. It
// looks only at text up to the caret, takes the last space-separated word,
// and reports the kind, the stem to match (negation stripped, lowercased)
// and whether the token was negated. It never runs a content query.
func CurrentToken(text string, caret int) (kind CompletionKind, stem string, negated bool) {
	if caret > len(text) {
		caret = len(text)
	}
	if caret < 0 {
		caret = 0
	}
	head := text[:caret]
	token := head
	if idx := strings.LastIndex(head, " "); idx >= 0 {
		token = head[idx+1:]
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return CompleteNone, "", false
	}
	if rest, ok := strings.CutPrefix(token, NegativePrefix); ok {
		negated = true
		token = rest
	}
	stem = strings.ToLower(token)
	if stem == "" {
		return CompleteNone, "", negated
	}
	// "r", "ra", ... up to "rating:" all complete as rating tokens; anything
	// that is a prefix of the prefix could still become one, but only a full
	// "rating:" start switches lists, matching the search syntax.
	if strings.HasPrefix(stem, RatingPrefix) {
		return CompleteRating, stem, negated
	}
	return CompleteTag, stem, negated
}
