package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want TokenSets
	}{
		{
			name: "empty",
			text: "   ",
			want: TokenSets{},
		},
		{
			name: "plain tags",
			text: "forest river",
			want: TokenSets{IncludeTags: []string{"forest", "river"}},
		},
		{
			name: "lowercased and deduplicated",
			text: "Forest forest FOREST",
			want: TokenSets{IncludeTags: []string{"forest"}},
		},
		{
			name: "negated tag",
			text: "forest -river",
			want: TokenSets{
				IncludeTags: []string{"forest"},
				ExcludeTags: []string{"river"},
			},
		},
		{
			name: "rating filters",
			text: "rating:s -rating:e",
			want: TokenSets{
				IncludeRatings: []string{"s"},
				ExcludeRatings: []string{"e"},
			},
		},
		{
			name: "tag named like a rating value stays a tag",
			text: "s",
			want: TokenSets{IncludeTags: []string{"s"}},
		},
		{
			name: "bare dash is dropped",
			text: "- forest",
			want: TokenSets{IncludeTags: []string{"forest"}},
		},
		{
			name: "sets come out sorted",
			text: "zebra ant -zoo -ape",
			want: TokenSets{
				IncludeTags: []string{"ant", "zebra"},
				ExcludeTags: []string{"ape", "zoo"},
			},
		},
		{
			name: "everything at once",
			text: "Forest -swamp rating:q -rating:e river",
			want: TokenSets{
				IncludeTags:    []string{"forest", "river"},
				ExcludeTags:    []string{"swamp"},
				IncludeRatings: []string{"q"},
				ExcludeRatings: []string{"e"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.text))
		})
	}
}

func TestCurrentToken(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		caret       int
		wantKind    CompletionKind
		wantStem    string
		wantNegated bool
	}{
		{
			name:     "empty text",
			text:     "",
			caret:    0,
			wantKind: CompleteNone,
		},
		{
			name:     "caret after space",
			text:     "forest ",
			caret:    7,
			wantKind: CompleteNone,
		},
		{
			name:     "tag stem",
			text:     "fore",
			caret:    4,
			wantKind: CompleteTag,
			wantStem: "fore",
		},
		{
			name:     "only text before the caret counts",
			text:     "forest river",
			caret:    3,
			wantKind: CompleteTag,
			wantStem: "for",
		},
		{
			name:     "last word wins",
			text:     "forest riv",
			caret:    10,
			wantKind: CompleteTag,
			wantStem: "riv",
		},
		{
			name:        "negated tag",
			text:        "-fore",
			caret:       5,
			wantKind:    CompleteTag,
			wantStem:    "fore",
			wantNegated: true,
		},
		{
			name:     "rating prefix switches lists",
			text:     "rating:",
			caret:    7,
			wantKind: CompleteRating,
			wantStem: "rating:",
		},
		{
			name:        "negated rating keeps its negation",
			text:        "-rating:e",
			caret:       9,
			wantKind:    CompleteRating,
			wantStem:    "rating:e",
			wantNegated: true,
		},
		{
			name:     "partial prefix is still a tag",
			text:     "ratin",
			caret:    5,
			wantKind: CompleteTag,
			wantStem: "ratin",
		},
		{
			name:        "lone dash",
			text:        "-",
			caret:       1,
			wantKind:    CompleteNone,
			wantNegated: true,
		},
		{
			name:     "caret beyond the text clamps",
			text:     "fo",
			caret:    99,
			wantKind: CompleteTag,
			wantStem: "fo",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, stem, negated := CurrentToken(tt.text, tt.caret)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantStem, stem)
			assert.Equal(t, tt.wantNegated, negated)
		})
	}
}
