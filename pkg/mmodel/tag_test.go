package mmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareTagList(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "normalizes case whitespace and hashes",
			input: []string{" Vegan ", "#organic", "VEGAN"},
			want:  []string{"organic", "vegan"},
		},
		{
			name:  "drops blanks",
			input: []string{"", "  ", "#", "fair"},
			want:  []string{"fair"},
		},
		{
			name:  "sorted output",
			input: []string{"zebra", "apple"},
			want:  []string{"apple", "zebra"},
		},
		{
			name:  "empty input",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrepareTagList(tt.input))
		})
	}
}

func TestPrepareTagListIdempotent(t *testing.T) {
	once := PrepareTagList([]string{"#B", " a ", "b"})
	twice := PrepareTagList(once)

	assert.Equal(t, once, twice)
}

func TestDiffTags(t *testing.T) {
	diff := DiffTags([]string{"a", "b", "c"}, []string{"b", "c", "d"})

	assert.Equal(t, []string{"d"}, diff.Added)
	assert.Equal(t, []string{"a"}, diff.Removed)

	empty := DiffTags([]string{"a"}, []string{"a"})
	assert.Empty(t, empty.Added)
	assert.Empty(t, empty.Removed)
}

func TestMergeCategoryIDsIntoTags(t *testing.T) {
	merged := MergeCategoryIDsIntoTags([]ID{CategoryIDNonProfit}, []string{"vegan"})

	assert.Equal(t, []string{"vegan", "#" + string(CategoryIDNonProfit)}, merged)

	// After normalization the category tag is stored de-hashed.
	prepared := PrepareTagList(merged)
	assert.Contains(t, prepared, string(CategoryIDNonProfit))
}

func TestSplitCategoriesFromTags(t *testing.T) {
	categories, plain := SplitCategoriesFromTags([]string{
		"vegan", string(CategoryIDCommercial), "fair",
	})

	assert.Equal(t, []ID{CategoryIDCommercial}, categories)
	assert.Equal(t, []string{"vegan", "fair"}, plain)
}
