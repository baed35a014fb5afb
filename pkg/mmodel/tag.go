package mmodel

import (
	"sort"
	"strings"
)

// Tag is a free-form label attached to places and events.
type Tag struct {
	Label string `json:"label"`
}

// TagFrequency is a tag together with the number of current place revisions
// carrying it.
type TagFrequency struct {
	Tag   string `json:"tag"`
	Count uint64 `json:"count"`
}

// Category is one of the fixed entry categories. Categories are persisted as
// tags using the "#{id}" convention.
type Category struct {
	ID   ID
	Name string
}

// The identifiers of the fixed categories, carried over from the original
// dataset.
const (
	CategoryIDNonProfit  ID = "2cd00bebec0c48ba9db761da48678134"
	CategoryIDCommercial ID = "77b3c33a92554bcf8e8c2c86cedd6f6f"
	CategoryIDEvent      ID = "c2dc278a2d6a4b9b8a50cb606fc017ed"
)

// Categories returns the fixed category set.
func Categories() []Category {
	return []Category{
		{ID: CategoryIDNonProfit, Name: "non-profit"},
		{ID: CategoryIDCommercial, Name: "commercial"},
		{ID: CategoryIDEvent, Name: "event"},
	}
}

// CategoryTag converts a category id into its tag representation.
func CategoryTag(id ID) string {
	return "#" + string(id)
}

// MergeCategoryIDsIntoTags appends the tag representation of each category id
// to the tag list.
func MergeCategoryIDsIntoTags(categoryIDs []ID, tags []string) []string {
	merged := make([]string, 0, len(tags)+len(categoryIDs))
	merged = append(merged, tags...)

	for _, id := range categoryIDs {
		merged = append(merged, CategoryTag(id))
	}

	return merged
}

// SplitCategoriesFromTags partitions a revision tag set into category ids and
// plain tags.
func SplitCategoriesFromTags(tags []string) ([]ID, []string) {
	var categoryIDs []ID

	var plain []string

	known := map[string]ID{
		string(CategoryIDNonProfit):  CategoryIDNonProfit,
		string(CategoryIDCommercial): CategoryIDCommercial,
		string(CategoryIDEvent):      CategoryIDEvent,
	}

	for _, t := range tags {
		if id, ok := known[t]; ok {
			categoryIDs = append(categoryIDs, id)
			continue
		}

		plain = append(plain, t)
	}

	return categoryIDs, plain
}

// PrepareTagList normalizes a raw tag list: lowercased, whitespace-trimmed,
// de-hashed, de-duplicated and sorted. Blank entries are dropped.
func PrepareTagList(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	prepared := make([]string, 0, len(tags))

	for _, t := range tags {
		t = strings.TrimSpace(strings.ToLower(t))
		t = strings.TrimPrefix(t, "#")
		t = strings.TrimSpace(t)

		if t == "" {
			continue
		}

		if _, ok := seen[t]; ok {
			continue
		}

		seen[t] = struct{}{}

		prepared = append(prepared, t)
	}

	sort.Strings(prepared)

	return prepared
}

// TagDiff is the added/removed split of two tag sets.
type TagDiff struct {
	Added   []string
	Removed []string
}

// DiffTags computes which tags were added to and removed from oldTags to
// arrive at newTags.
func DiffTags(oldTags, newTags []string) TagDiff {
	oldSet := make(map[string]struct{}, len(oldTags))
	for _, t := range oldTags {
		oldSet[t] = struct{}{}
	}

	newSet := make(map[string]struct{}, len(newTags))
	for _, t := range newTags {
		newSet[t] = struct{}{}
	}

	var diff TagDiff

	for _, t := range newTags {
		if _, ok := oldSet[t]; !ok {
			diff.Added = append(diff.Added, t)
		}
	}

	for _, t := range oldTags {
		if _, ok := newSet[t]; !ok {
			diff.Removed = append(diff.Removed, t)
		}
	}

	return diff
}
