// Package query implements the read-path pipeline over prompt listings:
// filter by collection, then search, then sort by recency. Each step takes a
// slice and returns a new one; inputs are never mutated, so the steps compose
// freely as long as sort runs last.
package query

import (
	"regexp"
	"sort"
	"strings"

	"promptlab-backend/internal/models"
)

// FilterByCollection keeps the prompts whose collection_id equals
// collectionID. The match is exact; prompts without a collection are never
// kept.
func FilterByCollection(prompts []models.Prompt, collectionID string) []models.Prompt {
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			out = append(out, p)
		}
	}
	return out
}

// Search keeps the prompts whose title or description contains the query,
// case-insensitively. A missing description matches nothing on its own.
func Search(prompts []models.Prompt, q string) []models.Prompt {
	q = strings.ToLower(q)
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Title), q) {
			out = append(out, p)
			continue
		}
		if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// SortByCreated orders prompts by created_at, newest first when descending.
// The sort is stable: prompts with equal timestamps keep their relative input
// order, so repeated calls always produce the same listing.
func SortByCreated(prompts []models.Prompt, descending bool) []models.Prompt {
	out := make([]models.Prompt, len(prompts))
	copy(out, prompts)
	sort.SliceStable(out, func(i, j int) bool {
		if descending {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

var variablePattern = regexp.MustCompile(`\{\{(\w+)\}\}`)

// ExtractVariables returns the template variable names referenced in content
// as {{name}}, in order of appearance.
func ExtractVariables(content string) []string {
	matches := variablePattern.FindAllStringSubmatch(content, -1)
	vars := make([]string, 0, len(matches))
	for _, m := range matches {
		vars = append(vars, m[1])
	}
	return vars
}
