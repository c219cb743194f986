package keywords

import (
	"sort"

	"summify/internal/domain"
	"summify/internal/frequency"
)

// DefaultLimit is used when the caller does not ask for a specific count.
const DefaultLimit = 10

// Extract returns the limit heaviest terms of table, weight descending and
// alphabetical among equal weights.
func Extract(table frequency.Table, limit int) []domain.Keyword {
	if limit <= 0 {
		limit = DefaultLimit
	}
	entries := table.Entries()
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Weight != entries[j].Weight {
			return entries[i].Weight > entries[j].Weight
		}
		return entries[i].Term < entries[j].Term
	})
	if limit > len(entries) {
		limit = len(entries)
	}
	out := make([]domain.Keyword, limit)
	for i := 0; i < limit; i++ {
		out[i] = domain.Keyword{Term: entries[i].Term, Weight: entries[i].Weight}
	}
	return out
}
