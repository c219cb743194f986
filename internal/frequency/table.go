package frequency

import "summify/internal/domain"

// Entry is one term of a Table.
type Entry struct {
	Term   string
	Count  int
	Weight float64
}

// Table maps content terms to weights in [0, 1]; the most frequent term has
// weight 1. A Table is read-only once built.
type Table struct {
	entries []Entry
	index   map[string]int
}

// Build counts the non-stopword tokens of every sentence and normalizes the
// counts by the maximum. With no content tokens the table is empty. A nil
// stops counts every token.
func Build(sentences []domain.Sentence, stops domain.StopwordSet) Table {
	t := Table{index: make(map[string]int)}
	maxCount := 0
	for _, s := range sentences {
		for _, tok := range s.Tokens {
			if stops != nil && stops.Contains(tok) {
				continue
			}
			i, ok := t.index[tok]
			if !ok {
				i = len(t.entries)
				t.index[tok] = i
				t.entries = append(t.entries, Entry{Term: tok})
			}
			t.entries[i].Count++
			if t.entries[i].Count > maxCount {
				maxCount = t.entries[i].Count
			}
		}
	}
	if maxCount == 0 {
		return t
	}
	for i := range t.entries {
		t.entries[i].Weight = float64(t.entries[i].Count) / float64(maxCount)
	}
	return t
}

// Weight returns the normalized weight of term, or 0 if absent.
func (t Table) Weight(term string) float64 {
	if i, ok := t.index[term]; ok {
		return t.entries[i].Weight
	}
	return 0
}

// Len returns the number of distinct content terms.
func (t Table) Len() int { return len(t.entries) }

// Entries returns a copy of the entries in first-seen order.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}
