package freq

import (
	"sort"
)

// Entry is a token with its accumulated count.
type Entry struct {
	Word  string
	Count int
}

// Table accumulates token counts. Alongside the counts it keeps the
// order in which tokens were first recorded, which serves as the
// tie-break for TopN: equal counts rank in first-seen order.
type Table struct {
	counts map[string]int
	order  []string
	total  int
}

// NewTable creates an empty frequency table.
func NewTable() *Table {
	return &Table{counts: make(map[string]int)}
}

// Record increments the count for token, inserting it at count 1 if
// unseen.
func (t *Table) Record(token string) {
	t.total++
	if _, ok := t.counts[token]; !ok {
		t.order = append(t.order, token)
	}
	t.counts[token]++
}

// Count returns the accumulated count for token, 0 if never recorded.
func (t *Table) Count(token string) int {
	return t.counts[token]
}

// Total returns the cumulative number of Record calls, not the number
// of distinct tokens.
func (t *Table) Total() int {
	return t.total
}

// Distinct returns the number of distinct tokens recorded.
func (t *Table) Distinct() int {
	return len(t.order)
}

// Entries returns all entries in first-seen order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.order))
	for _, w := range t.order {
		entries = append(entries, Entry{Word: w, Count: t.counts[w]})
	}
	return entries
}

// TopN returns the n highest-count entries, descending by count. Equal
// counts keep first-seen order (stable sort over insertion order).
func (t *Table) TopN(n int) []Entry {
	entries := t.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Merge folds other into t. Tokens unseen by t take their first-seen
// position at the end, in other's order.
func (t *Table) Merge(other *Table) {
	for _, w := range other.order {
		if _, ok := t.counts[w]; !ok {
			t.order = append(t.order, w)
		}
		t.counts[w] += other.counts[w]
	}
	t.total += other.total
}
