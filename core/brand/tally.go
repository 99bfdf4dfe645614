package brand

import "sort"

// tally counts occurrences of string values and remembers first-seen order
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(v string) {
	if _, seen := t.counts[v]; !seen {
		t.order = append(t.order, v)
	}
	t.counts[v]++
}

// ranked returns distinct values by count descending, ties by first occurrence
func (t *tally) ranked() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	sort.SliceStable(out, func(i, j int) bool {
		return t.counts[out[i]] > t.counts[out[j]]
	})
	return out
}

// top returns the most frequent value accepted by keep, or ""
func (t *tally) top(keep func(string) bool) string {
	for _, v := range t.ranked() {
		if keep == nil || keep(v) {
			return v
		}
	}
	return ""
}
