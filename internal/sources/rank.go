package sources

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

type tier int

const (
	tierPrefix tier = iota
	tierSubstring
	tierFuzzy
)

type scored struct {
	item  Item
	tier  tier
	score int
}

// Rank filters items against query. Prefix matches come first, then
// substring matches by position, then labels within a small edit distance of
// the query. Matching ignores case. An empty query keeps every item. A
// positive limit truncates the result.
func Rank(items []Item, query string, limit int) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return truncate(append([]Item(nil), items...), limit)
	}

	maxDistance := (utf8.RuneCountInString(query) + 1) / 2
	matches := make([]scored, 0, len(items))
	for _, item := range items {
		label := strings.ToLower(item.Label)
		switch pos := strings.Index(label, query); {
		case pos == 0:
			matches = append(matches, scored{item: item, tier: tierPrefix})
		case pos > 0:
			matches = append(matches, scored{item: item, tier: tierSubstring, score: pos})
		default:
			if d := levenshtein.ComputeDistance(query, label); d <= maxDistance {
				matches = append(matches, scored{item: item, tier: tierFuzzy, score: d})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].tier != matches[j].tier {
			return matches[i].tier < matches[j].tier
		}
		return matches[i].score < matches[j].score
	})

	out := make([]Item, len(matches))
	for i, m := range matches {
		out[i] = m.item
	}
	return truncate(out, limit)
}

// Boost moves the items whose key appears in recent to the front, in the
// order of recent. The rest keep their relative order.
func Boost(items []Item, recent []string) []Item {
	if len(recent) == 0 {
		return items
	}
	rank := make(map[string]int, len(recent))
	for i, key := range recent {
		if _, seen := rank[key]; !seen {
			rank[key] = i
		}
	}
	out := append([]Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, okI := rank[out[i].Key()]
		rj, okJ := rank[out[j].Key()]
		switch {
		case okI && okJ:
			return ri < rj
		default:
			return okI && !okJ
		}
	})
	return out
}

func truncate(items []Item, limit int) []Item {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
