package spotlight

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Item is a single spotlight result the client can render and follow.
type Item struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

func NewQuickLink(label, href string) *QuickLink {
	return &QuickLink{label: label, href: href}
}

type QuickLink struct {
	label string
	href  string
}

type QuickLinks struct {
	items []*QuickLink
}

func (ql *QuickLinks) Add(links ...*QuickLink) {
	ql.items = append(ql.items, links...)
}

// Find ranks registered quick links against q using normalized case-folded
// fuzzy matching, best match first.
func (ql *QuickLinks) Find(q string) []Item {
	if len(ql.items) == 0 {
		return nil
	}
	words := make([]string, len(ql.items))
	for i, it := range ql.items {
		words[i] = it.label
	}
	ranks := fuzzy.RankFindNormalizedFold(q, words)
	sort.Sort(ranks)

	result := make([]Item, 0, len(ranks))
	for _, rank := range ranks {
		link := ql.items[rank.OriginalIndex]
		result = append(result, Item{Label: link.label, Href: link.href})
	}
	return result
}
