package buying

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// GroupByZone partitions items by zone name. Groups are ordered by zone name
// and items by ingredient name, so grouping its own flattened output again
// yields the same result. The input slice is left untouched.
//
// Zones are matched on name only: two unresolved zones sharing the fallback
// label end up in the same group.
func GroupByZone(items []Item) []Group {
	return GroupByZoneIn(items, DefaultLanguage)
}

// GroupByZoneIn is GroupByZone with an explicit collation language.
func GroupByZoneIn(items []Item, tag language.Tag) []Group {
	index := make(map[string]int)
	groups := make([]Group, 0)

	for _, item := range items {
		i, ok := index[item.ZoneName]
		if !ok {
			i = len(groups)
			index[item.ZoneName] = i
			groups = append(groups, Group{ZoneName: item.ZoneName})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	c := collate.New(tag)

	for _, g := range groups {
		sort.SliceStable(g.Items, func(i, j int) bool {
			a, b := g.Items[i], g.Items[j]
			if n := c.CompareString(a.IngredientName, b.IngredientName); n != 0 {
				return n < 0
			}
			return a.IngredientID < b.IngredientID
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return c.CompareString(groups[i].ZoneName, groups[j].ZoneName) < 0
	})

	return groups
}

// Flatten concatenates groups back into a single list.
func Flatten(groups []Group) []Item {
	var n int
	for _, g := range groups {
		n += len(g.Items)
	}

	items := make([]Item, 0, n)
	for _, g := range groups {
		items = append(items, g.Items...)
	}
	return items
}
