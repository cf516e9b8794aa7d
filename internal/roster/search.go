package roster

import (
	"strings"

	"github.com/sakamichi-tools/penlight/internal/jptext"
	"github.com/sakamichi-tools/penlight/internal/pipeline"
)

// FavKey derives the stable favorite key for a member.
func FavKey(m Member) string {
	return m.Group + "|" + m.Gen + "|" + m.Name
}

// ByFavKey indexes the full roster by favorite key.
func ByFavKey() map[string]Member {
	idx := make(map[string]Member, len(allMembers))
	for _, m := range allMembers {
		idx[FavKey(m)] = m
	}
	return idx
}

// Gens returns the distinct generation labels for a group ("all" for every
// group), sorted with Japanese collation.
func Gens(group string) []string {
	seen := make(map[string]bool)
	var gens []string
	for _, m := range allMembers {
		if group != pipeline.All && m.Group != group {
			continue
		}
		if !seen[m.Gen] {
			seen[m.Gen] = true
			gens = append(gens, m.Gen)
		}
	}
	c := jptext.NewCollator()
	c.SortStrings(gens)
	return gens
}

// ValidGen reports whether gen is a known generation of group, or "all".
func ValidGen(group, gen string) bool {
	if gen == pipeline.All {
		return true
	}
	for _, g := range Gens(group) {
		if g == gen {
			return true
		}
	}
	return false
}

// Search runs the member pipeline: exact group/gen filters, free-text match
// over name, reading, nickname, group label, and generation, then a stable
// sort by group, generation (ja collation), and name (ja collation).
func Search(group, gen, query string) []Member {
	c := jptext.NewCollator()

	return pipeline.Query(allMembers, pipeline.Options[Member]{
		Filters: []pipeline.Filter[Member]{
			{Field: func(m Member) string { return m.Group }, Want: group},
			{Field: func(m Member) string { return m.Gen }, Want: gen},
		},
		Query: query,
		Haystack: func(m Member) string {
			return strings.Join([]string{m.Name, m.Kana, m.Aka, GroupLabel(m.Group), m.Gen}, " ")
		},
		Less: func(a, b Member) bool {
			if a.Group != b.Group {
				return a.Group < b.Group
			}
			if r := c.CompareString(a.Gen, b.Gen); r != 0 {
				return r < 0
			}
			return c.CompareString(a.Name, b.Name) < 0
		},
	})
}
