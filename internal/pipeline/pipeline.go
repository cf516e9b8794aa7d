// Package pipeline implements the filter→search→sort query shared by the
// member roster and the notes list, plus the ordered first-match rule list
// used by the careguide categorizer and scorer.
package pipeline

import (
	"sort"
	"strings"

	"github.com/sakamichi-tools/penlight/internal/jptext"
)

// All is the sentinel filter value that matches every record.
const All = "all"

// Filter retains records whose field equals Want exactly (case-sensitive,
// no normalization). A Want of All retains everything.
type Filter[T any] struct {
	Field func(T) string
	Want  string
}

// Options configures a Query run.
type Options[T any] struct {
	Filters []Filter[T]

	// Query is the free-text search. Empty retains all records. Both the
	// query and the haystack are folded with jptext.FoldSearch before the
	// substring test.
	Query    string
	Haystack func(T) string

	// Less orders the result. Nil keeps insertion order. Ties always keep
	// insertion order (stable sort).
	Less func(a, b T) bool
}

// Query runs the pipeline over table and returns the ordered subset. Pure:
// the input slice is never mutated.
func Query[T any](table []T, opt Options[T]) []T {
	out := make([]T, 0, len(table))

	needle := jptext.FoldSearch(opt.Query)

	for _, rec := range table {
		if !retained(rec, opt.Filters) {
			continue
		}
		if needle != "" {
			hay := jptext.FoldSearch(opt.Haystack(rec))
			if !strings.Contains(hay, needle) {
				continue
			}
		}
		out = append(out, rec)
	}

	if opt.Less != nil {
		sort.SliceStable(out, func(i, j int) bool { return opt.Less(out[i], out[j]) })
	}

	return out
}

func retained[T any](rec T, filters []Filter[T]) bool {
	for _, f := range filters {
		if f.Want == All || f.Want == "" {
			continue
		}
		if f.Field(rec) != f.Want {
			return false
		}
	}
	return true
}

// Rule pairs a predicate with its result. Rule lists make precedence an
// explicit, testable artifact instead of an if/else chain.
type Rule[In, Out any] struct {
	When func(In) bool
	Then Out
}

// FirstMatch evaluates rules in order and returns the result of the first
// matching rule, or fallback when none match.
func FirstMatch[In, Out any](rules []Rule[In, Out], in In, fallback Out) Out {
	for _, r := range rules {
		if r.When(in) {
			return r.Then
		}
	}
	return fallback
}
