// Package cloze parses and renders cloze-deletion markup of the form
// {{cN::word}} or {{cN::word::hint}}.
package cloze

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// A deletion marker is {{cN::word}} or {{cN::word::hint}} where N is a
// positive integer and word/hint exclude the ':' and '}' delimiters.
var markerRe = regexp.MustCompile(`\{\{c([1-9][0-9]*)::([^:}]+)(?:::([^:}]+))?\}\}`)

// Match describes one deletion found in a card's text.
type Match struct {
	Index int    // the N in {{cN::...}}
	Word  string // the hidden text
	Hint  string // empty when the marker carries no hint
	Start int    // byte offset of the opening braces
	End   int    // byte offset just past the closing braces
}

// Parse extracts every deletion marker from text, sorted ascending by index.
// Malformed markup is never an error; spans that do not match the marker
// syntax simply produce no match and are left to render as literal text.
// Duplicate indices are not merged here; each occurrence is its own match.
func Parse(text string) []Match {
	locs := markerRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return nil
	}
	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		idx, err := strconv.Atoi(text[loc[2]:loc[3]])
		if err != nil {
			continue
		}
		m := Match{
			Index: idx,
			Word:  text[loc[4]:loc[5]],
			Start: loc[0],
			End:   loc[1],
		}
		if loc[6] >= 0 {
			m.Hint = text[loc[6]:loc[7]]
		}
		matches = append(matches, m)
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Index < matches[j].Index })
	return matches
}

// DuplicateIndices reports the deletion indices that occur more than once in
// matches, ascending. Duplicates are an authoring defect caught at write time.
func DuplicateIndices(matches []Match) []int {
	seen := map[int]int{}
	for _, m := range matches {
		seen[m.Index]++
	}
	var dups []int
	for idx, n := range seen {
		if n > 1 {
			dups = append(dups, idx)
		}
	}
	sort.Ints(dups)
	return dups
}

// Render reconstructs text with the deletions whose index is in hide blanked
// out and every other marker stripped to its bare word. A hidden deletion
// renders as [hint] when showHints is set and the marker carries a hint,
// otherwise as [...]. Render(text, nil, false) yields the fully de-clozed
// plain text and is pure: calling it any number of times returns the same
// string.
func Render(text string, hide []int, showHints bool) string {
	locs := markerRe.FindAllStringSubmatchIndex(text, -1)
	if len(locs) == 0 {
		return text
	}

	hidden := make(map[int]bool, len(hide))
	for _, idx := range hide {
		hidden[idx] = true
	}

	// Single left-to-right pass over the match offsets keeps substitutions
	// positionally stable regardless of marker order.
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, loc := range locs {
		b.WriteString(text[last:loc[0]])
		idx, _ := strconv.Atoi(text[loc[2]:loc[3]])
		word := text[loc[4]:loc[5]]
		hint := ""
		if loc[6] >= 0 {
			hint = text[loc[6]:loc[7]]
		}
		switch {
		case hidden[idx] && showHints && hint != "":
			b.WriteString("[")
			b.WriteString(hint)
			b.WriteString("]")
		case hidden[idx]:
			b.WriteString("[...]")
		default:
			b.WriteString(word)
		}
		last = loc[1]
	}
	b.WriteString(text[last:])
	return b.String()
}
