package stats

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/AtharulKhan/wins-analyzer/internal/store"
)

// KeywordItem is one ranked keyword with cloud presentation hints.
type KeywordItem struct {
	Word  string
	Count int
	// Size in [0.8, 1.4] and Opacity in [0.6, 1.0], both increasing
	// with frequency.
	Size    float64
	Opacity float64
	Color   string
}

const keywordLimit = 20

var keywordPalette = []string{
	"#9b87f5", "#7E69AB", "#6E59A5", "#D6BCFA", "#8B5CF6",
	"#D946EF", "#F97316", "#0EA5E9", "#33C3F0", "#ea384c",
}

// stopwords covers articles, prepositions, auxiliary verbs, and
// spreadsheet/link noise that would otherwise dominate the cloud.
var stopwords = map[string]bool{
	"the": true, "and": true, "a": true, "to": true, "in": true, "with": true,
	"of": true, "for": true, "on": true, "at": true, "from": true, "by": true,
	"is": true, "are": true, "was": true, "were": true, "will": true,
	"would": true, "should": true, "can": true, "could": true,
	"has": true, "have": true, "had": true, "not": true, "be": true,
	"been": true, "being": true, "as": true, "if": true, "or": true,
	"this": true, "that": true, "these": true, "those": true, "it": true,
	"its": true, "they": true, "them": true, "their": true,
	"who": true, "whom": true, "whose": true, "what": true, "which": true,
	"when": true, "where": true, "why": true, "how": true,
	"all": true, "any": true, "both": true, "each": true, "few": true,
	"more": true, "most": true, "some": true, "such": true,
	"no": true, "nor": true, "too": true, "very": true, "just": true, "but": true,
	"http": true, "https": true, "www": true, "com": true, "net": true,
	"org": true, "io": true, "html": true, "css": true,
	"google": true, "docs": true, "doc": true, "sheet": true, "sheets": true,
	"drive": true, "document": true,
	"tab": true, "edit": true, "view": true, "file": true, "folder": true,
	"click": true, "email": true, "url": true,
	"link": true, "href": true, "browser": true, "window": true,
	"site": true, "page": true, "login": true,
}

// opaqueIDPattern matches long identifier-like runs (sheet ids, hashes).
var opaqueIDPattern = regexp.MustCompile(`^[a-z0-9_-]{10,}$`)

// Keywords extracts the ranked common keywords from the titles and
// summaries of the active wins (categories, platforms, and links are
// intentionally excluded). A word must survive the noise filters and
// appear at least twice to be "common"; the result is capped at 20.
func Keywords(active []store.Win) []KeywordItem {
	if len(active) == 0 {
		return nil
	}

	counts := make(map[string]int)
	var order []string
	for _, w := range active {
		for _, word := range tokenize(w.Title + " " + w.Summary) {
			if !keepWord(word) {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	items := make([]KeywordItem, 0, len(order))
	for _, word := range order {
		if counts[word] > 1 {
			items = append(items, KeywordItem{Word: word, Count: counts[word]})
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Count > items[j].Count
	})
	if len(items) > keywordLimit {
		items = items[:keywordLimit]
	}

	for i := range items {
		n := float64(items[i].Count)
		items[i].Size = clampFloat(0.8+(n/10)*0.6, 0.8, 1.4)
		items[i].Opacity = clampFloat(0.6+(n/10)*0.4, 0.6, 1.0)
		items[i].Color = keywordPalette[i%len(keywordPalette)]
	}
	return items
}

// tokenize lowercases the text and splits on runs of non-word characters.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !isWordRune(r)
	})
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= '0' && r <= '9') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z')
}

// keepWord applies the noise filters: short tokens, stopwords, pure
// numbers, opaque identifier runs, and mixed alphanumeric tokens
// (hash-like or versioned strings).
func keepWord(word string) bool {
	if len(word) <= 3 {
		return false
	}
	if stopwords[word] {
		return false
	}
	if _, err := strconv.ParseFloat(word, 64); err == nil {
		return false
	}
	if opaqueIDPattern.MatchString(word) {
		return false
	}
	if isMixedAlphanumeric(word) {
		return false
	}
	return true
}

// isMixedAlphanumeric reports whether the token is all letters and digits
// and contains at least one of each.
func isMixedAlphanumeric(word string) bool {
	hasDigit, hasLetter := false, false
	for _, r := range word {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		default:
			return false
		}
	}
	return hasDigit && hasLetter
}
