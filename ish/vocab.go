package ish

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// ============================================================
// Truthy / Falsy Vocabulary
// ============================================================

// Both sets are filled at package init and only read afterwards.
var (
	trueWords  = wordSet("true", "yes", "yeah", "yup", "on", "👍")
	falseWords = wordSet("false", "no", "nope", "off", "untrue", "nah", "norway", "👎")
)

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[normalizeWord(w)] = struct{}{}
	}
	return set
}

// normalizeWord trims surrounding whitespace and folds case. NFKC runs first
// so full-width letters and spaces fold to their ASCII forms.
func normalizeWord(s string) string {
	s = norm.NFKC.String(s)
	s = strings.TrimSpace(s)
	// Casers are stateful; never share one between calls.
	return cases.Fold().String(s)
}

// IsTruthy reports whether s is in the true-ish vocabulary.
func IsTruthy(s string) bool {
	_, ok := trueWords[normalizeWord(s)]
	return ok
}

// IsFalsy reports whether s is in the false-ish vocabulary.
func IsFalsy(s string) bool {
	_, ok := falseWords[normalizeWord(s)]
	return ok
}

// TrueWords returns the true-ish vocabulary, sorted.
func TrueWords() []string {
	return sortedWords(trueWords)
}

// FalseWords returns the false-ish vocabulary, sorted.
func FalseWords() []string {
	return sortedWords(falseWords)
}

func sortedWords(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for w := range set {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
