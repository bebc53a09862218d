// Package analyzer computes word statistics over lyrics text.
//
// Tokenization policy (fixed so results are reproducible): text is lowercased
// with Unicode case mapping; a token is a maximal run of letters, digits,
// apostrophes and hyphens, with leading and trailing apostrophes/hyphens
// trimmed ("can't" and "state-of-the-art" survive intact, "'round" becomes
// "round"). Every token counts toward the totals. The top-word table
// additionally drops stop words and tokens shorter than four runes, the same
// filter the original explorer applied to its common-words table.
package analyzer

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// minTableWordLen is the minimum rune length for a word to appear in the
// top-word table. Totals are not affected.
const minTableWordLen = 4

// WordCount pairs a normalized word with its number of occurrences.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Result holds the statistics for one piece of text.
type Result struct {
	TotalWords  int         `json:"totalWords"`
	UniqueWords int         `json:"uniqueWords"`
	TopWords    []WordCount `json:"topWords"`
}

// UniqueRatio returns unique words as a fraction of total words,
// or 0 for empty text.
func (r Result) UniqueRatio() float64 {
	if r.TotalWords == 0 {
		return 0
	}
	return float64(r.UniqueWords) / float64(r.TotalWords)
}

// Analyzer computes text statistics with a configurable stop-word set.
// The zero value is not usable; call New.
type Analyzer struct {
	stopWords map[string]struct{}
}

// New creates an Analyzer with the default stop-word set.
func New() *Analyzer {
	return NewWithStopWords(DefaultStopWords())
}

// NewWithStopWords creates an Analyzer with an explicit stop-word set.
func NewWithStopWords(stopWords []string) *Analyzer {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Analyzer{stopWords: set}
}

// Analyze tokenizes text and returns totals plus the top maxWords words.
//
// Ties in the table are broken by first occurrence in the text, so identical
// input always produces identical output. Empty text yields zero totals and
// an empty table; it is not an error.
func (a *Analyzer) Analyze(text string, maxWords int) Result {
	tokens := Tokenize(text)

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, seen := counts[tok]; !seen {
			firstSeen[tok] = i
		}
		counts[tok]++
	}

	result := Result{
		TotalWords:  len(tokens),
		UniqueWords: len(counts),
		TopWords:    []WordCount{},
	}
	if maxWords <= 0 {
		return result
	}

	candidates := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		if a.isStopWord(word) || utf8.RuneCountInString(word) < minTableWordLen {
			continue
		}
		candidates = append(candidates, WordCount{Word: word, Count: count})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Count != candidates[j].Count {
			return candidates[i].Count > candidates[j].Count
		}
		return firstSeen[candidates[i].Word] < firstSeen[candidates[j].Word]
	})

	if len(candidates) > maxWords {
		candidates = candidates[:maxWords]
	}
	result.TopWords = candidates
	return result
}

// Frequencies returns the unfiltered frequency table for text. The counts
// always sum to the token total reported by Analyze.
func Frequencies(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range Tokenize(text) {
		counts[tok]++
	}
	return counts
}

// Tokenize splits text into normalized tokens per the package policy.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})

	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		tok := normalizeToken(f)
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func (a *Analyzer) isStopWord(word string) bool {
	_, ok := a.stopWords[word]
	return ok
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '’' || r == '-'
}

func normalizeToken(tok string) string {
	tok = strings.ToLower(tok)
	tok = strings.ReplaceAll(tok, "’", "'")
	tok = strings.Trim(tok, "'-")
	return tok
}
