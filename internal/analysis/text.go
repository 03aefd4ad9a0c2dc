package analysis

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// containsAny reports whether lowered contains any keyword. Keywords are
// expected in lower case; lowered must already be lower-cased. A keyword with
// a trailing space must end at a word boundary: whitespace, punctuation or
// the end of the text.
func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.HasSuffix(kw, " ") {
			if containsWordEnd(lowered, strings.TrimRight(kw, " ")) {
				return true
			}
			continue
		}
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

func containsWordEnd(text, stem string) bool {
	if stem == "" {
		return false
	}
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], stem)
		if i < 0 {
			return false
		}
		end := from + i + len(stem)
		if end == len(text) {
			return true
		}
		r, _ := utf8.DecodeRuneInString(text[end:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
		from = from + i + 1
	}
	return false
}

// countLines counts the newline-separated entries of a task list. Blank lines
// and a trailing newline each count as an entry; only empty text counts as 0.
func countLines(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}
