package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// splitSentences breaks text after a run of terminal punctuation that is
// followed by whitespace or the end of the text. Closing quotes and
// brackets directly after the punctuation stay with the sentence.
func splitSentences(text string) []string {
	runes := []rune(text)
	var out []string
	start := 0
	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		j := i + 1
		for j < len(runes) && (isTerminal(runes[j]) || isCloser(runes[j])) {
			j++
		}
		if j == len(runes) || unicode.IsSpace(runes[j]) {
			out = append(out, string(runes[start:j]))
			start = j
		}
		i = j - 1
	}
	if start < len(runes) {
		out = append(out, string(runes[start:]))
	}
	return out
}

func isTerminal(r rune) bool { return r == '.' || r == '!' || r == '?' }

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '}', '”', '’', '»':
		return true
	}
	return false
}

// normalize folds a raw token to compatibility form, lower-cases it and
// splits it on non-letter boundaries. Digit and punctuation runs vanish.
func normalize(raw string) []string {
	lower := strings.ToLower(norm.NFKC.String(raw))
	return strings.FieldsFunc(lower, func(r rune) bool { return !unicode.IsLetter(r) })
}
