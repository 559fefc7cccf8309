// Package sentence splits transcript text into sentences.
package sentence

import (
	"unicode"
	"unicode/utf8"
)

// IsTerminal reports whether r ends a sentence.
func IsTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Split cuts text after every terminal mark that is immediately followed by
// whitespace. The mark stays with the preceding sentence and the whitespace
// run at the boundary is dropped. Runs of marks such as "?!" are not
// collapsed: "Wait!! Really?" yields "Wait!!" and "Really?".
func Split(text string) []string {
	var out []string
	start := 0
	prev := rune(-1)
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) && IsTerminal(prev) {
			out = appendNonEmpty(out, text[start:i])
			j := i
			for j < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += s2
			}
			start = j
			i = j
			prev = -1
			continue
		}
		prev = r
		i += size
	}
	return appendNonEmpty(out, text[start:])
}

func appendNonEmpty(out []string, s string) []string {
	if s == "" {
		return out
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return append(out, s)
		}
	}
	return out
}
