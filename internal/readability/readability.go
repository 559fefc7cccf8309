// Package readability tidies corrected transcripts: sentence capitalization,
// the pronoun "I" and spacing around punctuation. It is independent of the
// homonym corrector and may run on any text.
package readability

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reSentenceStart   = regexp.MustCompile(`[.!?]\s+[a-z]`)
	reLoneI           = regexp.MustCompile(`\bi\b`)
	reSpaceBeforeMark = regexp.MustCompile(`\s+([,.:;!?])`)
	reMarkThenLetter  = regexp.MustCompile(`([,.:;!?])([a-zA-Z])`)
	reSpaceRun        = regexp.MustCompile(`\s+`)
)

// Normalize applies, in order: sentence-start capitalization, "i" to "I",
// removal of whitespace before , . : ; ! ?, one space between such a mark
// and a following letter, whitespace collapsing, capitalization of the first
// character and of sentence starts exposed by the spacing fix, and trimming.
// Blank text is returned unchanged.
func Normalize(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	out := capitalizeSentences(text)
	out = reLoneI.ReplaceAllString(out, "I")
	out = reSpaceBeforeMark.ReplaceAllString(out, "$1")
	out = reMarkThenLetter.ReplaceAllString(out, "$1 $2")
	out = reSpaceRun.ReplaceAllString(out, " ")
	out = capitalizeSentences(capitalizeFirst(out))
	return strings.TrimSpace(out)
}

func capitalizeSentences(s string) string {
	return reSentenceStart.ReplaceAllStringFunc(s, func(m string) string {
		return m[:len(m)-1] + strings.ToUpper(m[len(m)-1:])
	})
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
