package corrector

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nguyentantai21042004/homonym-flow/internal/sentence"
)

func (c *implCorrector) Process(ctx context.Context, text string) string {
	return c.Correct(ctx, text).Text
}

func (c *implCorrector) Correct(ctx context.Context, text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Text: text}
	}

	sentences := sentence.Split(text)
	out := make([]string, 0, len(sentences))
	var all []Correction
	for i, s := range sentences {
		fixed, applied := c.correctSentence(ctx, s)
		for j := range applied {
			applied[j].Sentence = i
		}
		all = append(all, applied...)
		out = append(out, fixed)
	}
	c.metrics.RecordSentences(ctx, len(sentences))

	result := strings.TrimSpace(strings.Join(out, " "))
	if result != text {
		c.logger.Debug(ctx, "Applied homonym corrections: %d rewrite(s) in %d sentence(s)", len(all), len(sentences))
	}
	return Result{Text: result, Corrections: all}
}

func (c *implCorrector) CorrectSentence(ctx context.Context, s string) string {
	fixed, _ := c.correctSentence(ctx, s)
	return fixed
}

// correctSentence makes a single pass over the rules in catalog order.
// Predicates always see the original lower-cased sentence; alternatives are
// searched in the text as already rewritten by earlier rules. Only the first
// occurrence of each alternative is replaced per pass.
func (c *implCorrector) correctSentence(ctx context.Context, s string) (string, []Correction) {
	lower := strings.ToLower(s)
	corrected := s
	var applied []Correction

	for _, r := range c.rules {
		decided, justified := false, false
		for i, alt := range r.Alternatives {
			start, end, ok := r.Find(corrected, i)
			if !ok {
				continue
			}
			if !decided {
				justified = r.Justified(lower)
				decided = true
			}
			if !justified {
				continue
			}

			found := corrected[start:end]
			replacement := transferCase(found, r.Canonical)
			corrected = corrected[:start] + replacement + corrected[end:]
			applied = append(applied, Correction{
				Original:    found,
				Replacement: replacement,
				Canonical:   r.Canonical,
				Start:       start,
				End:         end,
			})

			c.logger.Debug(ctx, "Corrected '%s' to '%s' in context", alt, replacement)
			c.metrics.RecordCorrection(ctx, r.Canonical, alt)
		}
	}

	return corrected, applied
}

// transferCase upper-cases the first letter of word when the first letter of
// found is upper case. Otherwise word is returned untouched.
func transferCase(found, word string) string {
	first, _ := utf8.DecodeRuneInString(found)
	if !unicode.IsUpper(first) {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}
