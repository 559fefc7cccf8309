package corrector

import "context"

// Corrector rewrites mis-transcribed homonyms. It never fails: input that no
// rule applies to comes back unchanged. Implementations are safe for
// concurrent use.
type Corrector interface {
	// Process corrects text sentence by sentence and rejoins the sentences
	// with single spaces. Empty or whitespace-only text is returned as is.
	Process(ctx context.Context, text string) string

	// Correct is Process plus an itemised list of the rewrites applied.
	Correct(ctx context.Context, text string) Result

	// CorrectSentence evaluates every catalog rule against one sentence.
	CorrectSentence(ctx context.Context, sentence string) string
}

// Correction records one rewrite.
type Correction struct {
	// Sentence is the index of the sentence within the processed text.
	Sentence int
	// Original is the token as it appeared in the transcript.
	Original string
	// Replacement is the text written in its place, case already transferred.
	Replacement string
	// Canonical is the canonical word of the rule that fired.
	Canonical string
	// Start and End are the byte span of Original in the sentence at the
	// moment it was replaced.
	Start, End int
}

// Result is the output of Correct.
type Result struct {
	Text        string
	Corrections []Correction
}

// Changed reports whether any rewrite was applied.
func (r Result) Changed() bool {
	return len(r.Corrections) > 0
}
