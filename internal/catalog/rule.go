package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var (
	ErrEmptyCanonical       = errors.New("canonical word is empty")
	ErrNoAlternatives       = errors.New("rule has no alternatives")
	ErrCanonicalAlternative = errors.New("canonical word listed as its own alternative")
	ErrDuplicateCanonical   = errors.New("duplicate canonical word")
	ErrNoJustify            = errors.New("rule has no justify predicates")
)

// Rule is one homonym group: occurrences of any alternative are rewritten
// into Canonical when the sentence context justifies it and nothing vetoes it.
type Rule struct {
	Canonical    string
	Alternatives []string
	Justify      []Predicate
	Veto         []Predicate

	finders []*regexp.Regexp
}

// Definition is the declarative, pattern-string form of a Rule, as written in
// the built-in table or in the YAML config.
type Definition struct {
	Canonical    string   `yaml:"canonical"`
	Alternatives []string `yaml:"alternatives"`
	Justify      []string `yaml:"justify"`
	Veto         []string `yaml:"veto"`
}

// Compile turns the definition into a Rule, failing on any malformed pattern.
func (d Definition) Compile() (Rule, error) {
	r := Rule{
		Canonical:    d.Canonical,
		Alternatives: slices.Clone(d.Alternatives),
	}
	for _, src := range d.Justify {
		p, err := CompilePattern(src)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q justify: %w", d.Canonical, err)
		}
		r.Justify = append(r.Justify, p)
	}
	for _, src := range d.Veto {
		p, err := CompilePattern(src)
		if err != nil {
			return Rule{}, fmt.Errorf("rule %q veto: %w", d.Canonical, err)
		}
		r.Veto = append(r.Veto, p)
	}
	return r, nil
}

// Justified reports whether context calls for the correction.
// A matching veto predicate always wins over a matching justify predicate.
func (r Rule) Justified(context string) bool {
	if !matchAny(r.Justify, context) {
		return false
	}
	return !matchAny(r.Veto, context)
}

// Find locates the first case-insensitive, word-delimited occurrence of
// Alternatives[i] in text and returns its byte span.
func (r Rule) Find(text string, i int) (start, end int, ok bool) {
	re := r.finder(i)
	loc := re.FindStringIndex(text)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

func (r Rule) finder(i int) *regexp.Regexp {
	if i < len(r.finders) {
		return r.finders[i]
	}
	return alternativeFinder(r.Alternatives[i])
}

func (r Rule) clone() Rule {
	r.Alternatives = slices.Clone(r.Alternatives)
	r.Justify = slices.Clone(r.Justify)
	r.Veto = slices.Clone(r.Veto)
	r.finders = slices.Clone(r.finders)
	return r
}

func (r *Rule) prepare() error {
	if strings.TrimSpace(r.Canonical) == "" {
		return ErrEmptyCanonical
	}
	if len(r.Alternatives) == 0 {
		return fmt.Errorf("rule %q: %w", r.Canonical, ErrNoAlternatives)
	}
	if len(r.Justify) == 0 {
		return fmt.Errorf("rule %q: %w", r.Canonical, ErrNoJustify)
	}
	r.finders = make([]*regexp.Regexp, len(r.Alternatives))
	for i, alt := range r.Alternatives {
		if strings.EqualFold(alt, r.Canonical) {
			return fmt.Errorf("rule %q: %w", r.Canonical, ErrCanonicalAlternative)
		}
		r.finders[i] = alternativeFinder(alt)
	}
	return nil
}

func alternativeFinder(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}
