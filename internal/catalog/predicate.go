package catalog

import (
	"fmt"
	"regexp"
)

// Predicate decides whether a sentence context supports (or vetoes) a rule.
// The context passed in is always the lower-cased sentence.
type Predicate interface {
	Match(context string) bool
}

// PredicateFunc adapts a plain function to a Predicate.
type PredicateFunc func(context string) bool

func (f PredicateFunc) Match(context string) bool {
	return f(context)
}

// Pattern is a regular expression that must match the whole context,
// not just a substring of it.
type Pattern struct {
	src string
	re  *regexp.Regexp
}

// CompilePattern compiles src anchored at both ends.
func CompilePattern(src string) (*Pattern, error) {
	re, err := regexp.Compile(`^(?:` + src + `)$`)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", src, err)
	}
	return &Pattern{src: src, re: re}, nil
}

func (p *Pattern) Match(context string) bool {
	return p.re.MatchString(context)
}

func (p *Pattern) String() string {
	return p.src
}

func matchAny(preds []Predicate, context string) bool {
	for _, p := range preds {
		if p.Match(context) {
			return true
		}
	}
	return false
}
