// Package catalog holds the homonym rule table consulted by the corrector.
//
// A Catalog is built once, validated up front and never mutated afterwards,
// so a single value can be shared by any number of goroutines.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/antzucaro/matchr"
)

// Catalog maps canonical words to their rules and remembers declaration order.
type Catalog struct {
	rules []Rule
	index map[string]int
}

// New compiles defs in order. Any malformed pattern or invalid rule aborts
// construction.
func New(defs ...Definition) (*Catalog, error) {
	rules := make([]Rule, 0, len(defs))
	for _, d := range defs {
		r, err := d.Compile()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return FromRules(rules...)
}

// FromRules builds a catalog from already-constructed rules, which lets
// callers plug in hand-written predicates.
func FromRules(rules ...Rule) (*Catalog, error) {
	c := &Catalog{
		rules: make([]Rule, 0, len(rules)),
		index: make(map[string]int, len(rules)),
	}
	for _, r := range rules {
		r.Alternatives = slices.Clone(r.Alternatives)
		r.Justify = slices.Clone(r.Justify)
		r.Veto = slices.Clone(r.Veto)
		if err := r.prepare(); err != nil {
			return nil, err
		}
		key := strings.ToLower(r.Canonical)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("rule %q: %w", r.Canonical, ErrDuplicateCanonical)
		}
		c.index[key] = len(c.rules)
		c.rules = append(c.rules, r)
	}
	return c, nil
}

// Default returns a catalog seeded with the built-in English homonym groups.
func Default() (*Catalog, error) {
	return New(DefaultDefinitions()...)
}

// WithDefaults builds the built-in groups followed by extra, e.g. rules
// loaded from configuration.
func WithDefaults(extra ...Definition) (*Catalog, error) {
	return New(append(DefaultDefinitions(), extra...)...)
}

// All returns a copy of every rule in declaration order. Changing the copies
// does not affect the catalog.
func (c *Catalog) All() []Rule {
	out := make([]Rule, len(c.rules))
	for i, r := range c.rules {
		out[i] = r.clone()
	}
	return out
}

// Lookup returns the rule whose canonical word is canonical.
func (c *Catalog) Lookup(canonical string) (Rule, bool) {
	i, ok := c.index[strings.ToLower(canonical)]
	if !ok {
		return Rule{}, false
	}
	return c.rules[i].clone(), true
}

func (c *Catalog) Len() int {
	return len(c.rules)
}

// Lint reports alternatives that share no Double Metaphone code with their
// canonical word. Such a pair is unlikely to be a transcription confusion.
// The result is advisory only.
func (c *Catalog) Lint() []string {
	var warnings []string
	for _, r := range c.rules {
		want := metaphoneCodes(r.Canonical)
		for _, alt := range r.Alternatives {
			if !sharesCode(want, metaphoneCodes(alt)) {
				warnings = append(warnings, fmt.Sprintf("rule %q: alternative %q does not sound like the canonical word", r.Canonical, alt))
			}
		}
	}
	return warnings
}

func metaphoneCodes(word string) []string {
	word = strings.ReplaceAll(strings.ToLower(word), "'", "")
	primary, secondary := matchr.DoubleMetaphone(word)
	codes := []string{primary}
	if secondary != "" && secondary != primary {
		codes = append(codes, secondary)
	}
	return codes
}

func sharesCode(a, b []string) bool {
	for _, x := range a {
		if x != "" && slices.Contains(b, x) {
			return true
		}
	}
	return false
}
