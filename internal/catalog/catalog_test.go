package catalog

import (
	"errors"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}

	want := []string{"their", "there", "your", "to", "its", "hear", "by", "know", "new", "see", "one"}
	rules := c.All()
	if len(rules) != len(want) {
		t.Fatalf("len(All()) = %d, want %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.Canonical != want[i] {
			t.Errorf("All()[%d].Canonical = %q, want %q", i, r.Canonical, want[i])
		}
	}
}

func TestAllIsStable(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	first := c.All()
	first[0].Canonical = "mutated"

	second := c.All()
	if second[0].Canonical != "their" {
		t.Errorf("All() exposed internal state, got %q", second[0].Canonical)
	}
}

func TestCopiesDoNotShareSlices(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	want := c.All()[0].Alternatives[0]

	rules := c.All()
	rules[0].Alternatives[0] = "mutated"
	rules[0].Justify[0] = PredicateFunc(func(string) bool { return false })
	r, _ := c.Lookup("their")
	r.Alternatives[0] = "mutated"

	got, ok := c.Lookup("their")
	if !ok {
		t.Fatal("Lookup(their) not found")
	}
	if got.Alternatives[0] != want {
		t.Errorf("Alternatives[0] = %q after mutating a copy, want %q", got.Alternatives[0], want)
	}
	if _, ok := got.Justify[0].(*Pattern); !ok {
		t.Errorf("Justify[0] = %T after mutating a copy, want *Pattern", got.Justify[0])
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		defs    []Definition
		wantErr error
	}{
		{
			name: "malformed justify pattern",
			defs: []Definition{{Canonical: "to", Alternatives: []string{"two"}, Justify: []string{`.*\b(go\b.*`}}},
		},
		{
			name: "malformed veto pattern",
			defs: []Definition{{Canonical: "to", Alternatives: []string{"two"}, Justify: []string{`.*`}, Veto: []string{`[`}}},
		},
		{
			name:    "empty canonical",
			defs:    []Definition{{Alternatives: []string{"two"}, Justify: []string{`.*`}}},
			wantErr: ErrEmptyCanonical,
		},
		{
			name:    "no alternatives",
			defs:    []Definition{{Canonical: "to", Justify: []string{`.*`}}},
			wantErr: ErrNoAlternatives,
		},
		{
			name:    "canonical in alternatives",
			defs:    []Definition{{Canonical: "to", Alternatives: []string{"two", "To"}, Justify: []string{`.*`}}},
			wantErr: ErrCanonicalAlternative,
		},
		{
			name:    "no justify patterns",
			defs:    []Definition{{Canonical: "to", Alternatives: []string{"two"}}},
			wantErr: ErrNoJustify,
		},
		{
			name: "duplicate canonical",
			defs: []Definition{
				{Canonical: "to", Alternatives: []string{"two"}, Justify: []string{`.*`}},
				{Canonical: "To", Alternatives: []string{"too"}, Justify: []string{`.*`}},
			},
			wantErr: ErrDuplicateCanonical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.defs...)
			if err == nil {
				t.Fatalf("New() = %v, want error", c)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWithDefaultsRejectsDuplicate(t *testing.T) {
	_, err := WithDefaults(Definition{Canonical: "their", Alternatives: []string{"thier"}, Justify: []string{`.*`}})
	if !errors.Is(err, ErrDuplicateCanonical) {
		t.Errorf("WithDefaults() error = %v, want %v", err, ErrDuplicateCanonical)
	}
}

func TestWithDefaultsAppends(t *testing.T) {
	c, err := WithDefaults(Definition{Canonical: "write", Alternatives: []string{"right"}, Justify: []string{words("letter|email")}})
	if err != nil {
		t.Fatal(err)
	}
	all := c.All()
	if got := all[len(all)-1].Canonical; got != "write" {
		t.Errorf("last rule = %q, want %q", got, "write")
	}
	if _, ok := c.Lookup("WRITE"); !ok {
		t.Error("Lookup(WRITE) not found")
	}
}

func TestPatternWholeMatch(t *testing.T) {
	p, err := CompilePattern(`go`)
	if err != nil {
		t.Fatal(err)
	}
	if p.Match("we go home") {
		t.Error("pattern without wildcards matched a substring")
	}
	if !p.Match("go") {
		t.Error("pattern did not match the whole context")
	}

	wb, err := CompilePattern(words("go"))
	if err != nil {
		t.Fatal(err)
	}
	if !wb.Match("we go home") {
		t.Error("word pattern did not match")
	}
	if wb.Match("we are gone") {
		t.Error("word pattern matched inside another word")
	}
}

func TestRuleJustified(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	by, ok := c.Lookup("by")
	if !ok {
		t.Fatal("rule by missing")
	}

	tests := []struct {
		context string
		want    bool
	}{
		{"the house near the river", true},
		{"i will buy near the store to purchase it.", false},
		{"nothing relevant here", false},
	}
	for _, tt := range tests {
		if got := by.Justified(tt.context); got != tt.want {
			t.Errorf("Justified(%q) = %v, want %v", tt.context, got, tt.want)
		}
	}
}

func TestRuleFind(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	their, _ := c.Lookup("their")

	start, end, ok := their.Find("Over There, they're waiting", 1)
	if !ok {
		t.Fatal("Find() did not locate they're")
	}
	if got := "Over There, they're waiting"[start:end]; got != "they're" {
		t.Errorf("Find() span = %q, want %q", got, "they're")
	}

	if _, _, ok := their.Find("thereafter", 0); ok {
		t.Error("Find() matched inside a longer word")
	}
}

func TestFromRulesPredicateFunc(t *testing.T) {
	always := PredicateFunc(func(string) bool { return true })
	c, err := FromRules(Rule{Canonical: "sea", Alternatives: []string{"see"}, Justify: []Predicate{always}})
	if err != nil {
		t.Fatal(err)
	}
	r, _ := c.Lookup("sea")
	if !r.Justified("anything") {
		t.Error("Justified() = false for always-true predicate")
	}
	if _, _, ok := r.Find("I See it", 0); !ok {
		t.Error("Find() failed case-insensitive search")
	}
}

func TestLint(t *testing.T) {
	c, err := New(
		Definition{Canonical: "sea", Alternatives: []string{"see"}, Justify: []string{`.*`}},
		Definition{Canonical: "cat", Alternatives: []string{"dog"}, Justify: []string{`.*`}},
	)
	if err != nil {
		t.Fatal(err)
	}
	warnings := c.Lint()
	if len(warnings) != 1 {
		t.Fatalf("Lint() = %v, want one warning", warnings)
	}
	if !strings.Contains(warnings[0], `"dog"`) {
		t.Errorf("Lint()[0] = %q, want mention of dog", warnings[0])
	}
}
