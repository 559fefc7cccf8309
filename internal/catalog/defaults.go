package catalog

// Context patterns are matched against the lower-cased sentence, so every
// literal in them is written in lower case ("i", not "I").
func words(list string) string {
	return `.*\b(` + list + `)\b.*`
}

// DefaultDefinitions returns the built-in homonym groups in evaluation order.
// Each call returns a fresh slice.
func DefaultDefinitions() []Definition {
	return []Definition{
		{
			Canonical:    "their",
			Alternatives: []string{"there", "they're"},
			Justify:      []string{words("house|car|dog|cat|book|phone|computer|family|friend|children|parents")},
			Veto:         []string{words("is|are|was|were|will be|has been"), words("they are|they were")},
		},
		{
			Canonical:    "there",
			Alternatives: []string{"their", "they're"},
			Justify:      []string{words("is|are|was|were|will be|has been|over|here|go|went|live|located")},
			Veto:         []string{words("house|car|dog|cat|book|phone"), words("they are|they were")},
		},
		{
			Canonical:    "your",
			Alternatives: []string{"you're"},
			Justify:      []string{words("house|car|name|phone|book|idea|question|answer|problem|solution")},
			Veto:         []string{words("you are|you were|you will be")},
		},
		{
			Canonical:    "to",
			Alternatives: []string{"too", "two"},
			Justify:      []string{words("go|went|going|send|give|talk|listen|want|need|have")},
			Veto:         []string{words("much|many|also|as well"), words("people|things|items|persons|of them")},
		},
		{
			Canonical:    "its",
			Alternatives: []string{"it's"},
			Justify:      []string{words("owns|has|possessive|belongs")},
			Veto:         []string{words("it is|it was|it has been")},
		},
		{
			Canonical:    "hear",
			Alternatives: []string{"here"},
			Justify:      []string{words("listen|sound|noise|music|voice|audio|ear")},
			Veto:         []string{words("place|location|present|come|go|stay|live")},
		},
		{
			Canonical:    "by",
			Alternatives: []string{"buy", "bye"},
			Justify:      []string{words("written|created|made|done|sent|located|near|beside")},
			Veto:         []string{words("purchase|shop|store|price|cost|sell"), words("goodbye|farewell|leaving|see you")},
		},
		{
			Canonical:    "know",
			Alternatives: []string{"no"},
			Justify:      []string{words("i|you|we|they|he|she|understand|aware|familiar|recognize|information")},
			Veto:         []string{words("not|never|none|nothing|nobody|denial|refuse|negative")},
		},
		{
			Canonical:    "new",
			Alternatives: []string{"knew"},
			Justify:      []string{words("brand|fresh|recent|latest|modern|novel|car|phone|house|product")},
			Veto:         []string{words("i|you|we|they|he|she|already|before|previously|past")},
		},
		{
			Canonical:    "see",
			Alternatives: []string{"sea"},
			Justify:      []string{words("look|watch|view|notice|observe|eye|vision|understand|comprehend|i|you|we")},
			Veto:         []string{words("ocean|water|beach|coast|marine|fish|wave|ship|boat")},
		},
		{
			Canonical:    "one",
			Alternatives: []string{"won"},
			Justify:      []string{words("number|single|only|first|another|more than|less than|at least")},
			Veto:         []string{words("victory|game|race|competition|prize|award|battle|contest|defeated")},
		},
	}
}
