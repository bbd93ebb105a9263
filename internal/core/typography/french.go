package typography

import (
	"txdc/internal/core/substitute"

	"golang.org/x/text/language"
)

// FrenchRules maps ligatures and typographic quotes to plain equivalents
func FrenchRules() substitute.RuleSet {
	return substitute.NewBuilder().
		Char('œ', "oe").
		Char('Œ', "OE").
		Char('æ', "ae").
		Char('Æ', "AE").
		Chars("'", '`', '’', '‘').
		Chars("\"", '“', '”', '«', '»').
		Build()
}

// French returns the French typography profile
func French() *Profile {
	return NewProfile(Config{
		Name:          "french",
		Tag:           language.French,
		Substitutions: FrenchRules(),
		Leading:       []rune{'»', '(', ':', ';', '!', '?', '«'},
		Trailing:      []rune{'.', '«', ',', ')', ':', ';'},
		Terminal:      []rune{'.'},
	})
}
