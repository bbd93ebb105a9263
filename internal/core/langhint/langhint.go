// Package langhint guesses the dominant script of a text and, when the script
// is decisive, its language
package langhint

import (
	"unicode"

	"golang.org/x/text/language"
)

// minLetters is the sample size below which no language is guessed
const minLetters = 20

// Hint is the outcome of Detect
// Lang is language.Und unless the script maps to one language with little ambiguity
type Hint struct {
	Script  string
	Lang    language.Tag
	Letters int
}

type script struct {
	name  string
	table *unicode.RangeTable
	lang  language.Tag
}

const (
	kanaHiragana = iota
	kanaKatakana
)

// scripts are checked in order; specific scripts win ties against Latin
// the kana entries must stay first
var scripts = []script{
	{"Hiragana", unicode.Hiragana, language.Japanese},
	{"Katakana", unicode.Katakana, language.Japanese},
	{"Hangul", unicode.Hangul, language.Korean},
	{"Han", unicode.Han, language.Und},
	{"Arabic", unicode.Arabic, language.Arabic},
	{"Hebrew", unicode.Hebrew, language.Hebrew},
	{"Thai", unicode.Thai, language.Thai},
	{"Greek", unicode.Greek, language.Greek},
	{"Cyrillic", unicode.Cyrillic, language.Und},
	{"Georgian", unicode.Georgian, language.Und},
	{"Armenian", unicode.Armenian, language.Und},
	{"Devanagari", unicode.Devanagari, language.Und},
	{"Latin", unicode.Latin, language.Und},
}

// Detect counts letters per script and returns the predominant one
// Lang follows the predominant script, except that kana anywhere in a Han
// dominated sample means Japanese
func Detect(s string) Hint {
	counts := make([]int, len(scripts))
	var h Hint
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		h.Letters++
		for i, sc := range scripts {
			if unicode.Is(sc.table, r) {
				counts[i]++
				break
			}
		}
	}

	best := -1
	for i, n := range counts {
		if n > 0 && (best < 0 || n > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return h
	}
	h.Script = scripts[best].name

	if h.Letters < minLetters {
		return h
	}
	h.Lang = scripts[best].lang
	if h.Script == "Han" && counts[kanaHiragana]+counts[kanaKatakana] > 0 {
		h.Lang = language.Japanese
	}
	return h
}
