package escandir

import (
	"regexp"
	"strings"
)

// Function words that carry no prosodic stress of their own.
var unstressedMonosyllables = map[string]bool{
	"de": true, "el": true, "la": true, "las": true, "le": true,
	"les": true, "lo": true, "los": true, "mas": true, "me": true,
	"mi": true, "nos": true, "os": true, "que": true, "se": true,
	"si": true, "su": true, "tan": true, "te": true, "tu": true,
}

// Monosyllables that are stressed despite lacking a written accent.
var stressedMonosyllables = map[string]bool{
	"yo": true, "vio": true, "dio": true, "fe": true,
	"sol": true, "ti": true, "un": true,
}

var (
	tildedVowelRe = regexp.MustCompile(`(?i)[áéíóú]`)
	paroxytoneRe  = regexp.MustCompile(`(?i)([aeiou]|n|[aeiou]s)$`)
)

// ParseTag turns a morphological feature string ("Case=Nom|Number=Sing")
// into a map. Parts without '=' yield no entries.
func ParseTag(tag string) map[string]string {
	features := map[string]string{}
	for _, part := range strings.Split(tag, "|") {
		if key, value, ok := strings.Cut(part, "="); ok {
			features[key] = value
		}
	}
	return features
}

// monosyllableStress decides the stress position of a one-syllable word.
// Members of the unstressed function-word set default to 0, unless an
// override applies: listed as inherently stressed, tagged with a part of
// speech outside determiner/pronoun/adposition, a nominative pronoun, or
// an indefinite determiner. Everything else is stressed.
func monosyllableStress(syllable, pos string, tags map[string]string) int {
	s := strings.ToLower(syllable)
	override := stressedMonosyllables[s] ||
		(pos != "DET" && pos != "PRON" && pos != "ADP") ||
		(pos == "PRON" && tags["Case"] == "Nom") ||
		(pos == "DET" && tags["Definite"] == "Ind")
	if unstressedMonosyllables[s] && !override {
		return 0
	}
	return -1
}

// firstTildedSyllable returns the index of the first syllable holding a
// written accent, or -1.
func firstTildedSyllable(syllables []string) int {
	for i, s := range syllables {
		if tildedVowelRe.MatchString(s) {
			return i
		}
	}
	return -1
}

// AssignStress syllabifies a word and locates its stressed syllable from
// the written accent, or from the paroxytone/oxytone ending shape when
// there is none. pos and tags refine monosyllable handling; pass empty
// values when no tagger output is available.
func AssignStress(word, pos string, tags map[string]string) Word {
	syllables, _ := Syllabify(word)
	count := len(syllables)

	var stressPosition int
	switch {
	case count == 0:
		stressPosition = 0
	case count == 1:
		stressPosition = monosyllableStress(syllables[0], pos, tags)
	default:
		if tilde := firstTildedSyllable(syllables); tilde >= 0 {
			stressPosition = -(count - tilde)
		} else if paroxytoneRe.MatchString(syllables[count-1]) {
			stressPosition = -2
		} else {
			stressPosition = -1
		}
	}

	out := Word{
		Syllables:      make([]Syllable, count),
		StressPosition: stressPosition,
	}
	for i, text := range syllables {
		out.Syllables[i] = Syllable{
			Text:       text,
			IsStressed: count-i == -stressPosition,
		}
	}
	markSinaeresis(out.Syllables)
	return out
}

// markSinaeresis flags syllable pairs inside a word that may contract
// into one metrical unit: adjacent vowels across the break where at
// least one is strong.
func markSinaeresis(syllables []Syllable) {
	for i := 1; i < len(syllables); i++ {
		last := lastRune(syllables[i-1].Text)
		first := firstRune(syllables[i].Text)
		strongStrong := strongVowels[last] && strongVowels[first]
		weakStrong := weakVowels[last] && strongVowels[first]
		strongWeak := strongVowels[last] && weakVowels[first]
		if strongStrong || weakStrong || strongWeak {
			syllables[i-1].HasSinaeresis = true
		}
	}
}
