package escandir

import (
	"regexp"
	"strings"
)

// letterClustersRe drives the core syllabification scan. The alternatives
// are tried in declared order at each position; the index of the matching
// group decides whether a syllable break is inserted after the current
// character. Groups 5 (liquid-consonant continuation), 8 (ü diphthong)
// and 11 (catch-all single character) never break.
//
// For the 'tl' cluster the two letters stay together, the most common
// Spanish syllabification (the one Perkins, DIRAE and Educalingo use).
var letterClustersRe = regexp.MustCompile(`(?i)` +
	// 1: weak vowels diphthong with h
	`([iuü]h[iuü])|` +
	// 2: open vowels
	`([aáeéíoóú]h[iuü])|` +
	// 3: closed vowels
	`([iuü]h[aáeéíoóú])|` +
	// 4: liquid and mute consonants (adds hyphen)
	`([a-záéíóúñ](?:(?:[bcdfghjklmnñpqstvy][hlr])|(?:[bcdfghjklmnñpqrstvy][hr])|(?:[bcdfghjklmnñpqrstvyz]h))[aáeéiíoóuúü])|` +
	// 5: liquid and mute consonant cluster opening a syllable
	`((?:(?:[bcdfghjklmnñpqstvy][hlr])|(?:[bcdfghjklmnñpqrstvy][hr])|(?:[bcdfghjklmnñpqrstvyz]h))[aáeéiíoóuúü])|` +
	// 6: non-liquid consonant (adds hyphen)
	`([a-záéíóúñ][bcdfghjklmnñpqrstvxyz][aáeéiíoóuúüï])|` +
	// 7: vowel group hiatus (adds hyphen)
	`([aáeéíoóú][aáeéíoóú])|` +
	// 8: umlaut 'u' diphthongs
	`(ü[eií])|` +
	// 9: explicit hiatus with umlaut vowels, first part
	`([aeiou][äëïöü])|` +
	// 10: explicit hiatus with umlaut vowels, second part
	`([äëïöü][a-z])|` +
	// 11: any char
	`([a-záéíóúñ])`)

// noBreakGroups are the letterClustersRe alternatives that do not insert
// a syllable break.
var noBreakGroups = map[int]bool{5: true, 8: true, 11: true}

// preRules are presyllabification exceptions, applied once each in
// order. Every rule that matches rewrites the word as group1-group2,
// inserting one literal hyphen at the capture boundary; rules are
// independent and may stack.
var preRules = []*regexp.Regexp{
	// vowel + w + vowel: "kiwi"
	regexp.MustCompile(`(?i)^(.*[aeiouáéíóú])(w[aeiouáéíóú].*)`),
	// consonant group + [hlr], with carve-outs for ll and dl
	regexp.MustCompile(`(?i)^(.*[hmnqsw])([hlr][aeiouáéíóú].*)`),
	regexp.MustCompile(`(?i)^(.*[hlmnqsw])([hr][aeiouáéíóú].*)`),
	regexp.MustCompile(`(?i)^(.*d)(l[aeiouáéíóú].*)`),
	// prefix sin- followed by consonant: "sinhueso"
	regexp.MustCompile(`(?i)^(sin)([bcdfgjklmhnñpqrstvxyz].*)`),
	// prefix des- followed by consonant: "destituir"
	regexp.MustCompile(`(?i)^(des)([bcdfgjklmhnñpqrstvxyz].*)`),
	// group rh + u-diphthong: "marhuenda"
	regexp.MustCompile(`(?i)^(.*?r)(hu[aeioáéíó].*)`),
}

// Post-syllabification exceptions. Each collapses a spurious break and is
// reapplied until no match remains. Go's regexp has no lookahead, so the
// originals' (?!vowel) guards are expressed as "end of string or a
// non-vowel character".
var postRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	// consonant cluster: "cneorácea"
	{regexp.MustCompile(`(?i)(?:(.*-)|^)([mpgc])-([bcdfghjklmñnpqrstvwxyz][aeioáéíó].*)`), "${1}${2}${3}"},
	// lowering diphthong with silent h: "ahijador"
	{regexp.MustCompile(`(?i)((?:.*-|^)(?:qu|[bcdfghjklmñnpqrstvwxyz]+)?)([aeo])-(h[iu](?:[^aeoiuíúáéó].*)?)$`), "${1}${2}${3}"},
	// raising diphthong with silent h: "buhitiho"
	{regexp.MustCompile(`(?i)((?:.*-|^)(?:qu|[bcdfghjklmñnpqrstvwxyz]+)?)([iu])-(h[aeiouáéó](?:[^aeoáéiuíú].*)?)$`), "${1}${2}${3}"},
}

// applyPreRules inserts presyllabification hyphens into word.
func applyPreRules(word string) string {
	for _, re := range preRules {
		if m := re.FindStringSubmatch(word); m != nil {
			word = m[1] + "-" + m[2]
		}
	}
	return word
}

// applyPostRules collapses spurious breaks in the hyphenated word.
func applyPostRules(word string) string {
	for _, rule := range postRules {
		for rule.re.MatchString(word) {
			next := rule.re.ReplaceAllString(word, rule.repl)
			if next == word {
				break
			}
			word = next
		}
	}
	return word
}

// matchedGroup returns the highest-numbered capture group that
// participated in the match, given FindStringSubmatchIndex output.
func matchedGroup(loc []int) int {
	for g := len(loc)/2 - 1; g >= 1; g-- {
		if loc[2*g] >= 0 {
			return g
		}
	}
	return 0
}

// Syllabify splits a word into syllables. Words present in the exception
// dictionary use their recorded segmentation and skip the rule engine.
// The second return value lists alternative segmentations (hyphenated
// strings) recorded for the original word, or nil.
func Syllabify(word string) ([]string, []string) {
	original := word
	var hyphenated string
	if syl, ok := foreignWords[word]; ok {
		hyphenated = syl
	} else {
		word = applyPreRules(word)
		var out strings.Builder
		runes := []rune(word)
		for len(runes) > 0 {
			out.WriteRune(runes[0])
			if loc := letterClustersRe.FindStringSubmatchIndex(string(runes)); loc != nil {
				if !noBreakGroups[matchedGroup(loc)] {
					out.WriteByte('-')
				}
			}
			runes = runes[1:]
		}
		hyphenated = applyPostRules(out.String())
	}
	var syllables []string
	for _, s := range strings.Split(hyphenated, "-") {
		if s != "" {
			syllables = append(syllables, s)
		}
	}
	return syllables, alternativeSyllabification[original]
}
