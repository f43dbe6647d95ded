package escandir

import (
	"regexp"
	"strings"
	"unicode"
)

const spanishConsonants = "bcdfghjklmnñpqrstvwxyz"

const rhymeVowels = "aeiouáéíóúäëïöü"

var (
	weakStrongRe        = regexp.MustCompile(`(?i)[iuïü]([aeoáéó])`)
	groupGQRe           = regexp.MustCompile(`(?i)([qg])u([ei])`)
	diphthongYRe        = regexp.MustCompile(`(?i)([` + rhymeVowels + `])h?y([^` + rhymeVowels + `])`)
	diphthongHRe        = regexp.MustCompile(`(?i)([` + rhymeVowels + `])h([` + rhymeVowels + `])`)
	consonantsRe        = regexp.MustCompile(`(?i)[` + spanishConsonants + `]+`)
	initialConsonantsRe = regexp.MustCompile(`(?i)^[` + spanishConsonants + `]+`)
)

// Homophone spellings folded together under relaxed coding. Applied in
// order, lowercase then uppercase, every occurrence.
var homophones = [][2]string{
	{"v", "b"}, {"ll", "y"}, {"ze", "ce"}, {"zi", "ci"},
	{"qui", "ki"}, {"que", "ke"}, {"ge", "je"}, {"gi", "ji"},
}

// letterAlphabet cycles through rhyme letters by order of appearance.
const letterAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// StressedEndings extracts, for each line, the syllables from the last
// stressed group to the end, the group count, and the stress offset
// (negative, counted from the end). Groups produced by synalepha are cut
// back to their final word. A line with no stressed group yields an
// empty ending with offset 0.
func StressedEndings(lines []Line) []StressedEnding {
	endings := make([]StressedEnding, 0, len(lines))
	for _, line := range lines {
		syllables := make([]string, 0, len(line.PhonologicalGroups))
		for _, g := range line.PhonologicalGroups {
			text := g.Text
			if n := len(g.SynalephaIndexes); n > 0 {
				runes := []rune(text)
				start := g.SynalephaIndexes[n-1] + 1
				if start < len(runes) {
					text = string(runes[start:])
				} else {
					text = ""
				}
			}
			syllables = append(syllables, text)
		}
		count := len(syllables)
		lastStress := -1
		for i := count - 1; i >= 0; i-- {
			if line.PhonologicalGroups[i].IsStressed {
				lastStress = i
				break
			}
		}
		if lastStress < 0 {
			endings = append(endings, StressedEnding{SyllableCount: count})
			continue
		}
		endings = append(endings, StressedEnding{
			Syllables:     syllables[lastStress:],
			SyllableCount: count,
			StressOffset:  lastStress - count,
		})
	}
	return endings
}

// relaxSyllable folds the first rising diphthong and all homophone
// spellings of one syllable.
func relaxSyllable(syllable string) string {
	if loc := weakStrongRe.FindStringSubmatchIndex(syllable); loc != nil {
		syllable = syllable[:loc[0]] + syllable[loc[2]:loc[3]] + syllable[loc[1]:]
	}
	for _, h := range homophones {
		syllable = strings.ReplaceAll(syllable, h[0], h[1])
		syllable = strings.ReplaceAll(syllable,
			strings.ToUpper(h[0]), strings.ToUpper(h[1]))
	}
	return syllable
}

// rhymeCode normalizes one stressed ending into a comparable code.
// Stress is marked by uppercasing: the accented vowel alone when the
// stressed syllable carries a tilde, the whole syllable otherwise.
// Under assonance every consonant is removed, otherwise only the onset
// before the first vowel; accents are stripped last (ñ survives, it is
// a distinct rhyme consonant).
func rhymeCode(ending StressedEnding, assonance, relaxation bool) string {
	if len(ending.Syllables) == 0 {
		return ""
	}
	syllables := append([]string(nil), ending.Syllables...)
	// The offset is counted from the end of the line, so it lands on the
	// first ending syllable.
	idx := len(syllables) + ending.StressOffset
	if idx < 0 || idx >= len(syllables) {
		idx = 0
	}
	if m := tildedVowelRe.FindStringIndex(syllables[idx]); m != nil {
		s := syllables[idx]
		syllables[idx] = s[:m[0]] + strings.ToUpper(s[m[0]:m[1]]) + s[m[1]:]
	} else {
		syllables[idx] = strings.ToUpper(syllables[idx])
	}
	if relaxation {
		for i := range syllables {
			syllables[i] = relaxSyllable(syllables[i])
		}
	}
	code := strings.Join(syllables, "")
	code = groupGQRe.ReplaceAllString(code, "${1}${2}")
	code = diphthongYRe.ReplaceAllString(code, "${1}i${2}")
	if assonance {
		code = consonantsRe.ReplaceAllString(code, "")
	} else {
		code = diphthongHRe.ReplaceAllString(code, "${1}${2}")
		code = initialConsonantsRe.ReplaceAllString(code, "")
	}
	return StripAccents(code)
}

// cleanCodes indexes the lines' rhyme codes: ids are assigned by first
// occurrence, and ids seen exactly once are tracked as singletons.
type cleanCodes struct {
	endings    map[int]string
	lineCodes  []int
	singletons map[int]bool
}

func getCleanCodes(endings []StressedEnding, assonance, relaxation bool) cleanCodes {
	cc := cleanCodes{
		endings:    map[int]string{},
		singletons: map[int]bool{},
	}
	ids := map[string]int{}
	for _, ending := range endings {
		code := rhymeCode(ending, assonance, relaxation)
		id, seen := ids[code]
		if !seen {
			id = len(ids)
			ids[code] = id
			cc.endings[id] = code
			cc.singletons[id] = true
		} else {
			delete(cc.singletons, id)
		}
		cc.lineCodes = append(cc.lineCodes, id)
	}
	return cc
}

// assignLetterCodes numbers the recurring codes in order of appearance
// and blanks rhymes that recur only beyond the offset window: when the
// gap to the previous occurrence exceeds the offset, the earlier line is
// rewritten as unrhymed and the current one anchors the rhyme.
// offset <= 0 disables the window.
func assignLetterCodes(cc cleanCodes, offset int) (rhymeIDs []int, endings []string) {
	letters := map[int]int{}
	lastFound := map[int]int{}
	for index, id := range cc.lineCodes {
		if cc.singletons[id] {
			rhymeIDs = append(rhymeIDs, -1)
			endings = append(endings, "")
			continue
		}
		letter, ok := letters[id]
		if !ok {
			letter = len(letters)
			letters[id] = letter
		}
		if last, seen := lastFound[id]; seen && offset > 0 && index-last > offset {
			rhymeIDs[last] = -1
			endings[last] = ""
		}
		rhymeIDs = append(rhymeIDs, letter)
		endings = append(endings, cc.endings[id])
		lastFound[id] = index
	}
	return rhymeIDs, endings
}

// rhymeLetters maps the numeric rhyme ids to letters, '-' for unrhymed
// lines. Numbering restarts from the surviving ids in order of
// appearance; beyond 52 distinct rhymes the alphabet wraps.
func rhymeLetters(rhymeIDs []int, unrhymed string) []string {
	sequence := map[int]int{}
	out := make([]string, 0, len(rhymeIDs))
	for _, id := range rhymeIDs {
		if id < 0 {
			out = append(out, unrhymed)
			continue
		}
		n, ok := sequence[id]
		if !ok {
			n = len(sequence)
			sequence[id] = n
		}
		out = append(out, string(letterAlphabet[n%len(letterAlphabet)]))
	}
	return out
}

// splitStress lowercases each ending and recovers the stress offset from
// the position of its first uppercase character, counted from the end.
// Empty (unrhymed) endings get offset 0.
func splitStress(endings []string) ([]string, []int) {
	outEndings := make([]string, 0, len(endings))
	stresses := make([]int, 0, len(endings))
	for _, ending := range endings {
		runes := []rune(ending)
		stress := 0
		for i, r := range runes {
			if unicode.IsUpper(r) {
				stress = i - len(runes)
				break
			}
		}
		outEndings = append(outEndings, strings.ToLower(ending))
		stresses = append(stresses, stress)
	}
	return outEndings, stresses
}

// GetRhymes codes the stressed endings and returns, per line, the rhyme
// letter ("-" when unrhymed), the lowercased rhyming ending, and its
// stress offset.
func GetRhymes(endings []StressedEnding, assonance, relaxation bool, offset int) ([]string, []string, []int) {
	cc := getCleanCodes(endings, assonance, relaxation)
	rhymeIDs, rawEndings := assignLetterCodes(cc, offset)
	letters := rhymeLetters(rhymeIDs, "-")
	cleanEndings, stresses := splitStress(rawEndings)
	return letters, cleanEndings, stresses
}
