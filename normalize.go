package escandir

import "strings"

// Character classes used by the stress and liaison rules.
// Accented and uppercase variants are members on purpose: syllable text
// keeps its original casing and accents until rhyme coding.
var (
	// strongVowels are the open vowels a/e/o.
	strongVowels = runeSet("aeoáéóÁÉÓAEO")

	// weakVowels are the closed vowels i/u, with umlaut variants.
	weakVowels = runeSet("iuüíúIÍUÜÚ")

	// liaisonFirst are characters that can close a word into a
	// cross-word liaison (synalepha).
	liaisonFirst = runeSet("aeiouáéíóúAEIOUÁÉÍÓÚy")

	// liaisonSecond are characters that can open the following word of
	// a synalepha; silent h participates.
	liaisonSecond = runeSet("aeiouáéíóúAEIOUÁÉÍÓÚhy")
)

func runeSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// lastRune returns the final rune of s, or 0 if s is empty.
func lastRune(s string) rune {
	var last rune
	for _, r := range s {
		last = r
	}
	return last
}

// firstRune returns the initial rune of s, or 0 if s is empty.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// accentReplacer normalizes acute-accented and umlaut vowels to their
// base letter, in both cases. ñ is intentionally left alone: rhyme codes
// must keep it distinct from n (caña does not rhyme with cana).
var accentReplacer = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u",
	"Á", "A", "É", "E", "Í", "I", "Ó", "O", "Ú", "U",
	"ä", "a", "ë", "e", "ï", "i", "ö", "o", "ü", "u",
	"Ä", "A", "Ë", "E", "Ï", "I", "Ö", "O", "Ü", "U",
)

// StripAccents removes acute-accent and diaeresis marks from vowels,
// preserving case and every other character (including ñ).
func StripAccents(s string) string {
	return accentReplacer.Replace(s)
}
