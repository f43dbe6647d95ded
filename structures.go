package escandir

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// StanzaStructure is one catalog entry: a rhyme type, a name, a pattern
// over the rhyme letters, and a predicate over the lines' rhythmical
// lengths. Entries are checked in declared order and the first full
// match wins, so order encodes priority.
type StanzaStructure struct {
	RhymeType string
	Name      string
	Pattern   patternMatcher
	Lengths   func([]int) bool
}

// patternMatcher matches a whole rhyme-letter string.
type patternMatcher interface {
	MatchString(string) bool
}

// full compiles a pattern anchored at both ends.
func full(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + pattern + `)$`)
}

// pairedLetters matches strings made of three or more doubled letters
// (aabbcc...), the aleluya scheme. Stated as ((.)\2){3,} in regex terms,
// which needs a backreference, hence the custom matcher.
type pairedLetters struct{}

func (pairedLetters) MatchString(s string) bool {
	runes := []rune(s)
	if len(runes) < 6 || len(runes)%2 != 0 {
		return false
	}
	for i := 0; i < len(runes); i += 2 {
		if runes[i] != runes[i+1] {
			return false
		}
	}
	return true
}

// mostCommonLengths returns the n most frequent lengths, most frequent
// first and ties by first appearance. When verses is non-negative the
// stanza must have exactly that many lines, otherwise the result is
// empty.
func mostCommonLengths(lengths []int, n, verses int) []int {
	if verses >= 0 && len(lengths) != verses {
		return nil
	}
	counts := map[int]int{}
	var order []int
	for _, l := range lengths {
		if counts[l] == 0 {
			order = append(order, l)
		}
		counts[l]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > n {
		order = order[:n]
	}
	return order
}

func containsAll(haystack []int, needles ...int) bool {
	for _, n := range needles {
		found := false
		for _, h := range haystack {
			if h == n {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// median of the lengths, averaging the middle pair for even counts.
func median(lengths []int) float64 {
	sorted := append([]int(nil), lengths...)
	sort.Ints(sorted)
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return float64(sorted[n/2])
	}
	return float64(sorted[n/2-1]+sorted[n/2]) / 2
}

// allBetween reports whether every length falls strictly between lo
// and hi.
func allBetween(lengths []int, lo, hi int) bool {
	for _, l := range lengths {
		if l <= lo || l >= hi {
			return false
		}
	}
	return len(lengths) > 0
}

// shapeChecker builds a predicate for a fixed verse count where each
// position must fall strictly inside its (lo, hi) bound.
func shapeChecker(bounds ...[2]int) func([]int) bool {
	return func(lengths []int) bool {
		if len(lengths) != len(bounds) {
			return false
		}
		for i, b := range bounds {
			if lengths[i] <= b[0] || lengths[i] >= b[1] {
				return false
			}
		}
		return true
	}
}

// Canonical verse shapes, each position bounded around its nominal
// length.
var (
	long  = [2]int{5, 9}  // heptasyllable
	short = [2]int{3, 7}  // pentasyllable
	tiny  = [2]int{2, 6}  // tetrasyllable and shorter
	octo  = [2]int{6, 10} // octosyllable
	hende = [2]int{8, 13} // hendecasyllable
)

var (
	isSeguidilla = shapeChecker(long, short, long, short)

	isSeguidillaCompuesta = shapeChecker(long, short, long, short, short, long, short)

	isChamberga = shapeChecker(long, [2]int{4, 7}, long, [2]int{4, 7},
		tiny, long, tiny, long, tiny, long)

	isSeguidillaGitana = shapeChecker([2]int{4, 8}, [2]int{4, 8}, [2]int{9, 13}, [2]int{4, 8})

	isEstrofaSafica = shapeChecker(hende, hende, hende, short)

	isEstrofaSaficaUnamuno = shapeChecker(hende, hende, long, short)

	isEstrofaFranciscoDeLaTorre = shapeChecker(hende, hende, hende, long)

	isLira = shapeChecker(long, hende, long, long, hende)

	isEstrofaManriquena = shapeChecker(octo, octo, tiny, octo, octo, tiny)

	isOvillejo = shapeChecker(octo, tiny, octo, tiny, octo, tiny,
		octo, octo, octo, octo)
)

// isEndechaReal accepts chained 7-7-7-11 quatrains, two at minimum.
func isEndechaReal(lengths []int) bool {
	if len(lengths)%4 != 0 || len(lengths) <= 7 {
		return false
	}
	for i, l := range lengths {
		if i%4 == 3 {
			if l <= 8 || l >= 13 {
				return false
			}
		} else if l <= 5 || l >= 9 {
			return false
		}
	}
	return true
}

// isHaiku checks the 5-7-5 moraic shape, possibly chained.
func isHaiku(lengths []int) bool {
	var b strings.Builder
	for _, l := range lengths {
		b.WriteString(strconv.Itoa(l))
	}
	return haikuRe.MatchString(b.String())
}

var haikuRe = regexp.MustCompile(`^(?:575)+`)

// Structures is the stanza catalog, ordered by priority. The first
// entry whose rhyme type, letter pattern and length predicate all hold
// names the stanza.
var Structures = []StanzaStructure{
	{ConsonantRhyme, "seguidilla", full(`(-a-a)|(abab)`), isSeguidilla},
	{AssonantRhyme, "seguidilla", full(`(-a-a)|(abab)`), isSeguidilla},
	{ConsonantRhyme, "seguidilla_compuesta", full(`((-a-a)|(abab))((a-a)|(b-b)|(c-c))`), isSeguidillaCompuesta},
	{AssonantRhyme, "seguidilla_compuesta", full(`((-a-a)|(abab))((a-a)|(b-b)|(c-c))`), isSeguidillaCompuesta},
	{AssonantRhyme, "chamberga", full(`((-a-a)|(abab))([^-]{2}){3}`), isChamberga},
	{AssonantRhyme, "seguidilla_gitana", full(`(-a-a)|(a-a-)`), isSeguidillaGitana},
	{AssonantRhyme, "endecha_real", full(`(-a-a){2,}`), isEndechaReal},
	{ConsonantRhyme, "cuarteto_lira", full(`(abab)|(abba)|(-a-a)`), func(lengths []int) bool {
		return containsAll(mostCommonLengths(lengths, 3, 4), 11, 7)
	}},
	{AssonantRhyme, "cuarteto_lira", full(`(abab)|(abba)|(-a-a)`), func(lengths []int) bool {
		return containsAll(mostCommonLengths(lengths, 3, 4), 11, 7)
	}},
	{ConsonantRhyme, "estrofa_sáfica", full(`(----)|(a-a-)|(ab-b)|(abab)`), func(lengths []int) bool {
		return isEstrofaSafica(lengths) || isEstrofaSaficaUnamuno(lengths)
	}},
	{AssonantRhyme, "estrofa_sáfica", full(`(----)|(a-a-)|(ab-b)|(abab)`), isEstrofaSafica},
	{ConsonantRhyme, "estrofa_francisco_de_la_torre", full(`(----)|(a-a-)`), isEstrofaFranciscoDeLaTorre},
	{AssonantRhyme, "francisco_de_la_torre", full(`(----)|(a-a-)`), isEstrofaFranciscoDeLaTorre},
	{ConsonantRhyme, "estrofa_manriqueña", full(`abcabc`), isEstrofaManriquena},
	{ConsonantRhyme, "sexteto_lira", full(`(ababcc)|(aabccb)|(abcabc)`), func(lengths []int) bool {
		return containsAll(mostCommonLengths(lengths, 4, 6), 11, 7)
	}},
	{ConsonantRhyme, "septeto_lira", full(`(ababbcc)`), func(lengths []int) bool {
		return containsAll(mostCommonLengths(lengths, 4, 7), 11, 7)
	}},
	{ConsonantRhyme, "ovillejo", full(`aabbcccddc`), isOvillejo},
	{ConsonantRhyme, "sonnet", full(`(abba|abab|cddc|cdcd){2}((cd|ef){3}|(cde|efg){2}|[cde]{6})`), func(lengths []int) bool {
		return allBetween(lengths, 9, 14)
	}},
	{ConsonantRhyme, "couplet", full(`aa`), func(lengths []int) bool {
		return allBetween(lengths, 1, 20)
	}},
	{ConsonantRhyme, "tercetillo", full(`a.a`), func(lengths []int) bool {
		return allBetween(lengths, 1, 11)
	}},
	{ConsonantRhyme, "terceto", full(`(aba)|(-aa)`), func(lengths []int) bool {
		return allBetween(lengths, 8, 16)
	}},
	{ConsonantRhyme, "sexteto", full(`(aabccb)|(aababa)|(-aabba)`), func(lengths []int) bool {
		return allBetween(lengths, 9, 16)
	}},
	{ConsonantRhyme, "sexteto_rima", full(`(ababcc)|(aacbbc)`), func(lengths []int) bool {
		return median(lengths) == 11
	}},
	{ConsonantRhyme, "sextilla", full(`(aabaab)|(abcabc)|(ababab)|(abbccb)|(aababa)`), func(lengths []int) bool {
		return allBetween(lengths, 4, 11)
	}},
	{ConsonantRhyme, "terceto_monorrimo", full(`aaa`), func(lengths []int) bool {
		return allBetween(lengths, 8, 16)
	}},
	{ConsonantRhyme, "redondilla", full(`abba`), func(lengths []int) bool {
		return allBetween(lengths, 4, 10)
	}},
	{AssonantRhyme, "redondilla", full(`abba`), func(lengths []int) bool {
		return allBetween(lengths, 4, 10)
	}},
	{ConsonantRhyme, "aleluya", pairedLetters{}, func(lengths []int) bool {
		return allBetween(lengths, 4, 11)
	}},
	{ConsonantRhyme, "cuarteto", full(`abba`), func(lengths []int) bool {
		return allBetween(lengths, 8, 16)
	}},
	{ConsonantRhyme, "serventesio", full(`abab`), func(lengths []int) bool {
		return allBetween(lengths, 8, 16)
	}},
	{ConsonantRhyme, "cuaderna_vía", full(`aaaa`), func(lengths []int) bool {
		return median(lengths) == 14
	}},
	{ConsonantRhyme, "cuarteta", full(`abab`), func(lengths []int) bool {
		return allBetween(lengths, 4, 10)
	}},
	{ConsonantRhyme, "octava_real", full(`(abababcc)`), func(lengths []int) bool {
		return median(lengths) == 11
	}},
	{ConsonantRhyme, "copla_arte_mayor", full(`(abbaacca)|(ababbccb)|(abbaacac)`), func(lengths []int) bool {
		return allBetween(lengths, 8, 16)
	}},
	{ConsonantRhyme, "copla_arte_menor", full(`(abbaacca)|(ababbccb)|(abbaacac)`), func(lengths []int) bool {
		return median(lengths) == 8 || containsAll(mostCommonLengths(lengths, 4, -1), 8, 4)
	}},
	{ConsonantRhyme, "copla_castellana", full(`(abbacddc)|(ababcdcd)|(abbacdcd)|(ababcddc)|(abbaacca)`), func(lengths []int) bool {
		return median(lengths) == 8
	}},
	{ConsonantRhyme, "copla_mixta", full(`abbacca`), func(lengths []int) bool {
		return allBetween(lengths, 3, 11)
	}},
	{ConsonantRhyme, "octava", full(`.{8}`), func(lengths []int) bool {
		return allBetween(lengths, 8, 16)
	}},
	{ConsonantRhyme, "octavilla", full(`(abbecdde)|(ababbccb)`), func(lengths []int) bool {
		return allBetween(lengths, 4, 11)
	}},
	{AssonantRhyme, "octavilla", full(`(abbecdde)|(ababbccb)`), func(lengths []int) bool {
		return allBetween(lengths, 4, 11)
	}},
	{ConsonantRhyme, "espinela", full(`abbaaccddc`), func(lengths []int) bool {
		return median(lengths) == 8
	}},
	{ConsonantRhyme, "copla_real", full(`((ababa)|(abaab)|(abbab)|(aabab)|(aabba))((ababa)|(abaab)|(abbab)|(aabab)|(aabba)|(cdcdc)|(cdccd)|(cddcd)|(ccdcd)|(ccddc))`), func(lengths []int) bool {
		return median(lengths) == 8
	}},
	{ConsonantRhyme, "lira", full(`ababb`), isLira},
	{ConsonantRhyme, "quinteto", full(`(ababa|abaab|abbab|aabab|aabba)`), func(lengths []int) bool {
		return allBetween(lengths, 9, 14)
	}},
	{ConsonantRhyme, "quintilla", full(`(ababa|abaab|abbab|aabab|aabba)`), func(lengths []int) bool {
		return allBetween(lengths, 3, 11)
	}},
	{AssonantRhyme, "couplet", full(`aa`), func(lengths []int) bool {
		return allBetween(lengths, 1, 20)
	}},
	{AssonantRhyme, "silva_arromanzada", full(`(-a)+`), func(lengths []int) bool {
		return containsAll(mostCommonLengths(lengths, 4, -1), 11, 7)
	}},
	{AssonantRhyme, "cantar", full(`-a-a`), func(lengths []int) bool {
		return allBetween(lengths, 4, 11)
	}},
	{AssonantRhyme, "romance", full(`((.b)+)|(([^a]a)+)`), func(lengths []int) bool {
		return median(lengths) == 8
	}},
	{AssonantRhyme, "romance_arte_mayor", full(`((.b)+)|((.a)+)`), func(lengths []int) bool {
		m := median(lengths)
		return m >= 11 && m <= 14
	}},
	{AssonantRhyme, "haiku", full(`.*`), isHaiku},
	{AssonantRhyme, "soleá", full(`(a-a)`), func(lengths []int) bool {
		return median(lengths) == 8
	}},
	{ConsonantRhyme, "decima_antigua", full(`(abbaacccaa)`), func(lengths []int) bool {
		return median(lengths) == 8
	}},
	{ConsonantRhyme, "septeto", full(`.{7}`), func(lengths []int) bool {
		return allBetween(lengths, 8, 16)
	}},
	{ConsonantRhyme, "septilla", full(`.{7}`), func(lengths []int) bool {
		return allBetween(lengths, 4, 11)
	}},
	{ConsonantRhyme, "novena", full(`.{9}`), func([]int) bool {
		return true
	}},
}

// CanonicalLengths lists the nominal verse lengths of a few well known
// structures.
var CanonicalLengths = map[string][]int{
	"sonnet": {11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11},
	"haiku":  {5, 7, 5},
	"lira":   {7, 11, 7, 7, 11},
}

// searchStructure returns the rank of the first catalog entry matching
// the rhyme string, lengths and rhyme type, or -1.
func searchStructure(rhyme string, lengths []int, rhymeType string) int {
	for rank, s := range Structures {
		if s.RhymeType == rhymeType && s.Pattern.MatchString(rhyme) && s.Lengths(lengths) {
			return rank
		}
	}
	return -1
}
