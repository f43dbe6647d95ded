package escandir

import (
	"strings"
	"unicode"
)

// DefaultRhymeOffset is the maximum distance, in lines, at which two
// matching endings still count as a rhyme.
const DefaultRhymeOffset = 4

// Tokenize splits plain text into word and symbol tokens. Words are
// maximal letter runs; punctuation comes out one symbol per character;
// whitespace is dropped except that any run containing a newline yields
// a "\n" symbol token, which marks a verse boundary. It is a fallback
// for when no tagger output is available: tokens carry no part of
// speech, so monosyllable function words are treated as stressed.
func Tokenize(text string) []RawToken {
	var tokens []RawToken
	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			tokens = append(tokens, RawToken{Text: string(runes[i:j]), IsAlpha: true})
			i = j
		case unicode.IsSpace(r):
			j := i
			newline := false
			for j < len(runes) && unicode.IsSpace(runes[j]) {
				if runes[j] == '\n' {
					newline = true
				}
				j++
			}
			if newline {
				tokens = append(tokens, RawToken{Text: "\n"})
			}
			i = j
		default:
			tokens = append(tokens, RawToken{Text: string(r)})
			i++
		}
	}
	return tokens
}

// lastWordSyllable returns a pointer to the final syllable of the last
// word token, or nil when no word precedes.
func lastWordSyllable(tokens []Token) *Syllable {
	for i := len(tokens) - 1; i >= 0; i-- {
		if tokens[i].IsWord() {
			syllables := tokens[i].Word.Syllables
			if len(syllables) == 0 {
				return nil
			}
			return &syllables[len(syllables)-1]
		}
	}
	return nil
}

// analyzeTokens turns one verse worth of raw tokens into analyzed
// tokens, marking synalepha on word-final syllables whose boundary with
// the next word allows a liaison.
func analyzeTokens(raw []RawToken) []Token {
	var tokens []Token
	for _, rt := range raw {
		if !rt.IsAlpha {
			tokens = append(tokens, Token{Symbol: rt.Text})
			continue
		}
		pos, tag := rt.SplitLegacyTag()
		word := AssignStress(rt.Text, pos, ParseTag(tag))
		if len(word.Syllables) > 0 {
			if prev := lastWordSyllable(tokens); prev != nil &&
				hasProsodicLiaison(*prev, word.Syllables[0]) {
				prev.HasSynalepha = true
			}
		}
		tokens = append(tokens, Token{Word: &word})
	}
	return tokens
}

// ScanLine analyzes a single verse: stress and syllables per word,
// phonological grouping, and the rhythmical pattern in the requested
// format.
func ScanLine(raw []RawToken, format RhythmFormat) Line {
	tokens := analyzeTokens(raw)
	groups, words := phonologicalGroups(tokens)
	return Line{
		Tokens:             tokens,
		PhonologicalGroups: groups,
		Rhythm:             lineRhythm(groups, words, format),
	}
}

// splitVerses cuts the token stream at newline-bearing symbol tokens.
// Verses without any word token are dropped.
func splitVerses(raw []RawToken) [][]RawToken {
	var verses [][]RawToken
	var current []RawToken
	hasWord := false
	flush := func() {
		if hasWord {
			verses = append(verses, current)
		}
		current = nil
		hasWord = false
	}
	for _, t := range raw {
		if !t.IsAlpha && strings.ContainsRune(t.Text, '\n') {
			flush()
			continue
		}
		if t.IsAlpha {
			hasWord = true
		}
		current = append(current, t)
	}
	flush()
	return verses
}

// ScanOptions configures ScanPoem.
type ScanOptions struct {
	// RhymeAnalysis enables stanza-structure and rhyme detection over
	// the whole poem.
	RhymeAnalysis bool
	// RhythmFormat selects the rhythm representation; the zero value is
	// the "pattern" string form.
	RhythmFormat RhythmFormat
	// RhymeOffset overrides DefaultRhymeOffset when positive; negative
	// disables the distance window.
	RhymeOffset int
}

func (o ScanOptions) offset() int {
	switch {
	case o.RhymeOffset > 0:
		return o.RhymeOffset
	case o.RhymeOffset < 0:
		return 0
	default:
		return DefaultRhymeOffset
	}
}

// ScanPoem scans every verse of the token stream and, when requested,
// annotates the lines with the best matching stanza structure and the
// per-line rhyme data.
func ScanPoem(raw []RawToken, opts ScanOptions) []Line {
	verses := splitVerses(raw)
	lines := make([]Line, 0, len(verses))
	for _, verse := range verses {
		lines = append(lines, ScanLine(verse, opts.RhythmFormat))
	}
	if opts.RhymeAnalysis {
		applyRhyme(lines, opts.offset())
	}
	return lines
}

// ScanText tokenizes plain text and scans it as a poem.
func ScanText(text string, opts ScanOptions) []Line {
	return ScanPoem(Tokenize(text), opts)
}

// applyRhyme runs the stanza search and, on success, writes the
// per-line rhyme annotations. Lines whose ending carries no stress are
// left without a rhyme type.
func applyRhyme(lines []Line, offset int) {
	structure := AnalyzeRhyme(lines, offset)
	if structure == nil {
		return
	}
	for i := range lines {
		lines[i].Structure = structure.Name
		lines[i].Rhyme = structure.Rhyme[i]
		lines[i].Ending = structure.Endings[i]
		lines[i].EndingStress = structure.EndingsStress[i]
		if lines[i].EndingStress == 0 {
			lines[i].RhymeType = ""
			lines[i].RhymeRelaxation = nil
		} else {
			lines[i].RhymeType = structure.RhymeType
			relaxation := structure.RhymeRelaxation
			lines[i].RhymeRelaxation = &relaxation
		}
	}
}

// AnalyzeRhyme searches the stanza catalog over the four coding
// policies, consonant before assonant and relaxed before strict, and
// keeps the best ranked match. Returns nil when nothing in the catalog
// fits.
func AnalyzeRhyme(lines []Line, offset int) *Structure {
	endings := StressedEndings(lines)
	lengths := make([]int, len(lines))
	for i, line := range lines {
		lengths[i] = line.Rhythm.Length
	}

	var best *Structure
	bestRank := len(Structures)
	for _, assonance := range []bool{false, true} {
		rhymeType := ConsonantRhyme
		if assonance {
			rhymeType = AssonantRhyme
		}
		for _, relaxation := range []bool{true, false} {
			letters, cleanEndings, stresses := GetRhymes(endings, assonance, relaxation, offset)
			rank := searchStructure(strings.Join(letters, ""), lengths, rhymeType)
			if rank < 0 || rank >= bestRank {
				continue
			}
			bestRank = rank
			best = &Structure{
				Name:            Structures[rank].Name,
				Rank:            rank,
				Rhyme:           letters,
				Endings:         cleanEndings,
				EndingsStress:   stresses,
				RhymeType:       rhymeType,
				RhymeRelaxation: relaxation,
			}
		}
	}
	return best
}
