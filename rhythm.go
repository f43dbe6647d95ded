package escandir

import "strings"

// hasProsodicLiaison reports whether the boundary between two adjacent
// syllables can merge by synalepha: the first ends in a vowel (or y) and
// the second starts with a vowel, y or silent h.
func hasProsodicLiaison(first, second Syllable) bool {
	return liaisonFirst[lastRune(first.Text)] && liaisonSecond[firstRune(second.Text)]
}

// sinaeresisFold contracts flagged syllable pairs within one word. A
// flagged syllable absorbs exactly the next one; the merged unit keeps
// the flag but is not reconsidered, so chains do not cascade.
func sinaeresisFold(syllables []Syllable) []Syllable {
	out := make([]Syllable, 0, len(syllables))
	for i := 0; i < len(syllables); i++ {
		s := syllables[i]
		if s.HasSinaeresis && i+1 < len(syllables) {
			next := syllables[i+1]
			s.Text += next.Text
			s.IsStressed = s.IsStressed || next.IsStressed
			i++
		}
		out = append(out, s)
	}
	return out
}

// synalephaFold merges flagged word-final syllables with the first free
// syllable of a following word. When the absorbed syllable is itself
// flagged (a fully absorbed monosyllable), merging continues into the
// next word, so "va a entrar" contracts into a single group. Each merge
// records the rune index of the last character before the joint, used
// later to recover the final word for rhyme purposes.
func synalephaFold(words [][]Syllable) []Syllable {
	consumed := make([]int, len(words))
	var out []Syllable
	for wi := range words {
		for si := consumed[wi]; si < len(words[wi]); si++ {
			syl := words[wi][si]
			if !syl.HasSynalepha {
				out = append(out, syl)
				continue
			}
			merged := syl
			current := syl
			next := wi + 1
			for current.HasSynalepha {
				for next < len(words) && consumed[next] >= len(words[next]) {
					next++
				}
				if next >= len(words) {
					break
				}
				victim := words[next][consumed[next]]
				consumed[next]++
				merged.SynalephaIndexes = append(merged.SynalephaIndexes,
					len([]rune(merged.Text))-1)
				merged.Text += victim.Text
				merged.IsStressed = merged.IsStressed || victim.IsStressed
				current = victim
			}
			merged.HasSynalepha = true
			out = append(out, merged)
		}
	}
	return out
}

// phonologicalGroups folds the line's words into metrical groups:
// sinaeresis within each word first, then synalepha across words. The
// per-word folded lists are also returned; the last one drives the
// pattern correction.
func phonologicalGroups(tokens []Token) ([]Syllable, [][]Syllable) {
	var words [][]Syllable
	for _, t := range tokens {
		if t.IsWord() {
			words = append(words, sinaeresisFold(t.Word.Syllables))
		}
	}
	return synalephaFold(words), words
}

// rhythmicalPattern renders the groups as '+' (stressed) / '-' and
// applies the final-word correction: oxytone endings gain a beat,
// proparoxytone and earlier ones lose one.
func rhythmicalPattern(groups []Syllable, lastWord []Syllable) string {
	var b strings.Builder
	for _, g := range groups {
		if g.IsStressed {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	pattern := b.String()
	n := len(lastWord)
	switch {
	case n > 0 && lastWord[n-1].IsStressed:
		pattern += "-"
	case n >= 3 && lastWord[n-3].IsStressed && len(pattern) > 0:
		pattern = pattern[:len(pattern)-1]
	case n > 3 && lastWord[n-4].IsStressed && len(pattern) > 0:
		pattern = pattern[:len(pattern)-1]
	}
	return pattern
}

// stressIndexes lists the positions of the beats in a pattern.
func stressIndexes(pattern string) []int {
	indexes := []int{}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '+' {
			indexes = append(indexes, i)
		}
	}
	return indexes
}

// lineRhythm builds the Rhythm of a grouped line in the requested format.
func lineRhythm(groups []Syllable, words [][]Syllable, format RhythmFormat) Rhythm {
	var lastWord []Syllable
	if len(words) > 0 {
		lastWord = words[len(words)-1]
	}
	pattern := rhythmicalPattern(groups, lastWord)
	rhythm := Rhythm{Format: format, Length: len(pattern)}
	switch format {
	case FormatIndexed:
		rhythm.Indexes = stressIndexes(pattern)
	default:
		rhythm.Stress = pattern
	}
	return rhythm
}
