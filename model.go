package escandir

import "strings"

// RhythmFormat selects the output representation of a line's
// rhythmical stress.
type RhythmFormat string

const (
	// FormatPattern renders the rhythm as a "+-+-" string.
	FormatPattern RhythmFormat = "pattern"
	// FormatIndexed renders the rhythm as the 0-based indices of the
	// stressed positions.
	FormatIndexed RhythmFormat = "indexed"
)

// Rhyme type names as they appear in structure results.
const (
	ConsonantRhyme = "consonant"
	AssonantRhyme  = "assonant"
)

// RawToken is one token as supplied by the external tokenizer/tagger
// pipeline. POS is the coarse universal tag ("DET", "PRON", ...); Tag is
// the fine-grained feature string ("Definite=Ind|Gender=Masc|...").
// Legacy taggers may pack both into Tag joined by "__"; see SplitLegacyTag.
type RawToken struct {
	Text    string `json:"text"`
	IsAlpha bool   `json:"is_alpha"`
	POS     string `json:"pos,omitempty"`
	Tag     string `json:"tag,omitempty"`
}

// SplitLegacyTag splits a legacy "POS__Feature=Value|..." packed tag on
// its first "__" occurrence. When no packing is present it returns the
// token's own POS and Tag unchanged.
func (t RawToken) SplitLegacyTag() (pos, tag string) {
	if i := strings.Index(t.Tag, "__"); i >= 0 {
		return t.Tag[:i], t.Tag[i+2:]
	}
	return t.POS, t.Tag
}

// Syllable is one orthographic or phonological syllable. After grouping,
// a Syllable may represent a merged phonological group; SynalephaIndexes
// then holds the rune index of the last character contributed by each
// earlier word at every cross-word merge, in merge order.
type Syllable struct {
	Text             string `json:"syllable"`
	IsStressed       bool   `json:"is_stressed"`
	HasSinaeresis    bool   `json:"has_sinaeresis,omitempty"`
	HasSynalepha     bool   `json:"has_synalepha,omitempty"`
	SynalephaIndexes []int  `json:"synalepha_index,omitempty"`
}

// Word is an analyzed word token: its syllables and the stressed
// syllable position counted from the end (-1 last, -2 penultimate, ...).
// StressPosition 0 means an unstressed monosyllable (no stressed
// syllable at all).
type Word struct {
	Syllables      []Syllable `json:"word"`
	StressPosition int        `json:"stress_position"`
}

// Token is either an analyzed Word or a non-alphabetic Symbol.
type Token struct {
	Word   *Word  `json:"word,omitempty"`
	Symbol string `json:"symbol,omitempty"`
}

// IsWord reports whether the token carries an analyzed word.
func (t Token) IsWord() bool { return t.Word != nil }

// Rhythm is the rhythmical stress of one line in the requested format.
type Rhythm struct {
	Stress  string       `json:"stress,omitempty"`
	Indexes []int        `json:"indexes,omitempty"`
	Format  RhythmFormat `json:"type"`
	Length  int          `json:"length"`
}

// Line is one analyzed verse line.
type Line struct {
	Tokens             []Token    `json:"tokens"`
	PhonologicalGroups []Syllable `json:"phonological_groups"`
	Rhythm             Rhythm     `json:"rhythm"`

	// Rhyme analysis results; populated only when a stanza structure
	// was identified for the whole poem.
	Structure       string `json:"structure,omitempty"`
	Rhyme           string `json:"rhyme,omitempty"`
	Ending          string `json:"ending,omitempty"`
	EndingStress    int    `json:"ending_stress,omitempty"`
	RhymeType       string `json:"rhyme_type,omitempty"`
	RhymeRelaxation *bool  `json:"rhyme_relaxation,omitempty"`
}

// StressedEnding is the tail of a line's phonological groups starting at
// the last stressed group. StressOffset is the index of that group as a
// negative offset from the group count.
type StressedEnding struct {
	Syllables     []string
	SyllableCount int
	StressOffset  int
}

// Structure is the best stanza structure identified for a poem.
type Structure struct {
	Name            string   `json:"name"`
	Rank            int      `json:"rank"`
	Rhyme           []string `json:"rhyme"`
	Endings         []string `json:"endings"`
	EndingsStress   []int    `json:"endings_stress"`
	RhymeType       string   `json:"rhyme_type"`
	RhymeRelaxation bool     `json:"rhyme_relaxation"`
}
