package escandir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasProsodicLiaison(t *testing.T) {
	tests := []struct {
		first, second string
		want          bool
	}{
		{"mo", "a", true},
		{"le", "ha", true},   // silent h admits liaison
		{"soy", "un", true},  // y counts as vowel on both sides
		{"las", "a", false},  // consonant coda blocks it
		{"mo", "ca", false},  // consonant onset blocks it
	}
	for _, tt := range tests {
		got := hasProsodicLiaison(
			Syllable{Text: tt.first}, Syllable{Text: tt.second})
		assert.Equal(t, tt.want, got, "%s|%s", tt.first, tt.second)
	}
}

func TestSinaeresisFold(t *testing.T) {
	word := AssignStress("poeta", "NOUN", nil)
	folded := sinaeresisFold(word.Syllables)
	require.Len(t, folded, 2)
	assert.Equal(t, "poe", folded[0].Text)
	assert.True(t, folded[0].IsStressed)
	assert.True(t, folded[0].HasSinaeresis)
	assert.Equal(t, "ta", folded[1].Text)

	// no flags, no folding
	word = AssignStress("mano", "NOUN", nil)
	assert.Len(t, sinaeresisFold(word.Syllables), 2)
}

func TestScanLinePattern(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		pattern string
		length  int
	}{
		// paroxytone last word, no correction
		{"plain", "Que se caiga la torre", "+++-++-", 7},
		// oxytone last word gains a beat
		{"oxytone", "de Valladolid", "+---+-", 6},
		// proparoxytone last word loses one
		{"proparoxytone", "el pájaro", "++-", 3},
		// synalepha merges como|a into one group
		{"synalepha", "como a mí no me coja", "++++++-", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := ScanLine(Tokenize(tt.line), FormatPattern)
			assert.Equal(t, tt.pattern, line.Rhythm.Stress)
			assert.Equal(t, tt.length, line.Rhythm.Length)
			assert.Equal(t, FormatPattern, line.Rhythm.Format)
		})
	}
}

func TestScanLineIndexed(t *testing.T) {
	line := ScanLine(Tokenize("de Valladolid"), FormatIndexed)
	assert.Equal(t, []int{0, 4}, line.Rhythm.Indexes)
	assert.Empty(t, line.Rhythm.Stress)
	assert.Equal(t, 6, line.Rhythm.Length)
}

func TestScanLineSynalephaGroups(t *testing.T) {
	line := ScanLine(Tokenize("como a mí no me coja"), FormatPattern)
	require.Len(t, line.PhonologicalGroups, 7)
	merged := line.PhonologicalGroups[1]
	assert.Equal(t, "moa", merged.Text)
	assert.True(t, merged.HasSynalepha)
	assert.Equal(t, []int{1}, merged.SynalephaIndexes)
	assert.True(t, merged.IsStressed)
}

func TestSynalephaFoldCascade(t *testing.T) {
	// A fully absorbed monosyllable keeps merging into the next word:
	// va|a|entrar contracts to a single opening group.
	line := ScanLine(Tokenize("va a entrar"), FormatPattern)
	require.NotEmpty(t, line.PhonologicalGroups)
	first := line.PhonologicalGroups[0]
	assert.Equal(t, "vaaen", first.Text)
	assert.Equal(t, []int{1, 2}, first.SynalephaIndexes)
	assert.Len(t, line.PhonologicalGroups, 2)
}

func TestScanLineEmpty(t *testing.T) {
	line := ScanLine(Tokenize("..."), FormatPattern)
	assert.Empty(t, line.PhonologicalGroups)
	assert.Equal(t, 0, line.Rhythm.Length)
}
