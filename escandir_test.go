package escandir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTexts(tokens []RawToken) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("¿Qué se me da a mí?")
	assert.Equal(t,
		[]string{"¿", "Qué", "se", "me", "da", "a", "mí", "?"},
		tokenTexts(tokens))
	assert.False(t, tokens[0].IsAlpha)
	assert.True(t, tokens[1].IsAlpha)

	// A blank line collapses into a single verse boundary.
	tokens = Tokenize("uno\n\ndos")
	assert.Equal(t, []string{"uno", "\n", "dos"}, tokenTexts(tokens))

	tokens = Tokenize("a, b")
	assert.Equal(t, []string{"a", ",", "b"}, tokenTexts(tokens))
}

func TestSplitVerses(t *testing.T) {
	verses := splitVerses(Tokenize("uno dos\n\ntres\n"))
	require.Len(t, verses, 2)
	assert.Equal(t, []string{"uno", "dos"}, tokenTexts(verses[0]))
	assert.Equal(t, []string{"tres"}, tokenTexts(verses[1]))

	// Verses holding only punctuation are dropped.
	verses = splitVerses(Tokenize("...\nhola"))
	require.Len(t, verses, 1)
	assert.Equal(t, []string{"hola"}, tokenTexts(verses[0]))
}

func TestScanOptionsOffset(t *testing.T) {
	assert.Equal(t, DefaultRhymeOffset, ScanOptions{}.offset())
	assert.Equal(t, 2, ScanOptions{RhymeOffset: 2}.offset())
	assert.Equal(t, 0, ScanOptions{RhymeOffset: -1}.offset())
}

func TestScanTextSeguidilla(t *testing.T) {
	poem := "Que se caiga la torre\n" +
		"de Valladolid,\n" +
		"como a mí no me coja,\n" +
		"¿qué se me da a mí?"
	lines := ScanText(poem, ScanOptions{RhymeAnalysis: true})
	require.Len(t, lines, 4)

	lengths := make([]int, len(lines))
	rhyme := make([]string, len(lines))
	for i, line := range lines {
		lengths[i] = line.Rhythm.Length
		rhyme[i] = line.Rhyme
		assert.Equal(t, "seguidilla", line.Structure)
	}
	assert.Equal(t, []int{7, 6, 7, 6}, lengths)
	assert.Equal(t, []string{"-", "a", "-", "a"}, rhyme)

	assert.Equal(t, "i", lines[1].Ending)
	assert.Equal(t, -1, lines[1].EndingStress)
	assert.Equal(t, AssonantRhyme, lines[1].RhymeType)
	require.NotNil(t, lines[1].RhymeRelaxation)
	assert.True(t, *lines[1].RhymeRelaxation)

	// Unrhymed lines carry no rhyme type.
	assert.Equal(t, "", lines[0].Ending)
	assert.Equal(t, 0, lines[0].EndingStress)
	assert.Equal(t, "", lines[0].RhymeType)
	assert.Nil(t, lines[0].RhymeRelaxation)
}

func TestScanTextCuarteta(t *testing.T) {
	poem := "la tarde me vio cantar\n" +
		"la luna por el camino\n" +
		"mi pecho vuelve a soñar\n" +
		"la senda con su destino"
	lines := ScanText(poem, ScanOptions{RhymeAnalysis: true})
	require.Len(t, lines, 4)

	rhyme := make([]string, len(lines))
	for i, line := range lines {
		assert.Equal(t, 8, line.Rhythm.Length)
		assert.Equal(t, "cuarteta", line.Structure)
		assert.Equal(t, ConsonantRhyme, line.RhymeType)
		rhyme[i] = line.Rhyme
	}
	assert.Equal(t, []string{"a", "b", "a", "b"}, rhyme)
	assert.Equal(t, "ar", lines[0].Ending)
	assert.Equal(t, -2, lines[0].EndingStress)
	assert.Equal(t, "ino", lines[1].Ending)
	assert.Equal(t, -3, lines[1].EndingStress)
}

func TestScanTextCouplet(t *testing.T) {
	lines := ScanText("cantar\namar", ScanOptions{RhymeAnalysis: true})
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 3, line.Rhythm.Length)
		assert.Equal(t, "couplet", line.Structure)
		assert.Equal(t, "a", line.Rhyme)
		assert.Equal(t, "ar", line.Ending)
		assert.Equal(t, -2, line.EndingStress)
		assert.Equal(t, ConsonantRhyme, line.RhymeType)
	}
}

func TestScanTextNoStructure(t *testing.T) {
	lines := ScanText("cantar\ncamino", ScanOptions{RhymeAnalysis: true})
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, "", line.Structure)
		assert.Equal(t, "", line.Rhyme)
		assert.Equal(t, "", line.RhymeType)
		assert.Nil(t, line.RhymeRelaxation)
	}
}

func TestScanTextWithoutRhymeAnalysis(t *testing.T) {
	lines := ScanText("cantar\namar", ScanOptions{})
	require.Len(t, lines, 2)
	assert.Equal(t, "", lines[0].Structure)
	assert.Equal(t, "-+-", lines[0].Rhythm.Stress)
}

func TestScanTextIndexedRhythm(t *testing.T) {
	lines := ScanText("cantar", ScanOptions{RhythmFormat: FormatIndexed})
	require.Len(t, lines, 1)
	assert.Equal(t, FormatIndexed, lines[0].Rhythm.Format)
	assert.Equal(t, []int{1}, lines[0].Rhythm.Indexes)
	assert.Equal(t, 3, lines[0].Rhythm.Length)
}
