package escandir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMostCommonLengths(t *testing.T) {
	assert.Equal(t, []int{11, 7}, mostCommonLengths([]int{11, 7, 11, 7, 11}, 2, -1))
	// Ties keep first-appearance order.
	assert.Equal(t, []int{7, 11}, mostCommonLengths([]int{7, 11, 7, 11}, 2, -1))
	// A verse count gate rejects stanzas of any other size.
	assert.Nil(t, mostCommonLengths([]int{8, 8, 8}, 2, 4))
	assert.Equal(t, []int{8}, mostCommonLengths([]int{8, 8, 8, 8}, 3, 4))
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 8.0, median([]int{8, 8, 8, 8}))
	assert.Equal(t, 7.0, median([]int{11, 7, 6}))
	assert.Equal(t, 7.0, median([]int{6, 8}))
	assert.Equal(t, 0.0, median(nil))
}

func TestAllBetween(t *testing.T) {
	assert.True(t, allBetween([]int{5, 6, 7}, 4, 10))
	assert.False(t, allBetween([]int{4, 6}, 4, 10))
	assert.False(t, allBetween([]int{6, 10}, 4, 10))
	assert.False(t, allBetween(nil, 4, 10))
}

func TestPairedLetters(t *testing.T) {
	m := pairedLetters{}
	assert.True(t, m.MatchString("aabbcc"))
	assert.True(t, m.MatchString("--aabb"))
	assert.False(t, m.MatchString("abab"))
	assert.False(t, m.MatchString("aabb"))
	assert.False(t, m.MatchString("aabbc"))
}

func TestIsSeguidilla(t *testing.T) {
	assert.True(t, isSeguidilla([]int{7, 6, 7, 6}))
	assert.True(t, isSeguidilla([]int{8, 6, 7, 6}))
	assert.False(t, isSeguidilla([]int{9, 6, 7, 6}))
	assert.False(t, isSeguidilla([]int{7, 6, 7}))
}

func TestIsEndechaReal(t *testing.T) {
	assert.True(t, isEndechaReal([]int{7, 7, 7, 11, 7, 7, 7, 11}))
	assert.True(t, isEndechaReal([]int{7, 7, 7, 12, 7, 7, 7, 11}))
	// A single quatrain is not enough.
	assert.False(t, isEndechaReal([]int{7, 7, 7, 11}))
	assert.False(t, isEndechaReal([]int{7, 7, 7, 13, 7, 7, 7, 11}))
}

func TestIsHaiku(t *testing.T) {
	assert.True(t, isHaiku([]int{5, 7, 5}))
	assert.True(t, isHaiku([]int{5, 7, 5, 5, 7, 5}))
	assert.False(t, isHaiku([]int{7, 5, 7}))
	assert.False(t, isHaiku([]int{5, 7, 4}))
	// Prefix semantics: anything starting with 5-7-5 passes.
	assert.True(t, isHaiku([]int{5, 7, 5, 9}))
}

func structureRank(name, rhymeType string) int {
	for rank, s := range Structures {
		if s.Name == name && s.RhymeType == rhymeType {
			return rank
		}
	}
	return -1
}

func TestSearchStructure(t *testing.T) {
	tests := []struct {
		rhyme     string
		lengths   []int
		rhymeType string
		name      string
	}{
		{"-a-a", []int{7, 6, 7, 6}, AssonantRhyme, "seguidilla"},
		{"abab", []int{8, 8, 8, 8}, ConsonantRhyme, "cuarteta"},
		{"abab", []int{11, 11, 11, 11}, ConsonantRhyme, "serventesio"},
		{"---", []int{5, 7, 5}, AssonantRhyme, "haiku"},
		{"a-a", []int{8, 8, 8}, AssonantRhyme, "soleá"},
		{"aa", []int{3, 3}, ConsonantRhyme, "couplet"},
		{"aabbcc", []int{8, 8, 8, 8, 8, 8}, ConsonantRhyme, "aleluya"},
		{"ababb", []int{7, 11, 7, 7, 11}, ConsonantRhyme, "lira"},
		{"ababacdcdc", []int{8, 8, 8, 8, 8, 8, 8, 8, 8, 8}, ConsonantRhyme, "copla_real"},
		// the second quintilla may reuse the first one's rhymes
		{"ababaababa", []int{8, 8, 8, 8, 8, 8, 8, 8, 8, 8}, ConsonantRhyme, "copla_real"},
	}
	for _, tt := range tests {
		rank := searchStructure(tt.rhyme, tt.lengths, tt.rhymeType)
		want := structureRank(tt.name, tt.rhymeType)
		assert.Equal(t, want, rank, "%s %s %v", tt.rhyme, tt.rhymeType, tt.lengths)
		if rank >= 0 {
			assert.Equal(t, tt.name, Structures[rank].Name)
		}
	}
}

func TestCanonicalLengths(t *testing.T) {
	for name, lengths := range CanonicalLengths {
		found := false
		for _, s := range Structures {
			if s.Name != name {
				continue
			}
			found = true
			assert.True(t, s.Lengths(lengths),
				"%s rejects its canonical lengths %v", name, lengths)
		}
		assert.True(t, found, "no catalog entry named %s", name)
	}
}

func TestSearchStructureNoMatch(t *testing.T) {
	assert.Equal(t, -1, searchStructure("----", []int{7, 6, 7, 6}, ConsonantRhyme))
	assert.Equal(t, -1, searchStructure("", nil, AssonantRhyme))
}
