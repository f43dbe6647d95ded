// Package escandir provides metrical analysis of Spanish verse:
// syllabification, stress assignment, synalepha and sinaeresis
// grouping, rhythmical stress patterns, and rhyme and stanza-structure
// detection against a catalog of traditional Spanish forms.
//
// The entry points are Syllabify for single words, ScanLine for one
// verse, and ScanPoem / ScanText for whole poems. Token streams may
// come from the built-in Tokenize fallback or from an external
// part-of-speech tagger; tagger output refines the stress of
// monosyllabic function words.
package escandir
