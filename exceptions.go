package escandir

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// foreignWords maps loanwords and other irregular words to their
// segmentation. The rule engine is skipped for these; the value is the
// hyphenated form. Verbs in -uir keep the traditional hiatus.
var foreignWords = map[string]string{
	"airbag":    "air-bag",
	"beige":     "bei-ge",
	"destituir": "des-ti-tu-ir",
	"gay":       "gay",
	"hardware":  "hard-ware",
	"iceberg":   "i-ce-berg",
	"instituir": "ins-ti-tu-ir",
	"jazz":      "jazz",
	"pizza":     "piz-za",
	"restituir": "res-ti-tu-ir",
	"rock":      "rock",
	"sandwich":  "sand-wich",
	"software":  "soft-ware",
	"sustituir": "sus-ti-tu-ir",
	"web":       "web",
	"whisky":    "whis-ky",
}

// alternativeSyllabification records admissible poetic variants, keyed by
// the surface form. Values are hyphenated strings; the canonical
// segmentation still comes from the rules or foreignWords.
var alternativeSyllabification = map[string][]string{
	"cruel":    {"cru-el"},
	"crueles":  {"cru-e-les"},
	"fiel":     {"fi-el"},
	"fieles":   {"fi-e-les"},
	"período":  {"pe-rio-do"},
	"períodos": {"pe-rio-dos"},
	"ruido":    {"ru-i-do"},
	"ruidos":   {"ru-i-dos"},
	"suave":    {"su-a-ve"},
	"suaves":   {"su-a-ves"},
}

// LoadExceptions merges extra segmentations from a file into the
// exception dictionary. Each line is "word:hy-phen-at-ed"; lines starting
// with '!' are comments. Alternatives may follow the canonical form,
// separated by commas. Not safe to call concurrently with analysis.
func LoadExceptions(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("exceptions: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		word, forms, ok := strings.Cut(line, ":")
		if !ok {
			return fmt.Errorf("exceptions: %s:%d: missing ':'", path, n)
		}
		word = strings.TrimSpace(word)
		parts := strings.Split(forms, ",")
		canonical := strings.TrimSpace(parts[0])
		if word == "" || canonical == "" {
			return fmt.Errorf("exceptions: %s:%d: empty entry", path, n)
		}
		if strings.Join(strings.Split(canonical, "-"), "") != word {
			return fmt.Errorf("exceptions: %s:%d: segmentation %q does not spell %q", path, n, canonical, word)
		}
		foreignWords[word] = canonical
		for _, alt := range parts[1:] {
			alt = strings.TrimSpace(alt)
			if alt != "" {
				alternativeSyllabification[word] = append(alternativeSyllabification[word], alt)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("exceptions: %w", err)
	}
	return nil
}
