package analysis

import (
	"fmt"
	"strings"
)

// IshikawaInput holds the five fixed cause categories of an Ishikawa (5M)
// analysis. Blank categories are allowed.
type IshikawaInput struct {
	Main     string `json:"main"`
	Milieu   string `json:"milieu"`
	Methode  string `json:"methode"`
	Materiel string `json:"materiel"`
	Matiere  string `json:"matiere"`
}

// NormalizeFiveWhys joins non-blank steps as "Pourquoi {i}: {text}" lines.
// Numbering is the 1-based position in the original step list, so a blank
// step leaves a gap rather than renumbering the ones after it.
// Returns "" when every step is blank.
func NormalizeFiveWhys(steps []string) string {
	var lines []string
	for i, step := range steps {
		if strings.TrimSpace(step) == "" {
			continue
		}
		lines = append(lines, fmt.Sprintf("Pourquoi %d: %s", i+1, step))
	}
	return strings.Join(lines, "\n")
}

// NormalizeIshikawa renders the fixed 5-line category block, one line per
// category in the fixed 5M order. Blank categories keep their line.
func NormalizeIshikawa(in IshikawaInput) string {
	lines := []string{
		"Main-d'œuvre: " + in.Main,
		"Milieu: " + in.Milieu,
		"Méthode: " + in.Methode,
		"Matériel: " + in.Materiel,
		"Matière: " + in.Matiere,
	}
	return strings.Join(lines, "\n")
}
