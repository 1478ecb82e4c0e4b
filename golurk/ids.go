package golurk

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var idReplacer = strings.NewReplacer(" ", "-", "_", "-", "'", "", ".", "")

// NormalizeID turns a display name ("Thunder Punch", "thunder_punch") into the kebab-case id the data tables use.
// Casers aren't safe to share between goroutines so a new one is made every call.
func NormalizeID(name string) string {
	lower := cases.Lower(language.English).String(strings.TrimSpace(name))
	return idReplacer.Replace(lower)
}

// NormalizeTypeName turns "fire" or "FIRE" into "Fire"
func NormalizeTypeName(name string) string {
	return cases.Title(language.English).String(strings.TrimSpace(name))
}
