package hardware

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of s used for every name comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether substr is within s, ignoring case.
func ContainsFold(s, substr string) (found bool) {
	found = strings.Contains(Fold(s), Fold(substr))
	return found
}

// Bonus is one entry of an ordered name-pattern bonus table.
type Bonus struct {
	Pattern    string
	Multiplier float32
}

// FirstBonus walks the table top to bottom and returns the multiplier of the
// first pattern contained in name. Returns fallback when nothing matches.
func FirstBonus(name string, table []Bonus, fallback float32) (multiplier float32) {
	multiplier = fallback
	for _, b := range table {
		if ContainsFold(name, b.Pattern) {
			multiplier = b.Multiplier
			return multiplier
		}
	}
	return multiplier
}
