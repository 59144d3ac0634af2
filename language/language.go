// Package language renders numbers, ordinals and English lists for card
// displays and report text.
package language

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// CardNumber converts a card number into its display name. Both 1 and 14
// name the ace, so callers can pass raw numbers or points values.
func CardNumber(number int, plural bool) string {
	var name string
	switch number {
	case 1, 14:
		name = "Ace"
	case 11:
		name = "Jack"
	case 12:
		name = "Queen"
	case 13:
		name = "King"
	default:
		name = strconv.Itoa(number)
	}
	if plural {
		name += "s"
	}
	return name
}

// Ordinal returns the suffixed ordinal of n, e.g. "1st".
func Ordinal(n int) string {
	return humanize.Ordinal(n)
}

var ordinalWords = map[int]string{
	1:  "first",
	2:  "second",
	3:  "third",
	4:  "fourth",
	5:  "fifth",
	6:  "sixth",
	7:  "seventh",
	8:  "eighth",
	9:  "ninth",
	10: "tenth",
	11: "eleventh",
	12: "twelfth",
	13: "thirteenth",
	14: "fourteenth",
	15: "fifteenth",
	16: "sixteenth",
	17: "seventeenth",
	18: "eighteenth",
	19: "nineteenth",
	20: "twentieth",
}

// OrdinalWord spells out the ordinal of n, e.g. "first". Numbers beyond
// the word table fall back to the suffixed form.
func OrdinalWord(n int) string {
	if word, ok := ordinalWords[n]; ok {
		return word
	}
	return humanize.Ordinal(n)
}

// Join joins the items into an English list with an Oxford comma:
// "a", "a and b", "a, b, and c".
func Join(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
