package lang

import (
	"strconv"
	"strings"
)

// unitOrdinals maps the ordinal words "first" through "twentieth" to their
// integer values.
var unitOrdinals = map[string]int{
	"first":       1,
	"second":      2,
	"third":       3,
	"fourth":      4,
	"fifth":       5,
	"sixth":       6,
	"seventh":     7,
	"eighth":      8,
	"ninth":       9,
	"tenth":       10,
	"eleventh":    11,
	"twelfth":     12,
	"thirteenth":  13,
	"fourteenth":  14,
	"fifteenth":   15,
	"sixteenth":   16,
	"seventeenth": 17,
	"eighteenth":  18,
	"nineteenth":  19,
	"twentieth":   20,
}

// tensCardinals are the leading words of hyphenated compound ordinals.
var tensCardinals = map[string]int{
	"twenty":  20,
	"thirty":  30,
	"forty":   40,
	"fifty":   50,
	"sixty":   60,
	"seventy": 70,
	"eighty":  80,
	"ninety":  90,
}

// tensOrdinals are the tens-only ordinal words. "twentieth" also appears in
// unitOrdinals; both agree on its value.
var tensOrdinals = map[string]int{
	"twentieth":  20,
	"thirtieth":  30,
	"fortieth":   40,
	"fiftieth":   50,
	"sixtieth":   60,
	"seventieth": 70,
	"eightieth":  80,
	"ninetieth":  90,
}

// ordinalSuffixes are the two-letter suffixes of digit ordinals.
var ordinalSuffixes = []string{"st", "nd", "rd", "th"}

// decodeOrdinal converts English ordinal text to its integer value.
//
// Recognized forms are digit-suffix ordinals ("1st", "22nd"), the words
// "first" through "twentieth", hyphenated compounds of a tens word and a units
// ordinal ("twenty-first", "forty-fifth"), and the tens-only ordinals
// "twentieth" through "ninetieth". The word "last" is not a number and is
// handled by the caller. "0th" decodes to zero, which selects no day, month,
// or week and fails later as an invalid date. Values that do not fit in 32
// bits are not ordinals.
func decodeOrdinal(text string) (int, bool) {
	text = strings.ToLower(strings.TrimSpace(text))

	for _, suffix := range ordinalSuffixes {
		digits, ok := strings.CutSuffix(text, suffix)
		if !ok || digits == "" || !isDigits(digits) {
			continue
		}

		n, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return 0, false
		}

		return int(n), true
	}

	if n, ok := unitOrdinals[text]; ok {
		return n, true
	}

	if n, ok := tensOrdinals[text]; ok {
		return n, true
	}

	tens, units, ok := strings.Cut(text, "-")
	if !ok {
		return 0, false
	}

	t, ok := tensCardinals[tens]
	if !ok {
		return 0, false
	}

	u, ok := unitOrdinals[units]
	if !ok || u > 9 {
		return 0, false
	}

	return t + u, true
}

// isOrdinalWord reports whether every hyphen-separated part of word belongs
// to the ordinal vocabulary and the final part is itself an ordinal. Such
// words are ordinal-shaped for the grammar even when decodeOrdinal would
// reject the combination (for example "first-second").
func isOrdinalWord(word string) bool {
	parts := strings.Split(word, "-")

	for i, part := range parts {
		_, unit := unitOrdinals[part]
		_, tens := tensOrdinals[part]
		_, card := tensCardinals[part]

		switch {
		case i == len(parts)-1 && !unit && !tens:
			return false

		case !unit && !tens && !card:
			return false
		}
	}

	return true
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}
