package classifier

import (
	"strconv"
	"strings"
	"unicode"

	"delegates/internal/models"
)

// ParseAge reads the leading integer of text: optional whitespace, an
// optional sign, then ASCII digits. Anything after the digits is ignored,
// so "45歲" is 45 and "4.5" is 4. It returns nil when there are no digits
// or the value does not fit in an int. No range check is applied.
func ParseAge(text models.AgeText) *int {
	s := strings.TrimLeftFunc(string(text), unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}

	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digits {
		return nil
	}

	age, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}

	return &age
}
