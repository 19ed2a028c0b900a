package value

import (
	"regexp"
	"strconv"
	"strings"
)

// numericLiteral matches a whole-string integer or decimal literal with an
// optional sign. Partial prefixes ("234foo") deliberately do not match.
var numericLiteral = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// Coerce classifies raw literal text into its most specific scalar type.
//
// Precedence, first match wins:
//  1. The text, trimmed of surrounding whitespace, matches the numeric
//     grammar → Number ("  234" → 234, "+1" → 1).
//  2. The trimmed text is exactly "null", "true", or "false"
//     (case-sensitive) → Null / Bool.
//  3. Anything else → the original untrimmed text as String. This keeps
//     "" and " " verbatim, and keeps quote characters intact: Coerce does
//     not unquote string literals.
//
// Coerce is total: every input maps to exactly one Value, no errors.
func Coerce(text string) Value {
	trimmed := strings.TrimSpace(text)

	if numericLiteral.MatchString(trimmed) {
		if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return Number(n)
		}
	}

	switch trimmed {
	case "null":
		return Null{}
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	return String(text)
}
