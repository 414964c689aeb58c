// Package escape reverses the @@-token encoding used for file paths handed
// to the launcher through host variables, where characters that are awkward
// to pass literally are written as @@ followed by their hex code point.
package escape

import (
	"regexp"
	"strconv"
	"strings"
)

// token matches the @@ marker followed by 1-4 hex digits. Anything that does
// not match this exact shape is ordinary text.
var token = regexp.MustCompile(`@@([0-9a-fA-F]{1,4})`)

// Decode replaces every @@hhhh token in s with the single character whose
// code point is the parsed hex value. Example: "a@@20-b" -> "a -b". Digits
// are consumed greedily up to four, so a hex character directly after a
// token joins it. Malformed tokens (marker not followed by hex digits) are
// left as literal text. If the marker never occurs, s is returned unchanged
// without scanning.
func Decode(s string) string {
	if !strings.Contains(s, "@@") {
		return s
	}

	var ret strings.Builder
	ret.Grow(len(s))
	start := 0

	for _, m := range token.FindAllStringSubmatchIndex(s, -1) {
		code, err := strconv.ParseUint(s[m[2]:m[3]], 16, 16)
		if err != nil { // unreachable, the pattern only admits 1-4 hex digits
			continue
		}
		ret.WriteString(s[start:m[0]])
		ret.WriteRune(rune(code))
		start = m[1]
	}

	ret.WriteString(s[start:])
	return ret.String()
}
