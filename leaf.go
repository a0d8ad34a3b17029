package pprint

import (
	"strconv"
	"strings"
)

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r", `\r`,
	"\n", `\n`,
)

// Quote wraps s in double quotes, escaping backslash, double quote, carriage
// return and newline. No other characters are escaped.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}

// repr renders a leaf value. ok is false for non-leaf values.
func repr(v Value) (s string, ok bool) {
	switch v := v.(type) {
	case nil, Null:
		return "null", true
	case Bool:
		if v {
			return "True", true
		}
		return "False", true
	case Int:
		return strconv.FormatInt(int64(v), 10), true
	case Uint:
		return strconv.FormatUint(uint64(v), 10), true
	case Float:
		s := strconv.FormatFloat(float64(v), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEIN") {
			s += ".0"
		}
		return s, true
	case Char:
		return string(rune(v)), true
	case String:
		return Quote(string(v)), true
	default:
		return "", false
	}
}
