package pprint

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// indentLines prefixes every line after the first with indent, and the first
// one too when includeFirst is set. With rails enabled, blocks longer than two
// lines mark every line but the last with "|" after the indent.
func indentLines(s, indent string, includeFirst, rails bool) string {
	lines := strings.Split(s, "\n")
	var sb strings.Builder
	if includeFirst {
		sb.WriteString(indent)
	}
	if !rails || len(lines) <= 2 {
		sb.WriteString(strings.Join(lines, "\n"+indent))
		return sb.String()
	}
	last := len(lines) - 1
	sb.WriteString(strings.Join(lines[:last], "\n"+indent+"|"))
	sb.WriteString("\n")
	sb.WriteString(indent)
	sb.WriteString(lines[last])
	return sb.String()
}

// widthCond ignores the locale so output does not depend on the environment.
var widthCond = &runewidth.Condition{StrictEmojiNeutral: true}

// textWidth measures s in display columns, counting each newline as one.
func textWidth(s string) int {
	return widthCond.StringWidth(s) + strings.Count(s, "\n")
}

// stddev returns the population standard deviation of xs.
func stddev(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))
	var sq float64
	for _, x := range xs {
		sq += (x - mean) * (x - mean)
	}
	return math.Sqrt(sq / float64(len(xs)))
}
