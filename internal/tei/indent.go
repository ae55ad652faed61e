package tei

import "strings"

// Indentation levels of the corpus layout, four spaces per step. Level 1 is
// a direct child of <TEI>.
const indentStep = "    "

var indents = func() [8]string {
	var out [8]string
	for i := range out {
		out[i] = strings.Repeat(indentStep, i)
	}
	return out
}()

func indent(level int) string {
	return indents[level]
}
