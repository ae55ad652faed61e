package transcript

import (
	"sort"
	"strings"
)

// Replacement is one literal substring substitution of the repair table.
type Replacement struct {
	Find    string
	Replace string
}

// legacyArtifacts are mis-encodings found in transcripts that went through a
// Mac Roman / Windows-1252 round trip. Order here is irrelevant; see
// RepairTable.
var legacyArtifacts = []Replacement{
	{"Õ", "'"},
	{"Ô", "'"},
	{"Ò", `"`},
	{"Ó", `"`},
	{"Ñ", "—"},
	{"‹", "ã"},
	{"√ït", "'t"},
	{"√ïs", "'s"},
	{"√ïll", "'ll"},
	{"√ï", "'"},
}

var repairTable = orderLongestFirst(legacyArtifacts)

// RepairTable returns the repair rules in application order: longest key
// first, ties kept in declaration order.
func RepairTable() []Replacement {
	out := make([]Replacement, len(repairTable))
	copy(out, repairTable)
	return out
}

// Repair applies every rule of the repair table once, in RepairTable order.
func Repair(text string) string {
	return ApplyReplacements(text, repairTable)
}

// ApplyReplacements applies each rule as a plain substring substitution in
// the given order.
func ApplyReplacements(text string, rules []Replacement) string {
	for _, rule := range rules {
		if rule.Find == "" {
			continue
		}
		if strings.Contains(text, rule.Find) {
			text = strings.ReplaceAll(text, rule.Find, rule.Replace)
		}
	}
	return text
}

func orderLongestFirst(rules []Replacement) []Replacement {
	ordered := make([]Replacement, len(rules))
	copy(ordered, rules)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len([]rune(ordered[i].Find)) > len([]rune(ordered[j].Find))
	})
	return ordered
}
