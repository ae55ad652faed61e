package metadata

// missingTokens are the cell values that read as an empty cell. The set is
// matched against the whole, untrimmed cell, so " NA" and "na" are kept as
// written.
var missingTokens = map[string]struct{}{
	"":         {},
	"#N/A":     {},
	"#N/A N/A": {},
	"#NA":      {},
	"-1.#IND":  {},
	"-1.#QNAN": {},
	"-NaN":     {},
	"-nan":     {},
	"1.#IND":   {},
	"1.#QNAN":  {},
	"<NA>":     {},
	"N/A":      {},
	"NA":       {},
	"NULL":     {},
	"NaN":      {},
	"None":     {},
	"n/a":      {},
	"nan":      {},
	"null":     {},
}

// cellValue maps a raw cell to the value a record stores.
func cellValue(raw string) string {
	if _, ok := missingTokens[raw]; ok {
		return ""
	}
	return raw
}
