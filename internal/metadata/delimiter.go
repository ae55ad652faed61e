package metadata

import "strings"

// candidateDelimiters are tried in priority order; ties go to the earlier one.
var candidateDelimiters = []rune{',', ';', '\t', '|', ':'}

const sniffLines = 20

// SniffDelimiter picks the field separator of a delimited text sample. A
// candidate qualifies when it occurs, outside double quotes, the same
// non-zero number of times on every sampled line; the qualifier with the
// highest per-line count wins. Without a qualifier the header line decides,
// and a sample with no candidate at all is treated as single-column CSV.
func SniffDelimiter(sample string) rune {
	lines := sampleLines(sample, sniffLines)
	if len(lines) == 0 {
		return ','
	}

	best := rune(0)
	bestCount := 0
	for _, delim := range candidateDelimiters {
		count, consistent := consistentCount(lines, delim)
		if !consistent || count == 0 {
			continue
		}
		if count > bestCount {
			best = delim
			bestCount = count
		}
	}
	if best != 0 {
		return best
	}

	best, bestCount = ',', 0
	for _, delim := range candidateDelimiters {
		if count := countOutsideQuotes(lines[0], delim); count > bestCount {
			best = delim
			bestCount = count
		}
	}
	return best
}

func sampleLines(sample string, limit int) []string {
	var lines []string
	for _, line := range strings.Split(sample, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == limit {
			break
		}
	}
	return lines
}

func consistentCount(lines []string, delim rune) (int, bool) {
	first := countOutsideQuotes(lines[0], delim)
	for _, line := range lines[1:] {
		if countOutsideQuotes(line, delim) != first {
			return 0, false
		}
	}
	return first, true
}

func countOutsideQuotes(line string, delim rune) int {
	inQuotes := false
	count := 0
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == delim && !inQuotes:
			count++
		}
	}
	return count
}
