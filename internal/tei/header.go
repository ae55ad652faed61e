package tei

import (
	"fmt"
	"strings"
)

// Header renders the <teiHeader> block. The bibliographic content is fixed;
// the totals appear in the abstract and in the latest revision note.
func Header(totalQuestions, totalAnswers int) string {
	abstract := fmt.Sprintf(abstractTemplate, totalQuestions, totalAnswers)
	revision := fmt.Sprintf(revisionTemplate, totalQuestions, totalAnswers)

	var b strings.Builder
	line := func(level int, parts ...string) {
		b.WriteString(indent(level))
		for _, p := range parts {
			b.WriteString(p)
		}
		b.WriteByte('\n')
	}

	line(1, "<teiHeader>")
	line(2, "<fileDesc>")
	line(3, "<titleStmt>")
	line(4, "<title>CORHOH: Text Corpus of Holocaust Oral Histories</title>")
	line(4, "<respStmt>")
	line(5, "<resp>Mendeley Repository: https://data.mendeley.com/datasets/gz7v268252/2</resp>")
	line(4, "</respStmt>")
	line(3, "</titleStmt>")
	line(3, "<publicationStmt>")
	line(4, "<publisher>Data in Brief: https://www.sciencedirect.com/science/article/pii/S2352340925001581</publisher>")
	line(4, "<date>2025</date>")
	line(4, "<availability>")
	line(5, "<licence>", licence, "</licence>")
	line(4, "</availability>")
	line(3, "</publicationStmt>")
	line(3, "<sourceDesc>")
	line(4, "<bibl>")
	line(5, "<title>CORHOH</title>")
	line(5, "<author>Daban Q. Jaff</author>")
	line(5, "<pubPlace>Universität Erfurt, Philosophische Fakultät</pubPlace>")
	line(5, "<date>2025</date>")
	line(4, "</bibl>")
	line(4, "<p>Data collected from oral history interviews from Let Them Speak: https://lts.fortunoff.library.yale.edu/about</p>")
	line(3, "</sourceDesc>")
	line(2, "</fileDesc>")
	line(2, "<profileDesc>")
	line(3, "<abstract>", EscapeText(abstract), "</abstract>")
	line(2, "</profileDesc>")
	line(2, "<revisionDesc>")
	line(3, `<change when="2025-02-01">Initial TEI encoding applied.</change>`)
	line(3, `<change when="2026-01-19">`, revision, "</change>")
	line(2, "</revisionDesc>")
	line(1, "</teiHeader>")
	return b.String()
}

const licence = "All data used in this study comply with ethical guidelines of the United States Holocaust Memorial Museum " +
	"(https://www.ushmm.org/copyright-and-legal-information/terms-of-use), and the oral histories included in the " +
	"CORHOH corpus are publicly available under the CC BY-NC-SA 4.0 license."

const abstractTemplate = "CORHOH (Text Corpus of Holocaust Oral Histories) comprises 500 oral histories " +
	"from Holocaust survivors, with each narrative retrieved via the Let Them Speak " +
	"Project (Toth 2021). The corpus has been processed and enriched with metadata " +
	"describing both the testimony givers and the interviews. Non-content technical " +
	"material has been removed, and each interviewer question and survivor answer " +
	"has been assigned a unique identifier. The corpus follows TEI guidelines " +
	"(TEI Consortium 2023). In this version, the dataset contains " +
	"%d questions and %d answers, providing a substantial " +
	"interdisciplinary resource for research in the humanities and social sciences. " +
	"CORHOH is sourced from the United States Holocaust Memorial Museum (USHMM) " +
	"and is publicly available under a CC BY-NC-SA 4.0 license."

const revisionTemplate = "Modified release: corrected a duplicate inclusion; this version contains one oral history " +
	"per survivor across the 500 records. Counts updated to %d questions and %d answers."
