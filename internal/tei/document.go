package tei

import "strings"

const (
	xmlDeclaration = `<?xml version="1.0" encoding="UTF-8"?>`
	// Namespace is the TEI P5 namespace of the root element.
	Namespace = "http://www.tei-c.org/ns/1.0"
)

// Document assembles the complete corpus: declaration, <TEI> root, header,
// and the <CORHOH> wrapper holding the record fragments in the given order.
func Document(records []string, totalQuestions, totalAnswers int) string {
	var b strings.Builder
	size := 4096
	for _, r := range records {
		size += len(r) + 1
	}
	b.Grow(size)

	b.WriteString(xmlDeclaration)
	b.WriteByte('\n')
	b.WriteString(`<TEI xmlns="` + Namespace + `">`)
	b.WriteByte('\n')
	b.WriteString(Header(totalQuestions, totalAnswers))
	b.WriteByte('\n')
	b.WriteString(indent(1))
	b.WriteString("<CORHOH>\n")
	b.WriteString(strings.Join(records, "\n"))
	b.WriteByte('\n')
	b.WriteString(indent(1))
	b.WriteString("</CORHOH>\n")
	b.WriteString("</TEI>\n")
	return b.String()
}
