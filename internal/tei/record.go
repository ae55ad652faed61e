package tei

import (
	"strings"

	"corhoh/internal/metadata"
	"corhoh/internal/transcript"
)

// Rendered is one record's <text> fragment plus its turn tallies.
type Rendered struct {
	XML       string
	Questions int
	Answers   int
}

// RenderRecord renders rec and its turns as a <text> element. Every field of
// DetailFields and IndividualFields is emitted, empty when the row lacks it.
// The fragment has no trailing newline.
func RenderRecord(rec metadata.Record, turns []transcript.Turn) Rendered {
	var b strings.Builder
	b.Grow(1024 + 128*len(turns))

	line := func(level int, parts ...string) {
		b.WriteString(indent(level))
		for _, p := range parts {
			b.WriteString(p)
		}
		b.WriteByte('\n')
	}

	line(2, `<text id="`, EscapeAttr(rec.ID()), `">`)
	line(3, "<meta>")
	writeFieldGroup(line, "Oral_History_Details", DetailFields, rec)
	writeFieldGroup(line, "Individual_Meta_Data", IndividualFields, rec)
	line(3, "</meta>")
	line(3, "<text>")
	line(4, "<body>")
	line(5, `<div type="interview">`)
	line(6, "<head>Interview Transcript</head>")
	for _, turn := range turns {
		line(6, `<div type="`, turn.Kind.String(), `">`)
		line(7, `<speaker role="`, turn.Kind.Role(), `">`, EscapeText(turn.Label), "</speaker>")
		line(7, "<u>", EscapeText(turn.Text), "</u>")
		line(6, "</div>")
	}
	line(5, "</div>")
	line(4, "</body>")
	line(3, "</text>")
	b.WriteString(indent(2))
	b.WriteString("</text>")

	questions, answers := transcript.Count(turns)
	return Rendered{XML: b.String(), Questions: questions, Answers: answers}
}

func writeFieldGroup(line func(int, ...string), group string, fields []Field, rec metadata.Record) {
	line(4, "<", group, ">")
	for _, f := range fields {
		value := EscapeText(strings.TrimSpace(rec.Get(f.Column)))
		line(5, "<", f.Element, ">", value, "</", f.Element, ">")
	}
	line(4, "</", group, ">")
}
