// Package tei renders the CORHOH corpus as TEI XML text.
//
// Output is assembled as text rather than through encoding/xml so the layout
// (indentation, element order, empty elements for missing fields) is fixed
// and byte-for-byte reproducible across runs. Every inserted value passes
// through EscapeText or EscapeAttr.
package tei
