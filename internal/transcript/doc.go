// Package transcript loads interview transcripts and segments them into
// interviewer/interviewee turns.
//
// Transcripts are plain text where each turn starts on a line prefixed with
// "Q<n>:" (interviewer) or "A<n>:" (interviewee); following lines continue the
// open turn. Reading decodes UTF-8 (tolerating a byte-order mark) or falls
// back to Windows-1252, then repairs a fixed set of legacy mis-encodings.
// Parsing is pure and does no I/O so it can be exercised in isolation.
package transcript
