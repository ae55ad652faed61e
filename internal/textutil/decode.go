package textutil

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const byteOrderMark = "\uFEFF"

// Decode converts raw bytes into text. Valid UTF-8 is decoded with any
// leading byte-order mark removed; anything else is decoded as Windows-1252
// with its undefined bytes replaced by U+FFFD.
func Decode(raw []byte) string {
	if utf8.Valid(raw) {
		out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), raw)
		if err == nil {
			return string(out)
		}
		return strings.TrimPrefix(string(raw), byteOrderMark)
	}
	return DecodeWindows1252(raw)
}

// windows1252Undefined lists the code points charmap passes through for the
// five bytes Windows-1252 leaves unassigned.
var windows1252Undefined = map[rune]struct{}{
	'\u0081': {},
	'\u008D': {},
	'\u008F': {},
	'\u0090': {},
	'\u009D': {},
}

// DecodeWindows1252 decodes raw as Windows-1252 regardless of content.
func DecodeWindows1252(raw []byte) string {
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
	}
	return strings.Map(func(r rune) rune {
		if _, undefined := windows1252Undefined[r]; undefined {
			return utf8.RuneError
		}
		return r
	}, string(out))
}
