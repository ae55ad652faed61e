package transcript

import (
	"fmt"
	"os"

	"corhoh/internal/textutil"
)

// ReadFile loads a transcript and returns its normalized text. A missing file
// yields an error matching fs.ErrNotExist so callers can treat it as a
// warning.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read transcript: %w", err)
	}
	return Normalize(raw), nil
}

// Normalize decodes raw transcript bytes and repairs legacy artifacts.
func Normalize(raw []byte) string {
	return Repair(textutil.Decode(raw))
}
