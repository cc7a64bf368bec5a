package companyparser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	horizontalWS = regexp.MustCompile(`[^\S\r\n]+`)
	doubleSpace  = regexp.MustCompile(` {2,}`)

	deburrer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalize cleans common OCR artifacts: non-breaking spaces, runs of
// horizontal whitespace (newlines are preserved), stray pipe characters
// left over from table rulings, and leading/trailing whitespace.
// Normalizing already-normalized text is a no-op.
func Normalize(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = horizontalWS.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, "|", " ")
	s = doubleSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Deburr strips diacritical marks ("émission" -> "emission") for
// accent-insensitive keyword matching. It is never applied to values
// returned to the caller.
func Deburr(s string) string {
	out, _, err := transform.String(deburrer, s)
	if err != nil {
		return s
	}
	return out
}

// splitLines breaks normalized text into non-empty normalized lines.
func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = Normalize(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
