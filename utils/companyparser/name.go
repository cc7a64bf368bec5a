package companyparser

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	colonSplit      = regexp.MustCompile(`[:：]`)
	idTokenCut      = regexp.MustCompile(`(?i)\b(RC|ICE|IF|PATENTE|TVA|VAT)\b`)
	leadingDash     = regexp.MustCompile(`^[-–—]\s*`)
	nameWhitelist   = regexp.MustCompile(`[^\p{L}\p{N}_\s&'’.\-]`)
	numberedSection = regexp.MustCompile(`^\d+[|)]`)
	etWord          = regexp.MustCompile(`(?i)\bet\b`)
)

// extractCompanyName finds the entity name. Labeled hint lines win
// ("Raison sociale: ..."); when the label line carries no usable text
// after the colon, the following line is taken instead (structured
// documents put the value under the label). With no hint anywhere, the
// most title-looking line among the first ten is used.
func (p *Parser) extractCompanyName(lines []string) fieldResult {
	for i, line := range lines {
		if !matchAny(p.cfg.CompanyHints, line) {
			continue
		}

		after := ""
		if parts := colonSplit.Split(line, 2); len(parts) > 1 {
			after = parts[1]
		}
		candidate := Normalize(after)
		candidate = idTokenCut.Split(candidate, 2)[0]
		candidate = leadingDash.ReplaceAllString(candidate, "")
		candidate = nameWhitelist.ReplaceAllString(candidate, "")
		candidate = strings.TrimSpace(candidate)
		if utf8.RuneCountInString(candidate) >= 3 {
			return fieldResult{value: candidate, score: 0.95, note: "from_hint"}
		}

		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			n := utf8.RuneCountInString(next)
			if n >= 3 && n < 100 && !numberedSection.MatchString(next) {
				return fieldResult{value: next, score: 0.93, note: "from_hint_next_line"}
			}
		}
	}

	// No label anywhere: among the first ten lines keep those that look
	// like a document title and take the best-scoring one.
	var titleish []string
	for i := 0; i < len(lines) && i < 10; i++ {
		l := lines[i]
		words := strings.Fields(l)
		if strings.ContainsAny(l, "0123456789") || len(words) < 2 || len(words) > 8 {
			continue
		}
		hasLongWord := false
		for _, w := range words {
			if utf8.RuneCountInString(w) >= 3 {
				hasLongWord = true
				break
			}
		}
		if hasLongWord {
			titleish = append(titleish, l)
		}
	}
	if len(titleish) > 0 {
		sort.SliceStable(titleish, func(a, b int) bool {
			return scoreTitleLike(titleish[a]) > scoreTitleLike(titleish[b])
		})
		return fieldResult{value: titleish[0], score: 0.75, note: "title_like"}
	}

	return fieldResult{score: 0.1}
}

// scoreTitleLike favors lines that read like a company letterhead:
// mostly uppercase, a conjunction ("&" / "et"), and reasonable length.
func scoreTitleLike(s string) float64 {
	var upper, letters int
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	score := 0.0
	if letters > 0 && float64(upper)/float64(letters) > 0.6 {
		score += 0.2
	}
	if strings.Contains(s, "&") || etWord.MatchString(s) {
		score += 0.1
	}
	length := float64(utf8.RuneCountInString(s)) / 60
	if length > 0.7 {
		length = 0.7
	}
	return score + length
}
