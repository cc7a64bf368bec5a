package companyparser

import (
	"regexp"
	"strings"
	"time"
)

const isoMillis = "2006-01-02T15:04:05.000Z"

var weekdayPrefix = regexp.MustCompile(`^[a-zA-Z]{3}\.\s*`)

type datesResult struct {
	values []string
	score  float64
}

// extractDates harvests date-shaped substrings, preferring lines that
// carry an issuance/creation/registration keyword. Only when no such
// line yields a date does it fall back to a whole-text scan, capped at
// three accepted dates. Candidates that survive no parse strategy are
// dropped silently. De-duplication is by normalized ISO value, so the
// same date written in two styles counts once.
func (p *Parser) extractDates(text string, lines []string) datesResult {
	values := []string{}
	seen := make(map[string]bool)

	hasContext := false
	for _, line := range lines {
		if !matchAny(p.cfg.DateContext, line) {
			continue
		}
		hasContext = true
		m := p.cfg.DateCandidate.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if d, ok := p.normalizeDate(m[1]); ok && !seen[d] {
			values = append(values, d)
			seen[d] = true
		}
	}

	if len(values) == 0 {
		for _, m := range p.cfg.DateCandidate.FindAllStringSubmatch(text, -1) {
			if d, ok := p.normalizeDate(m[1]); ok && !seen[d] {
				values = append(values, d)
				seen[d] = true
				if len(values) >= 3 {
					break
				}
			}
		}
	}

	score := 0.1
	if len(values) > 0 {
		// Context keyword anywhere in the document raises trust even
		// when the dates themselves came from the global scan.
		if hasContext {
			score = 0.85
		} else {
			score = 0.7
		}
	}
	return datesResult{values: values, score: score}
}

// normalizeDate turns one raw date-shaped substring into an ISO-8601
// instant. An abbreviated weekday prefix ("lun. ", "mar. ") is dropped,
// French month names are mapped to their English equivalents (the time
// package only knows English), then the explicit layouts are tried in
// order before a looser layout set. Failure returns ok=false; the
// candidate is simply discarded.
func (p *Parser) normalizeDate(raw string) (string, bool) {
	clean := Normalize(strings.ToLower(raw))
	clean = weekdayPrefix.ReplaceAllString(clean, "")
	clean = p.translateMonths(clean)

	for _, layout := range p.cfg.DateLayouts {
		if t, err := time.ParseInLocation(layout, clean, time.UTC); err == nil {
			return t.UTC().Format(isoMillis), true
		}
	}
	for _, layout := range p.cfg.LooseDateLayouts {
		if t, err := time.ParseInLocation(layout, clean, time.UTC); err == nil {
			return t.UTC().Format(isoMillis), true
		}
	}
	return "", false
}

// translateMonths rewrites any month-name token (French or English,
// full or abbreviated, with or without a trailing period) to the full
// English month name.
func (p *Parser) translateMonths(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		key := Deburr(strings.TrimSuffix(w, "."))
		if month, ok := p.cfg.MonthNames[key]; ok {
			words[i] = month
		}
	}
	return strings.Join(words, " ")
}
