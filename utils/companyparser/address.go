package companyparser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	smallNumber  = regexp.MustCompile(`\b\d{1,5}\b`)
	postalNumber = regexp.MustCompile(`\b\d{4,6}\b`)
)

// extractAddress finds a labeled address line and greedily absorbs up
// to three continuation lines, stopping at the first line that no
// longer reads like an address. Without a label it scans every line
// and keeps the best-scoring contiguous address block in the document.
func (p *Parser) extractAddress(lines []string) fieldResult {
	for i, line := range lines {
		if !matchAny(p.cfg.AddressHints, line) {
			continue
		}
		collected := []string{p.cfg.AddressLabelPrefix.ReplaceAllString(line, "")}
		for j := i + 1; j < len(lines) && j <= i+3; j++ {
			if !p.looksLikeAddress(lines[j]) {
				break
			}
			collected = append(collected, lines[j])
		}
		kept := collected[:0]
		for _, s := range collected {
			if utf8.RuneCountInString(s) > 3 {
				kept = append(kept, s)
			}
		}
		joined := Normalize(strings.Join(kept, ", "))
		if utf8.RuneCountInString(joined) > 8 {
			return fieldResult{value: joined, score: 0.85, note: "from_hint"}
		}
	}

	best := fieldResult{score: 0.1}
	for i, line := range lines {
		if !p.looksLikeAddress(line) {
			continue
		}
		collected := []string{line}
		for j := i + 1; j < len(lines) && j <= i+3; j++ {
			if !p.looksLikeAddress(lines[j]) {
				break
			}
			collected = append(collected, lines[j])
		}
		joined := Normalize(strings.Join(collected, ", "))
		if sc := p.scoreAddress(joined); sc > best.score {
			best = fieldResult{value: joined, score: sc}
		}
	}
	return best
}

// looksLikeAddress reports whether a line reads like part of a postal
// address: a street-type token, or a house-number-sized digit group
// together with either a known city/country token or a postal code.
func (p *Parser) looksLikeAddress(s string) bool {
	deb := Deburr(strings.ToLower(s))
	hasStreet := p.cfg.StreetTokens.MatchString(deb)
	if hasStreet {
		return true
	}
	if !smallNumber.MatchString(deb) {
		return false
	}
	return p.cfg.CityTokens.MatchString(deb) || postalNumber.MatchString(deb)
}

func (p *Parser) scoreAddress(s string) float64 {
	sc := 0.5
	if postalNumber.MatchString(s) {
		sc += 0.15
	}
	if strings.Contains(s, ",") {
		sc += 0.1
	}
	if p.cfg.CityTokens.MatchString(Deburr(s)) {
		sc += 0.1
	}
	if sc > 0.95 {
		sc = 0.95
	}
	return sc
}
