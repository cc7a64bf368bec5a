package companyparser

import (
	"regexp"

	"github.com/ykribii/ocr-company-verification/dto"
)

var valueSanitizer = regexp.MustCompile(`[^A-Za-z0-9/\-]`)

type registrationResult struct {
	number *dto.RegistrationNumber
	score  float64
}

// extractRegistration runs the typed identifier cascade over the full
// text. Patterns are ordered most to least specific (ICE first, a
// 15-digit national identifier, down to generic company numbers); the
// first one that matches anywhere wins and the rest are never tried.
func (p *Parser) extractRegistration(text string) registrationResult {
	for _, pat := range p.cfg.RegistrationPatterns {
		m := pat.Re.FindStringSubmatch(text)
		if m == nil || m[1] == "" {
			continue
		}
		value := valueSanitizer.ReplaceAllString(Normalize(m[1]), "")
		if value == "" {
			continue
		}
		score := 0.6 + 0.4*pat.Weight
		if score > 0.99 {
			score = 0.99
		}
		return registrationResult{
			number: &dto.RegistrationNumber{Type: pat.Type, Value: value},
			score:  score,
		}
	}
	return registrationResult{score: 0.1}
}
