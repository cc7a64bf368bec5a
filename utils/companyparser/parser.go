// Package companyparser extracts structured identity fields (company
// name, registration number, address, issue dates) from noisy OCR text
// of company registration documents. Extraction is purely rule-based:
// labeled-hint lines first, heuristic fallbacks second, with a [0,1]
// confidence score per field. No extractor ever fails; a field that
// cannot be found is reported absent with a low score.
package companyparser

import (
	"regexp"

	"github.com/ykribii/ocr-company-verification/dto"
)

// fieldResult is the outcome of a single string-field extractor.
type fieldResult struct {
	value string
	score float64
	note  string
}

// Parser runs the four field extractors against one configuration.
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	cfg Config
}

func New(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

var defaultParser = New(Default())

// ParseCompanyDoc parses with the default French/English configuration.
func ParseCompanyDoc(ocrText string) dto.ParsedVerification {
	return defaultParser.Parse(ocrText)
}

// Parse normalizes the OCR text once, runs the four extractors
// independently and aggregates their results. It never returns an
// error: extraction failures degrade to absent values with low
// confidence scores.
func (p *Parser) Parse(ocrText string) dto.ParsedVerification {
	text := Normalize(ocrText)
	lines := splitLines(text)

	name := p.extractCompanyName(lines)
	reg := p.extractRegistration(text)
	addr := p.extractAddress(lines)
	dates := p.extractDates(text, lines)

	result := dto.ParsedVerification{
		CompanyName:        name.value,
		RegistrationNumber: reg.number,
		Address:            addr.value,
		IssueDates:         dates.values,
		Meta: dto.ParseMeta{
			Confidence: dto.FieldConfidence{
				CompanyName:        name.score,
				RegistrationNumber: reg.score,
				Address:            addr.score,
				IssueDates:         dates.score,
			},
		},
	}

	if name.value != "" && name.note != "" {
		result.Meta.Notes = append(result.Meta.Notes, "company_name:"+name.note)
	}

	return result
}

func matchAny(patterns []*regexp.Regexp, s string) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
