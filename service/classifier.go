package service

import (
	"regexp"

	"github.com/ykribii/ocr-company-verification/dto"
)

// Signals that a document is a CV rather than a company document.
var cvHints = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(comp[ée]tence|skills?)\b`),
	regexp.MustCompile(`(?i)\b(formation|education|dipl[oô]me|degree)\b`),
	regexp.MustCompile(`(?i)\b(exp[ée]riences?|work\s+experience|employment|projects?)\b`),
	regexp.MustCompile(`(?i)\b(langues?|languages?)\b`),
	regexp.MustCompile(`(?i)\blinkedin\.com\b`),
	regexp.MustCompile(`(?i)\bgithub\.com\b`),
	regexp.MustCompile(`(?i)\bportfolio\b`),
	regexp.MustCompile(`(?i)\b(curriculum\s*vit[aeé]|resume)\b`),
}

// Corporate markers kept deliberately tight so invoices and letters do
// not classify as registration documents.
var companyHints = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\braison\s*sociale\b`),
	regexp.MustCompile(`(?i)\bd[ée]nomination\s+sociale\b`),
	regexp.MustCompile(`(?i)\bcompany\s+name\b`),
	regexp.MustCompile(`(?i)\bICE\b`),
	regexp.MustCompile(`(?i)\bR\.?C\.?\b|\bReg(?:istre)?\s+du\s+commerce\b`),
	regexp.MustCompile(`(?i)\bIdentifiant\s+Fiscal\b`),
	regexp.MustCompile(`(?i)\bPatente\b`),
	regexp.MustCompile(`(?i)\bVAT\b|\bTVA\b`),
	regexp.MustCompile(`(?i)\bsi[eè]ge\s+social\b`),
	regexp.MustCompile(`(?i)\b(date\s+d['’e]\s*[ée]mission|date\s+d['’e]\s*d[eé]livrance|issued\s+on|registration\s+date|date\s+de\s+publication)\b`),
}

var (
	emailRe           = regexp.MustCompile(`(?i)[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,}`)
	phoneRe           = regexp.MustCompile(`(?:\+\d{1,3}\s*)?(?:\(?\d{2,3}\)?[\s.-]?)?\d{2,3}[\s.-]?\d{2}[\s.-]?\d{2}[\s.-]?\d{2}`)
	hardCorporateIDRe = regexp.MustCompile(`(?i)\b(ICE|R\.?C\.?|Identifiant\s+Fiscal|Patente|VAT|TVA)\b`)
	raisonSocialeRe   = regexp.MustCompile(`(?i)\braison\s*sociale\b`)
	cvSectionRes      = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(comp[ée]tence|skills?)\b`),
		regexp.MustCompile(`(?i)\b(formation|education|dipl[oô]me|degree)\b`),
		regexp.MustCompile(`(?i)\b(exp[ée]riences?|work\s+experience|employment|projects?)\b`),
	}
)

// ClassifyDocType decides whether OCR text reads like a company
// registration document or a CV. Hard corporate identifiers (ICE, RC,
// IF, Patente, VAT) weigh heaviest; CVs are recognized by contact info
// plus multiple resume sections.
func ClassifyDocType(text string) dto.DocumentType {
	t := text
	if len(t) > 40000 {
		t = t[:40000]
	}

	cvScore := 0.0
	for _, re := range cvHints {
		if re.MatchString(t) {
			cvScore++
		}
	}
	companyScore := 0.0
	for _, re := range companyHints {
		if re.MatchString(t) {
			companyScore++
		}
	}

	if emailRe.MatchString(t) {
		cvScore++
	}
	if phoneRe.MatchString(t) {
		cvScore += 0.5
	}
	cvSections := 0
	for _, re := range cvSectionRes {
		if re.MatchString(t) {
			cvSections++
		}
	}
	if cvSections >= 2 {
		cvScore++
	}

	if hardCorporateIDRe.MatchString(t) {
		companyScore += 2
	}
	if raisonSocialeRe.MatchString(t) {
		companyScore++
	}

	if companyScore >= cvScore {
		return dto.DocTypeCompanyDoc
	}
	return dto.DocTypeCV
}
