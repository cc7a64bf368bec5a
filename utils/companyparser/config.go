package companyparser

import (
	"regexp"

	"github.com/ykribii/ocr-company-verification/dto"
)

// RegistrationPattern is one entry of the typed identifier cascade.
// Patterns are tried in slice order; the first match wins.
type RegistrationPattern struct {
	Type   dto.RegistrationType
	Re     *regexp.Regexp
	Weight float64
}

// Config holds every keyword list, pattern table and date layout the
// extractors consult. It is built once and never mutated, so a single
// Config can be shared by concurrent parsers. Swapping in a different
// Config (another language's labels, another country's identifiers)
// requires no change to extractor logic.
type Config struct {
	CompanyHints         []*regexp.Regexp
	AddressHints         []*regexp.Regexp
	AddressLabelPrefix   *regexp.Regexp
	RegistrationPatterns []RegistrationPattern
	StreetTokens         *regexp.Regexp
	CityTokens           *regexp.Regexp
	DateCandidate        *regexp.Regexp
	DateContext          []*regexp.Regexp
	DateLayouts          []string
	LooseDateLayouts     []string
	MonthNames           map[string]string
}

// Default returns the French/English configuration tuned for Moroccan
// registration documents (RC extracts, ICE certificates, patente and
// VAT attestations).
func Default() Config {
	return Config{
		CompanyHints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)raison\s*sociale`),
			regexp.MustCompile(`(?i)d['’]entreprise`),
			regexp.MustCompile(`(?i)d[ée]nomination\s+sociale`),
			regexp.MustCompile(`(?i)company\s+name`),
			regexp.MustCompile(`(?i)nom\s+de\s+la\s+societe`),
			regexp.MustCompile(`(?i)nom\s+de\s+l['’]?entreprise`),
			regexp.MustCompile(`(?i)^societe\s*:`),
			regexp.MustCompile(`(?i)^entreprise\s*:`),
		},
		AddressHints: []*regexp.Regexp{
			regexp.MustCompile(`(?i)adresse`),
			regexp.MustCompile(`(?i)si[eè]ge\s+social`),
			regexp.MustCompile(`(?i)head\s*office`),
			regexp.MustCompile(`(?i)address`),
		},
		AddressLabelPrefix: regexp.MustCompile(`(?i)^\s*(adresse|address|si[eè]ge\s+social|head\s*office)\s*[:：\-]?\s*`),
		RegistrationPatterns: []RegistrationPattern{
			{dto.RegTypeICE, regexp.MustCompile(`(?i)\bICE\s*[:\-]?\s*(\d{15})\b`), 1.0},
			{dto.RegTypeRC, regexp.MustCompile(`(?i)\b(?:RC|R\.C\.|Reg(?:istration)?\s*No\.?|Reg(?:istre)?\s+du\s+commerce)\s*[:\-]?\s*([A-Z0-9/\-]{3,})\b`), 0.9},
			{dto.RegTypeIF, regexp.MustCompile(`(?i)\b(?:IF|Identifiant\s+Fiscal)\s*[:\-]?\s*([A-Z0-9/\-]{4,})\b`), 0.85},
			{dto.RegTypePatente, regexp.MustCompile(`(?i)\bPatente\s*[:\-]?\s*([A-Z0-9/\-]{4,})\b`), 0.8},
			{dto.RegTypeVAT, regexp.MustCompile(`(?i)\b(?:Num[eé]ro\s+de\s+TVA|VAT\s+Number|TVA|VAT)\s*[:\-]?\s*([A-Z0-9\-]{6,})\b`), 0.7},
			{dto.RegTypeCompanyNo, regexp.MustCompile(`(?i)\b(?:Company\s*(?:No|Number)|Num[eé]ro\s+d['e]\s*entreprise)\s*[:\-]?\s*([A-Z0-9\-/]{4,})\b`), 0.6},
		},
		StreetTokens: regexp.MustCompile(`(?i)\b(rue|avenue|av|bd|boulevard|quartier|route|lot|bloc|immeuble|hay|street|road)\b`),
		CityTokens:   regexp.MustCompile(`(?i)\b(casablanca|rabat|tanger|marrakech|fes|agadir|dakhla|oued|paris|marseille|lyon|london|madrid|city|ville|morocco|maroc|france|uk|espagne|spain)\b`),
		DateCandidate: regexp.MustCompile(`(?i)\b(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}|\d{4}[/\-.]\d{1,2}[/\-.]\d{1,2}|\d{1,2}\s+(?:janv(?:ier)?|f[eé]vr(?:ier)?|mars|avr(?:il)?|mai|juin|juil(?:let)?|ao[uû]t|sept(?:embre)?|oct(?:obre)?|nov(?:embre)?|d[eé]c(?:embre)?|january|february|march|april|may|june|july|august|september|october|november|december)\.?\s+\d{2,4})\b`),
		DateContext: []*regexp.Regexp{
			regexp.MustCompile(`(?i)date\s*d['’e]\s*[ée]mission`),
			regexp.MustCompile(`(?i)date\s*d['’e]\s*d[eé]livrance`),
			regexp.MustCompile(`(?i)date\s*d['’e]\s*issue`),
			regexp.MustCompile(`(?i)issued?\s*on`),
			regexp.MustCompile(`(?i)date\s*d['’e]\s*cr[eé]ation`),
			regexp.MustCompile(`(?i)registration\s*date`),
			regexp.MustCompile(`(?i)date\s*d['’e]\s*publication`),
		},
		DateLayouts: []string{
			"2/1/2006",
			"2-1-2006",
			"2.1.2006",
			"2006-1-2",
			"2006/1/2",
			"2006.1.2",
			"2 January 2006",
			"2 Jan 2006",
		},
		LooseDateLayouts: []string{
			"2/1/06",
			"2-1-06",
			"2.1.06",
			"2 January 06",
			"2 Jan 06",
			"January 2, 2006",
			"2006-01-02T15:04:05Z07:00",
		},
		MonthNames: map[string]string{
			"janv": "January", "janvier": "January", "jan": "January", "january": "January",
			"fevr": "February", "fevrier": "February", "feb": "February", "february": "February",
			"mars": "March", "mar": "March", "march": "March",
			"avr": "April", "avril": "April", "apr": "April", "april": "April",
			"mai": "May", "may": "May",
			"juin": "June", "jun": "June", "june": "June",
			"juil": "July", "juillet": "July", "jul": "July", "july": "July",
			"aout": "August", "aug": "August", "august": "August",
			"sept": "September", "septembre": "September", "sep": "September", "september": "September",
			"oct": "October", "octobre": "October", "october": "October",
			"nov": "November", "novembre": "November", "november": "November",
			"dec": "December", "decembre": "December", "december": "December",
		},
	}
}
