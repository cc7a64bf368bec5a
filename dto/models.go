package dto

// DocumentType is the classifier verdict for an uploaded document.
type DocumentType string

const (
	DocTypeCompanyDoc DocumentType = "company_doc"
	DocTypeCV         DocumentType = "cv"
)

// RegistrationType is the closed set of identifier kinds recognized on
// company registration documents.
type RegistrationType string

const (
	RegTypeICE       RegistrationType = "ICE"
	RegTypeRC        RegistrationType = "RC"
	RegTypeIF        RegistrationType = "IF"
	RegTypePatente   RegistrationType = "PATENTE"
	RegTypeVAT       RegistrationType = "VAT"
	RegTypeCompanyNo RegistrationType = "COMPANY_NO"
	RegTypeUnknown   RegistrationType = "UNKNOWN"
)

// RegistrationNumber is a typed identifier captured from the document.
// Value contains only alphanumerics plus '/' and '-'.
type RegistrationNumber struct {
	Type  RegistrationType `json:"type"`
	Value string           `json:"value"`
}

// FieldConfidence carries one [0,1] score per extracted field. All four
// scores are always present, even when the field itself is absent.
type FieldConfidence struct {
	CompanyName        float64 `json:"company_name"`
	RegistrationNumber float64 `json:"registration_number"`
	Address            float64 `json:"address"`
	IssueDates         float64 `json:"issue_dates"`
}

// ParseMeta holds per-field confidences and free-form diagnostic notes
// describing which extraction path produced each value.
type ParseMeta struct {
	Confidence FieldConfidence `json:"confidence"`
	Notes      []string        `json:"notes,omitempty"`
}

// ParsedVerification is the aggregate extraction result for one company
// registration document.
type ParsedVerification struct {
	CompanyName        string              `json:"company_name,omitempty"`
	RegistrationNumber *RegistrationNumber `json:"registration_number,omitempty"`
	Address            string              `json:"address,omitempty"`
	IssueDates         []string            `json:"issue_dates"`
	Meta               ParseMeta           `json:"meta"`
}

// ExpectedProfile is the company profile declared at registration time,
// used to score the parsed document against what the company claims.
type ExpectedProfile struct {
	CompanyName        string `json:"company_name,omitempty"`
	RegistrationNumber string `json:"registration_number,omitempty"`
	Address            string `json:"address,omitempty"`
}

// VerificationSignal is the parsed-vs-expected match outcome attached to
// a verification run.
type VerificationSignal struct {
	SignalType  string  `json:"signal_type"`
	Score       float64 `json:"score"`
	Passed      bool    `json:"passed"`
	Explanation string  `json:"explanation"`
	Rules       string  `json:"rules"`
}

// DocumentQuality reports how trustworthy the OCR pass itself was.
type DocumentQuality struct {
	OcrConfidence   float64  `json:"ocr_confidence"`
	ResolutionScore float64  `json:"resolution_score"`
	FinalScore      float64  `json:"final_score"`
	Issues          []string `json:"issues,omitempty"`
}
