package dto

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// CompanyVerificationResponse is the final response structure
type CompanyVerificationResponse struct {
	RunID       string              `json:"run_id"`
	DocType     DocumentType        `json:"doc_type"`
	Parsed      *ParsedVerification `json:"parsed,omitempty"`
	Quality     DocumentQuality     `json:"quality"`
	Signal      *VerificationSignal `json:"signal,omitempty"`
	QRPayloads  []string            `json:"qr_payloads,omitempty"`
	ProcessedAt string              `json:"processed_at"`
}
