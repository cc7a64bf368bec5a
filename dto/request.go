package dto

import (
	"errors"
	"mime/multipart"
)

// CompanyVerificationRequest represents the incoming multipart request.
type CompanyVerificationRequest struct {
	Document  *multipart.FileHeader
	ForceType DocumentType // optional classifier override
	Expected  *ExpectedProfile
	RunID     string
	Password  string // for protected registry extracts
}

// Validate performs basic validation on the request
func (r *CompanyVerificationRequest) Validate() error {
	if r.Document == nil {
		return errors.New("document file is required")
	}
	if r.ForceType != "" && r.ForceType != DocTypeCompanyDoc && r.ForceType != DocTypeCV {
		return errors.New("force_type must be company_doc or cv")
	}
	return nil
}
