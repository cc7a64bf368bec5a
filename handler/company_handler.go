package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ykribii/ocr-company-verification/dto"
	"github.com/ykribii/ocr-company-verification/service"
)

type CompanyHandler struct {
	verificationService *service.VerificationService
}

func NewCompanyHandler(verificationService *service.VerificationService) *CompanyHandler {
	return &CompanyHandler{
		verificationService: verificationService,
	}
}

// VerifyCompany handles the POST /company/verify endpoint. The request
// is multipart: one "document" file, plus optional "force_type" (skip
// the classifier), "run_id", "password" and "expected" (JSON company
// profile to score the parsed document against).
func (h *CompanyHandler) VerifyCompany(c *gin.Context) {
	log.Println("Received company verification request")

	document, err := c.FormFile("document")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No document provided", err)
		return
	}

	forceType := c.PostForm("force_type")
	if forceType == "" {
		forceType = c.Query("force_type")
	}

	var expected *dto.ExpectedProfile
	if raw := c.PostForm("expected"); raw != "" {
		expected = &dto.ExpectedProfile{}
		if err := json.Unmarshal([]byte(raw), expected); err != nil {
			h.sendError(c, http.StatusBadRequest, "Invalid expected profile JSON", err)
			return
		}
	}

	runID := c.PostForm("run_id")
	if runID == "" {
		runID = c.Query("run_id")
	}

	request := &dto.CompanyVerificationRequest{
		Document:  document,
		ForceType: dto.DocumentType(forceType),
		Expected:  expected,
		RunID:     runID,
		Password:  c.PostForm("password"),
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	response, err := h.verificationService.VerifyCompany(request)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to verify company document", err)
		return
	}

	log.Printf("Company verification completed, run_id=%s doc_type=%s", response.RunID, response.DocType)
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *CompanyHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "VERIFICATION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
