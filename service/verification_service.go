package service

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/ykribii/ocr-company-verification/client"
	"github.com/ykribii/ocr-company-verification/dto"
	"github.com/ykribii/ocr-company-verification/utils"
	"github.com/ykribii/ocr-company-verification/utils/companyparser"
)

const signalRules = "0.5*reg + 0.3*name + 0.2*address"

// VerificationService runs the OCR and extraction pipeline for company
// registration documents: text extraction (embedded PDF text, then
// PaddleOCR, then Tesseract), document classification, identity-field
// parsing, QR payload sweep, and parsed-vs-expected signal scoring.
type VerificationService struct {
	tesseractClient *client.TesseractClient
	paddleClient    *client.PaddleClient
	pdfProcessor    PDFProcessor
	parser          *companyparser.Parser
}

func NewVerificationService(
	tesseractClient *client.TesseractClient,
	pdfProcessor PDFProcessor,
	paddleClient *client.PaddleClient,
) *VerificationService {
	return &VerificationService{
		tesseractClient: tesseractClient,
		paddleClient:    paddleClient,
		pdfProcessor:    pdfProcessor,
		parser:          companyparser.New(companyparser.Default()),
	}
}

// VerifyCompany OCRs the uploaded document, classifies it, parses the
// identity fields when it is a company document, and scores the result
// against the expected company profile when one was supplied.
func (s *VerificationService) VerifyCompany(req *dto.CompanyVerificationRequest) (*dto.CompanyVerificationResponse, error) {
	f, err := req.Document.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", req.Document.Filename, err)
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", req.Document.Filename, err)
	}

	text, quality, qrPayloads, err := s.extractText(req, fileBytes)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("no text could be extracted from %s", req.Document.Filename)
	}

	docType := req.ForceType
	if docType == "" {
		docType = ClassifyDocType(text)
	}

	var parsed *dto.ParsedVerification
	var signal *dto.VerificationSignal
	if docType == dto.DocTypeCompanyDoc {
		pv := s.parser.Parse(text)
		parsed = &pv
		signal = ComputeSignal(parsed, req.Expected)
	}

	runID := req.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	return &dto.CompanyVerificationResponse{
		RunID:       runID,
		DocType:     docType,
		Parsed:      parsed,
		Quality:     quality,
		Signal:      signal,
		QRPayloads:  qrPayloads,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// extractText runs the OCR ladder. PDFs: embedded text first; when that
// comes back empty or nearly so the document is a scan, so page images
// are extracted and OCRed (Paddle first, Tesseract fallback). Plain
// images go straight to OCR. Page images are also swept for QR codes.
func (s *VerificationService) extractText(req *dto.CompanyVerificationRequest, fileBytes []byte) (string, dto.DocumentQuality, []string, error) {
	var quality dto.DocumentQuality
	var qrPayloads []string

	isPDF := strings.HasSuffix(strings.ToLower(req.Document.Filename), ".pdf")
	if !isPDF {
		text, conf, err := s.ocrImageUpload(req, fileBytes)
		if err != nil {
			return "", quality, nil, err
		}

		if img, _, decErr := image.Decode(bytes.NewReader(fileBytes)); decErr == nil {
			qrPayloads = scanQRCodes([]image.Image{img})
		}

		quality.OcrConfidence = conf
		quality.ResolutionScore = 80.0
		quality.FinalScore = (quality.OcrConfidence + quality.ResolutionScore) / 2
		if quality.FinalScore < 60 {
			quality.Issues = append(quality.Issues, "low_quality_document")
		}
		return text, quality, qrPayloads, nil
	}

	text, err := s.pdfProcessor.ExtractText(fileBytes, req.Password)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", req.Document.Filename, err)
		quality.Issues = append(quality.Issues, "pdf_text_extraction_failed")
	}

	if len(strings.TrimSpace(text)) >= 20 {
		// Text-based registry extract, no OCR involved.
		quality.OcrConfidence = 100.0
		quality.ResolutionScore = 100.0
		quality.FinalScore = 100.0
		return text, quality, nil, nil
	}

	log.Printf("PDF %s seems to be scanned, attempting image-based OCR", req.Document.Filename)

	images, imgErr := s.pdfProcessor.ExtractImages(fileBytes, req.Password)
	if imgErr != nil || len(images) == 0 {
		log.Printf("Failed to extract images from PDF %s: %v", req.Document.Filename, imgErr)
		quality.Issues = append(quality.Issues, "pdf_image_extraction_failed")
		return text, quality, nil, nil
	}

	qrPayloads = scanQRCodes(images)

	var combinedText strings.Builder
	var totalConfidence float64
	var pageCount int

	for _, img := range images {
		tempImgFile, err := saveImageToTempFile(img)
		if err != nil {
			log.Printf("Failed to save temporary image for OCR: %v", err)
			continue
		}

		pageText := ""
		pageConf := 75.0
		var ocrErr error
		if s.paddleClient != nil {
			pageText, ocrErr = s.paddleClient.ExtractTextFromFile(tempImgFile)
		}

		if s.paddleClient == nil || ocrErr != nil || len(strings.TrimSpace(pageText)) < 10 {
			pageText, pageConf, ocrErr = s.tesseractClient.ExtractTextAndQuality(tempImgFile)
		}
		os.Remove(tempImgFile)
		if ocrErr != nil {
			log.Printf("OCR failed for a page in %s: %v", req.Document.Filename, ocrErr)
			continue
		}

		combinedText.WriteString(pageText)
		combinedText.WriteString("\n")
		totalConfidence += pageConf
		pageCount++
	}

	if pageCount == 0 {
		quality.Issues = append(quality.Issues, "scanned_pdf_ocr_failed")
		return text, quality, qrPayloads, nil
	}

	quality.OcrConfidence = totalConfidence / float64(pageCount)
	quality.ResolutionScore = 80.0
	quality.FinalScore = (quality.OcrConfidence + quality.ResolutionScore) / 2
	if quality.FinalScore < 60 {
		quality.Issues = append(quality.Issues, "low_quality_document")
	}
	return combinedText.String(), quality, qrPayloads, nil
}

// ocrImageUpload OCRs a plain image upload, Paddle first with Tesseract
// as the fallback.
func (s *VerificationService) ocrImageUpload(req *dto.CompanyVerificationRequest, fileBytes []byte) (string, float64, error) {
	if s.paddleClient != nil {
		if img, _, err := image.Decode(bytes.NewReader(fileBytes)); err == nil {
			if text, err := s.paddleClient.ExtractText(img); err == nil && len(strings.TrimSpace(text)) > 5 {
				return text, 75.0, nil
			}
		}
	}

	text, conf, err := s.tesseractClient.ExtractTextAndQualityFromFile(req.Document)
	if err != nil {
		return "", 0, fmt.Errorf("image OCR failed: %w", err)
	}
	return text, conf, nil
}

// ComputeSignal scores the parsed document against the expected company
// profile. The registration number carries half the weight since it is
// the hardest field to fake or misread. Without an expected profile the
// signal is neutral.
func ComputeSignal(parsed *dto.ParsedVerification, expected *dto.ExpectedProfile) *dto.VerificationSignal {
	score := 0.5
	if expected != nil {
		regValue := ""
		if parsed.RegistrationNumber != nil {
			regValue = parsed.RegistrationNumber.Value
		}
		score = 0.5*utils.Similarity(regValue, expected.RegistrationNumber) +
			0.3*utils.Similarity(parsed.CompanyName, expected.CompanyName) +
			0.2*utils.Similarity(parsed.Address, expected.Address)
		if score > 0.99 {
			score = 0.99
		}
	}

	passed := score >= 0.75
	explanation := "OCR parsed data does not match expected profile."
	if passed {
		explanation = "OCR parsed data matches expected profile (threshold 0.75)."
	}

	return &dto.VerificationSignal{
		SignalType:  "doc_ocr_match",
		Score:       score,
		Passed:      passed,
		Explanation: explanation,
		Rules:       signalRules,
	}
}

// scanQRCodes decodes any QR payloads present on the page images.
// Registry extracts often carry a QR pointing back at the official
// record; the payload is surfaced to the caller as a verification aid.
func scanQRCodes(images []image.Image) []string {
	var payloads []string
	reader := qrcode.NewQRCodeReader()

	for _, img := range images {
		bmp, err := gozxing.NewBinaryBitmapFromImage(img)
		if err != nil {
			continue
		}
		result, err := reader.Decode(bmp, nil)
		if err != nil {
			continue
		}
		if text := result.GetText(); text != "" {
			payloads = append(payloads, text)
		}
	}
	return payloads
}

// saveImageToTempFile saves an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "ocr-img-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
