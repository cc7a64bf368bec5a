package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/ykribii/ocr-company-verification/client"
	"github.com/ykribii/ocr-company-verification/config"
	"github.com/ykribii/ocr-company-verification/handler"
	"github.com/ykribii/ocr-company-verification/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Tesseract v5 resolves its language packs through this variable
	os.Setenv("TESSDATA_PREFIX", cfg.TesseractDataPath)
	log.Println("TESSDATA_PREFIX set to:", os.Getenv("TESSDATA_PREFIX"))

	// Initialize Tesseract client
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	defer tesseractClient.Close()

	// PaddleOCR is optional; the service falls back to Tesseract alone
	paddleClient, err := client.NewPaddleClient(cfg.PaddleFRModelDir, cfg.PaddleENModelDir)
	if err != nil {
		log.Printf("Warning: PaddleOCR client initialization failed: %v. Will use Tesseract only.", err)
		paddleClient = nil
	}

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	verificationService := service.NewVerificationService(tesseractClient, pdfProcessor, paddleClient)

	// Initialize handler layer
	companyHandler := handler.NewCompanyHandler(verificationService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "OCR Company Verification",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		company := api.Group("/company")
		{
			company.POST("/verify", companyHandler.VerifyCompany)
		}
	}

	// Start server
	log.Printf("Starting OCR Company Verification Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
