package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	OCRLanguages      []string
	PaddleFRModelDir  string
	PaddleENModelDir  string
	MaxFileSize       int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/5/tessdata/"
	}

	// Registration documents mix French and English.
	langs := os.Getenv("OCR_LANGS")
	if langs == "" {
		langs = "fra+eng"
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		OCRLanguages:      strings.Split(langs, "+"),
		PaddleFRModelDir:  os.Getenv("PADDLE_OCR_FR_MODEL_DIR"),
		PaddleENModelDir:  os.Getenv("PADDLE_OCR_EN_MODEL_DIR"),
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
	}
}
