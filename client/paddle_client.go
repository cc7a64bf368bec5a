package client

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"os/exec"
	"strings"
)

// PaddleClient wraps PaddleOCR for text extraction from document scans.
// It runs both French and English recognition models and merges the
// results, since Moroccan registry documents freely mix the two.
type PaddleClient struct {
	frModelDir string
	enModelDir string
}

// NewPaddleClient creates a new PaddleOCR client with model paths taken
// from the environment.
func NewPaddleClient(frModelDir, enModelDir string) (*PaddleClient, error) {
	if frModelDir == "" {
		frModelDir = "/opt/paddleocr/models/fr"
	}
	if enModelDir == "" {
		enModelDir = "/opt/paddleocr/models/en"
	}

	log.Printf("PaddleOCR initialized with FR model: %s, EN model: %s", frModelDir, enModelDir)

	return &PaddleClient{
		frModelDir: frModelDir,
		enModelDir: enModelDir,
	}, nil
}

// ExtractText extracts text from an image using PaddleOCR, merging the
// French and English model outputs.
func (p *PaddleClient) ExtractText(img image.Image) (string, error) {
	tempFile, err := saveTempImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to save temp image: %w", err)
	}
	defer os.Remove(tempFile)

	return p.ExtractTextFromFile(tempFile)
}

// ExtractTextFromFile runs both models against an image on disk.
func (p *PaddleClient) ExtractTextFromFile(imagePath string) (string, error) {
	frText, err := p.runPaddleOCR(imagePath, "fr", p.frModelDir)
	if err != nil {
		log.Printf("French PaddleOCR failed: %v", err)
	}

	enText, err := p.runPaddleOCR(imagePath, "en", p.enModelDir)
	if err != nil {
		log.Printf("English PaddleOCR failed: %v", err)
	}

	merged := mergeAndDeduplicate(frText, enText)
	if merged == "" {
		return "", fmt.Errorf("PaddleOCR extracted no text from image")
	}

	log.Printf("PaddleOCR extracted %d characters (FR: %d, EN: %d)",
		len(merged), len(frText), len(enText))

	return merged, nil
}

// runPaddleOCR executes the PaddleOCR Python CLI for a specific language
func (p *PaddleClient) runPaddleOCR(imagePath, lang, modelDir string) (string, error) {
	cmd := exec.Command("python3", "-c", fmt.Sprintf(`
import sys
from paddleocr import PaddleOCR
import warnings
warnings.filterwarnings('ignore')

ocr = PaddleOCR(
    use_angle_cls=True,
    lang='%s',
    det_model_dir='%s/det',
    rec_model_dir='%s/rec',
    cls_model_dir='%s/cls',
    use_gpu=False,
    show_log=False
)

result = ocr.ocr('%s', cls=True)
if result and result[0]:
    for line in result[0]:
        if line and len(line) > 1:
            print(line[1][0])
`, lang, modelDir, modelDir, modelDir, imagePath))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("PaddleOCR command failed: %v, stderr: %s", err, stderr.String())
	}

	return stdout.String(), nil
}

// mergeAndDeduplicate combines the per-language OCR outputs, keeping
// the first occurrence of each line (case-insensitive).
func mergeAndDeduplicate(frText, enText string) string {
	seen := make(map[string]bool)
	var result []string

	for _, text := range []string{frText, enText} {
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			normalized := strings.ToLower(line)
			if !seen[normalized] {
				seen[normalized] = true
				result = append(result, line)
			}
		}
	}

	return strings.Join(result, "\n")
}

// saveTempImage saves an image.Image to a temporary PNG file
func saveTempImage(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "paddle-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	return tempFile.Name(), nil
}
