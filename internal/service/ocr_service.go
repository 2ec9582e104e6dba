package service

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"
)

type OCRService struct {
	languages []string
	logger    *zap.Logger
}

// NewOCRService creates an OCR service backed by tesseract for images and
// go-fitz for PDFs. languages is a "+"-separated list of tesseract language
// codes, e.g. "eng+pol".
func NewOCRService(languages string, logger *zap.Logger) *OCRService {
	return &OCRService{
		languages: strings.Split(languages, "+"),
		logger:    logger,
	}
}

var supportedFormats = []string{".jpg", ".jpeg", ".png", ".pdf"}

// ExtractText extracts raw text from an image or PDF file.
// For PDF: uses go-fitz for direct text extraction.
// For images: runs tesseract OCR.
func (s *OCRService) ExtractText(ctx context.Context, filePath string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filePath))
	isSupported := false
	for _, format := range supportedFormats {
		if ext == format {
			isSupported = true
			break
		}
	}
	if !isSupported {
		return "", fmt.Errorf("unsupported file format: %s (supported: jpg, jpeg, png, pdf)", ext)
	}

	var text string
	var err error

	if ext == ".pdf" {
		text, err = s.extractTextFromPDF(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from PDF: %w", err)
		}
	} else {
		text, err = s.extractTextFromImage(filePath)
		if err != nil {
			return "", fmt.Errorf("failed to extract text with tesseract: %w", err)
		}
	}

	text = strings.TrimSpace(text)

	s.logger.Info("OCR extraction completed",
		zap.String("file", filePath),
		zap.String("method", extractionMethod(ext)),
		zap.Int("text_length", len(text)),
	)

	if text == "" {
		return "", fmt.Errorf("no text extracted from %s", filePath)
	}

	return text, nil
}

// extractTextFromImage runs tesseract over a single image file
func (s *OCRService) extractTextFromImage(imagePath string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(s.languages...); err != nil {
		return "", fmt.Errorf("failed to set OCR languages: %w", err)
	}
	if err := client.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	return client.Text()
}

// extractTextFromPDF extracts text from PDF using the go-fitz library
func (s *OCRService) extractTextFromPDF(pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var textBuilder strings.Builder

	for i := 0; i < doc.NumPage(); i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			s.logger.Warn("Failed to extract text from page",
				zap.Int("page", i+1),
				zap.String("file", pdfPath),
				zap.Error(err),
			)
			continue
		}

		if pageText != "" {
			textBuilder.WriteString(pageText)
			textBuilder.WriteString("\n")
		}
	}

	text := strings.TrimSpace(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text found in PDF")
	}

	return text, nil
}

func extractionMethod(ext string) string {
	if ext == ".pdf" {
		return "go-fitz"
	}
	return "tesseract"
}
