package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quikchek/internal/dto"
	"quikchek/internal/extract"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ScanService runs the receipt pipeline: store the uploaded image, OCR it,
// then run field extraction over the raw text to pre-fill the document form.
type ScanService struct {
	ocrService *OCRService
	uploadDir  string
	logger     *zap.Logger
}

func NewScanService(ocrService *OCRService, uploadDir string, logger *zap.Logger) *ScanService {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		logger.Warn("Failed to create upload directory", zap.Error(err))
	}

	return &ScanService{
		ocrService: ocrService,
		uploadDir:  uploadDir,
		logger:     logger,
	}
}

// Scan saves the upload under a unique name and returns suggested form
// fields. OCR failure is not an error: the suggestions degrade to zero
// values and the user fills the form by hand.
func (s *ScanService) Scan(ctx context.Context, file io.Reader, fileName string) (*dto.ScanResponse, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	supported := false
	for _, format := range supportedFormats {
		if ext == format {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("%w: unsupported file format %s", ErrValidation, ext)
	}

	fileID := uuid.New()
	newFileName := fileID.String() + ext
	filePath := filepath.Join(s.uploadDir, newFileName)

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	text, err := s.ocrService.ExtractText(ctx, filePath)
	if err != nil {
		s.logger.Warn("OCR extraction failed", zap.String("file", filePath), zap.Error(err))
		text = ""
	}
	text = sanitizeUTF8(strings.TrimSpace(text))

	fields := extract.FromText(text)

	resp := &dto.ScanResponse{
		ImageURL: "/uploads/" + newFileName,
		Text:     text,
		Amount:   fields.Amount,
		Company:  fields.Company,
	}
	if fields.Date != nil {
		date := fields.Date.Format(time.RFC3339)
		resp.Date = &date
	}

	s.logger.Info("Receipt scanned",
		zap.String("file", newFileName),
		zap.Float64("amount", fields.Amount),
		zap.String("company", fields.Company),
		zap.Bool("date_found", fields.Date != nil),
	)

	return resp, nil
}
