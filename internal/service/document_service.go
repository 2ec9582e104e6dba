package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"
	"unicode/utf8"

	"quikchek/internal/dto"
	"quikchek/internal/models"
	"quikchek/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DocumentService struct {
	docRepo      *repository.DocumentRepository
	categoryRepo *repository.CategoryRepository
	uploadDir    string
	logger       *zap.Logger
}

func NewDocumentService(
	docRepo *repository.DocumentRepository,
	categoryRepo *repository.CategoryRepository,
	uploadDir string,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		docRepo:      docRepo,
		categoryRepo: categoryRepo,
		uploadDir:    uploadDir,
		logger:       logger,
	}
}

var documentNameRe = regexp.MustCompile(`[a-zA-Z]`)

// validateDocument is the single source of truth for document rules,
// including the future-date check (the SPA does not re-validate it).
func validateDocument(name, description string, amount float64, hasWarranty bool, warrantyMonths *int, timestamp, now time.Time) error {
	nameLen := utf8.RuneCountInString(name)
	if nameLen < 2 || nameLen > 30 {
		return fmt.Errorf("%w: name must be between 2 and 30 characters", ErrValidation)
	}
	if !documentNameRe.MatchString(name) {
		return fmt.Errorf("%w: name cannot contain only numbers or special characters", ErrValidation)
	}
	if utf8.RuneCountInString(description) > 1024 {
		return fmt.Errorf("%w: description cannot exceed 1024 characters", ErrValidation)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", ErrValidation)
	}
	if timestamp.After(now) {
		return fmt.Errorf("%w: date cannot be in the future", ErrValidation)
	}
	if hasWarranty {
		if warrantyMonths == nil || *warrantyMonths <= 0 {
			return fmt.Errorf("%w: warranty duration must be greater than zero when warranty is enabled", ErrValidation)
		}
	} else if warrantyMonths != nil && *warrantyMonths != 0 {
		return fmt.Errorf("%w: warranty duration set on a document without warranty", ErrValidation)
	}
	return nil
}

func parseTimestamp(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: invalid timestamp format", ErrValidation)
}

func (s *DocumentService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateDocumentRequest) (*dto.DocumentResponse, error) {
	timestamp, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return nil, err
	}

	if err := validateDocument(req.Name, req.Description, req.AmountSpent, req.HasWarranty, req.WarrantyMonths, timestamp, time.Now()); err != nil {
		return nil, err
	}

	categoryIDs, err := s.resolveCategories(ctx, userID, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	var warrantyMonths *int
	if req.HasWarranty {
		warrantyMonths = req.WarrantyMonths
	}

	now := time.Now()
	doc := &models.Document{
		ID:             uuid.New(),
		UserID:         userID,
		Timestamp:      timestamp,
		Name:           req.Name,
		Description:    req.Description,
		OCRText:        sanitizeUTF8(req.OCRText),
		ImageURL:       req.ImageURL,
		AmountSpent:    req.AmountSpent,
		Company:        req.Company,
		HasWarranty:    req.HasWarranty,
		WarrantyMonths: warrantyMonths,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	if err := s.docRepo.SetCategories(ctx, doc.ID, categoryIDs); err != nil {
		return nil, fmt.Errorf("failed to attach categories: %w", err)
	}

	created, err := s.docRepo.GetByID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Document created",
		zap.String("document_id", doc.ID.String()),
		zap.String("user_id", userID.String()),
	)

	resp := toDocumentResponse(created)
	return &resp, nil
}

func (s *DocumentService) Update(ctx context.Context, userID, documentID uuid.UUID, req *dto.UpdateDocumentRequest) (*dto.DocumentResponse, error) {
	doc, err := s.getOwned(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	timestamp, err := parseTimestamp(req.Timestamp)
	if err != nil {
		return nil, err
	}

	if err := validateDocument(req.Name, req.Description, req.AmountSpent, req.HasWarranty, req.WarrantyMonths, timestamp, time.Now()); err != nil {
		return nil, err
	}

	categoryIDs, err := s.resolveCategories(ctx, userID, req.CategoryIDs)
	if err != nil {
		return nil, err
	}

	doc.Timestamp = timestamp
	doc.Name = req.Name
	doc.Description = req.Description
	doc.OCRText = sanitizeUTF8(req.OCRText)
	// Only replace the image when a new one was uploaded
	if req.ImageURL != "" {
		doc.ImageURL = req.ImageURL
	}
	doc.AmountSpent = req.AmountSpent
	doc.Company = req.Company
	doc.HasWarranty = req.HasWarranty
	if req.HasWarranty {
		doc.WarrantyMonths = req.WarrantyMonths
	} else {
		doc.WarrantyMonths = nil
	}

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	if err := s.docRepo.SetCategories(ctx, doc.ID, categoryIDs); err != nil {
		return nil, fmt.Errorf("failed to update categories: %w", err)
	}

	updated, err := s.docRepo.GetByID(ctx, doc.ID)
	if err != nil {
		return nil, err
	}

	resp := toDocumentResponse(updated)
	return &resp, nil
}

func (s *DocumentService) Get(ctx context.Context, userID, documentID uuid.UUID) (*dto.DocumentResponse, error) {
	doc, err := s.getOwned(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	resp := toDocumentResponse(doc)
	return &resp, nil
}

func (s *DocumentService) List(ctx context.Context, userID uuid.UUID) ([]dto.DocumentResponse, error) {
	docs, err := s.docRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = toDocumentResponse(doc)
	}
	return responses, nil
}

func (s *DocumentService) Delete(ctx context.Context, userID, documentID uuid.UUID) error {
	doc, err := s.getOwned(ctx, userID, documentID)
	if err != nil {
		return err
	}

	if err := s.docRepo.Delete(ctx, documentID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	// Best-effort removal of the stored image; the janitor sweeps leftovers
	if doc.ImageURL != "" {
		filePath := filepath.Join(s.uploadDir, filepath.Base(doc.ImageURL))
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove upload file", zap.String("file", filePath), zap.Error(err))
		}
	}

	return nil
}

// Categories returns the categories attached to one document.
func (s *DocumentService) Categories(ctx context.Context, userID, documentID uuid.UUID) ([]dto.CategoryResponse, error) {
	doc, err := s.getOwned(ctx, userID, documentID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, len(doc.Categories))
	for i, category := range doc.Categories {
		responses[i] = dto.CategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
		}
	}
	return responses, nil
}

func (s *DocumentService) getOwned(ctx context.Context, userID, documentID uuid.UUID) (*models.Document, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("%w: document %s", ErrNotFound, documentID)
	}
	if doc.UserID != userID {
		return nil, fmt.Errorf("%w: document belongs to another user", ErrForbidden)
	}
	return doc, nil
}

// resolveCategories maps requested category IDs to verified ones. An empty
// selection falls back to the user's protected Other category, so a stored
// document always has at least one category.
func (s *DocumentService) resolveCategories(ctx context.Context, userID uuid.UUID, ids []string) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		other, err := s.categoryRepo.GetByName(ctx, userID, models.OtherCategoryName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve fallback category: %w", err)
		}
		return []uuid.UUID{other.ID}, nil
	}

	categoryIDs := make([]uuid.UUID, 0, len(ids))
	for _, raw := range ids {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid category id %q", ErrValidation, raw)
		}
		category, err := s.categoryRepo.GetByID(ctx, id)
		if err != nil || category.UserID != userID {
			return nil, fmt.Errorf("%w: one or more selected categories were not found or do not belong to this user", ErrValidation)
		}
		categoryIDs = append(categoryIDs, id)
	}
	return categoryIDs, nil
}

func toDocumentResponse(doc *models.Document) dto.DocumentResponse {
	categories := make([]dto.CategoryResponse, len(doc.Categories))
	for i, category := range doc.Categories {
		categories[i] = dto.CategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
		}
	}

	return dto.DocumentResponse{
		ID:             doc.ID.String(),
		Timestamp:      doc.Timestamp.Format(time.RFC3339),
		Name:           doc.Name,
		Description:    doc.Description,
		OCRText:        doc.OCRText,
		ImageURL:       doc.ImageURL,
		AmountSpent:    doc.AmountSpent,
		Company:        doc.Company,
		HasWarranty:    doc.HasWarranty,
		WarrantyMonths: doc.WarrantyMonths,
		Categories:     categories,
		CreatedAt:      doc.CreatedAt.Format(time.RFC3339),
	}
}
