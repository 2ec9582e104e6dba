package service

import (
	"context"
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"

	"quikchek/internal/dto"
	"quikchek/internal/models"
	"quikchek/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	docRepo      *repository.DocumentRepository
	logger       *zap.Logger
}

func NewCategoryService(
	categoryRepo *repository.CategoryRepository,
	docRepo *repository.DocumentRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		docRepo:      docRepo,
		logger:       logger,
	}
}

var categoryNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)

func validateCategoryName(name string) error {
	nameLen := utf8.RuneCountInString(name)
	if nameLen < 4 || nameLen > 30 {
		return fmt.Errorf("%w: category name must be between 4 and 30 characters", ErrValidation)
	}
	if !categoryNameRe.MatchString(name) {
		return fmt.Errorf("%w: category name can only contain letters and spaces", ErrValidation)
	}
	return nil
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := validateCategoryName(req.Name); err != nil {
		return nil, err
	}

	// Name uniqueness is case-insensitive per user
	if existing, _ := s.categoryRepo.GetByName(ctx, userID, req.Name); existing != nil {
		return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, req.Name)
	}

	now := time.Now()
	category := &models.SpendingCategory{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.Info("Category created",
		zap.String("category_id", category.ID.String()),
		zap.String("user_id", userID.String()),
	)

	return &dto.CategoryResponse{ID: category.ID.String(), Name: category.Name}, nil
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = dto.CategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
		}
	}
	return responses, nil
}

// Documents returns all documents attached to one category.
func (s *CategoryService) Documents(ctx context.Context, userID, categoryID uuid.UUID) ([]dto.DocumentResponse, error) {
	if _, err := s.getOwned(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	docs, err := s.docRepo.ListByCategoryID(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.DocumentResponse, len(docs))
	for i, doc := range docs {
		responses[i] = toDocumentResponse(doc)
	}
	return responses, nil
}

func (s *CategoryService) Rename(ctx context.Context, userID, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.getOwned(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if category.IsOther() {
		return nil, fmt.Errorf("%w: the %q category cannot be modified", ErrConflict, models.OtherCategoryName)
	}

	if err := validateCategoryName(req.Name); err != nil {
		return nil, err
	}

	if existing, _ := s.categoryRepo.GetByName(ctx, userID, req.Name); existing != nil && existing.ID != categoryID {
		return nil, fmt.Errorf("%w: category %q already exists", ErrConflict, req.Name)
	}

	if err := s.categoryRepo.UpdateName(ctx, categoryID, req.Name); err != nil {
		return nil, fmt.Errorf("failed to rename category: %w", err)
	}

	return &dto.CategoryResponse{ID: categoryID.String(), Name: req.Name}, nil
}

func (s *CategoryService) Delete(ctx context.Context, userID, categoryID uuid.UUID) error {
	category, err := s.getOwned(ctx, userID, categoryID)
	if err != nil {
		return err
	}

	if category.IsOther() {
		return fmt.Errorf("%w: the %q category cannot be deleted", ErrConflict, models.OtherCategoryName)
	}

	count, err := s.categoryRepo.CountDocuments(ctx, categoryID)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: cannot delete a category that contains documents, remove all documents from this category first", ErrConflict)
	}

	if err := s.categoryRepo.Delete(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

func (s *CategoryService) getOwned(ctx context.Context, userID, categoryID uuid.UUID) (*models.SpendingCategory, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w: category %s", ErrNotFound, categoryID)
	}
	if category.UserID != userID {
		return nil, fmt.Errorf("%w: category belongs to another user", ErrForbidden)
	}
	return category, nil
}
