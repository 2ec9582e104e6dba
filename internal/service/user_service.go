package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"quikchek/internal/dto"
	"quikchek/internal/repository"
	"quikchek/pkg/auth"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	userRepo     *repository.UserRepository
	docRepo      *repository.DocumentRepository
	categoryRepo *repository.CategoryRepository
	uploadDir    string
	logger       *zap.Logger
}

func NewUserService(
	userRepo *repository.UserRepository,
	docRepo *repository.DocumentRepository,
	categoryRepo *repository.CategoryRepository,
	uploadDir string,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:     userRepo,
		docRepo:      docRepo,
		categoryRepo: categoryRepo,
		uploadDir:    uploadDir,
		logger:       logger,
	}
}

func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	return &dto.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// GetFull returns the user with their complete document and category sets,
// the payload the SPA bootstraps from.
func (s *UserService) GetFull(ctx context.Context, userID uuid.UUID) (*dto.AccountFullResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	docs, err := s.docRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.AccountFullResponse{
		User: dto.UserResponse{
			ID:       user.ID.String(),
			Username: user.Username,
			Email:    user.Email,
		},
		Documents:  make([]dto.DocumentResponse, len(docs)),
		Categories: make([]dto.CategoryResponse, len(categories)),
	}
	for i, doc := range docs {
		resp.Documents[i] = toDocumentResponse(doc)
	}
	for i, category := range categories {
		resp.Categories[i] = dto.CategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
		}
	}

	return resp, nil
}

func (s *UserService) Update(ctx context.Context, userID uuid.UUID, req *dto.UpdateAccountRequest) (*dto.UserResponse, error) {
	if req.Username == nil && req.Password == nil {
		return nil, fmt.Errorf("%w: username and password are both empty", ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	if req.Username != nil {
		if existing, _ := s.userRepo.GetByUsername(ctx, *req.Username); existing != nil && existing.ID != userID {
			return nil, fmt.Errorf("%w: username %q is taken", ErrConflict, *req.Username)
		}
		user.Username = *req.Username
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &dto.UserResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// Delete removes the account. Documents, categories and periods cascade in
// the database; upload files are removed best-effort.
func (s *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	docs, err := s.docRepo.ListByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	for _, doc := range docs {
		if doc.ImageURL == "" {
			continue
		}
		filePath := filepath.Join(s.uploadDir, filepath.Base(doc.ImageURL))
		if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove upload file", zap.String("file", filePath), zap.Error(err))
		}
	}

	s.logger.Info("Account deleted", zap.String("user_id", userID.String()))
	return nil
}
