package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/dto"
	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/internal/repository"
	"github.com/monsdar/MiniGameArchive/pkg/apperrors"
	"github.com/monsdar/MiniGameArchive/pkg/markdown"
)

// ErrContentNotFound is returned when a content block does not exist.
var ErrContentNotFound = errors.New("content block not found")

// ContentService serves the informational surfaces. Public reads return
// rendered HTML; the raw markdown body is visible to admins only.
type ContentService interface {
	ListPublic(ctx context.Context, kind string) ([]dto.ContentBlockResponse, error)
	ListAdmin(ctx context.Context, kind string) ([]dto.AdminContentBlockResponse, error)
	Create(ctx context.Context, req *dto.CreateContentBlockRequest) (*dto.AdminContentBlockResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateContentBlockRequest) (*dto.AdminContentBlockResponse, error)
	Delete(ctx context.Context, id string) error
}

type contentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewContentService creates a ContentService instance.
func NewContentService(repo *repository.Repository, logger *zap.Logger) ContentService {
	return &contentService{repo: repo, logger: logger}
}

func (s *contentService) ListPublic(ctx context.Context, kind string) ([]dto.ContentBlockResponse, error) {
	if !model.IsValidContentKind(kind) {
		return nil, apperrors.NewValidation("kind", "unknown content kind")
	}

	blocks, err := s.repo.Content.ListActiveByKind(ctx, kind)
	if err != nil {
		s.logger.Error("listing content blocks failed", zap.String("kind", kind), zap.Error(err))
		return nil, err
	}

	result := make([]dto.ContentBlockResponse, 0, len(blocks))
	for i := range blocks {
		html, err := markdown.Render(blocks[i].Body)
		if err != nil {
			// A broken block must not take down the whole surface.
			s.logger.Error("rendering content block failed",
				zap.String("block_id", blocks[i].BlockID), zap.Error(err))
			continue
		}
		result = append(result, dto.ContentBlockResponse{
			ID:           blocks[i].BlockID,
			Kind:         blocks[i].Kind,
			Title:        blocks[i].Title,
			HTML:         html,
			DisplayOrder: blocks[i].DisplayOrder,
		})
	}
	return result, nil
}

func (s *contentService) ListAdmin(ctx context.Context, kind string) ([]dto.AdminContentBlockResponse, error) {
	if !model.IsValidContentKind(kind) {
		return nil, apperrors.NewValidation("kind", "unknown content kind")
	}

	blocks, err := s.repo.Content.ListByKind(ctx, kind)
	if err != nil {
		s.logger.Error("listing content blocks failed", zap.String("kind", kind), zap.Error(err))
		return nil, err
	}

	result := make([]dto.AdminContentBlockResponse, 0, len(blocks))
	for i := range blocks {
		result = append(result, toAdminContentBlock(&blocks[i]))
	}
	return result, nil
}

func (s *contentService) Create(ctx context.Context, req *dto.CreateContentBlockRequest) (*dto.AdminContentBlockResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidation("title", "title must not be empty")
	}

	block := &model.ContentBlock{
		Kind:         req.Kind,
		Title:        strings.TrimSpace(req.Title),
		Body:         req.Body,
		IsActive:     true,
		DisplayOrder: req.DisplayOrder,
	}
	if req.IsActive != nil {
		block.IsActive = *req.IsActive
	}

	if err := s.repo.Content.Create(ctx, block); err != nil {
		s.logger.Error("creating content block failed", zap.Error(err))
		return nil, err
	}

	resp := toAdminContentBlock(block)
	return &resp, nil
}

func (s *contentService) Update(ctx context.Context, id string, req *dto.UpdateContentBlockRequest) (*dto.AdminContentBlockResponse, error) {
	block, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, apperrors.NewValidation("title", "title must not be empty")
		}
		block.Title = title
	}
	if req.Body != nil {
		block.Body = *req.Body
	}
	if req.IsActive != nil {
		block.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		block.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Content.Update(ctx, block); err != nil {
		s.logger.Error("updating content block failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	resp := toAdminContentBlock(block)
	return &resp, nil
}

func (s *contentService) Delete(ctx context.Context, id string) error {
	if _, err := s.getByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Content.Delete(ctx, id); err != nil {
		s.logger.Error("deleting content block failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

func (s *contentService) getByID(ctx context.Context, id string) (*model.ContentBlock, error) {
	block, err := s.repo.Content.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		s.logger.Error("loading content block failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return block, nil
}

func toAdminContentBlock(b *model.ContentBlock) dto.AdminContentBlockResponse {
	return dto.AdminContentBlockResponse{
		ID:           b.BlockID,
		Kind:         b.Kind,
		Title:        b.Title,
		Body:         b.Body,
		IsActive:     b.IsActive,
		DisplayOrder: b.DisplayOrder,
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}
