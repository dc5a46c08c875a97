package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/model"
)

// ContentRepository is the content-block data access interface.
type ContentRepository interface {
	Create(ctx context.Context, block *model.ContentBlock) error
	GetByID(ctx context.Context, id string) (*model.ContentBlock, error)
	ListActiveByKind(ctx context.Context, kind string) ([]model.ContentBlock, error)
	ListByKind(ctx context.Context, kind string) ([]model.ContentBlock, error)
	Update(ctx context.Context, block *model.ContentBlock) error
	Delete(ctx context.Context, id string) error
}

type contentRepo struct {
	db *gorm.DB
}

// NewContentRepo creates a ContentRepository instance.
func NewContentRepo(db *gorm.DB) ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) Create(ctx context.Context, block *model.ContentBlock) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *contentRepo) GetByID(ctx context.Context, id string) (*model.ContentBlock, error) {
	var block model.ContentBlock
	err := r.db.WithContext(ctx).Where("block_id = ?", id).First(&block).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *contentRepo) ListActiveByKind(ctx context.Context, kind string) ([]model.ContentBlock, error) {
	var blocks []model.ContentBlock
	err := r.db.WithContext(ctx).
		Where("kind = ? AND is_active = ?", kind, true).
		Order("display_order ASC, created_at ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *contentRepo) ListByKind(ctx context.Context, kind string) ([]model.ContentBlock, error) {
	var blocks []model.ContentBlock
	err := r.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("display_order ASC, created_at ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *contentRepo) Update(ctx context.Context, block *model.ContentBlock) error {
	return r.db.WithContext(ctx).Save(block).Error
}

func (r *contentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("block_id = ?", id).
		Delete(&model.ContentBlock{}).Error
}
