package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/model"
)

// TagRepository covers all three tag kinds. The kinds stay independent at
// the storage level (per-kind tables and name uniqueness).
type TagRepository interface {
	CreateFocus(ctx context.Context, focus *model.Focus) error
	ListFocuses(ctx context.Context) ([]model.Focus, error)
	GetFocusesByIDs(ctx context.Context, ids []string) ([]model.Focus, error)

	CreateMaterial(ctx context.Context, material *model.Material) error
	ListMaterials(ctx context.Context) ([]model.Material, error)
	GetMaterialsByIDs(ctx context.Context, ids []string) ([]model.Material, error)

	CreateLabel(ctx context.Context, label *model.Label) error
	ListLabels(ctx context.Context) ([]model.Label, error)
	GetLabelsByIDs(ctx context.Context, ids []string) ([]model.Label, error)
}

type tagRepo struct {
	db *gorm.DB
}

// NewTagRepo creates a TagRepository instance.
func NewTagRepo(db *gorm.DB) TagRepository {
	return &tagRepo{db: db}
}

// ── Focus ──

func (r *tagRepo) CreateFocus(ctx context.Context, focus *model.Focus) error {
	return r.db.WithContext(ctx).Create(focus).Error
}

func (r *tagRepo) ListFocuses(ctx context.Context) ([]model.Focus, error) {
	var focuses []model.Focus
	err := r.db.WithContext(ctx).Order("name ASC").Find(&focuses).Error
	return focuses, err
}

func (r *tagRepo) GetFocusesByIDs(ctx context.Context, ids []string) ([]model.Focus, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var focuses []model.Focus
	err := r.db.WithContext(ctx).Where("focus_id IN ?", ids).Find(&focuses).Error
	return focuses, err
}

// ── Material ──

func (r *tagRepo) CreateMaterial(ctx context.Context, material *model.Material) error {
	return r.db.WithContext(ctx).Create(material).Error
}

func (r *tagRepo) ListMaterials(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	err := r.db.WithContext(ctx).Order("name ASC").Find(&materials).Error
	return materials, err
}

func (r *tagRepo) GetMaterialsByIDs(ctx context.Context, ids []string) ([]model.Material, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var materials []model.Material
	err := r.db.WithContext(ctx).Where("material_id IN ?", ids).Find(&materials).Error
	return materials, err
}

// ── Label ──

func (r *tagRepo) CreateLabel(ctx context.Context, label *model.Label) error {
	return r.db.WithContext(ctx).Create(label).Error
}

func (r *tagRepo) ListLabels(ctx context.Context) ([]model.Label, error) {
	var labels []model.Label
	err := r.db.WithContext(ctx).Order("name ASC").Find(&labels).Error
	return labels, err
}

func (r *tagRepo) GetLabelsByIDs(ctx context.Context, ids []string) ([]model.Label, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var labels []model.Label
	err := r.db.WithContext(ctx).Where("label_id IN ?", ids).Find(&labels).Error
	return labels, err
}
