package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/model"
)

// LanguageRepository is the language data access interface.
type LanguageRepository interface {
	Create(ctx context.Context, language *model.Language) error
	List(ctx context.Context) ([]model.Language, error)
	GetByCode(ctx context.Context, code string) (*model.Language, error)
}

type languageRepo struct {
	db *gorm.DB
}

// NewLanguageRepo creates a LanguageRepository instance.
func NewLanguageRepo(db *gorm.DB) LanguageRepository {
	return &languageRepo{db: db}
}

func (r *languageRepo) Create(ctx context.Context, language *model.Language) error {
	return r.db.WithContext(ctx).Create(language).Error
}

func (r *languageRepo) List(ctx context.Context) ([]model.Language, error) {
	var languages []model.Language
	err := r.db.WithContext(ctx).Order("name ASC").Find(&languages).Error
	return languages, err
}

func (r *languageRepo) GetByCode(ctx context.Context, code string) (*model.Language, error) {
	var language model.Language
	err := r.db.WithContext(ctx).
		Where("LOWER(code) = ?", strings.ToLower(code)).
		First(&language).Error
	if err != nil {
		return nil, err
	}
	return &language, nil
}
