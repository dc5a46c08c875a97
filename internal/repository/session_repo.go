package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/model"
)

// SessionRepository is the training-session data access interface.
// Owner-scoped reads never reveal sessions belonging to other accounts:
// a mismatched owner behaves exactly like a missing row.
type SessionRepository interface {
	// CreateWithEntries persists the session and all its entries in one
	// transaction; a failure rolls back everything.
	CreateWithEntries(ctx context.Context, session *model.TrainingSession, entries []model.SessionEntry) error
	GetByIDForOwner(ctx context.Context, id, ownerID string) (*model.TrainingSession, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.TrainingSession, error)
	Update(ctx context.Context, session *model.TrainingSession) error
	Delete(ctx context.Context, id, ownerID string) error

	AddEntry(ctx context.Context, entry *model.SessionEntry) error
	GetEntry(ctx context.Context, entryID, sessionID string) (*model.SessionEntry, error)
	UpdateEntry(ctx context.Context, entry *model.SessionEntry) error
	DeleteEntry(ctx context.Context, entryID, sessionID string) error
	MaxPosition(ctx context.Context, sessionID string) (int, error)
}

type sessionRepo struct {
	db *gorm.DB
}

// NewSessionRepo creates a SessionRepository instance.
func NewSessionRepo(db *gorm.DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) CreateWithEntries(ctx context.Context, session *model.TrainingSession, entries []model.SessionEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(session).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].SessionID = session.SessionID
			if err := tx.Create(&entries[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sessionRepo) GetByIDForOwner(ctx context.Context, id, ownerID string) (*model.TrainingSession, error) {
	var session model.TrainingSession
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("session_entries.position ASC")
		}).
		Preload("Entries.Game").
		Preload("Entries.Game.Focuses").
		Preload("Entries.Game.Materials").
		Preload("Entries.Game.Labels").
		Preload("Entries.Game.Languages").
		Where("session_id = ? AND created_by = ?", id, ownerID).
		First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.TrainingSession, error) {
	var sessions []model.TrainingSession
	err := r.db.WithContext(ctx).
		Preload("Entries", func(db *gorm.DB) *gorm.DB {
			return db.Order("session_entries.position ASC")
		}).
		Preload("Entries.Game").
		Where("created_by = ?", ownerID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepo) Update(ctx context.Context, session *model.TrainingSession) error {
	return r.db.WithContext(ctx).
		Model(&model.TrainingSession{}).
		Where("session_id = ?", session.SessionID).
		Updates(map[string]interface{}{
			"name":        session.Name,
			"description": session.Description,
			"updated_at":  gorm.Expr("NOW()"),
		}).Error
}

func (r *sessionRepo) Delete(ctx context.Context, id, ownerID string) error {
	return r.db.WithContext(ctx).
		Where("session_id = ? AND created_by = ?", id, ownerID).
		Delete(&model.TrainingSession{}).Error
}

// ── entries ──

func (r *sessionRepo) AddEntry(ctx context.Context, entry *model.SessionEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *sessionRepo) GetEntry(ctx context.Context, entryID, sessionID string) (*model.SessionEntry, error) {
	var entry model.SessionEntry
	err := r.db.WithContext(ctx).
		Where("entry_id = ? AND session_id = ?", entryID, sessionID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *sessionRepo) UpdateEntry(ctx context.Context, entry *model.SessionEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *sessionRepo) DeleteEntry(ctx context.Context, entryID, sessionID string) error {
	return r.db.WithContext(ctx).
		Where("entry_id = ? AND session_id = ?", entryID, sessionID).
		Delete(&model.SessionEntry{}).Error
}

func (r *sessionRepo) MaxPosition(ctx context.Context, sessionID string) (int, error) {
	var max int
	err := r.db.WithContext(ctx).
		Model(&model.SessionEntry{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&max).Error
	return max, err
}
