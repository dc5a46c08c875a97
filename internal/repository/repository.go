package repository

import "gorm.io/gorm"

// Repository aggregates all repository interfaces.
type Repository struct {
	Game       GameRepository
	Tag        TagRepository
	Language   LanguageRepository
	Session    SessionRepository
	Suggestion SuggestionRepository
	Content    ContentRepository
	Account    AccountRepository
}

// NewRepository wires the gorm-backed repositories.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Game:       NewGameRepo(db),
		Tag:        NewTagRepo(db),
		Language:   NewLanguageRepo(db),
		Session:    NewSessionRepo(db),
		Suggestion: NewSuggestionRepo(db),
		Content:    NewContentRepo(db),
		Account:    NewAccountRepo(db),
	}
}
