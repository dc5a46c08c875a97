package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/internal/model"
)

// GameFilter is the explicit query specification for catalog listings.
// Every criterion is optional; absent criteria are not applied. Supplied
// criteria are combined with AND.
type GameFilter struct {
	Search        string   // case-insensitive substring over name, description, variants (OR)
	FocusNames    []string // any-of
	PlayerCount   string   // exact
	Duration      string   // exact
	MaterialNames []string // any-of
	LabelNames    []string // any-of
	LanguageCodes []string // any-of
}

// GameRepository is the catalog data access interface. "Visible" methods
// apply the public visibility predicate: active AND NOT pending suggestion.
type GameRepository interface {
	Create(ctx context.Context, game *model.Game) error
	GetVisibleByID(ctx context.Context, id string) (*model.Game, error)
	ListVisible(ctx context.Context, filter GameFilter, offset, limit int) ([]model.Game, error)
	CountVisible(ctx context.Context, filter GameFilter) (int64, error)
	ListVisibleByIDs(ctx context.Context, ids []string) ([]model.Game, error)
	ListAllVisible(ctx context.Context) ([]model.Game, error)
}

type gameRepo struct {
	db *gorm.DB
}

// NewGameRepo creates a GameRepository instance.
func NewGameRepo(db *gorm.DB) GameRepository {
	return &gameRepo{db: db}
}

func (r *gameRepo) Create(ctx context.Context, game *model.Game) error {
	return r.db.WithContext(ctx).Create(game).Error
}

func (r *gameRepo) GetVisibleByID(ctx context.Context, id string) (*model.Game, error) {
	var game model.Game
	err := r.preloaded(r.visible(r.db.WithContext(ctx))).
		Where("games.game_id = ?", id).
		First(&game).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepo) ListVisible(ctx context.Context, filter GameFilter, offset, limit int) ([]model.Game, error) {
	var games []model.Game
	err := r.preloaded(r.applyFilter(r.visible(r.db.WithContext(ctx)), filter)).
		Order("games.name ASC, games.game_id ASC").
		Offset(offset).
		Limit(limit).
		Find(&games).Error
	return games, err
}

func (r *gameRepo) CountVisible(ctx context.Context, filter GameFilter) (int64, error) {
	var total int64
	err := r.applyFilter(r.visible(r.db.WithContext(ctx).Model(&model.Game{})), filter).
		Count(&total).Error
	return total, err
}

func (r *gameRepo) ListVisibleByIDs(ctx context.Context, ids []string) ([]model.Game, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var games []model.Game
	err := r.preloaded(r.visible(r.db.WithContext(ctx))).
		Where("games.game_id IN ?", ids).
		Find(&games).Error
	return games, err
}

func (r *gameRepo) ListAllVisible(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	err := r.preloaded(r.visible(r.db.WithContext(ctx))).
		Order("games.name ASC, games.game_id ASC").
		Find(&games).Error
	return games, err
}

// visible restricts a query to publicly listable games.
func (r *gameRepo) visible(db *gorm.DB) *gorm.DB {
	return db.Where("games.is_active = ? AND NOT (games.is_suggestion AND NOT games.approved)", true)
}

// preloaded eager-loads the tag and language associations.
func (r *gameRepo) preloaded(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Focuses").
		Preload("Materials").
		Preload("Labels").
		Preload("Languages")
}

// likeEscaper neutralizes the LIKE metacharacters so user-supplied search
// text matches literally: "a_c" must not match "abc".
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// applyFilter translates the filter specification into query clauses.
// Multi-valued tag criteria are expressed as IN-subqueries over the join
// tables, so a game matching through several tag rows still appears once.
func (r *gameRepo) applyFilter(db *gorm.DB, f GameFilter) *gorm.DB {
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		db = db.Where(
			"games.name ILIKE ? OR games.description ILIKE ? OR games.variants ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	if f.PlayerCount != "" {
		db = db.Where("games.player_count = ?", f.PlayerCount)
	}

	if f.Duration != "" {
		db = db.Where("games.duration = ?", f.Duration)
	}

	if len(f.FocusNames) > 0 {
		sub := r.db.Table("game_focuses").
			Select("game_focuses.game_id").
			Joins("JOIN focuses ON focuses.focus_id = game_focuses.focus_id").
			Where("focuses.name IN ?", f.FocusNames)
		db = db.Where("games.game_id IN (?)", sub)
	}

	if len(f.MaterialNames) > 0 {
		sub := r.db.Table("game_materials").
			Select("game_materials.game_id").
			Joins("JOIN materials ON materials.material_id = game_materials.material_id").
			Where("materials.name IN ?", f.MaterialNames)
		db = db.Where("games.game_id IN (?)", sub)
	}

	if len(f.LabelNames) > 0 {
		sub := r.db.Table("game_labels").
			Select("game_labels.game_id").
			Joins("JOIN labels ON labels.label_id = game_labels.label_id").
			Where("labels.name IN ?", f.LabelNames)
		db = db.Where("games.game_id IN (?)", sub)
	}

	if len(f.LanguageCodes) > 0 {
		sub := r.db.Table("game_languages").
			Select("game_languages.game_id").
			Joins("JOIN languages ON languages.language_id = game_languages.language_id").
			Where("languages.code IN ?", f.LanguageCodes)
		db = db.Where("games.game_id IN (?)", sub)
	}

	return db
}
