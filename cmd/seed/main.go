package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/monsdar/MiniGameArchive/config"
	"github.com/monsdar/MiniGameArchive/internal/model"
	"github.com/monsdar/MiniGameArchive/pkg/database"
	applogger "github.com/monsdar/MiniGameArchive/pkg/logger"
)

// Seeds the database with the supported languages, a small tag taxonomy,
// a handful of sample games and the informational surfaces. Safe to run
// repeatedly: existing rows are matched by their unique names.
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("acquiring sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	if err := seed(db, logger); err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	logger.Info("seeding complete")
}

func seed(db *gorm.DB, logger *zap.Logger) error {
	languages, err := seedLanguages(db)
	if err != nil {
		return err
	}
	focuses, err := seedFocuses(db)
	if err != nil {
		return err
	}
	materials, err := seedMaterials(db)
	if err != nil {
		return err
	}
	labels, err := seedLabels(db)
	if err != nil {
		return err
	}
	if err := seedGames(db, logger, languages, focuses, materials, labels); err != nil {
		return err
	}
	return seedContent(db)
}

func seedLanguages(db *gorm.DB) (map[string]model.Language, error) {
	rows := []model.Language{
		{Code: "en", Name: "English"},
		{Code: "de", Name: "Deutsch"},
	}
	result := make(map[string]model.Language, len(rows))
	for _, row := range rows {
		var lang model.Language
		if err := db.Where(model.Language{Code: row.Code}).
			Attrs(model.Language{Name: row.Name}).
			FirstOrCreate(&lang).Error; err != nil {
			return nil, err
		}
		result[lang.Code] = lang
	}
	return result, nil
}

func seedFocuses(db *gorm.DB) (map[string]model.Focus, error) {
	names := []string{"Warmup", "Passing", "Shooting", "Conditioning", "Teamwork"}
	result := make(map[string]model.Focus, len(names))
	for _, name := range names {
		var focus model.Focus
		if err := db.Where(model.Focus{Name: name}).FirstOrCreate(&focus).Error; err != nil {
			return nil, err
		}
		result[name] = focus
	}
	return result, nil
}

func seedMaterials(db *gorm.DB) (map[string]model.Material, error) {
	names := []string{"Ball", "Cones", "Bibs", "Goals", "None"}
	result := make(map[string]model.Material, len(names))
	for _, name := range names {
		var material model.Material
		if err := db.Where(model.Material{Name: name}).FirstOrCreate(&material).Error; err != nil {
			return nil, err
		}
		result[name] = material
	}
	return result, nil
}

func seedLabels(db *gorm.DB) (map[string]model.Label, error) {
	rows := []model.Label{
		{Name: "Beginner", Color: "#28a745"},
		{Name: "Advanced", Color: "#dc3545"},
		{Name: "Indoor", Color: "#007bff"},
	}
	result := make(map[string]model.Label, len(rows))
	for _, row := range rows {
		var label model.Label
		if err := db.Where(model.Label{Name: row.Name}).
			Attrs(model.Label{Color: row.Color}).
			FirstOrCreate(&label).Error; err != nil {
			return nil, err
		}
		result[label.Name] = label
	}
	return result, nil
}

func seedGames(
	db *gorm.DB,
	logger *zap.Logger,
	languages map[string]model.Language,
	focuses map[string]model.Focus,
	materials map[string]model.Material,
	labels map[string]model.Label,
) error {
	games := []model.Game{
		{
			Name:        "Passing Square",
			Description: "Four players pass the ball around a square of cones. On the coach's signal the direction reverses.",
			PlayerCount: "3-4",
			Duration:    "10min",
			Variants:    "Use two balls at once for advanced groups.",
			IsActive:    true,
			Focuses:     []model.Focus{focuses["Passing"], focuses["Warmup"]},
			Materials:   []model.Material{materials["Ball"], materials["Cones"]},
			Labels:      []model.Label{labels["Beginner"]},
			Languages:   []model.Language{languages["en"], languages["de"]},
		},
		{
			Name:        "Shadow Sprint",
			Description: "Pairs sprint across the pitch. The trailing player mirrors every move of the leader.",
			PlayerCount: "1-2",
			Duration:    "5min",
			IsActive:    true,
			Focuses:     []model.Focus{focuses["Conditioning"]},
			Materials:   []model.Material{materials["None"]},
			Labels:      []model.Label{labels["Beginner"], labels["Indoor"]},
			Languages:   []model.Language{languages["en"]},
		},
		{
			Name:        "Small-Sided Finish",
			Description: "Three versus three on small goals. Every goal scored with the first touch counts double.",
			PlayerCount: "5-6",
			Duration:    "20min",
			IsActive:    true,
			Focuses:     []model.Focus{focuses["Shooting"], focuses["Teamwork"]},
			Materials:   []model.Material{materials["Ball"], materials["Goals"], materials["Bibs"]},
			Labels:      []model.Label{labels["Advanced"]},
			Languages:   []model.Language{languages["en"], languages["de"]},
		},
	}

	for i := range games {
		var existing model.Game
		err := db.Where("name = ?", games[i].Name).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&games[i]).Error; err != nil {
			return err
		}
		logger.Info("seeded game", zap.String("name", games[i].Name))
	}
	return nil
}

func seedContent(db *gorm.DB) error {
	blocks := []model.ContentBlock{
		{
			Kind:         model.ContentKindAbout,
			Title:        "About",
			Body:         "A catalog of small games and drills for coaches. Browse, filter and combine games into **training sessions**.",
			IsActive:     true,
			DisplayOrder: 1,
		},
		{
			Kind:         model.ContentKindImpressum,
			Title:        "Impressum",
			Body:         "Responsible for this site: the coaching staff. Contact us by mail.",
			IsActive:     true,
			DisplayOrder: 1,
		},
	}
	for _, block := range blocks {
		var existing model.ContentBlock
		err := db.Where("kind = ? AND title = ?", block.Kind, block.Title).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}
		if err := db.Create(&block).Error; err != nil {
			return err
		}
	}
	return nil
}
