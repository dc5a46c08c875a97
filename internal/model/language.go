package model

// Language is a UI language supported by the catalog.
type Language struct {
	LanguageID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"language_id"`
	Code       string `gorm:"type:varchar(10);not null;uniqueIndex"          json:"code"`
	Name       string `gorm:"type:varchar(50);not null"                      json:"name"`
}

// TableName maps the model to its table.
func (Language) TableName() string { return "languages" }
