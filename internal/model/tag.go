package model

// The three tag kinds — Focus, Material, Label — are structurally
// near-identical but independent. Each kind lives in its own table so
// name uniqueness is enforced per kind.

// Focus is a training emphasis tag (e.g. Dribbling, Teamwork).
type Focus struct {
	FocusID     string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"focus_id"`
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Description string     `gorm:"type:text;not null;default:''"                  json:"description,omitempty"`
	Languages   []Language `gorm:"many2many:focus_languages"                      json:"languages,omitempty"`
}

// TableName maps the model to its table.
func (Focus) TableName() string { return "focuses" }

// Material is an equipment tag (e.g. Basketball, Halfcourt, Hoop).
type Material struct {
	MaterialID  string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"material_id"`
	Name        string     `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Description string     `gorm:"type:text;not null;default:''"                  json:"description,omitempty"`
	Languages   []Language `gorm:"many2many:material_languages"                   json:"languages,omitempty"`
}

// TableName maps the model to its table.
func (Material) TableName() string { return "materials" }

// Label is a free-form categorization tag with a color swatch.
type Label struct {
	LabelID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"  json:"label_id"`
	Name      string     `gorm:"type:varchar(100);not null;uniqueIndex"          json:"name"`
	Color     string     `gorm:"type:varchar(7);not null;default:'#007bff'"      json:"color"`
	Languages []Language `gorm:"many2many:label_languages"                       json:"languages,omitempty"`
}

// TableName maps the model to its table.
func (Label) TableName() string { return "labels" }
