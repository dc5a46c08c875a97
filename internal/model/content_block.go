package model

// Content block kinds. Both surfaces are structurally identical; the kind
// selects the UI slot the block is shown in.
const (
	ContentKindAbout     = "about"
	ContentKindImpressum = "impressum"
)

// ContentBlock is an admin-authored markdown snippet shown in a fixed
// informational surface. Blocks are mutated only through the admin API
// and are read-only everywhere else.
type ContentBlock struct {
	BlockID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"block_id"`
	Kind         string `gorm:"type:varchar(20);not null"                      json:"kind"`
	Title        string `gorm:"type:varchar(200);not null"                     json:"title"`
	Body         string `gorm:"type:text;not null;default:''"                  json:"body"`
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	DisplayOrder int    `gorm:"not null;default:0"                             json:"display_order"`

	Timestamps
}

// TableName maps the model to its table.
func (ContentBlock) TableName() string { return "content_blocks" }

// IsValidContentKind reports whether kind names a known content surface.
func IsValidContentKind(kind string) bool {
	return kind == ContentKindAbout || kind == ContentKindImpressum
}
