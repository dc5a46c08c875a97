package model

// Account roles.
const (
	RoleCoach = "coach"
	RoleAdmin = "admin"
)

// Account is a registered user. Coaches own training sessions and submit
// game suggestions; admins additionally moderate suggestions and manage
// content blocks.
type Account struct {
	AccountID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"account_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'coach'"      json:"role"`

	Timestamps
}

// TableName maps the model to its table.
func (Account) TableName() string { return "accounts" }
