// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents the user entity. Password and RememberToken are
// authentication fields and are never serialized; the query layer
// additionally projects users through an explicit field allowlist.
type User struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	Name            string     `gorm:"not null;size:255" json:"name"`
	Email           string     `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password        string     `gorm:"not null;size:255" json:"-"`
	RememberToken   string     `gorm:"size:100" json:"-"`
	EmailVerifiedAt *time.Time `json:"email_verified_at"`
	IsAdmin         bool       `gorm:"default:false" json:"is_admin"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName overrides the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook to handle business logic before user creation
func (u *User) BeforeCreate(tx *gorm.DB) error {
	// Email should be lowercase
	u.Email = strings.ToLower(u.Email)
	return nil
}
