package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a person identity shared with AGORA. Workers link to a user
// for name/phone/email; dashboard operators also log in as users.
type User struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	Username  string     `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Password  string     `gorm:"size:255" json:"-"` // Hashed password, empty for LDAP users
	Name      string     `gorm:"size:100;not null" json:"name"`
	Email     string     `gorm:"size:255" json:"email"`
	Phone     *string    `gorm:"size:30" json:"phone"`
	AvatarURL *string    `gorm:"size:500" json:"avatar_url"`
	Role      string     `gorm:"size:50;default:member" json:"role"`     // admin, manager, member, partner
	AuthType  string     `gorm:"size:20;default:local" json:"auth_type"` // local, ldap
	IsActive  bool       `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
