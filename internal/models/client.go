package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a customer company. Owned by AGORA; read-only here.
type Client struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	ContactName *string   `gorm:"size:100" json:"contact_name"`
	Phone       *string   `gorm:"size:30" json:"phone"`
	Email       *string   `gorm:"size:255" json:"email"`
	Address     *string   `gorm:"size:500" json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Client) TableName() string { return "clients" }

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
