package models

import "time"

// AuditLog registra as alterações feitas pelo console no backend.
type AuditLog struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserEmail string `gorm:"size:100;index" json:"user_email"`
	Action    string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:64" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
