package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is a denormalized side-effect record. It is addressed by
// recipient email and carries no back-reference to projects or bids.
type Notification struct {
	BaseModel
	Email   string         `gorm:"not null;index" json:"email"`
	Type    string         `gorm:"not null" json:"type"` // "project_submitted", "new_bid", ...
	Title   string         `gorm:"not null" json:"title"`
	Message string         `json:"message"`
	Data    datatypes.JSON `json:"data,omitempty"` // {"project_id": "...", "bid_id": "..."}
	IsRead  bool           `gorm:"default:false" json:"is_read"`
	ReadAt  *time.Time     `json:"read_at,omitempty"`
}
