package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Interaction is one immutable entry in a company's log
type Interaction struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `json:"company_id" gorm:"type:uuid;not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// TableName returns the table name for Interaction
func (Interaction) TableName() string {
	return "interactions"
}

// BeforeCreate sets the UUID if not already set
func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
