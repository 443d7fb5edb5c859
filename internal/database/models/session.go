package models

import (
	"time"

	"github.com/google/uuid"
)

// Session maps an opaque token to its user until ExpiresAt
type Session struct {
	BaseModel
	Token     string    `json:"-" gorm:"uniqueIndex;size:255;not null"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	User      *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null;index"`
	IPAddress string    `json:"ip_address,omitempty" gorm:"size:64"`
	UserAgent string    `json:"user_agent,omitempty" gorm:"size:512"`
}

// TableName returns the table name for Session
func (Session) TableName() string {
	return "sessions"
}

// ActiveAt reports whether the session may authorize a request at now.
// A session that expires exactly at now is already inactive.
func (s *Session) ActiveAt(now time.Time) bool {
	return now.Before(s.ExpiresAt)
}
