package models

import "github.com/google/uuid"

// ProviderEmail identifies credentials created through email/password sign-up
const ProviderEmail = "email"

// Account holds the credentials a user signs in with
type Account struct {
	BaseModel
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	User       *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProviderID string    `json:"provider_id" gorm:"size:50;not null"`
	AccountID  string    `json:"account_id" gorm:"size:255;not null"`
	Password   string    `json:"-" gorm:"size:255"`
}

// TableName returns the table name for Account
func (Account) TableName() string {
	return "accounts"
}
