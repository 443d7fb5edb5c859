package models

// User is an account holder. Every company belongs to exactly one user.
type User struct {
	BaseModel
	Name          string `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
	Email         string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	EmailVerified bool   `json:"email_verified" gorm:"not null;default:false"`
	Image         string `json:"image,omitempty" gorm:"size:1024"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
