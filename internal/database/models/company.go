package models

import (
	"github.com/google/uuid"
)

// Company is a lead tracked on the pipeline board
type Company struct {
	BaseModel
	UserID              uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index"`
	User                *User         `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Name                string        `json:"name" gorm:"size:255;not null"`
	Status              CompanyStatus `json:"status" gorm:"type:varchar(20);not null;default:'lead';check:chk_companies_status,status IN ('lead','negotiating','won','lost')"`
	Website             *string       `json:"website"`
	Phone               *string       `json:"phone" gorm:"size:50"`
	PrimaryContactName  *string       `json:"primary_contact_name" gorm:"size:255"`
	PrimaryContactEmail *string       `json:"primary_contact_email" gorm:"size:255"`
	// PotentialValue is stored in minor currency units
	PotentialValue int64         `json:"potential_value" gorm:"not null;default:0"`
	LeadSource     LeadSource    `json:"lead_source" gorm:"type:varchar(20);not null;default:'other'"`
	Interactions   []Interaction `json:"-" gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Company
func (Company) TableName() string {
	return "companies"
}
