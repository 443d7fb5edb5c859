package models

// CompanyStatus is a pipeline stage. Any stage may move to any other stage.
type CompanyStatus string

const (
	CompanyStatusLead        CompanyStatus = "lead"
	CompanyStatusNegotiating CompanyStatus = "negotiating"
	CompanyStatusWon         CompanyStatus = "won"
	CompanyStatusLost        CompanyStatus = "lost"
)

// CompanyStatuses lists the stages in board column order
var CompanyStatuses = []CompanyStatus{
	CompanyStatusLead,
	CompanyStatusNegotiating,
	CompanyStatusWon,
	CompanyStatusLost,
}

// LeadSource describes where a lead came from
type LeadSource string

const (
	LeadSourceWebsite  LeadSource = "website"
	LeadSourceReferral LeadSource = "referral"
	LeadSourceColdCall LeadSource = "cold_call"
	LeadSourceOther    LeadSource = "other"
)

// IsValid checks if the CompanyStatus is valid
func (s CompanyStatus) IsValid() bool {
	switch s {
	case CompanyStatusLead, CompanyStatusNegotiating, CompanyStatusWon, CompanyStatusLost:
		return true
	}
	return false
}

// IsValid checks if the LeadSource is valid
func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceWebsite, LeadSourceReferral, LeadSourceColdCall, LeadSourceOther:
		return true
	}
	return false
}
