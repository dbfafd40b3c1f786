package model

// User is a marketplace account. A user may additionally carry a roommate
// profile, which is the identity used for group membership.
type User struct {
	ID              int64    `json:"id"`
	Email           string   `json:"email"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	City            string   `json:"city,omitempty"`
	YearlyIncome    *float64 `json:"yearly_income,omitempty"`
	RoommateProfile *int64   `json:"roommate_profile,omitempty"`
}
