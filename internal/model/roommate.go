package model

// Roommate is a user's roommate-matching profile, distinct from the
// account itself. Groups reference roommates, conversations reference users.
type Roommate struct {
	ID            int64   `json:"id"`
	User          User    `json:"user"`
	Description   string  `json:"description,omitempty"`
	MoveInDate    string  `json:"move_in_date,omitempty"`
	StayLength    int     `json:"stay_length,omitempty"`
	Occupation    string  `json:"occupation,omitempty"` // S, E, N (student, employed, not employed)
	Budget        float64 `json:"roommate_budget,omitempty"`
	SmokeFriendly bool    `json:"smoke_friendly,omitempty"`
	PetFriendly   bool    `json:"pet_friendly,omitempty"`
	OpenToMessage bool    `json:"open_to_message,omitempty"`
}
