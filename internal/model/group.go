package model

// GroupStatus is the single-letter status code the marketplace API uses
// for a group's position in the application workflow.
type GroupStatus string

const (
	StatusOpen        GroupStatus = "O"
	StatusPrivate     GroupStatus = "P"
	StatusFilled      GroupStatus = "F"
	StatusSent        GroupStatus = "S"
	StatusUnderReview GroupStatus = "U"
	StatusInvited     GroupStatus = "I"
	StatusRejected    GroupStatus = "R"
)

func (s GroupStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusPrivate, StatusFilled, StatusSent,
		StatusUnderReview, StatusInvited, StatusRejected:
		return true
	}
	return false
}

func (s GroupStatus) Label() string {
	switch s {
	case StatusOpen:
		return "Open"
	case StatusPrivate:
		return "Private"
	case StatusFilled:
		return "Filled"
	case StatusSent:
		return "Sent"
	case StatusUnderReview:
		return "Under Review"
	case StatusInvited:
		return "Invited"
	case StatusRejected:
		return "Rejected"
	}
	return string(s)
}

// PreApplication reports whether the group has not yet applied to its
// listing. Only these states may be turned into an application by the
// group owner.
func (s GroupStatus) PreApplication() bool {
	return s == StatusOpen || s == StatusPrivate || s == StatusFilled
}

// UnderManagement reports whether the listing owner may still move the
// group through the review pipeline. Rejected is terminal; there is no
// path back to Open/Private/Filled either.
func (s GroupStatus) UnderManagement() bool {
	return s == StatusSent || s == StatusUnderReview || s == StatusInvited
}

// ManageTarget reports whether s is a status the listing owner may assign
// to an application.
func (s GroupStatus) ManageTarget() bool {
	return s == StatusUnderReview || s == StatusRejected || s == StatusInvited
}

// CanTransition reports whether the status machine permits moving a group
// from s to next, regardless of who is asking. Actor checks live in the
// services.
func (s GroupStatus) CanTransition(next GroupStatus) bool {
	switch {
	case next == StatusSent:
		return s.PreApplication()
	case next.ManageTarget():
		return s.UnderManagement()
	}
	return false
}

// Group is a candidate household of roommates formed against a listing.
// The owner is always implicitly a member.
type Group struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	MoveInDate  string      `json:"move_in_date"`
	MoveInReady bool        `json:"move_in_ready"`
	Status      GroupStatus `json:"group_status"`
	Listing     int64       `json:"listing"`
	Owner       Roommate    `json:"owner"`
	Members     []Roommate  `json:"members"`
}

// HasMember reports whether the roommate profile is in the members set.
func (g *Group) HasMember(roommateID int64) bool {
	for _, m := range g.Members {
		if m.ID == roommateID {
			return true
		}
	}
	return false
}

// HasMemberUser reports whether the user (by account id, not roommate
// profile id) is in the members set.
func (g *Group) HasMemberUser(userID int64) bool {
	for _, m := range g.Members {
		if m.User.ID == userID {
			return true
		}
	}
	return false
}

func (g *Group) IsOwner(roommateID int64) bool {
	return g.Owner.ID == roommateID
}

func (g *Group) IsOwnerUser(userID int64) bool {
	return g.Owner.User.ID == userID
}

// GroupForm is the create/edit payload. Validated client-side before the
// request is issued; the server validates again.
type GroupForm struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Description string      `json:"description,omitempty" validate:"max=1000"`
	MoveInDate  string      `json:"move_in_date" validate:"required,apidate"`
	MoveInReady bool        `json:"move_in_ready"`
	Status      GroupStatus `json:"group_status" validate:"required,groupstatus"`
	MemberIDs   []int64     `json:"member_ids,omitempty"`
	Listing     int64       `json:"listing,omitempty"`
}
