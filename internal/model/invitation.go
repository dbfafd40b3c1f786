package model

import "time"

// InvitationState classifies an invitation for display.
type InvitationState string

const (
	InvitationPending  InvitationState = "pending"
	InvitationAccepted InvitationState = "accepted"
	InvitationRejected InvitationState = "rejected"
)

// Invitation is an offer for a roommate to join a group. Accepted is
// tri-state: nil while pending, then set exactly once by the recipient.
type Invitation struct {
	ID               int64     `json:"id"`
	Group            int64     `json:"group"`
	GroupName        string    `json:"group_name,omitempty"`
	InvitedBy        int64     `json:"invited_by"`
	InvitedByEmail   string    `json:"invited_by_email,omitempty"`
	InvitedUser      int64     `json:"invited_user"`
	InvitedUserEmail string    `json:"invited_user_email,omitempty"`
	Accepted         *bool     `json:"accepted"`
	CreatedAt        time.Time `json:"created_at"`
}

// State derives the display classification from the accepted flag.
func (i *Invitation) State() InvitationState {
	switch {
	case i.Accepted == nil:
		return InvitationPending
	case *i.Accepted:
		return InvitationAccepted
	}
	return InvitationRejected
}

func (i *Invitation) Pending() bool {
	return i.Accepted == nil
}

// Inbox is the invitation listing split the API returns: invitations
// addressed to the caller's roommate profile and ones the caller sent.
type Inbox struct {
	Received []Invitation `json:"received"`
	Sent     []Invitation `json:"sent"`
}

// ClassifiedInvitations buckets invitations by state, preserving order.
type ClassifiedInvitations struct {
	Pending  []Invitation
	Accepted []Invitation
	Rejected []Invitation
}

// ClassifyInvitations splits invitations into pending/accepted/rejected.
func ClassifyInvitations(invites []Invitation) ClassifiedInvitations {
	var c ClassifiedInvitations
	for _, inv := range invites {
		switch inv.State() {
		case InvitationPending:
			c.Pending = append(c.Pending, inv)
		case InvitationAccepted:
			c.Accepted = append(c.Accepted, inv)
		default:
			c.Rejected = append(c.Rejected, inv)
		}
	}
	return c
}
