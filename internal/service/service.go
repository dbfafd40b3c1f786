// Package service orchestrates the group-formation workflow against the
// marketplace API: membership (join/leave/apply/manage), invitations and
// conversation resolution.
//
// Two rules hold everywhere. Preconditions are checked locally before any
// write is issued, so an actor who is not allowed to trigger a transition
// never reaches the server. And after every successful mutation the
// authoritative record is re-fetched rather than trusting a locally
// computed next state; the server enforces capacity and authorization, so
// success must not be assumed to produce the state the client expected.
package service

// Actor is the acting identity for a service call, passed explicitly
// rather than read from ambient session state. RoommateID is zero when
// the user has no roommate profile.
type Actor struct {
	UserID     int64
	RoommateID int64
}

// HasRoommateProfile reports whether the actor can hold group membership.
func (a Actor) HasRoommateProfile() bool {
	return a.RoommateID != 0
}
