package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func accepted(v bool) *bool { return &v }

func TestInvitationState(t *testing.T) {
	pending := Invitation{ID: 1}
	assert.Equal(t, InvitationPending, pending.State())
	assert.True(t, pending.Pending())

	yes := Invitation{ID: 2, Accepted: accepted(true)}
	assert.Equal(t, InvitationAccepted, yes.State())
	assert.False(t, yes.Pending())

	no := Invitation{ID: 3, Accepted: accepted(false)}
	assert.Equal(t, InvitationRejected, no.State())
	assert.False(t, no.Pending())
}

func TestClassifyInvitations(t *testing.T) {
	invs := []Invitation{
		{ID: 1},
		{ID: 2, Accepted: accepted(true)},
		{ID: 3, Accepted: accepted(false)},
		{ID: 4},
	}

	c := ClassifyInvitations(invs)
	assert.Len(t, c.Pending, 2)
	assert.Len(t, c.Accepted, 1)
	assert.Len(t, c.Rejected, 1)

	// Order is preserved within a bucket.
	assert.Equal(t, int64(1), c.Pending[0].ID)
	assert.Equal(t, int64(4), c.Pending[1].ID)
}

func TestClassifyApplications(t *testing.T) {
	groups := []Group{
		{ID: 1, Status: StatusSent},
		{ID: 2, Status: StatusUnderReview},
		{ID: 3, Status: StatusOpen},
		{ID: 4, Status: StatusSent},
		{ID: 5, Status: StatusRejected},
		{ID: 6, Status: StatusInvited},
	}

	apps := ClassifyApplications(groups)
	assert.Len(t, apps.Sent, 2)
	assert.Len(t, apps.UnderReview, 1)
	assert.Len(t, apps.Invited, 1)
	assert.Len(t, apps.Rejected, 1)
	assert.Len(t, apps.Open, 1)
	assert.Empty(t, apps.Private)
	assert.Empty(t, apps.Filled)

	assert.Equal(t, int64(1), apps.Sent[0].ID)
	assert.Equal(t, int64(4), apps.Sent[1].ID)
}
