package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplerentals/rentals-go/internal/http/marketplace"
	"github.com/simplerentals/rentals-go/internal/model"
)

type fakeInvitationAPI struct {
	inbox  model.Inbox
	writes []string

	joinErr error
}

func (f *fakeInvitationAPI) Invitations(context.Context) (model.Inbox, error) {
	return f.inbox, nil
}

func (f *fakeInvitationAPI) CreateInvitation(_ context.Context, groupID, roommateID int64) (model.Invitation, error) {
	f.writes = append(f.writes, "create")
	return model.Invitation{ID: int64(100 + len(f.writes)), Group: groupID, InvitedUser: roommateID}, nil
}

func (f *fakeInvitationAPI) UpdateInvitation(_ context.Context, invitationID int64, acceptedFlag bool) (model.Invitation, error) {
	f.writes = append(f.writes, "update")
	for i, inv := range f.inbox.Received {
		if inv.ID == invitationID {
			f.inbox.Received[i].Accepted = &acceptedFlag
			return f.inbox.Received[i], nil
		}
	}
	return model.Invitation{}, &marketplace.APIError{Kind: marketplace.KindNotFound, Detail: "invitation not found"}
}

func (f *fakeInvitationAPI) DeleteInvitation(_ context.Context, invitationID int64) error {
	f.writes = append(f.writes, "delete")
	return nil
}

func (f *fakeInvitationAPI) JoinGroup(_ context.Context, groupID int64) (model.Group, error) {
	f.writes = append(f.writes, "join")
	if f.joinErr != nil {
		return model.Group{}, f.joinErr
	}
	return model.Group{ID: groupID}, nil
}

func newInvitationFixture() *fakeInvitationAPI {
	return &fakeInvitationAPI{
		inbox: model.Inbox{
			Received: []model.Invitation{
				{ID: 1, Group: 5, GroupName: "flatshare", InvitedBy: 1, InvitedUser: 2},
			},
			Sent: []model.Invitation{
				{ID: 2, Group: 6, GroupName: "other", InvitedBy: 2, InvitedUser: 3},
			},
		},
	}
}

func TestRespondAcceptJoinsGroup(t *testing.T) {
	api := newInvitationFixture()
	svc := NewInvitationService(api)

	inv, err := svc.Respond(context.Background(), 1, true, Actor{UserID: 20, RoommateID: 2})
	require.NoError(t, err)
	require.NotNil(t, inv.Accepted)
	assert.True(t, *inv.Accepted)
	assert.Equal(t, []string{"update", "join"}, api.writes)
}

func TestRespondRejectDoesNotJoin(t *testing.T) {
	api := newInvitationFixture()
	svc := NewInvitationService(api)

	inv, err := svc.Respond(context.Background(), 1, false, Actor{UserID: 20, RoommateID: 2})
	require.NoError(t, err)
	require.NotNil(t, inv.Accepted)
	assert.False(t, *inv.Accepted)
	assert.Equal(t, []string{"update"}, api.writes)
}

func TestRespondByNonRecipient(t *testing.T) {
	api := newInvitationFixture()
	svc := NewInvitationService(api)

	_, err := svc.Respond(context.Background(), 1, true, Actor{UserID: 30, RoommateID: 3})
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))
	assert.Empty(t, api.writes)
}

func TestRespondToAnsweredInvitation(t *testing.T) {
	api := newInvitationFixture()
	yes := true
	api.inbox.Received[0].Accepted = &yes
	svc := NewInvitationService(api)

	_, err := svc.Respond(context.Background(), 1, false, Actor{UserID: 20, RoommateID: 2})
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))
	assert.Empty(t, api.writes, "the accepted flag is write-once")
}

func TestRespondUnknownInvitation(t *testing.T) {
	api := newInvitationFixture()
	svc := NewInvitationService(api)

	_, err := svc.Respond(context.Background(), 42, true, Actor{UserID: 20, RoommateID: 2})
	require.Error(t, err)
	assert.True(t, marketplace.IsNotFound(err))
	assert.Empty(t, api.writes)
}

func TestRespondPartialAccept(t *testing.T) {
	api := newInvitationFixture()
	api.joinErr = &marketplace.APIError{Kind: marketplace.KindConflict, Detail: "group filled up"}
	svc := NewInvitationService(api)

	inv, err := svc.Respond(context.Background(), 1, true, Actor{UserID: 20, RoommateID: 2})
	require.Error(t, err)

	var partial *PartialAcceptError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, int64(1), partial.InvitationID)
	assert.Equal(t, int64(5), partial.GroupID)
	assert.True(t, marketplace.IsConflict(partial.Err))

	// The update stands; there is no rollback across the two calls.
	require.NotNil(t, inv.Accepted)
	assert.True(t, *inv.Accepted)
	assert.Equal(t, []string{"update", "join"}, api.writes)
}

func TestDeleteBySender(t *testing.T) {
	api := newInvitationFixture()
	svc := NewInvitationService(api)

	err := svc.Delete(context.Background(), 2, Actor{UserID: 20, RoommateID: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"delete"}, api.writes)
}

func TestDeleteByRecipient(t *testing.T) {
	api := newInvitationFixture()
	svc := NewInvitationService(api)

	err := svc.Delete(context.Background(), 1, Actor{UserID: 20, RoommateID: 2})
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))
	assert.Empty(t, api.writes)
}

func TestInvite(t *testing.T) {
	api := newInvitationFixture()
	svc := NewInvitationService(api)

	created, err := svc.Invite(context.Background(), 5, []int64{3, 4})
	require.NoError(t, err)
	assert.Len(t, created, 2)
	assert.Equal(t, []string{"create", "create"}, api.writes)
}

func TestInboxClassifies(t *testing.T) {
	api := newInvitationFixture()
	yes := true
	api.inbox.Sent[0].Accepted = &yes
	svc := NewInvitationService(api)

	received, sent, err := svc.Inbox(context.Background())
	require.NoError(t, err)
	assert.Len(t, received.Pending, 1)
	assert.Len(t, sent.Accepted, 1)
	assert.Empty(t, sent.Pending)
}
