package stub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplerentals/rentals-go/config"
	"github.com/simplerentals/rentals-go/internal/http/marketplace"
	"github.com/simplerentals/rentals-go/internal/model"
)

const testSecret = "test-secret"

type fixture struct {
	api *API
	srv *httptest.Server

	landlord, alice, bob       model.User
	landlordRm, aliceRm, bobRm model.Roommate
	listing                    model.Listing
	group                      model.Group
}

func yearly(v float64) *float64 { return &v }

func newFixture(t *testing.T) *fixture {
	t.Helper()

	api := New(&config.Config{JwtSecret: testSecret})
	srv := httptest.NewServer(api.Router())
	t.Cleanup(srv.Close)

	f := &fixture{api: api, srv: srv}
	store := api.Store

	f.landlord = store.AddUser(model.User{Email: "landlord@example.com", FirstName: "Lena"})
	f.landlordRm = store.AddRoommate(model.Roommate{User: f.landlord})
	f.landlord, _ = store.User(f.landlord.ID)

	f.listing = store.AddListing(model.Listing{
		Owner: f.landlord, Price: 1500, PropertyType: "A", Bedrooms: 3, Bathrooms: 2,
		StreetAddress: "12 Somerset Road", City: "London",
	})

	f.alice = store.AddUser(model.User{Email: "alice@example.com", FirstName: "Alice", YearlyIncome: yearly(60000)})
	f.aliceRm = store.AddRoommate(model.Roommate{User: f.alice, Budget: 900})
	f.alice, _ = store.User(f.alice.ID)

	f.bob = store.AddUser(model.User{Email: "bob@example.com", FirstName: "Bob", YearlyIncome: yearly(42000)})
	f.bobRm = store.AddRoommate(model.Roommate{User: f.bob, Budget: 700})
	f.bob, _ = store.User(f.bob.ID)

	f.group = store.AddGroup(model.Group{
		Name: "Somerset flatshare", Status: model.StatusOpen,
		Listing: f.listing.ID, Owner: f.aliceRm, MoveInDate: "2026-10-01",
	})
	return f
}

func (f *fixture) client(t *testing.T, user model.User) *marketplace.Client {
	t.Helper()
	token, err := AccessToken(user.ID, testSecret)
	require.NoError(t, err)
	return marketplace.New(&config.Config{
		APIBaseURL:    f.srv.URL,
		AccessToken:   token,
		RequestSource: "stub-tests",
	})
}

func TestJoinGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	group, err := f.client(t, f.bob).JoinGroup(ctx, f.group.ID)
	require.NoError(t, err)
	assert.Len(t, group.Members, 2)
	assert.True(t, group.HasMember(f.bobRm.ID))
}

func TestJoinGroupTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bob := f.client(t, f.bob)

	_, err := bob.JoinGroup(ctx, f.group.ID)
	require.NoError(t, err)

	_, err = bob.JoinGroup(ctx, f.group.ID)
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))
	assert.Contains(t, err.Error(), "already a member")
}

func TestJoinGroupNotOpen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, _, _, err := f.api.Store.EditGroup(f.group.ID, f.alice.ID, model.GroupForm{Status: model.StatusSent})
	require.NoError(t, err)

	_, err = f.client(t, f.bob).JoinGroup(ctx, f.group.ID)
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))
}

func TestJoinGroupAsListingOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.client(t, f.landlord).JoinGroup(context.Background(), f.group.ID)
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))
}

func TestLeaveGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bob := f.client(t, f.bob)

	_, err := bob.JoinGroup(ctx, f.group.ID)
	require.NoError(t, err)

	group, err := bob.LeaveGroup(ctx, f.group.ID)
	require.NoError(t, err)
	assert.Len(t, group.Members, 1)
}

func TestLeaveGroupAsOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.client(t, f.alice).LeaveGroup(context.Background(), f.group.ID)
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))
	assert.Contains(t, err.Error(), "owner must delete")
}

func TestLeaveGroupAsNonMember(t *testing.T) {
	f := newFixture(t)

	_, err := f.client(t, f.bob).LeaveGroup(context.Background(), f.group.ID)
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))
}

func TestDeleteGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.client(t, f.alice).DeleteGroup(ctx, f.group.ID))

	_, err := f.client(t, f.alice).GetGroup(ctx, f.group.ID)
	assert.True(t, marketplace.IsNotFound(err))
}

func TestDeleteGroupByNonOwner(t *testing.T) {
	f := newFixture(t)

	err := f.client(t, f.bob).DeleteGroup(context.Background(), f.group.ID)
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))
}

func TestEditGroupByNonOwner(t *testing.T) {
	f := newFixture(t)

	_, err := f.client(t, f.bob).EditGroup(context.Background(), f.group.ID, model.GroupForm{Name: "hijacked"})
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))
}

func TestApplyViaEdit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.client(t, f.alice)

	group, err := alice.SetGroupStatus(ctx, f.group.ID, model.StatusSent)
	require.NoError(t, err)
	assert.Equal(t, model.StatusSent, group.Status)

	// Applying again is rejected, and so is assigning review statuses
	// through the edit endpoint.
	_, err = alice.SetGroupStatus(ctx, f.group.ID, model.StatusSent)
	assert.True(t, marketplace.IsConflict(err))

	_, err = alice.SetGroupStatus(ctx, f.group.ID, model.StatusUnderReview)
	assert.True(t, marketplace.IsForbidden(err))
}

func TestManageGroup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client(t, f.alice).SetGroupStatus(ctx, f.group.ID, model.StatusSent)
	require.NoError(t, err)

	landlord := f.client(t, f.landlord)
	group, err := landlord.ManageGroupStatus(ctx, f.group.ID, model.StatusUnderReview)
	require.NoError(t, err)
	assert.Equal(t, model.StatusUnderReview, group.Status)

	group, err = landlord.ManageGroupStatus(ctx, f.group.ID, model.StatusInvited)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInvited, group.Status)
}

func TestManageGroupByNonListingOwner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client(t, f.alice).SetGroupStatus(ctx, f.group.ID, model.StatusSent)
	require.NoError(t, err)

	_, err = f.client(t, f.alice).ManageGroupStatus(ctx, f.group.ID, model.StatusUnderReview)
	require.Error(t, err)
	assert.True(t, marketplace.IsUnauthorized(err))
}

func TestCreateGroup(t *testing.T) {
	f := newFixture(t)

	group, err := f.client(t, f.bob).CreateGroup(context.Background(), f.listing.ID, model.GroupForm{
		Name:       "second group",
		MoveInDate: "2026-11-01",
		Status:     model.StatusOpen,
	})
	require.NoError(t, err)
	assert.True(t, group.IsOwner(f.bobRm.ID))
	assert.Len(t, group.Members, 1)

	groups, err := f.client(t, f.bob).ListingGroups(context.Background(), f.listing.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 2)
}

func TestInvitationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.client(t, f.alice)
	bob := f.client(t, f.bob)

	inv, err := alice.CreateInvitation(ctx, f.group.ID, f.bobRm.ID)
	require.NoError(t, err)
	assert.Equal(t, f.bob.Email, inv.InvitedUserEmail)
	assert.Nil(t, inv.Accepted)

	inbox, err := bob.Invitations(ctx)
	require.NoError(t, err)
	require.Len(t, inbox.Received, 1)

	updated, err := bob.UpdateInvitation(ctx, inv.ID, true)
	require.NoError(t, err)
	require.NotNil(t, updated.Accepted)
	assert.True(t, *updated.Accepted)

	// The accepted flag is write-once.
	_, err = bob.UpdateInvitation(ctx, inv.ID, false)
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))
}

func TestInvitationUpdateByNonRecipient(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.client(t, f.alice).CreateInvitation(ctx, f.group.ID, f.bobRm.ID)
	require.NoError(t, err)

	_, err = f.client(t, f.alice).UpdateInvitation(ctx, inv.ID, true)
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))
}

func TestInvitationDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	inv, err := f.client(t, f.alice).CreateInvitation(ctx, f.group.ID, f.bobRm.ID)
	require.NoError(t, err)

	err = f.client(t, f.bob).DeleteInvitation(ctx, inv.ID)
	require.Error(t, err, "recipients cannot delete")
	assert.True(t, marketplace.IsForbidden(err))

	require.NoError(t, f.client(t, f.alice).DeleteInvitation(ctx, inv.ID))
}

func TestInviteExistingMember(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.client(t, f.bob).JoinGroup(ctx, f.group.ID)
	require.NoError(t, err)

	_, err = f.client(t, f.alice).CreateInvitation(ctx, f.group.ID, f.bobRm.ID)
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))
}

func TestConversationLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	bob := f.client(t, f.bob)

	conv, err := bob.StartConversation(ctx, f.listing.ID, nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{f.bob.ID, f.landlord.ID}, conv.Participants)

	// Starting the same thread again is rejected server-side.
	_, err = bob.StartConversation(ctx, f.listing.ID, nil)
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))

	msg, err := bob.SendMessage(ctx, conv.ID, "is this still available?")
	require.NoError(t, err)
	assert.Equal(t, f.bob.ID, msg.Sender.ID)

	fetched, err := bob.GetConversation(ctx, conv.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Messages, 1)

	_, err = bob.SendMessage(ctx, conv.ID, "")
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))
}

func TestStartConversationWithSelf(t *testing.T) {
	f := newFixture(t)

	_, err := f.client(t, f.landlord).StartConversation(context.Background(), f.listing.ID, nil)
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))
}

func TestConversationAccessControl(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	conv, err := f.client(t, f.bob).StartConversation(ctx, f.listing.ID, nil)
	require.NoError(t, err)

	_, err = f.client(t, f.alice).GetConversation(ctx, conv.ID)
	require.Error(t, err)
	assert.True(t, marketplace.IsForbidden(err))

	convs, err := f.client(t, f.alice).Conversations(ctx)
	require.NoError(t, err)
	assert.Empty(t, convs)
}

func TestApplicationsEndpoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	groups, err := f.client(t, f.alice).Applications(ctx)
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	managed, err := f.client(t, f.landlord).ManagedApplications(ctx)
	require.NoError(t, err)
	assert.Len(t, managed, 1)

	none, err := f.client(t, f.bob).Applications(ctx)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProfileAndRoommate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	me, err := f.client(t, f.alice).Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, f.alice.ID, me.ID)
	require.NotNil(t, me.RoommateProfile)
	assert.Equal(t, f.aliceRm.ID, *me.RoommateProfile)

	rm, err := f.client(t, f.alice).GetRoommate(ctx, f.bobRm.ID)
	require.NoError(t, err)
	assert.Equal(t, f.bob.Email, rm.User.Email)

	rms, err := f.client(t, f.alice).ListRoommates(ctx)
	require.NoError(t, err)
	assert.Len(t, rms, 3)
}

func TestSearchListings(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	listings, err := f.client(t, f.bob).SearchListings(ctx, model.ListingSearch{City: "london"})
	require.NoError(t, err)
	assert.Len(t, listings, 1)

	listings, err = f.client(t, f.bob).SearchListings(ctx, model.ListingSearch{PriceMax: 1000})
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestRequireLogin(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.srv.URL + "/applications")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(t)

	resp, err := http.Get(f.srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
