package marketplace

import (
	"context"
	"fmt"

	"github.com/simplerentals/rentals-go/internal/model"
)

// Invitations fetches the caller's invitation inbox, split into received
// and sent.
func (c *Client) Invitations(ctx context.Context) (model.Inbox, error) {
	var inbox model.Inbox
	err := c.get(ctx, "/groups/invitations", &inbox)
	return inbox, err
}

type invitePayload struct {
	Group       int64 `json:"group"`
	InvitedUser int64 `json:"invited_user"`
}

// CreateInvitation invites a roommate to a group.
func (c *Client) CreateInvitation(ctx context.Context, groupID, roommateID int64) (model.Invitation, error) {
	var inv model.Invitation
	payload := invitePayload{Group: groupID, InvitedUser: roommateID}
	err := c.post(ctx, fmt.Sprintf("/groups/%d/invite", groupID), payload, &inv)
	return inv, err
}

type respondPayload struct {
	Accepted bool `json:"accepted"`
}

// UpdateInvitation records the recipient's accept/reject decision.
func (c *Client) UpdateInvitation(ctx context.Context, invitationID int64, accepted bool) (model.Invitation, error) {
	var inv model.Invitation
	err := c.patch(ctx, fmt.Sprintf("/groups/invitations/%d/update", invitationID), respondPayload{Accepted: accepted}, &inv)
	return inv, err
}

// DeleteInvitation removes an invitation record. Sender only.
func (c *Client) DeleteInvitation(ctx context.Context, invitationID int64) error {
	return c.delete(ctx, fmt.Sprintf("/groups/invitations/%d/delete", invitationID))
}
