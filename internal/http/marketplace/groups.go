package marketplace

import (
	"context"
	"fmt"

	"github.com/simplerentals/rentals-go/internal/model"
)

// GetGroup fetches the authoritative group record, members included.
func (c *Client) GetGroup(ctx context.Context, groupID int64) (model.Group, error) {
	var group model.Group
	err := c.get(ctx, fmt.Sprintf("/groups/%d", groupID), &group)
	return group, err
}

// ListingGroups lists the groups formed against a listing.
func (c *Client) ListingGroups(ctx context.Context, listingID int64) ([]model.Group, error) {
	var groups []model.Group
	err := c.get(ctx, fmt.Sprintf("/listings/%d/groups", listingID), &groups)
	return groups, err
}

// CreateGroup opens a new group against a listing.
func (c *Client) CreateGroup(ctx context.Context, listingID int64, form model.GroupForm) (model.Group, error) {
	form.Listing = listingID
	var group model.Group
	err := c.post(ctx, fmt.Sprintf("/listings/%d/groups/post", listingID), form, &group)
	return group, err
}

// EditGroup updates group fields through the owner-facing edit endpoint.
// Setting Status to Sent is how a group applies to its listing.
func (c *Client) EditGroup(ctx context.Context, groupID int64, form model.GroupForm) (model.Group, error) {
	var group model.Group
	err := c.patch(ctx, fmt.Sprintf("/groups/edit/%d", groupID), form, &group)
	return group, err
}

type statusPayload struct {
	Status model.GroupStatus `json:"group_status"`
}

// SetGroupStatus issues the owner-facing status change used by Apply.
func (c *Client) SetGroupStatus(ctx context.Context, groupID int64, status model.GroupStatus) (model.Group, error) {
	var group model.Group
	err := c.patch(ctx, fmt.Sprintf("/groups/edit/%d", groupID), statusPayload{Status: status}, &group)
	return group, err
}

// ManageGroupStatus issues the listing-owner-facing status change that
// moves an application through review.
func (c *Client) ManageGroupStatus(ctx context.Context, groupID int64, status model.GroupStatus) (model.Group, error) {
	var group model.Group
	err := c.patch(ctx, fmt.Sprintf("/groups/manage/%d", groupID), statusPayload{Status: status}, &group)
	return group, err
}

// JoinGroup adds the caller's roommate profile to the group.
func (c *Client) JoinGroup(ctx context.Context, groupID int64) (model.Group, error) {
	var group model.Group
	err := c.patch(ctx, fmt.Sprintf("/groups/%d/join", groupID), nil, &group)
	return group, err
}

// LeaveGroup removes the caller's roommate profile from the group.
func (c *Client) LeaveGroup(ctx context.Context, groupID int64) (model.Group, error) {
	var group model.Group
	err := c.patch(ctx, fmt.Sprintf("/groups/%d/leave", groupID), nil, &group)
	return group, err
}

// DeleteGroup deletes the whole group. Owner only.
func (c *Client) DeleteGroup(ctx context.Context, groupID int64) error {
	return c.delete(ctx, fmt.Sprintf("/groups/delete/%d", groupID))
}

// Applications lists the caller's own groups for application
// classification.
func (c *Client) Applications(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := c.get(ctx, "/applications", &groups)
	return groups, err
}

// ManagedApplications lists groups formed against the caller's listings.
func (c *Client) ManagedApplications(ctx context.Context) ([]model.Group, error) {
	var groups []model.Group
	err := c.get(ctx, "/applications/management", &groups)
	return groups, err
}
