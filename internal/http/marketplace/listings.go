package marketplace

import (
	"context"
	"fmt"

	"github.com/google/go-querystring/query"
	"github.com/simplerentals/rentals-go/internal/model"
)

// GetListing fetches a listing, owner and price included.
func (c *Client) GetListing(ctx context.Context, listingID int64) (model.Listing, error) {
	var listing model.Listing
	err := c.get(ctx, fmt.Sprintf("/listings/%d", listingID), &listing)
	return listing, err
}

// SearchListings queries /listings/viewAll with the given filters.
func (c *Client) SearchListings(ctx context.Context, search model.ListingSearch) ([]model.Listing, error) {
	params, err := query.Values(search)
	if err != nil {
		return nil, fmt.Errorf("failed to encode search params: %w", err)
	}
	path := "/listings/viewAll"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}
	var listings []model.Listing
	err = c.get(ctx, path, &listings)
	return listings, err
}

// Me fetches the caller's account profile.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	err := c.get(ctx, "/profile/me", &user)
	return user, err
}

// GetRoommate fetches a roommate profile.
func (c *Client) GetRoommate(ctx context.Context, roommateID int64) (model.Roommate, error) {
	var rm model.Roommate
	err := c.get(ctx, fmt.Sprintf("/roommates/%d", roommateID), &rm)
	return rm, err
}

// ListRoommates lists browsable roommate profiles.
func (c *Client) ListRoommates(ctx context.Context) ([]model.Roommate, error) {
	var rms []model.Roommate
	err := c.get(ctx, "/roommates/viewAll", &rms)
	return rms, err
}
