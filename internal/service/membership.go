package service

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/simplerentals/rentals-go/internal/http/marketplace"
	"github.com/simplerentals/rentals-go/internal/model"
)

// GroupAPI is the slice of the marketplace client the membership service
// needs. *marketplace.Client satisfies it; tests substitute fakes.
type GroupAPI interface {
	GetGroup(ctx context.Context, groupID int64) (model.Group, error)
	GetListing(ctx context.Context, listingID int64) (model.Listing, error)
	JoinGroup(ctx context.Context, groupID int64) (model.Group, error)
	LeaveGroup(ctx context.Context, groupID int64) (model.Group, error)
	DeleteGroup(ctx context.Context, groupID int64) error
	SetGroupStatus(ctx context.Context, groupID int64, status model.GroupStatus) (model.Group, error)
	ManageGroupStatus(ctx context.Context, groupID int64, status model.GroupStatus) (model.Group, error)
}

// MembershipService enforces the group status machine and membership
// invariants before issuing mutations.
type MembershipService struct {
	api GroupAPI
}

func NewMembershipService(api GroupAPI) *MembershipService {
	return &MembershipService{api: api}
}

// Join adds the actor's roommate profile to a group. Preconditions: the
// group is Open, the actor is not already a member, and the actor does
// not own the group's listing. Violations fail locally with Forbidden and
// issue no write; a concurrent state change surfaces as the server's
// Conflict.
func (s *MembershipService) Join(ctx context.Context, groupID int64, actor Actor) (model.Group, error) {
	if !actor.HasRoommateProfile() {
		return model.Group{}, errors.Wrap(forbidden("a roommate profile is required to join a group"), "join group")
	}

	group, err := s.api.GetGroup(ctx, groupID)
	if err != nil {
		return model.Group{}, errors.Wrap(err, "join group")
	}
	if group.Status != model.StatusOpen {
		return model.Group{}, errors.Wrap(forbidden("group is not open"), "join group")
	}
	if group.HasMember(actor.RoommateID) {
		return model.Group{}, errors.Wrap(forbidden("already a member of this group"), "join group")
	}

	listing, err := s.api.GetListing(ctx, group.Listing)
	if err != nil {
		return model.Group{}, errors.Wrap(err, "join group")
	}
	if listing.Owner.ID == actor.UserID {
		return model.Group{}, errors.Wrap(forbidden("listing owners cannot join groups on their own listing"), "join group")
	}

	if _, err := s.api.JoinGroup(ctx, groupID); err != nil {
		slog.Error("join failed", "group_id", groupID, "roommate_id", actor.RoommateID, "error", err)
		return model.Group{}, errors.Wrap(err, "join group")
	}

	// Authoritative membership after the write; the server may have
	// applied capacity rules the client cannot see.
	group, err = s.api.GetGroup(ctx, groupID)
	if err != nil {
		return model.Group{}, errors.Wrap(err, "refetch group after join")
	}
	slog.Info("joined group", "group_id", groupID, "roommate_id", actor.RoommateID, "members", len(group.Members))
	return group, nil
}

// LeaveOutcome reports what Leave actually did: owners delete the whole
// group, everyone else is removed from the members set.
type LeaveOutcome struct {
	Deleted bool
	Group   model.Group
}

// Leave removes the actor from the group. When the actor owns the group
// this is a delete of the whole group; callers present the stronger
// confirmation prompt before invoking.
func (s *MembershipService) Leave(ctx context.Context, groupID int64, actor Actor) (LeaveOutcome, error) {
	group, err := s.api.GetGroup(ctx, groupID)
	if err != nil {
		return LeaveOutcome{}, errors.Wrap(err, "leave group")
	}

	if group.IsOwner(actor.RoommateID) {
		if err := s.api.DeleteGroup(ctx, groupID); err != nil {
			slog.Error("delete group failed", "group_id", groupID, "error", err)
			return LeaveOutcome{}, errors.Wrap(err, "delete group")
		}
		slog.Info("group deleted by owner", "group_id", groupID, "roommate_id", actor.RoommateID)
		return LeaveOutcome{Deleted: true}, nil
	}

	if !group.HasMember(actor.RoommateID) {
		return LeaveOutcome{}, errors.Wrap(forbidden("not a member of this group"), "leave group")
	}

	if _, err := s.api.LeaveGroup(ctx, groupID); err != nil {
		slog.Error("leave failed", "group_id", groupID, "roommate_id", actor.RoommateID, "error", err)
		return LeaveOutcome{}, errors.Wrap(err, "leave group")
	}

	group, err = s.api.GetGroup(ctx, groupID)
	if err != nil {
		return LeaveOutcome{}, errors.Wrap(err, "refetch group after leave")
	}
	slog.Info("left group", "group_id", groupID, "roommate_id", actor.RoommateID, "members", len(group.Members))
	return LeaveOutcome{Group: group}, nil
}

// Apply sends the group to its listing as an application. Group owner
// only, and only from Open/Private/Filled. There is no reverse edge: once
// sent, the application cannot be withdrawn back to a pre-application
// status.
func (s *MembershipService) Apply(ctx context.Context, groupID int64, actor Actor) (model.Group, error) {
	group, err := s.api.GetGroup(ctx, groupID)
	if err != nil {
		return model.Group{}, errors.Wrap(err, "apply")
	}
	if !group.IsOwner(actor.RoommateID) {
		return model.Group{}, errors.Wrap(unauthorized("only the group owner may apply"), "apply")
	}
	if !group.Status.CanTransition(model.StatusSent) {
		return model.Group{}, errors.Wrap(forbidden("group has already applied"), "apply")
	}

	if _, err := s.api.SetGroupStatus(ctx, groupID, model.StatusSent); err != nil {
		slog.Error("apply failed", "group_id", groupID, "error", err)
		return model.Group{}, errors.Wrap(err, "apply")
	}

	group, err = s.api.GetGroup(ctx, groupID)
	if err != nil {
		return model.Group{}, errors.Wrap(err, "refetch group after apply")
	}
	slog.Info("application sent", "group_id", groupID, "status", group.Status)
	return group, nil
}

// ChangeStatus moves an application through review. Listing owner only;
// the group owner manages membership, the listing owner manages
// applications. Callers confirm Rejected and Invited with the user before
// invoking.
func (s *MembershipService) ChangeStatus(ctx context.Context, groupID int64, newStatus model.GroupStatus, actor Actor) (model.Group, error) {
	if !newStatus.ManageTarget() {
		return model.Group{}, errors.Wrapf(forbidden("not a manageable status"), "change status to %s", newStatus)
	}

	group, err := s.api.GetGroup(ctx, groupID)
	if err != nil {
		return model.Group{}, errors.Wrap(err, "change status")
	}
	if !group.Status.CanTransition(newStatus) {
		return model.Group{}, errors.Wrapf(forbidden("group is not under review"), "change status from %s to %s", group.Status, newStatus)
	}

	listing, err := s.api.GetListing(ctx, group.Listing)
	if err != nil {
		return model.Group{}, errors.Wrap(err, "change status")
	}
	if listing.Owner.ID != actor.UserID {
		return model.Group{}, errors.Wrap(unauthorized("only the listing owner may manage applications"), "change status")
	}

	if _, err := s.api.ManageGroupStatus(ctx, groupID, newStatus); err != nil {
		slog.Error("status change failed", "group_id", groupID, "status", newStatus, "error", err)
		return model.Group{}, errors.Wrap(err, "change status")
	}

	group, err = s.api.GetGroup(ctx, groupID)
	if err != nil {
		return model.Group{}, errors.Wrap(err, "refetch group after status change")
	}
	slog.Info("application status changed", "group_id", groupID, "status", group.Status)
	return group, nil
}

func forbidden(detail string) error {
	return &marketplace.APIError{Kind: marketplace.KindForbidden, Detail: detail}
}

func unauthorized(detail string) error {
	return &marketplace.APIError{Kind: marketplace.KindUnauthorized, Detail: detail}
}
