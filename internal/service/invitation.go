package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/simplerentals/rentals-go/internal/model"
)

// InvitationAPI is the slice of the marketplace client the invitation
// service needs.
type InvitationAPI interface {
	Invitations(ctx context.Context) (model.Inbox, error)
	CreateInvitation(ctx context.Context, groupID, roommateID int64) (model.Invitation, error)
	UpdateInvitation(ctx context.Context, invitationID int64, accepted bool) (model.Invitation, error)
	DeleteInvitation(ctx context.Context, invitationID int64) error
	JoinGroup(ctx context.Context, groupID int64) (model.Group, error)
}

// InvitationService handles the invitation accept/reject protocol,
// including the join cascade on acceptance.
type InvitationService struct {
	api InvitationAPI
}

func NewInvitationService(api InvitationAPI) *InvitationService {
	return &InvitationService{api: api}
}

// PartialAcceptError reports an accepted invitation whose group join
// failed afterwards. The invitation update and the join are two separate
// calls with no compensating transaction; callers reconcile by
// re-fetching both the invitation and the group.
type PartialAcceptError struct {
	InvitationID int64
	GroupID      int64
	Err          error
}

func (e *PartialAcceptError) Error() string {
	return fmt.Sprintf("invitation %d accepted but joining group %d failed: %v", e.InvitationID, e.GroupID, e.Err)
}

func (e *PartialAcceptError) Unwrap() error {
	return e.Err
}

// Respond records the recipient's decision. Preconditions: the actor is
// the invited roommate and the invitation is still pending; the accepted
// flag is write-once in the received direction. Accepting cascades into a
// group join; a rejected invitation is only updated.
func (s *InvitationService) Respond(ctx context.Context, invitationID int64, accepted bool, actor Actor) (model.Invitation, error) {
	inv, err := s.findInvitation(ctx, invitationID)
	if err != nil {
		return model.Invitation{}, errors.Wrap(err, "respond to invitation")
	}
	if inv.InvitedUser != actor.RoommateID {
		return model.Invitation{}, errors.Wrap(forbidden("invitation is not addressed to you"), "respond to invitation")
	}
	if !inv.Pending() {
		return model.Invitation{}, errors.Wrap(forbidden("invitation has already been answered"), "respond to invitation")
	}

	updated, err := s.api.UpdateInvitation(ctx, invitationID, accepted)
	if err != nil {
		slog.Error("invitation update failed", "invitation_id", invitationID, "error", err)
		return model.Invitation{}, errors.Wrap(err, "respond to invitation")
	}

	if accepted {
		if _, err := s.api.JoinGroup(ctx, inv.Group); err != nil {
			slog.Error("join after accept failed", "invitation_id", invitationID, "group_id", inv.Group, "error", err)
			return updated, &PartialAcceptError{InvitationID: invitationID, GroupID: inv.Group, Err: err}
		}
		slog.Info("invitation accepted", "invitation_id", invitationID, "group_id", inv.Group)
	} else {
		slog.Info("invitation rejected", "invitation_id", invitationID, "group_id", inv.Group)
	}
	return updated, nil
}

// Delete removes an invitation record. Only the non-recipient party may
// delete; a recipient's decision stands and the sent record is the
// sender's to clean up.
func (s *InvitationService) Delete(ctx context.Context, invitationID int64, actor Actor) error {
	inv, err := s.findInvitation(ctx, invitationID)
	if err != nil {
		return errors.Wrap(err, "delete invitation")
	}
	if inv.InvitedUser == actor.RoommateID {
		return errors.Wrap(forbidden("recipients cannot delete their invitations"), "delete invitation")
	}

	if err := s.api.DeleteInvitation(ctx, invitationID); err != nil {
		slog.Error("invitation delete failed", "invitation_id", invitationID, "error", err)
		return errors.Wrap(err, "delete invitation")
	}
	slog.Info("invitation deleted", "invitation_id", invitationID)
	return nil
}

// Invite sends invitations for a group to each roommate in turn, the way
// the group form does. The first failure stops the loop and reports which
// invitations were created.
func (s *InvitationService) Invite(ctx context.Context, groupID int64, roommateIDs []int64) ([]model.Invitation, error) {
	var created []model.Invitation
	for _, roommateID := range roommateIDs {
		inv, err := s.api.CreateInvitation(ctx, groupID, roommateID)
		if err != nil {
			return created, errors.Wrapf(err, "invite roommate %d to group %d", roommateID, groupID)
		}
		created = append(created, inv)
	}
	slog.Info("invitations sent", "group_id", groupID, "count", len(created))
	return created, nil
}

// Inbox fetches and classifies the actor's invitations for display.
func (s *InvitationService) Inbox(ctx context.Context) (received, sent model.ClassifiedInvitations, err error) {
	inbox, err := s.api.Invitations(ctx)
	if err != nil {
		return received, sent, errors.Wrap(err, "fetch invitations")
	}
	return model.ClassifyInvitations(inbox.Received), model.ClassifyInvitations(inbox.Sent), nil
}

// findInvitation looks an invitation up through the inbox listing; the
// API has no single-invitation fetch.
func (s *InvitationService) findInvitation(ctx context.Context, invitationID int64) (model.Invitation, error) {
	inbox, err := s.api.Invitations(ctx)
	if err != nil {
		return model.Invitation{}, err
	}
	for _, inv := range inbox.Received {
		if inv.ID == invitationID {
			return inv, nil
		}
	}
	for _, inv := range inbox.Sent {
		if inv.ID == invitationID {
			return inv, nil
		}
	}
	return model.Invitation{}, notFound("invitation not found")
}
