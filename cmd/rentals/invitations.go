package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simplerentals/rentals-go/internal/model"
	"github.com/simplerentals/rentals-go/internal/service"
)

func invitationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invitations",
		Short: "View and answer group invitations",
	}
	cmd.AddCommand(invitationsListCmd())
	cmd.AddCommand(invitationsRespondCmd())
	cmd.AddCommand(invitationsDeleteCmd())
	cmd.AddCommand(invitationsInviteCmd())
	return cmd
}

func invitationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show your invitation inbox",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			received, sent, err := a.invitations.Inbox(cmd.Context())
			if err != nil {
				return err
			}

			printInvitations(cmd, "Pending", received.Pending)
			printInvitations(cmd, "Accepted", received.Accepted)
			printInvitations(cmd, "Rejected", received.Rejected)
			printInvitations(cmd, "Sent, awaiting answer", sent.Pending)
			printInvitations(cmd, "Sent, accepted", sent.Accepted)
			printInvitations(cmd, "Sent, rejected", sent.Rejected)
			return nil
		},
	}
}

func printInvitations(cmd *cobra.Command, title string, invs []model.Invitation) {
	if len(invs) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", title)
	for _, inv := range invs {
		fmt.Fprintf(cmd.OutOrStdout(), "  %d: %s invited %s to %q\n", inv.ID, inv.InvitedByEmail, inv.InvitedUserEmail, inv.GroupName)
	}
}

func invitationsRespondCmd() *cobra.Command {
	var accept, reject bool
	cmd := &cobra.Command{
		Use:   "respond <invitation-id>",
		Short: "Accept or reject an invitation; accepting also joins the group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if accept == reject {
				return fmt.Errorf("pass exactly one of --accept or --reject")
			}
			invitationID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			if reject && !confirm(cmd, fmt.Sprintf("Reject invitation %d? This cannot be undone.", invitationID)) {
				return nil
			}

			inv, err := a.invitations.Respond(cmd.Context(), invitationID, accept, a.actor)

			var partial *service.PartialAcceptError
			if errors.As(err, &partial) {
				fmt.Fprintf(cmd.OutOrStdout(),
					"Invitation %d is accepted but joining group %d failed: %v\nRun `rentals groups join %d` to finish.\n",
					partial.InvitationID, partial.GroupID, partial.Err, partial.GroupID)
				return nil
			}
			if err != nil {
				return err
			}

			if accept {
				fmt.Fprintf(cmd.OutOrStdout(), "Accepted invitation %d and joined group %d\n", inv.ID, inv.Group)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Rejected invitation %d\n", inv.ID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&accept, "accept", false, "accept the invitation")
	cmd.Flags().BoolVar(&reject, "reject", false, "reject the invitation")
	return cmd
}

func invitationsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <invitation-id>",
		Short: "Delete an invitation you sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invitationID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if !confirm(cmd, fmt.Sprintf("Delete invitation %d?", invitationID)) {
				return nil
			}
			if err := a.invitations.Delete(cmd.Context(), invitationID, a.actor); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Invitation %d deleted\n", invitationID)
			return nil
		},
	}
}

func invitationsInviteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invite <group-id> <roommate-id>...",
		Short: "Invite roommates to a group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}
			var roommateIDs []int64
			for _, arg := range args[1:] {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				roommateIDs = append(roommateIDs, id)
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if !confirm(cmd, fmt.Sprintf("Invite %d roommate(s) to group %d?", len(roommateIDs), groupID)) {
				return nil
			}
			invs, err := a.invitations.Invite(cmd.Context(), groupID, roommateIDs)
			if err != nil {
				return err
			}
			for _, inv := range invs {
				fmt.Fprintf(cmd.OutOrStdout(), "Invited %s (invitation %d)\n", inv.InvitedUserEmail, inv.ID)
			}
			return nil
		},
	}
}
