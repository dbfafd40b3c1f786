package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/simplerentals/rentals-go/internal/model"
)

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Inspect and manage roommate groups",
	}
	cmd.AddCommand(groupsGetCmd())
	cmd.AddCommand(groupsJoinCmd())
	cmd.AddCommand(groupsLeaveCmd())
	cmd.AddCommand(groupsApplyCmd())
	cmd.AddCommand(groupsManageCmd())
	cmd.AddCommand(groupsApplicationsCmd())
	return cmd
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func printGroup(cmd *cobra.Command, g model.Group) {
	fmt.Fprintf(cmd.OutOrStdout(), "Group %d: %s [%s]\n", g.ID, g.Name, g.Status.Label())
	fmt.Fprintf(cmd.OutOrStdout(), "  Listing: %d  Move-in: %s\n", g.Listing, g.MoveInDate)
	for _, m := range g.Members {
		owner := ""
		if g.IsOwner(m.ID) {
			owner = " (owner)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Member %d: %s %s%s\n", m.ID, m.User.FirstName, m.User.LastName, owner)
	}
}

func groupsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <group-id>",
		Short: "Show a group and its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			group, err := a.client.GetGroup(cmd.Context(), groupID)
			if err != nil {
				return err
			}
			printGroup(cmd, group)
			return nil
		},
	}
}

func groupsJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <group-id>",
		Short: "Join an open group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			group, err := a.membership.Join(cmd.Context(), groupID, a.actor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Joined group %d (%d members)\n", group.ID, len(group.Members))
			return nil
		},
	}
}

func groupsLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <group-id>",
		Short: "Leave a group; the owner deletes it instead",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			group, err := a.client.GetGroup(cmd.Context(), groupID)
			if err != nil {
				return err
			}
			prompt := fmt.Sprintf("Leave group %q?", group.Name)
			if group.IsOwner(a.actor.RoommateID) {
				prompt = fmt.Sprintf("You own group %q; leaving deletes it for every member. Delete?", group.Name)
			}
			if !confirm(cmd, prompt) {
				return nil
			}

			outcome, err := a.membership.Leave(cmd.Context(), groupID, a.actor)
			if err != nil {
				return err
			}
			if outcome.Deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "Group %d deleted\n", groupID)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Left group %d (%d members remain)\n", groupID, len(outcome.Group.Members))
			return nil
		},
	}
}

func groupsApplyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <group-id>",
		Short: "Submit the group's application to its listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			group, err := a.membership.Apply(cmd.Context(), groupID, a.actor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Application sent for group %d [%s]\n", group.ID, group.Status.Label())
			return nil
		},
	}
}

func groupsManageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "manage <group-id> <status>",
		Short: "Move an application through review (U, I or R); listing owner only",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, err := parseID(args[0])
			if err != nil {
				return err
			}
			status := model.GroupStatus(args[1])
			if !status.Valid() {
				return fmt.Errorf("unknown status %q", args[1])
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if prompt, needed := managePrompt(groupID, status); needed && !confirm(cmd, prompt) {
				return nil
			}
			group, err := a.membership.ChangeStatus(cmd.Context(), groupID, status, a.actor)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Group %d is now %s\n", group.ID, group.Status.Label())
			return nil
		},
	}
}

// managePrompt returns the confirmation prompt for a managed status
// change. Rejecting and inviting both commit decisions the listing owner
// cannot take back, so both require confirmation; Under Review does not.
func managePrompt(groupID int64, status model.GroupStatus) (string, bool) {
	switch status {
	case model.StatusRejected:
		return fmt.Sprintf("Reject the application from group %d?", groupID), true
	case model.StatusInvited:
		return fmt.Sprintf("Invite group %d to the listing?", groupID), true
	}
	return "", false
}

func groupsApplicationsCmd() *cobra.Command {
	var managed bool
	cmd := &cobra.Command{
		Use:   "applications",
		Short: "List your applications, bucketed by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}

			var groups []model.Group
			if managed {
				groups, err = a.client.ManagedApplications(cmd.Context())
			} else {
				groups, err = a.client.Applications(cmd.Context())
			}
			if err != nil {
				return err
			}

			apps := model.ClassifyApplications(groups)
			printBucket(cmd, "Sent", apps.Sent)
			printBucket(cmd, "Under review", apps.UnderReview)
			printBucket(cmd, "Invited", apps.Invited)
			printBucket(cmd, "Rejected", apps.Rejected)
			printBucket(cmd, "Open", apps.Open)
			printBucket(cmd, "Private", apps.Private)
			printBucket(cmd, "Filled", apps.Filled)
			return nil
		},
	}
	cmd.Flags().BoolVar(&managed, "managed", false, "list applications against your listings instead")
	return cmd
}

func printBucket(cmd *cobra.Command, title string, groups []model.Group) {
	if len(groups) == 0 {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", title)
	for _, g := range groups {
		fmt.Fprintf(cmd.OutOrStdout(), "  %d: %s (listing %d, %d members)\n", g.ID, g.Name, g.Listing, len(g.Members))
	}
}
