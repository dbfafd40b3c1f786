package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/simplerentals/rentals-go/config"
	"github.com/simplerentals/rentals-go/internal/http/marketplace"
	"github.com/simplerentals/rentals-go/internal/service"
)

// app wires the client and the domain services for one invocation. The
// actor is resolved up front from the token and the caller's profile.
type app struct {
	client        *marketplace.Client
	membership    *service.MembershipService
	invitations   *service.InvitationService
	conversations *service.ConversationService
	actor         service.Actor
}

func newApp(ctx context.Context) (*app, error) {
	cfg := config.New()
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN is not set")
	}

	client := marketplace.New(cfg)
	me, err := client.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve profile: %w", err)
	}

	actor := service.Actor{UserID: me.ID}
	if me.RoommateProfile != nil {
		actor.RoommateID = *me.RoommateProfile
	}

	return &app{
		client:        client,
		membership:    service.NewMembershipService(client),
		invitations:   service.NewInvitationService(client),
		conversations: service.NewConversationService(client),
		actor:         actor,
	}, nil
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rentals",
		Short:         "Group, invitation and conversation workflows for the rentals marketplace",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("yes", "y", false, "skip confirmation prompts")

	root.AddCommand(groupsCmd())
	root.AddCommand(invitationsCmd())
	root.AddCommand(conversationsCmd())
	root.AddCommand(listingsCmd())
	root.AddCommand(roommatesCmd())
	return root
}

// confirm prompts on stdin before an action that cannot be undone. The
// --yes flag answers every prompt.
func confirm(cmd *cobra.Command, prompt string) bool {
	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
