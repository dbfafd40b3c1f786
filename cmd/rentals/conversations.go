package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func conversationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversations",
		Short: "Message other users about a listing",
	}
	cmd.AddCommand(conversationsListCmd())
	cmd.AddCommand(conversationsResolveCmd())
	cmd.AddCommand(conversationsSendCmd())
	cmd.AddCommand(conversationsLeaveCmd())
	cmd.AddCommand(conversationsDeleteCmd())
	return cmd
}

func conversationsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your conversations",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			convs, err := a.client.Conversations(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range convs {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: listing %d at %s, %d participant(s)\n",
					c.ID, c.Listing.ID, c.Listing.StreetAddress, len(c.Participants))
			}
			return nil
		},
	}
}

func conversationsResolveCmd() *cobra.Command {
	var participants []int64
	cmd := &cobra.Command{
		Use:   "resolve <listing-id>",
		Short: "Open the thread for a listing, creating it only if none exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listingID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			conv, created, err := a.conversations.FindOrCreate(cmd.Context(), listingID, participants)
			if err != nil {
				return err
			}
			if created {
				fmt.Fprintf(cmd.OutOrStdout(), "Started conversation %d\n", conv.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Conversation %d already exists\n", conv.ID)
			}
			for _, msg := range conv.Messages {
				fmt.Fprintf(cmd.OutOrStdout(), "  [%s] %s: %s\n",
					msg.CreatedAt.Format("2006-01-02 15:04"), msg.Sender.FirstName, msg.Content)
			}
			return nil
		},
	}
	cmd.Flags().Int64SliceVar(&participants, "with", nil, "participant user ids; defaults to you and the listing owner")
	return cmd
}

func conversationsSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send <conversation-id> <message>",
		Short: "Send a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			conversationID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			conv, err := a.conversations.Send(cmd.Context(), conversationID, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sent. Conversation %d has %d message(s)\n", conv.ID, len(conv.Messages))
			return nil
		},
	}
}

func conversationsLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <conversation-id>",
		Short: "Leave a conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conversationID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if !confirm(cmd, fmt.Sprintf("Leave conversation %d?", conversationID)) {
				return nil
			}
			if err := a.conversations.Leave(cmd.Context(), conversationID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Left conversation %d\n", conversationID)
			return nil
		},
	}
}

func conversationsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <conversation-id>",
		Short: "Delete a conversation for every participant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conversationID, err := parseID(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			if !confirm(cmd, fmt.Sprintf("Delete conversation %d for all participants?", conversationID)) {
				return nil
			}
			if err := a.conversations.Delete(cmd.Context(), conversationID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Conversation %d deleted\n", conversationID)
			return nil
		},
	}
}
