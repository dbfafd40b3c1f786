package marketplace

import (
	"context"
	"fmt"

	"github.com/simplerentals/rentals-go/internal/model"
)

// Conversations lists every conversation visible to the caller.
func (c *Client) Conversations(ctx context.Context) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := c.get(ctx, "/conversations/", &convs)
	return convs, err
}

// GetConversation fetches a conversation with its messages.
func (c *Client) GetConversation(ctx context.Context, conversationID int64) (model.Conversation, error) {
	var conv model.Conversation
	err := c.get(ctx, fmt.Sprintf("/conversations/%d/", conversationID), &conv)
	return conv, err
}

type startConversationPayload struct {
	Participants []int64 `json:"participants,omitempty"`
}

// StartConversation creates a new thread on a listing. With no explicit
// participants the server pairs the caller with the listing owner.
func (c *Client) StartConversation(ctx context.Context, listingID int64, participants []int64) (model.Conversation, error) {
	var conv model.Conversation
	payload := startConversationPayload{Participants: participants}
	err := c.post(ctx, fmt.Sprintf("/listing/%d/start_conversation", listingID), payload, &conv)
	return conv, err
}

type messagePayload struct {
	Content string `json:"content"`
}

// SendMessage appends a message to a conversation the caller is in.
func (c *Client) SendMessage(ctx context.Context, conversationID int64, content string) (model.Message, error) {
	var msg model.Message
	err := c.post(ctx, fmt.Sprintf("/conversations/%d/send_message/", conversationID), messagePayload{Content: content}, &msg)
	return msg, err
}

// LeaveConversation removes the caller from a thread's participant set.
func (c *Client) LeaveConversation(ctx context.Context, conversationID int64) error {
	return c.post(ctx, fmt.Sprintf("/conversations/leave/%d", conversationID), nil, nil)
}

// DeleteConversation removes the whole thread.
func (c *Client) DeleteConversation(ctx context.Context, conversationID int64) error {
	return c.delete(ctx, fmt.Sprintf("/conversations/delete/%d", conversationID))
}
