package service

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/simplerentals/rentals-go/internal/http/marketplace"
	"github.com/simplerentals/rentals-go/internal/model"
)

// ConversationAPI is the slice of the marketplace client the conversation
// service needs.
type ConversationAPI interface {
	Conversations(ctx context.Context) ([]model.Conversation, error)
	GetConversation(ctx context.Context, conversationID int64) (model.Conversation, error)
	StartConversation(ctx context.Context, listingID int64, participants []int64) (model.Conversation, error)
	SendMessage(ctx context.Context, conversationID int64, content string) (model.Message, error)
	LeaveConversation(ctx context.Context, conversationID int64) error
	DeleteConversation(ctx context.Context, conversationID int64) error
}

// ConversationService resolves and manages per-listing message threads.
type ConversationService struct {
	api ConversationAPI
}

func NewConversationService(api ConversationAPI) *ConversationService {
	return &ConversationService{api: api}
}

// FindOrCreate returns the conversation for a listing and an exact
// participant set, creating it only when no match exists. The remote API
// does not enforce the one-thread-per-pair invariant, so the lookup
// happens before every create; should the server hold duplicates anyway,
// the first match wins. The listing is re-listed on every call rather
// than cached, a linear scan that is acceptable at this scale.
func (s *ConversationService) FindOrCreate(ctx context.Context, listingID int64, participantIDs []int64) (conv model.Conversation, created bool, err error) {
	existing, err := s.api.Conversations(ctx)
	if err != nil {
		return model.Conversation{}, false, errors.Wrap(err, "list conversations")
	}

	for _, c := range existing {
		if c.Listing.ID == listingID && c.HasParticipants(participantIDs) {
			slog.Info("conversation found", "conversation_id", c.ID, "listing_id", listingID)
			return c, false, nil
		}
	}

	conv, err = s.api.StartConversation(ctx, listingID, participantIDs)
	if err != nil {
		slog.Error("start conversation failed", "listing_id", listingID, "error", err)
		return model.Conversation{}, false, errors.Wrap(err, "start conversation")
	}
	slog.Info("conversation started", "conversation_id", conv.ID, "listing_id", listingID)
	return conv, true, nil
}

// Send appends a message and re-fetches the thread so the caller renders
// the authoritative ordering, not a locally assumed one.
func (s *ConversationService) Send(ctx context.Context, conversationID int64, content string) (model.Conversation, error) {
	if content == "" {
		return model.Conversation{}, errors.Wrap(
			&marketplace.APIError{Kind: marketplace.KindConflict, Detail: "message content is empty"},
			"send message")
	}
	if _, err := s.api.SendMessage(ctx, conversationID, content); err != nil {
		slog.Error("send message failed", "conversation_id", conversationID, "error", err)
		return model.Conversation{}, errors.Wrap(err, "send message")
	}
	conv, err := s.api.GetConversation(ctx, conversationID)
	if err != nil {
		return model.Conversation{}, errors.Wrap(err, "refetch conversation after send")
	}
	return conv, nil
}

// Leave removes the caller from the thread. Callers confirm first.
func (s *ConversationService) Leave(ctx context.Context, conversationID int64) error {
	if err := s.api.LeaveConversation(ctx, conversationID); err != nil {
		slog.Error("leave conversation failed", "conversation_id", conversationID, "error", err)
		return errors.Wrap(err, "leave conversation")
	}
	slog.Info("left conversation", "conversation_id", conversationID)
	return nil
}

// Delete removes the whole thread. Callers confirm first.
func (s *ConversationService) Delete(ctx context.Context, conversationID int64) error {
	if err := s.api.DeleteConversation(ctx, conversationID); err != nil {
		slog.Error("delete conversation failed", "conversation_id", conversationID, "error", err)
		return errors.Wrap(err, "delete conversation")
	}
	slog.Info("conversation deleted", "conversation_id", conversationID)
	return nil
}

func notFound(detail string) error {
	return &marketplace.APIError{Kind: marketplace.KindNotFound, Detail: detail}
}
