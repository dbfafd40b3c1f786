package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simplerentals/rentals-go/internal/http/marketplace"
	"github.com/simplerentals/rentals-go/internal/model"
)

type fakeConversationAPI struct {
	conversations []model.Conversation
	starts        int
	sends         []string
}

func (f *fakeConversationAPI) Conversations(context.Context) ([]model.Conversation, error) {
	return f.conversations, nil
}

func (f *fakeConversationAPI) GetConversation(_ context.Context, conversationID int64) (model.Conversation, error) {
	for _, c := range f.conversations {
		if c.ID == conversationID {
			return c, nil
		}
	}
	return model.Conversation{}, &marketplace.APIError{Kind: marketplace.KindNotFound, Detail: "conversation not found"}
}

func (f *fakeConversationAPI) StartConversation(_ context.Context, listingID int64, participants []int64) (model.Conversation, error) {
	f.starts++
	c := model.Conversation{
		ID:           int64(100 + f.starts),
		Listing:      model.Listing{ID: listingID},
		Participants: participants,
		LastUpdated:  time.Now(),
	}
	f.conversations = append(f.conversations, c)
	return c, nil
}

func (f *fakeConversationAPI) SendMessage(_ context.Context, conversationID int64, content string) (model.Message, error) {
	f.sends = append(f.sends, content)
	for i, c := range f.conversations {
		if c.ID == conversationID {
			f.conversations[i].Messages = append(c.Messages, model.Message{Content: content})
			return model.Message{Content: content}, nil
		}
	}
	return model.Message{}, &marketplace.APIError{Kind: marketplace.KindNotFound, Detail: "conversation not found"}
}

func (f *fakeConversationAPI) LeaveConversation(context.Context, int64) error { return nil }
func (f *fakeConversationAPI) DeleteConversation(context.Context, int64) error { return nil }

func TestFindOrCreateFindsExisting(t *testing.T) {
	api := &fakeConversationAPI{
		conversations: []model.Conversation{
			{ID: 1, Listing: model.Listing{ID: 7}, Participants: []int64{10, 30}},
		},
	}
	svc := NewConversationService(api)

	// Participant order must not matter.
	conv, created, err := svc.FindOrCreate(context.Background(), 7, []int64{30, 10})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), conv.ID)
	assert.Zero(t, api.starts, "an existing thread must not be recreated")
}

func TestFindOrCreateCreatesOnce(t *testing.T) {
	api := &fakeConversationAPI{}
	svc := NewConversationService(api)

	conv, created, err := svc.FindOrCreate(context.Background(), 7, []int64{10, 30})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 1, api.starts)

	again, created, err := svc.FindOrCreate(context.Background(), 7, []int64{30, 10})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, conv.ID, again.ID)
	assert.Equal(t, 1, api.starts)
}

func TestFindOrCreateDistinguishesListings(t *testing.T) {
	api := &fakeConversationAPI{
		conversations: []model.Conversation{
			{ID: 1, Listing: model.Listing{ID: 7}, Participants: []int64{10, 30}},
		},
	}
	svc := NewConversationService(api)

	_, created, err := svc.FindOrCreate(context.Background(), 8, []int64{10, 30})
	require.NoError(t, err)
	assert.True(t, created, "same participants on another listing is a different thread")
}

func TestFindOrCreateFirstMatchWins(t *testing.T) {
	api := &fakeConversationAPI{
		conversations: []model.Conversation{
			{ID: 1, Listing: model.Listing{ID: 7}, Participants: []int64{10, 30}},
			{ID: 2, Listing: model.Listing{ID: 7}, Participants: []int64{10, 30}},
		},
	}
	svc := NewConversationService(api)

	conv, created, err := svc.FindOrCreate(context.Background(), 7, []int64{10, 30})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), conv.ID)
}

func TestSendRefetchesThread(t *testing.T) {
	api := &fakeConversationAPI{
		conversations: []model.Conversation{
			{ID: 1, Listing: model.Listing{ID: 7}, Participants: []int64{10, 30}},
		},
	}
	svc := NewConversationService(api)

	conv, err := svc.Send(context.Background(), 1, "hello")
	require.NoError(t, err)
	assert.Len(t, conv.Messages, 1)
	assert.Equal(t, []string{"hello"}, api.sends)
}

func TestSendEmptyContent(t *testing.T) {
	api := &fakeConversationAPI{}
	svc := NewConversationService(api)

	_, err := svc.Send(context.Background(), 1, "")
	require.Error(t, err)
	assert.True(t, marketplace.IsConflict(err))
	assert.Empty(t, api.sends)
}
