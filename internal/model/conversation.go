package model

import (
	"sort"
	"time"
)

// Message is a single entry in a conversation thread.
type Message struct {
	ID        int64     `json:"id"`
	Sender    User      `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// Conversation is a message thread tied to exactly one listing and a set
// of participant users. The participants field carries user ids only; the
// detail endpoint expands messages.
type Conversation struct {
	ID           int64     `json:"id"`
	Listing      Listing   `json:"listing"`
	Participants []int64   `json:"participants"`
	Messages     []Message `json:"messages,omitempty"`
	LastUpdated  time.Time `json:"last_updated"`
}

// HasParticipants reports whether the conversation's participant set
// equals ids, ignoring order. Used by the resolver to find an existing
// thread before creating a new one.
func (c *Conversation) HasParticipants(ids []int64) bool {
	if len(c.Participants) != len(ids) {
		return false
	}
	a := append([]int64(nil), c.Participants...)
	b := append([]int64(nil), ids...)
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
