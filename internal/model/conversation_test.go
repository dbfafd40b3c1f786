package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasParticipants(t *testing.T) {
	c := Conversation{Participants: []int64{7, 3}}

	assert.True(t, c.HasParticipants([]int64{3, 7}))
	assert.True(t, c.HasParticipants([]int64{7, 3}))
	assert.False(t, c.HasParticipants([]int64{3, 8}))
	assert.False(t, c.HasParticipants([]int64{3}))
	assert.False(t, c.HasParticipants([]int64{3, 7, 9}))

	// The input slice is not reordered.
	ids := []int64{7, 3}
	c.HasParticipants(ids)
	assert.Equal(t, []int64{7, 3}, ids)
}
