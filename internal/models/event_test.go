package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestComputeTrustScore_ZeroFeedback(t *testing.T) {
	assert.Equal(t, 0, ComputeTrustScore(0, 0))
}

func TestComputeTrustScore_Unanimous(t *testing.T) {
	assert.Equal(t, 100, ComputeTrustScore(10, 0))
	assert.Equal(t, -100, ComputeTrustScore(0, 10))
}

func TestComputeTrustScore_NetApproval(t *testing.T) {
	// 7 likes, 3 dislikes: round((7-3)/10*100) = 40
	assert.Equal(t, 40, ComputeTrustScore(7, 3))
	assert.Equal(t, 0, ComputeTrustScore(5, 5))
	assert.Equal(t, 33, ComputeTrustScore(2, 1))
}

func TestComputeTrustScore_Bounds(t *testing.T) {
	for likes := 0; likes <= 25; likes++ {
		for dislikes := 0; dislikes <= 25; dislikes++ {
			score := ComputeTrustScore(likes, dislikes)
			assert.GreaterOrEqual(t, score, -100)
			assert.LessOrEqual(t, score, 100)
		}
	}
}

func TestComputeTrustScore_Symmetry(t *testing.T) {
	for a := 0; a <= 15; a++ {
		for b := 0; b <= 15; b++ {
			assert.Equal(t, ComputeTrustScore(a, b), -ComputeTrustScore(b, a))
		}
	}
}

func TestEvent_ApplyLike_MutualExclusion(t *testing.T) {
	event := &Event{}
	user := primitive.NewObjectID()
	now := time.Now()

	event.ApplyDislike(user, now)
	require.True(t, event.HasDisliked(user))

	event.ApplyLike(user, now)

	assert.True(t, event.HasLiked(user))
	assert.False(t, event.HasDisliked(user))
	assert.Equal(t, 1, event.TotalLikes)
	assert.Equal(t, 0, event.TotalDislikes)
}

func TestEvent_ApplyLike_Idempotent(t *testing.T) {
	event := &Event{}
	user := primitive.NewObjectID()
	now := time.Now()

	event.ApplyLike(user, now)
	event.ApplyLike(user, now.Add(time.Minute))

	assert.Equal(t, 1, event.TotalLikes)
	assert.Len(t, event.Likes, 1)
}

func TestEvent_ClearFeedback(t *testing.T) {
	event := &Event{}
	user := primitive.NewObjectID()
	other := primitive.NewObjectID()
	now := time.Now()

	event.ApplyLike(user, now)
	event.ApplyDislike(other, now)
	event.ClearFeedback(user)

	assert.False(t, event.HasLiked(user))
	assert.False(t, event.HasDisliked(user))
	assert.Equal(t, 0, event.TotalLikes)
	assert.Equal(t, 1, event.TotalDislikes)
	assert.True(t, event.HasDisliked(other))
}

func TestEvent_FeedbackSequence_CountersConsistent(t *testing.T) {
	event := &Event{}
	users := make([]primitive.ObjectID, 5)
	for i := range users {
		users[i] = primitive.NewObjectID()
	}
	now := time.Now()

	event.ApplyLike(users[0], now)
	event.ApplyLike(users[1], now)
	event.ApplyDislike(users[1], now)
	event.ApplyDislike(users[2], now)
	event.ClearFeedback(users[0])
	event.ApplyLike(users[3], now)
	event.ApplyLike(users[4], now)

	assert.Equal(t, len(event.Likes), event.TotalLikes)
	assert.Equal(t, len(event.Dislikes), event.TotalDislikes)
	assert.Equal(t, ComputeTrustScore(event.TotalLikes, event.TotalDislikes), event.TrustScore)

	// No user appears in both lists.
	for _, like := range event.Likes {
		assert.False(t, event.HasDisliked(like.UserID))
	}
}

func TestEvent_ToggleScenario(t *testing.T) {
	event := &Event{}
	user := primitive.NewObjectID()
	now := time.Now()

	event.ApplyLike(user, now)
	assert.Equal(t, 1, event.TotalLikes)
	assert.Equal(t, 0, event.TotalDislikes)

	event.ApplyDislike(user, now)
	assert.Equal(t, 0, event.TotalLikes)
	assert.Equal(t, 1, event.TotalDislikes)

	event.ClearFeedback(user)
	assert.Equal(t, 0, event.TotalLikes)
	assert.Equal(t, 0, event.TotalDislikes)
	assert.Equal(t, 0, event.TrustScore)
}

func TestWindowsOverlap(t *testing.T) {
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute) }

	// Existing event 18:00-19:00.
	start, end := at(18, 0), at(19, 0)

	assert.True(t, WindowsOverlap(start, end, at(18, 30), at(19, 30)))
	// Touching boundary still counts.
	assert.True(t, WindowsOverlap(start, end, at(19, 0), at(20, 0)))
	assert.True(t, WindowsOverlap(start, end, at(17, 0), at(18, 0)))
	// Candidate fully containing the existing window.
	assert.True(t, WindowsOverlap(start, end, at(17, 0), at(20, 0)))
	assert.False(t, WindowsOverlap(start, end, at(20, 0), at(21, 0)))
	assert.False(t, WindowsOverlap(start, end, at(16, 0), at(17, 59)))
}

func TestFeedbackSummaryFor(t *testing.T) {
	event := &Event{ID: primitive.NewObjectID()}
	user := primitive.NewObjectID()
	other := primitive.NewObjectID()
	now := time.Now()

	event.ApplyLike(user, now)
	event.ApplyDislike(other, now)

	summary := event.FeedbackSummaryFor(user)
	assert.Equal(t, event.ID, summary.EventID)
	assert.Equal(t, 1, summary.TotalLikes)
	assert.Equal(t, 1, summary.TotalDislikes)
	assert.Equal(t, 0, summary.TrustScore)
	assert.True(t, summary.UserLiked)
	assert.False(t, summary.UserDisliked)
}
