package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusRejected:
		return true
	}
	return false
}

type EventLocation struct {
	Address   string   `json:"address" bson:"address"`
	Latitude  *float64 `json:"latitude,omitempty" bson:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty" bson:"longitude,omitempty"`
}

// FeedbackEntry is one user's vote inside an event document. Entries live
// only inside their parent event and are never addressed independently.
type FeedbackEntry struct {
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

type Event struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Description   string             `json:"description,omitempty" bson:"description,omitempty"`
	OrganizerName string             `json:"organizer_name" bson:"organizer_name"`
	Contact       string             `json:"contact,omitempty" bson:"contact,omitempty"`
	Location      EventLocation      `json:"location" bson:"location"`
	FoodItems     []string           `json:"food_items" bson:"food_items"`
	StartTime     time.Time          `json:"start_time" bson:"start_time"`
	EndTime       time.Time          `json:"end_time" bson:"end_time"`

	Status     EventStatus         `json:"status" bson:"status"`
	IsVerified bool                `json:"is_verified" bson:"is_verified"`
	VerifiedBy *primitive.ObjectID `json:"verified_by,omitempty" bson:"verified_by,omitempty"`
	VerifiedAt *time.Time          `json:"verified_at,omitempty" bson:"verified_at,omitempty"`
	IsActive   bool                `json:"is_active" bson:"is_active"`

	// Per-user feedback identities are never serialized to API clients.
	Likes    []FeedbackEntry `json:"-" bson:"likes"`
	Dislikes []FeedbackEntry `json:"-" bson:"dislikes"`

	TotalLikes    int `json:"total_likes" bson:"total_likes"`
	TotalDislikes int `json:"total_dislikes" bson:"total_dislikes"`
	TrustScore    int `json:"trust_score" bson:"trust_score"`

	// FeedbackVersion guards the feedback read-modify-write cycle; the
	// repository only applies a feedback update when the stored version
	// still matches the one that was read.
	FeedbackVersion int64 `json:"-" bson:"feedback_version"`

	CreatedBy       *primitive.ObjectID `json:"created_by,omitempty" bson:"created_by,omitempty"`
	ApprovedBy      *primitive.ObjectID `json:"approved_by,omitempty" bson:"approved_by,omitempty"`
	ApprovedAt      *time.Time          `json:"approved_at,omitempty" bson:"approved_at,omitempty"`
	RejectedBy      *primitive.ObjectID `json:"rejected_by,omitempty" bson:"rejected_by,omitempty"`
	RejectedAt      *time.Time          `json:"rejected_at,omitempty" bson:"rejected_at,omitempty"`
	RejectionReason string              `json:"rejection_reason,omitempty" bson:"rejection_reason,omitempty"`
	AdminNote       string              `json:"admin_note,omitempty" bson:"admin_note,omitempty"`
	DeletedBy       *primitive.ObjectID `json:"deleted_by,omitempty" bson:"deleted_by,omitempty"`
	DeletedAt       *time.Time          `json:"deleted_at,omitempty" bson:"deleted_at,omitempty"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// FeedbackSummary is what feedback endpoints return: aggregate counts plus
// the calling user's own flags, never the raw vote lists.
type FeedbackSummary struct {
	EventID       primitive.ObjectID `json:"event_id"`
	TotalLikes    int                `json:"total_likes"`
	TotalDislikes int                `json:"total_dislikes"`
	TrustScore    int                `json:"trust_score"`
	UserLiked     bool               `json:"user_liked"`
	UserDisliked  bool               `json:"user_disliked"`
}

// ComputeTrustScore derives the net-approval score from vote counts.
// Unanimous likes map to 100, unanimous dislikes to -100, no votes to 0.
func ComputeTrustScore(likes, dislikes int) int {
	total := likes + dislikes
	if total == 0 {
		return 0
	}
	score := float64(likes-dislikes) / float64(total) * 100
	score = math.Max(-100, math.Min(100, score))
	return int(math.Round(score))
}

// WindowsOverlap reports whether two time windows overlap, boundaries
// included: a window that merely touches another still counts.
func WindowsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

func (e *Event) HasLiked(userID primitive.ObjectID) bool {
	for _, entry := range e.Likes {
		if entry.UserID == userID {
			return true
		}
	}
	return false
}

func (e *Event) HasDisliked(userID primitive.ObjectID) bool {
	for _, entry := range e.Dislikes {
		if entry.UserID == userID {
			return true
		}
	}
	return false
}

// ApplyLike records a like for userID. Any standing dislike from the same
// user is removed first, so a user is never present in both lists. Calling
// it again for a user who already liked changes nothing.
func (e *Event) ApplyLike(userID primitive.ObjectID, now time.Time) {
	e.Dislikes = removeFeedback(e.Dislikes, userID)
	if !e.HasLiked(userID) {
		e.Likes = append(e.Likes, FeedbackEntry{UserID: userID, CreatedAt: now})
	}
	e.recountFeedback()
}

// ApplyDislike is the mirror of ApplyLike.
func (e *Event) ApplyDislike(userID primitive.ObjectID, now time.Time) {
	e.Likes = removeFeedback(e.Likes, userID)
	if !e.HasDisliked(userID) {
		e.Dislikes = append(e.Dislikes, FeedbackEntry{UserID: userID, CreatedAt: now})
	}
	e.recountFeedback()
}

// ClearFeedback removes userID from both lists unconditionally.
func (e *Event) ClearFeedback(userID primitive.ObjectID) {
	e.Likes = removeFeedback(e.Likes, userID)
	e.Dislikes = removeFeedback(e.Dislikes, userID)
	e.recountFeedback()
}

func (e *Event) FeedbackSummaryFor(userID primitive.ObjectID) *FeedbackSummary {
	return &FeedbackSummary{
		EventID:       e.ID,
		TotalLikes:    e.TotalLikes,
		TotalDislikes: e.TotalDislikes,
		TrustScore:    e.TrustScore,
		UserLiked:     e.HasLiked(userID),
		UserDisliked:  e.HasDisliked(userID),
	}
}

func (e *Event) recountFeedback() {
	e.TotalLikes = len(e.Likes)
	e.TotalDislikes = len(e.Dislikes)
	e.TrustScore = ComputeTrustScore(e.TotalLikes, e.TotalDislikes)
}

func removeFeedback(entries []FeedbackEntry, userID primitive.ObjectID) []FeedbackEntry {
	filtered := entries[:0]
	for _, entry := range entries {
		if entry.UserID != userID {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}
