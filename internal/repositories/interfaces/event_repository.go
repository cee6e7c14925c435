package interfaces

import (
	"context"
	"time"

	"bhandara/internal/models"
	"bhandara/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error

	// Listings
	ListPublic(ctx context.Context, status models.EventStatus, params *utils.PaginationParams) ([]*models.Event, int64, error)
	ListByCreator(ctx context.Context, creatorID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Event, int64, error)
	ListAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Event, int64, error)

	// Duplicate/overlap guard: true when an active pending or approved
	// event matches the address (case-insensitive substring) and its time
	// window overlaps [startTime, endTime], boundaries included.
	HasOverlapping(ctx context.Context, address string, startTime, endTime time.Time) (bool, error)

	// UpdateFeedback persists the event's feedback state. The write only
	// applies when the stored feedback version still equals the version
	// the event was read with; otherwise models.ErrFeedbackConflict is
	// returned and the caller re-reads and retries.
	UpdateFeedback(ctx context.Context, event *models.Event) error
}
