package services

import (
	"context"
	"time"

	"bhandara/internal/models"
	"bhandara/internal/repositories/interfaces"
	"bhandara/internal/utils"
	"bhandara/internal/validators"
	"bhandara/pkg/geocode"
	"bhandara/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService interface {
	Create(ctx context.Context, creatorID primitive.ObjectID, req *validators.EventCreateRequest) (*models.Event, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	ListPublic(ctx context.Context, status models.EventStatus, params *utils.PaginationParams) ([]*models.Event, int64, error)
	ListByCreator(ctx context.Context, creatorID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Event, int64, error)
	ListAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Event, int64, error)
	UpdateStatus(ctx context.Context, id, adminID primitive.ObjectID, req *validators.EventStatusUpdateRequest) (*models.Event, error)
	SetVerification(ctx context.Context, id, adminID primitive.ObjectID, isVerified bool) (*models.Event, error)
	SoftDelete(ctx context.Context, id, adminID primitive.ObjectID) error
}

type eventService struct {
	repo     interfaces.EventRepository
	cache    CacheService
	geocoder geocode.Geocoder
	logger   *logger.Logger
}

// NewEventService wires the submission, moderation and read paths.
// geocoder may be nil; coordinates are then left as submitted.
func NewEventService(repo interfaces.EventRepository, cache CacheService, geocoder geocode.Geocoder, log *logger.Logger) EventService {
	return &eventService{
		repo:     repo,
		cache:    cache,
		geocoder: geocoder,
		logger:   log,
	}
}

// Create validates the submission, runs the duplicate/overlap guard and
// persists the event in pending state.
func (s *eventService) Create(ctx context.Context, creatorID primitive.ObjectID, req *validators.EventCreateRequest) (*models.Event, error) {
	if errs := validators.ValidateEventCreate(req); len(errs) > 0 {
		return nil, errs
	}

	overlapping, err := s.repo.HasOverlapping(ctx, req.Location.Address, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}
	if overlapping {
		return nil, models.ErrEventConflict
	}

	event := &models.Event{
		Title:         req.Title,
		Description:   req.Description,
		OrganizerName: req.OrganizerName,
		Contact:       utils.NormalizeContact(req.Contact),
		Location: models.EventLocation{
			Address:   req.Location.Address,
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
		},
		FoodItems: validators.NormalizeFoodItems(req.FoodItems),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    models.EventStatusPending,
		IsActive:  true,
		CreatedBy: &creatorID,
		Likes:     []models.FeedbackEntry{},
		Dislikes:  []models.FeedbackEntry{},
	}

	s.backfillCoordinates(ctx, event)

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)

	s.logger.WithContext(ctx).
		WithEventID(event.ID).
		WithUserID(creatorID).
		Info("Event submitted")

	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var cached models.Event
	if err := s.cache.Get(ctx, eventCacheKey(id), &cached); err == nil {
		return &cached, nil
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, eventCacheKey(id), event, utils.EventCacheTTL); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to cache event")
	}

	return event, nil
}

func (s *eventService) ListPublic(ctx context.Context, status models.EventStatus, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	type listingPage struct {
		Events []*models.Event `json:"events"`
		Total  int64           `json:"total"`
	}

	key := eventListCacheKey(string(status), params.Page, params.PageSize)
	var cached listingPage
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached.Events, cached.Total, nil
	}

	events, total, err := s.repo.ListPublic(ctx, status, params)
	if err != nil {
		return nil, 0, err
	}

	if err := s.cache.Set(ctx, key, &listingPage{Events: events, Total: total}, utils.EventListCacheTTL); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to cache event listing")
	}

	return events, total, nil
}

func (s *eventService) ListByCreator(ctx context.Context, creatorID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	return s.repo.ListByCreator(ctx, creatorID, params)
}

func (s *eventService) ListAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	return s.repo.ListAll(ctx, params)
}

// UpdateStatus assigns any of the three moderation states. Reassignment is
// deliberately unrestricted; only the audit trail depends on the new state.
func (s *eventService) UpdateStatus(ctx context.Context, id, adminID primitive.ObjectID, req *validators.EventStatusUpdateRequest) (*models.Event, error) {
	if errs := validators.ValidateStruct(req); len(errs) > 0 {
		return nil, errs
	}

	now := time.Now()
	updates := map[string]interface{}{
		"status": models.EventStatus(req.Status),
	}
	switch models.EventStatus(req.Status) {
	case models.EventStatusApproved:
		updates["approved_by"] = adminID
		updates["approved_at"] = now
	case models.EventStatusRejected:
		updates["rejected_by"] = adminID
		updates["rejected_at"] = now
		if req.RejectionReason != "" {
			updates["rejection_reason"] = req.RejectionReason
		}
	}
	if req.AdminNote != "" {
		updates["admin_note"] = req.AdminNote
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	s.invalidateEvent(ctx, id)

	s.logger.WithContext(ctx).
		WithEventID(id).
		WithUserID(adminID).
		WithField("status", req.Status).
		Info("Event moderation status updated")

	return s.repo.GetByID(ctx, id)
}

func (s *eventService) SetVerification(ctx context.Context, id, adminID primitive.ObjectID, isVerified bool) (*models.Event, error) {
	updates := map[string]interface{}{
		"is_verified": isVerified,
	}
	if isVerified {
		updates["verified_by"] = adminID
		updates["verified_at"] = time.Now()
	} else {
		updates["verified_by"] = nil
		updates["verified_at"] = nil
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}

	s.invalidateEvent(ctx, id)

	return s.repo.GetByID(ctx, id)
}

func (s *eventService) SoftDelete(ctx context.Context, id, adminID primitive.ObjectID) error {
	updates := map[string]interface{}{
		"is_active":  false,
		"deleted_by": adminID,
		"deleted_at": time.Now(),
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return err
	}

	s.invalidateEvent(ctx, id)

	s.logger.WithContext(ctx).
		WithEventID(id).
		WithUserID(adminID).
		Info("Event soft-deleted")

	return nil
}

func (s *eventService) backfillCoordinates(ctx context.Context, event *models.Event) {
	if s.geocoder == nil {
		return
	}
	if event.Location.Latitude != nil && event.Location.Longitude != nil {
		return
	}

	point, err := s.geocoder.Geocode(ctx, event.Location.Address)
	if err != nil {
		// Coordinates are optional; a failed lookup never blocks submission.
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to geocode event address")
		return
	}

	event.Location.Latitude = &point.Latitude
	event.Location.Longitude = &point.Longitude
}

func (s *eventService) invalidateEvent(ctx context.Context, id primitive.ObjectID) {
	if err := s.cache.Delete(ctx, eventCacheKey(id)); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to invalidate event cache")
	}
	s.invalidateListings(ctx)
}

func (s *eventService) invalidateListings(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, utils.EventListCacheGlob); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to invalidate listing cache")
	}
}
