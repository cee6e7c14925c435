package services

import (
	"context"
	"time"

	"bhandara/internal/models"
	"bhandara/internal/repositories/interfaces"
	"bhandara/internal/utils"
	"bhandara/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FeedbackService interface {
	// Like toggles the user's like on an approved event: a first call
	// records the like (clearing any standing dislike), a repeat call
	// removes it.
	Like(ctx context.Context, eventID, userID primitive.ObjectID) (*models.FeedbackSummary, error)
	// Dislike is the mirror of Like.
	Dislike(ctx context.Context, eventID, userID primitive.ObjectID) (*models.FeedbackSummary, error)
	Status(ctx context.Context, eventID, userID primitive.ObjectID) (*models.FeedbackSummary, error)
}

type feedbackService struct {
	repo   interfaces.EventRepository
	cache  CacheService
	logger *logger.Logger
}

func NewFeedbackService(repo interfaces.EventRepository, cache CacheService, log *logger.Logger) FeedbackService {
	return &feedbackService{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func (s *feedbackService) Like(ctx context.Context, eventID, userID primitive.ObjectID) (*models.FeedbackSummary, error) {
	return s.apply(ctx, eventID, userID, func(event *models.Event) {
		if event.HasLiked(userID) {
			event.ClearFeedback(userID)
		} else {
			event.ApplyLike(userID, time.Now())
		}
	})
}

func (s *feedbackService) Dislike(ctx context.Context, eventID, userID primitive.ObjectID) (*models.FeedbackSummary, error) {
	return s.apply(ctx, eventID, userID, func(event *models.Event) {
		if event.HasDisliked(userID) {
			event.ClearFeedback(userID)
		} else {
			event.ApplyDislike(userID, time.Now())
		}
	})
}

func (s *feedbackService) Status(ctx context.Context, eventID, userID primitive.ObjectID) (*models.FeedbackSummary, error) {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return event.FeedbackSummaryFor(userID), nil
}

// apply runs one read-modify-write cycle against the event document,
// retrying when another writer bumps the feedback version in between.
// The read goes straight to the repository; the document cache would
// defeat the version check.
func (s *feedbackService) apply(ctx context.Context, eventID, userID primitive.ObjectID, mutate func(*models.Event)) (*models.FeedbackSummary, error) {
	var lastErr error

	for attempt := 0; attempt < utils.FeedbackRetryLimit; attempt++ {
		event, err := s.repo.GetByID(ctx, eventID)
		if err != nil {
			return nil, err
		}

		if event.Status != models.EventStatusApproved {
			return nil, models.ErrEventNotApproved
		}

		mutate(event)

		if err := s.repo.UpdateFeedback(ctx, event); err != nil {
			if err == models.ErrFeedbackConflict {
				lastErr = err
				continue
			}
			return nil, err
		}

		s.invalidate(ctx, eventID)

		return event.FeedbackSummaryFor(userID), nil
	}

	s.logger.WithContext(ctx).
		WithEventID(eventID).
		WithUserID(userID).
		Warn("Feedback update exhausted retries")

	return nil, lastErr
}

func (s *feedbackService) invalidate(ctx context.Context, eventID primitive.ObjectID) {
	if err := s.cache.Delete(ctx, eventCacheKey(eventID)); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to invalidate event cache")
	}
	// Feedback changes reorder the trust-score sorted listing.
	if err := s.cache.DeletePattern(ctx, utils.EventListCacheGlob); err != nil {
		s.logger.WithContext(ctx).WithError(err).Warn("Failed to invalidate listing cache")
	}
}
