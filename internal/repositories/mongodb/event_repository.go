package mongodb

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"bhandara/internal/models"
	"bhandara/internal/repositories/interfaces"
	"bhandara/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type eventRepository struct {
	collection *mongo.Collection
}

func NewEventRepository(db *mongo.Database) interfaces.EventRepository {
	return &eventRepository{
		collection: db.Collection("events"),
	}
}

func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	if event.Likes == nil {
		event.Likes = []models.FeedbackEntry{}
	}
	if event.Dislikes == nil {
		event.Dislikes = []models.FeedbackEntry{}
	}

	_, err := r.collection.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "is_active": true}).Decode(&event)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (r *eventRepository) Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "is_active": true},
		bson.M{"$set": updates},
	)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	if result.MatchedCount == 0 {
		return models.ErrEventNotFound
	}

	return nil
}

func (r *eventRepository) ListPublic(ctx context.Context, status models.EventStatus, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	filter := bson.M{
		"status":    status,
		"is_active": true,
	}
	// Past events drop off the public listing once they have ended.
	if status == models.EventStatusApproved {
		filter["end_time"] = bson.M{"$gte": time.Now()}
	}

	opts := params.GetFindOptions().SetSort(bson.D{
		{Key: "trust_score", Value: -1},
		{Key: "start_time", Value: 1},
	})

	return r.findEvents(ctx, filter, opts)
}

func (r *eventRepository) ListByCreator(ctx context.Context, creatorID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	filter := bson.M{
		"created_by": creatorID,
		"is_active":  true,
	}

	opts := params.GetFindOptions().SetSort(bson.D{{Key: "created_at", Value: -1}})

	return r.findEvents(ctx, filter, opts)
}

func (r *eventRepository) ListAll(ctx context.Context, params *utils.PaginationParams) ([]*models.Event, int64, error) {
	filter := bson.M{"is_active": true}

	opts := params.GetFindOptions().SetSort(bson.D{{Key: "created_at", Value: -1}})

	return r.findEvents(ctx, filter, opts)
}

func (r *eventRepository) HasOverlapping(ctx context.Context, address string, startTime, endTime time.Time) (bool, error) {
	filter := bson.M{
		"is_active": true,
		"status":    bson.M{"$in": []models.EventStatus{models.EventStatusPending, models.EventStatusApproved}},
		"location.address": primitive.Regex{
			Pattern: regexp.QuoteMeta(address),
			Options: "i",
		},
		"$or": []bson.M{
			{"start_time": bson.M{"$lte": startTime}, "end_time": bson.M{"$gte": startTime}},
			{"start_time": bson.M{"$lte": endTime}, "end_time": bson.M{"$gte": endTime}},
			{"start_time": bson.M{"$gte": startTime}, "end_time": bson.M{"$lte": endTime}},
		},
	}

	count, err := r.collection.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping events: %w", err)
	}

	return count > 0, nil
}

func (r *eventRepository) UpdateFeedback(ctx context.Context, event *models.Event) error {
	filter := bson.M{
		"_id":              event.ID,
		"is_active":        true,
		"feedback_version": event.FeedbackVersion,
	}
	update := bson.M{
		"$set": bson.M{
			"likes":          event.Likes,
			"dislikes":       event.Dislikes,
			"total_likes":    event.TotalLikes,
			"total_dislikes": event.TotalDislikes,
			"trust_score":    event.TrustScore,
			"updated_at":     time.Now(),
		},
		"$inc": bson.M{"feedback_version": 1},
	}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update feedback: %w", err)
	}

	if result.MatchedCount == 0 {
		// Either the event is gone or another writer won the version race.
		exists, err := r.collection.CountDocuments(ctx,
			bson.M{"_id": event.ID, "is_active": true},
			options.Count().SetLimit(1))
		if err != nil {
			return fmt.Errorf("failed to update feedback: %w", err)
		}
		if exists == 0 {
			return models.ErrEventNotFound
		}
		return models.ErrFeedbackConflict
	}

	return nil
}

func (r *eventRepository) findEvents(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Event, int64, error) {
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count events: %w", err)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []*models.Event
	for cursor.Next(ctx) {
		var event models.Event
		if err := cursor.Decode(&event); err != nil {
			return nil, 0, fmt.Errorf("failed to decode event: %w", err)
		}
		events = append(events, &event)
	}
	if err := cursor.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate events: %w", err)
	}

	return events, total, nil
}

// EnsureEventIndexes creates the indexes the read and guard paths rely on.
func EnsureEventIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "is_active", Value: 1},
			{Key: "end_time", Value: 1},
		}},
		{Keys: bson.D{
			{Key: "created_by", Value: 1},
			{Key: "created_at", Value: -1},
		}},
		{Keys: bson.D{
			{Key: "start_time", Value: 1},
			{Key: "end_time", Value: 1},
		}},
	}

	_, err := db.Collection("events").Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create event indexes: %w", err)
	}
	return nil
}
