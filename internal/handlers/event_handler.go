package handlers

import (
	"context"
	"errors"

	"bhandara/internal/models"
	"bhandara/internal/services"
	"bhandara/internal/utils"
	"bhandara/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventHandler struct {
	eventService    services.EventService
	feedbackService services.FeedbackService
}

func NewEventHandler(eventService services.EventService, feedbackService services.FeedbackService) *EventHandler {
	return &EventHandler{
		eventService:    eventService,
		feedbackService: feedbackService,
	}
}

// ListEvents returns the public listing: approved, active, not yet ended,
// best trust score first.
func (h *EventHandler) ListEvents(c *gin.Context) {
	status := models.EventStatus(c.DefaultQuery("status", string(models.EventStatusApproved)))
	if !status.IsValid() {
		utils.BadRequestResponse(c, "Invalid status filter")
		return
	}

	params := utils.GetPaginationParams(c)
	events, total, err := h.eventService.ListPublic(c.Request.Context(), status, params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Events retrieved successfully", stripCreators(events), &utils.Meta{
		Pagination: params.GetMeta(total),
		Count:      len(events),
	})
}

// CreateEvent accepts a community submission and stores it pending review.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var request validators.EventCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), userID, &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.CreatedResponse(c, "Event submitted for review", gin.H{
		"id":     event.ID,
		"status": event.Status,
	})
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, ok := h.eventIDParam(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), eventID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sanitized := *event
	sanitized.CreatedBy = nil

	utils.SuccessResponse(c, "Event retrieved successfully", &sanitized)
}

// ListMyEvents returns the authenticated user's submissions, including the
// moderator audit fields.
func (h *EventHandler) ListMyEvents(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	events, total, err := h.eventService.ListByCreator(c.Request.Context(), userID, params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Events retrieved successfully", events, &utils.Meta{
		Pagination: params.GetMeta(total),
		Count:      len(events),
	})
}

// ListAdminEvents returns the moderation queue: every active event
// regardless of status, newest first.
func (h *EventHandler) ListAdminEvents(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	events, total, err := h.eventService.ListAll(c.Request.Context(), params)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Events retrieved successfully", events, &utils.Meta{
		Pagination: params.GetMeta(total),
		Count:      len(events),
	})
}

func (h *EventHandler) UpdateEventStatus(c *gin.Context) {
	eventID, ok := h.eventIDParam(c)
	if !ok {
		return
	}

	adminID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var request validators.EventStatusUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	event, err := h.eventService.UpdateStatus(c.Request.Context(), eventID, adminID, &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Event status updated successfully", event)
}

func (h *EventHandler) ToggleVerification(c *gin.Context) {
	eventID, ok := h.eventIDParam(c)
	if !ok {
		return
	}

	adminID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var request validators.EventVerifyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	event, err := h.eventService.SetVerification(c.Request.Context(), eventID, adminID, request.IsVerified)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Event verification updated successfully", event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := h.eventIDParam(c)
	if !ok {
		return
	}

	adminID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	if err := h.eventService.SoftDelete(c.Request.Context(), eventID, adminID); err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, "Event deleted successfully", nil)
}

func (h *EventHandler) LikeEvent(c *gin.Context) {
	h.applyFeedback(c, h.feedbackService.Like, "Feedback recorded")
}

func (h *EventHandler) DislikeEvent(c *gin.Context) {
	h.applyFeedback(c, h.feedbackService.Dislike, "Feedback recorded")
}

func (h *EventHandler) GetFeedbackStatus(c *gin.Context) {
	h.applyFeedback(c, h.feedbackService.Status, "Feedback status retrieved")
}

func (h *EventHandler) applyFeedback(c *gin.Context, op func(ctx context.Context, eventID, userID primitive.ObjectID) (*models.FeedbackSummary, error), message string) {
	eventID, ok := h.eventIDParam(c)
	if !ok {
		return
	}

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	summary, err := op(c.Request.Context(), eventID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	utils.SuccessResponse(c, message, summary)
}

func (h *EventHandler) currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return primitive.NilObjectID, false
	}

	userObjectID, ok := userID.(primitive.ObjectID)
	if !ok {
		utils.BadRequestResponse(c, "Invalid user ID")
		return primitive.NilObjectID, false
	}

	return userObjectID, true
}

func (h *EventHandler) eventIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid event ID")
		return primitive.NilObjectID, false
	}
	return eventID, true
}

func (h *EventHandler) respondError(c *gin.Context, err error) {
	var validationErrors validators.ValidationErrors
	switch {
	case errors.As(err, &validationErrors):
		utils.ValidationErrorResponse(c, validationErrors.FieldMap())
	case errors.Is(err, models.ErrEventNotFound):
		utils.NotFoundResponse(c, "Event")
	case errors.Is(err, models.ErrEventConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, models.ErrEventNotApproved):
		utils.BadRequestResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}

func stripCreators(events []*models.Event) []*models.Event {
	sanitized := make([]*models.Event, len(events))
	for i, event := range events {
		clone := *event
		clone.CreatedBy = nil
		sanitized[i] = &clone
	}
	return sanitized
}
