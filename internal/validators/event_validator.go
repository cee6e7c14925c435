package validators

import (
	"strings"
	"time"
)

type EventLocationRequest struct {
	Address   string   `json:"address" validate:"required,max=500"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

type EventCreateRequest struct {
	Title         string               `json:"title" validate:"required,max=200"`
	Description   string               `json:"description" validate:"omitempty,max=1000"`
	OrganizerName string               `json:"organizer_name" validate:"required,max=100"`
	Contact       string               `json:"contact" validate:"omitempty,mobile_number"`
	Location      EventLocationRequest `json:"location"`
	FoodItems     interface{}          `json:"food_items"`
	StartTime     time.Time            `json:"start_time" validate:"required"`
	EndTime       time.Time            `json:"end_time" validate:"required"`
}

type EventStatusUpdateRequest struct {
	Status          string `json:"status" validate:"required,oneof=pending approved rejected"`
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=500"`
	AdminNote       string `json:"admin_note" validate:"omitempty,max=500"`
}

type EventVerifyRequest struct {
	IsVerified bool `json:"is_verified"`
}

func ValidateEventCreate(req *EventCreateRequest) ValidationErrors {
	errors := ValidateStruct(req)

	if !req.StartTime.IsZero() && !req.StartTime.After(time.Now()) {
		errors = append(errors, ValidationError{
			Field:   "StartTime",
			Tag:     "future_date",
			Message: "StartTime must be in the future",
		})
	}

	if !req.StartTime.IsZero() && !req.EndTime.IsZero() && !req.EndTime.After(req.StartTime) {
		errors = append(errors, ValidationError{
			Field:   "EndTime",
			Tag:     "gtfield",
			Message: "EndTime must be after StartTime",
		})
	}

	return errors
}

// NormalizeFoodItems accepts the two payload shapes clients send for food
// items, a JSON array or a single comma-separated string, and produces a
// trimmed list with empty entries dropped.
func NormalizeFoodItems(raw interface{}) []string {
	var parts []string

	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		parts = strings.Split(v, ",")
	case []string:
		parts = v
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				parts = append(parts, s)
			}
		}
	default:
		return nil
	}

	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
