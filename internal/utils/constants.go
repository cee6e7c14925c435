package utils

import "time"

// Application Constants
const (
	AppName    = "Bhandara"
	AppVersion = "1.0.0"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Event field limits
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxAddressLength     = 500
	MaxOrganizerLength   = 100
	MaxFoodItems         = 50
	MaxFoodItemLength    = 100

	// Trust score bounds
	MinTrustScore = -100
	MaxTrustScore = 100

	// Cache
	EventCacheTTL       = 5 * time.Minute
	EventListCacheTTL   = 1 * time.Minute
	FeedbackRetryLimit  = 3
	FeedbackCachePrefix = "event:feedback:"
	EventCachePrefix    = "event:"
	EventListCacheGlob  = "events:list:*"
)

// Response Status
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Common error messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Authentication required"
	ErrForbidden        = "Access denied"
)
