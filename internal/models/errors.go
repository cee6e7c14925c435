package models

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEventConflict    = errors.New("an event already exists at this location and time")
	ErrEventNotApproved = errors.New("event is not open for feedback")
	ErrFeedbackConflict = errors.New("feedback was modified concurrently")
)
