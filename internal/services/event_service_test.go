package services

import (
	"context"
	"testing"
	"time"

	"bhandara/internal/models"
	"bhandara/internal/utils"
	"bhandara/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validCreateRequest() *validators.EventCreateRequest {
	return &validators.EventCreateRequest{
		Title:         "Community Bhandara",
		Description:   "Free food for everyone",
		OrganizerName: "Ram Seva Samiti",
		Contact:       "9876543210",
		Location:      validators.EventLocationRequest{Address: "456 Market Road"},
		FoodItems:     "puri, halwa, chana",
		StartTime:     time.Now().Add(48 * time.Hour),
		EndTime:       time.Now().Add(50 * time.Hour),
	}
}

func TestEventService_Create(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))
	creator := primitive.NewObjectID()

	event, err := svc.Create(context.Background(), creator, validCreateRequest())

	require.NoError(t, err)
	assert.False(t, event.ID.IsZero())
	assert.Equal(t, models.EventStatusPending, event.Status)
	assert.True(t, event.IsActive)
	assert.False(t, event.IsVerified)
	assert.Equal(t, creator, *event.CreatedBy)
	assert.Equal(t, []string{"puri", "halwa", "chana"}, event.FoodItems)
	assert.Equal(t, 0, event.TrustScore)
}

func TestEventService_Create_StartTimeInPast(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	req := validCreateRequest()
	req.StartTime = time.Now().Add(-time.Hour)
	req.EndTime = time.Now().Add(time.Hour)

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.FieldMap(), "StartTime")
}

func TestEventService_Create_EndBeforeStart(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	req := validCreateRequest()
	req.EndTime = req.StartTime.Add(-time.Hour)

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.FieldMap(), "EndTime")
}

func TestEventService_Create_MissingRequiredFields(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	req := &validators.EventCreateRequest{
		StartTime: time.Now().Add(time.Hour),
		EndTime:   time.Now().Add(2 * time.Hour),
	}

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := verrs.FieldMap()
	assert.Contains(t, fields, "Title")
	assert.Contains(t, fields, "OrganizerName")
	assert.Contains(t, fields, "Address")
}

func TestEventService_Create_InvalidContact(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	req := validCreateRequest()
	req.Contact = "1234567890"

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)

	var verrs validators.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.FieldMap(), "Contact")
}

func TestEventService_Create_OverlapRejected(t *testing.T) {
	day := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	existing := approvedEvent()
	existing.Location.Address = "123 Main St"
	existing.StartTime = day
	existing.EndTime = day.Add(time.Hour)

	repo := newFakeEventRepo()
	repo.add(existing)
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	cases := []struct {
		name     string
		start    time.Time
		end      time.Time
		conflict bool
	}{
		{"overlapping window", day.Add(30 * time.Minute), day.Add(90 * time.Minute), true},
		{"touching boundary", day.Add(time.Hour), day.Add(2 * time.Hour), true},
		{"disjoint window", day.Add(2 * time.Hour), day.Add(3 * time.Hour), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreateRequest()
			req.Location.Address = "123 Main St"
			req.StartTime = tc.start
			req.EndTime = tc.end

			_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)

			if tc.conflict {
				assert.ErrorIs(t, err, models.ErrEventConflict)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_Create_OverlapIsCaseInsensitive(t *testing.T) {
	day := time.Now().Add(72 * time.Hour).Truncate(time.Hour)
	existing := approvedEvent()
	existing.Location.Address = "123 MAIN St, Old Town"
	existing.StartTime = day
	existing.EndTime = day.Add(time.Hour)

	repo := newFakeEventRepo()
	repo.add(existing)
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	req := validCreateRequest()
	req.Location.Address = "123 main st"
	req.StartTime = day.Add(15 * time.Minute)
	req.EndTime = day.Add(45 * time.Minute)

	_, err := svc.Create(context.Background(), primitive.NewObjectID(), req)

	assert.ErrorIs(t, err, models.ErrEventConflict)
}

func TestEventService_UpdateStatus_Approve(t *testing.T) {
	repo := newFakeEventRepo()
	event := approvedEvent()
	event.Status = models.EventStatusPending
	repo.add(event)
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))
	admin := primitive.NewObjectID()

	updated, err := svc.UpdateStatus(context.Background(), event.ID, admin, &validators.EventStatusUpdateRequest{
		Status: "approved",
	})

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedBy)
	assert.Equal(t, admin, *updated.ApprovedBy)
	assert.NotNil(t, updated.ApprovedAt)
}

func TestEventService_UpdateStatus_Reject(t *testing.T) {
	repo := newFakeEventRepo()
	event := approvedEvent()
	event.Status = models.EventStatusPending
	repo.add(event)
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))
	admin := primitive.NewObjectID()

	updated, err := svc.UpdateStatus(context.Background(), event.ID, admin, &validators.EventStatusUpdateRequest{
		Status:          "rejected",
		RejectionReason: "duplicate submission",
	})

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusRejected, updated.Status)
	assert.Equal(t, "duplicate submission", updated.RejectionReason)
	require.NotNil(t, updated.RejectedBy)
	assert.Equal(t, admin, *updated.RejectedBy)
}

func TestEventService_UpdateStatus_ReassignmentAllowed(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.add(approvedEvent())
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	updated, err := svc.UpdateStatus(context.Background(), event.ID, primitive.NewObjectID(), &validators.EventStatusUpdateRequest{
		Status: "pending",
	})

	require.NoError(t, err)
	assert.Equal(t, models.EventStatusPending, updated.Status)
}

func TestEventService_UpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.add(approvedEvent())
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	_, err := svc.UpdateStatus(context.Background(), event.ID, primitive.NewObjectID(), &validators.EventStatusUpdateRequest{
		Status: "cancelled",
	})

	var verrs validators.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestEventService_SetVerification(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.add(approvedEvent())
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))
	admin := primitive.NewObjectID()

	updated, err := svc.SetVerification(context.Background(), event.ID, admin, true)

	require.NoError(t, err)
	assert.True(t, updated.IsVerified)
	require.NotNil(t, updated.VerifiedBy)
	assert.Equal(t, admin, *updated.VerifiedBy)

	updated, err = svc.SetVerification(context.Background(), event.ID, admin, false)

	require.NoError(t, err)
	assert.False(t, updated.IsVerified)
	assert.Nil(t, updated.VerifiedBy)
	assert.Nil(t, updated.VerifiedAt)
}

func TestEventService_SoftDelete(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.add(approvedEvent())
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	err := svc.SoftDelete(context.Background(), event.ID, primitive.NewObjectID())
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), event.ID)
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}

func TestEventService_SoftDeletedExcludedFromListings(t *testing.T) {
	repo := newFakeEventRepo()
	event := repo.add(approvedEvent())
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	require.NoError(t, svc.SoftDelete(context.Background(), event.ID, primitive.NewObjectID()))

	events, total, err := svc.ListPublic(context.Background(), models.EventStatusApproved, &utils.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, events)
}

func TestEventService_UpdateStatus_NotFound(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewEventService(repo, fakeCache{}, nil, newTestLogger(t))

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID(), primitive.NewObjectID(), &validators.EventStatusUpdateRequest{
		Status: "approved",
	})

	assert.ErrorIs(t, err, models.ErrEventNotFound)
}
