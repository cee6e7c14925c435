package validators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRequest() *EventCreateRequest {
	return &EventCreateRequest{
		Title:         "Langar at the gurudwara",
		OrganizerName: "Sewa Committee",
		Location:      EventLocationRequest{Address: "12 Station Road"},
		StartTime:     time.Now().Add(24 * time.Hour),
		EndTime:       time.Now().Add(26 * time.Hour),
	}
}

func TestValidateEventCreate_Valid(t *testing.T) {
	errs := ValidateEventCreate(baseRequest())
	assert.Empty(t, errs)
}

func TestValidateEventCreate_MissingFields(t *testing.T) {
	errs := ValidateEventCreate(&EventCreateRequest{})

	fields := errs.FieldMap()
	assert.Contains(t, fields, "Title")
	assert.Contains(t, fields, "OrganizerName")
	assert.Contains(t, fields, "Address")
	assert.Contains(t, fields, "StartTime")
	assert.Contains(t, fields, "EndTime")
}

func TestValidateEventCreate_PastStartTime(t *testing.T) {
	req := baseRequest()
	req.StartTime = time.Now().Add(-time.Hour)
	req.EndTime = time.Now().Add(time.Hour)

	errs := ValidateEventCreate(req)

	require.NotEmpty(t, errs)
	assert.Contains(t, errs.FieldMap(), "StartTime")
}

func TestValidateEventCreate_EndNotAfterStart(t *testing.T) {
	req := baseRequest()
	req.EndTime = req.StartTime

	errs := ValidateEventCreate(req)

	require.NotEmpty(t, errs)
	assert.Contains(t, errs.FieldMap(), "EndTime")
}

func TestValidateEventCreate_Contact(t *testing.T) {
	cases := []struct {
		contact string
		valid   bool
	}{
		{"9876543210", true},
		{"6123456789", true},
		{"+91 98765 43210", true},
		{"5876543210", false},
		{"987654321", false},
		{"98765432101", false},
		{"abcdefghij", false},
	}

	for _, tc := range cases {
		req := baseRequest()
		req.Contact = tc.contact

		errs := ValidateEventCreate(req)

		if tc.valid {
			assert.Empty(t, errs, "contact %q should be valid", tc.contact)
		} else {
			assert.Contains(t, errs.FieldMap(), "Contact", "contact %q should be invalid", tc.contact)
		}
	}
}

func TestValidateEventCreate_TitleTooLong(t *testing.T) {
	req := baseRequest()
	for len(req.Title) <= 200 {
		req.Title += req.Title
	}

	errs := ValidateEventCreate(req)

	assert.Contains(t, errs.FieldMap(), "Title")
}

func TestNormalizeFoodItems_FromArray(t *testing.T) {
	items := NormalizeFoodItems([]interface{}{" puri ", "halwa", "", "  ", "chana"})
	assert.Equal(t, []string{"puri", "halwa", "chana"}, items)
}

func TestNormalizeFoodItems_FromCommaString(t *testing.T) {
	items := NormalizeFoodItems("puri, halwa ,, chana ")
	assert.Equal(t, []string{"puri", "halwa", "chana"}, items)
}

func TestNormalizeFoodItems_Empty(t *testing.T) {
	assert.Nil(t, NormalizeFoodItems(nil))
	assert.Nil(t, NormalizeFoodItems(""))
	assert.Nil(t, NormalizeFoodItems(" , , "))
	assert.Nil(t, NormalizeFoodItems(42))
}
