package mmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReviewStatus(t *testing.T) {
	tests := []struct {
		input   int
		want    ReviewStatus
		wantErr bool
	}{
		{input: -1, want: ReviewStatusRejected},
		{input: 0, want: ReviewStatusArchived},
		{input: 1, want: ReviewStatusCreated},
		{input: 2, want: ReviewStatusConfirmed},
		{input: 3, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseReviewStatus(tt.input)

		if tt.wantErr {
			assert.Error(t, err)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestReviewStatusExists(t *testing.T) {
	assert.True(t, ReviewStatusCreated.Exists())
	assert.True(t, ReviewStatusConfirmed.Exists())
	assert.False(t, ReviewStatusRejected.Exists())
	assert.False(t, ReviewStatusArchived.Exists())
}

func TestRevisionNext(t *testing.T) {
	assert.Equal(t, Revision(1), InitialRevision.Next())
	assert.True(t, InitialRevision.IsInitial())
	assert.False(t, Revision(3).IsInitial())
}

func TestPlaceRootAndRevision(t *testing.T) {
	place := &Place{
		ID:       "p1",
		License:  "CC0-1.0",
		Revision: 2,
		Title:    "Cafe",
		Tags:     []string{"vegan"},
	}

	root := place.Root()
	assert.Equal(t, ID("p1"), root.ID)
	assert.Equal(t, Revision(2), root.CurrentRev)

	rev := place.PlaceRev()
	assert.Equal(t, Revision(2), rev.Revision)
	assert.Equal(t, "Cafe", rev.Title)
}

func TestAddressAndContactEmptiness(t *testing.T) {
	assert.True(t, Address{}.IsEmpty())
	assert.False(t, Address{City: "Freiburg"}.IsEmpty())

	assert.True(t, Contact{}.IsEmpty())

	email := EmailAddress("a@b.c")
	assert.False(t, Contact{Email: &email}.IsEmpty())
}
