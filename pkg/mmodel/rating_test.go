package mmodel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRatingValueValidate(t *testing.T) {
	for _, valid := range []RatingValue{-1, 0, 1, 2} {
		assert.NoError(t, valid.Validate())
	}

	assert.Error(t, RatingValue(-2).Validate())
	assert.Error(t, RatingValue(3).Validate())
}

func TestParseRatingContext(t *testing.T) {
	c, err := ParseRatingContext(" Diversity ")
	assert.NoError(t, err)
	assert.Equal(t, RatingContextDiversity, c)

	_, err = ParseRatingContext("speed")
	assert.Error(t, err)
}

func TestAvgRatingsFromRatings(t *testing.T) {
	now := time.Now()

	ratings := []*Rating{
		{Value: 2, Context: RatingContextDiversity, CreatedAt: now},
		{Value: 0, Context: RatingContextDiversity, CreatedAt: now},
		{Value: 1, Context: RatingContextFairness, CreatedAt: now},
		{Value: 2, Context: RatingContextHumanity, CreatedAt: now, ArchivedAt: &now},
	}

	avgs := AvgRatingsFromRatings(ratings)

	assert.InDelta(t, 1.0, avgs.Diversity, 1e-9)
	assert.InDelta(t, 1.0, avgs.Fairness, 1e-9)

	// Archived ratings do not contribute.
	assert.InDelta(t, 0.0, avgs.Humanity, 1e-9)

	assert.InDelta(t, 2.0/6.0, avgs.Total, 1e-9)
}

func TestAvgRatingsEmpty(t *testing.T) {
	avgs := AvgRatingsFromRatings(nil)

	assert.Zero(t, avgs.Total)
	assert.Zero(t, avgs.Diversity)
}
