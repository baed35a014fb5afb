package mmodel

import (
	"fmt"
	"strings"
	"time"
)

// RatingValue is a per-criterion score within [-1, 2].
type RatingValue int

// Validate checks the rating value range.
func (v RatingValue) Validate() error {
	if v < -1 || v > 2 {
		return fmt.Errorf("rating value out of range: %d", v)
	}

	return nil
}

// RatingContext is the criterion a rating applies to.
type RatingContext string

const (
	RatingContextDiversity    RatingContext = "diversity"
	RatingContextRenewable    RatingContext = "renewable"
	RatingContextFairness     RatingContext = "fairness"
	RatingContextHumanity     RatingContext = "humanity"
	RatingContextTransparency RatingContext = "transparency"
	RatingContextSolidarity   RatingContext = "solidarity"
)

// RatingContexts returns all known rating criteria.
func RatingContexts() []RatingContext {
	return []RatingContext{
		RatingContextDiversity,
		RatingContextRenewable,
		RatingContextFairness,
		RatingContextHumanity,
		RatingContextTransparency,
		RatingContextSolidarity,
	}
}

// ParseRatingContext translates the textual rating context.
func ParseRatingContext(s string) (RatingContext, error) {
	c := RatingContext(strings.ToLower(strings.TrimSpace(s)))

	for _, known := range RatingContexts() {
		if c == known {
			return c, nil
		}
	}

	return "", fmt.Errorf("invalid rating context: %q", s)
}

// Rating is a per-criterion score attached to a place. Ratings are not
// mutable after creation, only archivable.
type Rating struct {
	ID         ID            `json:"id"`
	PlaceID    ID            `json:"placeId"`
	CreatedAt  time.Time     `json:"createdAt"`
	ArchivedAt *time.Time    `json:"archivedAt,omitempty"`
	Title      string        `json:"title"`
	Value      RatingValue   `json:"value"`
	Context    RatingContext `json:"context"`
	Source     *string       `json:"source,omitempty"`
}

// IsArchived reports whether the rating has been archived.
func (r *Rating) IsArchived() bool {
	return r.ArchivedAt != nil
}

// AvgRatings carries the per-context rating averages of a place plus their
// total.
type AvgRatings struct {
	Total        float64 `json:"total"`
	Diversity    float64 `json:"diversity"`
	Fairness     float64 `json:"fairness"`
	Humanity     float64 `json:"humanity"`
	Renewable    float64 `json:"renewable"`
	Solidarity   float64 `json:"solidarity"`
	Transparency float64 `json:"transparency"`
}

// AvgRatingsFromRatings aggregates non-archived ratings per context.
func AvgRatingsFromRatings(ratings []*Rating) AvgRatings {
	sums := make(map[RatingContext]float64)
	counts := make(map[RatingContext]int)

	for _, r := range ratings {
		if r.IsArchived() {
			continue
		}

		sums[r.Context] += float64(r.Value)
		counts[r.Context]++
	}

	avg := func(c RatingContext) float64 {
		if counts[c] == 0 {
			return 0
		}

		return sums[c] / float64(counts[c])
	}

	avgs := AvgRatings{
		Diversity:    avg(RatingContextDiversity),
		Fairness:     avg(RatingContextFairness),
		Humanity:     avg(RatingContextHumanity),
		Renewable:    avg(RatingContextRenewable),
		Solidarity:   avg(RatingContextSolidarity),
		Transparency: avg(RatingContextTransparency),
	}

	n := len(RatingContexts())
	avgs.Total = (avgs.Diversity + avgs.Fairness + avgs.Humanity +
		avgs.Renewable + avgs.Solidarity + avgs.Transparency) / float64(n)

	return avgs
}

// CreateRatingInput is the payload for rating a place. The comment is
// created together with the rating.
type CreateRatingInput struct {
	PlaceID ID      `json:"entry"`
	Title   string  `json:"title"`
	Value   int     `json:"value"`
	Context string  `json:"context"`
	Comment string  `json:"comment"`
	Source  *string `json:"source,omitempty"`
	User    *string `json:"user,omitempty"`
}
