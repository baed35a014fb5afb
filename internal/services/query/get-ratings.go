package query

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// RatingWithComments pairs a rating with its non-archived comments.
type RatingWithComments struct {
	Rating   *mmodel.Rating    `json:"rating"`
	Comments []*mmodel.Comment `json:"comments"`
}

// GetPlaceRatings loads the non-archived ratings of a place together with
// their comments.
func (uc *UseCase) GetPlaceRatings(ctx context.Context, placeID mmodel.ID) ([]*RatingWithComments, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_place_ratings")
	defer span.End()

	ratings, err := uc.RatingRepo.LoadRatingsOfPlace(ctx, placeID)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load ratings", err)

		logger.Errorf("Error loading ratings of place %s: %v", placeID, err)

		return nil, err
	}

	withComments := make([]*RatingWithComments, 0, len(ratings))

	for _, r := range ratings {
		comments, err := uc.CommentRepo.LoadCommentsOfRating(ctx, r.ID)
		if err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to load comments", err)

			return nil, err
		}

		withComments = append(withComments, &RatingWithComments{
			Rating:   r,
			Comments: comments,
		})
	}

	return withComments, nil
}

// GetRatings loads the given non-archived ratings.
func (uc *UseCase) GetRatings(ctx context.Context, ids []mmodel.ID) ([]*mmodel.Rating, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_ratings")
	defer span.End()

	ratings, err := uc.RatingRepo.LoadRatings(ctx, ids)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load ratings", err)

		return nil, err
	}

	return ratings, nil
}
