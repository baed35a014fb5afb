package command

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// CreateRating rates a visible place. The rating and its initial comment are
// created together; afterwards the place document is re-indexed so its
// ratings summary reflects the new score. Returns the new (rating, comment)
// ids.
func (uc *UseCase) CreateRating(ctx context.Context, input *mmodel.CreateRatingInput) (mmodel.ID, mmodel.ID, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.create_rating")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Rating{}).Name()

	placeWithStatus, err := uc.PlaceRepo.GetPlace(ctx, input.PlaceID)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load rated place", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return "", "", pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return "", "", err
	}

	value := mmodel.RatingValue(input.Value)
	if err := value.Validate(); err != nil {
		return "", "", pkg.ValidateBusinessError(constant.ErrInvalidRatingValue, entityType)
	}

	ratingContext, err := mmodel.ParseRatingContext(input.Context)
	if err != nil {
		return "", "", pkg.ValidateBusinessError(constant.ErrInvalidRatingContext, entityType)
	}

	if strings.TrimSpace(input.Comment) == "" {
		return "", "", pkg.ValidateBusinessError(constant.ErrEmptyComment, entityType)
	}

	now := time.Now().UTC()

	rating := &mmodel.Rating{
		ID:        mmodel.NewID(),
		PlaceID:   placeWithStatus.Place.ID,
		CreatedAt: now,
		Title:     strings.TrimSpace(input.Title),
		Value:     value,
		Context:   ratingContext,
		Source:    input.Source,
	}

	comment := &mmodel.Comment{
		ID:        mmodel.NewID(),
		RatingID:  rating.ID,
		CreatedAt: now,
		Text:      strings.TrimSpace(input.Comment),
	}

	if !pkg.IsNilOrEmpty(input.User) {
		email, err := mmodel.ParseEmailAddress(*input.User)
		if err == nil {
			comment.CreatedBy = &email
		}
	}

	if err := uc.RatingRepo.CreateRatingWithComment(ctx, rating, comment); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to create rating", err)

		logger.Errorf("Error creating rating: %v", err)

		return "", "", err
	}

	uc.indexPlace(ctx, placeWithStatus)

	return rating.ID, comment.ID, nil
}
