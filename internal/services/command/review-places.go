package command

import (
	"context"
	"errors"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// ReviewPlaces applies a review status transition to the given places on
// behalf of a scout or admin.
//
// Archival cascades over the place's ratings and their comments with the
// same activity stamp. Transitions that collapse visibility remove the
// places from the index; all others re-index with the new status.
func (uc *UseCase) ReviewPlaces(ctx context.Context, ids []mmodel.ID, review *mmodel.Review) (uint64, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.review_places")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Place{}).Name()

	if len(ids) == 0 {
		return 0, pkg.ValidateBusinessError(constant.ErrEmptyIDList, entityType)
	}

	reviewer, err := uc.UserRepo.GetUserByEmail(ctx, review.ReviewerEmail)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load reviewer", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return 0, pkg.ValidateBusinessError(constant.ErrUnauthorized, entityType)
		}

		return 0, err
	}

	if err := services.AuthorizeRole(reviewer, mmodel.RoleScout); err != nil {
		return 0, err
	}

	logger.Infof("Reviewing %d places as %s", len(ids), review.Status)

	return uc.reviewPlaces(ctx, ids, review)
}

// ReviewPlaceWithToken applies a review transition authorized by a one-shot
// review token from an email link instead of a signed-in scout.
func (uc *UseCase) ReviewPlaceWithToken(ctx context.Context, nonce mmodel.Nonce, review *mmodel.Review) (uint64, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.review_place_with_token")
	defer span.End()

	reviewToken, err := uc.TokenRepo.ConsumeReviewToken(ctx, nonce)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to consume review token", err)

		return 0, err
	}

	current, err := uc.PlaceRepo.GetPlace(ctx, reviewToken.PlaceID)
	if err != nil {
		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return 0, pkg.ValidateBusinessError(constant.ErrEntityNotFound, reflect.TypeOf(mmodel.Place{}).Name())
		}

		return 0, err
	}

	// The token is bound to the revision it was issued for.
	if current.Place.Revision != reviewToken.Revision {
		return 0, pkg.ValidateBusinessError(constant.ErrTokenInvalid, reflect.TypeOf(mmodel.ReviewToken{}).Name())
	}

	logger.Infof("Reviewing place %s via token", reviewToken.PlaceID)

	return uc.reviewPlaces(ctx, []mmodel.ID{reviewToken.PlaceID}, review)
}

func (uc *UseCase) reviewPlaces(ctx context.Context, ids []mmodel.ID, review *mmodel.Review) (uint64, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	activity := mmodel.ActivityLog{
		Activity: mmodel.NewActivity(&review.ReviewerEmail),
		Context:  review.Context,
		Comment:  review.Comment,
	}

	reviewed, err := uc.PlaceRepo.ReviewPlaces(ctx, ids, review.Status, activity)
	if err != nil {
		logger.Errorf("Error reviewing places: %v", err)

		return 0, err
	}

	if review.Status == mmodel.ReviewStatusArchived {
		// The cascade over ratings and their comments commits as one
		// transaction with the review's activity stamp.
		if _, err := uc.RatingRepo.ArchiveRatingsOfPlacesWithComments(ctx, ids, activity.Activity); err != nil {
			return 0, err
		}
	}

	for _, id := range ids {
		if !review.Status.Exists() {
			uc.unindexPlace(ctx, id)
			continue
		}

		placeWithStatus, err := uc.PlaceRepo.GetPlace(ctx, id)
		if err != nil {
			logger.Errorf("Failed to reload place %s for indexing: %v", id, err)
			continue
		}

		uc.indexPlace(ctx, placeWithStatus)
	}

	logger.Infof("Reviewed %d places", reviewed)

	return reviewed, nil
}
