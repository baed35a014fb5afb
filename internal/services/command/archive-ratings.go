package command

import (
	"context"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// ArchiveRatings archives the given ratings and their comments on behalf of
// a scout or admin, then re-indexes the affected places. Already-archived
// ratings are skipped.
func (uc *UseCase) ArchiveRatings(ctx context.Context, ids []mmodel.ID, archivedBy mmodel.EmailAddress) (uint64, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.archive_ratings")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Rating{}).Name()

	if len(ids) == 0 {
		return 0, pkg.ValidateBusinessError(constant.ErrEmptyIDList, entityType)
	}

	scout, err := uc.UserRepo.GetUserByEmail(ctx, archivedBy)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load user", err)

		return 0, pkg.ValidateBusinessError(constant.ErrUnauthorized, entityType)
	}

	if err := services.AuthorizeRole(scout, mmodel.RoleScout); err != nil {
		return 0, err
	}

	// Resolve the affected places before the rows disappear from default reads.
	placeIDs, err := uc.RatingRepo.LoadPlaceIDsOfRatings(ctx, ids)
	if err != nil {
		return 0, err
	}

	// Ratings and their comments are archived in one transaction with the
	// same activity stamp.
	archived, err := uc.RatingRepo.ArchiveRatingsWithComments(ctx, ids, mmodel.NewActivity(&archivedBy))
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive ratings", err)

		logger.Errorf("Error archiving ratings: %v", err)

		return 0, err
	}

	uc.reindexPlaces(ctx, placeIDs)

	return archived, nil
}

// reindexPlaces refreshes the index documents of the given places.
func (uc *UseCase) reindexPlaces(ctx context.Context, placeIDs []mmodel.ID) {
	logger := pkg.NewLoggerFromContext(ctx)

	for _, placeID := range placeIDs {
		placeWithStatus, err := uc.PlaceRepo.GetPlace(ctx, placeID)
		if err != nil {
			logger.Errorf("Failed to reload place %s for indexing: %v", placeID, err)
			continue
		}

		uc.indexPlace(ctx, placeWithStatus)
	}
}
