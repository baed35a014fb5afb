package query

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

// GetPlace retrieves the current revision of a place with its review status.
func (uc *UseCase) GetPlace(ctx context.Context, id mmodel.ID) (*mmodel.PlaceWithStatus, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_place")
	defer span.End()

	logger.Infof("Retrieving place for id: %s", id)

	placeWithStatus, err := uc.PlaceRepo.GetPlace(ctx, id)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get place on repo by id", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, reflect.TypeOf(mmodel.Place{}).Name())
		}

		return nil, err
	}

	return placeWithStatus, nil
}

// GetPlaces retrieves the current revisions of several places at once.
func (uc *UseCase) GetPlaces(ctx context.Context, ids []mmodel.ID) ([]*mmodel.PlaceWithStatus, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_places")
	defer span.End()

	places, err := uc.PlaceRepo.GetPlaces(ctx, ids)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get places on repo", err)

		return nil, err
	}

	return places, nil
}

// LoadPlaceRevision retrieves a historical revision and its then-current
// status.
func (uc *UseCase) LoadPlaceRevision(ctx context.Context, id mmodel.ID, rev mmodel.Revision) (*mmodel.PlaceWithStatus, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.load_place_revision")
	defer span.End()

	placeWithStatus, err := uc.PlaceRepo.LoadPlaceRevision(ctx, id, rev)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load place revision", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, reflect.TypeOf(mmodel.Place{}).Name())
		}

		return nil, err
	}

	return placeWithStatus, nil
}

// GetPlaceHistory retrieves the full audit trail of a place. Only scouts and
// admins may see it.
func (uc *UseCase) GetPlaceHistory(ctx context.Context, id mmodel.ID, fromRevision *mmodel.Revision, requestedBy mmodel.EmailAddress) (*mmodel.PlaceHistory, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_place_history")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Place{}).Name()

	user, err := uc.UserRepo.GetUserByEmail(ctx, requestedBy)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrUnauthorized, entityType)
	}

	if err := services.AuthorizeRole(user, mmodel.RoleScout); err != nil {
		return nil, err
	}

	history, err := uc.PlaceRepo.GetPlaceHistory(ctx, id, fromRevision)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get place history", err)

		logger.Errorf("Error getting place history: %v", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return nil, err
	}

	return history, nil
}
