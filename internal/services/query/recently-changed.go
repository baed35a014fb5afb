package query

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// RecentlyChangedPlaces lists places ordered by their latest review
// activity, newest first.
func (uc *UseCase) RecentlyChangedPlaces(ctx context.Context, params place.RecentlyChangedParams, pagination http.Pagination) ([]*place.RecentlyChangedPlace, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.recently_changed_places")
	defer span.End()

	changed, err := uc.PlaceRepo.RecentlyChangedPlaces(ctx, params, pagination)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to list recently changed places", err)

		logger.Errorf("Error listing recently changed places: %v", err)

		return nil, err
	}

	return changed, nil
}
