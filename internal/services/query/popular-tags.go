package query

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// MostPopularTags returns tag frequencies over the current revisions of
// non-archived places.
func (uc *UseCase) MostPopularTags(ctx context.Context, params place.MostPopularTagsParams, pagination http.Pagination) ([]*mmodel.TagFrequency, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.most_popular_tags")
	defer span.End()

	frequencies, err := uc.PlaceRepo.MostPopularPlaceRevisionTags(ctx, params, pagination)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to list popular tags", err)

		logger.Errorf("Error listing popular tags: %v", err)

		return nil, err
	}

	return frequencies, nil
}
