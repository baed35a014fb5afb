package query

import (
	"context"
	"strconv"
	"time"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// Count results are cached briefly; the numbers back a public endpoint that
// is hit far more often than the underlying tables change.
const countCacheTTL = time.Minute

const (
	countPlacesCacheKey = "count:entries"
	countTagsCacheKey   = "count:tags"
	countEventsCacheKey = "count:events"
)

// CountPlaces counts the visible places.
func (uc *UseCase) CountPlaces(ctx context.Context) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.count_places")
	defer span.End()

	return uc.cachedCount(ctx, countPlacesCacheKey, uc.PlaceRepo.CountPlaces)
}

// CountTags counts the registered tags.
func (uc *UseCase) CountTags(ctx context.Context) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.count_tags")
	defer span.End()

	return uc.cachedCount(ctx, countTagsCacheKey, uc.TagRepo.CountTags)
}

// CountEvents counts the non-archived events.
func (uc *UseCase) CountEvents(ctx context.Context) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.count_events")
	defer span.End()

	return uc.cachedCount(ctx, countEventsCacheKey, uc.EventRepo.CountEvents)
}

// cachedCount serves a count from the redis cache, falling back to the
// repository on a miss or a cache failure. Cache failures never fail the
// request.
func (uc *UseCase) cachedCount(ctx context.Context, key string, load func(context.Context) (uint64, error)) (uint64, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.cached_count")
	defer span.End()

	if uc.RedisRepo != nil {
		cached, found, err := uc.RedisRepo.Get(ctx, key)
		if err != nil {
			logger.Warnf("Failed to read count cache %s: %v", key, err)
		} else if found {
			if count, err := strconv.ParseUint(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := load(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to count on repo", err)

		return 0, err
	}

	if uc.RedisRepo != nil {
		if err := uc.RedisRepo.Set(ctx, key, strconv.FormatUint(count, 10), countCacheTTL); err != nil {
			logger.Warnf("Failed to write count cache %s: %v", key, err)
		}
	}

	return count, nil
}
