package command

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/event"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// ReindexAll rebuilds the search index from the repository. The index is a
// non-authoritative cache; this is the canonical recovery path after index
// writes were lost.
func (uc *UseCase) ReindexAll(ctx context.Context) error {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.reindex_all")
	defer span.End()

	places, err := uc.PlaceRepo.AllPlaces(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to scan places", err)

		return err
	}

	for _, placeWithStatus := range places {
		uc.indexPlace(ctx, placeWithStatus)
	}

	events, err := uc.EventRepo.AllEvents(ctx, event.EventFilter{})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to scan events", err)

		return err
	}

	for _, e := range events {
		uc.indexEvent(ctx, e)
	}

	logger.Infof("Reindexed %d places and %d events", len(places), len(events))

	return nil
}
