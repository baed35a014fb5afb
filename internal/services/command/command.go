package command

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/clearance"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/comment"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/event"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/organization"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/rating"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/subscription"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/tag"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/token"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/user"
	"github.com/kartevonmorgen/openfairdb/internal/gateways"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// UseCase is a struct that aggregates various repositories for simplified access in use case implementation.
type UseCase struct {
	// PlaceRepo provides an abstraction on top of the place data source.
	PlaceRepo place.Repository

	// EventRepo provides an abstraction on top of the event data source.
	EventRepo event.Repository

	// RatingRepo provides an abstraction on top of the rating data source.
	RatingRepo rating.Repository

	// CommentRepo provides an abstraction on top of the comment data source.
	CommentRepo comment.Repository

	// UserRepo provides an abstraction on top of the user data source.
	UserRepo user.Repository

	// OrganizationRepo provides an abstraction on top of the organization data source.
	OrganizationRepo organization.Repository

	// ClearanceRepo provides an abstraction on top of the clearance data source.
	ClearanceRepo clearance.Repository

	// TokenRepo provides an abstraction on top of the token data source.
	TokenRepo token.Repository

	// SubscriptionRepo provides an abstraction on top of the bbox subscription data source.
	SubscriptionRepo subscription.Repository

	// TagRepo provides an abstraction on top of the tag registry.
	TagRepo tag.Repository

	// PlaceIndex provides the search index over places.
	PlaceIndex bleve.PlaceIndex

	// EventIndex provides the search index over events.
	EventIndex bleve.EventIndex

	// Notifications provides the fire-and-forget notification gateway.
	Notifications gateways.NotificationGateway

	// GeoCoding provides the address resolution gateway.
	GeoCoding gateways.GeoCodingGateway

	// AcceptedLicenses is the set of licenses a place may carry.
	AcceptedLicenses map[string]struct{}
}

// indexPlace rebuilds the search document of a place from the repository
// state. Index failures are logged, never propagated: the database remains
// authoritative and the index is rebuilt on the next reindex run.
func (uc *UseCase) indexPlace(ctx context.Context, placeWithStatus *mmodel.PlaceWithStatus) {
	logger := pkg.NewLoggerFromContext(ctx)

	ratings, err := uc.RatingRepo.LoadRatingsOfPlace(ctx, placeWithStatus.Place.ID)
	if err != nil {
		logger.Errorf("Failed to load ratings for indexing place %s: %v", placeWithStatus.Place.ID, err)

		ratings = nil
	}

	doc := bleve.NewIndexedPlace(&placeWithStatus.Place, placeWithStatus.Status, mmodel.AvgRatingsFromRatings(ratings))

	if err := uc.PlaceIndex.AddOrUpdatePlace(ctx, doc); err != nil {
		logger.Errorf("Failed to index place %s: %v", placeWithStatus.Place.ID, err)

		return
	}

	if err := uc.PlaceIndex.Flush(ctx); err != nil {
		logger.Errorf("Failed to flush place index: %v", err)
	}
}

// unindexPlace drops a place document. Failures are logged only.
func (uc *UseCase) unindexPlace(ctx context.Context, id mmodel.ID) {
	logger := pkg.NewLoggerFromContext(ctx)

	if err := uc.PlaceIndex.RemovePlaceByID(ctx, id); err != nil {
		logger.Errorf("Failed to remove place %s from index: %v", id, err)

		return
	}

	if err := uc.PlaceIndex.Flush(ctx); err != nil {
		logger.Errorf("Failed to flush place index: %v", err)
	}
}

// indexEvent rebuilds the search document of an event. Failures are logged only.
func (uc *UseCase) indexEvent(ctx context.Context, event *mmodel.Event) {
	logger := pkg.NewLoggerFromContext(ctx)

	if event.IsArchived() {
		uc.unindexEvent(ctx, event.ID)

		return
	}

	if err := uc.EventIndex.AddOrUpdateEvent(ctx, bleve.NewIndexedEvent(event)); err != nil {
		logger.Errorf("Failed to index event %s: %v", event.ID, err)

		return
	}

	if err := uc.EventIndex.Flush(ctx); err != nil {
		logger.Errorf("Failed to flush event index: %v", err)
	}
}

// unindexEvent drops an event document. Failures are logged only.
func (uc *UseCase) unindexEvent(ctx context.Context, id mmodel.ID) {
	logger := pkg.NewLoggerFromContext(ctx)

	if err := uc.EventIndex.RemoveEventByID(ctx, id); err != nil {
		logger.Errorf("Failed to remove event %s from index: %v", id, err)

		return
	}

	if err := uc.EventIndex.Flush(ctx); err != nil {
		logger.Errorf("Failed to flush event index: %v", err)
	}
}
