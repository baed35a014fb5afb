package query

import (
	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/clearance"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/comment"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/event"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/organization"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/rating"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/subscription"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/tag"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/user"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/redis"
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

	// SubscriptionRepo provides an abstraction on top of the bbox subscription data source.
	SubscriptionRepo subscription.Repository

	// TagRepo provides an abstraction on top of the tag registry.
	TagRepo tag.Repository

	// PlaceIndex provides the search index over places.
	PlaceIndex bleve.PlaceIndex

	// EventIndex provides the search index over events.
	EventIndex bleve.EventIndex

	// RedisRepo provides an abstraction on top of the redis cache.
	RedisRepo redis.RedisRepository
}
