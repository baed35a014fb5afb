package query

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/event"
	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// MaxEventResultLimit caps the number of events a single query may return.
const MaxEventResultLimit = 2000

const defaultEventLimit = 100

// EventsRequest filters the chronological event listing.
type EventsRequest struct {
	Bbox      *mmodel.MapBbox
	CreatedBy *mmodel.EmailAddress
	Limit     *int
	StartMin  *time.Time
	StartMax  *time.Time
	EndMin    *time.Time
	EndMax    *time.Time
	Tags      []string
	Text      string
}

// QueryEvents lists non-archived events chronologically ascending.
//
// Filtering by creator requires an authenticated organization. Without any
// start bound the listing defaults to events starting within the last day
// or later.
func (uc *UseCase) QueryEvents(ctx context.Context, request *EventsRequest, org *mmodel.Organization) ([]*mmodel.Event, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.query_events")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Event{}).Name()

	limit := defaultEventLimit

	if request.Limit != nil {
		if *request.Limit < 1 {
			return nil, pkg.ValidateBusinessError(constant.ErrInvalidLimit, entityType)
		}

		limit = *request.Limit
		if limit > MaxEventResultLimit {
			limit = MaxEventResultLimit
		}
	}

	if request.CreatedBy != nil && org == nil {
		return nil, pkg.ValidateBusinessError(constant.ErrUnauthorized, entityType)
	}

	filter := event.EventFilter{
		StartMin:  request.StartMin,
		StartMax:  request.StartMax,
		EndMin:    request.EndMin,
		EndMax:    request.EndMax,
		CreatedBy: request.CreatedBy,
		Tags:      request.Tags,
	}

	if filter.StartMin == nil && filter.StartMax == nil {
		startMin := time.Now().UTC().Add(-24 * time.Hour)
		filter.StartMin = &startMin
	}

	events, err := uc.EventRepo.AllEvents(ctx, filter)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query events on repo", err)

		logger.Errorf("Error querying events: %v", err)

		return nil, err
	}

	if request.Text != "" {
		events, err = uc.filterEventsByText(ctx, events, request.Text)
		if err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to filter events by text", err)

			return nil, err
		}
	}

	if request.Bbox != nil {
		filtered := events[:0]

		for _, e := range events {
			if e.Location != nil && request.Bbox.Contains(e.Location.Pos) {
				filtered = append(filtered, e)
			}
		}

		events = filtered
	}

	if len(events) > limit {
		events = events[:limit]
	}

	return events, nil
}

// GetEvent retrieves a single event.
func (uc *UseCase) GetEvent(ctx context.Context, id mmodel.ID) (*mmodel.Event, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_event")
	defer span.End()

	e, err := uc.EventRepo.GetEvent(ctx, id)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get event", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, reflect.TypeOf(mmodel.Event{}).Name())
		}

		return nil, err
	}

	return e, nil
}

// filterEventsByText keeps the events whose documents match the tokenized
// text query in the index.
func (uc *UseCase) filterEventsByText(ctx context.Context, events []*mmodel.Event, text string) ([]*mmodel.Event, error) {
	docs, err := uc.EventIndex.QueryEvents(ctx, &bleve.Query{Text: text}, MaxEventResultLimit)
	if err != nil {
		return nil, err
	}

	matching := make(map[mmodel.ID]struct{}, len(docs))
	for _, doc := range docs {
		matching[mmodel.ID(doc.ID)] = struct{}{}
	}

	filtered := events[:0]

	for _, e := range events {
		if _, ok := matching[e.ID]; ok {
			filtered = append(filtered, e)
		}
	}

	return filtered, nil
}
