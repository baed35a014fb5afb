package bleve

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// IndexedPlace is the search document of a place. Coordinates are stored as
// fixed-point integers, ratings as per-context averages.
type IndexedPlace struct {
	ID           string   `json:"id"`
	Kind         string   `json:"kind"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Tags         []string `json:"tags"`
	Categories   []string `json:"categories"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Status       string   `json:"status"`
	Total        float64  `json:"total"`
	Diversity    float64  `json:"diversity"`
	Fairness     float64  `json:"fairness"`
	Humanity     float64  `json:"humanity"`
	Renewable    float64  `json:"renewable"`
	Solidarity   float64  `json:"solidarity"`
	Transparency float64  `json:"transparency"`
}

// IndexedEvent is the search document of an event.
type IndexedEvent struct {
	ID          string   `json:"id"`
	Kind        string   `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Start       float64  `json:"start"`
}

// Query is the candidate-selection filter evaluated by the index.
type Query struct {
	Bbox       *mmodel.MapBbox
	Text       string
	HashTags   []string
	Categories []string
	Statuses   []mmodel.ReviewStatus
	IDs        []mmodel.ID
}

// PlaceIndex selects candidate places for the repository.
//
//go:generate mockgen --destination=index.mock.go --package=bleve . PlaceIndex,EventIndex
type PlaceIndex interface {
	AddOrUpdatePlace(ctx context.Context, doc *IndexedPlace) error
	RemovePlaceByID(ctx context.Context, id mmodel.ID) error
	QueryPlaces(ctx context.Context, query *Query, limit int) ([]*IndexedPlace, error)
	Flush(ctx context.Context) error
}

// EventIndex selects candidate events for the repository.
type EventIndex interface {
	AddOrUpdateEvent(ctx context.Context, doc *IndexedEvent) error
	RemoveEventByID(ctx context.Context, id mmodel.ID) error
	QueryEvents(ctx context.Context, query *Query, limit int) ([]*IndexedEvent, error)
	Flush(ctx context.Context) error
}

// NewIndexedPlace builds the search document of a place revision.
func NewIndexedPlace(place *mmodel.Place, status mmodel.ReviewStatus, ratings mmodel.AvgRatings) *IndexedPlace {
	categoryIDs, tags := mmodel.SplitCategoriesFromTags(place.Tags)

	categories := make([]string, len(categoryIDs))
	for i, id := range categoryIDs {
		categories[i] = id.String()
	}

	return &IndexedPlace{
		ID:           place.ID.String(),
		Kind:         kindPlace,
		Title:        place.Title,
		Description:  place.Description,
		Tags:         tags,
		Categories:   categories,
		Lat:          float64(int64(place.Location.Pos.Lat * mmodel.LatLngFactor)),
		Lng:          float64(int64(place.Location.Pos.Lng * mmodel.LatLngFactor)),
		Status:       status.String(),
		Total:        ratings.Total,
		Diversity:    ratings.Diversity,
		Fairness:     ratings.Fairness,
		Humanity:     ratings.Humanity,
		Renewable:    ratings.Renewable,
		Solidarity:   ratings.Solidarity,
		Transparency: ratings.Transparency,
	}
}

// NewIndexedEvent builds the search document of an event.
func NewIndexedEvent(event *mmodel.Event) *IndexedEvent {
	doc := &IndexedEvent{
		ID:          event.ID.String(),
		Kind:        kindEvent,
		Title:       event.Title,
		Description: event.Description,
		Tags:        event.Tags,
		Start:       float64(mmodel.TimestampSeconds(event.Start)),
	}

	if event.Location != nil && event.Location.Pos.IsValid() {
		doc.Lat = float64(int64(event.Location.Pos.Lat * mmodel.LatLngFactor))
		doc.Lng = float64(int64(event.Location.Pos.Lng * mmodel.LatLngFactor))
	}

	return doc
}

// AvgRatings restores the ratings summary carried by the document.
func (d *IndexedPlace) AvgRatings() mmodel.AvgRatings {
	return mmodel.AvgRatings{
		Total:        d.Total,
		Diversity:    d.Diversity,
		Fairness:     d.Fairness,
		Humanity:     d.Humanity,
		Renewable:    d.Renewable,
		Solidarity:   d.Solidarity,
		Transparency: d.Transparency,
	}
}

// MapPoint restores the position carried by the document.
func (d *IndexedPlace) MapPoint() mmodel.MapPoint {
	return mmodel.MapPointFromLatLngInt(int64(d.Lat), int64(d.Lng))
}
