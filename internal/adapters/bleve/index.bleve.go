package bleve

import (
	"context"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mlog"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

const (
	kindPlace = "place"
	kindEvent = "event"
)

// SearchEngine is a bleve-backed implementation of PlaceIndex and EventIndex.
//
// The index is a non-authoritative cache over the repository: mutations are
// serialized by a single writer lock, and the whole index can be rebuilt by
// scanning the repository.
type SearchEngine struct {
	index bleve.Index

	// Guards mutations; bleve batches are not concurrency-safe.
	mu sync.Mutex

	Logger mlog.Logger
}

// NewSearchEngine opens (or creates) a bleve index at the given path.
// An empty path yields an in-memory index.
func NewSearchEngine(path string, logger mlog.Logger) (*SearchEngine, error) {
	indexMapping := buildIndexMapping()

	var (
		index bleve.Index
		err   error
	)

	if path == "" {
		index, err = bleve.NewMemOnly(indexMapping)
	} else {
		index, err = bleve.Open(path)
		if err != nil {
			index, err = bleve.New(path, indexMapping)
		}
	}

	if err != nil {
		return nil, err
	}

	logger.Info("Search index ready ✅ ")

	return &SearchEngine{
		index:  index,
		Logger: logger,
	}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name

	textField := bleve.NewTextFieldMapping()
	textField.Analyzer = standard.Name

	numericField := bleve.NewNumericFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("kind", keywordField)
	docMapping.AddFieldMappingsAt("title", textField)
	docMapping.AddFieldMappingsAt("description", textField)
	docMapping.AddFieldMappingsAt("tags", keywordField)
	docMapping.AddFieldMappingsAt("categories", keywordField)
	docMapping.AddFieldMappingsAt("status", keywordField)
	docMapping.AddFieldMappingsAt("lat", numericField)
	docMapping.AddFieldMappingsAt("lng", numericField)
	docMapping.AddFieldMappingsAt("start", numericField)
	docMapping.AddFieldMappingsAt("total", numericField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping

	return indexMapping
}

// AddOrUpdatePlace writes the place document.
func (s *SearchEngine) AddOrUpdatePlace(ctx context.Context, doc *IndexedPlace) error {
	tracer := pkg.NewTracerFromContext(ctx)

	_, span := tracer.Start(ctx, "index.add_or_update_place")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.index.Index(docID(kindPlace, doc.ID), doc); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to index place", err)

		return err
	}

	return nil
}

// RemovePlaceByID deletes the place document.
func (s *SearchEngine) RemovePlaceByID(ctx context.Context, id mmodel.ID) error {
	tracer := pkg.NewTracerFromContext(ctx)

	_, span := tracer.Start(ctx, "index.remove_place_by_id")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.index.Delete(docID(kindPlace, id.String())); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to remove place", err)

		return err
	}

	return nil
}

// AddOrUpdateEvent writes the event document.
func (s *SearchEngine) AddOrUpdateEvent(ctx context.Context, doc *IndexedEvent) error {
	tracer := pkg.NewTracerFromContext(ctx)

	_, span := tracer.Start(ctx, "index.add_or_update_event")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.index.Index(docID(kindEvent, doc.ID), doc); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to index event", err)

		return err
	}

	return nil
}

// RemoveEventByID deletes the event document.
func (s *SearchEngine) RemoveEventByID(ctx context.Context, id mmodel.ID) error {
	tracer := pkg.NewTracerFromContext(ctx)

	_, span := tracer.Start(ctx, "index.remove_event_by_id")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.index.Delete(docID(kindEvent, id.String())); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to remove event", err)

		return err
	}

	return nil
}

// Flush makes previous mutations visible to readers. Bleve indexes writes
// synchronously, so there is nothing left to drain here.
func (s *SearchEngine) Flush(ctx context.Context) error {
	return nil
}

// QueryPlaces selects place documents ordered by relevance with a
// ratings-weighted tie-break.
func (s *SearchEngine) QueryPlaces(ctx context.Context, q *Query, limit int) ([]*IndexedPlace, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	_, span := tracer.Start(ctx, "index.query_places")
	defer span.End()

	statuses := q.Statuses
	if len(statuses) == 0 {
		statuses = mmodel.VisibleReviewStatuses()
	}

	boolQuery := s.buildCommonQuery(kindPlace, q)

	statusQueries := make([]query.Query, len(statuses))
	for i, status := range statuses {
		term := bleve.NewTermQuery(status.String())
		term.SetField("status")
		statusQueries[i] = term
	}

	boolQuery.AddMust(bleve.NewDisjunctionQuery(statusQueries...))

	for _, category := range q.Categories {
		term := bleve.NewTermQuery(category)
		term.SetField("categories")
		boolQuery.AddMust(term)
	}

	request := bleve.NewSearchRequestOptions(boolQuery, limit, 0, false)
	request.Fields = []string{"*"}
	request.SortBy([]string{"-_score", "-total"})

	result, err := s.index.Search(request)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query places", err)

		return nil, err
	}

	docs := make([]*IndexedPlace, 0, len(result.Hits))

	for _, hit := range result.Hits {
		doc := &IndexedPlace{
			ID:           fieldString(hit.Fields, "id"),
			Kind:         kindPlace,
			Title:        fieldString(hit.Fields, "title"),
			Description:  fieldString(hit.Fields, "description"),
			Tags:         fieldStrings(hit.Fields, "tags"),
			Categories:   fieldStrings(hit.Fields, "categories"),
			Lat:          fieldFloat(hit.Fields, "lat"),
			Lng:          fieldFloat(hit.Fields, "lng"),
			Status:       fieldString(hit.Fields, "status"),
			Total:        fieldFloat(hit.Fields, "total"),
			Diversity:    fieldFloat(hit.Fields, "diversity"),
			Fairness:     fieldFloat(hit.Fields, "fairness"),
			Humanity:     fieldFloat(hit.Fields, "humanity"),
			Renewable:    fieldFloat(hit.Fields, "renewable"),
			Solidarity:   fieldFloat(hit.Fields, "solidarity"),
			Transparency: fieldFloat(hit.Fields, "transparency"),
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// QueryEvents selects event documents; the caller re-orders chronologically
// against the repository.
func (s *SearchEngine) QueryEvents(ctx context.Context, q *Query, limit int) ([]*IndexedEvent, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	_, span := tracer.Start(ctx, "index.query_events")
	defer span.End()

	boolQuery := s.buildCommonQuery(kindEvent, q)

	request := bleve.NewSearchRequestOptions(boolQuery, limit, 0, false)
	request.Fields = []string{"*"}
	request.SortBy([]string{"start"})

	result, err := s.index.Search(request)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query events", err)

		return nil, err
	}

	docs := make([]*IndexedEvent, 0, len(result.Hits))

	for _, hit := range result.Hits {
		docs = append(docs, &IndexedEvent{
			ID:          fieldString(hit.Fields, "id"),
			Kind:        kindEvent,
			Title:       fieldString(hit.Fields, "title"),
			Description: fieldString(hit.Fields, "description"),
			Tags:        fieldStrings(hit.Fields, "tags"),
			Lat:         fieldFloat(hit.Fields, "lat"),
			Lng:         fieldFloat(hit.Fields, "lng"),
			Start:       fieldFloat(hit.Fields, "start"),
		})
	}

	return docs, nil
}

// Close releases the underlying index.
func (s *SearchEngine) Close() error {
	return s.index.Close()
}

func (s *SearchEngine) buildCommonQuery(kind string, q *Query) *query.BooleanQuery {
	boolQuery := bleve.NewBooleanQuery()

	kindQuery := bleve.NewTermQuery(kind)
	kindQuery.SetField("kind")
	boolQuery.AddMust(kindQuery)

	if q.Bbox != nil {
		boolQuery.AddMust(bboxQuery(*q.Bbox))
	}

	if text := strings.TrimSpace(q.Text); text != "" {
		titleMatch := bleve.NewMatchQuery(text)
		titleMatch.SetField("title")
		titleMatch.SetBoost(2.0)

		descriptionMatch := bleve.NewMatchQuery(text)
		descriptionMatch.SetField("description")

		boolQuery.AddMust(bleve.NewDisjunctionQuery(titleMatch, descriptionMatch))
	}

	for _, tag := range q.HashTags {
		term := bleve.NewTermQuery(strings.ToLower(tag))
		term.SetField("tags")
		boolQuery.AddMust(term)
	}

	if len(q.IDs) > 0 {
		ids := make([]query.Query, len(q.IDs))

		for i, id := range q.IDs {
			term := bleve.NewTermQuery(id.String())
			term.SetField("id")
			ids[i] = term
		}

		boolQuery.AddMust(bleve.NewDisjunctionQuery(ids...))
	}

	return boolQuery
}

// bboxQuery translates a bounding box into numeric range queries over the
// fixed-point coordinates. Corners are inclusive; a wrap-around longitude
// range is expressed as the exclusion of the complement range.
func bboxQuery(bbox mmodel.MapBbox) query.Query {
	swLat, swLng := bbox.SouthWest.ToLatLngInt()
	neLat, neLng := bbox.NorthEast.ToLatLngInt()

	inclusive := true

	latQuery := bleve.NewNumericRangeInclusiveQuery(
		floatPtr(float64(swLat)), floatPtr(float64(neLat)), &inclusive, &inclusive)
	latQuery.SetField("lat")

	combined := bleve.NewBooleanQuery()
	combined.AddMust(latQuery)

	if swLng <= neLng {
		lngQuery := bleve.NewNumericRangeInclusiveQuery(
			floatPtr(float64(swLng)), floatPtr(float64(neLng)), &inclusive, &inclusive)
		lngQuery.SetField("lng")
		combined.AddMust(lngQuery)

		return combined
	}

	// Wrap-around: exclude the open complement range (neLng, swLng).
	exclusive := false

	complementQuery := bleve.NewNumericRangeInclusiveQuery(
		floatPtr(float64(neLng)), floatPtr(float64(swLng)), &exclusive, &exclusive)
	complementQuery.SetField("lng")
	combined.AddMustNot(complementQuery)

	return combined
}

func docID(kind, id string) string {
	return kind + ":" + id
}

func floatPtr(f float64) *float64 {
	return &f
}

func fieldString(fields map[string]any, name string) string {
	if v, ok := fields[name].(string); ok {
		return v
	}

	return ""
}

func fieldStrings(fields map[string]any, name string) []string {
	switch v := fields[name].(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

func fieldFloat(fields map[string]any, name string) float64 {
	if v, ok := fields[name].(float64); ok {
		return v
	}

	return 0
}
