package bleve

import (
	"context"
	"testing"

	"github.com/kartevonmorgen/openfairdb/pkg/mlog"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *SearchEngine {
	t.Helper()

	engine, err := NewSearchEngine("", &mlog.NoneLogger{})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = engine.Close()
	})

	return engine
}

func indexPlaceDoc(t *testing.T, engine *SearchEngine, id, title string, lat, lng float64, status mmodel.ReviewStatus, tags ...string) {
	t.Helper()

	pos, err := mmodel.NewMapPoint(lat, lng)
	require.NoError(t, err)

	place := &mmodel.Place{
		ID:       mmodel.ID(id),
		Title:    title,
		Location: mmodel.Location{Pos: pos},
		Tags:     tags,
	}

	require.NoError(t, engine.AddOrUpdatePlace(context.Background(), NewIndexedPlace(place, status, mmodel.AvgRatings{})))
	require.NoError(t, engine.Flush(context.Background()))
}

func queryIDs(t *testing.T, engine *SearchEngine, q *Query) []string {
	t.Helper()

	docs, err := engine.QueryPlaces(context.Background(), q, 100)
	require.NoError(t, err)

	ids := make([]string, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}

	return ids
}

func TestSearchEngineBboxFilter(t *testing.T) {
	engine := newTestEngine(t)

	indexPlaceDoc(t, engine, "inside", "Inside", 5, 5, mmodel.ReviewStatusCreated)
	indexPlaceDoc(t, engine, "corner", "Corner", 0, 0, mmodel.ReviewStatusCreated)
	indexPlaceDoc(t, engine, "outside", "Outside", 20, 20, mmodel.ReviewStatusCreated)

	bbox, err := mmodel.NewMapBbox(0, 0, 10, 10)
	require.NoError(t, err)

	ids := queryIDs(t, engine, &Query{Bbox: &bbox})

	// The SW corner is inclusive.
	assert.ElementsMatch(t, []string{"inside", "corner"}, ids)
}

func TestSearchEngineWrapAroundLongitude(t *testing.T) {
	engine := newTestEngine(t)

	indexPlaceDoc(t, engine, "east", "East", 0, 175, mmodel.ReviewStatusCreated)
	indexPlaceDoc(t, engine, "west", "West", 0, -175, mmodel.ReviewStatusCreated)
	indexPlaceDoc(t, engine, "greenwich", "Greenwich", 0, 0, mmodel.ReviewStatusCreated)

	bbox, err := mmodel.NewMapBbox(-10, 170, 10, -170)
	require.NoError(t, err)

	ids := queryIDs(t, engine, &Query{Bbox: &bbox})

	assert.ElementsMatch(t, []string{"east", "west"}, ids)
}

func TestSearchEngineStatusFilter(t *testing.T) {
	engine := newTestEngine(t)

	indexPlaceDoc(t, engine, "visible", "Visible", 1, 1, mmodel.ReviewStatusConfirmed)
	indexPlaceDoc(t, engine, "rejected", "Rejected", 1, 1, mmodel.ReviewStatusRejected)

	// The default status set hides rejected entries.
	ids := queryIDs(t, engine, &Query{})
	assert.Equal(t, []string{"visible"}, ids)

	// An explicit status set can reveal them.
	ids = queryIDs(t, engine, &Query{Statuses: []mmodel.ReviewStatus{mmodel.ReviewStatusRejected}})
	assert.Equal(t, []string{"rejected"}, ids)
}

func TestSearchEngineTagFilter(t *testing.T) {
	engine := newTestEngine(t)

	indexPlaceDoc(t, engine, "vegan-place", "Cafe", 1, 1, mmodel.ReviewStatusCreated, "vegan", "organic")
	indexPlaceDoc(t, engine, "other", "Cafe", 1, 1, mmodel.ReviewStatusCreated, "fair")

	ids := queryIDs(t, engine, &Query{HashTags: []string{"vegan"}})
	assert.Equal(t, []string{"vegan-place"}, ids)

	// Tags combine with AND.
	ids = queryIDs(t, engine, &Query{HashTags: []string{"vegan", "fair"}})
	assert.Empty(t, ids)
}

func TestSearchEngineTextSearch(t *testing.T) {
	engine := newTestEngine(t)

	indexPlaceDoc(t, engine, "cafe", "Vegan Cafe", 1, 1, mmodel.ReviewStatusCreated)
	indexPlaceDoc(t, engine, "garden", "Community Garden", 1, 1, mmodel.ReviewStatusCreated)

	ids := queryIDs(t, engine, &Query{Text: "cafe"})
	assert.Equal(t, []string{"cafe"}, ids)
}

func TestSearchEngineRemove(t *testing.T) {
	engine := newTestEngine(t)

	indexPlaceDoc(t, engine, "gone", "Gone", 1, 1, mmodel.ReviewStatusCreated)

	require.NoError(t, engine.RemovePlaceByID(context.Background(), "gone"))
	require.NoError(t, engine.Flush(context.Background()))

	assert.Empty(t, queryIDs(t, engine, &Query{}))
}

func TestSearchEngineEvents(t *testing.T) {
	engine := newTestEngine(t)

	ctx := context.Background()

	event := &mmodel.Event{
		ID:    "e1",
		Title: "Street Festival",
		Tags:  []string{"music"},
	}

	require.NoError(t, engine.AddOrUpdateEvent(ctx, NewIndexedEvent(event)))
	require.NoError(t, engine.Flush(ctx))

	docs, err := engine.QueryEvents(ctx, &Query{Text: "festival"}, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "e1", docs[0].ID)

	// Place queries never surface event documents.
	assert.Empty(t, queryIDs(t, engine, &Query{Text: "festival"}))
}
