package query

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexedPlaceAt(id string, lat, lng, total float64) *bleve.IndexedPlace {
	return &bleve.IndexedPlace{
		ID:     id,
		Lat:    float64(int64(lat * mmodel.LatLngFactor)),
		Lng:    float64(int64(lng * mmodel.LatLngFactor)),
		Status: "created",
		Total:  total,
	}
}

func TestSearchPlacesSplitsVisibleAndInvisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeIndex := bleve.NewMockPlaceIndex(ctrl)
	uc := &UseCase{PlaceIndex: placeIndex}

	bbox, err := mmodel.NewMapBbox(0, 0, 10, 10)
	require.NoError(t, err)

	placeIndex.EXPECT().
		QueryPlaces(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *bleve.Query, _ int) ([]*bleve.IndexedPlace, error) {
			// The candidate query runs over the inflated bbox.
			require.NotNil(t, q.Bbox)
			assert.InDelta(t, -0.02, q.Bbox.SouthWest.Lat, 1e-9)
			assert.InDelta(t, -0.04, q.Bbox.SouthWest.Lng, 1e-9)

			return []*bleve.IndexedPlace{
				indexedPlaceAt("inside-low", 5, 5, 0.5),
				indexedPlaceAt("outside", 10.01, 5, 2.0),
				indexedPlaceAt("inside-high", 6, 6, 1.5),
			}, nil
		}).
		Times(1)

	result, err := uc.SearchPlaces(context.Background(), &SearchPlacesRequest{Bbox: bbox})
	require.NoError(t, err)

	require.Len(t, result.Visible, 2)
	require.Len(t, result.Invisible, 1)

	// Within each group ordering is by rating average, best first.
	assert.Equal(t, "inside-high", result.Visible[0].ID)
	assert.Equal(t, "inside-low", result.Visible[1].ID)
	assert.Equal(t, "outside", result.Invisible[0].ID)
}

func TestSearchPlacesExtractsHashTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeIndex := bleve.NewMockPlaceIndex(ctrl)
	uc := &UseCase{PlaceIndex: placeIndex}

	bbox, err := mmodel.NewMapBbox(0, 0, 10, 10)
	require.NoError(t, err)

	placeIndex.EXPECT().
		QueryPlaces(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *bleve.Query, _ int) ([]*bleve.IndexedPlace, error) {
			assert.Equal(t, "coffee shop", q.Text)
			assert.Equal(t, []string{"vegan", "organic"}, q.HashTags)

			return nil, nil
		}).
		Times(1)

	_, err = uc.SearchPlaces(context.Background(), &SearchPlacesRequest{
		Bbox: bbox,
		Text: "coffee #vegan shop #organic",
	})
	require.NoError(t, err)
}

func TestSearchPlacesInvalidBbox(t *testing.T) {
	uc := &UseCase{}

	_, err := uc.SearchPlaces(context.Background(), &SearchPlacesRequest{})
	require.Error(t, err)
	assert.IsType(t, pkg.ValidationError{}, err)
}

func TestSplitTextIntoWordsAndTags(t *testing.T) {
	text, tags := SplitTextIntoWordsAndTags("fair #Trade coffee #organic #")

	assert.Equal(t, "fair coffee", text)
	assert.Equal(t, []string{"trade", "organic"}, tags)
}

func TestSearchPlacesCapsInvisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeIndex := bleve.NewMockPlaceIndex(ctrl)
	uc := &UseCase{PlaceIndex: placeIndex}

	bbox, err := mmodel.NewMapBbox(0, 0, 1, 1)
	require.NoError(t, err)

	var outside []*bleve.IndexedPlace
	for i := 0; i < 10; i++ {
		outside = append(outside, indexedPlaceAt("out", 1.01, 0.5, float64(i)))
	}

	placeIndex.EXPECT().
		QueryPlaces(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(outside, nil).
		Times(1)

	result, err := uc.SearchPlaces(context.Background(), &SearchPlacesRequest{Bbox: bbox})
	require.NoError(t, err)

	assert.Empty(t, result.Visible)
	assert.Len(t, result.Invisible, 5)
}
