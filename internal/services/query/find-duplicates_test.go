package query

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitlesSimilar(t *testing.T) {
	tests := []struct {
		name    string
		t1      string
		t2      string
		kind    DuplicateKind
		similar bool
	}{
		{
			name: "small edit distance",
			t1:   "Cafe Central",
			t2:   "Cafe Centrall",
			kind: DuplicateSimilarChars, similar: true,
		},
		{
			name: "case insensitive",
			t1:   "CAFE CENTRAL",
			t2:   "cafe central",
			kind: DuplicateSimilarChars, similar: true,
		},
		{
			name: "word multiset differs by one",
			t1:   "Weltladen an der Kirche Freiburg",
			t2:   "Weltladen an der Kirche",
			kind: DuplicateSimilarWords, similar: true,
		},
		{
			name: "reordered words",
			t1:   "Bio Markt Freiburg",
			t2:   "Freiburg Bio Markt",
			kind: DuplicateSimilarWords, similar: true,
		},
		{
			name:    "completely different",
			t1:      "Repair Cafe",
			t2:      "Urban Garden Project",
			similar: false,
		},
		{
			name:    "single short words",
			t1:      "Shop",
			t2:      "Farm",
			similar: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, similar := titlesSimilar(tt.t1, tt.t2)

			assert.Equal(t, tt.similar, similar)

			if tt.similar {
				assert.Equal(t, tt.kind, kind)
			}
		})
	}
}

func TestWordsSimilarRequiresMultiWordTitle(t *testing.T) {
	// "at least one side has more than one word"
	assert.False(t, wordsSimilar("alpha", "beta"))
	assert.True(t, wordsSimilar("alpha beta", "alpha"))
}

func TestFindDuplicates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeRepo := place.NewMockRepository(ctrl)
	placeIndex := bleve.NewMockPlaceIndex(ctrl)

	uc := &UseCase{PlaceRepo: placeRepo, PlaceIndex: placeIndex}

	ctx := context.Background()

	pos, _ := mmodel.NewMapPoint(48.0, 9.0)

	places := []*mmodel.PlaceWithStatus{
		{
			Place: mmodel.Place{
				ID:       "p1",
				Title:    "Cafe Central",
				Location: mmodel.Location{Pos: pos},
			},
			Status: mmodel.ReviewStatusCreated,
		},
	}

	placeRepo.EXPECT().AllPlaces(gomock.Any()).Return(places, nil).Times(1)

	placeIndex.EXPECT().
		QueryPlaces(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q *bleve.Query, _ int) ([]*bleve.IndexedPlace, error) {
			// The search radius spans roughly 100 metres.
			require.NotNil(t, q.Bbox)
			assert.InDelta(t, 0.0018, q.Bbox.NorthEast.Lat-q.Bbox.SouthWest.Lat, 0.0004)

			return []*bleve.IndexedPlace{
				{ID: "p1", Title: "Cafe Central"},
				{ID: "p2", Title: "Cafe Centrall"},
				{ID: "p3", Title: "Completely Different Name"},
			}, nil
		}).
		Times(1)

	duplicates, err := uc.FindDuplicates(ctx, nil)
	require.NoError(t, err)

	// The self-pair is skipped, the dissimilar title too.
	require.Len(t, duplicates, 1)
	assert.Equal(t, mmodel.ID("p1"), duplicates[0].ID)
	assert.Equal(t, mmodel.ID("p2"), duplicates[0].DuplicateID)
	assert.Equal(t, DuplicateSimilarChars, duplicates[0].Kind)
}
