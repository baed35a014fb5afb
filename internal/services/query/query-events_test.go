package query

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/event"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func eventAt(id string, lat, lng float64, start time.Time) *mmodel.Event {
	pos, _ := mmodel.NewMapPoint(lat, lng)

	return &mmodel.Event{
		ID:       mmodel.ID(id),
		Title:    "Event " + id,
		Start:    start,
		Location: &mmodel.Location{Pos: pos},
	}
}

func TestQueryEventsBboxFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := event.NewMockRepository(ctrl)
	uc := &UseCase{EventRepo: eventRepo}

	ctx := context.Background()

	base := time.Now()

	all := []*mmodel.Event{
		eventAt("e1", -8, 0, base.Add(1*time.Hour)),
		eventAt("e2", 0.3, 5, base.Add(2*time.Hour)),
		eventAt("e3", 7, 7.9, base.Add(3*time.Hour)),
		eventAt("e4", 12, 0, base.Add(4*time.Hour)),
	}

	eventRepo.EXPECT().AllEvents(gomock.Any(), gomock.Any()).Return(all, nil).Times(2)

	bbox, err := mmodel.ParseMapBbox("-8,-5,10,7.9")
	require.NoError(t, err)

	events, err := uc.QueryEvents(ctx, &EventsRequest{Bbox: &bbox}, nil)
	require.NoError(t, err)

	require.Len(t, events, 3)
	assert.Equal(t, mmodel.ID("e1"), events[0].ID)
	assert.Equal(t, mmodel.ID("e2"), events[1].ID)
	assert.Equal(t, mmodel.ID("e3"), events[2].ID)

	narrow, err := mmodel.ParseMapBbox("10,-1,13,1")
	require.NoError(t, err)

	events, err = uc.QueryEvents(ctx, &EventsRequest{Bbox: &narrow}, nil)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, mmodel.ID("e4"), events[0].ID)
}

func TestQueryEventsLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := event.NewMockRepository(ctrl)
	uc := &UseCase{EventRepo: eventRepo}

	ctx := context.Background()

	t.Run("limit zero is invalid", func(t *testing.T) {
		zero := 0

		_, err := uc.QueryEvents(ctx, &EventsRequest{Limit: &zero}, nil)
		require.Error(t, err)
		assert.IsType(t, pkg.ValidationError{}, err)
	})

	t.Run("limit above the maximum is capped", func(t *testing.T) {
		var all []*mmodel.Event

		base := time.Now()
		for i := 0; i < MaxEventResultLimit+10; i++ {
			all = append(all, &mmodel.Event{ID: mmodel.ID(string(rune(i))), Start: base})
		}

		eventRepo.EXPECT().AllEvents(gomock.Any(), gomock.Any()).Return(all, nil).Times(1)

		huge := 100000

		events, err := uc.QueryEvents(ctx, &EventsRequest{Limit: &huge}, nil)
		require.NoError(t, err)
		assert.Len(t, events, MaxEventResultLimit)
	})
}

func TestQueryEventsCreatedByRequiresOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := event.NewMockRepository(ctrl)
	uc := &UseCase{EventRepo: eventRepo}

	createdBy := mmodel.EmailAddress("owner@example.com")

	_, err := uc.QueryEvents(context.Background(), &EventsRequest{CreatedBy: &createdBy}, nil)
	require.Error(t, err)
	assert.IsType(t, pkg.UnauthorizedError{}, err)
}

func TestQueryEventsDefaultStartMin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	eventRepo := event.NewMockRepository(ctrl)
	uc := &UseCase{EventRepo: eventRepo}

	eventRepo.EXPECT().
		AllEvents(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter event.EventFilter) ([]*mmodel.Event, error) {
			// Without a start bound the listing defaults to now - 1 day.
			require.NotNil(t, filter.StartMin)
			assert.WithinDuration(t, time.Now().Add(-24*time.Hour), *filter.StartMin, time.Minute)

			return nil, nil
		}).
		Times(1)

	_, err := uc.QueryEvents(context.Background(), &EventsRequest{}, nil)
	require.NoError(t, err)
}
