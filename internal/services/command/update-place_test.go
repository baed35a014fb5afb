package command

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentPlace() *mmodel.PlaceWithStatus {
	pos, _ := mmodel.NewMapPoint(48.0, 9.0)

	return &mmodel.PlaceWithStatus{
		Place: mmodel.Place{
			ID:       "p1",
			License:  "CC0-1.0",
			Revision: 0,
			Title:    "Cafe",
			Location: mmodel.Location{Pos: pos},
			Tags:     []string{"vegan"},
		},
		Status: mmodel.ReviewStatusCreated,
	}
}

func TestUpdatePlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, orgRepo, _, tagRepo, placeIndex, ratingRepo, subscriptionRepo, notifications := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	placeRepo.EXPECT().
		GetPlace(gomock.Any(), mmodel.ID("p1")).
		Return(currentPlace(), nil).
		Times(1)

	orgRepo.EXPECT().ListModeratedTags(gomock.Any(), nil).Return(nil, nil).Times(1)
	tagRepo.EXPECT().CreateTagIfItDoesNotExist(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	placeRepo.EXPECT().
		CreateOrUpdatePlace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *mmodel.Place) error {
			assert.Equal(t, mmodel.Revision(1), p.Revision)

			// The license is carried over from the previous revision.
			assert.Equal(t, "CC0-1.0", p.License)

			return nil
		}).
		Times(1)

	ratingRepo.EXPECT().LoadRatingsOfPlace(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	placeIndex.EXPECT().AddOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)
	subscriptionRepo.EXPECT().AllBboxSubscriptions(gomock.Any()).Return(nil, nil).Times(1)
	notifications.EXPECT().PlaceUpdated(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	input := &mmodel.UpdatePlaceInput{
		Version: 1,
		Title:   "Cafe X",
		Lat:     48.0,
		Lng:     9.0,
		Tags:    []string{"vegan"},
	}

	updated, err := uc.UpdatePlace(ctx, "p1", input, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Cafe X", updated.Title)
	assert.Equal(t, mmodel.Revision(1), updated.Revision)
}

func TestUpdatePlaceInvalidVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, _, _, _, _, _, _, _ := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	placeRepo.EXPECT().
		GetPlace(gomock.Any(), mmodel.ID("p1")).
		Return(currentPlace(), nil).
		Times(1)

	input := &mmodel.UpdatePlaceInput{
		Version: 5,
		Title:   "Cafe X",
		Lat:     48.0,
		Lng:     9.0,
	}

	_, err := uc.UpdatePlace(ctx, "p1", input, nil, nil)
	require.Error(t, err)
	assert.IsType(t, pkg.EntityConflictError{}, err)
}

func TestUpdatePlaceNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, _, _, _, _, _, _, _ := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	placeRepo.EXPECT().
		GetPlace(gomock.Any(), mmodel.ID("missing")).
		Return(nil, services.ErrDatabaseItemNotFound).
		Times(1)

	_, err := uc.UpdatePlace(ctx, "missing", &mmodel.UpdatePlaceInput{Version: 1, Title: "X", Lat: 1, Lng: 1}, nil, nil)
	require.Error(t, err)
	assert.IsType(t, pkg.EntityNotFoundError{}, err)
}

func TestUpdatePlaceStampsPreviousRevisionOnClearance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, orgRepo, clearanceRepo, tagRepo, placeIndex, ratingRepo, subscriptionRepo, notifications := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	placeRepo.EXPECT().GetPlace(gomock.Any(), mmodel.ID("p1")).Return(currentPlace(), nil).Times(1)

	orgRepo.EXPECT().
		ListModeratedTags(gomock.Any(), nil).
		Return([]*mmodel.OrganizationModeratedTag{
			{
				OrgID: "org-a",
				ModeratedTag: mmodel.ModeratedTag{
					Label: "vegan", AllowAdd: true, AllowRemove: true, RequireClearance: true,
				},
			},
		}, nil).
		Times(1)

	tagRepo.EXPECT().CreateTagIfItDoesNotExist(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	placeRepo.EXPECT().CreateOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	clearanceRepo.EXPECT().
		AddPendingClearanceForPlaces(gomock.Any(), []mmodel.ID{"org-a"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []mmodel.ID, pending *mmodel.PendingClearanceForPlace) (uint64, error) {
			// The clearance baseline is the revision before the edit.
			require.NotNil(t, pending.LastClearedRevision)
			assert.Equal(t, mmodel.Revision(0), *pending.LastClearedRevision)

			return 1, nil
		}).
		Times(1)

	ratingRepo.EXPECT().LoadRatingsOfPlace(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	placeIndex.EXPECT().AddOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)
	subscriptionRepo.EXPECT().AllBboxSubscriptions(gomock.Any()).Return(nil, nil).Times(1)
	notifications.EXPECT().PlaceUpdated(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	input := &mmodel.UpdatePlaceInput{
		Version: 1,
		Title:   "Cafe X",
		Lat:     48.0,
		Lng:     9.0,
		Tags:    []string{"vegan"},
	}

	_, err := uc.UpdatePlace(ctx, "p1", input, nil, nil)
	require.NoError(t, err)
}
