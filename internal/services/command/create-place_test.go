package command

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/clearance"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/organization"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/rating"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/subscription"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/tag"
	"github.com/kartevonmorgen/openfairdb/internal/gateways"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCreatePlaceUseCase(ctrl *gomock.Controller) (*UseCase, *place.MockRepository, *organization.MockRepository, *clearance.MockRepository, *tag.MockRepository, *bleve.MockPlaceIndex, *rating.MockRepository, *subscription.MockRepository, *gateways.MockNotificationGateway) {
	placeRepo := place.NewMockRepository(ctrl)
	orgRepo := organization.NewMockRepository(ctrl)
	clearanceRepo := clearance.NewMockRepository(ctrl)
	tagRepo := tag.NewMockRepository(ctrl)
	placeIndex := bleve.NewMockPlaceIndex(ctrl)
	ratingRepo := rating.NewMockRepository(ctrl)
	subscriptionRepo := subscription.NewMockRepository(ctrl)
	notifications := gateways.NewMockNotificationGateway(ctrl)

	uc := &UseCase{
		PlaceRepo:        placeRepo,
		OrganizationRepo: orgRepo,
		ClearanceRepo:    clearanceRepo,
		TagRepo:          tagRepo,
		PlaceIndex:       placeIndex,
		RatingRepo:       ratingRepo,
		SubscriptionRepo: subscriptionRepo,
		Notifications:    notifications,
		AcceptedLicenses: map[string]struct{}{"CC0-1.0": {}},
	}

	return uc, placeRepo, orgRepo, clearanceRepo, tagRepo, placeIndex, ratingRepo, subscriptionRepo, notifications
}

func TestCreatePlace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, orgRepo, _, tagRepo, placeIndex, ratingRepo, subscriptionRepo, notifications := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	input := &mmodel.CreatePlaceInput{
		Title:       "Cafe",
		Description: "A friendly place",
		Lat:         48.0,
		Lng:         9.0,
		License:     "CC0-1.0",
		Tags:        []string{"vegan"},
	}

	orgRepo.EXPECT().
		ListModeratedTags(gomock.Any(), nil).
		Return(nil, nil).
		Times(1)

	tagRepo.EXPECT().
		CreateTagIfItDoesNotExist(gomock.Any(), "vegan").
		Return(nil).
		Times(1)

	var storedPlace *mmodel.Place

	placeRepo.EXPECT().
		CreateOrUpdatePlace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p *mmodel.Place) error {
			storedPlace = p
			return nil
		}).
		Times(1)

	ratingRepo.EXPECT().
		LoadRatingsOfPlace(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		Times(1)

	placeIndex.EXPECT().
		AddOrUpdatePlace(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	placeIndex.EXPECT().
		Flush(gomock.Any()).
		Return(nil).
		Times(1)

	subscriptionRepo.EXPECT().
		AllBboxSubscriptions(gomock.Any()).
		Return(nil, nil).
		Times(1)

	notifications.EXPECT().
		PlaceAdded(gomock.Any(), gomock.Any(), gomock.Any()).
		Times(1)

	created, err := uc.CreatePlace(ctx, input, nil, nil)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, mmodel.InitialRevision, created.Revision)
	assert.Equal(t, "Cafe", created.Title)
	assert.Equal(t, []string{"vegan"}, created.Tags)
	assert.Equal(t, "CC0-1.0", created.License)
	assert.Equal(t, created, storedPlace)
}

func TestCreatePlaceValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, orgRepo, _, _, _, _, _, _ := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	orgRepo.EXPECT().
		ListModeratedTags(gomock.Any(), gomock.Any()).
		Return(nil, nil).
		AnyTimes()

	tests := []struct {
		name     string
		input    *mmodel.CreatePlaceInput
		wantType any
	}{
		{
			name: "invalid position",
			input: &mmodel.CreatePlaceInput{
				Title: "Cafe", Lat: 91.0, Lng: 9.0, License: "CC0-1.0",
			},
			wantType: pkg.ValidationError{},
		},
		{
			name: "empty title",
			input: &mmodel.CreatePlaceInput{
				Title: "  ", Lat: 48.0, Lng: 9.0, License: "CC0-1.0",
			},
			wantType: pkg.ValidationError{},
		},
		{
			name: "unaccepted license",
			input: &mmodel.CreatePlaceInput{
				Title: "Cafe", Lat: 48.0, Lng: 9.0, License: "WTFPL",
			},
			wantType: pkg.ValidationError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreatePlace(ctx, tt.input, nil, nil)
			require.Error(t, err)
			assert.IsType(t, tt.wantType, err)
		})
	}
}

func TestCreatePlaceModeratedTag(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, orgRepo, _, _, _, _, _, _ := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	// Tag "a" is owned by another organization that forbids adding it.
	orgRepo.EXPECT().
		ListModeratedTags(gomock.Any(), nil).
		Return([]*mmodel.OrganizationModeratedTag{
			{
				OrgID:        "org-a",
				ModeratedTag: mmodel.ModeratedTag{Label: "a"},
			},
		}, nil).
		Times(1)

	input := &mmodel.CreatePlaceInput{
		Title: "Cafe", Lat: 48.0, Lng: 9.0, License: "CC0-1.0", Tags: []string{"a"},
	}

	_, err := uc.CreatePlace(ctx, input, nil, nil)
	require.Error(t, err)
	assert.IsType(t, pkg.ForbiddenError{}, err)
}

func TestCreatePlaceWithClearance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, orgRepo, clearanceRepo, tagRepo, placeIndex, ratingRepo, subscriptionRepo, notifications := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	orgRepo.EXPECT().
		ListModeratedTags(gomock.Any(), nil).
		Return([]*mmodel.OrganizationModeratedTag{
			{
				OrgID: "org-a",
				ModeratedTag: mmodel.ModeratedTag{
					Label: "a", AllowAdd: true, AllowRemove: true, RequireClearance: true,
				},
			},
		}, nil).
		Times(1)

	tagRepo.EXPECT().CreateTagIfItDoesNotExist(gomock.Any(), "a").Return(nil).Times(1)
	placeRepo.EXPECT().CreateOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	clearanceRepo.EXPECT().
		AddPendingClearanceForPlaces(gomock.Any(), []mmodel.ID{"org-a"}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []mmodel.ID, pending *mmodel.PendingClearanceForPlace) (uint64, error) {
			assert.Nil(t, pending.LastClearedRevision)
			return 1, nil
		}).
		Times(1)

	ratingRepo.EXPECT().LoadRatingsOfPlace(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	placeIndex.EXPECT().AddOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)
	subscriptionRepo.EXPECT().AllBboxSubscriptions(gomock.Any()).Return(nil, nil).Times(1)
	notifications.EXPECT().PlaceAdded(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	input := &mmodel.CreatePlaceInput{
		Title: "Cafe", Lat: 48.0, Lng: 9.0, License: "CC0-1.0", Tags: []string{"a"},
	}

	created, err := uc.CreatePlace(ctx, input, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, created.Tags)
}

func TestCreatePlaceNotifiesMatchingSubscribers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, orgRepo, _, tagRepo, placeIndex, ratingRepo, subscriptionRepo, notifications := newCreatePlaceUseCase(ctrl)

	ctx := context.Background()

	orgRepo.EXPECT().ListModeratedTags(gomock.Any(), nil).Return(nil, nil).Times(1)
	tagRepo.EXPECT().CreateTagIfItDoesNotExist(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	placeRepo.EXPECT().CreateOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	ratingRepo.EXPECT().LoadRatingsOfPlace(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	placeIndex.EXPECT().AddOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)

	insideBbox, _ := mmodel.NewMapBbox(47, 8, 49, 10)
	outsideBbox, _ := mmodel.NewMapBbox(-10, -10, -5, -5)

	subscriptionRepo.EXPECT().
		AllBboxSubscriptions(gomock.Any()).
		Return([]*mmodel.BboxSubscription{
			{ID: "s1", UserEmail: "in@example.com", Bbox: insideBbox},
			{ID: "s2", UserEmail: "out@example.com", Bbox: outsideBbox},
		}, nil).
		Times(1)

	notifications.EXPECT().
		PlaceAdded(gomock.Any(), []mmodel.EmailAddress{"in@example.com"}, gomock.Any()).
		Times(1)

	input := &mmodel.CreatePlaceInput{
		Title: "Cafe", Lat: 48.0, Lng: 9.0, License: "CC0-1.0", Tags: []string{"vegan"},
	}

	_, err := uc.CreatePlace(ctx, input, nil, nil)
	require.NoError(t, err)
}
