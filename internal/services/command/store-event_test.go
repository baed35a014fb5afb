package command

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/event"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/organization"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/tag"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/user"
	"github.com/kartevonmorgen/openfairdb/internal/gateways"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventUseCase(ctrl *gomock.Controller) (*UseCase, *event.MockRepository, *organization.MockRepository, *tag.MockRepository, *bleve.MockEventIndex, *gateways.MockNotificationGateway, *gateways.MockGeoCodingGateway) {
	eventRepo := event.NewMockRepository(ctrl)
	orgRepo := organization.NewMockRepository(ctrl)
	tagRepo := tag.NewMockRepository(ctrl)
	eventIndex := bleve.NewMockEventIndex(ctrl)
	notifications := gateways.NewMockNotificationGateway(ctrl)
	geoCoding := gateways.NewMockGeoCodingGateway(ctrl)

	uc := &UseCase{
		EventRepo:        eventRepo,
		OrganizationRepo: orgRepo,
		TagRepo:          tagRepo,
		EventIndex:       eventIndex,
		Notifications:    notifications,
		GeoCoding:        geoCoding,
	}

	return uc, eventRepo, orgRepo, tagRepo, eventIndex, notifications, geoCoding
}

func TestCreateEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, eventRepo, orgRepo, tagRepo, eventIndex, notifications, _ := newEventUseCase(ctrl)

	ctx := context.Background()

	start := time.Now().Add(24 * time.Hour).Unix()
	lat, lng := 48.0, 9.0

	orgRepo.EXPECT().ListModeratedTags(gomock.Any(), nil).Return(nil, nil).Times(1)
	tagRepo.EXPECT().CreateTagIfItDoesNotExist(gomock.Any(), "music").Return(nil).Times(1)
	eventRepo.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	eventIndex.EXPECT().AddOrUpdateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	eventIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)
	notifications.EXPECT().EventCreated(gomock.Any(), gomock.Any()).Times(1)

	created, err := uc.CreateEvent(ctx, &mmodel.StoreEventInput{
		Title: "Concert",
		Start: start,
		Lat:   &lat,
		Lng:   &lng,
		Tags:  []string{"Music"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "Concert", created.Title)
	assert.Equal(t, []string{"music"}, created.Tags)
	assert.Equal(t, start, created.Start.Unix())
}

func TestCreateEventValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, orgRepo, _, _, _, _ := newEventUseCase(ctrl)

	ctx := context.Background()

	orgRepo.EXPECT().ListModeratedTags(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	start := time.Now().Unix()
	endBeforeStart := start - 3600
	email := "contact@example.com"
	registrationEmail := "email"
	registrationPhone := "telephone"

	tests := []struct {
		name  string
		input *mmodel.StoreEventInput
	}{
		{
			name:  "empty title",
			input: &mmodel.StoreEventInput{Title: " ", Start: start},
		},
		{
			name:  "end before start",
			input: &mmodel.StoreEventInput{Title: "Concert", Start: start, End: &endBeforeStart},
		},
		{
			name: "registration by email without email",
			input: &mmodel.StoreEventInput{
				Title: "Concert", Start: start, Registration: &registrationEmail,
			},
		},
		{
			name: "registration by phone without phone",
			input: &mmodel.StoreEventInput{
				Title: "Concert", Start: start, Registration: &registrationPhone, Email: &email,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.CreateEvent(ctx, tt.input, nil)
			require.Error(t, err)
			assert.IsType(t, pkg.ValidationError{}, err)
		})
	}
}

func TestCreateEventAppendsOrganizationTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, eventRepo, orgRepo, tagRepo, eventIndex, notifications, _ := newEventUseCase(ctrl)

	ctx := context.Background()

	org := &mmodel.Organization{
		ID: "org-a",
		ModeratedTags: []mmodel.ModeratedTag{
			{Label: "owned", AllowAdd: true, AllowRemove: true},
		},
	}

	orgRepo.EXPECT().ListModeratedTags(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	tagRepo.EXPECT().CreateTagIfItDoesNotExist(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	eventRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *mmodel.Event) error {
			assert.Contains(t, e.Tags, "owned")
			assert.Contains(t, e.Tags, "music")
			return nil
		}).
		Times(1)

	eventIndex.EXPECT().AddOrUpdateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	eventIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)
	notifications.EXPECT().EventCreated(gomock.Any(), gomock.Any()).Times(1)

	_, err := uc.CreateEvent(ctx, &mmodel.StoreEventInput{
		Title: "Concert",
		Start: time.Now().Unix(),
		Tags:  []string{"music"},
	}, org)
	require.NoError(t, err)
}

func TestCreateEventResolvesAddressWithoutPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, eventRepo, orgRepo, tagRepo, eventIndex, notifications, geoCoding := newEventUseCase(ctrl)

	ctx := context.Background()

	city := "Freiburg"
	resolved, _ := mmodel.NewMapPoint(47.99, 7.84)

	orgRepo.EXPECT().ListModeratedTags(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	tagRepo.EXPECT().CreateTagIfItDoesNotExist(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	geoCoding.EXPECT().
		ResolveAddressLatLng(gomock.Any(), gomock.Any()).
		Return(&resolved).
		Times(1)

	eventRepo.EXPECT().
		CreateEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *mmodel.Event) error {
			require.NotNil(t, e.Location)
			assert.True(t, e.Location.Pos.IsValid())
			assert.InDelta(t, 47.99, e.Location.Pos.Lat, 1e-9)
			return nil
		}).
		Times(1)

	eventIndex.EXPECT().AddOrUpdateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	eventIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)
	notifications.EXPECT().EventCreated(gomock.Any(), gomock.Any()).Times(1)

	_, err := uc.CreateEvent(ctx, &mmodel.StoreEventInput{
		Title: "Concert",
		Start: time.Now().Unix(),
		City:  &city,
	}, nil)
	require.NoError(t, err)
}

func TestUpdateEventLastWriterWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, eventRepo, orgRepo, tagRepo, eventIndex, notifications, _ := newEventUseCase(ctrl)

	ctx := context.Background()

	current := &mmodel.Event{
		ID:    "e1",
		Title: "Concert",
		Start: time.Now(),
		Tags:  []string{"music"},
	}

	eventRepo.EXPECT().GetEvent(gomock.Any(), mmodel.ID("e1")).Return(current, nil).Times(1)
	orgRepo.EXPECT().ListModeratedTags(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	tagRepo.EXPECT().CreateTagIfItDoesNotExist(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	eventRepo.EXPECT().UpdateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	eventIndex.EXPECT().AddOrUpdateEvent(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	eventIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)
	notifications.EXPECT().EventUpdated(gomock.Any(), gomock.Any()).Times(1)

	updated, err := uc.UpdateEvent(ctx, "e1", &mmodel.StoreEventInput{
		Title: "Concert X",
		Start: time.Now().Unix(),
		Tags:  []string{"music"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "Concert X", updated.Title)
}

func TestArchiveEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, eventRepo, _, _, eventIndex, _, _ := newEventUseCase(ctrl)

	userRepo := user.NewMockRepository(ctrl)
	uc.UserRepo = userRepo

	ctx := context.Background()

	scout := &mmodel.User{Email: "scout@x", Role: mmodel.RoleScout, EmailConfirmed: true}

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), mmodel.EmailAddress("scout@x")).Return(scout, nil).Times(1)

	ids := []mmodel.ID{"e1", "e2"}

	eventRepo.EXPECT().ArchiveEvents(gomock.Any(), ids, gomock.Any()).Return(uint64(2), nil).Times(1)

	eventIndex.EXPECT().RemoveEventByID(gomock.Any(), mmodel.ID("e1")).Return(nil).Times(1)
	eventIndex.EXPECT().RemoveEventByID(gomock.Any(), mmodel.ID("e2")).Return(nil).Times(1)
	eventIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(2)

	archived, err := uc.ArchiveEvents(ctx, ids, "scout@x")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), archived)
}

func TestDeleteEventByOrganization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, eventRepo, _, _, eventIndex, _, _ := newEventUseCase(ctrl)

	ctx := context.Background()

	org := &mmodel.Organization{
		ID: "org-a",
		ModeratedTags: []mmodel.ModeratedTag{
			{Label: "owned", AllowAdd: true, AllowRemove: true},
		},
	}

	t.Run("deletes when a tag matches", func(t *testing.T) {
		eventRepo.EXPECT().
			DeleteEventWithMatchingTags(gomock.Any(), mmodel.ID("e1"), []string{"owned"}).
			Return(true, nil).
			Times(1)

		eventIndex.EXPECT().RemoveEventByID(gomock.Any(), mmodel.ID("e1")).Return(nil).Times(1)
		eventIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)

		assert.NoError(t, uc.DeleteEventByOrganization(ctx, "e1", org))
	})

	t.Run("rejects when no tag matches", func(t *testing.T) {
		eventRepo.EXPECT().
			DeleteEventWithMatchingTags(gomock.Any(), mmodel.ID("e2"), []string{"owned"}).
			Return(false, nil).
			Times(1)

		err := uc.DeleteEventByOrganization(ctx, "e2", org)
		require.Error(t, err)
		assert.IsType(t, pkg.ForbiddenError{}, err)
	})
}
