package command

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/comment"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/rating"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/user"
	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRatingUseCase(ctrl *gomock.Controller) (*UseCase, *place.MockRepository, *rating.MockRepository, *comment.MockRepository, *bleve.MockPlaceIndex) {
	placeRepo := place.NewMockRepository(ctrl)
	ratingRepo := rating.NewMockRepository(ctrl)
	commentRepo := comment.NewMockRepository(ctrl)
	placeIndex := bleve.NewMockPlaceIndex(ctrl)

	uc := &UseCase{
		PlaceRepo:   placeRepo,
		RatingRepo:  ratingRepo,
		CommentRepo: commentRepo,
		PlaceIndex:  placeIndex,
	}

	return uc, placeRepo, ratingRepo, commentRepo, placeIndex
}

func TestCreateRating(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, ratingRepo, _, placeIndex := newRatingUseCase(ctrl)

	ctx := context.Background()

	placeRepo.EXPECT().GetPlace(gomock.Any(), mmodel.ID("p1")).Return(currentPlace(), nil).Times(1)

	var createdRating *mmodel.Rating

	// Rating and comment are inserted together in one transaction.
	ratingRepo.EXPECT().
		CreateRatingWithComment(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *mmodel.Rating, c *mmodel.Comment) error {
			createdRating = r

			assert.Equal(t, r.ID, c.RatingID)
			assert.Equal(t, "Great place", c.Text)

			return nil
		}).
		Times(1)

	// The place document is refreshed so its ratings summary changes.
	ratingRepo.EXPECT().LoadRatingsOfPlace(gomock.Any(), mmodel.ID("p1")).Return(nil, nil).Times(1)
	placeIndex.EXPECT().AddOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)

	ratingID, commentID, err := uc.CreateRating(ctx, &mmodel.CreateRatingInput{
		PlaceID: "p1",
		Title:   "Nice",
		Value:   2,
		Context: "diversity",
		Comment: "Great place",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ratingID)
	assert.NotEmpty(t, commentID)
	assert.Equal(t, mmodel.RatingValue(2), createdRating.Value)
	assert.Equal(t, mmodel.RatingContextDiversity, createdRating.Context)
}

func TestCreateRatingValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, _, _, _ := newRatingUseCase(ctrl)

	ctx := context.Background()

	placeRepo.EXPECT().GetPlace(gomock.Any(), mmodel.ID("p1")).Return(currentPlace(), nil).AnyTimes()

	tests := []struct {
		name  string
		input *mmodel.CreateRatingInput
	}{
		{
			name:  "value out of range",
			input: &mmodel.CreateRatingInput{PlaceID: "p1", Value: 3, Context: "diversity", Comment: "x"},
		},
		{
			name:  "unknown context",
			input: &mmodel.CreateRatingInput{PlaceID: "p1", Value: 1, Context: "speed", Comment: "x"},
		},
		{
			name:  "empty comment",
			input: &mmodel.CreateRatingInput{PlaceID: "p1", Value: 1, Context: "diversity", Comment: "  "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := uc.CreateRating(ctx, tt.input)
			require.Error(t, err)
			assert.IsType(t, pkg.ValidationError{}, err)
		})
	}
}

func TestCreateRatingPlaceNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, _, _, _ := newRatingUseCase(ctrl)

	placeRepo.EXPECT().
		GetPlace(gomock.Any(), mmodel.ID("missing")).
		Return(nil, services.ErrDatabaseItemNotFound).
		Times(1)

	_, _, err := uc.CreateRating(context.Background(), &mmodel.CreateRatingInput{
		PlaceID: "missing", Value: 1, Context: "diversity", Comment: "x",
	})
	require.Error(t, err)
	assert.IsType(t, pkg.EntityNotFoundError{}, err)
}

func TestArchiveRatings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, ratingRepo, _, placeIndex := newRatingUseCase(ctrl)

	userRepo := user.NewMockRepository(ctrl)
	uc.UserRepo = userRepo

	ctx := context.Background()

	scout := &mmodel.User{Email: "scout@x", Role: mmodel.RoleScout, EmailConfirmed: true}

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), mmodel.EmailAddress("scout@x")).Return(scout, nil).Times(1)

	ids := []mmodel.ID{"r1", "r2"}

	ratingRepo.EXPECT().LoadPlaceIDsOfRatings(gomock.Any(), ids).Return([]mmodel.ID{"p1"}, nil).Times(1)
	ratingRepo.EXPECT().ArchiveRatingsWithComments(gomock.Any(), ids, gomock.Any()).Return(uint64(2), nil).Times(1)

	placeRepo.EXPECT().GetPlace(gomock.Any(), mmodel.ID("p1")).Return(currentPlace(), nil).Times(1)
	ratingRepo.EXPECT().LoadRatingsOfPlace(gomock.Any(), mmodel.ID("p1")).Return(nil, nil).Times(1)
	placeIndex.EXPECT().AddOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)

	archived, err := uc.ArchiveRatings(ctx, ids, "scout@x")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), archived)
}
