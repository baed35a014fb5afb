package command

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/bleve"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/comment"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/rating"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/token"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/user"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewUseCase(ctrl *gomock.Controller) (*UseCase, *place.MockRepository, *rating.MockRepository, *comment.MockRepository, *user.MockRepository, *bleve.MockPlaceIndex) {
	placeRepo := place.NewMockRepository(ctrl)
	ratingRepo := rating.NewMockRepository(ctrl)
	commentRepo := comment.NewMockRepository(ctrl)
	userRepo := user.NewMockRepository(ctrl)
	placeIndex := bleve.NewMockPlaceIndex(ctrl)

	uc := &UseCase{
		PlaceRepo:   placeRepo,
		RatingRepo:  ratingRepo,
		CommentRepo: commentRepo,
		UserRepo:    userRepo,
		PlaceIndex:  placeIndex,
	}

	return uc, placeRepo, ratingRepo, commentRepo, userRepo, placeIndex
}

func TestReviewPlacesArchiveCascades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, ratingRepo, _, userRepo, placeIndex := newReviewUseCase(ctrl)

	ctx := context.Background()

	admin := &mmodel.User{Email: "admin@x", Role: mmodel.RoleAdmin, EmailConfirmed: true}

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), mmodel.EmailAddress("admin@x")).
		Return(admin, nil).
		Times(1)

	ids := []mmodel.ID{"p1"}

	placeRepo.EXPECT().
		ReviewPlaces(gomock.Any(), ids, mmodel.ReviewStatusArchived, gomock.Any()).
		Return(uint64(1), nil).
		Times(1)

	// Archival fans out over the ratings and their comments in a single
	// transaction, stamped with the review activity.
	ratingRepo.EXPECT().
		ArchiveRatingsOfPlacesWithComments(gomock.Any(), ids, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ []mmodel.ID, activity mmodel.Activity) (uint64, error) {
			require.NotNil(t, activity.By)
			assert.Equal(t, mmodel.EmailAddress("admin@x"), *activity.By)

			return 2, nil
		}).
		Times(1)

	// Archived places leave the index.
	placeIndex.EXPECT().RemovePlaceByID(gomock.Any(), mmodel.ID("p1")).Return(nil).Times(1)
	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)

	reviewed, err := uc.ReviewPlaces(ctx, ids, &mmodel.Review{
		ReviewerEmail: "admin@x",
		Status:        mmodel.ReviewStatusArchived,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), reviewed)
}

func TestReviewPlacesConfirmReindexes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, ratingRepo, _, userRepo, placeIndex := newReviewUseCase(ctrl)

	ctx := context.Background()

	scout := &mmodel.User{Email: "scout@x", Role: mmodel.RoleScout, EmailConfirmed: true}

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), mmodel.EmailAddress("scout@x")).
		Return(scout, nil).
		Times(1)

	placeRepo.EXPECT().
		ReviewPlaces(gomock.Any(), gomock.Any(), mmodel.ReviewStatusConfirmed, gomock.Any()).
		Return(uint64(1), nil).
		Times(1)

	confirmed := currentPlace()
	confirmed.Status = mmodel.ReviewStatusConfirmed

	placeRepo.EXPECT().GetPlace(gomock.Any(), mmodel.ID("p1")).Return(confirmed, nil).Times(1)
	ratingRepo.EXPECT().LoadRatingsOfPlace(gomock.Any(), mmodel.ID("p1")).Return(nil, nil).Times(1)

	placeIndex.EXPECT().
		AddOrUpdatePlace(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *bleve.IndexedPlace) error {
			assert.Equal(t, "confirmed", doc.Status)
			return nil
		}).
		Times(1)

	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)

	reviewed, err := uc.ReviewPlaces(ctx, []mmodel.ID{"p1"}, &mmodel.Review{
		ReviewerEmail: "scout@x",
		Status:        mmodel.ReviewStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), reviewed)
}

func TestReviewPlacesRequiresScout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, userRepo, _ := newReviewUseCase(ctrl)

	ctx := context.Background()

	plainUser := &mmodel.User{Email: "user@x", Role: mmodel.RoleUser, EmailConfirmed: true}

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), mmodel.EmailAddress("user@x")).
		Return(plainUser, nil).
		Times(1)

	_, err := uc.ReviewPlaces(ctx, []mmodel.ID{"p1"}, &mmodel.Review{
		ReviewerEmail: "user@x",
		Status:        mmodel.ReviewStatusConfirmed,
	})
	require.Error(t, err)
	assert.IsType(t, pkg.ForbiddenError{}, err)
}

func TestReviewPlacesEmptyIDList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, _, _, _, _, _ := newReviewUseCase(ctrl)

	_, err := uc.ReviewPlaces(context.Background(), nil, &mmodel.Review{
		ReviewerEmail: "admin@x",
		Status:        mmodel.ReviewStatusConfirmed,
	})
	require.Error(t, err)
	assert.IsType(t, pkg.ValidationError{}, err)
}

func TestReviewPlaceWithToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, placeRepo, ratingRepo, _, _, placeIndex := newReviewUseCase(ctrl)

	tokenRepo := token.NewMockRepository(ctrl)
	uc.TokenRepo = tokenRepo

	ctx := context.Background()

	tokenRepo.EXPECT().
		ConsumeReviewToken(gomock.Any(), mmodel.Nonce("nonce")).
		Return(&mmodel.ReviewToken{PlaceID: "p1", Revision: 0}, nil).
		Times(1)

	placeRepo.EXPECT().GetPlace(gomock.Any(), mmodel.ID("p1")).Return(currentPlace(), nil).Times(2)

	placeRepo.EXPECT().
		ReviewPlaces(gomock.Any(), []mmodel.ID{"p1"}, mmodel.ReviewStatusConfirmed, gomock.Any()).
		Return(uint64(1), nil).
		Times(1)

	ratingRepo.EXPECT().LoadRatingsOfPlace(gomock.Any(), gomock.Any()).Return(nil, nil).Times(1)
	placeIndex.EXPECT().AddOrUpdatePlace(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	placeIndex.EXPECT().Flush(gomock.Any()).Return(nil).Times(1)

	reviewed, err := uc.ReviewPlaceWithToken(ctx, "nonce", &mmodel.Review{
		ReviewerEmail: "scout@x",
		Status:        mmodel.ReviewStatusConfirmed,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), reviewed)
}
