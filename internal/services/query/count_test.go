package query

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/place"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/tag"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountPlacesUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeRepo := place.NewMockRepository(ctrl)
	redisRepo := redis.NewMockRedisRepository(ctrl)

	uc := &UseCase{PlaceRepo: placeRepo, RedisRepo: redisRepo}

	ctx := context.Background()

	redisRepo.EXPECT().Get(gomock.Any(), "count:entries").Return("42", true, nil).Times(1)

	count, err := uc.CountPlaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), count)
}

func TestCountPlacesCacheMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeRepo := place.NewMockRepository(ctrl)
	redisRepo := redis.NewMockRedisRepository(ctrl)

	uc := &UseCase{PlaceRepo: placeRepo, RedisRepo: redisRepo}

	ctx := context.Background()

	redisRepo.EXPECT().Get(gomock.Any(), "count:entries").Return("", false, nil).Times(1)
	placeRepo.EXPECT().CountPlaces(gomock.Any()).Return(uint64(7), nil).Times(1)
	redisRepo.EXPECT().Set(gomock.Any(), "count:entries", "7", gomock.Any()).Return(nil).Times(1)

	count, err := uc.CountPlaces(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), count)
}

func TestCountTagsCacheFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tagRepo := tag.NewMockRepository(ctrl)
	redisRepo := redis.NewMockRedisRepository(ctrl)

	uc := &UseCase{TagRepo: tagRepo, RedisRepo: redisRepo}

	ctx := context.Background()

	// A broken cache never fails the request.
	redisRepo.EXPECT().Get(gomock.Any(), "count:tags").Return("", false, errors.New("redis down")).Times(1)
	tagRepo.EXPECT().CountTags(gomock.Any()).Return(uint64(3), nil).Times(1)
	redisRepo.EXPECT().Set(gomock.Any(), "count:tags", "3", gomock.Any()).Return(errors.New("redis down")).Times(1)

	count, err := uc.CountTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
}

func TestCountWithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	placeRepo := place.NewMockRepository(ctrl)

	uc := &UseCase{PlaceRepo: placeRepo}

	placeRepo.EXPECT().CountPlaces(gomock.Any()).Return(uint64(5), nil).Times(1)

	count, err := uc.CountPlaces(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(5), count)
}
