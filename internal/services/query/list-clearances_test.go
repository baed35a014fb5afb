package query

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/clearance"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListPendingClearances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clearanceRepo := clearance.NewMockRepository(ctrl)
	uc := &UseCase{ClearanceRepo: clearanceRepo}

	ctx := context.Background()

	org := &mmodel.Organization{ID: "org-a", Name: "Org A"}

	pending := []*mmodel.PendingClearanceForPlace{
		{PlaceID: "p1"},
	}

	clearanceRepo.EXPECT().
		ListPendingClearancesForPlaces(gomock.Any(), mmodel.ID("org-a"), http.Pagination{Limit: 10}).
		Return(pending, nil).
		Times(1)

	got, err := uc.ListPendingClearances(ctx, org, http.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, pending, got)
}

func TestListPendingClearancesRequiresOrganization(t *testing.T) {
	uc := &UseCase{}

	_, err := uc.ListPendingClearances(context.Background(), nil, http.Pagination{})
	require.Error(t, err)
	assert.IsType(t, pkg.UnauthorizedError{}, err)

	_, err = uc.CountPendingClearances(context.Background(), nil)
	require.Error(t, err)
	assert.IsType(t, pkg.UnauthorizedError{}, err)
}

func TestCountPendingClearances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clearanceRepo := clearance.NewMockRepository(ctrl)
	uc := &UseCase{ClearanceRepo: clearanceRepo}

	org := &mmodel.Organization{ID: "org-a"}

	clearanceRepo.EXPECT().
		CountPendingClearancesForPlaces(gomock.Any(), mmodel.ID("org-a")).
		Return(uint64(4), nil).
		Times(1)

	count, err := uc.CountPendingClearances(context.Background(), org)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), count)
}
