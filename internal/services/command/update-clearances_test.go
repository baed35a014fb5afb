package command

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/clearance"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdatePendingClearances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clearanceRepo := clearance.NewMockRepository(ctrl)
	uc := &UseCase{ClearanceRepo: clearanceRepo}

	ctx := context.Background()

	org := &mmodel.Organization{ID: "org-a"}

	rev := mmodel.Revision(3)
	clearances := []mmodel.ClearanceForPlace{
		{PlaceID: "p1", ClearedRevision: &rev},
		{PlaceID: "p2"},
	}

	clearanceRepo.EXPECT().
		UpdatePendingClearancesForPlaces(gomock.Any(), mmodel.ID("org-a"), clearances).
		Return(uint64(2), nil).
		Times(1)

	updated, err := uc.UpdatePendingClearances(ctx, org, clearances)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), updated)
}

func TestUpdatePendingClearancesGuards(t *testing.T) {
	uc := &UseCase{}

	_, err := uc.UpdatePendingClearances(context.Background(), nil, []mmodel.ClearanceForPlace{{PlaceID: "p1"}})
	require.Error(t, err)
	assert.IsType(t, pkg.UnauthorizedError{}, err)

	_, err = uc.UpdatePendingClearances(context.Background(), &mmodel.Organization{ID: "org-a"}, nil)
	require.Error(t, err)
	assert.IsType(t, pkg.ValidationError{}, err)
}

func TestCleanupPendingClearances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clearanceRepo := clearance.NewMockRepository(ctrl)
	uc := &UseCase{ClearanceRepo: clearanceRepo}

	org := &mmodel.Organization{ID: "org-a"}

	clearanceRepo.EXPECT().
		CleanupPendingClearancesForPlaces(gomock.Any(), mmodel.ID("org-a")).
		Return(uint64(3), nil).
		Times(1)

	cleaned, err := uc.CleanupPendingClearances(context.Background(), org)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), cleaned)
}
