package command

import (
	"context"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// UpdatePendingClearances stamps the cleared revision of the given places for
// an authenticated organization. A clearance without an explicit revision
// clears the place's current revision.
func (uc *UseCase) UpdatePendingClearances(ctx context.Context, org *mmodel.Organization, clearances []mmodel.ClearanceForPlace) (uint64, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.update_pending_clearances")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.PendingClearanceForPlace{}).Name()

	if org == nil {
		return 0, pkg.ValidateBusinessError(constant.ErrMissingAPIToken, entityType)
	}

	if len(clearances) == 0 {
		return 0, pkg.ValidateBusinessError(constant.ErrEmptyIDList, entityType)
	}

	updated, err := uc.ClearanceRepo.UpdatePendingClearancesForPlaces(ctx, org.ID, clearances)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to update pending clearances", err)

		logger.Errorf("Error updating pending clearances: %v", err)

		return 0, err
	}

	return updated, nil
}

// CleanupPendingClearances removes the rows already caught up with the
// current place revisions.
func (uc *UseCase) CleanupPendingClearances(ctx context.Context, org *mmodel.Organization) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.cleanup_pending_clearances")
	defer span.End()

	if org == nil {
		return 0, pkg.ValidateBusinessError(constant.ErrMissingAPIToken,
			reflect.TypeOf(mmodel.PendingClearanceForPlace{}).Name())
	}

	cleaned, err := uc.ClearanceRepo.CleanupPendingClearancesForPlaces(ctx, org.ID)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to cleanup pending clearances", err)

		return 0, err
	}

	return cleaned, nil
}
