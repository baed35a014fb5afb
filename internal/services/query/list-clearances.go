package query

import (
	"context"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// ListPendingClearances pages through the pending clearances of an
// authenticated organization.
func (uc *UseCase) ListPendingClearances(ctx context.Context, org *mmodel.Organization, pagination http.Pagination) ([]*mmodel.PendingClearanceForPlace, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.list_pending_clearances")
	defer span.End()

	if org == nil {
		return nil, pkg.ValidateBusinessError(constant.ErrMissingAPIToken,
			reflect.TypeOf(mmodel.PendingClearanceForPlace{}).Name())
	}

	pending, err := uc.ClearanceRepo.ListPendingClearancesForPlaces(ctx, org.ID, pagination)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to list pending clearances", err)

		return nil, err
	}

	return pending, nil
}

// CountPendingClearances counts the pending clearances of an authenticated
// organization.
func (uc *UseCase) CountPendingClearances(ctx context.Context, org *mmodel.Organization) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.count_pending_clearances")
	defer span.End()

	if org == nil {
		return 0, pkg.ValidateBusinessError(constant.ErrMissingAPIToken,
			reflect.TypeOf(mmodel.PendingClearanceForPlace{}).Name())
	}

	count, err := uc.ClearanceRepo.CountPendingClearancesForPlaces(ctx, org.ID)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to count pending clearances", err)

		return 0, err
	}

	return count, nil
}
