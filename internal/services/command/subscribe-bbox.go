package command

import (
	"context"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// SubscribeToBbox replaces the user's bbox subscriptions with a single
// subscription for the given box.
func (uc *UseCase) SubscribeToBbox(ctx context.Context, email mmodel.EmailAddress, bbox mmodel.MapBbox) (*mmodel.BboxSubscription, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.subscribe_to_bbox")
	defer span.End()

	if !bbox.IsValid() {
		return nil, pkg.ValidateBusinessError(constant.ErrInvalidBbox, reflect.TypeOf(mmodel.BboxSubscription{}).Name())
	}

	if _, err := uc.SubscriptionRepo.DeleteBboxSubscriptionsByEmail(ctx, email); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to clear previous subscriptions", err)

		return nil, err
	}

	sub := &mmodel.BboxSubscription{
		ID:        mmodel.NewID(),
		UserEmail: email,
		Bbox:      bbox,
	}

	if err := uc.SubscriptionRepo.CreateBboxSubscription(ctx, sub); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to create subscription", err)

		logger.Errorf("Error creating bbox subscription: %v", err)

		return nil, err
	}

	return sub, nil
}

// UnsubscribeAllBboxes removes every bbox subscription of the user.
func (uc *UseCase) UnsubscribeAllBboxes(ctx context.Context, email mmodel.EmailAddress) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.unsubscribe_all_bboxes")
	defer span.End()

	deleted, err := uc.SubscriptionRepo.DeleteBboxSubscriptionsByEmail(ctx, email)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete subscriptions", err)

		return 0, err
	}

	return deleted, nil
}
