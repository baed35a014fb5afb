package query

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// BboxSubscriptions lists the bbox subscriptions of a user.
func (uc *UseCase) BboxSubscriptions(ctx context.Context, email mmodel.EmailAddress) ([]*mmodel.BboxSubscription, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.bbox_subscriptions")
	defer span.End()

	subscriptions, err := uc.SubscriptionRepo.BboxSubscriptionsByEmail(ctx, email)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to list bbox subscriptions", err)

		return nil, err
	}

	return subscriptions, nil
}
