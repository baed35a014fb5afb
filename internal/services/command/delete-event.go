package command

import (
	"context"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// DeleteEvent removes an event on behalf of an admin and drops it from the
// index.
func (uc *UseCase) DeleteEvent(ctx context.Context, id mmodel.ID, deletedBy mmodel.EmailAddress) error {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.delete_event")
	defer span.End()

	admin, err := uc.UserRepo.GetUserByEmail(ctx, deletedBy)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load user", err)

		return pkg.ValidateBusinessError(constant.ErrUnauthorized, reflect.TypeOf(mmodel.Event{}).Name())
	}

	if err := services.AuthorizeRole(admin, mmodel.RoleAdmin); err != nil {
		return err
	}

	if err := uc.EventRepo.DeleteEvent(ctx, id); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete event", err)

		logger.Errorf("Error deleting event: %v", err)

		return err
	}

	uc.unindexEvent(ctx, id)

	return nil
}

// DeleteEventByOrganization removes an event on behalf of an organization.
// The delete only happens when the event carries at least one of the
// organization's owned tags; otherwise the organization is not authorized.
func (uc *UseCase) DeleteEventByOrganization(ctx context.Context, id mmodel.ID, org *mmodel.Organization) error {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.delete_event_by_organization")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Event{}).Name()

	if org == nil {
		return pkg.ValidateBusinessError(constant.ErrMissingAPIToken, entityType)
	}

	ownedTags := make([]string, len(org.ModeratedTags))
	for i, moderated := range org.ModeratedTags {
		ownedTags[i] = moderated.Label
	}

	if len(ownedTags) == 0 {
		return pkg.ValidateBusinessError(constant.ErrInsufficientPrivilege, entityType)
	}

	deleted, err := uc.EventRepo.DeleteEventWithMatchingTags(ctx, id, ownedTags)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete event", err)

		logger.Errorf("Error deleting event: %v", err)

		return err
	}

	if !deleted {
		return pkg.ValidateBusinessError(constant.ErrInsufficientPrivilege, entityType)
	}

	uc.unindexEvent(ctx, id)

	return nil
}
