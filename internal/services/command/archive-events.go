package command

import (
	"context"
	"reflect"
	"time"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// ArchiveEvents archives the given events on behalf of a scout or admin and
// removes them from the index. Already-archived events are skipped.
func (uc *UseCase) ArchiveEvents(ctx context.Context, ids []mmodel.ID, archivedBy mmodel.EmailAddress) (uint64, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.archive_events")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Event{}).Name()

	if len(ids) == 0 {
		return 0, pkg.ValidateBusinessError(constant.ErrEmptyIDList, entityType)
	}

	scout, err := uc.UserRepo.GetUserByEmail(ctx, archivedBy)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load user", err)

		return 0, pkg.ValidateBusinessError(constant.ErrUnauthorized, entityType)
	}

	if err := services.AuthorizeRole(scout, mmodel.RoleScout); err != nil {
		return 0, err
	}

	archived, err := uc.EventRepo.ArchiveEvents(ctx, ids, time.Now().UTC())
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive events", err)

		logger.Errorf("Error archiving events: %v", err)

		return 0, err
	}

	for _, id := range ids {
		uc.unindexEvent(ctx, id)
	}

	return archived, nil
}
