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

// ArchiveComments archives the given comments on behalf of a scout or admin.
// Already-archived comments are skipped.
func (uc *UseCase) ArchiveComments(ctx context.Context, ids []mmodel.ID, archivedBy mmodel.EmailAddress) (uint64, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.archive_comments")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.Comment{}).Name()

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

	archived, err := uc.CommentRepo.ArchiveComments(ctx, ids, mmodel.NewActivity(&archivedBy))
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive comments", err)

		logger.Errorf("Error archiving comments: %v", err)

		return 0, err
	}

	return archived, nil
}
