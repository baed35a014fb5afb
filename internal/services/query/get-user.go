package query

import (
	"context"
	"errors"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// GetUser retrieves a user by email. Users may read their own account; any
// other account requires the admin role.
func (uc *UseCase) GetUser(ctx context.Context, requestedBy mmodel.EmailAddress, email mmodel.EmailAddress) (*mmodel.User, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.get_user")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.User{}).Name()

	if requestedBy != email {
		actingUser, err := uc.UserRepo.GetUserByEmail(ctx, requestedBy)
		if err != nil {
			return nil, pkg.ValidateBusinessError(constant.ErrUnauthorized, entityType)
		}

		if err := services.AuthorizeRole(actingUser, mmodel.RoleAdmin); err != nil {
			return nil, err
		}
	}

	user, err := uc.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get user", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return nil, err
	}

	return user, nil
}

// AllUsers lists every user on behalf of an admin.
func (uc *UseCase) AllUsers(ctx context.Context, requestedBy mmodel.EmailAddress) ([]*mmodel.User, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "query.all_users")
	defer span.End()

	actingUser, err := uc.UserRepo.GetUserByEmail(ctx, requestedBy)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrUnauthorized, reflect.TypeOf(mmodel.User{}).Name())
	}

	if err := services.AuthorizeRole(actingUser, mmodel.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := uc.UserRepo.AllUsers(ctx)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to list users", err)

		return nil, err
	}

	return users, nil
}
