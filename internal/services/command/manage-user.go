package command

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

// DeleteUser removes an account. A user may delete their own account; any
// other account requires the admin role.
func (uc *UseCase) DeleteUser(ctx context.Context, actor mmodel.EmailAddress, email mmodel.EmailAddress) error {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.delete_user")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.User{}).Name()

	if actor != email {
		actingUser, err := uc.UserRepo.GetUserByEmail(ctx, actor)
		if err != nil {
			return pkg.ValidateBusinessError(constant.ErrUnauthorized, entityType)
		}

		if err := services.AuthorizeRole(actingUser, mmodel.RoleAdmin); err != nil {
			return err
		}
	}

	if err := uc.UserRepo.DeleteUserByEmail(ctx, email); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete user", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		logger.Errorf("Error deleting user: %v", err)

		return err
	}

	if _, err := uc.SubscriptionRepo.DeleteBboxSubscriptionsByEmail(ctx, email); err != nil {
		logger.Errorf("Error deleting bbox subscriptions of %s: %v", email, err)
	}

	return nil
}

// ChangeUserRole assigns a new role to a user. Only admins may do this, and
// nobody can grant a role above their own.
func (uc *UseCase) ChangeUserRole(ctx context.Context, actor mmodel.EmailAddress, email mmodel.EmailAddress, role mmodel.Role) error {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.change_user_role")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.User{}).Name()

	actingUser, err := uc.UserRepo.GetUserByEmail(ctx, actor)
	if err != nil {
		return pkg.ValidateBusinessError(constant.ErrUnauthorized, entityType)
	}

	if err := services.AuthorizeRole(actingUser, mmodel.RoleAdmin); err != nil {
		return err
	}

	if role > actingUser.Role {
		return pkg.ValidateBusinessError(constant.ErrInsufficientPrivilege, entityType)
	}

	user, err := uc.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load user", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return err
	}

	user.Role = role

	if err := uc.UserRepo.UpdateUser(ctx, user); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to update user", err)

		logger.Errorf("Error changing user role: %v", err)

		return err
	}

	return nil
}
