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

// Login verifies the credentials of a user. Accounts with unconfirmed email
// addresses cannot sign in.
func (uc *UseCase) Login(ctx context.Context, input *mmodel.LoginInput) (*mmodel.User, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.login")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.User{}).Name()

	email, err := mmodel.ParseEmailAddress(input.Email)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrInvalidCredentials, entityType)
	}

	user, err := uc.UserRepo.GetUserByEmail(ctx, email)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load user", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrInvalidCredentials, entityType)
		}

		return nil, err
	}

	if !mmodel.VerifyPassword(user.Password, input.Password) {
		return nil, pkg.ValidateBusinessError(constant.ErrInvalidCredentials, entityType)
	}

	if !user.EmailConfirmed {
		return nil, pkg.ValidateBusinessError(constant.ErrEmailNotConfirmed, entityType)
	}

	return user, nil
}
