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

// ConfirmEmailAddress consumes an email-confirmation token and marks the
// user's email address as confirmed.
func (uc *UseCase) ConfirmEmailAddress(ctx context.Context, encodedToken string) (*mmodel.User, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.confirm_email_address")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.User{}).Name()

	emailNonce, err := mmodel.DecodeEmailNonce(encodedToken)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrTokenInvalid, entityType)
	}

	if _, err := uc.TokenRepo.ConsumeUserToken(ctx, emailNonce); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to consume token", err)

		return nil, err
	}

	user, err := uc.UserRepo.GetUserByEmail(ctx, emailNonce.Email)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load user", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return nil, err
	}

	user.EmailConfirmed = true

	if err := uc.UserRepo.UpdateUser(ctx, user); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to update user", err)

		logger.Errorf("Error confirming email address: %v", err)

		return nil, err
	}

	return user, nil
}
