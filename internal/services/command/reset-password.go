package command

import (
	"context"
	"errors"
	"reflect"
	"time"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// RequestPasswordReset issues a reset token for an existing user and hands
// it to the notification gateway.
func (uc *UseCase) RequestPasswordReset(ctx context.Context, emailInput string) error {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.request_password_reset")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.User{}).Name()

	email, err := mmodel.ParseEmailAddress(emailInput)
	if err != nil {
		return pkg.ValidateBusinessError(constant.ErrInvalidEmail, entityType)
	}

	if _, err := uc.UserRepo.GetUserByEmail(ctx, email); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to load user", err)

		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return err
	}

	emailNonce, err := uc.TokenRepo.ReplaceUserToken(ctx, &mmodel.UserToken{
		EmailNonce: mmodel.NewEmailNonce(email),
		ExpiresAt:  time.Now().UTC().Add(userTokenTTL),
	})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to issue reset token", err)

		logger.Errorf("Error issuing password reset token: %v", err)

		return err
	}

	uc.Notifications.UserResetPasswordRequested(ctx, emailNonce)

	return nil
}

// ResetPassword consumes a reset token and stores the new password.
func (uc *UseCase) ResetPassword(ctx context.Context, encodedToken, newPassword string) error {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.reset_password")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.User{}).Name()

	emailNonce, err := mmodel.DecodeEmailNonce(encodedToken)
	if err != nil {
		return pkg.ValidateBusinessError(constant.ErrTokenInvalid, entityType)
	}

	password, err := mmodel.NewPassword(newPassword)
	if err != nil {
		return pkg.ValidateBusinessError(constant.ErrWeakPassword, entityType)
	}

	if _, err := uc.TokenRepo.ConsumeUserToken(ctx, emailNonce); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to consume token", err)

		return err
	}

	user, err := uc.UserRepo.GetUserByEmail(ctx, emailNonce.Email)
	if err != nil {
		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return pkg.ValidateBusinessError(constant.ErrEntityNotFound, entityType)
		}

		return err
	}

	user.Password = password

	if err := uc.UserRepo.UpdateUser(ctx, user); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to update user", err)

		logger.Errorf("Error resetting password: %v", err)

		return err
	}

	return nil
}
