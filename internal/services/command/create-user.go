package command

import (
	"context"
	"reflect"
	"time"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
)

// userTokenTTL bounds the lifetime of email-confirmation and password-reset
// tokens.
const userTokenTTL = 48 * time.Hour

// CreateUser registers a new user with an unconfirmed email address and
// issues the confirmation token through the notification gateway.
func (uc *UseCase) CreateUser(ctx context.Context, input *mmodel.CreateUserInput) (*mmodel.User, error) {
	logger := pkg.NewLoggerFromContext(ctx)
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "command.create_user")
	defer span.End()

	entityType := reflect.TypeOf(mmodel.User{}).Name()

	email, err := mmodel.ParseEmailAddress(input.Email)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrInvalidEmail, entityType)
	}

	existing, err := uc.UserRepo.TryGetUserByEmail(ctx, email)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to check user existence", err)

		return nil, err
	}

	if existing != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrUserExists, entityType)
	}

	password, err := mmodel.NewPassword(input.Password)
	if err != nil {
		return nil, pkg.ValidateBusinessError(constant.ErrWeakPassword, entityType)
	}

	user := &mmodel.User{
		Email:          email,
		EmailConfirmed: false,
		Password:       password,
		Role:           mmodel.RoleUser,
	}

	if err := uc.UserRepo.CreateUser(ctx, user); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to create user", err)

		logger.Errorf("Error creating user: %v", err)

		return nil, err
	}

	emailNonce, err := uc.TokenRepo.ReplaceUserToken(ctx, &mmodel.UserToken{
		EmailNonce: mmodel.NewEmailNonce(email),
		ExpiresAt:  time.Now().UTC().Add(userTokenTTL),
	})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to issue confirmation token", err)

		return nil, err
	}

	uc.Notifications.UserRegistered(ctx, user, emailNonce.EncodeToString())

	return user, nil
}
