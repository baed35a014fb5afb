package command

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/token"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/user"
	"github.com/kartevonmorgen/openfairdb/internal/gateways"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserUseCase(ctrl *gomock.Controller) (*UseCase, *user.MockRepository, *token.MockRepository, *gateways.MockNotificationGateway) {
	userRepo := user.NewMockRepository(ctrl)
	tokenRepo := token.NewMockRepository(ctrl)
	notifications := gateways.NewMockNotificationGateway(ctrl)

	uc := &UseCase{
		UserRepo:      userRepo,
		TokenRepo:     tokenRepo,
		Notifications: notifications,
	}

	return uc, userRepo, tokenRepo, notifications
}

func TestCreateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, tokenRepo, notifications := newUserUseCase(ctrl)

	ctx := context.Background()

	userRepo.EXPECT().
		TryGetUserByEmail(gomock.Any(), mmodel.EmailAddress("new@example.com")).
		Return(nil, nil).
		Times(1)

	userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *mmodel.User) error {
			assert.False(t, u.EmailConfirmed)
			assert.Equal(t, mmodel.RoleUser, u.Role)
			assert.True(t, mmodel.VerifyPassword(u.Password, "str0ng-pass"))
			return nil
		}).
		Times(1)

	tokenRepo.EXPECT().
		ReplaceUserToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ut *mmodel.UserToken) (mmodel.EmailNonce, error) {
			assert.Equal(t, mmodel.EmailAddress("new@example.com"), ut.EmailNonce.Email)
			assert.False(t, ut.IsExpired(time.Now()))
			return ut.EmailNonce, nil
		}).
		Times(1)

	notifications.EXPECT().UserRegistered(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)

	created, err := uc.CreateUser(ctx, &mmodel.CreateUserInput{
		Email:    "new@example.com",
		Password: "str0ng-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, mmodel.EmailAddress("new@example.com"), created.Email)
}

func TestCreateUserAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, _, _ := newUserUseCase(ctrl)

	userRepo.EXPECT().
		TryGetUserByEmail(gomock.Any(), mmodel.EmailAddress("taken@example.com")).
		Return(&mmodel.User{Email: "taken@example.com"}, nil).
		Times(1)

	_, err := uc.CreateUser(context.Background(), &mmodel.CreateUserInput{
		Email:    "taken@example.com",
		Password: "str0ng-pass",
	})
	require.Error(t, err)
	assert.IsType(t, pkg.EntityConflictError{}, err)
}

func TestCreateUserValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, _, _ := newUserUseCase(ctrl)

	userRepo.EXPECT().TryGetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := uc.CreateUser(context.Background(), &mmodel.CreateUserInput{
		Email: "not-an-email", Password: "str0ng-pass",
	})
	require.Error(t, err)
	assert.IsType(t, pkg.ValidationError{}, err)

	_, err = uc.CreateUser(context.Background(), &mmodel.CreateUserInput{
		Email: "ok@example.com", Password: "weak",
	})
	require.Error(t, err)
	assert.IsType(t, pkg.ValidationError{}, err)
}

func TestConfirmEmailAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, tokenRepo, _ := newUserUseCase(ctrl)

	ctx := context.Background()

	emailNonce := mmodel.NewEmailNonce("new@example.com")
	encoded := emailNonce.EncodeToString()

	tokenRepo.EXPECT().
		ConsumeUserToken(gomock.Any(), emailNonce).
		Return(&mmodel.UserToken{EmailNonce: emailNonce}, nil).
		Times(1)

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), mmodel.EmailAddress("new@example.com")).
		Return(&mmodel.User{Email: "new@example.com"}, nil).
		Times(1)

	userRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *mmodel.User) error {
			assert.True(t, u.EmailConfirmed)
			return nil
		}).
		Times(1)

	confirmed, err := uc.ConfirmEmailAddress(ctx, encoded)
	require.NoError(t, err)
	assert.True(t, confirmed.EmailConfirmed)
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, _, _ := newUserUseCase(ctrl)

	ctx := context.Background()

	hash, err := mmodel.NewPassword("str0ng-pass")
	require.NoError(t, err)

	account := &mmodel.User{
		Email:          "who@example.com",
		EmailConfirmed: true,
		Password:       hash,
		Role:           mmodel.RoleUser,
	}

	userRepo.EXPECT().
		GetUserByEmail(gomock.Any(), mmodel.EmailAddress("who@example.com")).
		Return(account, nil).
		AnyTimes()

	t.Run("success", func(t *testing.T) {
		got, err := uc.Login(ctx, &mmodel.LoginInput{Email: "who@example.com", Password: "str0ng-pass"})
		require.NoError(t, err)
		assert.Equal(t, account.Email, got.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := uc.Login(ctx, &mmodel.LoginInput{Email: "who@example.com", Password: "nope-nope"})
		require.Error(t, err)
		assert.IsType(t, pkg.UnauthorizedError{}, err)
	})

	t.Run("unconfirmed email", func(t *testing.T) {
		unconfirmed := *account
		unconfirmed.EmailConfirmed = false

		userRepo.EXPECT().
			GetUserByEmail(gomock.Any(), mmodel.EmailAddress("fresh@example.com")).
			Return(&unconfirmed, nil).
			Times(1)

		_, err := uc.Login(ctx, &mmodel.LoginInput{Email: "fresh@example.com", Password: "str0ng-pass"})
		require.Error(t, err)
		assert.IsType(t, pkg.UnauthorizedError{}, err)
	})
}

func TestResetPasswordFlow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc, userRepo, tokenRepo, notifications := newUserUseCase(ctrl)

	ctx := context.Background()

	account := &mmodel.User{Email: "who@example.com", EmailConfirmed: true}

	userRepo.EXPECT().GetUserByEmail(gomock.Any(), mmodel.EmailAddress("who@example.com")).Return(account, nil).AnyTimes()

	var issued mmodel.EmailNonce

	tokenRepo.EXPECT().
		ReplaceUserToken(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ut *mmodel.UserToken) (mmodel.EmailNonce, error) {
			issued = ut.EmailNonce
			return ut.EmailNonce, nil
		}).
		Times(1)

	notifications.EXPECT().UserResetPasswordRequested(gomock.Any(), gomock.Any()).Times(1)

	require.NoError(t, uc.RequestPasswordReset(ctx, "who@example.com"))

	tokenRepo.EXPECT().
		ConsumeUserToken(gomock.Any(), issued).
		Return(&mmodel.UserToken{EmailNonce: issued}, nil).
		Times(1)

	userRepo.EXPECT().
		UpdateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *mmodel.User) error {
			assert.True(t, mmodel.VerifyPassword(u.Password, "new-str0ng-pass"))
			return nil
		}).
		Times(1)

	require.NoError(t, uc.ResetPassword(ctx, issued.EncodeToString(), "new-str0ng-pass"))
}
