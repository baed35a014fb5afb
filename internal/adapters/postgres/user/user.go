package user

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// Repository provides an interface for operations related to user entities.
//
//go:generate mockgen --destination=user.mock.go --package=user . Repository
type Repository interface {
	CreateUser(ctx context.Context, user *mmodel.User) error
	UpdateUser(ctx context.Context, user *mmodel.User) error
	DeleteUserByEmail(ctx context.Context, email mmodel.EmailAddress) error
	GetUserByEmail(ctx context.Context, email mmodel.EmailAddress) (*mmodel.User, error)
	TryGetUserByEmail(ctx context.Context, email mmodel.EmailAddress) (*mmodel.User, error)
	AllUsers(ctx context.Context) ([]*mmodel.User, error)
	CountUsers(ctx context.Context) (uint64, error)
}

// UserPostgreSQLModel represents the entity User into SQL context in Database.
type UserPostgreSQLModel struct {
	Email          string
	EmailConfirmed bool
	Password       string
	Role           int16
}

// ToEntity converts a UserPostgreSQLModel to an entity mmodel.User.
func (m *UserPostgreSQLModel) ToEntity() *mmodel.User {
	return &mmodel.User{
		Email:          mmodel.EmailAddress(m.Email),
		EmailConfirmed: m.EmailConfirmed,
		Password:       m.Password,
		Role:           mmodel.Role(m.Role),
	}
}

// FromEntity converts an entity mmodel.User to a UserPostgreSQLModel.
func (m *UserPostgreSQLModel) FromEntity(user *mmodel.User) {
	*m = UserPostgreSQLModel{
		Email:          user.Email.String(),
		EmailConfirmed: user.EmailConfirmed,
		Password:       user.Password,
		Role:           int16(user.Role),
	}
}
