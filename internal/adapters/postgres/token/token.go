package token

import (
	"context"
	"time"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// Repository provides an interface for operations related to user and review
// tokens.
//
//go:generate mockgen --destination=token.mock.go --package=token . Repository
type Repository interface {
	ReplaceUserToken(ctx context.Context, userToken *mmodel.UserToken) (mmodel.EmailNonce, error)
	ConsumeUserToken(ctx context.Context, emailNonce mmodel.EmailNonce) (*mmodel.UserToken, error)
	DeleteExpiredUserTokens(ctx context.Context, expiredBefore time.Time) (uint64, error)
	GetUserTokenByEmail(ctx context.Context, email mmodel.EmailAddress) (*mmodel.UserToken, error)

	AddReviewToken(ctx context.Context, reviewToken *mmodel.ReviewToken) error
	ConsumeReviewToken(ctx context.Context, nonce mmodel.Nonce) (*mmodel.ReviewToken, error)
	DeleteExpiredReviewTokens(ctx context.Context, expiredBefore time.Time) (uint64, error)
}

// UserTokenPostgreSQLModel represents the entity UserToken into SQL context in Database.
type UserTokenPostgreSQLModel struct {
	UserEmail string
	Nonce     string
	ExpiresAt int64
}

// ToEntity converts a UserTokenPostgreSQLModel to an entity mmodel.UserToken.
func (m *UserTokenPostgreSQLModel) ToEntity() *mmodel.UserToken {
	return &mmodel.UserToken{
		EmailNonce: mmodel.EmailNonce{
			Email: mmodel.EmailAddress(m.UserEmail),
			Nonce: mmodel.Nonce(m.Nonce),
		},
		ExpiresAt: mmodel.TimeFromMillis(m.ExpiresAt),
	}
}

// ReviewTokenPostgreSQLModel represents the entity ReviewToken into SQL context in Database.
type ReviewTokenPostgreSQLModel struct {
	PlaceID   string
	Revision  int64
	Nonce     string
	ExpiresAt int64
}

// ToEntity converts a ReviewTokenPostgreSQLModel to an entity mmodel.ReviewToken.
func (m *ReviewTokenPostgreSQLModel) ToEntity() *mmodel.ReviewToken {
	return &mmodel.ReviewToken{
		PlaceID:   mmodel.ID(m.PlaceID),
		Revision:  mmodel.Revision(m.Revision),
		Nonce:     mmodel.Nonce(m.Nonce),
		ExpiresAt: mmodel.TimeFromMillis(m.ExpiresAt),
	}
}
