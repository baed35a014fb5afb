package token

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"time"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
)

// TokenPostgreSQLRepository is a Postgresql-specific implementation of the token Repository.
type TokenPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewTokenPostgreSQLRepository returns a new instance of TokenPostgreSQLRepository using the given Postgres connection.
func NewTokenPostgreSQLRepository(pc *mpostgres.PostgresConnection) *TokenPostgreSQLRepository {
	r := &TokenPostgreSQLRepository{
		connection: pc,
		tableName:  "user_tokens",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

// ReplaceUserToken atomically removes any existing token of the user and
// inserts the new one, returning the resulting EmailNonce.
func (r *TokenPostgreSQLRepository) ReplaceUserToken(ctx context.Context, userToken *mmodel.UserToken) (mmodel.EmailNonce, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.replace_user_token")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return mmodel.EmailNonce{}, err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return mmodel.EmailNonce{}, err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	email := userToken.EmailNonce.Email.String()

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_tokens WHERE user_email = $1`, email); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete previous token", err)

		return mmodel.EmailNonce{}, err
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO user_tokens (user_email, nonce, expires_at) VALUES ($1, $2, $3)`,
		email, userToken.EmailNonce.Nonce.String(), mmodel.TimestampMillis(userToken.ExpiresAt))
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert token", err)

		return mmodel.EmailNonce{}, services.HandlePGError(err, reflect.TypeOf(mmodel.UserToken{}).Name())
	}

	if err := tx.Commit(); err != nil {
		return mmodel.EmailNonce{}, err
	}

	return userToken.EmailNonce, nil
}

// ConsumeUserToken verifies that the nonce matches the stored one and has not
// expired, and deletes the token on success. A token can be consumed at most
// once.
func (r *TokenPostgreSQLRepository) ConsumeUserToken(ctx context.Context, emailNonce mmodel.EmailNonce) (*mmodel.UserToken, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.consume_user_token")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	record := &UserTokenPostgreSQLModel{}

	err = tx.QueryRowContext(ctx, `SELECT user_email, nonce, expires_at FROM user_tokens
		WHERE user_email = $1 FOR UPDATE`, emailNonce.Email.String()).
		Scan(&record.UserEmail, &record.Nonce, &record.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pkg.ValidateBusinessError(constant.ErrTokenInvalid, reflect.TypeOf(mmodel.UserToken{}).Name())
		}

		return nil, err
	}

	if record.Nonce != emailNonce.Nonce.String() {
		return nil, pkg.ValidateBusinessError(constant.ErrTokenInvalid, reflect.TypeOf(mmodel.UserToken{}).Name())
	}

	userToken := record.ToEntity()

	if userToken.IsExpired(time.Now().UTC()) {
		return nil, pkg.ValidateBusinessError(constant.ErrTokenExpired, reflect.TypeOf(mmodel.UserToken{}).Name())
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM user_tokens WHERE user_email = $1`,
		emailNonce.Email.String()); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return userToken, nil
}

// DeleteExpiredUserTokens removes every token that expired before the given
// instant.
func (r *TokenPostgreSQLRepository) DeleteExpiredUserTokens(ctx context.Context, expiredBefore time.Time) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.delete_expired_user_tokens")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM user_tokens WHERE expires_at < $1`,
		mmodel.TimestampMillis(expiredBefore))
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return uint64(rowsAffected), nil
}

// GetUserTokenByEmail retrieves the stored token of a user.
func (r *TokenPostgreSQLRepository) GetUserTokenByEmail(ctx context.Context, email mmodel.EmailAddress) (*mmodel.UserToken, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.get_user_token_by_email")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	record := &UserTokenPostgreSQLModel{}

	err = db.QueryRowContext(ctx, `SELECT user_email, nonce, expires_at FROM user_tokens WHERE user_email = $1`,
		email.String()).
		Scan(&record.UserEmail, &record.Nonce, &record.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		return nil, err
	}

	return record.ToEntity(), nil
}

// AddReviewToken stores a one-shot review token for a place revision.
func (r *TokenPostgreSQLRepository) AddReviewToken(ctx context.Context, reviewToken *mmodel.ReviewToken) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.add_review_token")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	_, err = db.ExecContext(ctx, `INSERT INTO review_tokens (place_id, revision, nonce, expires_at)
		VALUES ($1, $2, $3, $4)`,
		reviewToken.PlaceID.String(), int64(reviewToken.Revision),
		reviewToken.Nonce.String(), mmodel.TimestampMillis(reviewToken.ExpiresAt))
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert review token", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.ReviewToken{}).Name())
	}

	return nil
}

// ConsumeReviewToken verifies and deletes a review token by nonce.
func (r *TokenPostgreSQLRepository) ConsumeReviewToken(ctx context.Context, nonce mmodel.Nonce) (*mmodel.ReviewToken, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.consume_review_token")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	record := &ReviewTokenPostgreSQLModel{}

	err = tx.QueryRowContext(ctx, `SELECT place_id, revision, nonce, expires_at FROM review_tokens
		WHERE nonce = $1 FOR UPDATE`, nonce.String()).
		Scan(&record.PlaceID, &record.Revision, &record.Nonce, &record.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pkg.ValidateBusinessError(constant.ErrTokenInvalid, reflect.TypeOf(mmodel.ReviewToken{}).Name())
		}

		return nil, err
	}

	reviewToken := record.ToEntity()

	if reviewToken.IsExpired(time.Now().UTC()) {
		return nil, pkg.ValidateBusinessError(constant.ErrTokenExpired, reflect.TypeOf(mmodel.ReviewToken{}).Name())
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM review_tokens WHERE nonce = $1`, nonce.String()); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return reviewToken, nil
}

// DeleteExpiredReviewTokens removes every review token that expired before
// the given instant.
func (r *TokenPostgreSQLRepository) DeleteExpiredReviewTokens(ctx context.Context, expiredBefore time.Time) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.delete_expired_review_tokens")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM review_tokens WHERE expires_at < $1`,
		mmodel.TimestampMillis(expiredBefore))
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return uint64(rowsAffected), nil
}
