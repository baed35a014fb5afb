package user

import (
	"context"
	"database/sql"
	"errors"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
)

// UserPostgreSQLRepository is a Postgresql-specific implementation of the user Repository.
type UserPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewUserPostgreSQLRepository returns a new instance of UserPostgreSQLRepository using the given Postgres connection.
func NewUserPostgreSQLRepository(pc *mpostgres.PostgresConnection) *UserPostgreSQLRepository {
	r := &UserPostgreSQLRepository{
		connection: pc,
		tableName:  "users",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

// CreateUser persists a new user. A duplicate email fails with a conflict.
func (r *UserPostgreSQLRepository) CreateUser(ctx context.Context, user *mmodel.User) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_user")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &UserPostgreSQLModel{}
	record.FromEntity(user)

	_, err = db.ExecContext(ctx, `INSERT INTO users (email, email_confirmed, password, role)
		VALUES ($1, $2, $3, $4)`,
		record.Email, record.EmailConfirmed, record.Password, record.Role)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert user", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.User{}).Name())
	}

	return nil
}

// UpdateUser replaces the stored user row.
func (r *UserPostgreSQLRepository) UpdateUser(ctx context.Context, user *mmodel.User) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.update_user")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &UserPostgreSQLModel{}
	record.FromEntity(user)

	result, err := db.ExecContext(ctx, `UPDATE users SET email_confirmed = $2, password = $3, role = $4
		WHERE email = $1`,
		record.Email, record.EmailConfirmed, record.Password, record.Role)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to update user", err)

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return services.ErrDatabaseItemNotFound
	}

	return nil
}

// DeleteUserByEmail removes a user.
func (r *UserPostgreSQLRepository) DeleteUserByEmail(ctx context.Context, email mmodel.EmailAddress) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.delete_user_by_email")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM users WHERE email = $1`, email.String())
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete user", err)

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return services.ErrDatabaseItemNotFound
	}

	return nil
}

// GetUserByEmail retrieves a user, failing when it does not exist.
func (r *UserPostgreSQLRepository) GetUserByEmail(ctx context.Context, email mmodel.EmailAddress) (*mmodel.User, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.get_user_by_email")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	record := &UserPostgreSQLModel{}

	err = db.QueryRowContext(ctx, `SELECT email, email_confirmed, password, role FROM users WHERE email = $1`,
		email.String()).
		Scan(&record.Email, &record.EmailConfirmed, &record.Password, &record.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		mopentelemetry.HandleSpanError(&span, "Failed to get user", err)

		return nil, err
	}

	return record.ToEntity(), nil
}

// TryGetUserByEmail retrieves a user or nil when it does not exist.
func (r *UserPostgreSQLRepository) TryGetUserByEmail(ctx context.Context, email mmodel.EmailAddress) (*mmodel.User, error) {
	user, err := r.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, services.ErrDatabaseItemNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return user, nil
}

// AllUsers lists every user.
func (r *UserPostgreSQLRepository) AllUsers(ctx context.Context) ([]*mmodel.User, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.all_users")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT email, email_confirmed, password, role FROM users ORDER BY email ASC`)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query users", err)

		return nil, err
	}
	defer rows.Close()

	users := []*mmodel.User{}

	for rows.Next() {
		record := &UserPostgreSQLModel{}

		if err := rows.Scan(&record.Email, &record.EmailConfirmed, &record.Password, &record.Role); err != nil {
			return nil, err
		}

		users = append(users, record.ToEntity())
	}

	return users, rows.Err()
}

// CountUsers counts the registered users.
func (r *UserPostgreSQLRepository) CountUsers(ctx context.Context) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.count_users")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	var count uint64

	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
