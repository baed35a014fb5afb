package subscription

import (
	"context"
	"database/sql"
	"reflect"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
)

// SubscriptionPostgreSQLRepository is a Postgresql-specific implementation of the subscription Repository.
type SubscriptionPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewSubscriptionPostgreSQLRepository returns a new instance of SubscriptionPostgreSQLRepository using the given Postgres connection.
func NewSubscriptionPostgreSQLRepository(pc *mpostgres.PostgresConnection) *SubscriptionPostgreSQLRepository {
	r := &SubscriptionPostgreSQLRepository{
		connection: pc,
		tableName:  "bbox_subscriptions",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

// CreateBboxSubscription persists a new subscription.
func (r *SubscriptionPostgreSQLRepository) CreateBboxSubscription(ctx context.Context, sub *mmodel.BboxSubscription) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_bbox_subscription")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &BboxSubscriptionPostgreSQLModel{}
	record.FromEntity(sub)

	_, err = db.ExecContext(ctx, `INSERT INTO bbox_subscriptions
		(id, user_email, south_west_lat, south_west_lng, north_east_lat, north_east_lng)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		record.ID, record.UserEmail,
		record.SouthWestLat, record.SouthWestLng, record.NorthEastLat, record.NorthEastLng)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert subscription", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.BboxSubscription{}).Name())
	}

	return nil
}

const subscriptionColumns = `id, user_email, south_west_lat, south_west_lng, north_east_lat, north_east_lng`

// AllBboxSubscriptions lists every subscription.
func (r *SubscriptionPostgreSQLRepository) AllBboxSubscriptions(ctx context.Context) ([]*mmodel.BboxSubscription, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.all_bbox_subscriptions")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	return r.querySubscriptions(ctx, db, `SELECT `+subscriptionColumns+` FROM bbox_subscriptions`)
}

// BboxSubscriptionsByEmail lists the subscriptions of a user.
func (r *SubscriptionPostgreSQLRepository) BboxSubscriptionsByEmail(ctx context.Context, email mmodel.EmailAddress) ([]*mmodel.BboxSubscription, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.bbox_subscriptions_by_email")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	return r.querySubscriptions(ctx, db,
		`SELECT `+subscriptionColumns+` FROM bbox_subscriptions WHERE user_email = $1`, email.String())
}

// DeleteBboxSubscriptionsByEmail removes all subscriptions of a user.
func (r *SubscriptionPostgreSQLRepository) DeleteBboxSubscriptionsByEmail(ctx context.Context, email mmodel.EmailAddress) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.delete_bbox_subscriptions_by_email")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM bbox_subscriptions WHERE user_email = $1`, email.String())
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete subscriptions", err)

		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return uint64(rowsAffected), nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *SubscriptionPostgreSQLRepository) querySubscriptions(ctx context.Context, db querier, query string, args ...any) ([]*mmodel.BboxSubscription, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*mmodel.BboxSubscription{}

	for rows.Next() {
		record := &BboxSubscriptionPostgreSQLModel{}

		if err := rows.Scan(&record.ID, &record.UserEmail,
			&record.SouthWestLat, &record.SouthWestLng, &record.NorthEastLat, &record.NorthEastLng); err != nil {
			return nil, err
		}

		subs = append(subs, record.ToEntity())
	}

	return subs, rows.Err()
}
