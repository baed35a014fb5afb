package clearance

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// ClearancePostgreSQLRepository is a Postgresql-specific implementation of the clearance Repository.
type ClearancePostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewClearancePostgreSQLRepository returns a new instance of ClearancePostgreSQLRepository using the given Postgres connection.
func NewClearancePostgreSQLRepository(pc *mpostgres.PostgresConnection) *ClearancePostgreSQLRepository {
	r := &ClearancePostgreSQLRepository{
		connection: pc,
		tableName:  "organization_place_clearance",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

// AddPendingClearanceForPlaces upserts one pending clearance row per
// organization. Existing rows are left untouched. Returns the number of rows
// inserted.
func (r *ClearancePostgreSQLRepository) AddPendingClearanceForPlaces(ctx context.Context, orgIDs []mmodel.ID, pending *mmodel.PendingClearanceForPlace) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.add_pending_clearance_for_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	createdAt := mmodel.TimestampMillis(pending.CreatedAt)

	var lastCleared sql.NullInt64
	if pending.LastClearedRevision != nil {
		lastCleared = sql.NullInt64{Int64: int64(*pending.LastClearedRevision), Valid: true}
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	var inserted uint64

	for _, orgID := range orgIDs {
		result, err := tx.ExecContext(ctx, `INSERT INTO organization_place_clearance
			(org_id, place_id, created_at, last_cleared_revision)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (org_id, place_id) DO NOTHING`,
			orgID.String(), pending.PlaceID.String(), createdAt, lastCleared)
		if err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to upsert pending clearance", err)

			return 0, err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}

		inserted += uint64(rowsAffected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return inserted, nil
}

// CountPendingClearancesForPlaces counts the pending rows of an organization.
func (r *ClearancePostgreSQLRepository) CountPendingClearancesForPlaces(ctx context.Context, orgID mmodel.ID) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.count_pending_clearances_for_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	var count uint64

	err = db.QueryRowContext(ctx, `SELECT count(*) FROM organization_place_clearance WHERE org_id = $1`,
		orgID.String()).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// ListPendingClearancesForPlaces pages through the pending rows of an
// organization, oldest first.
func (r *ClearancePostgreSQLRepository) ListPendingClearancesForPlaces(ctx context.Context, orgID mmodel.ID, pagination http.Pagination) ([]*mmodel.PendingClearanceForPlace, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.list_pending_clearances_for_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	limit := pagination.Limit
	if limit == 0 {
		limit = 100
	}

	rows, err := db.QueryContext(ctx, `SELECT org_id, place_id, created_at, last_cleared_revision
		FROM organization_place_clearance WHERE org_id = $1
		ORDER BY created_at ASC LIMIT $2 OFFSET $3`,
		orgID.String(), limit, pagination.Offset)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query pending clearances", err)

		return nil, err
	}
	defer rows.Close()

	pendings := []*mmodel.PendingClearanceForPlace{}

	for rows.Next() {
		record := &PendingClearancePostgreSQLModel{}

		if err := rows.Scan(&record.OrgID, &record.PlaceID, &record.CreatedAt, &record.LastClearedRevision); err != nil {
			return nil, err
		}

		pendings = append(pendings, record.ToEntity())
	}

	return pendings, rows.Err()
}

// UpdatePendingClearancesForPlaces stamps last_cleared_revision per place:
// either the given revision, which must exist for the place, or the place's
// current revision. Returns the number of rows updated.
func (r *ClearancePostgreSQLRepository) UpdatePendingClearancesForPlaces(ctx context.Context, orgID mmodel.ID, clearances []mmodel.ClearanceForPlace) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.update_pending_clearances_for_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	var updated uint64

	for _, clearance := range clearances {
		var clearedRevision int64

		if clearance.ClearedRevision != nil {
			clearedRevision = int64(*clearance.ClearedRevision)

			var exists bool

			err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM place_revision
				WHERE place_id = $1 AND rev = $2)`,
				clearance.PlaceID.String(), clearedRevision).Scan(&exists)
			if err != nil {
				return 0, err
			}

			if !exists {
				return 0, services.ErrDatabaseItemNotFound
			}
		} else {
			err := tx.QueryRowContext(ctx, `SELECT current_rev FROM place WHERE id = $1`,
				clearance.PlaceID.String()).Scan(&clearedRevision)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return 0, services.ErrDatabaseItemNotFound
				}

				return 0, err
			}
		}

		result, err := tx.ExecContext(ctx, `UPDATE organization_place_clearance
			SET last_cleared_revision = $3 WHERE org_id = $1 AND place_id = $2`,
			orgID.String(), clearance.PlaceID.String(), clearedRevision)
		if err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to update pending clearance", err)

			return 0, err
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}

		updated += uint64(rowsAffected)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	return updated, nil
}

// CleanupPendingClearancesForPlaces deletes the rows whose
// last_cleared_revision equals the place's current revision.
func (r *ClearancePostgreSQLRepository) CleanupPendingClearancesForPlaces(ctx context.Context, orgID mmodel.ID) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.cleanup_pending_clearances_for_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM organization_place_clearance c
		USING place p
		WHERE c.org_id = $1 AND p.id = c.place_id AND c.last_cleared_revision = p.current_rev`,
		orgID.String())
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to cleanup pending clearances", err)

		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return uint64(rowsAffected), nil
}
