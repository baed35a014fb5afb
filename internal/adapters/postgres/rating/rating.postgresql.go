package rating

import (
	"context"
	"database/sql"
	"errors"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
)

// RatingPostgreSQLRepository is a Postgresql-specific implementation of the rating Repository.
type RatingPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewRatingPostgreSQLRepository returns a new instance of RatingPostgreSQLRepository using the given Postgres connection.
func NewRatingPostgreSQLRepository(pc *mpostgres.PostgresConnection) *RatingPostgreSQLRepository {
	r := &RatingPostgreSQLRepository{
		connection: pc,
		tableName:  "place_rating",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

const ratingColumns = `id, place_id, created_at, archived_at, archived_by, title, value, context, source`

func scanRating(row interface{ Scan(dest ...any) error }) (*RatingPostgreSQLModel, error) {
	record := &RatingPostgreSQLModel{}

	err := row.Scan(
		&record.ID,
		&record.PlaceID,
		&record.CreatedAt,
		&record.ArchivedAt,
		&record.ArchivedBy,
		&record.Title,
		&record.Value,
		&record.Context,
		&record.Source,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// CreateRating persists a new rating.
func (r *RatingPostgreSQLRepository) CreateRating(ctx context.Context, rating *mmodel.Rating) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_rating")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &RatingPostgreSQLModel{}
	record.FromEntity(rating)

	_, err = db.ExecContext(ctx, `INSERT INTO place_rating
		(id, place_id, created_at, archived_at, archived_by, title, value, context, source)
		VALUES ($1, $2, $3, $4, NULL, $5, $6, $7, $8)`,
		record.ID, record.PlaceID, record.CreatedAt, record.ArchivedAt,
		record.Title, record.Value, record.Context, record.Source,
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert rating", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.Rating{}).Name())
	}

	return nil
}

// CreateRatingWithComment persists a new rating together with its initial
// comment in a single transaction. Either both rows become visible or none.
func (r *RatingPostgreSQLRepository) CreateRatingWithComment(ctx context.Context, rating *mmodel.Rating, comment *mmodel.Comment) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_rating_with_comment")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &RatingPostgreSQLModel{}
	record.FromEntity(rating)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to begin transaction", err)

		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `INSERT INTO place_rating
		(id, place_id, created_at, archived_at, archived_by, title, value, context, source)
		VALUES ($1, $2, $3, NULL, NULL, $4, $5, $6, $7)`,
		record.ID, record.PlaceID, record.CreatedAt,
		record.Title, record.Value, record.Context, record.Source,
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert rating", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.Rating{}).Name())
	}

	var createdBy sql.NullString
	if comment.CreatedBy != nil {
		createdBy = sql.NullString{String: comment.CreatedBy.String(), Valid: true}
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO place_rating_comment
		(id, rating_id, created_at, archived_at, created_by, archived_by, text)
		VALUES ($1, $2, $3, NULL, $4, NULL, $5)`,
		comment.ID.String(), record.ID, mmodel.TimestampMillis(comment.CreatedAt), createdBy, comment.Text,
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert comment", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.Comment{}).Name())
	}

	return tx.Commit()
}

// LoadRating retrieves a non-archived rating by id.
func (r *RatingPostgreSQLRepository) LoadRating(ctx context.Context, id mmodel.ID) (*mmodel.Rating, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.load_rating")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+ratingColumns+` FROM place_rating
		WHERE id = $1 AND archived_at IS NULL`, id.String())

	record, err := scanRating(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		mopentelemetry.HandleSpanError(&span, "Failed to load rating", err)

		return nil, err
	}

	return record.ToEntity(), nil
}

// LoadRatings retrieves the non-archived ratings among the given ids.
func (r *RatingPostgreSQLRepository) LoadRatings(ctx context.Context, ids []mmodel.ID) ([]*mmodel.Rating, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.load_ratings")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	query, args, err := squirrel.Select(ratingColumns).
		From(r.tableName).
		Where(squirrel.Eq{"id": idStrings(ids)}).
		Where("archived_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryRatings(ctx, db, query, args...)
}

// LoadRatingsOfPlace retrieves the non-archived ratings of a place.
func (r *RatingPostgreSQLRepository) LoadRatingsOfPlace(ctx context.Context, placeID mmodel.ID) ([]*mmodel.Rating, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.load_ratings_of_place")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	return r.queryRatings(ctx, db, `SELECT `+ratingColumns+` FROM place_rating
		WHERE place_id = $1 AND archived_at IS NULL ORDER BY created_at ASC`, placeID.String())
}

// ArchiveRatings stamps archived_at on the given ratings. Already-archived
// rows keep their timestamps; returns the number of rows touched.
func (r *RatingPostgreSQLRepository) ArchiveRatings(ctx context.Context, ids []mmodel.ID, activity mmodel.Activity) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_ratings")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	archivedAt, archivedBy := archiveStamp(activity)

	query, args, err := squirrel.Update(r.tableName).
		Set("archived_at", archivedAt).
		Set("archived_by", archivedBy).
		Where(squirrel.Eq{"id": idStrings(ids)}).
		Where("archived_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive ratings", err)

		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return uint64(rowsAffected), nil
}

// ArchiveRatingsOfPlaces archives all non-archived ratings of the given places.
func (r *RatingPostgreSQLRepository) ArchiveRatingsOfPlaces(ctx context.Context, placeIDs []mmodel.ID, activity mmodel.Activity) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_ratings_of_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	archivedAt, archivedBy := archiveStamp(activity)

	query, args, err := squirrel.Update(r.tableName).
		Set("archived_at", archivedAt).
		Set("archived_by", archivedBy).
		Where(squirrel.Eq{"place_id": idStrings(placeIDs)}).
		Where("archived_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive ratings of places", err)

		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return uint64(rowsAffected), nil
}

// ArchiveRatingsWithComments archives the given ratings and the comments
// attached to them in a single transaction, with the same activity stamp.
// Returns the number of ratings touched.
func (r *RatingPostgreSQLRepository) ArchiveRatingsWithComments(ctx context.Context, ids []mmodel.ID, activity mmodel.Activity) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_ratings_with_comments")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	archivedAt, archivedBy := archiveStamp(activity)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to begin transaction", err)

		return 0, err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, `UPDATE place_rating SET archived_at = $1, archived_by = $2
		WHERE id = ANY($3) AND archived_at IS NULL`,
		archivedAt, archivedBy, pq.Array(idStrings(ids)))
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive ratings", err)

		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx, `UPDATE place_rating_comment SET archived_at = $1, archived_by = $2
		WHERE rating_id = ANY($3) AND archived_at IS NULL`,
		archivedAt, archivedBy, pq.Array(idStrings(ids)))
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive comments", err)

		return 0, err
	}

	if err := tx.Commit(); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to commit transaction", err)

		return 0, err
	}

	return uint64(rowsAffected), nil
}

// ArchiveRatingsOfPlacesWithComments archives all non-archived ratings of
// the given places together with their comments in a single transaction,
// with the same activity stamp. Returns the number of ratings touched.
func (r *RatingPostgreSQLRepository) ArchiveRatingsOfPlacesWithComments(ctx context.Context, placeIDs []mmodel.ID, activity mmodel.Activity) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_ratings_of_places_with_comments")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	archivedAt, archivedBy := archiveStamp(activity)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to begin transaction", err)

		return 0, err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	// Comments are stamped before their ratings lose the archived_at = NULL
	// filter.
	_, err = tx.ExecContext(ctx, `UPDATE place_rating_comment SET archived_at = $1, archived_by = $2
		WHERE rating_id IN (SELECT id FROM place_rating WHERE place_id = ANY($3) AND archived_at IS NULL)
		AND archived_at IS NULL`,
		archivedAt, archivedBy, pq.Array(idStrings(placeIDs)))
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive comments", err)

		return 0, err
	}

	result, err := tx.ExecContext(ctx, `UPDATE place_rating SET archived_at = $1, archived_by = $2
		WHERE place_id = ANY($3) AND archived_at IS NULL`,
		archivedAt, archivedBy, pq.Array(idStrings(placeIDs)))
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive ratings", err)

		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to commit transaction", err)

		return 0, err
	}

	return uint64(rowsAffected), nil
}

// LoadPlaceIDsOfRatings resolves the distinct place ids the given ratings
// belong to, regardless of archival.
func (r *RatingPostgreSQLRepository) LoadPlaceIDsOfRatings(ctx context.Context, ids []mmodel.ID) ([]mmodel.ID, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.load_place_ids_of_ratings")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	query, args, err := squirrel.Select("DISTINCT place_id").
		From(r.tableName).
		Where(squirrel.Eq{"id": idStrings(ids)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var placeIDs []mmodel.ID

	for rows.Next() {
		var id string

		if err := rows.Scan(&id); err != nil {
			return nil, err
		}

		placeIDs = append(placeIDs, mmodel.ID(id))
	}

	return placeIDs, rows.Err()
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *RatingPostgreSQLRepository) queryRatings(ctx context.Context, db querier, query string, args ...any) ([]*mmodel.Rating, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ratings := []*mmodel.Rating{}

	for rows.Next() {
		record, err := scanRating(rows)
		if err != nil {
			return nil, err
		}

		ratings = append(ratings, record.ToEntity())
	}

	return ratings, rows.Err()
}

func idStrings(ids []mmodel.ID) []string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = id.String()
	}

	return s
}
