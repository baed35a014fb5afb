package comment

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

// CommentPostgreSQLRepository is a Postgresql-specific implementation of the comment Repository.
type CommentPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewCommentPostgreSQLRepository returns a new instance of CommentPostgreSQLRepository using the given Postgres connection.
func NewCommentPostgreSQLRepository(pc *mpostgres.PostgresConnection) *CommentPostgreSQLRepository {
	r := &CommentPostgreSQLRepository{
		connection: pc,
		tableName:  "place_rating_comment",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

const commentColumns = `id, rating_id, created_at, archived_at, created_by, archived_by, text`

func scanComment(row interface{ Scan(dest ...any) error }) (*CommentPostgreSQLModel, error) {
	record := &CommentPostgreSQLModel{}

	err := row.Scan(
		&record.ID,
		&record.RatingID,
		&record.CreatedAt,
		&record.ArchivedAt,
		&record.CreatedBy,
		&record.ArchivedBy,
		&record.Text,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// CreateComment persists a new comment.
func (r *CommentPostgreSQLRepository) CreateComment(ctx context.Context, comment *mmodel.Comment) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_comment")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &CommentPostgreSQLModel{}
	record.FromEntity(comment)

	_, err = db.ExecContext(ctx, `INSERT INTO place_rating_comment
		(id, rating_id, created_at, archived_at, created_by, archived_by, text)
		VALUES ($1, $2, $3, $4, $5, NULL, $6)`,
		record.ID, record.RatingID, record.CreatedAt, record.ArchivedAt, record.CreatedBy, record.Text,
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert comment", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.Comment{}).Name())
	}

	return nil
}

// LoadComment retrieves a non-archived comment by id.
func (r *CommentPostgreSQLRepository) LoadComment(ctx context.Context, id mmodel.ID) (*mmodel.Comment, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.load_comment")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+commentColumns+` FROM place_rating_comment
		WHERE id = $1 AND archived_at IS NULL`, id.String())

	record, err := scanComment(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		mopentelemetry.HandleSpanError(&span, "Failed to load comment", err)

		return nil, err
	}

	return record.ToEntity(), nil
}

// LoadComments retrieves the non-archived comments among the given ids.
func (r *CommentPostgreSQLRepository) LoadComments(ctx context.Context, ids []mmodel.ID) ([]*mmodel.Comment, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.load_comments")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	query, args, err := squirrel.Select(commentColumns).
		From(r.tableName).
		Where(squirrel.Eq{"id": idStrings(ids)}).
		Where("archived_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryComments(ctx, db, query, args...)
}

// LoadCommentsOfRating retrieves the non-archived comments of a rating.
func (r *CommentPostgreSQLRepository) LoadCommentsOfRating(ctx context.Context, ratingID mmodel.ID) ([]*mmodel.Comment, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.load_comments_of_rating")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	return r.queryComments(ctx, db, `SELECT `+commentColumns+` FROM place_rating_comment
		WHERE rating_id = $1 AND archived_at IS NULL ORDER BY created_at ASC`, ratingID.String())
}

// ArchiveComments stamps archived_at on the given comments. Already-archived
// rows keep their timestamps; returns the number of rows touched.
func (r *CommentPostgreSQLRepository) ArchiveComments(ctx context.Context, ids []mmodel.ID, activity mmodel.Activity) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_comments")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	query, args, err := r.archiveBuilder(activity).
		Where(squirrel.Eq{"id": idStrings(ids)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.execArchive(ctx, db, query, args)
}

// ArchiveCommentsOfRatings archives all non-archived comments of the given ratings.
func (r *CommentPostgreSQLRepository) ArchiveCommentsOfRatings(ctx context.Context, ratingIDs []mmodel.ID, activity mmodel.Activity) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_comments_of_ratings")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	query, args, err := r.archiveBuilder(activity).
		Where(squirrel.Eq{"rating_id": idStrings(ratingIDs)}).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.execArchive(ctx, db, query, args)
}

// ArchiveCommentsOfPlaces archives all non-archived comments whose rating
// belongs to one of the given places.
func (r *CommentPostgreSQLRepository) ArchiveCommentsOfPlaces(ctx context.Context, placeIDs []mmodel.ID, activity mmodel.Activity) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_comments_of_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	query, args, err := r.archiveBuilder(activity).
		Where(squirrel.Expr(`rating_id IN (SELECT id FROM place_rating WHERE place_id = ANY(?))`,
			placeIDArray(placeIDs))).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.execArchive(ctx, db, query, args)
}

func (r *CommentPostgreSQLRepository) archiveBuilder(activity mmodel.Activity) squirrel.UpdateBuilder {
	archivedAt := mmodel.TimestampMillis(activity.At)

	var archivedBy sql.NullString
	if activity.By != nil {
		archivedBy = sql.NullString{String: activity.By.String(), Valid: true}
	}

	return squirrel.Update(r.tableName).
		Set("archived_at", archivedAt).
		Set("archived_by", archivedBy).
		Where("archived_at IS NULL").
		PlaceholderFormat(squirrel.Dollar)
}

type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *CommentPostgreSQLRepository) execArchive(ctx context.Context, db executor, query string, args []any) (uint64, error) {
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
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

func (r *CommentPostgreSQLRepository) queryComments(ctx context.Context, db querier, query string, args ...any) ([]*mmodel.Comment, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []*mmodel.Comment{}

	for rows.Next() {
		record, err := scanComment(rows)
		if err != nil {
			return nil, err
		}

		comments = append(comments, record.ToEntity())
	}

	return comments, rows.Err()
}

func placeIDArray(ids []mmodel.ID) any {
	return pq.Array(idStrings(ids))
}

func idStrings(ids []mmodel.ID) []string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = id.String()
	}

	return s
}
