package tag

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
)

// TagPostgreSQLRepository is a Postgresql-specific implementation of the tag Repository.
type TagPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewTagPostgreSQLRepository returns a new instance of TagPostgreSQLRepository using the given Postgres connection.
func NewTagPostgreSQLRepository(pc *mpostgres.PostgresConnection) *TagPostgreSQLRepository {
	r := &TagPostgreSQLRepository{
		connection: pc,
		tableName:  "tags",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

// CreateTagIfItDoesNotExist registers a tag. The operation is idempotent.
func (r *TagPostgreSQLRepository) CreateTagIfItDoesNotExist(ctx context.Context, tag string) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_tag_if_it_does_not_exist")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	_, err = db.ExecContext(ctx, `INSERT INTO tags (id) VALUES ($1) ON CONFLICT (id) DO NOTHING`, tag)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert tag", err)

		return err
	}

	return nil
}

// AllTags lists every registered tag.
func (r *TagPostgreSQLRepository) AllTags(ctx context.Context) ([]*mmodel.Tag, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.all_tags")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT id FROM tags ORDER BY id ASC`)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query tags", err)

		return nil, err
	}
	defer rows.Close()

	tags := []*mmodel.Tag{}

	for rows.Next() {
		var label string

		if err := rows.Scan(&label); err != nil {
			return nil, err
		}

		tags = append(tags, &mmodel.Tag{Label: label})
	}

	return tags, rows.Err()
}

// CountTags counts the registered tags.
func (r *TagPostgreSQLRepository) CountTags(ctx context.Context) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.count_tags")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	var count uint64

	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM tags`).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}
