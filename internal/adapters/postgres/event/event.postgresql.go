package event

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
)

// EventPostgreSQLRepository is a Postgresql-specific implementation of the event Repository.
type EventPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewEventPostgreSQLRepository returns a new instance of EventPostgreSQLRepository using the given Postgres connection.
func NewEventPostgreSQLRepository(pc *mpostgres.PostgresConnection) *EventPostgreSQLRepository {
	r := &EventPostgreSQLRepository{
		connection: pc,
		tableName:  "events",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

const eventColumns = `e.id, e.title, e.description, e.start, e.ends, e.lat, e.lon,
	e.street, e.zip, e.city, e.country, e.state,
	e.contact_name, e.email, e.phone, e.homepage, e.organizer, e.registration,
	e.created_by, e.archived, e.image_url, e.image_link_url`

func scanEvent(row interface{ Scan(dest ...any) error }) (*EventPostgreSQLModel, error) {
	record := &EventPostgreSQLModel{}

	err := row.Scan(
		&record.ID,
		&record.Title,
		&record.Description,
		&record.Start,
		&record.End,
		&record.Lat,
		&record.Lon,
		&record.Street,
		&record.Zip,
		&record.City,
		&record.Country,
		&record.State,
		&record.ContactName,
		&record.Email,
		&record.Phone,
		&record.Homepage,
		&record.Organizer,
		&record.Registration,
		&record.CreatedBy,
		&record.Archived,
		&record.ImageURL,
		&record.ImageLinkURL,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// CreateEvent persists a new event and its tags in a single transaction.
func (r *EventPostgreSQLRepository) CreateEvent(ctx context.Context, event *mmodel.Event) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_event")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &EventPostgreSQLModel{}
	record.FromEntity(event)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `INSERT INTO events (id, title, description, start, ends, lat, lon,
		street, zip, city, country, state, contact_name, email, phone, homepage, organizer, registration,
		created_by, archived, image_url, image_link_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		record.ID, record.Title, record.Description, record.Start, record.End, record.Lat, record.Lon,
		record.Street, record.Zip, record.City, record.Country, record.State,
		record.ContactName, record.Email, record.Phone, record.Homepage, record.Organizer, record.Registration,
		record.CreatedBy, record.Archived, record.ImageURL, record.ImageLinkURL,
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert event", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.Event{}).Name())
	}

	if err := replaceEventTags(ctx, tx, record.ID, event.Tags); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert event tags", err)

		return err
	}

	return tx.Commit()
}

// UpdateEvent replaces the full event row and recomputes the tag rows with
// an add/remove diff against the current ones. Last writer wins.
func (r *EventPostgreSQLRepository) UpdateEvent(ctx context.Context, event *mmodel.Event) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.update_event")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &EventPostgreSQLModel{}
	record.FromEntity(event)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx, `UPDATE events SET title = $2, description = $3, start = $4, ends = $5,
		lat = $6, lon = $7, street = $8, zip = $9, city = $10, country = $11, state = $12,
		contact_name = $13, email = $14, phone = $15, homepage = $16, organizer = $17, registration = $18,
		created_by = $19, archived = $20, image_url = $21, image_link_url = $22
		WHERE id = $1`,
		record.ID, record.Title, record.Description, record.Start, record.End, record.Lat, record.Lon,
		record.Street, record.Zip, record.City, record.Country, record.State,
		record.ContactName, record.Email, record.Phone, record.Homepage, record.Organizer, record.Registration,
		record.CreatedBy, record.Archived, record.ImageURL, record.ImageLinkURL,
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to update event", err)

		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return services.ErrDatabaseItemNotFound
	}

	currentTags, err := loadEventTagsTx(ctx, tx, record.ID)
	if err != nil {
		return err
	}

	diff := mmodel.DiffTags(currentTags, event.Tags)

	for _, tag := range diff.Removed {
		if _, err := tx.ExecContext(ctx, `DELETE FROM event_tags WHERE event_id = $1 AND tag = $2`,
			record.ID, tag); err != nil {
			return err
		}
	}

	for _, tag := range diff.Added {
		if _, err := tx.ExecContext(ctx, `INSERT INTO event_tags (event_id, tag) VALUES ($1, $2)`,
			record.ID, tag); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetEvent retrieves an event by id, archived or not.
func (r *EventPostgreSQLRepository) GetEvent(ctx context.Context, id mmodel.ID) (*mmodel.Event, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.get_event")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events e WHERE e.id = $1`, id.String())

	record, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		mopentelemetry.HandleSpanError(&span, "Failed to get event", err)

		return nil, err
	}

	tags, err := loadEventTags(ctx, db, record.ID)
	if err != nil {
		return nil, err
	}

	return record.ToEntity(tags), nil
}

// AllEvents lists non-archived events chronologically, ascending by start.
func (r *EventPostgreSQLRepository) AllEvents(ctx context.Context, filter EventFilter) ([]*mmodel.Event, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.all_events")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	builder := squirrel.Select(eventColumns).
		From("events e").
		Where("e.archived IS NULL").
		OrderBy("e.start ASC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.StartMin != nil {
		builder = builder.Where(squirrel.GtOrEq{"e.start": mmodel.TimestampSeconds(*filter.StartMin)})
	}

	if filter.StartMax != nil {
		builder = builder.Where(squirrel.LtOrEq{"e.start": mmodel.TimestampSeconds(*filter.StartMax)})
	}

	if filter.EndMin != nil {
		builder = builder.Where(squirrel.GtOrEq{"e.ends": mmodel.TimestampSeconds(*filter.EndMin)})
	}

	if filter.EndMax != nil {
		builder = builder.Where(squirrel.LtOrEq{"e.ends": mmodel.TimestampSeconds(*filter.EndMax)})
	}

	if filter.CreatedBy != nil {
		builder = builder.Where(squirrel.Eq{"e.created_by": filter.CreatedBy.String()})
	}

	for _, tag := range filter.Tags {
		builder = builder.Where(squirrel.Expr(
			"EXISTS (SELECT 1 FROM event_tags t WHERE t.event_id = e.id AND t.tag = ?)", tag))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to build query", err)

		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query events", err)

		return nil, err
	}
	defer rows.Close()

	var records []*EventPostgreSQLModel

	for rows.Next() {
		record, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return r.assembleMany(ctx, db, records)
}

// CountEvents counts the non-archived events.
func (r *EventPostgreSQLRepository) CountEvents(ctx context.Context) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.count_events")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	var count uint64

	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM events WHERE archived IS NULL`).Scan(&count); err != nil {
		return 0, err
	}

	return count, nil
}

// ArchiveEvents stamps the archived timestamp on the given events.
// Already-archived events are skipped; returns the number of rows touched.
func (r *EventPostgreSQLRepository) ArchiveEvents(ctx context.Context, ids []mmodel.ID, archivedAt time.Time) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_events")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	query, args, err := squirrel.Update(r.tableName).
		Set("archived", mmodel.TimestampSeconds(archivedAt)).
		Where(squirrel.Eq{"id": idStrings}).
		Where("archived IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to archive events", err)

		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return uint64(rowsAffected), nil
}

// ArchiveEventsCreatedBy archives all non-archived events created by the
// given email address.
func (r *EventPostgreSQLRepository) ArchiveEventsCreatedBy(ctx context.Context, createdBy mmodel.EmailAddress, archivedAt time.Time) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.archive_events_created_by")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	result, err := db.ExecContext(ctx,
		`UPDATE events SET archived = $1 WHERE created_by = $2 AND archived IS NULL`,
		mmodel.TimestampSeconds(archivedAt), createdBy.String())
	if err != nil {
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	return uint64(rowsAffected), nil
}

// DeleteEvent removes an event row and its tags.
func (r *EventPostgreSQLRepository) DeleteEvent(ctx context.Context, id mmodel.ID) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.delete_event")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	result, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id.String())
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete event", err)

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

// DeleteEventWithMatchingTags removes an event iff at least one of the given
// tags is attached to it. Reports whether the row was removed.
func (r *EventPostgreSQLRepository) DeleteEventWithMatchingTags(ctx context.Context, id mmodel.ID, tags []string) (bool, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.delete_event_with_matching_tags")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return false, err
	}

	query, args, err := squirrel.Delete(r.tableName).
		Where(squirrel.Eq{"id": id.String()}).
		Where(squirrel.Expr("EXISTS (SELECT 1 FROM event_tags t WHERE t.event_id = events.id AND t.tag = ANY(?))",
			tagArray(tags))).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to delete event", err)

		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func tagArray(tags []string) any {
	return pq.Array(tags)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type executor interface {
	querier
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func replaceEventTags(ctx context.Context, tx executor, eventID string, tags []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM event_tags WHERE event_id = $1`, eventID); err != nil {
		return err
	}

	for _, tag := range tags {
		if _, err := tx.ExecContext(ctx, `INSERT INTO event_tags (event_id, tag) VALUES ($1, $2)`,
			eventID, tag); err != nil {
			return err
		}
	}

	return nil
}

func loadEventTags(ctx context.Context, db querier, eventID string) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT tag FROM event_tags WHERE event_id = $1 ORDER BY tag ASC`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := []string{}

	for rows.Next() {
		var tag string

		if err := rows.Scan(&tag); err != nil {
			return nil, err
		}

		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

func loadEventTagsTx(ctx context.Context, tx querier, eventID string) ([]string, error) {
	return loadEventTags(ctx, tx, eventID)
}

func (r *EventPostgreSQLRepository) assembleMany(ctx context.Context, db querier, records []*EventPostgreSQLModel) ([]*mmodel.Event, error) {
	if len(records) == 0 {
		return []*mmodel.Event{}, nil
	}

	ids := make([]string, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}

	query, args, err := squirrel.Select("event_id", "tag").
		From("event_tags").
		Where(squirrel.Eq{"event_id": ids}).
		OrderBy("tag ASC").
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

	tagsByEvent := make(map[string][]string)

	for rows.Next() {
		var eventID, tag string

		if err := rows.Scan(&eventID, &tag); err != nil {
			return nil, err
		}

		tagsByEvent[eventID] = append(tagsByEvent[eventID], tag)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	events := make([]*mmodel.Event, len(records))

	for i, record := range records {
		tags := tagsByEvent[record.ID]
		if tags == nil {
			tags = []string{}
		}

		events[i] = record.ToEntity(tags)
	}

	return events, nil
}
