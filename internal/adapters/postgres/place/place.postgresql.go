package place

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// PlacePostgreSQLRepository is a Postgresql-specific implementation of the place Repository.
type PlacePostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewPlacePostgreSQLRepository returns a new instance of PlacePostgreSQLRepository using the given Postgres connection.
func NewPlacePostgreSQLRepository(pc *mpostgres.PostgresConnection) *PlacePostgreSQLRepository {
	r := &PlacePostgreSQLRepository{
		connection: pc,
		tableName:  "place",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

const placeRevisionColumns = `p.id, p.license, r.rev, r.created_at, r.created_by, r.current_status,
	r.title, r.description, r.lat, r.lon,
	r.street, r.zip, r.city, r.country, r.state,
	r.contact_name, r.email, r.phone, r.homepage,
	r.opening_hours, r.founded_on, r.image_url, r.image_link_url`

func scanPlaceRevision(row interface{ Scan(dest ...any) error }) (*PlacePostgreSQLModel, error) {
	record := &PlacePostgreSQLModel{}

	err := row.Scan(
		&record.PlaceID,
		&record.License,
		&record.Rev,
		&record.CreatedAt,
		&record.CreatedBy,
		&record.CurrentStatus,
		&record.Title,
		&record.Description,
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
		&record.OpeningHours,
		&record.FoundedOn,
		&record.ImageURL,
		&record.ImageLinkURL,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// CreateOrUpdatePlace persists a new place revision.
//
// A revision 0 without an existing root creates the root. Any other revision
// must be the direct successor of root.current_rev; a mismatch fails with the
// invalid-version conflict. The revision row, the initial review record, the
// tag rows and the custom-link rows are written in a single transaction.
func (r *PlacePostgreSQLRepository) CreateOrUpdatePlace(ctx context.Context, place *mmodel.Place) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_or_update_place")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &PlacePostgreSQLModel{}
	record.FromEntity(place)
	record.CurrentStatus = int16(mmodel.ReviewStatusCreated)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to begin transaction", err)

		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	var currentRev int64

	err = tx.QueryRowContext(ctx, `SELECT current_rev FROM place WHERE id = $1 FOR UPDATE`, record.PlaceID).
		Scan(&currentRev)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		if record.Rev != 0 {
			return pkg.ValidateBusinessError(constant.ErrInvalidVersion, reflect.TypeOf(mmodel.Place{}).Name())
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO place (id, license, current_rev) VALUES ($1, $2, $3)`,
			record.PlaceID, record.License, record.Rev); err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to insert place root", err)

			return err
		}
	case err != nil:
		mopentelemetry.HandleSpanError(&span, "Failed to load place root", err)

		return err
	default:
		if record.Rev != currentRev+1 {
			return pkg.ValidateBusinessError(constant.ErrInvalidVersion, reflect.TypeOf(mmodel.Place{}).Name())
		}

		if _, err := tx.ExecContext(ctx, `UPDATE place SET current_rev = $1 WHERE id = $2`,
			record.Rev, record.PlaceID); err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to bump place revision", err)

			return err
		}
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO place_revision (place_id, rev, created_at, created_by, current_status,
		title, description, lat, lon, street, zip, city, country, state,
		contact_name, email, phone, homepage, opening_hours, founded_on, image_url, image_link_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		record.PlaceID,
		record.Rev,
		record.CreatedAt,
		record.CreatedBy,
		record.CurrentStatus,
		record.Title,
		record.Description,
		record.Lat,
		record.Lon,
		record.Street,
		record.Zip,
		record.City,
		record.Country,
		record.State,
		record.ContactName,
		record.Email,
		record.Phone,
		record.Homepage,
		record.OpeningHours,
		record.FoundedOn,
		record.ImageURL,
		record.ImageLinkURL,
	)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert place revision", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.Place{}).Name())
	}

	_, err = tx.ExecContext(ctx, `INSERT INTO place_revision_review
		(place_id, rev, review_rev, created_at, created_by, status, context, comment)
		VALUES ($1, $2, 0, $3, $4, $5, NULL, NULL)`,
		record.PlaceID, record.Rev, record.CreatedAt, record.CreatedBy, record.CurrentStatus)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert initial review record", err)

		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM place_revision_tag WHERE place_id = $1 AND rev = $2`,
		record.PlaceID, record.Rev); err != nil {
		return err
	}

	for _, tag := range place.Tags {
		if _, err := tx.ExecContext(ctx, `INSERT INTO place_revision_tag (place_id, rev, tag) VALUES ($1, $2, $3)`,
			record.PlaceID, record.Rev, tag); err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to insert place revision tag", err)

			return err
		}
	}

	if place.Links != nil {
		for _, link := range place.Links.Custom {
			if _, err := tx.ExecContext(ctx, `INSERT INTO place_revision_custom_link
				(place_id, rev, url, title, description) VALUES ($1, $2, $3, $4, $5)`,
				record.PlaceID, record.Rev, link.URL, nullString(link.Title), nullString(link.Description)); err != nil {
				mopentelemetry.HandleSpanError(&span, "Failed to insert place revision custom link", err)

				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to commit transaction", err)

		return err
	}

	return nil
}

// GetPlace retrieves the current revision of a place together with its
// review status. Places whose current status is hidden are not found.
func (r *PlacePostgreSQLRepository) GetPlace(ctx context.Context, id mmodel.ID) (*mmodel.PlaceWithStatus, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.get_place")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+placeRevisionColumns+`
		FROM place p JOIN place_revision r ON r.place_id = p.id AND r.rev = p.current_rev
		WHERE p.id = $1 AND r.current_status > 0`, id.String())

	record, err := scanPlaceRevision(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		mopentelemetry.HandleSpanError(&span, "Failed to get place", err)

		return nil, err
	}

	return r.assembleOne(ctx, db, record)
}

// GetPlaces retrieves the current revisions of the given places, skipping
// hidden and unknown ids.
func (r *PlacePostgreSQLRepository) GetPlaces(ctx context.Context, ids []mmodel.ID) ([]*mmodel.PlaceWithStatus, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.get_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	idStrings := make([]string, len(ids))
	for i, id := range ids {
		idStrings[i] = id.String()
	}

	query, args, err := squirrel.Select(placeRevisionColumns).
		From("place p").
		Join("place_revision r ON r.place_id = p.id AND r.rev = p.current_rev").
		Where(squirrel.Eq{"p.id": idStrings}).
		Where(squirrel.Gt{"r.current_status": 0}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to build query", err)

		return nil, err
	}

	return r.queryPlaces(ctx, db, query, args...)
}

// AllPlaces retrieves the current revisions of all non-hidden places.
func (r *PlacePostgreSQLRepository) AllPlaces(ctx context.Context) ([]*mmodel.PlaceWithStatus, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.all_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	return r.queryPlaces(ctx, db, `SELECT `+placeRevisionColumns+`
		FROM place p JOIN place_revision r ON r.place_id = p.id AND r.rev = p.current_rev
		WHERE r.current_status > 0`)
}

// CountPlaces counts the places whose current status is visible.
func (r *PlacePostgreSQLRepository) CountPlaces(ctx context.Context) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.count_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	var count uint64

	err = db.QueryRowContext(ctx, `SELECT count(*)
		FROM place p JOIN place_revision r ON r.place_id = p.id AND r.rev = p.current_rev
		WHERE r.current_status > 0`).Scan(&count)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to count places", err)

		return 0, err
	}

	return count, nil
}

// LoadPlaceRevision returns a historical revision and its then-current status.
func (r *PlacePostgreSQLRepository) LoadPlaceRevision(ctx context.Context, id mmodel.ID, rev mmodel.Revision) (*mmodel.PlaceWithStatus, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.load_place_revision")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+placeRevisionColumns+`
		FROM place p JOIN place_revision r ON r.place_id = p.id
		WHERE p.id = $1 AND r.rev = $2`, id.String(), int64(rev))

	record, err := scanPlaceRevision(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		mopentelemetry.HandleSpanError(&span, "Failed to load place revision", err)

		return nil, err
	}

	return r.assembleOne(ctx, db, record)
}

// GetPlaceHistory returns every revision of a place together with the full
// list of review records per revision, ordered newest first.
func (r *PlacePostgreSQLRepository) GetPlaceHistory(ctx context.Context, id mmodel.ID, fromRevision *mmodel.Revision) (*mmodel.PlaceHistory, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.get_place_history")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	history := &mmodel.PlaceHistory{}

	err = db.QueryRowContext(ctx, `SELECT id, license, current_rev FROM place WHERE id = $1`, id.String()).
		Scan(&history.Root.ID, &history.Root.License, &history.Root.CurrentRev)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		return nil, err
	}

	revisionQuery := squirrel.Select(placeRevisionColumns).
		From("place p").
		Join("place_revision r ON r.place_id = p.id").
		Where(squirrel.Eq{"p.id": id.String()}).
		OrderBy("r.rev DESC").
		PlaceholderFormat(squirrel.Dollar)

	if fromRevision != nil {
		revisionQuery = revisionQuery.Where(squirrel.GtOrEq{"r.rev": int64(*fromRevision)})
	}

	query, args, err := revisionQuery.ToSql()
	if err != nil {
		return nil, err
	}

	places, err := r.queryPlaces(ctx, db, query, args...)
	if err != nil {
		return nil, err
	}

	reviewRows, err := db.QueryContext(ctx, `SELECT place_id, rev, review_rev, created_at, created_by, status, context, comment
		FROM place_revision_review WHERE place_id = $1 ORDER BY rev DESC, review_rev DESC`, id.String())
	if err != nil {
		return nil, err
	}
	defer reviewRows.Close()

	logsByRev := make(map[mmodel.Revision][]mmodel.ReviewStatusLog)

	for reviewRows.Next() {
		review := &ReviewPostgreSQLModel{}

		if err := reviewRows.Scan(&review.PlaceID, &review.Rev, &review.ReviewRev, &review.CreatedAt,
			&review.CreatedBy, &review.Status, &review.Context, &review.Comment); err != nil {
			return nil, err
		}

		rev := mmodel.Revision(review.Rev)
		logsByRev[rev] = append(logsByRev[rev], review.ToLog())
	}

	if err := reviewRows.Err(); err != nil {
		return nil, err
	}

	for _, p := range places {
		history.Revisions = append(history.Revisions, mmodel.PlaceRevisionWithLogs{
			Revision:   p.Place.PlaceRev(),
			ReviewLogs: logsByRev[p.Place.Revision],
		})
	}

	return history, nil
}

// ReviewPlaces applies a status transition to the current revision of each
// given place, inserting one review record per transition. Places already in
// the target status are skipped. Returns the number of places transitioned.
func (r *PlacePostgreSQLRepository) ReviewPlaces(ctx context.Context, ids []mmodel.ID, status mmodel.ReviewStatus, activity mmodel.ActivityLog) (uint64, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.review_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return 0, err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to begin transaction", err)

		return 0, err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	createdAt := mmodel.TimestampMillis(activity.At)

	var createdBy sql.NullString
	if activity.By != nil {
		createdBy = sql.NullString{String: activity.By.String(), Valid: true}
	}

	var reviewContext, reviewComment sql.NullString
	if activity.Context != nil {
		reviewContext = sql.NullString{String: *activity.Context, Valid: true}
	}

	if activity.Comment != nil {
		reviewComment = sql.NullString{String: *activity.Comment, Valid: true}
	}

	var reviewed uint64

	for _, id := range ids {
		var (
			currentRev    int64
			currentStatus int16
		)

		err := tx.QueryRowContext(ctx, `SELECT p.current_rev, r.current_status
			FROM place p JOIN place_revision r ON r.place_id = p.id AND r.rev = p.current_rev
			WHERE p.id = $1 FOR UPDATE OF r`, id.String()).Scan(&currentRev, &currentStatus)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}

			return 0, err
		}

		if currentStatus == int16(status) {
			continue
		}

		var nextReviewRev int64

		err = tx.QueryRowContext(ctx, `SELECT coalesce(max(review_rev), -1) + 1
			FROM place_revision_review WHERE place_id = $1 AND rev = $2`, id.String(), currentRev).
			Scan(&nextReviewRev)
		if err != nil {
			return 0, err
		}

		if _, err := tx.ExecContext(ctx, `INSERT INTO place_revision_review
			(place_id, rev, review_rev, created_at, created_by, status, context, comment)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			id.String(), currentRev, nextReviewRev, createdAt, createdBy, int16(status), reviewContext, reviewComment); err != nil {
			return 0, err
		}

		if _, err := tx.ExecContext(ctx, `UPDATE place_revision SET current_status = $1
			WHERE place_id = $2 AND rev = $3`, int16(status), id.String(), currentRev); err != nil {
			return 0, err
		}

		reviewed++
	}

	if err := tx.Commit(); err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to commit transaction", err)

		return 0, err
	}

	return reviewed, nil
}

// RecentlyChangedPlaces lists places ordered by their most recent review
// activity, newest first.
func (r *PlacePostgreSQLRepository) RecentlyChangedPlaces(ctx context.Context, params RecentlyChangedParams, pagination http.Pagination) ([]*RecentlyChangedPlace, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.recently_changed_places")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	builder := squirrel.Select(placeRevisionColumns+`,
		rr.review_rev, rr.created_at AS review_created_at, rr.created_by AS review_created_by,
		rr.status, rr.context, rr.comment`).
		From("place p").
		Join("place_revision r ON r.place_id = p.id AND r.rev = p.current_rev").
		Join(`place_revision_review rr ON rr.place_id = p.id AND rr.rev = r.rev
			AND rr.review_rev = (SELECT max(review_rev) FROM place_revision_review
				WHERE place_id = p.id AND rev = r.rev)`).
		OrderBy("rr.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if params.Since != nil {
		builder = builder.Where(squirrel.GtOrEq{"rr.created_at": mmodel.TimestampMillis(*params.Since)})
	}

	if params.Until != nil {
		builder = builder.Where(squirrel.Lt{"rr.created_at": mmodel.TimestampMillis(*params.Until)})
	}

	if pagination.Limit > 0 {
		builder = builder.Limit(pagination.Limit).Offset(pagination.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to build query", err)

		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query recently changed places", err)

		return nil, err
	}
	defer rows.Close()

	var (
		records []*PlacePostgreSQLModel
		reviews []*ReviewPostgreSQLModel
	)

	for rows.Next() {
		record := &PlacePostgreSQLModel{}
		review := &ReviewPostgreSQLModel{}

		err := rows.Scan(
			&record.PlaceID, &record.License, &record.Rev, &record.CreatedAt, &record.CreatedBy, &record.CurrentStatus,
			&record.Title, &record.Description, &record.Lat, &record.Lon,
			&record.Street, &record.Zip, &record.City, &record.Country, &record.State,
			&record.ContactName, &record.Email, &record.Phone, &record.Homepage,
			&record.OpeningHours, &record.FoundedOn, &record.ImageURL, &record.ImageLinkURL,
			&review.ReviewRev, &review.CreatedAt, &review.CreatedBy, &review.Status, &review.Context, &review.Comment,
		)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	places, err := r.assembleMany(ctx, db, records)
	if err != nil {
		return nil, err
	}

	changed := make([]*RecentlyChangedPlace, len(places))
	for i, p := range places {
		changed[i] = &RecentlyChangedPlace{
			Place:        p.Place,
			Status:       p.Status,
			LastActivity: reviews[i].ToLog().Activity,
		}
	}

	return changed, nil
}

// MostPopularPlaceRevisionTags returns tag frequencies across the current
// revisions of non-archived places, most frequent first.
func (r *PlacePostgreSQLRepository) MostPopularPlaceRevisionTags(ctx context.Context, params MostPopularTagsParams, pagination http.Pagination) ([]*mmodel.TagFrequency, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.most_popular_place_revision_tags")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	builder := squirrel.Select("t.tag", "count(*) AS tag_count").
		From("place_revision_tag t").
		Join("place p ON p.id = t.place_id AND p.current_rev = t.rev").
		Join("place_revision r ON r.place_id = t.place_id AND r.rev = t.rev").
		Where(squirrel.Gt{"r.current_status": 0}).
		GroupBy("t.tag").
		OrderBy("tag_count DESC", "t.tag ASC").
		PlaceholderFormat(squirrel.Dollar)

	if params.MinCount != nil {
		builder = builder.Having(squirrel.GtOrEq{"count(*)": *params.MinCount})
	}

	if params.MaxCount != nil {
		builder = builder.Having(squirrel.LtOrEq{"count(*)": *params.MaxCount})
	}

	if pagination.Limit > 0 {
		builder = builder.Limit(pagination.Limit).Offset(pagination.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to build query", err)

		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query tag frequencies", err)

		return nil, err
	}
	defer rows.Close()

	var frequencies []*mmodel.TagFrequency

	for rows.Next() {
		freq := &mmodel.TagFrequency{}

		if err := rows.Scan(&freq.Tag, &freq.Count); err != nil {
			return nil, err
		}

		frequencies = append(frequencies, freq)
	}

	return frequencies, rows.Err()
}

// FindPlacesNotUpdatedSince lists visible places whose current revision was
// created before the given instant.
func (r *PlacePostgreSQLRepository) FindPlacesNotUpdatedSince(ctx context.Context, before time.Time, pagination http.Pagination) ([]*mmodel.PlaceWithStatus, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.find_places_not_updated_since")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	builder := squirrel.Select(placeRevisionColumns).
		From("place p").
		Join("place_revision r ON r.place_id = p.id AND r.rev = p.current_rev").
		Where(squirrel.Gt{"r.current_status": 0}).
		Where(squirrel.Lt{"r.created_at": mmodel.TimestampMillis(before)}).
		OrderBy("r.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if pagination.Limit > 0 {
		builder = builder.Limit(pagination.Limit).Offset(pagination.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryPlaces(ctx, db, query, args...)
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *PlacePostgreSQLRepository) queryPlaces(ctx context.Context, db querier, query string, args ...any) ([]*mmodel.PlaceWithStatus, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*PlacePostgreSQLModel

	for rows.Next() {
		record, err := scanPlaceRevision(rows)
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

func (r *PlacePostgreSQLRepository) assembleOne(ctx context.Context, db querier, record *PlacePostgreSQLModel) (*mmodel.PlaceWithStatus, error) {
	places, err := r.assembleMany(ctx, db, []*PlacePostgreSQLModel{record})
	if err != nil {
		return nil, err
	}

	return places[0], nil
}

type revisionKey struct {
	placeID string
	rev     int64
}

func (r *PlacePostgreSQLRepository) assembleMany(ctx context.Context, db querier, records []*PlacePostgreSQLModel) ([]*mmodel.PlaceWithStatus, error) {
	if len(records) == 0 {
		return []*mmodel.PlaceWithStatus{}, nil
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.PlaceID)
	}

	tagQuery, tagArgs, err := squirrel.Select("place_id", "rev", "tag").
		From("place_revision_tag").
		Where(squirrel.Eq{"place_id": ids}).
		OrderBy("tag ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	tagRows, err := db.QueryContext(ctx, tagQuery, tagArgs...)
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()

	tagsByRev := make(map[revisionKey][]string)

	for tagRows.Next() {
		var (
			placeID string
			rev     int64
			tag     string
		)

		if err := tagRows.Scan(&placeID, &rev, &tag); err != nil {
			return nil, err
		}

		key := revisionKey{placeID: placeID, rev: rev}
		tagsByRev[key] = append(tagsByRev[key], tag)
	}

	if err := tagRows.Err(); err != nil {
		return nil, err
	}

	linkQuery, linkArgs, err := squirrel.Select("place_id", "rev", "url", "title", "description").
		From("place_revision_custom_link").
		Where(squirrel.Eq{"place_id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	linkRows, err := db.QueryContext(ctx, linkQuery, linkArgs...)
	if err != nil {
		return nil, err
	}
	defer linkRows.Close()

	linksByRev := make(map[revisionKey][]mmodel.CustomLink)

	for linkRows.Next() {
		var (
			placeID     string
			rev         int64
			url         string
			title       sql.NullString
			description sql.NullString
		)

		if err := linkRows.Scan(&placeID, &rev, &url, &title, &description); err != nil {
			return nil, err
		}

		key := revisionKey{placeID: placeID, rev: rev}
		linksByRev[key] = append(linksByRev[key], mmodel.CustomLink{
			URL:         url,
			Title:       title.String,
			Description: description.String,
		})
	}

	if err := linkRows.Err(); err != nil {
		return nil, err
	}

	places := make([]*mmodel.PlaceWithStatus, len(records))

	for i, record := range records {
		key := revisionKey{placeID: record.PlaceID, rev: record.Rev}

		tags := tagsByRev[key]
		if tags == nil {
			tags = []string{}
		}

		places[i] = &mmodel.PlaceWithStatus{
			Place:  *record.ToEntity(tags, linksByRev[key]),
			Status: mmodel.ReviewStatus(record.CurrentStatus),
		}
	}

	return places, nil
}
