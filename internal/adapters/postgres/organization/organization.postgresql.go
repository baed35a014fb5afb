package organization

import (
	"context"
	"database/sql"
	"errors"
	"reflect"

	"github.com/Masterminds/squirrel"
	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/mopentelemetry"
	"github.com/kartevonmorgen/openfairdb/pkg/mpostgres"
)

// OrganizationPostgreSQLRepository is a Postgresql-specific implementation of the organization Repository.
type OrganizationPostgreSQLRepository struct {
	connection *mpostgres.PostgresConnection
	tableName  string
}

// NewOrganizationPostgreSQLRepository returns a new instance of OrganizationPostgreSQLRepository using the given Postgres connection.
func NewOrganizationPostgreSQLRepository(pc *mpostgres.PostgresConnection) *OrganizationPostgreSQLRepository {
	r := &OrganizationPostgreSQLRepository{
		connection: pc,
		tableName:  "organization",
	}

	_, err := r.connection.GetDB()
	if err != nil {
		panic("Failed to connect database")
	}

	return r
}

// CreateOrganization persists a new organization and its moderated tags in a
// single transaction.
func (r *OrganizationPostgreSQLRepository) CreateOrganization(ctx context.Context, org *mmodel.Organization) error {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.create_organization")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return err
	}

	record := &OrganizationPostgreSQLModel{}
	record.FromEntity(org)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback()
	}()

	_, err = tx.ExecContext(ctx, `INSERT INTO organization (id, name, api_token) VALUES ($1, $2, $3)`,
		record.ID, record.Name, record.APIToken)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to insert organization", err)

		return services.HandlePGError(err, reflect.TypeOf(mmodel.Organization{}).Name())
	}

	for _, tag := range org.ModeratedTags {
		if _, err := tx.ExecContext(ctx, `INSERT INTO organization_tag
			(org_id, tag_label, tag_allow_add, tag_allow_remove, require_clearance)
			VALUES ($1, $2, $3, $4, $5)`,
			record.ID, tag.Label, tag.AllowAdd, tag.AllowRemove, tag.RequireClearance); err != nil {
			mopentelemetry.HandleSpanError(&span, "Failed to insert moderated tag", err)

			return err
		}
	}

	return tx.Commit()
}

// GetOrganizationByAPIToken resolves the organization that owns the token.
func (r *OrganizationPostgreSQLRepository) GetOrganizationByAPIToken(ctx context.Context, token string) (*mmodel.Organization, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.get_organization_by_api_token")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	record := &OrganizationPostgreSQLModel{}

	err = db.QueryRowContext(ctx, `SELECT id, name, api_token FROM organization WHERE api_token = $1`, token).
		Scan(&record.ID, &record.Name, &record.APIToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, services.ErrDatabaseItemNotFound
		}

		mopentelemetry.HandleSpanError(&span, "Failed to get organization", err)

		return nil, err
	}

	tags, err := r.GetModeratedTagsByOrganization(ctx, mmodel.ID(record.ID))
	if err != nil {
		return nil, err
	}

	return record.ToEntity(tags), nil
}

// MapTagToClearanceOrganization resolves the single organization that
// requires clearance for the given tag, or nil when the tag is unmoderated.
func (r *OrganizationPostgreSQLRepository) MapTagToClearanceOrganization(ctx context.Context, tag string) (*mmodel.Organization, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.map_tag_to_clearance_organization")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	record := &OrganizationPostgreSQLModel{}

	err = db.QueryRowContext(ctx, `SELECT o.id, o.name, o.api_token
		FROM organization o JOIN organization_tag t ON t.org_id = o.id
		WHERE t.tag_label = $1 AND t.require_clearance`, tag).
		Scan(&record.ID, &record.Name, &record.APIToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		mopentelemetry.HandleSpanError(&span, "Failed to map tag to organization", err)

		return nil, err
	}

	tags, err := r.GetModeratedTagsByOrganization(ctx, mmodel.ID(record.ID))
	if err != nil {
		return nil, err
	}

	return record.ToEntity(tags), nil
}

// GetModeratedTagsByOrganization lists the moderated tags of an organization.
func (r *OrganizationPostgreSQLRepository) GetModeratedTagsByOrganization(ctx context.Context, orgID mmodel.ID) ([]mmodel.ModeratedTag, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.get_moderated_tags_by_organization")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	rows, err := db.QueryContext(ctx, `SELECT tag_label, tag_allow_add, tag_allow_remove, require_clearance
		FROM organization_tag WHERE org_id = $1 ORDER BY tag_label ASC`, orgID.String())
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query moderated tags", err)

		return nil, err
	}
	defer rows.Close()

	tags := []mmodel.ModeratedTag{}

	for rows.Next() {
		var tag mmodel.ModeratedTag

		if err := rows.Scan(&tag.Label, &tag.AllowAdd, &tag.AllowRemove, &tag.RequireClearance); err != nil {
			return nil, err
		}

		tags = append(tags, tag)
	}

	return tags, rows.Err()
}

// ListModeratedTags lists every (organization, moderated tag) pair,
// optionally excluding one organization.
func (r *OrganizationPostgreSQLRepository) ListModeratedTags(ctx context.Context, excludedOrgID *mmodel.ID) ([]*mmodel.OrganizationModeratedTag, error) {
	tracer := pkg.NewTracerFromContext(ctx)

	ctx, span := tracer.Start(ctx, "postgres.list_moderated_tags")
	defer span.End()

	db, err := r.connection.GetDB()
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to get database connection", err)

		return nil, err
	}

	builder := squirrel.Select("org_id", "tag_label", "tag_allow_add", "tag_allow_remove", "require_clearance").
		From("organization_tag").
		OrderBy("tag_label ASC").
		PlaceholderFormat(squirrel.Dollar)

	if excludedOrgID != nil {
		builder = builder.Where(squirrel.NotEq{"org_id": excludedOrgID.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		mopentelemetry.HandleSpanError(&span, "Failed to query moderated tags", err)

		return nil, err
	}
	defer rows.Close()

	pairs := []*mmodel.OrganizationModeratedTag{}

	for rows.Next() {
		pair := &mmodel.OrganizationModeratedTag{}

		var orgID string

		if err := rows.Scan(&orgID, &pair.ModeratedTag.Label, &pair.ModeratedTag.AllowAdd,
			&pair.ModeratedTag.AllowRemove, &pair.ModeratedTag.RequireClearance); err != nil {
			return nil, err
		}

		pair.OrgID = mmodel.ID(orgID)

		pairs = append(pairs, pair)
	}

	return pairs, rows.Err()
}
