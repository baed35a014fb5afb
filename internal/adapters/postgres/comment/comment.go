package comment

import (
	"context"
	"database/sql"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// Repository provides an interface for operations related to comment entities.
//
//go:generate mockgen --destination=comment.mock.go --package=comment . Repository
type Repository interface {
	CreateComment(ctx context.Context, comment *mmodel.Comment) error
	LoadComment(ctx context.Context, id mmodel.ID) (*mmodel.Comment, error)
	LoadComments(ctx context.Context, ids []mmodel.ID) ([]*mmodel.Comment, error)
	LoadCommentsOfRating(ctx context.Context, ratingID mmodel.ID) ([]*mmodel.Comment, error)
	ArchiveComments(ctx context.Context, ids []mmodel.ID, activity mmodel.Activity) (uint64, error)
	ArchiveCommentsOfRatings(ctx context.Context, ratingIDs []mmodel.ID, activity mmodel.Activity) (uint64, error)
	ArchiveCommentsOfPlaces(ctx context.Context, placeIDs []mmodel.ID, activity mmodel.Activity) (uint64, error)
}

// CommentPostgreSQLModel represents the entity Comment into SQL context in Database.
type CommentPostgreSQLModel struct {
	ID         string
	RatingID   string
	CreatedAt  int64
	ArchivedAt sql.NullInt64
	CreatedBy  sql.NullString
	ArchivedBy sql.NullString
	Text       string
}

// ToEntity converts a CommentPostgreSQLModel to an entity mmodel.Comment.
func (m *CommentPostgreSQLModel) ToEntity() *mmodel.Comment {
	comment := &mmodel.Comment{
		ID:        mmodel.ID(m.ID),
		RatingID:  mmodel.ID(m.RatingID),
		CreatedAt: mmodel.TimeFromMillis(m.CreatedAt),
		Text:      m.Text,
	}

	if m.ArchivedAt.Valid {
		archivedAt := mmodel.TimeFromMillis(m.ArchivedAt.Int64)
		comment.ArchivedAt = &archivedAt
	}

	if m.CreatedBy.Valid {
		email := mmodel.EmailAddress(m.CreatedBy.String)
		comment.CreatedBy = &email
	}

	if m.ArchivedBy.Valid {
		email := mmodel.EmailAddress(m.ArchivedBy.String)
		comment.ArchivedBy = &email
	}

	return comment
}

// FromEntity converts an entity mmodel.Comment to a CommentPostgreSQLModel.
func (m *CommentPostgreSQLModel) FromEntity(comment *mmodel.Comment) {
	*m = CommentPostgreSQLModel{
		ID:        comment.ID.String(),
		RatingID:  comment.RatingID.String(),
		CreatedAt: mmodel.TimestampMillis(comment.CreatedAt),
		Text:      comment.Text,
	}

	if comment.ArchivedAt != nil {
		m.ArchivedAt = sql.NullInt64{Int64: mmodel.TimestampMillis(*comment.ArchivedAt), Valid: true}
	}

	if comment.CreatedBy != nil {
		m.CreatedBy = sql.NullString{String: comment.CreatedBy.String(), Valid: true}
	}

	if comment.ArchivedBy != nil {
		m.ArchivedBy = sql.NullString{String: comment.ArchivedBy.String(), Valid: true}
	}
}
