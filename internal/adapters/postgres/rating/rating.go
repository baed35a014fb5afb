package rating

import (
	"context"
	"database/sql"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// Repository provides an interface for operations related to rating entities.
//
//go:generate mockgen --destination=rating.mock.go --package=rating . Repository
type Repository interface {
	CreateRating(ctx context.Context, rating *mmodel.Rating) error
	CreateRatingWithComment(ctx context.Context, rating *mmodel.Rating, comment *mmodel.Comment) error
	LoadRating(ctx context.Context, id mmodel.ID) (*mmodel.Rating, error)
	LoadRatings(ctx context.Context, ids []mmodel.ID) ([]*mmodel.Rating, error)
	LoadRatingsOfPlace(ctx context.Context, placeID mmodel.ID) ([]*mmodel.Rating, error)
	ArchiveRatings(ctx context.Context, ids []mmodel.ID, activity mmodel.Activity) (uint64, error)
	ArchiveRatingsWithComments(ctx context.Context, ids []mmodel.ID, activity mmodel.Activity) (uint64, error)
	ArchiveRatingsOfPlaces(ctx context.Context, placeIDs []mmodel.ID, activity mmodel.Activity) (uint64, error)
	ArchiveRatingsOfPlacesWithComments(ctx context.Context, placeIDs []mmodel.ID, activity mmodel.Activity) (uint64, error)
	LoadPlaceIDsOfRatings(ctx context.Context, ids []mmodel.ID) ([]mmodel.ID, error)
}

// RatingPostgreSQLModel represents the entity Rating into SQL context in Database.
type RatingPostgreSQLModel struct {
	ID         string
	PlaceID    string
	CreatedAt  int64
	ArchivedAt sql.NullInt64
	ArchivedBy sql.NullString
	Title      string
	Value      int16
	Context    string
	Source     sql.NullString
}

// ToEntity converts a RatingPostgreSQLModel to an entity mmodel.Rating.
func (m *RatingPostgreSQLModel) ToEntity() *mmodel.Rating {
	rating := &mmodel.Rating{
		ID:        mmodel.ID(m.ID),
		PlaceID:   mmodel.ID(m.PlaceID),
		CreatedAt: mmodel.TimeFromMillis(m.CreatedAt),
		Title:     m.Title,
		Value:     mmodel.RatingValue(m.Value),
		Context:   mmodel.RatingContext(m.Context),
	}

	if m.ArchivedAt.Valid {
		archivedAt := mmodel.TimeFromMillis(m.ArchivedAt.Int64)
		rating.ArchivedAt = &archivedAt
	}

	if m.Source.Valid {
		source := m.Source.String
		rating.Source = &source
	}

	return rating
}

// FromEntity converts an entity mmodel.Rating to a RatingPostgreSQLModel.
func (m *RatingPostgreSQLModel) FromEntity(rating *mmodel.Rating) {
	*m = RatingPostgreSQLModel{
		ID:        rating.ID.String(),
		PlaceID:   rating.PlaceID.String(),
		CreatedAt: mmodel.TimestampMillis(rating.CreatedAt),
		Title:     rating.Title,
		Value:     int16(rating.Value),
		Context:   string(rating.Context),
	}

	if rating.ArchivedAt != nil {
		m.ArchivedAt = sql.NullInt64{Int64: mmodel.TimestampMillis(*rating.ArchivedAt), Valid: true}
	}

	if rating.Source != nil {
		m.Source = sql.NullString{String: *rating.Source, Valid: true}
	}
}

func archiveStamp(activity mmodel.Activity) (int64, sql.NullString) {
	archivedAt := mmodel.TimestampMillis(activity.At)

	var archivedBy sql.NullString
	if activity.By != nil {
		archivedBy = sql.NullString{String: activity.By.String(), Valid: true}
	}

	return archivedAt, archivedBy
}
