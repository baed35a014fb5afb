package place

import (
	"context"
	"database/sql"
	"time"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// Repository provides an interface for operations related to place entities.
//
//go:generate mockgen --destination=place.mock.go --package=place . Repository
type Repository interface {
	CreateOrUpdatePlace(ctx context.Context, place *mmodel.Place) error
	GetPlace(ctx context.Context, id mmodel.ID) (*mmodel.PlaceWithStatus, error)
	GetPlaces(ctx context.Context, ids []mmodel.ID) ([]*mmodel.PlaceWithStatus, error)
	AllPlaces(ctx context.Context) ([]*mmodel.PlaceWithStatus, error)
	CountPlaces(ctx context.Context) (uint64, error)
	LoadPlaceRevision(ctx context.Context, id mmodel.ID, rev mmodel.Revision) (*mmodel.PlaceWithStatus, error)
	GetPlaceHistory(ctx context.Context, id mmodel.ID, fromRevision *mmodel.Revision) (*mmodel.PlaceHistory, error)
	ReviewPlaces(ctx context.Context, ids []mmodel.ID, status mmodel.ReviewStatus, activity mmodel.ActivityLog) (uint64, error)
	RecentlyChangedPlaces(ctx context.Context, params RecentlyChangedParams, pagination http.Pagination) ([]*RecentlyChangedPlace, error)
	MostPopularPlaceRevisionTags(ctx context.Context, params MostPopularTagsParams, pagination http.Pagination) ([]*mmodel.TagFrequency, error)
	FindPlacesNotUpdatedSince(ctx context.Context, before time.Time, pagination http.Pagination) ([]*mmodel.PlaceWithStatus, error)
}

// RecentlyChangedParams filters the recently-changed listing.
type RecentlyChangedParams struct {
	Since *time.Time
	Until *time.Time
}

// RecentlyChangedPlace pairs a place with its status and the review activity
// that touched it last.
type RecentlyChangedPlace struct {
	Place        mmodel.Place
	Status       mmodel.ReviewStatus
	LastActivity mmodel.ActivityLog
}

// MostPopularTagsParams bounds the tag frequencies returned.
type MostPopularTagsParams struct {
	MinCount *uint64
	MaxCount *uint64
}

// PlacePostgreSQLModel represents a place revision joined with its root in
// the SQL context of the database.
type PlacePostgreSQLModel struct {
	PlaceID      string
	License      string
	Rev          int64
	CreatedAt    int64
	CreatedBy    sql.NullString
	CurrentStatus int16
	Title        string
	Description  string
	Lat          float64
	Lon          float64
	Street       sql.NullString
	Zip          sql.NullString
	City         sql.NullString
	Country      sql.NullString
	State        sql.NullString
	ContactName  sql.NullString
	Email        sql.NullString
	Phone        sql.NullString
	Homepage     sql.NullString
	OpeningHours sql.NullString
	FoundedOn    sql.NullString
	ImageURL     sql.NullString
	ImageLinkURL sql.NullString
}

// ReviewPostgreSQLModel represents one review record of a place revision.
type ReviewPostgreSQLModel struct {
	PlaceID   string
	Rev       int64
	ReviewRev int64
	CreatedAt int64
	CreatedBy sql.NullString
	Status    int16
	Context   sql.NullString
	Comment   sql.NullString
}

const foundedOnLayout = "2006-01-02"

// ToEntity converts a PlacePostgreSQLModel plus its tag and custom-link rows
// to an entity mmodel.Place.
func (m *PlacePostgreSQLModel) ToEntity(tags []string, custom []mmodel.CustomLink) *mmodel.Place {
	place := &mmodel.Place{
		ID:          mmodel.ID(m.PlaceID),
		License:     m.License,
		Revision:    mmodel.Revision(m.Rev),
		Title:       m.Title,
		Description: m.Description,
		Tags:        tags,
	}

	place.Created = mmodel.Activity{At: mmodel.TimeFromMillis(m.CreatedAt)}
	if m.CreatedBy.Valid {
		email := mmodel.EmailAddress(m.CreatedBy.String)
		place.Created.By = &email
	}

	pos, _ := mmodel.NewMapPoint(m.Lat, m.Lon)
	place.Location = mmodel.Location{Pos: pos}

	address := mmodel.Address{
		Street:  m.Street.String,
		Zip:     m.Zip.String,
		City:    m.City.String,
		Country: m.Country.String,
		State:   m.State.String,
	}
	if !address.IsEmpty() {
		place.Location.Address = &address
	}

	contact := mmodel.Contact{
		Name:  m.ContactName.String,
		Phone: m.Phone.String,
	}
	if m.Email.Valid {
		email := mmodel.EmailAddress(m.Email.String)
		contact.Email = &email
	}

	if !contact.IsEmpty() {
		place.Contact = &contact
	}

	links := mmodel.Links{
		Homepage:  m.Homepage.String,
		Image:     m.ImageURL.String,
		ImageHref: m.ImageLinkURL.String,
		Custom:    custom,
	}
	if !links.IsEmpty() {
		place.Links = &links
	}

	if m.OpeningHours.Valid {
		hours := m.OpeningHours.String
		place.OpeningHours = &hours
	}

	if m.FoundedOn.Valid {
		if founded, err := time.Parse(foundedOnLayout, m.FoundedOn.String); err == nil {
			place.FoundedOn = &founded
		}
	}

	return place
}

// FromEntity converts an entity mmodel.Place to a PlacePostgreSQLModel.
func (m *PlacePostgreSQLModel) FromEntity(place *mmodel.Place) {
	*m = PlacePostgreSQLModel{
		PlaceID:     place.ID.String(),
		License:     place.License,
		Rev:         int64(place.Revision),
		CreatedAt:   mmodel.TimestampMillis(place.Created.At),
		Title:       place.Title,
		Description: place.Description,
		Lat:         place.Location.Pos.Lat,
		Lon:         place.Location.Pos.Lng,
	}

	if place.Created.By != nil {
		m.CreatedBy = sql.NullString{String: place.Created.By.String(), Valid: true}
	}

	if addr := place.Location.Address; addr != nil {
		m.Street = nullString(addr.Street)
		m.Zip = nullString(addr.Zip)
		m.City = nullString(addr.City)
		m.Country = nullString(addr.Country)
		m.State = nullString(addr.State)
	}

	if contact := place.Contact; contact != nil {
		m.ContactName = nullString(contact.Name)
		m.Phone = nullString(contact.Phone)

		if contact.Email != nil {
			m.Email = sql.NullString{String: contact.Email.String(), Valid: true}
		}
	}

	if links := place.Links; links != nil {
		m.Homepage = nullString(links.Homepage)
		m.ImageURL = nullString(links.Image)
		m.ImageLinkURL = nullString(links.ImageHref)
	}

	if place.OpeningHours != nil {
		m.OpeningHours = sql.NullString{String: *place.OpeningHours, Valid: true}
	}

	if place.FoundedOn != nil {
		m.FoundedOn = sql.NullString{String: place.FoundedOn.Format(foundedOnLayout), Valid: true}
	}
}

// ToLog converts a ReviewPostgreSQLModel to an entity mmodel.ReviewStatusLog.
func (m *ReviewPostgreSQLModel) ToLog() mmodel.ReviewStatusLog {
	log := mmodel.ReviewStatusLog{
		Rev:    mmodel.Revision(m.ReviewRev),
		Status: mmodel.ReviewStatus(m.Status),
	}

	log.Activity.At = mmodel.TimeFromMillis(m.CreatedAt)

	if m.CreatedBy.Valid {
		email := mmodel.EmailAddress(m.CreatedBy.String)
		log.Activity.By = &email
	}

	if m.Context.Valid {
		ctx := m.Context.String
		log.Activity.Context = &ctx
	}

	if m.Comment.Valid {
		comment := m.Comment.String
		log.Activity.Comment = &comment
	}

	return log
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: s, Valid: true}
}
