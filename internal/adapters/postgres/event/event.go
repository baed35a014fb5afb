package event

import (
	"context"
	"database/sql"
	"time"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// Repository provides an interface for operations related to event entities.
//
//go:generate mockgen --destination=event.mock.go --package=event . Repository
type Repository interface {
	CreateEvent(ctx context.Context, event *mmodel.Event) error
	UpdateEvent(ctx context.Context, event *mmodel.Event) error
	GetEvent(ctx context.Context, id mmodel.ID) (*mmodel.Event, error)
	AllEvents(ctx context.Context, filter EventFilter) ([]*mmodel.Event, error)
	CountEvents(ctx context.Context) (uint64, error)
	ArchiveEvents(ctx context.Context, ids []mmodel.ID, archivedAt time.Time) (uint64, error)
	ArchiveEventsCreatedBy(ctx context.Context, createdBy mmodel.EmailAddress, archivedAt time.Time) (uint64, error)
	DeleteEvent(ctx context.Context, id mmodel.ID) error
	DeleteEventWithMatchingTags(ctx context.Context, id mmodel.ID, tags []string) (bool, error)
}

// EventFilter bounds the chronological event listing. Archived events are
// always excluded.
type EventFilter struct {
	StartMin *time.Time
	StartMax *time.Time
	EndMin   *time.Time
	EndMax   *time.Time
	CreatedBy *mmodel.EmailAddress
	Tags     []string
}

// EventPostgreSQLModel represents the entity Event into SQL context in Database.
type EventPostgreSQLModel struct {
	ID           string
	Title        string
	Description  sql.NullString
	Start        int64
	End          sql.NullInt64
	Lat          sql.NullFloat64
	Lon          sql.NullFloat64
	Street       sql.NullString
	Zip          sql.NullString
	City         sql.NullString
	Country      sql.NullString
	State        sql.NullString
	ContactName  sql.NullString
	Email        sql.NullString
	Phone        sql.NullString
	Homepage     sql.NullString
	Organizer    sql.NullString
	Registration sql.NullInt16
	CreatedBy    sql.NullString
	Archived     sql.NullInt64
	ImageURL     sql.NullString
	ImageLinkURL sql.NullString
}

// ToEntity converts an EventPostgreSQLModel plus its tag rows to an entity mmodel.Event.
func (m *EventPostgreSQLModel) ToEntity(tags []string) *mmodel.Event {
	event := &mmodel.Event{
		ID:           mmodel.ID(m.ID),
		Title:        m.Title,
		Description:  m.Description.String,
		Start:        mmodel.TimeFromSeconds(m.Start),
		Homepage:     m.Homepage.String,
		Tags:         tags,
		ImageURL:     m.ImageURL.String,
		ImageLinkURL: m.ImageLinkURL.String,
	}

	if m.End.Valid {
		end := mmodel.TimeFromSeconds(m.End.Int64)
		event.End = &end
	}

	location := mmodel.Location{}

	if m.Lat.Valid && m.Lon.Valid {
		if pos, err := mmodel.NewMapPoint(m.Lat.Float64, m.Lon.Float64); err == nil {
			location.Pos = pos
		}
	}

	address := mmodel.Address{
		Street:  m.Street.String,
		Zip:     m.Zip.String,
		City:    m.City.String,
		Country: m.Country.String,
		State:   m.State.String,
	}
	if !address.IsEmpty() {
		location.Address = &address
	}

	if location.Pos.IsValid() || location.Address != nil {
		event.Location = &location
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
		event.Contact = &contact
	}

	if m.Organizer.Valid {
		organizer := m.Organizer.String
		event.Organizer = &organizer
	}

	if m.Registration.Valid {
		registration := mmodel.RegistrationType(m.Registration.Int16)
		event.Registration = &registration
	}

	if m.CreatedBy.Valid {
		email := mmodel.EmailAddress(m.CreatedBy.String)
		event.CreatedBy = &email
	}

	if m.Archived.Valid {
		archived := mmodel.TimeFromSeconds(m.Archived.Int64)
		event.Archived = &archived
	}

	return event
}

// FromEntity converts an entity mmodel.Event to an EventPostgreSQLModel.
func (m *EventPostgreSQLModel) FromEntity(event *mmodel.Event) {
	*m = EventPostgreSQLModel{
		ID:    event.ID.String(),
		Title: event.Title,
		Start: mmodel.TimestampSeconds(event.Start),
	}

	if event.Description != "" {
		m.Description = sql.NullString{String: event.Description, Valid: true}
	}

	if event.End != nil {
		m.End = sql.NullInt64{Int64: mmodel.TimestampSeconds(*event.End), Valid: true}
	}

	if location := event.Location; location != nil {
		if location.Pos.IsValid() {
			m.Lat = sql.NullFloat64{Float64: location.Pos.Lat, Valid: true}
			m.Lon = sql.NullFloat64{Float64: location.Pos.Lng, Valid: true}
		}

		if addr := location.Address; addr != nil {
			m.Street = nullString(addr.Street)
			m.Zip = nullString(addr.Zip)
			m.City = nullString(addr.City)
			m.Country = nullString(addr.Country)
			m.State = nullString(addr.State)
		}
	}

	if contact := event.Contact; contact != nil {
		m.ContactName = nullString(contact.Name)
		m.Phone = nullString(contact.Phone)

		if contact.Email != nil {
			m.Email = sql.NullString{String: contact.Email.String(), Valid: true}
		}
	}

	m.Homepage = nullString(event.Homepage)
	m.ImageURL = nullString(event.ImageURL)
	m.ImageLinkURL = nullString(event.ImageLinkURL)

	if event.Organizer != nil {
		m.Organizer = nullString(*event.Organizer)
	}

	if event.Registration != nil {
		m.Registration = sql.NullInt16{Int16: int16(*event.Registration), Valid: true}
	}

	if event.CreatedBy != nil {
		m.CreatedBy = sql.NullString{String: event.CreatedBy.String(), Valid: true}
	}

	if event.Archived != nil {
		m.Archived = sql.NullInt64{Int64: mmodel.TimestampSeconds(*event.Archived), Valid: true}
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}

	return sql.NullString{String: s, Valid: true}
}
