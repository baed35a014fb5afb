package mmodel

import (
	"fmt"
	"strings"
	"time"
)

// ReviewStatus is the moderation state of a place revision.
type ReviewStatus int

const (
	ReviewStatusRejected  ReviewStatus = -1
	ReviewStatusArchived  ReviewStatus = 0
	ReviewStatusCreated   ReviewStatus = 1
	ReviewStatusConfirmed ReviewStatus = 2
)

// ParseReviewStatus translates the persisted integer into the enum.
func ParseReviewStatus(v int) (ReviewStatus, error) {
	switch ReviewStatus(v) {
	case ReviewStatusRejected, ReviewStatusArchived, ReviewStatusCreated, ReviewStatusConfirmed:
		return ReviewStatus(v), nil
	default:
		return 0, fmt.Errorf("invalid review status: %d", v)
	}
}

// ParseReviewStatusString translates a textual status into the enum.
func ParseReviewStatusString(s string) (ReviewStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rejected":
		return ReviewStatusRejected, nil
	case "archived":
		return ReviewStatusArchived, nil
	case "created":
		return ReviewStatusCreated, nil
	case "confirmed":
		return ReviewStatusConfirmed, nil
	default:
		return 0, fmt.Errorf("invalid review status: %q", s)
	}
}

// String implements fmt.Stringer.
func (s ReviewStatus) String() string {
	switch s {
	case ReviewStatusRejected:
		return "rejected"
	case ReviewStatusArchived:
		return "archived"
	case ReviewStatusCreated:
		return "created"
	case ReviewStatusConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// Exists reports whether a place revision with this status is visible in
// default reads. Rejected and archived revisions are hidden.
func (s ReviewStatus) Exists() bool {
	return s > ReviewStatusArchived
}

// VisibleReviewStatuses is the default status set of queries.
func VisibleReviewStatuses() []ReviewStatus {
	return []ReviewStatus{ReviewStatusCreated, ReviewStatusConfirmed}
}

// ReviewStatusLog is one recorded transition of the review status of a
// place revision.
type ReviewStatusLog struct {
	Rev      Revision     `json:"rev"`
	Activity ActivityLog  `json:"activity"`
	Status   ReviewStatus `json:"status"`
}

// Review is a status transition requested by a reviewer.
type Review struct {
	ReviewerEmail EmailAddress
	Status        ReviewStatus
	Context       *string
	Comment       *string
}

// Address is a postal address. All fields are optional.
type Address struct {
	Street  string `json:"street,omitempty"`
	Zip     string `json:"zip,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
}

// IsEmpty reports whether every field is blank.
func (a Address) IsEmpty() bool {
	return strings.TrimSpace(a.Street) == "" &&
		strings.TrimSpace(a.Zip) == "" &&
		strings.TrimSpace(a.City) == "" &&
		strings.TrimSpace(a.Country) == "" &&
		strings.TrimSpace(a.State) == ""
}

// Location is a position with an optional postal address.
type Location struct {
	Pos     MapPoint `json:"pos"`
	Address *Address `json:"address,omitempty"`
}

// Contact describes how to reach the people behind an entry.
type Contact struct {
	Name  string        `json:"name,omitempty"`
	Email *EmailAddress `json:"email,omitempty"`
	Phone string        `json:"phone,omitempty"`
}

// IsEmpty reports whether the contact carries no information.
func (c Contact) IsEmpty() bool {
	return strings.TrimSpace(c.Name) == "" && c.Email == nil && strings.TrimSpace(c.Phone) == ""
}

// CustomLink is a user-defined link attached to a place revision.
type CustomLink struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Links collects the web links of a place.
type Links struct {
	Homepage  string       `json:"homepage,omitempty"`
	Image     string       `json:"image,omitempty"`
	ImageHref string       `json:"imageHref,omitempty"`
	Custom    []CustomLink `json:"custom,omitempty"`
}

// IsEmpty reports whether no link is set.
func (l Links) IsEmpty() bool {
	return l.Homepage == "" && l.Image == "" && l.ImageHref == "" && len(l.Custom) == 0
}

// PlaceRoot is the revision-independent part of a place. CurrentRev is the
// denormalized pointer used for optimistic concurrency.
type PlaceRoot struct {
	ID         ID       `json:"id"`
	License    string   `json:"license"`
	CurrentRev Revision `json:"currentRev"`
}

// PlaceRevision is one immutable version of a place.
type PlaceRevision struct {
	Revision     Revision   `json:"revision"`
	Created      Activity   `json:"created"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     Location   `json:"location"`
	Contact      *Contact   `json:"contact,omitempty"`
	OpeningHours *string    `json:"openingHours,omitempty"`
	FoundedOn    *time.Time `json:"foundedOn,omitempty"`
	Links        *Links     `json:"links,omitempty"`
	Tags         []string   `json:"tags"`
}

// Place merges the tuple (PlaceRoot, PlaceRevision) into a single flat struct.
type Place struct {
	ID           ID         `json:"id"`
	License      string     `json:"license"`
	Revision     Revision   `json:"revision"`
	Created      Activity   `json:"created"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Location     Location   `json:"location"`
	Contact      *Contact   `json:"contact,omitempty"`
	OpeningHours *string    `json:"openingHours,omitempty"`
	FoundedOn    *time.Time `json:"foundedOn,omitempty"`
	Links        *Links     `json:"links,omitempty"`
	Tags         []string   `json:"tags"`
}

// Root extracts the revision-independent part.
func (p *Place) Root() PlaceRoot {
	return PlaceRoot{ID: p.ID, License: p.License, CurrentRev: p.Revision}
}

// PlaceRev extracts the revisioned part.
func (p *Place) PlaceRev() PlaceRevision {
	return PlaceRevision{
		Revision:     p.Revision,
		Created:      p.Created,
		Title:        p.Title,
		Description:  p.Description,
		Location:     p.Location,
		Contact:      p.Contact,
		OpeningHours: p.OpeningHours,
		FoundedOn:    p.FoundedOn,
		Links:        p.Links,
		Tags:         p.Tags,
	}
}

// PlaceWithStatus pairs a place with the current review status of its
// revision.
type PlaceWithStatus struct {
	Place  Place        `json:"place"`
	Status ReviewStatus `json:"status"`
}

// PlaceHistory is the full audit trail of a place: every revision together
// with all review records of that revision.
type PlaceHistory struct {
	Root      PlaceRoot
	Revisions []PlaceRevisionWithLogs
}

// PlaceRevisionWithLogs pairs one revision with its review records,
// ordered newest first.
type PlaceRevisionWithLogs struct {
	Revision   PlaceRevision
	ReviewLogs []ReviewStatusLog
}

// CreatePlaceInput is the payload for creating a place.
type CreatePlaceInput struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
	Street        *string  `json:"street,omitempty"`
	Zip           *string  `json:"zip,omitempty"`
	City          *string  `json:"city,omitempty"`
	Country       *string  `json:"country,omitempty"`
	State         *string  `json:"state,omitempty"`
	ContactName   *string  `json:"contactName,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Telephone     *string  `json:"telephone,omitempty"`
	Homepage      *string  `json:"homepage,omitempty"`
	OpeningHours  *string  `json:"openingHours,omitempty"`
	FoundedOn     *string  `json:"foundedOn,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	License       string   `json:"license"`
	ImageURL      *string  `json:"imageUrl,omitempty"`
	ImageLinkURL  *string  `json:"imageLinkUrl,omitempty"`
	CustomLinks   []CustomLink `json:"links,omitempty"`
}

// UpdatePlaceInput is the payload for updating a place. Version must be the
// successor of the current revision.
type UpdatePlaceInput struct {
	Version      uint64   `json:"version"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Lat          float64  `json:"lat"`
	Lng          float64  `json:"lng"`
	Street       *string  `json:"street,omitempty"`
	Zip          *string  `json:"zip,omitempty"`
	City         *string  `json:"city,omitempty"`
	Country      *string  `json:"country,omitempty"`
	State        *string  `json:"state,omitempty"`
	ContactName  *string  `json:"contactName,omitempty"`
	Email        *string  `json:"email,omitempty"`
	Telephone    *string  `json:"telephone,omitempty"`
	Homepage     *string  `json:"homepage,omitempty"`
	OpeningHours *string  `json:"openingHours,omitempty"`
	FoundedOn    *string  `json:"foundedOn,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Tags         []string `json:"tags,omitempty"`
	ImageURL     *string  `json:"imageUrl,omitempty"`
	ImageLinkURL *string  `json:"imageLinkUrl,omitempty"`
	CustomLinks  []CustomLink `json:"links,omitempty"`
}
