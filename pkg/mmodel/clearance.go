package mmodel

import "time"

// PendingClearanceForPlace records that an organization has not yet approved
// the current revision of a place bearing one of its moderated tags.
// At most one row exists per (organization, place).
type PendingClearanceForPlace struct {
	PlaceID             ID        `json:"placeId"`
	CreatedAt           time.Time `json:"createdAt"`
	LastClearedRevision *Revision `json:"lastClearedRevision,omitempty"`
}

// ClearanceForPlace is a clearance update requested by an organization.
// A nil ClearedRevision stamps the place's current revision.
type ClearanceForPlace struct {
	PlaceID         ID        `json:"placeId"`
	ClearedRevision *Revision `json:"clearedRevision,omitempty"`
}
