package clearance

import (
	"context"
	"database/sql"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// Repository provides an interface for operations related to per-organization
// place clearances.
//
//go:generate mockgen --destination=clearance.mock.go --package=clearance . Repository
type Repository interface {
	AddPendingClearanceForPlaces(ctx context.Context, orgIDs []mmodel.ID, pending *mmodel.PendingClearanceForPlace) (uint64, error)
	CountPendingClearancesForPlaces(ctx context.Context, orgID mmodel.ID) (uint64, error)
	ListPendingClearancesForPlaces(ctx context.Context, orgID mmodel.ID, pagination http.Pagination) ([]*mmodel.PendingClearanceForPlace, error)
	UpdatePendingClearancesForPlaces(ctx context.Context, orgID mmodel.ID, clearances []mmodel.ClearanceForPlace) (uint64, error)
	CleanupPendingClearancesForPlaces(ctx context.Context, orgID mmodel.ID) (uint64, error)
}

// PendingClearancePostgreSQLModel represents the entity
// PendingClearanceForPlace into SQL context in Database.
type PendingClearancePostgreSQLModel struct {
	OrgID               string
	PlaceID             string
	CreatedAt           int64
	LastClearedRevision sql.NullInt64
}

// ToEntity converts a PendingClearancePostgreSQLModel to an entity
// mmodel.PendingClearanceForPlace.
func (m *PendingClearancePostgreSQLModel) ToEntity() *mmodel.PendingClearanceForPlace {
	pending := &mmodel.PendingClearanceForPlace{
		PlaceID:   mmodel.ID(m.PlaceID),
		CreatedAt: mmodel.TimeFromMillis(m.CreatedAt),
	}

	if m.LastClearedRevision.Valid {
		rev := mmodel.Revision(m.LastClearedRevision.Int64)
		pending.LastClearedRevision = &rev
	}

	return pending
}
