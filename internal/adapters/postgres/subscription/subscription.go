package subscription

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// Repository provides an interface for operations related to bbox subscriptions.
//
//go:generate mockgen --destination=subscription.mock.go --package=subscription . Repository
type Repository interface {
	CreateBboxSubscription(ctx context.Context, sub *mmodel.BboxSubscription) error
	AllBboxSubscriptions(ctx context.Context) ([]*mmodel.BboxSubscription, error)
	BboxSubscriptionsByEmail(ctx context.Context, email mmodel.EmailAddress) ([]*mmodel.BboxSubscription, error)
	DeleteBboxSubscriptionsByEmail(ctx context.Context, email mmodel.EmailAddress) (uint64, error)
}

// BboxSubscriptionPostgreSQLModel represents the entity BboxSubscription into SQL context in Database.
type BboxSubscriptionPostgreSQLModel struct {
	ID           string
	UserEmail    string
	SouthWestLat float64
	SouthWestLng float64
	NorthEastLat float64
	NorthEastLng float64
}

// ToEntity converts a BboxSubscriptionPostgreSQLModel to an entity mmodel.BboxSubscription.
func (m *BboxSubscriptionPostgreSQLModel) ToEntity() *mmodel.BboxSubscription {
	bbox, _ := mmodel.NewMapBbox(m.SouthWestLat, m.SouthWestLng, m.NorthEastLat, m.NorthEastLng)

	return &mmodel.BboxSubscription{
		ID:        mmodel.ID(m.ID),
		UserEmail: mmodel.EmailAddress(m.UserEmail),
		Bbox:      bbox,
	}
}

// FromEntity converts an entity mmodel.BboxSubscription to a BboxSubscriptionPostgreSQLModel.
func (m *BboxSubscriptionPostgreSQLModel) FromEntity(sub *mmodel.BboxSubscription) {
	*m = BboxSubscriptionPostgreSQLModel{
		ID:           sub.ID.String(),
		UserEmail:    sub.UserEmail.String(),
		SouthWestLat: sub.Bbox.SouthWest.Lat,
		SouthWestLng: sub.Bbox.SouthWest.Lng,
		NorthEastLat: sub.Bbox.NorthEast.Lat,
		NorthEastLng: sub.Bbox.NorthEast.Lng,
	}
}
