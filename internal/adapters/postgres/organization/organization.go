package organization

import (
	"context"

	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// Repository provides an interface for operations related to organization entities.
//
//go:generate mockgen --destination=organization.mock.go --package=organization . Repository
type Repository interface {
	CreateOrganization(ctx context.Context, org *mmodel.Organization) error
	GetOrganizationByAPIToken(ctx context.Context, token string) (*mmodel.Organization, error)
	MapTagToClearanceOrganization(ctx context.Context, tag string) (*mmodel.Organization, error)
	GetModeratedTagsByOrganization(ctx context.Context, orgID mmodel.ID) ([]mmodel.ModeratedTag, error)
	ListModeratedTags(ctx context.Context, excludedOrgID *mmodel.ID) ([]*mmodel.OrganizationModeratedTag, error)
}

// OrganizationPostgreSQLModel represents the entity Organization into SQL context in Database.
type OrganizationPostgreSQLModel struct {
	ID       string
	Name     string
	APIToken string
}

// ToEntity converts an OrganizationPostgreSQLModel plus its moderated-tag
// rows to an entity mmodel.Organization.
func (m *OrganizationPostgreSQLModel) ToEntity(tags []mmodel.ModeratedTag) *mmodel.Organization {
	return &mmodel.Organization{
		ID:            mmodel.ID(m.ID),
		Name:          m.Name,
		APIToken:      m.APIToken,
		ModeratedTags: tags,
	}
}

// FromEntity converts an entity mmodel.Organization to an OrganizationPostgreSQLModel.
func (m *OrganizationPostgreSQLModel) FromEntity(org *mmodel.Organization) {
	*m = OrganizationPostgreSQLModel{
		ID:       org.ID.String(),
		Name:     org.Name,
		APIToken: org.APIToken,
	}
}
