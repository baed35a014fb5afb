package mmodel

// ModeratedTag is a tag whose usage is restricted to one organization.
//
// For any tag label at most one organization may restrict adding or
// removing, or require clearance.
type ModeratedTag struct {
	Label            string `json:"label"`
	AllowAdd         bool   `json:"allowAdd"`
	AllowRemove      bool   `json:"allowRemove"`
	RequireClearance bool   `json:"requireClearance"`
}

// Organization holds an API token and a set of moderated tags.
type Organization struct {
	ID            ID             `json:"id"`
	Name          string         `json:"name"`
	APIToken      string         `json:"-"`
	ModeratedTags []ModeratedTag `json:"moderatedTags"`
}

// ModeratedTagsByLabel indexes the moderated tags of the organization.
func (o *Organization) ModeratedTagsByLabel() map[string]ModeratedTag {
	m := make(map[string]ModeratedTag, len(o.ModeratedTags))
	for _, t := range o.ModeratedTags {
		m[t.Label] = t
	}

	return m
}

// OrganizationModeratedTag pairs an organization id with one of its
// moderated tags.
type OrganizationModeratedTag struct {
	OrgID        ID           `json:"orgId"`
	ModeratedTag ModeratedTag `json:"moderatedTag"`
}
