package services

import (
	"reflect"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// AuthorizeRole checks that the user holds at least the given role.
func AuthorizeRole(user *mmodel.User, minRole mmodel.Role) error {
	if user == nil || user.Role < minRole {
		return pkg.ValidateBusinessError(constant.ErrInsufficientPrivilege, reflect.TypeOf(mmodel.User{}).Name())
	}

	return nil
}

// AuthorizeEditingOfTaggedEntry applies the tag-ownership rules to an edit of
// a tagged entry.
//
// moderated lists the moderated tags of every organization except the
// caller's. Adding a tag whose moderator disallows adds, or removing one
// whose moderator disallows removes, is rejected. The returned org ids are
// the moderators requiring clearance for tags surviving on the entry.
func AuthorizeEditingOfTaggedEntry(moderated []*mmodel.OrganizationModeratedTag, oldTags, newTags []string) ([]mmodel.ID, error) {
	byLabel := make(map[string]*mmodel.OrganizationModeratedTag, len(moderated))
	for _, pair := range moderated {
		byLabel[pair.ModeratedTag.Label] = pair
	}

	diff := mmodel.DiffTags(oldTags, newTags)

	for _, tag := range diff.Added {
		if pair, ok := byLabel[tag]; ok && !pair.ModeratedTag.AllowAdd {
			return nil, pkg.ValidateBusinessError(constant.ErrModeratedTag, reflect.TypeOf(mmodel.Place{}).Name(), tag)
		}
	}

	for _, tag := range diff.Removed {
		if pair, ok := byLabel[tag]; ok && !pair.ModeratedTag.AllowRemove {
			return nil, pkg.ValidateBusinessError(constant.ErrModeratedTag, reflect.TypeOf(mmodel.Place{}).Name(), tag)
		}
	}

	seen := make(map[mmodel.ID]struct{})

	var clearanceOrgIDs []mmodel.ID

	for _, tag := range newTags {
		pair, ok := byLabel[tag]
		if !ok || !pair.ModeratedTag.RequireClearance {
			continue
		}

		if _, dup := seen[pair.OrgID]; dup {
			continue
		}

		seen[pair.OrgID] = struct{}{}

		clearanceOrgIDs = append(clearanceOrgIDs, pair.OrgID)
	}

	return clearanceOrgIDs, nil
}

// AuthorizedTagsForEvent implicitly appends the moderated tags of the owning
// organization when none of them is present, so the stored event stays owned.
func AuthorizedTagsForEvent(org *mmodel.Organization, tags []string) []string {
	if org == nil || len(org.ModeratedTags) == 0 {
		return tags
	}

	present := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		present[tag] = struct{}{}
	}

	for _, moderated := range org.ModeratedTags {
		if _, ok := present[moderated.Label]; ok {
			return tags
		}
	}

	owned := make([]string, 0, len(tags)+len(org.ModeratedTags))
	owned = append(owned, tags...)

	for _, moderated := range org.ModeratedTags {
		owned = append(owned, moderated.Label)
	}

	return mmodel.PrepareTagList(owned)
}
