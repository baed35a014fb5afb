package services

import (
	"testing"

	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeRole(t *testing.T) {
	scout := &mmodel.User{Email: "scout@example.com", Role: mmodel.RoleScout}

	assert.NoError(t, AuthorizeRole(scout, mmodel.RoleScout))
	assert.NoError(t, AuthorizeRole(scout, mmodel.RoleUser))

	err := AuthorizeRole(scout, mmodel.RoleAdmin)
	require.Error(t, err)
	assert.IsType(t, pkg.ForbiddenError{}, err)

	assert.Error(t, AuthorizeRole(nil, mmodel.RoleGuest))
}

func TestAuthorizeEditingOfTaggedEntry(t *testing.T) {
	moderatedByA := []*mmodel.OrganizationModeratedTag{
		{
			OrgID: "org-a",
			ModeratedTag: mmodel.ModeratedTag{
				Label:       "a",
				AllowAdd:    false,
				AllowRemove: false,
			},
		},
	}

	t.Run("adding a closed tag without ownership fails", func(t *testing.T) {
		_, err := AuthorizeEditingOfTaggedEntry(moderatedByA, nil, []string{"a"})
		require.Error(t, err)
		assert.IsType(t, pkg.ForbiddenError{}, err)
	})

	t.Run("removing a closed tag without ownership fails", func(t *testing.T) {
		_, err := AuthorizeEditingOfTaggedEntry(moderatedByA, []string{"a"}, nil)
		require.Error(t, err)
	})

	t.Run("the owner sees its own tags excluded from moderation", func(t *testing.T) {
		// The caller's organization is excluded from the moderated listing,
		// so its own tags pass.
		orgIDs, err := AuthorizeEditingOfTaggedEntry(nil, nil, []string{"a"})
		require.NoError(t, err)
		assert.Empty(t, orgIDs)
	})

	t.Run("unmoderated tags always pass", func(t *testing.T) {
		orgIDs, err := AuthorizeEditingOfTaggedEntry(moderatedByA, []string{"x"}, []string{"y"})
		require.NoError(t, err)
		assert.Empty(t, orgIDs)
	})
}

func TestAuthorizeEditingCollectsClearanceOrgs(t *testing.T) {
	moderated := []*mmodel.OrganizationModeratedTag{
		{
			OrgID: "org-a",
			ModeratedTag: mmodel.ModeratedTag{
				Label:            "a",
				AllowAdd:         true,
				AllowRemove:      true,
				RequireClearance: true,
			},
		},
		{
			OrgID: "org-b",
			ModeratedTag: mmodel.ModeratedTag{
				Label:            "b",
				AllowAdd:         true,
				AllowRemove:      true,
				RequireClearance: true,
			},
		},
		{
			OrgID: "org-c",
			ModeratedTag: mmodel.ModeratedTag{
				Label:       "c",
				AllowAdd:    true,
				AllowRemove: true,
			},
		},
	}

	orgIDs, err := AuthorizeEditingOfTaggedEntry(moderated, nil, []string{"a", "b", "c", "free"})
	require.NoError(t, err)

	assert.ElementsMatch(t, []mmodel.ID{"org-a", "org-b"}, orgIDs)
}

func TestAuthorizedTagsForEvent(t *testing.T) {
	org := &mmodel.Organization{
		ID: "org-a",
		ModeratedTags: []mmodel.ModeratedTag{
			{Label: "owned", AllowAdd: true, AllowRemove: true},
		},
	}

	t.Run("appends owned tags when missing", func(t *testing.T) {
		tags := AuthorizedTagsForEvent(org, []string{"music"})
		assert.Equal(t, []string{"music", "owned"}, tags)
	})

	t.Run("keeps tags when an owned tag is present", func(t *testing.T) {
		tags := AuthorizedTagsForEvent(org, []string{"owned", "music"})
		assert.Equal(t, []string{"owned", "music"}, tags)
	})

	t.Run("no organization", func(t *testing.T) {
		tags := AuthorizedTagsForEvent(nil, []string{"music"})
		assert.Equal(t, []string{"music"}, tags)
	})
}
