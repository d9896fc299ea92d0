package generator

import (
	"testing"

	"github.com/safedocs/seeder/internal/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRoles(t *testing.T) {
	roles := newTestGenerator(Config{}, 1).generateRoles()

	require.Len(t, roles, 4)
	assert.Equal(t, "Admin", roles[0].Name)
	assert.Equal(t, "Editor", roles[1].Name)
	assert.Equal(t, "Viewer", roles[2].Name)
	assert.Equal(t, "Commenter", roles[3].Name)
	for i, role := range roles {
		assert.Equal(t, i+1, role.ID)
		assert.NotEmpty(t, role.Description)
	}
}

func TestGeneratePolicies(t *testing.T) {
	policies := newTestGenerator(Config{}, 1).generatePolicies()

	require.Len(t, policies, 10)
	assert.Equal(t, "Confidentiality Level I", policies[0].LevelName)
	assert.Equal(t, "Confidentiality Level IV", policies[3].LevelName)
	assert.Equal(t, "Confidentiality Level X", policies[9].LevelName)

	for _, p := range policies {
		switch {
		case p.ID <= 3:
			assert.Equal(t, models.RoleViewer, p.MaxAllowedRoleID, "level %d", p.ID)
		case p.ID <= 7:
			assert.Equal(t, models.RoleEditor, p.MaxAllowedRoleID, "level %d", p.ID)
		default:
			assert.Equal(t, models.RoleAdmin, p.MaxAllowedRoleID, "level %d", p.ID)
		}
		assert.NotEmpty(t, p.Description)
	}
}

func TestGenerateTags(t *testing.T) {
	gen := newTestGenerator(Config{}, 1)
	tags := gen.generateTags()

	require.Len(t, tags, 7)
	names := make(map[string]string, len(tags))
	for i, tag := range tags {
		assert.Equal(t, i+1, tag.ID)
		names[tag.Name] = tag.Category
		assert.False(t, tag.CreatedAt.After(testNow))
		assert.False(t, tag.CreatedAt.Before(testNow.AddDate(-2, 0, 0)))
	}
	assert.Equal(t, "Compliance", names["Legal"])
	assert.Equal(t, "Finance", names["Invoice"])
	assert.Equal(t, "Internal", names["Draft"])
}
