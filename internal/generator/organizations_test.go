package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailSuffix(t *testing.T) {
	assert.Equal(t, "mer.com", emailSuffix("Meridian Group"))
	assert.Equal(t, "atl.com", emailSuffix("Atlas Holdings"))
	assert.Equal(t, "ab.com", emailSuffix("AB"))
}

func TestGenerateOrganizations(t *testing.T) {
	gen := newTestGenerator(Config{Organizations: 10}, 21)
	orgs := gen.generateOrganizations()

	require.Len(t, orgs, 10)
	validTypes := map[string]bool{"Legal": true, "Finance": true, "Academic": true, "Tech": true}
	for i, org := range orgs {
		assert.Equal(t, i+1, org.ID)
		assert.NotEmpty(t, org.Name)
		assert.NotEmpty(t, org.Address)
		assert.True(t, validTypes[org.Type], "unexpected org type %q", org.Type)
		assert.True(t, org.CreatedAt.Before(testNow.AddDate(-1, 0, 0)),
			"org %d must be at least a year old", org.ID)
		assert.False(t, org.CreatedAt.Before(testNow.AddDate(-20, 0, 0)),
			"org %d older than twenty years", org.ID)
	}
}

func TestGenerateUsers(t *testing.T) {
	gen := newTestGenerator(Config{Organizations: 4, Users: 50}, 21)
	orgs := gen.generateOrganizations()
	roles := gen.generateRoles()
	users := gen.generateUsers(orgs, roles)

	require.Len(t, users, 50)
	for i, u := range users {
		assert.Equal(t, i+1, u.ID)
		assert.GreaterOrEqual(t, u.Age, 22)
		assert.LessOrEqual(t, u.Age, 65)
		assert.GreaterOrEqual(t, u.RoleID, 1)
		assert.LessOrEqual(t, u.RoleID, 4)
		assert.GreaterOrEqual(t, u.OrganizationID, 1)
		assert.LessOrEqual(t, u.OrganizationID, 4)
		assert.Regexp(t, `^\d{3}-\d{3}-\d{4}$`, u.Phone)
		assert.Contains(t, []string{"Active", "Suspended", "Pending"}, string(u.Status))
	}
}
