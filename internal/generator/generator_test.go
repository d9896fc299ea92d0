package generator

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/safedocs/seeder/internal/db/models"
	"github.com/safedocs/seeder/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(cfg Config, seed int64) *Generator {
	return New(cfg, seed, testNow, zap.NewNop(), metrics.NewMetricsCollector())
}

func TestGenerate_invariants(t *testing.T) {
	gen := newTestGenerator(Config{Organizations: 5, Users: 80, Documents: 150}, 42)
	ds := gen.Generate()

	require.Len(t, ds.Roles, 4)
	require.Len(t, ds.Policies, 10)
	require.Len(t, ds.Tags, 7)
	require.Len(t, ds.Organizations, 5)
	require.Len(t, ds.Users, 80)
	require.Len(t, ds.Documents, 150)

	docByID := make(map[int]models.Document)
	for _, d := range ds.Documents {
		docByID[d.ID] = d
	}
	userByID := make(map[int]models.User)
	for _, u := range ds.Users {
		userByID[u.ID] = u
	}
	orgByID := make(map[int]models.Organization)
	for _, o := range ds.Organizations {
		orgByID[o.ID] = o
	}
	maxRoleByLevel := make(map[string]int)
	for _, p := range ds.Policies {
		maxRoleByLevel[p.LevelName] = p.MaxAllowedRoleID
	}

	t.Run("UsersShareOrganizationEmailDomain", func(t *testing.T) {
		for _, u := range ds.Users {
			org, ok := orgByID[u.OrganizationID]
			require.True(t, ok, "user %d references unknown organization", u.ID)
			assert.True(t, strings.HasSuffix(u.Email, "@"+emailSuffix(org.Name)),
				"user %d email %q does not match organization domain", u.ID, u.Email)
		}
	})

	t.Run("DocumentTimestampsStrictlyOrdered", func(t *testing.T) {
		for _, d := range ds.Documents {
			assert.True(t, d.LastModifiedAt.After(d.CreatedAt),
				"doc %d: last_modified_at must be strictly after created_at", d.ID)
		}
	})

	t.Run("DocumentOrganizationMatchesOwner", func(t *testing.T) {
		for _, d := range ds.Documents {
			owner, ok := userByID[d.OwnerUserID]
			require.True(t, ok, "doc %d references unknown owner", d.ID)
			assert.Equal(t, owner.OrganizationID, d.OrganizationID)
			assert.Equal(t, fmt.Sprintf("/secure/storage/doc_%d.pdf", d.ID), d.Path)
		}
	})

	t.Run("PermissionKeysGloballyUnique", func(t *testing.T) {
		seen := make(map[permissionKey]bool)
		for _, p := range ds.Permissions {
			key := permissionKey{DocID: p.DocID, UserID: p.UserID, Access: p.AccessType}
			assert.False(t, seen[key], "duplicate permission key %+v", key)
			seen[key] = true
		}
	})

	t.Run("PermissionIDsDense", func(t *testing.T) {
		for i, p := range ds.Permissions {
			assert.Equal(t, i+1, p.ID)
		}
	})

	t.Run("OwnerHoldsEditGrantAtCreation", func(t *testing.T) {
		ownerEdit := make(map[int]models.Permission)
		for _, p := range ds.Permissions {
			if p.AccessType == models.AccessEdit && p.UserID == docByID[p.DocID].OwnerUserID {
				ownerEdit[p.DocID] = p
			}
		}
		for _, d := range ds.Documents {
			grant, ok := ownerEdit[d.ID]
			require.True(t, ok, "doc %d missing owner edit grant", d.ID)
			assert.True(t, grant.GrantedAt.Equal(d.CreatedAt),
				"doc %d owner grant not at created_at", d.ID)
		}
	})

	t.Run("PermissionsRespectPolicyAndOrganization", func(t *testing.T) {
		for _, p := range ds.Permissions {
			doc := docByID[p.DocID]
			grantee := userByID[p.UserID]
			assert.False(t, p.GrantedAt.Before(doc.CreatedAt),
				"perm %d granted before document creation", p.ID)
			if p.UserID == doc.OwnerUserID {
				continue
			}
			assert.Equal(t, doc.OrganizationID, grantee.OrganizationID,
				"perm %d grantee outside document organization", p.ID)
			assert.LessOrEqual(t, grantee.RoleID, maxRoleByLevel[doc.ConfidentialityLevel],
				"perm %d grantee role not eligible for %s", p.ID, doc.ConfidentialityLevel)
		}
	})

	t.Run("LogsCoveredByPermissions", func(t *testing.T) {
		granted := make(map[permissionKey]bool)
		for _, p := range ds.Permissions {
			granted[permissionKey{DocID: p.DocID, UserID: p.UserID, Access: p.AccessType}] = true
		}

		for _, entry := range ds.Logs {
			doc := docByID[entry.DocID]
			assert.False(t, entry.ActionTimestamp.Before(doc.CreatedAt),
				"log %d predates document creation", entry.ID)
			assert.Equal(t, doc.OrganizationID, userByID[entry.UserID].OrganizationID)

			covered := false
			for access, actions := range actionMenu {
				if !granted[permissionKey{DocID: entry.DocID, UserID: entry.UserID, Access: access}] {
					continue
				}
				for _, action := range actions {
					if action == entry.Action {
						covered = true
					}
				}
			}
			assert.True(t, covered, "log %d action %s not covered by any grant", entry.ID, entry.Action)
		}
	})

	t.Run("VersionsNumberedChronologically", func(t *testing.T) {
		perDoc := make(map[int][]models.Version)
		for i, v := range ds.Versions {
			assert.Equal(t, i+1, v.ID, "version ids must follow global modified_at order")
			if i > 0 {
				assert.False(t, v.ModifiedAt.Before(ds.Versions[i-1].ModifiedAt),
					"versions not globally sorted at index %d", i)
			}
			perDoc[v.DocID] = append(perDoc[v.DocID], v)
		}

		for _, d := range ds.Documents {
			versions := perDoc[d.ID]
			require.GreaterOrEqual(t, len(versions), 2, "doc %d must have at least 2 versions", d.ID)
			for i, v := range versions {
				assert.Equal(t, i+1, v.VersionNumber, "doc %d version numbering has gaps", d.ID)
				assert.False(t, v.ModifiedAt.Before(d.CreatedAt))
				assert.False(t, v.ModifiedAt.After(d.LastModifiedAt))
			}
			assert.True(t, versions[0].ModifiedAt.Equal(d.CreatedAt))
			assert.True(t, versions[len(versions)-1].ModifiedAt.Equal(d.LastModifiedAt))
		}
	})

	t.Run("VersionAttributionHasEditAccess", func(t *testing.T) {
		editors := make(map[int]map[int]bool)
		for _, p := range ds.Permissions {
			if p.AccessType != models.AccessEdit {
				continue
			}
			if editors[p.DocID] == nil {
				editors[p.DocID] = make(map[int]bool)
			}
			editors[p.DocID][p.UserID] = true
		}

		for _, v := range ds.Versions {
			doc := docByID[v.DocID]
			if v.ModifiedByUserID == doc.OwnerUserID {
				continue
			}
			assert.True(t, editors[v.DocID][v.ModifiedByUserID],
				"version %d attributed to user %d without edit access", v.ID, v.ModifiedByUserID)
		}
	})

	t.Run("PasswordProtectionOneToOne", func(t *testing.T) {
		byDoc := make(map[int]models.PasswordProtection)
		for _, row := range ds.Passwords {
			_, dup := byDoc[row.DocID]
			require.False(t, dup, "doc %d has multiple protection rows", row.DocID)
			byDoc[row.DocID] = row
		}

		for _, d := range ds.Documents {
			row, ok := byDoc[d.ID]
			assert.Equal(t, d.IsPasswordProtected, ok,
				"doc %d protection row presence must match flag", d.ID)
			if ok {
				assert.Len(t, row.PasswordHash, 60)
				assert.Equal(t, "AES-256", row.EncryptionMethod)
			}
		}
	})

	t.Run("DocumentTagsUniqueAndBounded", func(t *testing.T) {
		perDoc := make(map[int]int)
		seen := make(map[docTagKey]bool)
		for _, dt := range ds.DocumentTags {
			key := docTagKey{DocID: dt.DocID, TagID: dt.TagID}
			assert.False(t, seen[key], "duplicate document tag %+v", key)
			seen[key] = true
			perDoc[dt.DocID]++
			assert.Equal(t, docByID[dt.DocID].OrganizationID, dt.OrganizationID)
		}
		for _, d := range ds.Documents {
			assert.GreaterOrEqual(t, perDoc[d.ID], 1, "doc %d has no tags", d.ID)
			assert.LessOrEqual(t, perDoc[d.ID], 3, "doc %d has too many tags", d.ID)
		}
	})
}

func TestGenerate_reproducibleUnderSeed(t *testing.T) {
	cfg := Config{Organizations: 3, Users: 30, Documents: 40}

	first := newTestGenerator(cfg, 7).Generate()
	second := newTestGenerator(cfg, 7).Generate()

	assert.Equal(t, first.Organizations, second.Organizations)
	assert.Equal(t, first.Users, second.Users)
	assert.Equal(t, first.Documents, second.Documents)
	assert.Equal(t, first.Permissions, second.Permissions)
	assert.Equal(t, first.Logs, second.Logs)
	assert.Equal(t, first.Versions, second.Versions)
	assert.Equal(t, first.DocumentTags, second.DocumentTags)
}
