package generator

import (
	"github.com/safedocs/seeder/internal/db/models"
	"go.uber.org/zap"
)

type permissionKey struct {
	DocID  int
	UserID int
	Access models.AccessType
}

// generatePermissions emits, per document, the mandatory owner Edit grant
// followed by 1-3 supplementary grants drawn from the document
// organization's role-eligible user pool. The (doc, user, access) triple is
// unique across the entire run, enforced by a single registry that is never
// reset between documents.
func (g *Generator) generatePermissions(docs []models.Document, users []models.User, policies []models.Policy) []models.Permission {
	maxRoleByLevel := make(map[string]int, len(policies))
	for _, p := range policies {
		maxRoleByLevel[p.LevelName] = p.MaxAllowedRoleID
	}

	usersByOrg := make(map[int][]models.User)
	for _, u := range users {
		usersByOrg[u.OrganizationID] = append(usersByOrg[u.OrganizationID], u)
	}

	registry := newKeySet[permissionKey]()
	ids := &idAllocator{}
	perms := make([]models.Permission, 0, len(docs)*3)

	for _, doc := range docs {
		// Phase A: the owner's Edit grant, timestamped at document creation.
		// Each document is processed once so the key cannot collide today;
		// the registry check keeps that true if key reuse is ever introduced.
		ownerKey := permissionKey{DocID: doc.ID, UserID: doc.OwnerUserID, Access: models.AccessEdit}
		if registry.add(ownerKey) {
			perms = append(perms, models.Permission{
				ID:         ids.next(),
				DocID:      doc.ID,
				UserID:     doc.OwnerUserID,
				AccessType: models.AccessEdit,
				GrantedAt:  doc.CreatedAt,
			})
		}

		// Phase B: supplementary grants, restricted to users of the
		// document's organization whose role is privileged enough for its
		// confidentiality tier (lower role id = more privilege, hence <=).
		maxRole := maxRoleByLevel[doc.ConfidentialityLevel]
		var eligible []models.User
		for _, u := range usersByOrg[doc.OrganizationID] {
			if u.RoleID <= maxRole {
				eligible = append(eligible, u)
			}
		}
		if len(eligible) == 0 {
			g.metrics.IncrementCounter("empty_permission_pool", nil)
			continue
		}

		extra := g.rng.Intn(3) + 1
		for j := 0; j < extra; j++ {
			user, _ := pickOne(g.rng, eligible)
			access := g.accessForRole(user.RoleID)

			key := permissionKey{DocID: doc.ID, UserID: user.ID, Access: access}
			if !registry.add(key) {
				g.metrics.IncrementCounter("duplicate_permission_key", nil)
				continue
			}

			perms = append(perms, models.Permission{
				ID:         ids.next(),
				DocID:      doc.ID,
				UserID:     user.ID,
				AccessType: access,
				GrantedAt:  timeBetween(g.rng, doc.CreatedAt, g.now),
			})
		}
	}

	g.countRows("permissions", len(perms))
	g.logger.Debug("Permissions generated", zap.Int("count", len(perms)))
	return perms
}

// accessForRole maps a grantee's role to the access it may be granted:
// admins can receive any access, editors View or Edit, everyone else View.
func (g *Generator) accessForRole(roleID int) models.AccessType {
	switch roleID {
	case models.RoleAdmin:
		choices := []models.AccessType{models.AccessView, models.AccessEdit, models.AccessDelete}
		return choices[g.rng.Intn(len(choices))]
	case models.RoleEditor:
		choices := []models.AccessType{models.AccessView, models.AccessEdit}
		return choices[g.rng.Intn(len(choices))]
	default:
		return models.AccessView
	}
}
