package generator

import (
	"github.com/safedocs/seeder/internal/db/models"
	"github.com/safedocs/seeder/internal/fake"
	"go.uber.org/zap"
)

// actionMenu lists the audit actions an access type covers. Access types
// outside the menu produce no log entry.
var actionMenu = map[models.AccessType][]models.ActionType{
	models.AccessView:   {models.ActionView, models.ActionDownload},
	models.AccessEdit:   {models.ActionView, models.ActionDownload, models.ActionUpload},
	models.AccessDelete: {models.ActionView, models.ActionDownload, models.ActionUpload, models.ActionDelete},
}

// generateLogs emits 1-5 audit entries per document that has at least one
// permission. Each entry replays an existing grant, so every log row is
// covered by a permission on the same (user, doc) pair.
func (g *Generator) generateLogs(docs []models.Document, users []models.User, perms []models.Permission) []models.Log {
	permsByDoc := make(map[int][]models.Permission)
	for _, p := range perms {
		permsByDoc[p.DocID] = append(permsByDoc[p.DocID], p)
	}

	orgByUser := make(map[int]int, len(users))
	for _, u := range users {
		orgByUser[u.ID] = u.OrganizationID
	}

	ids := &idAllocator{}
	logs := make([]models.Log, 0, len(docs)*3)

	for _, doc := range docs {
		docPerms := permsByDoc[doc.ID]
		if len(docPerms) == 0 {
			continue
		}

		entries := g.rng.Intn(5) + 1
		for j := 0; j < entries; j++ {
			perm, _ := pickOne(g.rng, docPerms)

			// Upstream generation guarantees grantees belong to the
			// document's organization; a mismatch here means a generator bug,
			// so it is reported loudly rather than silently dropped.
			if orgByUser[perm.UserID] != doc.OrganizationID {
				g.logger.Error("Invariant violation: permission holder outside document organization",
					zap.Int("doc_id", doc.ID),
					zap.Int("user_id", perm.UserID),
					zap.Int("doc_org", doc.OrganizationID),
					zap.Int("user_org", orgByUser[perm.UserID]))
				g.metrics.IncrementCounter("log_org_mismatch", nil)
				continue
			}

			menu, ok := actionMenu[perm.AccessType]
			if !ok {
				continue
			}
			action := menu[g.rng.Intn(len(menu))]

			logs = append(logs, models.Log{
				ID:              ids.next(),
				UserID:          perm.UserID,
				DocID:           doc.ID,
				Action:          action,
				ActionTimestamp: timeBetween(g.rng, doc.CreatedAt, g.now),
				IPAddress:       fake.IPv4(g.rng),
			})
		}
	}

	g.countRows("logs", len(logs))
	return logs
}
