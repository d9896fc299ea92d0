package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/safedocs/seeder/internal/db/models"
	"github.com/safedocs/seeder/internal/fake"
)

var docNameSuffixes = []string{"_Report", "", " Doc", "-Presentation", " data", "_lecture", "_brief", "Deck"}

func (g *Generator) generateDocuments(users []models.User, policies []models.Policy) []models.Document {
	docs := make([]models.Document, 0, g.cfg.Documents)
	for i := 1; i <= g.cfg.Documents; i++ {
		// Owner sampled with replacement; the document inherits the owner's
		// organization rather than choosing one independently.
		owner, ok := pickOne(g.rng, users)
		if !ok {
			break
		}
		policy, _ := pickOne(g.rng, policies)

		createdAt := timeBetween(g.rng, g.now.AddDate(-1, 0, 0), g.now.AddDate(0, -1, 0))

		// Day offset is at least 1 and the clock components are re-rolled, so
		// LastModifiedAt lands strictly after CreatedAt.
		lastModified := createdAt.
			AddDate(0, 0, g.rng.Intn(30)+1).
			Add(time.Duration(g.rng.Intn(24))*time.Hour +
				time.Duration(g.rng.Intn(60))*time.Minute +
				time.Duration(g.rng.Intn(60))*time.Second)

		word := fake.Word(g.rng)
		name := strings.ToUpper(word[:1]) + word[1:] + docNameSuffixes[g.rng.Intn(len(docNameSuffixes))] + ".pdf"

		docs = append(docs, models.Document{
			ID:                   i,
			Name:                 name,
			Size:                 g.rng.Intn(14501) + 500,
			PageCount:            g.rng.Intn(100) + 1,
			Path:                 fmt.Sprintf("/secure/storage/doc_%d.pdf", i),
			ConfidentialityLevel: policy.LevelName,
			IsPasswordProtected:  g.rng.Intn(2) == 1,
			OwnerUserID:          owner.ID,
			OrganizationID:       owner.OrganizationID,
			CreatedAt:            createdAt,
			LastModifiedAt:       lastModified,
		})
	}
	g.countRows("documents", len(docs))
	return docs
}
