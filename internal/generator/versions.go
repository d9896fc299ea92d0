package generator

import (
	"sort"

	"github.com/safedocs/seeder/internal/db/models"
	"github.com/safedocs/seeder/internal/fake"
)

// generateVersions emits two mandatory revisions per document (at CreatedAt
// and LastModifiedAt) plus, for ~40% of documents, 1-3 extras strictly
// between those timestamps. Emission order is not chronological; ids and
// per-document sequence numbers are assigned by finalizeVersions.
func (g *Generator) generateVersions(docs []models.Document, perms []models.Permission) []models.Version {
	editorsByDoc := make(map[int][]int)
	for _, p := range perms {
		if p.AccessType == models.AccessEdit {
			editorsByDoc[p.DocID] = append(editorsByDoc[p.DocID], p.UserID)
		}
	}

	// modifier attributes a revision to a random Edit-permission holder,
	// falling back to the owner when the pool is empty.
	modifier := func(doc models.Document) int {
		if userID, ok := pickOne(g.rng, editorsByDoc[doc.ID]); ok {
			return userID
		}
		return doc.OwnerUserID
	}

	versions := make([]models.Version, 0, len(docs)*2)
	for _, doc := range docs {
		versions = append(versions, models.Version{
			DocID:            doc.ID,
			ModifiedByUserID: modifier(doc),
			ModifiedAt:       doc.CreatedAt,
			ChangeSummary:    "Initial version",
		})

		versions = append(versions, models.Version{
			DocID:            doc.ID,
			ModifiedByUserID: modifier(doc),
			ModifiedAt:       doc.LastModifiedAt,
			ChangeSummary:    fake.Sentence(g.rng),
		})

		if g.rng.Float64() < 0.4 {
			extra := g.rng.Intn(3) + 1
			for j := 0; j < extra; j++ {
				versions = append(versions, models.Version{
					DocID:            doc.ID,
					ModifiedByUserID: modifier(doc),
					ModifiedAt:       timeStrictlyBetween(g.rng, doc.CreatedAt, doc.LastModifiedAt),
					ChangeSummary:    fake.Sentence(g.rng),
				})
			}
		}
	}

	finalizeVersions(versions)
	g.countRows("versions", len(versions))
	return versions
}

// finalizeVersions re-keys the collection in one pass over the globally
// sorted order: ID becomes the 1-based rank by ModifiedAt across all
// documents, VersionNumber the 1-based rank within the row's own document.
func finalizeVersions(versions []models.Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return versions[i].ModifiedAt.Before(versions[j].ModifiedAt)
	})

	perDoc := make(map[int]int)
	for i := range versions {
		versions[i].ID = i + 1
		perDoc[versions[i].DocID]++
		versions[i].VersionNumber = perDoc[versions[i].DocID]
	}
}
