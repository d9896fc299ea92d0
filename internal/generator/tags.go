package generator

import "github.com/safedocs/seeder/internal/db/models"

type docTagKey struct {
	DocID int
	TagID int
}

// assignTags gives every document 1-3 distinct tags, sampled without
// replacement from the vocabulary. The registry cannot reject a pair under
// single-pass per-document sampling; it stays in place so a future
// multi-pass assignment keeps (doc, tag) unique.
func (g *Generator) assignTags(docs []models.Document, tags []models.Tag) []models.DocumentTag {
	registry := newKeySet[docTagKey]()
	rows := make([]models.DocumentTag, 0, len(docs)*2)

	for _, doc := range docs {
		n := g.rng.Intn(3) + 1
		if n > len(tags) {
			n = len(tags)
		}

		for _, idx := range g.rng.Perm(len(tags))[:n] {
			tag := tags[idx]
			if !registry.add(docTagKey{DocID: doc.ID, TagID: tag.ID}) {
				continue
			}
			rows = append(rows, models.DocumentTag{
				DocID:          doc.ID,
				TagID:          tag.ID,
				OrganizationID: doc.OrganizationID,
			})
		}
	}

	g.countRows("document_tags", len(rows))
	return rows
}
