package generator

import (
	"github.com/safedocs/seeder/internal/db/models"
	"github.com/safedocs/seeder/internal/fake"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const encryptionMethod = "AES-256"

// generatePasswordProtections emits one row per password-protected document,
// in document order. The digest is a real bcrypt hash of a fabricated
// password; MinCost keeps bulk generation fast.
func (g *Generator) generatePasswordProtections(docs []models.Document) []models.PasswordProtection {
	ids := &idAllocator{}
	rows := make([]models.PasswordProtection, 0, len(docs)/2)

	for _, doc := range docs {
		if !doc.IsPasswordProtected {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(fake.Password(g.rng)), bcrypt.MinCost)
		if err != nil {
			g.logger.Error("Failed to hash fabricated password",
				zap.Int("doc_id", doc.ID), zap.Error(err))
			continue
		}

		rows = append(rows, models.PasswordProtection{
			ID:               ids.next(),
			DocID:            doc.ID,
			PasswordHash:     string(hash),
			EncryptionMethod: encryptionMethod,
			LastUpdatedAt:    timeBetween(g.rng, g.now.AddDate(0, -6, 0), g.now),
		})
	}

	g.countRows("password_protections", len(rows))
	return rows
}
