package generator

import (
	"fmt"

	"github.com/safedocs/seeder/internal/db/models"
)

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

var policyDescriptions = []string{
	"Publicly accessible documents with no viewing restrictions.",
	"General information available to all registered organization members.",
	"Standard internal resources and organizational policy manuals.",
	"Internal operational files accessible to all staff members.",
	"Departmental data requiring basic internal authorization.",
	"Sensitive project documentation with restricted editing rights.",
	"Internal communications and strategic planning records.",
	"Highly restricted financial and legal documentation.",
	"Strictly confidential executive data requiring explicit clearance.",
	"Top-secret administrative oversight data; restricted to Admins only.",
}

var tagVocabulary = []struct {
	name     string
	category string
}{
	{"Legal", "Compliance"},
	{"Tax", "Finance"},
	{"Draft", "Internal"},
	{"Final", "Internal"},
	{"HR", "Administration"},
	{"Technical", "Engineering"},
	{"Invoice", "Finance"},
}

func (g *Generator) generateRoles() []models.Role {
	roles := []models.Role{
		{ID: models.RoleAdmin, Name: "Admin", Description: "Full system access"},
		{ID: models.RoleEditor, Name: "Editor", Description: "Can modify documents"},
		{ID: models.RoleViewer, Name: "Viewer", Description: "Read-only access"},
		{ID: models.RoleCommenter, Name: "Commenter", Description: "View files and suggest edits"},
	}
	g.countRows("roles", len(roles))
	return roles
}

// generatePolicies builds the ten ordered confidentiality tiers. Levels 1-3
// admit down to Viewer, 4-7 down to Editor, 8-10 Admin only.
func (g *Generator) generatePolicies() []models.Policy {
	policies := make([]models.Policy, 0, 10)
	for i := 1; i <= 10; i++ {
		maxRole := models.RoleViewer
		switch {
		case i > 7:
			maxRole = models.RoleAdmin
		case i > 3:
			maxRole = models.RoleEditor
		}

		policies = append(policies, models.Policy{
			ID:               i,
			LevelName:        fmt.Sprintf("Confidentiality Level %s", romanNumerals[i-1]),
			MaxAllowedRoleID: maxRole,
			Description:      policyDescriptions[i-1],
		})
	}
	g.countRows("policies", len(policies))
	return policies
}

func (g *Generator) generateTags() []models.Tag {
	tags := make([]models.Tag, 0, len(tagVocabulary))
	for i, entry := range tagVocabulary {
		tags = append(tags, models.Tag{
			ID:        i + 1,
			Name:      entry.name,
			Category:  entry.category,
			CreatedAt: timeBetween(g.rng, g.now.AddDate(-2, 0, 0), g.now),
		})
	}
	g.countRows("tags", len(tags))
	return tags
}
