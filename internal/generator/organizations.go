package generator

import (
	"fmt"
	"strings"

	"github.com/safedocs/seeder/internal/db/models"
	"github.com/safedocs/seeder/internal/fake"
)

var orgTypes = []string{"Legal", "Finance", "Academic", "Tech"}

func (g *Generator) generateOrganizations() []models.Organization {
	orgs := make([]models.Organization, 0, g.cfg.Organizations)
	for i := 1; i <= g.cfg.Organizations; i++ {
		orgs = append(orgs, models.Organization{
			ID:        i,
			Name:      fake.Company(g.rng),
			Type:      orgTypes[g.rng.Intn(len(orgTypes))],
			Address:   fake.Address(g.rng),
			CreatedAt: timeBetween(g.rng, g.now.AddDate(-20, 0, 0), g.now.AddDate(-1, 0, 0)),
		})
	}
	g.countRows("organizations", len(orgs))
	return orgs
}

// emailSuffix derives an organization's mail domain from the first three
// letters of its name, e.g. "Meridian Group" -> "mer.com". All users of one
// organization therefore share a domain.
func emailSuffix(orgName string) string {
	prefix := orgName
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return strings.ToLower(prefix) + ".com"
}

func (g *Generator) generateUsers(orgs []models.Organization, roles []models.Role) []models.User {
	suffixes := make(map[int]string, len(orgs))
	for _, org := range orgs {
		suffixes[org.ID] = emailSuffix(org.Name)
	}

	statuses := []models.AccountStatus{models.StatusActive, models.StatusSuspended, models.StatusPending}

	users := make([]models.User, 0, g.cfg.Users)
	for i := 1; i <= g.cfg.Users; i++ {
		// Organization first: it determines the email domain. Sampling is
		// with replacement, so an organization may have any number of users.
		org, _ := pickOne(g.rng, orgs)
		role, _ := pickOne(g.rng, roles)

		first := fake.FirstName(g.rng)
		last := fake.LastName(g.rng)

		users = append(users, models.User{
			ID:             i,
			Name:           first + " " + last,
			Email:          fmt.Sprintf("%s.%s@%s", strings.ToLower(first), strings.ToLower(last), suffixes[org.ID]),
			Phone:          fake.Numerify(g.rng, "###-###-####"),
			Age:            g.rng.Intn(44) + 22,
			RoleID:         role.ID,
			OrganizationID: org.ID,
			Status:         statuses[g.rng.Intn(len(statuses))],
		})
	}
	g.countRows("users", len(users))
	return users
}
