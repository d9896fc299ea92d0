// Package generator fabricates the SafeDocs synthetic dataset: eleven
// interrelated collections whose cross-entity invariants (referential
// integrity, role eligibility, chronological ordering, composite-key
// uniqueness) hold by construction. Components run strictly in dependency
// order; every collection is fully materialized before its dependents read it.
package generator

import (
	"math/rand"
	"time"

	"github.com/safedocs/seeder/internal/db/models"
	"github.com/safedocs/seeder/pkg/metrics"
	"go.uber.org/zap"
)

// Config sets how many independent entities to fabricate. Dependent
// collections derive their sizes from these.
type Config struct {
	Organizations int
	Users         int
	Documents     int
}

// Dataset holds the generated collections, each ordered by ascending primary
// id except Versions, which is ordered by global ModifiedAt (see
// finalizeVersions).
type Dataset struct {
	Roles         []models.Role
	Organizations []models.Organization
	Users         []models.User
	Policies      []models.Policy
	Documents     []models.Document
	Permissions   []models.Permission
	Logs          []models.Log
	Versions      []models.Version
	Passwords     []models.PasswordProtection
	Tags          []models.Tag
	DocumentTags  []models.DocumentTag
}

// Generator owns all mutable generation state: the random source, the "now"
// reference for relative time sampling, id allocators and dedup registries.
// Nothing is package-global, so runs are reproducible and test-isolated.
type Generator struct {
	cfg     Config
	rng     *rand.Rand
	now     time.Time
	logger  *zap.Logger
	metrics *metrics.MetricsCollector
}

func New(cfg Config, seed int64, now time.Time, logger *zap.Logger, collector *metrics.MetricsCollector) *Generator {
	if seed == 0 {
		seed = now.UnixNano()
	}
	return &Generator{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		now:     now,
		logger:  logger.With(zap.String("component", "generator")),
		metrics: collector,
	}
}

// Generate runs every component leaves-first and returns the complete
// dataset. Generation is total: a step either produces a valid row or
// deliberately skips it, so there is no error return.
func (g *Generator) Generate() *Dataset {
	start := time.Now()
	ds := &Dataset{}

	ds.Roles = g.generateRoles()
	ds.Policies = g.generatePolicies()
	ds.Tags = g.generateTags()

	ds.Organizations = g.generateOrganizations()
	ds.Users = g.generateUsers(ds.Organizations, ds.Roles)
	ds.Documents = g.generateDocuments(ds.Users, ds.Policies)
	ds.Permissions = g.generatePermissions(ds.Documents, ds.Users, ds.Policies)
	ds.Logs = g.generateLogs(ds.Documents, ds.Users, ds.Permissions)
	ds.Versions = g.generateVersions(ds.Documents, ds.Permissions)
	ds.Passwords = g.generatePasswordProtections(ds.Documents)
	ds.DocumentTags = g.assignTags(ds.Documents, ds.Tags)

	g.metrics.ObserveLatency("dataset_generation", time.Since(start))
	g.logger.Info("Dataset generated",
		zap.Int("organizations", len(ds.Organizations)),
		zap.Int("users", len(ds.Users)),
		zap.Int("documents", len(ds.Documents)),
		zap.Int("permissions", len(ds.Permissions)),
		zap.Int("logs", len(ds.Logs)),
		zap.Int("versions", len(ds.Versions)),
		zap.Int("passwords", len(ds.Passwords)),
		zap.Int("document_tags", len(ds.DocumentTags)),
		zap.Duration("duration", time.Since(start)))

	return ds
}

func (g *Generator) countRows(table string, n int) {
	g.metrics.AddToCounter("rows_generated", map[string]string{"table": table}, int64(n))
}
