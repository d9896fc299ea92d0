package db

import (
	"time"

	"github.com/safedocs/seeder/internal/db/models"
	"github.com/safedocs/seeder/internal/generator"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const insertBatchSize = 1000

// TableResult reports the outcome of loading one collection.
type TableResult struct {
	Table string
	Rows  int
	Err   error
}

// Loader persists a generated dataset table by table: drop, recreate, bulk
// insert. A failing table is reported but never stops the remaining tables.
type Loader struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewLoader(db *gorm.DB, logger *zap.Logger) *Loader {
	return &Loader{
		db:     db,
		logger: logger.With(zap.String("component", "loader")),
	}
}

func (l *Loader) Load(ds *generator.Dataset) []TableResult {
	steps := []struct {
		table string
		model interface{}
		rows  interface{}
		count int
	}{
		{"roles", &models.Role{}, ds.Roles, len(ds.Roles)},
		{"organizations", &models.Organization{}, ds.Organizations, len(ds.Organizations)},
		{"users", &models.User{}, ds.Users, len(ds.Users)},
		{"policies", &models.Policy{}, ds.Policies, len(ds.Policies)},
		{"documents", &models.Document{}, ds.Documents, len(ds.Documents)},
		{"permissions", &models.Permission{}, ds.Permissions, len(ds.Permissions)},
		{"logs", &models.Log{}, ds.Logs, len(ds.Logs)},
		{"versions", &models.Version{}, ds.Versions, len(ds.Versions)},
		{"password_protections", &models.PasswordProtection{}, ds.Passwords, len(ds.Passwords)},
		{"tags", &models.Tag{}, ds.Tags, len(ds.Tags)},
		{"document_tags", &models.DocumentTag{}, ds.DocumentTags, len(ds.DocumentTags)},
	}

	results := make([]TableResult, 0, len(steps))
	for _, step := range steps {
		start := time.Now()
		result := l.loadTable(step.table, step.model, step.rows, step.count)
		if result.Err != nil {
			l.logger.Error("Failed to load table",
				zap.String("table", result.Table),
				zap.Error(result.Err))
		} else {
			l.logger.Info("Loaded table",
				zap.String("table", result.Table),
				zap.Int("rows", result.Rows),
				zap.Duration("duration", time.Since(start)))
		}
		results = append(results, result)
	}

	return results
}

func (l *Loader) loadTable(table string, model, rows interface{}, count int) TableResult {
	migrator := l.db.Migrator()

	if migrator.HasTable(model) {
		if err := migrator.DropTable(model); err != nil {
			return TableResult{Table: table, Err: err}
		}
	}
	if err := l.db.AutoMigrate(model); err != nil {
		return TableResult{Table: table, Err: err}
	}

	if count == 0 {
		return TableResult{Table: table}
	}

	if err := l.db.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return TableResult{Table: table, Err: err}
	}

	return TableResult{Table: table, Rows: count}
}
