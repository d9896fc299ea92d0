package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/safedocs/seeder/internal/db/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultSampleLimit = 25
	maxSampleLimit     = 200
)

// tableSlices maps exposed table names to typed destination slices so the
// sample endpoint only ever queries known dataset tables.
var tableSlices = map[string]func() interface{}{
	"roles":                func() interface{} { return &[]models.Role{} },
	"organizations":        func() interface{} { return &[]models.Organization{} },
	"users":                func() interface{} { return &[]models.User{} },
	"policies":             func() interface{} { return &[]models.Policy{} },
	"documents":            func() interface{} { return &[]models.Document{} },
	"permissions":          func() interface{} { return &[]models.Permission{} },
	"logs":                 func() interface{} { return &[]models.Log{} },
	"versions":             func() interface{} { return &[]models.Version{} },
	"password_protections": func() interface{} { return &[]models.PasswordProtection{} },
	"tags":                 func() interface{} { return &[]models.Tag{} },
	"document_tags":        func() interface{} { return &[]models.DocumentTag{} },
}

var tableModels = []struct {
	name  string
	model interface{}
}{
	{"roles", &models.Role{}},
	{"organizations", &models.Organization{}},
	{"users", &models.User{}},
	{"policies", &models.Policy{}},
	{"documents", &models.Document{}},
	{"permissions", &models.Permission{}},
	{"logs", &models.Log{}},
	{"versions", &models.Version{}},
	{"password_protections", &models.PasswordProtection{}},
	{"tags", &models.Tag{}},
	{"document_tags", &models.DocumentTag{}},
}

type DatasetHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewDatasetHandler(db *gorm.DB, logger *zap.Logger) *DatasetHandler {
	return &DatasetHandler{
		db:     db,
		logger: logger.With(zap.String("handler", "dataset")),
	}
}

// Summary reports the row count of every dataset table.
func (dh *DatasetHandler) Summary(c *gin.Context) {
	counts := make(map[string]int64, len(tableModels))
	for _, t := range tableModels {
		var n int64
		if err := dh.db.Model(t.model).Count(&n).Error; err != nil {
			dh.logger.Error("Failed to count table",
				zap.String("table", t.name), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count " + t.name})
			return
		}
		counts[t.name] = n
	}

	c.JSON(http.StatusOK, gin.H{"tables": counts})
}

// TableSample returns the first rows of one table, capped by the limit query
// parameter.
func (dh *DatasetHandler) TableSample(c *gin.Context) {
	name := c.Param("name")
	newSlice, ok := tableSlices[name]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown table"})
		return
	}

	limit := defaultSampleLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > maxSampleLimit {
		limit = maxSampleLimit
	}

	rows := newSlice()
	if err := dh.db.Limit(limit).Find(rows).Error; err != nil {
		dh.logger.Error("Failed to sample table",
			zap.String("table", name), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"table": name, "rows": rows})
}
