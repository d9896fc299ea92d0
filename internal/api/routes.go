package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/safedocs/seeder/internal/api/handlers"
	"github.com/safedocs/seeder/internal/api/middleware"
	"github.com/safedocs/seeder/pkg/metrics"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Router serves a read-only preview of the loaded dataset for local
// inspection after a seeding run.
type Router struct {
	engine         *gin.Engine
	logger         *zap.Logger
	metrics        *metrics.MetricsCollector
	datasetHandler *handlers.DatasetHandler
	reqMiddleware  *middleware.RequestMiddleware
}

func NewRouter(logger *zap.Logger, collector *metrics.MetricsCollector, db *gorm.DB) *Router {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	reqMiddleware := middleware.NewRequestMiddleware(logger)
	engine.Use(reqMiddleware.ProcessRequest())
	engine.Use(reqMiddleware.RecoverPanic())

	return &Router{
		engine:         engine,
		logger:         logger,
		metrics:        collector,
		datasetHandler: handlers.NewDatasetHandler(db, logger),
		reqMiddleware:  reqMiddleware,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "up", "name": "safedocs-seeder"})
	})

	r.engine.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"counters":  r.metrics.GetCounters(),
			"latencies": r.metrics.GetLatencies(),
		})
	})

	r.engine.GET("/summary", r.datasetHandler.Summary)
	r.engine.GET("/tables/:name", r.datasetHandler.TableSample)
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

func (r *Router) Run(addr string) error {
	r.logger.Info("Starting preview server", zap.String("address", addr))
	return r.engine.Run(addr)
}
