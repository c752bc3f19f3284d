package integrity

import (
	"quotes-lake/core/logger"
	"quotes-lake/core/utils"
	"quotes-lake/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.DatabaseReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/runs", h.HandleRunsCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the storage structure check and, when a database is configured, the schema and run backup checks.
// @Tags integrity
// @Produce json
// @Success 200 {object} Report "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := h.service.CheckAll(c.Context())
	if !report.Healthy {
		l.Warn("Integrity checks reported problems")
	}
	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the storage structure.
// @Summary Check Storage Structure
// @Description Checks that every bucket and space folder of the layout exists. Optionally provisions what is missing.
// @Tags integrity
// @Produce json
// @Param fix query boolean false "Fix missing buckets and folders"
// @Success 200 {object} checks.StorageReport "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix, _ := utils.ParseBool(c.Query("fix"))

	var (
		report *checks.StorageReport
		err    error
	)
	if fix {
		l.Info("Attempting to fix storage structure")
		report, err = h.service.FixStorage(c.Context())
	} else {
		report, err = h.service.CheckStorage(c.Context())
	}
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.Status == "missing" {
		l.Warn("Missing storage structure detected",
			zap.Strings("buckets", report.MissingBuckets),
			zap.Strings("folders", report.MissingFolders))
	}
	return c.JSON(report)
}

// HandleDatabaseCheck checks database schema integrity.
// @Summary Check Database Schema
// @Description Checks if the database schema matches the expected models.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /integrity/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if !h.service.HasDatabase() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "database is not configured"})
	}

	l.Info("Starting database schema check")
	report, err := h.service.CheckDatabase()
	if err != nil {
		l.Error("Database schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}

// HandleRunsCheck reconciles recorded runs with the backup folder of the pipeline space.
// @Summary Check Run Backups
// @Description Lists succeeded runs whose backup object is missing and backup objects no run refers to.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.RunsReport "Runs Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /integrity/runs [get]
func (h *Handler) HandleRunsCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if !h.service.HasDatabase() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "database is not configured"})
	}

	report, err := h.service.CheckRuns(c.Context())
	if err != nil {
		l.Error("Runs check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if report.Status != "ok" {
		l.Warn("Run backups out of sync",
			zap.Strings("missing_backups", report.MissingBackups),
			zap.Int("orphans", len(report.Orphans)))
	}
	return c.JSON(report)
}
