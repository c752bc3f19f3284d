package quotes

import (
	"quotes-lake/core/logger"
	"quotes-lake/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	defaultListLimit = 50
	maxListLimit     = 1000
)

// Handler handles HTTP requests for the quotes pipeline.
type Handler struct {
	pipeline *Pipeline
	repo     *Repository
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler. repo may be nil when no database is configured.
func NewHandler(pipeline *Pipeline, repo *Repository, logger *zap.Logger) *Handler {
	return &Handler{pipeline: pipeline, repo: repo, logger: logger}
}

// RegisterRoutes registers the quotes routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/quotes")
	group.Post("/run", h.HandleRun)
	group.Get("/", h.HandleList)
}

// HandleRun runs the pipeline synchronously.
// @Summary Run Quotes Pipeline
// @Description Scrapes the quotes site, stores raw quotes and places the JSONL artifact into the lake.
// @Tags quotes
// @Produce json
// @Param pages query int false "Maximum pages to crawl (0 uses the configured limit)"
// @Success 200 {object} RunReport "Run Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /quotes/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	pages := utils.ToInt(c.Query("pages"))
	l.Info("Triggering quotes pipeline", zap.Int("pages", pages))

	report, err := h.pipeline.Run(c.Context(), pages)
	if err != nil {
		l.Error("Quotes pipeline failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  err.Error(),
			"report": report,
		})
	}
	return c.JSON(report)
}

// HandleList returns the latest stored quotes.
// @Summary List Quotes
// @Description Returns the most recently stored raw quotes and the total count.
// @Tags quotes
// @Produce json
// @Param limit query int false "Maximum quotes to return (default 50)"
// @Success 200 {object} map[string]interface{} "Quotes"
// @Failure 503 {object} map[string]string "Database not configured"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /quotes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	if h.repo == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "database is not configured"})
	}

	limit := utils.ToInt(c.Query("limit"))
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)

	quotes, err := h.repo.ListQuotes(c.Context(), limit)
	if err != nil {
		l.Error("Listing quotes failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	total, err := h.repo.CountQuotes(c.Context())
	if err != nil {
		l.Error("Counting quotes failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"total": total, "quotes": quotes})
}
