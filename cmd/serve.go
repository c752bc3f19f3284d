package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"quotes-lake/core/loader"
	"quotes-lake/core/logger"
	"quotes-lake/core/middleware/auth"
	"quotes-lake/core/middleware/rayid"
	"quotes-lake/feature/integrity"
	"quotes-lake/feature/lake"
	"quotes-lake/feature/quotes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "quotes-lake/docs/swagger"
)

// @title Quotes Lake API
// @version 1.0
// @description API for the quotes ETL pipeline and its object store layout.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		if err := rt.connectDatabase(cmd.Context(), false, true); err != nil {
			return err
		}

		if err := rt.store.EnsureLayout(cmd.Context()); err != nil {
			logg.Warn("Object store layout could not be provisioned", zap.Error(err))
		}

		app := newApp(rt)

		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

// newApp wires middleware and features into a Fiber app.
func newApp(rt *runtime) *fiber.App {
	logg := rt.logger
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             64 * 1024 * 1024,
	})

	// RayID first so that every log line can be traced
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Public endpoints
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

	var repo *quotes.Repository
	if rt.db != nil {
		repo = quotes.NewRepository(rt.db)
	}

	mgr := loader.NewManager(logg)
	mgr.Register(lake.NewFeature(rt.store, logg, rt.cfg.Server.AllowReset))
	if scraper, err := quotes.NewScraper(rt.cfg.Scraper, logg); err != nil {
		logg.Warn("Quotes feature disabled", zap.Error(err))
	} else {
		pipeline := newPipeline(rt, scraper, repo)
		mgr.Register(quotes.NewFeature(pipeline, repo, logg))
	}
	mgr.Register(integrity.NewFeature(rt.store, rt.db, rt.runsTarget(), logg))

	if err := mgr.LoadAll(app); err != nil {
		logg.Fatal("Failed to load features", zap.Error(err))
	}
	return app
}

// newPipeline avoids handing a typed nil repository to the pipeline.
func newPipeline(rt *runtime, scraper *quotes.Scraper, repo *quotes.Repository) *quotes.Pipeline {
	if repo == nil {
		return quotes.NewPipeline(rt.cfg.Scraper, scraper, nil, rt.store, rt.logger)
	}
	return quotes.NewPipeline(rt.cfg.Scraper, scraper, repo, rt.store, rt.logger)
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
