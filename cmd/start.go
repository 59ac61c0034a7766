package cmd

import (
	"loadscreen-export/core/loader"
	"loadscreen-export/core/logger"
	"loadscreen-export/core/middleware/auth"
	"loadscreen-export/core/middleware/rayid"
	"loadscreen-export/feature/integrity"
	"loadscreen-export/feature/loadingscreen"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "loadscreen-export/docs/swagger"
)

// @title Loading Screen Exporter API
// @version 1.0
// @description API for exporting and serving Dota 2 loading screens.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [outdir]",
	Short: "Start the loading screen server",
	Long:  `Starts the HTTP server, initializes all enabled features and runs scheduled exports when server.schedule is set.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// 1. Configuration, logger, records and storage
		a, err := newApp(args, appOptions{metrics: true})
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		schedule, err := a.cfg.Server.ParseSchedule()
		if err != nil {
			return err
		}

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(loadingscreen.NewFeature(a.service))
		mgr.Register(integrity.NewFeature(a.integrityOptions()))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Zap + RayID)
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

		// 3. Metrics and Swagger Documentation (Public)
		prom := fiberprometheus.New("loadscreen_export")
		prom.RegisterAt(app, "/metrics")
		app.Use(prom.Middleware)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{
			ApiKey: a.cfg.Server.ApiKey,
			Public: []string{"/metrics", "/swagger"},
		}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 6. Scheduled exports
		if schedule != nil {
			sched := loadingscreen.NewScheduler(ctx, a.service, schedule)
			sched.Start()
			defer func() { <-sched.Stop().Done() }()
			logg.Info("Scheduled exports enabled", zap.String("schedule", a.cfg.Server.Schedule))
		}

		// 7. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			errCh <- app.Listen(":" + a.cfg.Server.Port)
		}()

		// 8. Graceful Shutdown
		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
