package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"menu-manager/core/loader"
	"menu-manager/core/logger"
	"menu-manager/core/middleware/auth"
	"menu-manager/core/middleware/rayid"

	"menu-manager/feature/integrity"
	"menu-manager/feature/menus"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "menu-manager/docs/swagger"
)

// @title Menu Manager API
// @version 1.0
// @description API for managing menus, their nested options, categories, specials and stock.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the menu manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger, database (optional) and storage (optional)
		rt, err := bootstrap(false)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
			BodyLimit:             16 * 1024 * 1024,
		})

		// 3. Initialize Feature Loader
		mgr := loader.NewManager()

		var menuSvc *menus.Service
		if rt.db != nil {
			if menuSvc, err = rt.menuService(); err != nil {
				logg.Fatal("Failed to create menu service", zap.Error(err))
			}
		}
		mgr.Register(menus.NewFeature(menuSvc))
		mgr.Register(integrity.NewFeature(integrity.NewService(rt.store, rt.cfg.Storage.Bucket, rt.cfg.Storage.Region, logg, rt.db)))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging with Zap + RayID
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

		// 3. Public endpoints: Swagger documentation and Prometheus metrics
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		// 4. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("enabled", mgr.Enabled()))

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
