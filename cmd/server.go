package cmd

import (
	"sptid/core/config"
	"sptid/core/loader"
	"sptid/core/logger"
	"sptid/core/middleware/auth"
	"sptid/core/middleware/rayid"
	"sptid/docs/swagger"
	"sptid/feature/ids"
	"sptid/feature/items"

	"github.com/gofiber/fiber/v2"
	fiberswagger "github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// @title sptid lookup API
// @version 1.0
// @description Resolves SPT object IDs to item records for editor integrations.
// @host 127.0.0.1:8085
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// newApp assembles the lookup API on top of a loaded runtime.
func newApp(cfg *config.Config, logg *zap.Logger, rt *runtime) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	mgr := loader.NewManager(logg)
	mgr.Register(items.NewFeature(rt.service, rt.rescanner()))
	mgr.Register(ids.NewFeature(rt.service))

	// 1. RayID (Must be first to trace everything)
	app.Use(rayid.New())

	// 2. Request logging with the RayID attached
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
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

	// 3. API documentation (Public)
	swagger.SwaggerInfo.Host = cfg.Server.Address()
	app.Get("/swagger/*", fiberswagger.HandlerDefault)

	// 4. Auth
	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}
