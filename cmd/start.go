package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"registry-server/core/config"
	"registry-server/core/loader"
	"registry-server/core/logger"
	"registry-server/core/middleware/rayid"
	"registry-server/core/server"
	"registry-server/feature/registry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "registry-server/docs/swagger"
)

// @title Registry Server API
// @version 1.0
// @description Serves component registry indexes and manifests to installer clients.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [port]",
	Short: "Start the registry server",
	Long:  `Starts the HTTP server. The optional port argument overrides SERVER_PORT (default 8080).`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if len(args) == 1 {
		if cfg.Server.Port, err = server.ParsePort(args[0]); err != nil {
			return err
		}
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the registry source
	src, staticRoot, err := openSource(ctx, cfg, logg)
	if err != nil {
		return err
	}

	// 4. Initialize Fiber App
	app := fiber.New(fiber.Config{
		AppName:               "registry-server",
		DisableStartupMessage: true,
	})
	app.Use(rayid.New())
	app.Use(logger.Middleware(logg))
	app.Get("/swagger/*", swagger.HandlerDefault)

	// 5. Register Features (the registry is a catch-all and goes last)
	feature, err := registry.NewFeature(cfg.Registry, src, staticRoot, logg)
	if err != nil {
		return err
	}
	mgr := loader.NewManager()
	mgr.Register(feature)
	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return err
	}
	logg.Debug("Features loaded", zap.Strings("features", loaded))

	// 6. Bind
	ln, err := server.Listen(ctx, cfg.Server)
	if err != nil {
		return err
	}
	logBanner(logg, cfg.Server.Port, feature.Layout())

	// 7. Serve until SIGINT/SIGTERM
	if err := server.Serve(ctx, app, ln, cfg.Server.ShutdownTimeout()); err != nil {
		return err
	}
	logg.Info("Server stopped")
	return nil
}

func logBanner(logg *zap.Logger, port string, layout registry.Layout) {
	base := "http://localhost:" + port
	logg.Info("Registry server running", zap.String("url", base), zap.String("layout", layout.Name))
	for _, r := range layout.Routes {
		logg.Info("Registry index", zap.String("url", base+r.IndexPath))
		logg.Info("Components",
			zap.String("url", base+r.Prefix),
			zap.String("install", "npx shadcn@latest add "+base+r.Prefix+"<name>.json"))
	}
	if layout.StaticDir != "" {
		logg.Info("Static files", zap.String("dir", layout.StaticDir))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
