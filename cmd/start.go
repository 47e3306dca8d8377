package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"auction-manager/core/config"
	"auction-manager/core/database"
	"auction-manager/core/loader"
	"auction-manager/core/logger"
	"auction-manager/core/middleware/auth"
	"auction-manager/core/middleware/rayid"
	"auction-manager/core/storage"

	"auction-manager/feature/auction"
	"auction-manager/feature/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/minio/minio-go/v7"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "auction-manager/docs/swagger"
)

// @title Auction Manager API
// @version 1.0
// @description API for managing auctions and users.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the auction manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional)
		// Features that need it report themselves as disabled when it is missing.
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			logg.Info("Connected to database", zap.String("database", cfg.Database.Name))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
			BodyLimit:             cfg.Server.BodyLimitBytes(),
		})

		// 5. Initialize Storage (Optional)
		// When storage is disabled, auctions are deleted without a snapshot.
		var archiver *auction.Archiver
		if cfg.Storage.Enabled {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			ctx := context.Background()
			exists, err := store.BucketExists(ctx, cfg.Storage.Bucket)
			if err != nil {
				logg.Fatal("Failed to check archive bucket", zap.Error(err))
			}
			if !exists {
				if err := store.MakeBucket(ctx, cfg.Storage.Bucket, minio.MakeBucketOptions{Region: cfg.Storage.Region}); err != nil {
					logg.Fatal("Failed to create archive bucket", zap.Error(err))
				}
				logg.Info("Created archive bucket", zap.String("bucket", cfg.Storage.Bucket))
			}
			archiver = auction.NewArchiver(store, cfg.Storage.Bucket)
			logg.Info("Deletion archives enabled", zap.String("bucket", cfg.Storage.Bucket))
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		// Register Features
		mgr.Register(auction.NewFeature(db, logg, archiver))
		mgr.Register(user.NewFeature(db, logg))

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Logging Middleware (Custom to use Zap + RayID)
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			// Log error if happened
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// 2.5 Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// 3. Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
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
