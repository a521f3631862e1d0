package main

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"obradiary/internal/auth"
	"obradiary/internal/config"
	"obradiary/internal/database"
	"obradiary/internal/database/migration"
	handlers "obradiary/internal/http/handler"
	"obradiary/internal/http/middleware"
	"obradiary/internal/otel"
	"obradiary/internal/repository/postgres"
	"obradiary/internal/service"
	"obradiary/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logJSON(map[string]any{"level": "error", "msg": "tracing_shutdown_failed", "error": err.Error()})
		}
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Object storage is optional; without it photo payloads are only kept
	// inline in the database.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	var resolver auth.CredentialResolver
	switch cfg.Auth.Mode {
	case "jwt":
		resolver = &auth.JWTResolver{Secret: []byte(cfg.Auth.JWTSecret)}
	default:
		resolver = &auth.StaticResolver{UserID: cfg.Auth.StaticUserID}
	}

	userRepo := postgres.NewUserPostgres(db)
	obraRepo := postgres.NewObraPostgres(db)
	diaryRepo := postgres.NewDiaryEntryPostgres(db)
	photoRepo := postgres.NewPhotoPostgres(db)
	materialRepo := postgres.NewMaterialRequestPostgres(db)
	measurementRepo := postgres.NewServiceMeasurementPostgres(db)
	notificationRepo := postgres.NewNotificationPostgres(db)

	svcs := handlers.Services{
		Users:         service.NewUserService(userRepo),
		Obras:         service.NewObraService(obraRepo),
		Records:       service.NewRecordService(resolver, userRepo, diaryRepo, photoRepo, materialRepo, measurementRepo, notificationRepo, objStore),
		Notifications: service.NewNotificationService(notificationRepo),
		Dashboard:     service.NewDashboardService(diaryRepo, photoRepo, materialRepo, measurementRepo, notificationRepo),
		Seed:          service.NewSeedService(userRepo, obraRepo, diaryRepo, photoRepo, materialRepo, measurementRepo, notificationRepo, objStore),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
	}))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, svcs, cfg.SampleDataEnabled)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if b, err := json.Marshal(data); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
