package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"obradiary/internal/service"
)

// Services bundles the use-case layers the router depends on.
type Services struct {
	Users         service.UserService
	Obras         service.ObraService
	Records       service.RecordService
	Notifications service.NotificationService
	Dashboard     service.DashboardService
	Seed          service.SeedService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app. All
// business endpoints live under the /api prefix; operational endpoints
// (health, docs) stay at the root.
func RegisterRoutes(app *fiber.App, db *sql.DB, svcs Services, sampleDataEnabled bool) {
	app.Get("/openapi.yaml", OpenAPISpec())
	app.Get("/docs", APIDocs())
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")
	api.Get("/", Root())

	api.Post("/users", CreateUser(svcs.Users))
	api.Get("/users", ListUsers(svcs.Users))
	api.Get("/users/:id", GetUser(svcs.Users))

	api.Post("/obras", CreateObra(svcs.Obras))
	api.Get("/obras", ListObras(svcs.Obras))
	api.Get("/obras/:id", GetObra(svcs.Obras))

	api.Post("/diary-entries", CreateDiaryEntry(svcs.Records))
	api.Get("/diary-entries/obra/:obra_id", ListDiaryEntries(svcs.Records))

	api.Post("/photos", CreatePhoto(svcs.Records))
	api.Get("/photos/obra/:obra_id", ListPhotos(svcs.Records))

	api.Post("/material-requests", CreateMaterialRequest(svcs.Records))
	api.Get("/material-requests/obra/:obra_id", ListMaterialRequests(svcs.Records))
	api.Put("/material-requests/:id/status", UpdateMaterialRequestStatus(svcs.Records))

	api.Post("/service-measurements", CreateMeasurement(svcs.Records))
	api.Get("/service-measurements/obra/:obra_id", ListMeasurements(svcs.Records))

	api.Get("/notifications/obra/:obra_id", ListNotifications(svcs.Notifications))
	api.Put("/notifications/:id/read", MarkNotificationRead(svcs.Notifications))

	api.Get("/dashboard/stats/:obra_id", DashboardStats(svcs.Dashboard))

	api.Post("/init-sample-data", InitSampleData(svcs.Seed, sampleDataEnabled))
}
