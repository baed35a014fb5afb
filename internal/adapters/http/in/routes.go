package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/organization"
	"github.com/kartevonmorgen/openfairdb/pkg/mlog"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
	"go.opentelemetry.io/otel/trace"
)

// NewRouter registers the HTTP routes of the service.
func NewRouter(logger mlog.Logger, tracer trace.Tracer, orgRepo organization.Repository, version string,
	entries *EntryHandler, events *EventHandler, ratings *RatingHandler, users *UserHandler,
	search *SearchHandler, export *ExportHandler, counts *CountHandler, clearances *ClearanceHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Use(WithContext(logger, tracer))
	app.Use(WithOrganization(orgRepo))
	app.Use(WithSessionUser())

	// Search
	app.Get("/search", search.Search)
	app.Get("/duplicates", search.GetDuplicates)

	// Places
	app.Post("/entries", entries.CreateEntry)
	app.Post("/entries/review", entries.ReviewEntries)
	app.Get("/entries/recently-changed", entries.GetRecentlyChanged)
	app.Get("/entries/most-popular-tags", entries.GetMostPopularTags)
	app.Put("/entries/:id", entries.UpdateEntry)
	app.Get("/entries/:id", entries.GetEntry)
	app.Get("/entries/:id/ratings", entries.GetEntryRatings)
	app.Get("/entries/:id/history", entries.GetEntryHistory)

	// Events
	app.Post("/events", events.CreateEvent)
	app.Get("/events", events.QueryEvents)
	app.Post("/events/archive", events.ArchiveEvents)
	app.Get("/events/:id", events.GetEvent)
	app.Put("/events/:id", events.UpdateEvent)
	app.Delete("/events/:id", events.DeleteEvent)

	// Ratings and comments
	app.Post("/ratings", ratings.CreateRating)
	app.Post("/ratings/archive", ratings.ArchiveRatings)
	app.Post("/comments/archive", ratings.ArchiveComments)
	app.Get("/ratings/:ids", ratings.GetRatings)

	// Users and sessions
	app.Post("/users", users.CreateUser)
	app.Get("/users/current", users.GetCurrentUser)
	app.Post("/login", users.Login)
	app.Post("/logout", users.Logout)
	app.Post("/confirm-email-address", users.ConfirmEmailAddress)
	app.Post("/users/reset-password-request", users.RequestPasswordReset)
	app.Post("/users/reset-password", users.ResetPassword)

	// Bbox subscriptions
	app.Post("/subscribe-to-bbox", users.SubscribeToBbox)
	app.Delete("/unsubscribe-all-bboxes", users.UnsubscribeAllBboxes)
	app.Get("/bbox-subscriptions", users.GetBboxSubscriptions)

	// Clearance workflow (organization bearer token)
	app.Get("/places/clearance", clearances.ListPendingClearances)
	app.Get("/places/clearance/count", clearances.CountPendingClearances)
	app.Post("/places/clearance", clearances.UpdatePendingClearances)
	app.Post("/places/clearance/cleanup", clearances.CleanupPendingClearances)

	// Exports and counters
	app.Get("/export/entries.csv", export.ExportEntriesCSV)
	app.Get("/export/events.csv", export.ExportEventsCSV)
	app.Get("/export/events.ical", export.ExportEventsICal)
	app.Get("/count/entries", counts.CountEntries)
	app.Get("/count/tags", counts.CountTags)

	// Service
	app.Get("/server/version", http.Version(version))
	app.Get("/health", http.Ping)

	return app
}
