package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/constant"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// ExportHandler handles the CSV and iCal exports.
type ExportHandler struct {
	Query *query.UseCase
}

// ExportEntriesCSV emits a CSV row per visible place within the bbox.
func (handler *ExportHandler) ExportEntriesCSV(c *fiber.Ctx) error {
	ctx := c.UserContext()

	bbox, err := mmodel.ParseMapBbox(c.Query("bbox"))
	if err != nil {
		return http.WithError(c, pkg.ValidateBusinessError(constant.ErrInvalidBbox, "Place"))
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")

	return handler.Query.ExportPlacesCSV(ctx, c.Response().BodyWriter(), bbox)
}

// ExportEventsCSV emits a CSV row per matching event.
func (handler *ExportHandler) ExportEventsCSV(c *fiber.Ctx) error {
	ctx := c.UserContext()

	request, err := eventsRequestFromQuery(c)
	if err != nil {
		return http.BadRequest(c, http.ValidationKnownFieldsError{
			Title:   "Invalid Query",
			Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")

	return handler.Query.ExportEventsCSV(ctx, c.Response().BodyWriter(), request, organizationFrom(c))
}

// ExportEventsICal emits a VCALENDAR with one VEVENT per matching event.
func (handler *ExportHandler) ExportEventsICal(c *fiber.Ctx) error {
	ctx := c.UserContext()

	request, err := eventsRequestFromQuery(c)
	if err != nil {
		return http.BadRequest(c, http.ValidationKnownFieldsError{
			Title:   "Invalid Query",
			Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")

	return handler.Query.ExportEventsICal(ctx, c.Response().BodyWriter(), request, organizationFrom(c))
}

// CountHandler serves the public entity counters.
type CountHandler struct {
	Query *query.UseCase
}

// CountEntries counts the visible places.
func (handler *CountHandler) CountEntries(c *fiber.Ctx) error {
	count, err := handler.Query.CountPlaces(c.UserContext())
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, count)
}

// CountTags counts the registered tags.
func (handler *CountHandler) CountTags(c *fiber.Ctx) error {
	count, err := handler.Query.CountTags(c.UserContext())
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, count)
}
