package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/services/command"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// EventHandler handles HTTP requests for event operations.
type EventHandler struct {
	Command *command.UseCase
	Query   *query.UseCase
}

// CreateEvent creates a new event.
func (handler *EventHandler) CreateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	input := &mmodel.StoreEventInput{}
	if err := c.BodyParser(input); err != nil {
		return http.WithError(c, err)
	}

	event, err := handler.Command.CreateEvent(ctx, input, organizationFrom(c))
	if err != nil {
		return http.WithError(c, err)
	}

	return http.Created(c, event.ID)
}

// UpdateEvent replaces an event.
func (handler *EventHandler) UpdateEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	input := &mmodel.StoreEventInput{}
	if err := c.BodyParser(input); err != nil {
		return http.WithError(c, err)
	}

	event, err := handler.Command.UpdateEvent(ctx, mmodel.ID(c.Params("id")), input, organizationFrom(c))
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, event.ID)
}

// GetEvent retrieves a single event. The creator email is only exposed to
// authenticated organizations.
func (handler *EventHandler) GetEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	event, err := handler.Query.GetEvent(ctx, mmodel.ID(c.Params("id")))
	if err != nil {
		return http.WithError(c, err)
	}

	if organizationFrom(c) == nil {
		event.CreatedBy = nil
	}

	return http.OK(c, event)
}

// QueryEvents lists events chronologically.
func (handler *EventHandler) QueryEvents(c *fiber.Ctx) error {
	ctx := c.UserContext()

	request, err := eventsRequestFromQuery(c)
	if err != nil {
		return http.BadRequest(c, http.ValidationKnownFieldsError{
			Title:   "Invalid Query",
			Message: err.Error(),
		})
	}

	org := organizationFrom(c)

	events, err := handler.Query.QueryEvents(ctx, request, org)
	if err != nil {
		return http.WithError(c, err)
	}

	if org == nil {
		for _, event := range events {
			event.CreatedBy = nil
		}
	}

	return http.OK(c, events)
}

// ArchiveEvents archives a list of events.
func (handler *EventHandler) ArchiveEvents(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to archive events.")
	}

	payload := struct {
		IDs []string `json:"ids"`
	}{}

	if err := c.BodyParser(&payload); err != nil {
		return http.WithError(c, err)
	}

	ids := make([]mmodel.ID, len(payload.IDs))
	for i, id := range payload.IDs {
		ids[i] = mmodel.ID(id)
	}

	archived, err := handler.Command.ArchiveEvents(ctx, ids, email)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, fiber.Map{"archived": archived})
}

// DeleteEvent removes an event, either on behalf of an admin session or an
// organization owning one of the event's tags.
func (handler *EventHandler) DeleteEvent(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id := mmodel.ID(c.Params("id"))

	if org := organizationFrom(c); org != nil {
		if err := handler.Command.DeleteEventByOrganization(ctx, id, org); err != nil {
			return http.WithError(c, err)
		}

		return http.NoContent(c)
	}

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to delete events.")
	}

	if err := handler.Command.DeleteEvent(ctx, id, email); err != nil {
		return http.WithError(c, err)
	}

	return http.NoContent(c)
}
