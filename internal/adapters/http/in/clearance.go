package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/services/command"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// ClearanceHandler handles the per-organization clearance workflow.
type ClearanceHandler struct {
	Command *command.UseCase
	Query   *query.UseCase
}

// ListPendingClearances pages through the pending clearances of the
// authenticated organization.
func (handler *ClearanceHandler) ListPendingClearances(c *fiber.Ctx) error {
	ctx := c.UserContext()

	queryHeader := http.ValidateParameters(c.Queries())

	pending, err := handler.Query.ListPendingClearances(ctx, organizationFrom(c), queryHeader.ToOffsetPagination())
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, pending)
}

// CountPendingClearances counts the pending clearances of the authenticated
// organization.
func (handler *ClearanceHandler) CountPendingClearances(c *fiber.Ctx) error {
	ctx := c.UserContext()

	count, err := handler.Query.CountPendingClearances(ctx, organizationFrom(c))
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, fiber.Map{"count": count})
}

// UpdatePendingClearances stamps cleared revisions.
func (handler *ClearanceHandler) UpdatePendingClearances(c *fiber.Ctx) error {
	ctx := c.UserContext()

	payload := []struct {
		PlaceID         string  `json:"placeId"`
		ClearedRevision *uint64 `json:"clearedRevision,omitempty"`
	}{}

	if err := c.BodyParser(&payload); err != nil {
		return http.WithError(c, err)
	}

	clearances := make([]mmodel.ClearanceForPlace, len(payload))

	for i, item := range payload {
		clearances[i] = mmodel.ClearanceForPlace{PlaceID: mmodel.ID(item.PlaceID)}

		if item.ClearedRevision != nil {
			rev := mmodel.Revision(*item.ClearedRevision)
			clearances[i].ClearedRevision = &rev
		}
	}

	updated, err := handler.Command.UpdatePendingClearances(ctx, organizationFrom(c), clearances)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, fiber.Map{"updated": updated})
}

// CleanupPendingClearances removes the rows caught up with the current
// place revisions.
func (handler *ClearanceHandler) CleanupPendingClearances(c *fiber.Ctx) error {
	ctx := c.UserContext()

	cleaned, err := handler.Command.CleanupPendingClearances(ctx, organizationFrom(c))
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, fiber.Map{"cleaned": cleaned})
}
