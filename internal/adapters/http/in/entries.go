package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/services/command"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// EntryHandler handles HTTP requests for place operations.
type EntryHandler struct {
	Command *command.UseCase
	Query   *query.UseCase
}

// CreateEntry creates a new place.
func (handler *EntryHandler) CreateEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	input := &mmodel.CreatePlaceInput{}
	if err := c.BodyParser(input); err != nil {
		return http.WithError(c, err)
	}

	var createdBy *mmodel.EmailAddress
	if email, ok := userEmailFrom(c); ok {
		createdBy = &email
	}

	place, err := handler.Command.CreatePlace(ctx, input, createdBy, organizationFrom(c))
	if err != nil {
		return http.WithError(c, err)
	}

	return http.Created(c, place.ID)
}

// UpdateEntry appends a new revision to a place.
func (handler *EntryHandler) UpdateEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id := mmodel.ID(c.Params("id"))

	input := &mmodel.UpdatePlaceInput{}
	if err := c.BodyParser(input); err != nil {
		return http.WithError(c, err)
	}

	var updatedBy *mmodel.EmailAddress
	if email, ok := userEmailFrom(c); ok {
		updatedBy = &email
	}

	place, err := handler.Command.UpdatePlace(ctx, id, input, updatedBy, organizationFrom(c))
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, place.ID)
}

// GetEntry retrieves the current revision of a place.
func (handler *EntryHandler) GetEntry(c *fiber.Ctx) error {
	ctx := c.UserContext()

	placeWithStatus, err := handler.Query.GetPlace(ctx, mmodel.ID(c.Params("id")))
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, placeWithStatus)
}

// GetEntryRatings retrieves the ratings of a place with their comments.
func (handler *EntryHandler) GetEntryRatings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	ratings, err := handler.Query.GetPlaceRatings(ctx, mmodel.ID(c.Params("id")))
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, ratings)
}

// ReviewEntries applies a review status transition to a list of places.
func (handler *EntryHandler) ReviewEntries(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to review places.")
	}

	payload := struct {
		IDs     []string `json:"ids"`
		Status  int      `json:"status"`
		Context *string  `json:"context,omitempty"`
		Comment *string  `json:"comment,omitempty"`
	}{}

	if err := c.BodyParser(&payload); err != nil {
		return http.WithError(c, err)
	}

	status, err := mmodel.ParseReviewStatus(payload.Status)
	if err != nil {
		return http.BadRequest(c, http.ValidationKnownFieldsError{
			Title:   "Invalid Review Status",
			Message: err.Error(),
		})
	}

	ids := make([]mmodel.ID, len(payload.IDs))
	for i, id := range payload.IDs {
		ids[i] = mmodel.ID(id)
	}

	reviewed, err := handler.Command.ReviewPlaces(ctx, ids, &mmodel.Review{
		ReviewerEmail: email,
		Status:        status,
		Context:       payload.Context,
		Comment:       payload.Comment,
	})
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, fiber.Map{"reviewed": reviewed})
}

// GetEntryHistory retrieves the audit trail of a place.
func (handler *EntryHandler) GetEntryHistory(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to read the place history.")
	}

	history, err := handler.Query.GetPlaceHistory(ctx, mmodel.ID(c.Params("id")), nil, email)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, history)
}

// GetRecentlyChanged lists places by their most recent review activity.
func (handler *EntryHandler) GetRecentlyChanged(c *fiber.Ctx) error {
	ctx := c.UserContext()

	queryHeader := http.ValidateParameters(c.Queries())

	changed, err := handler.Query.RecentlyChangedPlaces(ctx,
		placeRecentlyChangedParams(c), queryHeader.ToOffsetPagination())
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, changed)
}

// GetMostPopularTags lists tag frequencies over current place revisions.
func (handler *EntryHandler) GetMostPopularTags(c *fiber.Ctx) error {
	ctx := c.UserContext()

	queryHeader := http.ValidateParameters(c.Queries())

	frequencies, err := handler.Query.MostPopularTags(ctx,
		popularTagsParams(c), queryHeader.ToOffsetPagination())
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, frequencies)
}
