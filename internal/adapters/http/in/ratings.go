package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/services/command"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// RatingHandler handles HTTP requests for rating operations.
type RatingHandler struct {
	Command *command.UseCase
	Query   *query.UseCase
}

// CreateRating rates a place.
func (handler *RatingHandler) CreateRating(c *fiber.Ctx) error {
	ctx := c.UserContext()

	input := &mmodel.CreateRatingInput{}
	if err := c.BodyParser(input); err != nil {
		return http.WithError(c, err)
	}

	ratingID, commentID, err := handler.Command.CreateRating(ctx, input)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.Created(c, fiber.Map{"ratingId": ratingID, "commentId": commentID})
}

// GetRatings retrieves a comma-separated list of ratings.
func (handler *RatingHandler) GetRatings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var ids []mmodel.ID
	for _, id := range splitCommaList(c.Params("ids")) {
		ids = append(ids, mmodel.ID(id))
	}

	ratings, err := handler.Query.GetRatings(ctx, ids)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, ratings)
}

// ArchiveRatings archives a list of ratings and their comments.
func (handler *RatingHandler) ArchiveRatings(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to archive ratings.")
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

	archived, err := handler.Command.ArchiveRatings(ctx, ids, email)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, fiber.Map{"archived": archived})
}

// ArchiveComments archives a list of comments.
func (handler *RatingHandler) ArchiveComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to archive comments.")
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

	archived, err := handler.Command.ArchiveComments(ctx, ids, email)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, fiber.Map{"archived": archived})
}
