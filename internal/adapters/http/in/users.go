package in

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/services/command"
	"github.com/kartevonmorgen/openfairdb/internal/services/query"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"github.com/kartevonmorgen/openfairdb/pkg/net/http"
)

// UserHandler handles HTTP requests for user and subscription operations.
type UserHandler struct {
	Command *command.UseCase
	Query   *query.UseCase
}

// CreateUser registers a new user.
func (handler *UserHandler) CreateUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	input := &mmodel.CreateUserInput{}
	if err := c.BodyParser(input); err != nil {
		return http.WithError(c, err)
	}

	user, err := handler.Command.CreateUser(ctx, input)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.Created(c, fiber.Map{"email": user.Email})
}

// Login verifies credentials and establishes the session.
func (handler *UserHandler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	input := &mmodel.LoginInput{}
	if err := c.BodyParser(input); err != nil {
		return http.WithError(c, err)
	}

	user, err := handler.Command.Login(ctx, input)
	if err != nil {
		return http.WithError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "user_email",
		Value:    user.Email.String(),
		HTTPOnly: true,
	})

	return http.OK(c, fiber.Map{"email": user.Email, "role": user.Role.String()})
}

// Logout clears the session.
func (handler *UserHandler) Logout(c *fiber.Ctx) error {
	c.ClearCookie("user_email")

	return http.NoContent(c)
}

// ConfirmEmailAddress consumes an email-confirmation token.
func (handler *UserHandler) ConfirmEmailAddress(c *fiber.Ctx) error {
	ctx := c.UserContext()

	payload := struct {
		Token string `json:"token"`
	}{}

	if err := c.BodyParser(&payload); err != nil {
		return http.WithError(c, err)
	}

	user, err := handler.Command.ConfirmEmailAddress(ctx, payload.Token)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, fiber.Map{"email": user.Email})
}

// RequestPasswordReset issues a reset token.
func (handler *UserHandler) RequestPasswordReset(c *fiber.Ctx) error {
	ctx := c.UserContext()

	payload := struct {
		Email string `json:"email"`
	}{}

	if err := c.BodyParser(&payload); err != nil {
		return http.WithError(c, err)
	}

	if err := handler.Command.RequestPasswordReset(ctx, payload.Email); err != nil {
		return http.WithError(c, err)
	}

	return http.NoContent(c)
}

// ResetPassword consumes a reset token and stores the new password.
func (handler *UserHandler) ResetPassword(c *fiber.Ctx) error {
	ctx := c.UserContext()

	payload := struct {
		Token       string `json:"token"`
		NewPassword string `json:"newPassword"`
	}{}

	if err := c.BodyParser(&payload); err != nil {
		return http.WithError(c, err)
	}

	if err := handler.Command.ResetPassword(ctx, payload.Token, payload.NewPassword); err != nil {
		return http.WithError(c, err)
	}

	return http.NoContent(c)
}

// GetCurrentUser returns the session user's account.
func (handler *UserHandler) GetCurrentUser(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "No active session.")
	}

	user, err := handler.Query.GetUser(ctx, email, email)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, user)
}

// SubscribeToBbox replaces the user's bbox subscription.
func (handler *UserHandler) SubscribeToBbox(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to subscribe.")
	}

	payload := struct {
		Bbox string `json:"bbox"`
	}{}

	if err := c.BodyParser(&payload); err != nil {
		return http.WithError(c, err)
	}

	bbox, err := mmodel.ParseMapBbox(payload.Bbox)
	if err != nil {
		return http.BadRequest(c, http.ValidationKnownFieldsError{
			Title:   "Invalid Bounding Box",
			Message: err.Error(),
		})
	}

	sub, err := handler.Command.SubscribeToBbox(ctx, email, bbox)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.Created(c, sub)
}

// UnsubscribeAllBboxes removes the user's bbox subscriptions.
func (handler *UserHandler) UnsubscribeAllBboxes(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to unsubscribe.")
	}

	if _, err := handler.Command.UnsubscribeAllBboxes(ctx, email); err != nil {
		return http.WithError(c, err)
	}

	return http.NoContent(c)
}

// GetBboxSubscriptions lists the user's bbox subscriptions.
func (handler *UserHandler) GetBboxSubscriptions(c *fiber.Ctx) error {
	ctx := c.UserContext()

	email, ok := userEmailFrom(c)
	if !ok {
		return http.Unauthorized(c, "", "Unauthorized", "Sign in to list subscriptions.")
	}

	subscriptions, err := handler.Query.BboxSubscriptions(ctx, email)
	if err != nil {
		return http.WithError(c, err)
	}

	return http.OK(c, subscriptions)
}
