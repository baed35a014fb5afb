package in

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/kartevonmorgen/openfairdb/internal/adapters/postgres/organization"
	"github.com/kartevonmorgen/openfairdb/internal/services"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mlog"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
	"go.opentelemetry.io/otel/trace"
)

const (
	organizationLocal = "organization"
	userEmailLocal    = "userEmail"
)

// WithContext injects the logger and tracer into the request context.
func WithContext(logger mlog.Logger, tracer trace.Tracer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := pkg.ContextWithLogger(c.UserContext(), logger)
		ctx = pkg.ContextWithTracer(ctx, tracer)

		c.SetUserContext(ctx)

		return c.Next()
	}
}

// WithOrganization resolves an "Authorization: Bearer <api_token>" header to
// the owning organization. Requests without a token pass through
// unauthenticated.
func WithOrganization(orgRepo organization.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return c.Next()
		}

		org, err := orgRepo.GetOrganizationByAPIToken(c.UserContext(), strings.TrimSpace(token))
		if err != nil {
			if errors.Is(err, services.ErrDatabaseItemNotFound) {
				return c.Next()
			}

			return err
		}

		c.Locals(organizationLocal, org)

		return c.Next()
	}
}

// WithSessionUser extracts the session user's email. The session cookie
// itself is managed outside the core; this boundary accepts the resolved
// email from the session layer.
func WithSessionUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := c.Cookies("user_email")
		if email == "" {
			email = c.Get("X-User-Email")
		}

		if email != "" {
			if parsed, err := mmodel.ParseEmailAddress(email); err == nil {
				c.Locals(userEmailLocal, parsed)
			}
		}

		return c.Next()
	}
}

// organizationFrom returns the authenticated organization, if any.
func organizationFrom(c *fiber.Ctx) *mmodel.Organization {
	if org, ok := c.Locals(organizationLocal).(*mmodel.Organization); ok {
		return org
	}

	return nil
}

// userEmailFrom returns the session user's email, if any.
func userEmailFrom(c *fiber.Ctx) (mmodel.EmailAddress, bool) {
	if email, ok := c.Locals(userEmailLocal).(mmodel.EmailAddress); ok {
		return email, true
	}

	return "", false
}
