package gateways

import (
	"context"
	"encoding/json"

	"github.com/kartevonmorgen/openfairdb/internal/adapters/rabbitmq"
	"github.com/kartevonmorgen/openfairdb/pkg"
	"github.com/kartevonmorgen/openfairdb/pkg/mmodel"
)

// NotificationGateway fans out informational events. All methods are
// fire-and-forget: a failed notification never fails the enclosing request.
//
//go:generate mockgen --destination=gateways.mock.go --package=gateways . NotificationGateway,GeoCodingGateway
type NotificationGateway interface {
	PlaceAdded(ctx context.Context, subscribers []mmodel.EmailAddress, place *mmodel.Place)
	PlaceUpdated(ctx context.Context, subscribers []mmodel.EmailAddress, place *mmodel.Place)
	EventCreated(ctx context.Context, event *mmodel.Event)
	EventUpdated(ctx context.Context, event *mmodel.Event)
	UserRegistered(ctx context.Context, user *mmodel.User, confirmationToken string)
	UserResetPasswordRequested(ctx context.Context, emailNonce mmodel.EmailNonce)
}

const notificationExchange = "openfairdb.notifications"

// RabbitMQNotificationGateway publishes notification messages over AMQP for
// the email gateway to consume.
type RabbitMQNotificationGateway struct {
	Producer rabbitmq.ProducerRepository
}

// NewRabbitMQNotificationGateway creates a RabbitMQNotificationGateway.
func NewRabbitMQNotificationGateway(producer rabbitmq.ProducerRepository) *RabbitMQNotificationGateway {
	return &RabbitMQNotificationGateway{Producer: producer}
}

type placeMessage struct {
	Subscribers []string      `json:"subscribers,omitempty"`
	Place       *mmodel.Place `json:"place"`
}

type userMessage struct {
	Email             string `json:"email"`
	ConfirmationToken string `json:"confirmationToken,omitempty"`
}

type resetPasswordMessage struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// PlaceAdded notifies the subscribers whose bbox contains the new place.
func (g *RabbitMQNotificationGateway) PlaceAdded(ctx context.Context, subscribers []mmodel.EmailAddress, place *mmodel.Place) {
	g.publish(ctx, "place.added", placeMessage{Subscribers: emails(subscribers), Place: place})
}

// PlaceUpdated notifies the subscribers whose bbox contains the updated place.
func (g *RabbitMQNotificationGateway) PlaceUpdated(ctx context.Context, subscribers []mmodel.EmailAddress, place *mmodel.Place) {
	g.publish(ctx, "place.updated", placeMessage{Subscribers: emails(subscribers), Place: place})
}

// EventCreated announces a new event.
func (g *RabbitMQNotificationGateway) EventCreated(ctx context.Context, event *mmodel.Event) {
	g.publish(ctx, "event.created", event)
}

// EventUpdated announces an updated event.
func (g *RabbitMQNotificationGateway) EventUpdated(ctx context.Context, event *mmodel.Event) {
	g.publish(ctx, "event.updated", event)
}

// UserRegistered sends the email-confirmation token to a fresh user.
func (g *RabbitMQNotificationGateway) UserRegistered(ctx context.Context, user *mmodel.User, confirmationToken string) {
	g.publish(ctx, "user.registered", userMessage{Email: user.Email.String(), ConfirmationToken: confirmationToken})
}

// UserResetPasswordRequested sends the password-reset token.
func (g *RabbitMQNotificationGateway) UserResetPasswordRequested(ctx context.Context, emailNonce mmodel.EmailNonce) {
	g.publish(ctx, "user.reset_password", resetPasswordMessage{
		Email: emailNonce.Email.String(),
		Token: emailNonce.EncodeToString(),
	})
}

func (g *RabbitMQNotificationGateway) publish(ctx context.Context, key string, payload any) {
	logger := pkg.NewLoggerFromContext(ctx)

	message, err := json.Marshal(payload)
	if err != nil {
		logger.Errorf("Failed to marshal notification %s: %v", key, err)

		return
	}

	if err := g.Producer.ProducerDefault(ctx, notificationExchange, key, message); err != nil {
		logger.Errorf("Failed to send notification %s: %v", key, err)
	}
}

func emails(addresses []mmodel.EmailAddress) []string {
	out := make([]string, len(addresses))
	for i, a := range addresses {
		out[i] = a.String()
	}

	return out
}
