package gateway

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"github.com/piresc/campusride/internal/pkg/models"
)

// Messenger is the part of the Firebase Cloud Messaging client the gateway uses
type Messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// Notify sends a push notification; a notification without a device token is dropped
func (g *TripGW) Notify(ctx context.Context, n *models.Notification) error {
	if g.messenger == nil || n.Token == "" {
		return nil
	}
	_, err := g.messenger.Send(ctx, &messaging.Message{
		Token: n.Token,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
	})
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	return nil
}
