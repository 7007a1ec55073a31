package integrations

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"google.golang.org/api/option"
)

var errNotifierDisabled = errors.New("push notifications are not configured")

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMNotifier sends tip notifications through Firebase Cloud Messaging.
type FCMNotifier struct {
	sender messageSender
}

func NewFCMNotifier(ctx context.Context, credentialsFile string) (*FCMNotifier, error) {
	if credentialsFile == "" {
		return nil, errNotifierDisabled
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase messaging: %w", err)
	}
	return &FCMNotifier{sender: client}, nil
}

func (notifier *FCMNotifier) Notify(ctx context.Context, token string, title string, body string) error {
	if notifier == nil || notifier.sender == nil {
		return errNotifierDisabled
	}
	_, err := notifier.sender.Send(ctx, &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{"kind": "nutricoach_tip"},
	})
	if err != nil {
		return fmt.Errorf("fcm send: %w", err)
	}
	return nil
}
