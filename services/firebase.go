package services

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"blogapi/repositories"
)

// Notifier pushes FCM notifications to the blog owner's registered devices.
// A nil Notifier (no credentials configured) silently drops notifications.
type Notifier struct {
	client  *messaging.Client
	devices *repositories.DeviceRepository
}

func NewNotifier(credentialsPath string, devices *repositories.DeviceRepository) (*Notifier, error) {
	if credentialsPath == "" {
		return nil, nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, err
	}

	log.Info("firebase messaging client initialized")
	return &Notifier{client: client, devices: devices}, nil
}

// NotifyDigest sends a plain title/body push to every registered device.
func (n *Notifier) NotifyDigest(ctx context.Context, title, body string) {
	if n == nil {
		return
	}

	tokens, err := n.devices.Tokens(ctx)
	if err != nil {
		log.Errorf("Error loading device tokens: %s", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{Title: title, Body: body},
		Tokens:       tokens,
	}
	response, err := n.client.SendEachForMulticast(ctx, message)
	if err != nil {
		log.Errorf("Error sending digest: %s", err)
		return
	}
	log.Infof("digest sent: success=%d failure=%d", response.SuccessCount, response.FailureCount)
}

// NotifyNewComment fans a comment notification out to every registered
// device. Dead tokens reported by FCM are dropped from storage.
func (n *Notifier) NotifyNewComment(ctx context.Context, authorName, postID, preview string) {
	if n == nil {
		return
	}

	tokens, err := n.devices.Tokens(ctx)
	if err != nil {
		log.Errorf("Error loading device tokens: %s", err)
		return
	}
	if len(tokens) == 0 {
		return
	}

	message := &messaging.MulticastMessage{
		Notification: &messaging.Notification{
			Title: "New comment from " + authorName,
			Body:  preview,
		},
		Data:   map[string]string{"postId": postID},
		Tokens: tokens,
	}

	response, err := n.client.SendEachForMulticast(ctx, message)
	if err != nil {
		log.Errorf("Error sending comment notification: %s", err)
		return
	}
	log.Infof("comment notification sent: success=%d failure=%d", response.SuccessCount, response.FailureCount)

	for i, resp := range response.Responses {
		if resp.Success {
			continue
		}
		if messaging.IsUnregistered(resp.Error) {
			if err := n.devices.Remove(ctx, tokens[i]); err != nil {
				log.Errorf("Error removing dead token: %s", err)
			}
		}
	}
}
