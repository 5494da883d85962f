package webpush

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/Mushus/retweet"
)

// Notifier delivers notifications over the web push protocol with VAPID
// authentication.
type Notifier struct {
	subscriber string
	publicKey  string
	privateKey string
}

func NewNotifier(cfg *retweet.Config) retweet.Notifier {
	return &Notifier{
		subscriber: cfg.VAPIDEmail,
		publicKey:  cfg.VAPIDPublicKey,
		privateKey: cfg.VAPIDPrivateKey,
	}
}

func (n *Notifier) Push(c context.Context, sub *retweet.PushSubscription, notification *retweet.Notification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	resp, err := webpush.SendNotificationWithContext(c, payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      n.subscriber,
		VAPIDPublicKey:  n.publicKey,
		VAPIDPrivateKey: n.privateKey,
		TTL:             3600,
	})
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return retweet.ErrSubscriptionGone
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("push endpoint returned status %d", resp.StatusCode)
	}
	return nil
}
