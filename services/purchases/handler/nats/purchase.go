package nats

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"

	"github.com/greenbasket/greenbasket/internal/pkg/constants"
	"github.com/greenbasket/greenbasket/internal/pkg/logger"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
	natspkg "github.com/greenbasket/greenbasket/internal/pkg/nats"
	"github.com/greenbasket/greenbasket/services/purchases"
)

// NatsHandler consumes purchase events
type NatsHandler struct {
	purchaseUC purchases.PurchaseUC
	natsClient *natspkg.Client
	subs       []*nats.Subscription
}

// NewNatsHandler creates a new NATS handler
func NewNatsHandler(purchaseUC purchases.PurchaseUC, natsClient *natspkg.Client) *NatsHandler {
	return &NatsHandler{
		purchaseUC: purchaseUC,
		natsClient: natsClient,
	}
}

// InitConsumers subscribes to the purchase event subjects
func (h *NatsHandler) InitConsumers() error {
	sub, err := h.natsClient.Subscribe(constants.SubjectPurchaseRecorded, h.handlePurchaseRecorded)
	if err != nil {
		return err
	}
	h.subs = append(h.subs, sub)

	return nil
}

// handlePurchaseRecorded drops cached dashboard aggregates for the affected
// user so replicas serving dashboard reads do not return stale totals.
func (h *NatsHandler) handlePurchaseRecorded(msg *nats.Msg) {
	var event models.PurchaseRecordedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("Failed to unmarshal purchase recorded event", logger.Err(err))
		return
	}

	if err := h.purchaseUC.HandlePurchaseRecorded(context.Background(), &event); err != nil {
		logger.Warn("Failed to handle purchase recorded event",
			logger.String("user_id", event.UserID),
			logger.Err(err))
	}
}

// Close drains all subscriptions
func (h *NatsHandler) Close() {
	for _, sub := range h.subs {
		_ = sub.Unsubscribe()
	}
}
