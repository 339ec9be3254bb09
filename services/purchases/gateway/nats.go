package gateway

import (
	"context"

	"github.com/greenbasket/greenbasket/internal/pkg/constants"
	"github.com/greenbasket/greenbasket/internal/pkg/models"
	natspkg "github.com/greenbasket/greenbasket/internal/pkg/nats"
)

// PurchaseGW publishes purchase events to NATS
type PurchaseGW struct {
	natsClient *natspkg.Client
}

// NewPurchaseGW creates a new purchase gateway
func NewPurchaseGW(natsClient *natspkg.Client) *PurchaseGW {
	return &PurchaseGW{natsClient: natsClient}
}

// PublishPurchaseRecorded publishes a purchase recorded event
func (g *PurchaseGW) PublishPurchaseRecorded(ctx context.Context, event *models.PurchaseRecordedEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectPurchaseRecorded, event)
}

// PublishBadgeAwarded publishes a badge awarded event
func (g *PurchaseGW) PublishBadgeAwarded(ctx context.Context, event *models.BadgeAwardedEvent) error {
	return g.natsClient.PublishJSON(constants.SubjectBadgeAwarded, event)
}
