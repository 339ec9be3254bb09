package purchases

import (
	"context"

	"github.com/greenbasket/greenbasket/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/greenbasket/greenbasket/services/purchases PurchaseGW

// PurchaseGW defines the interface for publishing purchase events
type PurchaseGW interface {
	PublishPurchaseRecorded(ctx context.Context, event *models.PurchaseRecordedEvent) error
	PublishBadgeAwarded(ctx context.Context, event *models.BadgeAwardedEvent) error
}
