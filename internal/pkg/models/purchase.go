package models

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRecord represents one logged transaction. Score, tier and badge
// fields are computed at append time and never edited afterwards.
type PurchaseRecord struct {
	ID            uuid.UUID `json:"id" db:"id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	Product       string    `json:"product" db:"product"`
	Brand         string    `json:"brand" db:"brand"`
	Category      string    `json:"category" db:"category"`
	Price         float64   `json:"price" db:"price"`
	Currency      string    `json:"currency" db:"currency"`
	Origin        string    `json:"origin" db:"origin"`
	TransportMode string    `json:"transport_mode" db:"transport_mode"`
	Eco           bool      `json:"eco" db:"eco"`
	ImpactScore   float64   `json:"impact_score" db:"impact_score"`
	RewardTier    int       `json:"reward_tier" db:"reward_tier"`
	ImpactBand    string    `json:"impact_band" db:"impact_band"`
	Suggestion    string    `json:"suggestion" db:"suggestion"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PurchaseRequest represents a candidate purchase submitted by the form
type PurchaseRequest struct {
	Product       string  `json:"product"`
	Brand         string  `json:"brand"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Origin        string  `json:"origin"`
	TransportMode string  `json:"transport_mode"`
}

// MonthlyAggregate holds the dashboard numbers for one calendar month
type MonthlyAggregate struct {
	Month         string  `json:"month" db:"month"`
	TotalSpend    float64 `json:"total_spend" db:"total_spend"`
	TotalImpact   float64 `json:"total_impact" db:"total_impact"`
	PurchaseCount int     `json:"purchase_count" db:"purchase_count"`
	EcoCount      int     `json:"eco_count" db:"eco_count"`
}

// DashboardSummary holds the headline dashboard numbers
type DashboardSummary struct {
	TotalSpend  float64 `json:"total_spend"`
	TotalImpact float64 `json:"total_impact"`
	EcoCount    int     `json:"eco_count"`
	Month       string  `json:"month,omitempty"`
}

// PurchaseTip pairs a logged purchase with its suggestion line
type PurchaseTip struct {
	Product    string `json:"product"`
	Suggestion string `json:"suggestion"`
}

// TipsResponse is the payload of the tips endpoint
type TipsResponse struct {
	EcoTip    string        `json:"eco_tip"`
	Purchases []PurchaseTip `json:"purchases"`
}

// PurchaseRecordedEvent is published after a purchase is appended to the ledger
type PurchaseRecordedEvent struct {
	PurchaseID  string    `json:"purchase_id"`
	UserID      string    `json:"user_id"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	ImpactScore float64   `json:"impact_score"`
	RewardTier  int       `json:"reward_tier"`
	Eco         bool      `json:"eco"`
	Timestamp   time.Time `json:"timestamp"`
}

// BadgeAwardedEvent is published the first time a user earns a badge
type BadgeAwardedEvent struct {
	UserID    string    `json:"user_id"`
	Badge     string    `json:"badge"`
	Timestamp time.Time `json:"timestamp"`
}
