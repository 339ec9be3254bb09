package impact

import (
	"fmt"
)

// Production multipliers applied on top of the category base. Eco brands get
// a discount; standard brands carry a surcharge, but only in the full model
// where transport is priced in. The simple variant scores standard brands at
// the bare category base.
const (
	ecoProductionFactor            = 0.4
	standardProductionFactor       = 1.2
	simpleStandardProductionFactor = 1.0
)

// Impact bands shown on the dashboard, with their suggestion lines
const (
	BandLow    = "Low Impact"
	BandMedium = "Medium Impact"
	BandHigh   = "High Impact"
)

var bandSuggestions = map[string]string{
	BandLow:    "Excellent choice! Keep it up.",
	BandMedium: "Consider greener alternatives.",
	BandHigh:   "Try sustainable or second-hand options.",
}

// Band thresholds in score units
const (
	lowBandCeiling    = 500.0
	mediumBandCeiling = 2000.0
)

// RewardRule is one row of the reward policy table. Rules are evaluated in
// order; the first rule whose requirements hold applies.
type RewardRule struct {
	RequireEco   bool
	RequireLocal bool
	Units        int
	Badge        string
}

// DefaultRewardPolicy returns the standard reward policy table
func DefaultRewardPolicy() []RewardRule {
	return []RewardRule{
		{RequireEco: true, RequireLocal: true, Units: 15, Badge: "Eco Saver"},
		{RequireEco: true, Units: 10, Badge: "Green Shopper"},
		{Units: 5},
	}
}

// Input is one candidate purchase as submitted by the form. Origin and
// TransportMode may be empty when transport modeling is disabled.
type Input struct {
	Category      string
	Brand         string
	Price         float64
	Origin        string
	TransportMode string
}

// Assessment is the computed result for one purchase
type Assessment struct {
	ImpactScore      float64
	ProductionImpact float64
	TransportImpact  float64
	Classification   Classification
	RewardTier       int
	Badge            string
	Band             string
	Suggestion       string
}

// Calculator turns one candidate purchase into an impact score and reward
// tier. It is a pure function of its inputs and the tables; it never touches
// the ledger.
type Calculator struct {
	tables            *Tables
	policy            []RewardRule
	transportModeling bool
}

// NewCalculator creates a calculator over validated tables
func NewCalculator(tables *Tables, policy []RewardRule, transportModeling bool) *Calculator {
	if len(policy) == 0 {
		policy = DefaultRewardPolicy()
	}
	return &Calculator{
		tables:            tables,
		policy:            policy,
		transportModeling: transportModeling,
	}
}

// TransportModeling reports whether the transport term is enabled
func (c *Calculator) TransportModeling() bool {
	return c.transportModeling
}

// Tables returns the lookup tables the calculator consults
func (c *Calculator) Tables() *Tables {
	return c.tables
}

// Calculate computes the impact score and reward tier for one purchase.
// Recomputing from the same inputs always yields the same result.
func (c *Calculator) Calculate(in Input) (*Assessment, error) {
	if in.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative, got %v", ErrInvalidPurchaseInput, in.Price)
	}

	multiplier, err := c.tables.CategoryMultiplier(in.Category)
	if err != nil {
		return nil, err
	}

	classification := c.tables.ClassifyBrand(in.Brand, in.Category)

	productionFactor := standardProductionFactor
	if !c.transportModeling {
		productionFactor = simpleStandardProductionFactor
	}
	if classification == ClassificationEco {
		productionFactor = ecoProductionFactor
	}
	production := in.Price * multiplier * productionFactor

	var transport float64
	if c.transportModeling {
		distance, err := c.tables.OriginDistanceKm(in.Origin)
		if err != nil {
			return nil, err
		}
		factor, err := c.tables.TransportFactor(in.TransportMode)
		if err != nil {
			return nil, err
		}
		transport = distance * factor
	} else if in.Origin != "" {
		// Origin still feeds the reward policy when modeling is off,
		// so an unknown value remains a configuration error.
		if _, err := c.tables.OriginDistanceKm(in.Origin); err != nil {
			return nil, err
		}
	}

	score := production + transport
	band := bandFor(score)

	tier, badge := c.rewardFor(classification, in.Origin)

	return &Assessment{
		ImpactScore:      score,
		ProductionImpact: production,
		TransportImpact:  transport,
		Classification:   classification,
		RewardTier:       tier,
		Badge:            badge,
		Band:             band,
		Suggestion:       bandSuggestions[band],
	}, nil
}

// rewardFor applies the policy table in order and returns the first match
func (c *Calculator) rewardFor(classification Classification, origin string) (int, string) {
	eco := classification == ClassificationEco
	local := c.tables.IsLocalOrigin(origin)

	for _, rule := range c.policy {
		if rule.RequireEco && !eco {
			continue
		}
		if rule.RequireLocal && !local {
			continue
		}
		return rule.Units, rule.Badge
	}
	return 0, ""
}

func bandFor(score float64) string {
	switch {
	case score < lowBandCeiling:
		return BandLow
	case score < mediumBandCeiling:
		return BandMedium
	default:
		return BandHigh
	}
}
