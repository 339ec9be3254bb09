package impact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCalculator(t *testing.T, transportModeling bool) *Calculator {
	t.Helper()
	tables, err := NewTables(DefaultTablesData())
	require.NoError(t, err)
	return NewCalculator(tables, DefaultRewardPolicy(), transportModeling)
}

func TestCalculate_SimpleVariant(t *testing.T) {
	calc := newTestCalculator(t, false)

	tests := []struct {
		name          string
		input         Input
		expectedScore float64
		expectedBand  string
	}{
		{
			name: "Standard electronics scores at the category base",
			input: Input{
				Category: "Electronics",
				Brand:    "VoltMax",
				Price:    100,
			},
			expectedScore: 400,
			expectedBand:  BandLow,
		},
		{
			name: "Eco electronics gets the production discount",
			input: Input{
				Category: "Electronics",
				Brand:    "ReCircuit",
				Price:    100,
			},
			expectedScore: 160,
			expectedBand:  BandLow,
		},
		{
			name: "Zero price groceries score zero",
			input: Input{
				Category: "Groceries",
				Brand:    "AnyBrand",
				Price:    0,
			},
			expectedScore: 0,
			expectedBand:  BandLow,
		},
		{
			name: "Medium band purchase",
			input: Input{
				Category: "Furniture",
				Brand:    "OakHaus",
				Price:    300,
			},
			expectedScore: 900,
			expectedBand:  BandMedium,
		},
		{
			name: "High band purchase",
			input: Input{
				Category: "Electronics",
				Brand:    "VoltMax",
				Price:    600,
			},
			expectedScore: 2400,
			expectedBand:  BandHigh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment, err := calc.Calculate(tt.input)

			require.NoError(t, err)
			assert.InDelta(t, tt.expectedScore, assessment.ImpactScore, 1e-9)
			assert.Equal(t, tt.expectedBand, assessment.Band)
			assert.Equal(t, bandSuggestions[tt.expectedBand], assessment.Suggestion)
			assert.Zero(t, assessment.TransportImpact)
		})
	}
}

func TestCalculate_TransportVariant(t *testing.T) {
	calc := newTestCalculator(t, true)

	tests := []struct {
		name               string
		input              Input
		expectedProduction float64
		expectedTransport  float64
		expectedScore      float64
	}{
		{
			name: "Eco clothing from a local origin has no transport impact",
			input: Input{
				Category:      "Clothing",
				Brand:         "LoomKind",
				Price:         50,
				Origin:        "Local",
				TransportMode: "road",
			},
			expectedProduction: 50,
			expectedTransport:  0,
			expectedScore:      50,
		},
		{
			name: "Standard electronics shipped domestic by road",
			input: Input{
				Category:      "Electronics",
				Brand:         "VoltMax",
				Price:         100,
				Origin:        "Domestic",
				TransportMode: "road",
			},
			expectedProduction: 480,
			expectedTransport:  60,
			expectedScore:      540,
		},
		{
			name: "Overseas air freight dominates the score",
			input: Input{
				Category:      "Groceries",
				Brand:         "FarmDirect",
				Price:         10,
				Origin:        "Overseas",
				TransportMode: "air",
			},
			expectedProduction: 4.8,
			expectedTransport:  5400,
			expectedScore:      5404.8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment, err := calc.Calculate(tt.input)

			require.NoError(t, err)
			assert.InDelta(t, tt.expectedProduction, assessment.ProductionImpact, 1e-9)
			assert.InDelta(t, tt.expectedTransport, assessment.TransportImpact, 1e-9)
			assert.InDelta(t, tt.expectedScore, assessment.ImpactScore, 1e-9)
		})
	}
}

func TestCalculate_Errors(t *testing.T) {
	tests := []struct {
		name              string
		transportModeling bool
		input             Input
		expectedErr       error
	}{
		{
			name:              "Negative price is rejected before any lookup",
			transportModeling: false,
			input:             Input{Category: "Electronics", Brand: "VoltMax", Price: -5},
			expectedErr:       ErrInvalidPurchaseInput,
		},
		{
			name:              "Unknown category",
			transportModeling: false,
			input:             Input{Category: "Unknown", Brand: "VoltMax", Price: 10},
			expectedErr:       ErrUnknownCategory,
		},
		{
			name:              "Unknown origin with transport modeling",
			transportModeling: true,
			input:             Input{Category: "Clothing", Brand: "LoomKind", Price: 10, Origin: "Mars", TransportMode: "road"},
			expectedErr:       ErrUnknownOrigin,
		},
		{
			name:              "Unknown transport mode",
			transportModeling: true,
			input:             Input{Category: "Clothing", Brand: "LoomKind", Price: 10, Origin: "Local", TransportMode: "teleport"},
			expectedErr:       ErrUnknownTransportMode,
		},
		{
			name:              "Unknown origin is still rejected when modeling is off",
			transportModeling: false,
			input:             Input{Category: "Clothing", Brand: "LoomKind", Price: 10, Origin: "Mars"},
			expectedErr:       ErrUnknownOrigin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := newTestCalculator(t, tt.transportModeling)

			assessment, err := calc.Calculate(tt.input)

			assert.Nil(t, assessment)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestCalculate_Determinism(t *testing.T) {
	calc := newTestCalculator(t, true)
	input := Input{
		Category:      "Furniture",
		Brand:         "TimberCycle",
		Price:         249.99,
		Origin:        "Continental",
		TransportMode: "rail",
	}

	first, err := calc.Calculate(input)
	require.NoError(t, err)

	second, err := calc.Calculate(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCalculate_PriceMonotonicity(t *testing.T) {
	calc := newTestCalculator(t, true)

	var previous float64
	for _, price := range []float64{0, 1, 9.5, 100, 2500, 100000} {
		assessment, err := calc.Calculate(Input{
			Category:      "Clothing",
			Brand:         "VoltMax",
			Price:         price,
			Origin:        "Domestic",
			TransportMode: "sea",
		})

		require.NoError(t, err)
		assert.GreaterOrEqual(t, assessment.ImpactScore, previous)
		assert.GreaterOrEqual(t, assessment.ImpactScore, 0.0)
		previous = assessment.ImpactScore
	}
}

func TestCalculate_EcoDiscount(t *testing.T) {
	calc := newTestCalculator(t, true)

	eco, err := calc.Calculate(Input{
		Category:      "Groceries",
		Brand:         "FarmDirect",
		Price:         80,
		Origin:        "Domestic",
		TransportMode: "road",
	})
	require.NoError(t, err)

	standard, err := calc.Calculate(Input{
		Category:      "Groceries",
		Brand:         "BulkBarn",
		Price:         80,
		Origin:        "Domestic",
		TransportMode: "road",
	})
	require.NoError(t, err)

	assert.Less(t, eco.ProductionImpact, standard.ProductionImpact)
	assert.Equal(t, eco.TransportImpact, standard.TransportImpact)
	assert.Equal(t, ClassificationEco, eco.Classification)
	assert.Equal(t, ClassificationStandard, standard.Classification)
}

func TestCalculate_RewardPolicy(t *testing.T) {
	calc := newTestCalculator(t, true)

	tests := []struct {
		name          string
		input         Input
		expectedUnits int
		expectedBadge string
	}{
		{
			name: "Eco brand from a local origin earns the top tier",
			input: Input{
				Category:      "Clothing",
				Brand:         "LoomKind",
				Price:         20,
				Origin:        "Local",
				TransportMode: "road",
			},
			expectedUnits: 15,
			expectedBadge: "Eco Saver",
		},
		{
			name: "Eco brand from a non-local origin earns the medium tier",
			input: Input{
				Category:      "Electronics",
				Brand:         "ReCircuit",
				Price:         20,
				Origin:        "Overseas",
				TransportMode: "sea",
			},
			expectedUnits: 10,
			expectedBadge: "Green Shopper",
		},
		{
			name: "Standard brand earns the base tier with no badge",
			input: Input{
				Category:      "Electronics",
				Brand:         "VoltMax",
				Price:         20,
				Origin:        "Local",
				TransportMode: "road",
			},
			expectedUnits: 5,
			expectedBadge: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment, err := calc.Calculate(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedUnits, assessment.RewardTier)
			assert.Equal(t, tt.expectedBadge, assessment.Badge)
		})
	}
}

func TestCalculate_RewardPolicyWithoutTransportModeling(t *testing.T) {
	// Origin still feeds the reward policy when the transport term is off.
	calc := newTestCalculator(t, false)

	assessment, err := calc.Calculate(Input{
		Category: "Clothing",
		Brand:    "LoomKind",
		Price:    20,
		Origin:   "Local",
	})

	require.NoError(t, err)
	assert.Equal(t, 15, assessment.RewardTier)
	assert.Equal(t, "Eco Saver", assessment.Badge)
	assert.Zero(t, assessment.TransportImpact)
}
