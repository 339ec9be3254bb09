package impact

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// Classification marks a brand as eco or standard within a category
type Classification string

const (
	ClassificationEco      Classification = "eco"
	ClassificationStandard Classification = "standard"
)

// TablesData is the on-disk shape of the lookup tables
type TablesData struct {
	// Categories maps product category to its base multiplier
	Categories map[string]float64 `mapstructure:"categories" json:"categories"`
	// TransportFactors maps transport mode to kg CO2e per km
	TransportFactors map[string]float64 `mapstructure:"transport_factors" json:"transport_factors"`
	// OriginDistancesKm maps a named origin to a transport distance in km
	OriginDistancesKm map[string]float64 `mapstructure:"origin_distances_km" json:"origin_distances_km"`
	// EcoBrands maps category to the brands classified as eco within it
	EcoBrands map[string][]string `mapstructure:"eco_brands" json:"eco_brands"`
}

// DefaultTablesData returns the built-in lookup tables
func DefaultTablesData() TablesData {
	return TablesData{
		Categories: map[string]float64{
			"Clothing":    2.5,
			"Electronics": 4.0,
			"Groceries":   1.2,
			"Furniture":   3.0,
			"Second-hand": 0.5,
		},
		TransportFactors: map[string]float64{
			"air":  0.6,
			"road": 0.12,
			"rail": 0.04,
			"sea":  0.02,
		},
		OriginDistancesKm: map[string]float64{
			"Local":       0,
			"Domestic":    500,
			"Continental": 2500,
			"Overseas":    9000,
		},
		EcoBrands: map[string][]string{
			"Clothing":    {"LoomKind", "PlainThread"},
			"Electronics": {"ReCircuit"},
			"Groceries":   {"FarmDirect", "GreenPantry"},
			"Furniture":   {"TimberCycle"},
			"Second-hand": {},
		},
	}
}

// Tables holds the immutable lookup data the calculator consults. Built once
// at startup and never mutated by purchase activity. Lookups are
// case-insensitive because viper lowercases map keys on unmarshal.
type Tables struct {
	categories    map[string]float64
	categoryNames map[string]string
	transport     map[string]float64
	origins       map[string]float64
	ecoBrands     map[string]map[string]bool
}

// NewTables validates the table data and builds the lookup structure
func NewTables(data TablesData) (*Tables, error) {
	if len(data.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories configured", ErrInvalidTables)
	}

	categories := make(map[string]float64, len(data.Categories))
	categoryNames := make(map[string]string, len(data.Categories))
	for category, multiplier := range data.Categories {
		if multiplier <= 0 {
			return nil, fmt.Errorf("%w: category %q has non-positive multiplier %v", ErrInvalidTables, category, multiplier)
		}
		categories[normalizeKey(category)] = multiplier
		categoryNames[normalizeKey(category)] = category
	}

	transport := make(map[string]float64, len(data.TransportFactors))
	for mode, factor := range data.TransportFactors {
		if factor <= 0 {
			return nil, fmt.Errorf("%w: transport mode %q has non-positive factor %v", ErrInvalidTables, mode, factor)
		}
		transport[normalizeKey(mode)] = factor
	}

	origins := make(map[string]float64, len(data.OriginDistancesKm))
	for origin, distance := range data.OriginDistancesKm {
		if distance < 0 {
			return nil, fmt.Errorf("%w: origin %q has negative distance %v", ErrInvalidTables, origin, distance)
		}
		origins[normalizeKey(origin)] = distance
	}

	ecoBrands := make(map[string]map[string]bool, len(data.EcoBrands))
	for category, brands := range data.EcoBrands {
		if _, ok := categories[normalizeKey(category)]; !ok {
			return nil, fmt.Errorf("%w: eco brand list references unconfigured category %q", ErrInvalidTables, category)
		}
		set := make(map[string]bool, len(brands))
		for _, brand := range brands {
			set[normalizeKey(brand)] = true
		}
		ecoBrands[normalizeKey(category)] = set
	}

	return &Tables{
		categories:    categories,
		categoryNames: categoryNames,
		transport:     transport,
		origins:       origins,
		ecoBrands:     ecoBrands,
	}, nil
}

// LoadTables reads table data from a YAML file via viper, falling back to the
// built-in defaults when path is empty. A file replaces the defaults wholesale;
// partial table files are rejected by validation rather than merged.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return NewTables(DefaultTablesData())
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read impact tables from %s: %w", path, err)
	}

	var data TablesData
	if err := v.Unmarshal(&data); err != nil {
		return nil, fmt.Errorf("failed to parse impact tables from %s: %w", path, err)
	}

	return NewTables(data)
}

// CategoryMultiplier returns the base multiplier for a product category
func (t *Tables) CategoryMultiplier(category string) (float64, error) {
	multiplier, ok := t.categories[normalizeKey(category)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	return multiplier, nil
}

// TransportFactor returns the emission factor (kg CO2e per km) for a mode
func (t *Tables) TransportFactor(mode string) (float64, error) {
	factor, ok := t.transport[normalizeKey(mode)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTransportMode, mode)
	}
	return factor, nil
}

// OriginDistanceKm returns the transport distance for a named origin
func (t *Tables) OriginDistanceKm(origin string) (float64, error) {
	distance, ok := t.origins[normalizeKey(origin)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrigin, origin)
	}
	return distance, nil
}

// IsLocalOrigin reports whether an origin maps to a zero transport distance
func (t *Tables) IsLocalOrigin(origin string) bool {
	distance, ok := t.origins[normalizeKey(origin)]
	return ok && distance == 0
}

// ClassifyBrand looks up a brand within the category's eco brand list.
// An unrecognized brand defaults to standard.
func (t *Tables) ClassifyBrand(brand, category string) Classification {
	set, ok := t.ecoBrands[normalizeKey(category)]
	if !ok {
		return ClassificationStandard
	}
	if set[normalizeKey(brand)] {
		return ClassificationEco
	}
	return ClassificationStandard
}

// Categories returns the configured category display names in sorted order
func (t *Tables) Categories() []string {
	names := make([]string, 0, len(t.categoryNames))
	for _, name := range t.categoryNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
