package configurator

import "sort"

// SpaceType is the kind of outdoor installation (quiz step 1)
type SpaceType string

const (
	SpaceMangal  SpaceType = "mangal"
	SpaceKitchen SpaceType = "kitchen"
	SpaceComplex SpaceType = "complex"
)

// SpaceSize is the area reserved for the installation (quiz step 2)
type SpaceSize string

const (
	SizeCompact  SpaceSize = "compact"
	SizeStandard SpaceSize = "standard"
	SizePremium  SpaceSize = "premium"
)

// GuestsCount is the expected party size (quiz step 3)
type GuestsCount string

const (
	Guests4to6  GuestsCount = "4-6"
	Guests8to10 GuestsCount = "8-10"
	Guests12    GuestsCount = "12+"
)

// Feature is an optional kitchen module (quiz step 4)
type Feature string

const (
	FeatureSink    Feature = "sink"
	FeatureWorktop Feature = "worktop"
	FeatureStorage Feature = "storage"
	FeatureFridge  Feature = "fridge"
)

// CanopyType is the weather protection option (quiz step 5)
type CanopyType string

const (
	CanopyNone    CanopyType = "none"
	CanopyLight   CanopyType = "light"
	CanopyCapital CanopyType = "capital"
)

// Style is the finish style (quiz step 6)
type Style string

const (
	StyleMinimalist Style = "minimalist"
	StyleClassic    Style = "classic"
	StylePremium    Style = "premium"
)

// Budget is the budget tier (quiz step 7). It does not affect pricing.
type Budget string

const (
	BudgetEconomy  Budget = "economy"
	BudgetStandard Budget = "standard"
	BudgetPremium  Budget = "premium"
	BudgetCustom   Budget = "custom"
)

// featureOrder is the canonical vocabulary order of Feature values
var featureOrder = []Feature{FeatureSink, FeatureWorktop, FeatureStorage, FeatureFridge}

// Answers is the accumulated quiz input. Empty strings mean "not answered".
type Answers struct {
	SpaceType   SpaceType   `json:"spaceType" yaml:"spaceType"`
	SpaceSize   SpaceSize   `json:"spaceSize" yaml:"spaceSize"`
	GuestsCount GuestsCount `json:"guestsCount" yaml:"guestsCount"`
	Features    []Feature   `json:"features" yaml:"features"`
	CanopyType  CanopyType  `json:"canopyType" yaml:"canopyType"`
	Style       Style       `json:"style" yaml:"style"`
	Budget      Budget      `json:"budget" yaml:"budget"`
}

// Valid reports whether v is a known space type
func (v SpaceType) Valid() bool {
	return v == SpaceMangal || v == SpaceKitchen || v == SpaceComplex
}

// Valid reports whether v is a known space size
func (v SpaceSize) Valid() bool {
	return v == SizeCompact || v == SizeStandard || v == SizePremium
}

// Valid reports whether v is a known guest count
func (v GuestsCount) Valid() bool {
	return v == Guests4to6 || v == Guests8to10 || v == Guests12
}

// Valid reports whether v is a known feature token
func (v Feature) Valid() bool {
	for _, f := range featureOrder {
		if f == v {
			return true
		}
	}
	return false
}

// Valid reports whether v is a known canopy type
func (v CanopyType) Valid() bool {
	return v == CanopyNone || v == CanopyLight || v == CanopyCapital
}

// Valid reports whether v is a known style
func (v Style) Valid() bool {
	return v == StyleMinimalist || v == StyleClassic || v == StylePremium
}

// Valid reports whether v is a known budget tier
func (v Budget) Valid() bool {
	return v == BudgetEconomy || v == BudgetStandard || v == BudgetPremium || v == BudgetCustom
}

// FeatureSet returns the selected features as a set: unknown tokens and
// duplicates are dropped and the result is in vocabulary order.
func (a Answers) FeatureSet() []Feature {
	seen := make(map[Feature]bool, len(a.Features))
	out := make([]Feature, 0, len(a.Features))
	for _, f := range a.Features {
		if !f.Valid() || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		return featureRank(out[i]) < featureRank(out[j])
	})
	return out
}

// HasFeature reports whether f is selected
func (a Answers) HasFeature(f Feature) bool {
	for _, x := range a.Features {
		if x == f {
			return true
		}
	}
	return false
}

func featureRank(f Feature) int {
	for i, x := range featureOrder {
		if x == f {
			return i
		}
	}
	return len(featureOrder)
}
