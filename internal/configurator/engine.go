package configurator

import (
	"fmt"
	"math"
	"strings"
)

// PriceRange is an estimated price in whole rubles
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Result is the recommended configuration derived from a set of answers.
// It is computed on demand and never persisted.
type Result struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Dimensions  string     `json:"dimensions"`
	Materials   []string   `json:"materials"`
	Features    []string   `json:"features"`
	PriceRange  PriceRange `json:"priceRange"`
	Images      []string   `json:"images"`
}

var spaceTypeNames = map[SpaceType]string{
	SpaceMangal:  "Зона с мангалом",
	SpaceKitchen: "Мангальная кухня",
	SpaceComplex: "Комплексное решение",
}

var sizeNames = map[SpaceSize]string{
	SizeCompact:  "компактная",
	SizeStandard: "стандартная",
	SizePremium:  "просторная",
}

var styleNames = map[Style]string{
	StyleMinimalist: "в стиле минимализм",
	StyleClassic:    "в классическом стиле",
	StylePremium:    "в премиум исполнении",
}

var spaceDescriptions = map[SpaceType]string{
	SpaceMangal:  "Классическая зона для приготовления на огне с продуманной эргономикой.",
	SpaceKitchen: "Полноценная уличная кухня с зоной готовки и всеми необходимыми удобствами.",
	SpaceComplex: "Комплексное решение с беседкой, мангальной зоной и мебелью для полноценного отдыха.",
}

var guestsDescriptions = map[GuestsCount]string{
	Guests4to6:  "Рассчитана на семейные встречи.",
	Guests8to10: "Рассчитана на дружеские посиделки.",
	Guests12:    "Рассчитана на большие компании.",
}

var canopyDescriptions = map[CanopyType]string{
	CanopyLight:   "С легким навесом для защиты от непогоды.",
	CanopyCapital: "С капитальной беседкой для круглогодичного использования.",
}

var styleDescriptions = map[Style]string{
	StyleMinimalist: "Лаконичный дизайн без лишних деталей.",
	StyleClassic:    "Классическое исполнение из проверенных материалов.",
	StylePremium:    "Премиальные материалы и ручная отделка.",
}

var basePrices = map[SpaceType]PriceRange{
	SpaceMangal:  {Min: 25000, Max: 150000},
	SpaceKitchen: {Min: 150000, Max: 500000},
	SpaceComplex: {Min: 300000, Max: 1500000},
}

var defaultBasePrice = PriceRange{Min: 50000, Max: 150000}

// FeaturePrices is the add-on price of each kitchen module
var FeaturePrices = map[Feature]int64{
	FeatureSink:    25000,
	FeatureWorktop: 15000,
	FeatureStorage: 20000,
	FeatureFridge:  35000,
}

var canopyPrices = map[CanopyType]PriceRange{
	CanopyLight:   {Min: 80000, Max: 120000},
	CanopyCapital: {Min: 250000, Max: 400000},
}

var sizeDimensions = map[SpaceSize]string{
	SizeCompact:  "2.5 x 1.5 м",
	SizeStandard: "3.5 x 2.5 м",
	SizePremium:  "5 x 3.5 м",
}

var guestsDimensions = map[GuestsCount]string{
	Guests4to6:  "3 x 2 м",
	Guests8to10: "4 x 2.5 м",
	Guests12:    "5 x 3 м",
}

const defaultDimensions = "3.5 x 2.5 м"

var styleMaterials = map[Style][]string{
	StyleMinimalist: {"Сталь", "Бетон", "Стекло"},
	StylePremium:    {"Нержавеющая сталь", "Натуральный камень", "Закаленное стекло"},
	StyleClassic:    {"Сталь", "Дерево", "Кирпич"},
}

var baseFeatures = []string{
	"Зона для приготовления на углях",
	"Рабочие поверхности из нержавейки",
}

var featureNames = map[Feature]string{
	FeatureSink:    "Мойка с подводом воды",
	FeatureWorktop: "Расширенная рабочая поверхность",
	FeatureStorage: "Встроенные места хранения",
	FeatureFridge:  "Встроенный холодильник",
}

var canopyFeatures = map[CanopyType]string{
	CanopyLight:   "Легкий навес от дождя и солнца",
	CanopyCapital: "Капитальная беседка с освещением",
}

var guestsFeatures = map[GuestsCount]string{
	Guests4to6:  "Мангал 80 см для семьи",
	Guests8to10: "Мангал 120 см для дружеских встреч",
	Guests12:    "Мангал 150+ см для больших компаний",
}

var spaceImages = map[SpaceType][]string{
	SpaceMangal: {
		"/configurator/result-main.jpg",
		"/configurator/mangal-1.jpg",
		"/configurator/mangal-2.jpg",
		"/configurator/mangal-3.jpg",
	},
	SpaceKitchen: {
		"/configurator/result-main.jpg",
		"/configurator/kitchen-1.jpg",
		"/configurator/kitchen-2.jpg",
		"/configurator/kitchen-3.jpg",
		"/configurator/with-canopy.jpg",
	},
	SpaceComplex: {
		"/configurator/result-main.jpg",
		"/configurator/complex-1.jpg",
		"/configurator/complex-2.jpg",
		"/configurator/complex-3.jpg",
		"/configurator/with-gazebo.jpg",
	},
}

// Calculate maps answers to a recommended configuration. It has no side
// effects and never fails: missing or unknown values take the default branch.
func Calculate(a Answers) Result {
	return Result{
		Name:        Name(a),
		Description: Description(a),
		Dimensions:  Dimensions(a.SpaceSize, a.GuestsCount),
		Materials:   Materials(a.Style),
		Features:    FeatureList(a),
		PriceRange:  Price(a),
		Images:      Images(a.SpaceType),
	}
}

// Name renders `{space} "{size}" {style}`, defaulting to mangal/standard/classic
func Name(a Answers) string {
	space, ok := spaceTypeNames[a.SpaceType]
	if !ok {
		space = spaceTypeNames[SpaceMangal]
	}
	size, ok := sizeNames[a.SpaceSize]
	if !ok {
		size = sizeNames[SizeStandard]
	}
	style, ok := styleNames[a.Style]
	if !ok {
		style = styleNames[StyleClassic]
	}
	return fmt.Sprintf("%s \"%s\" %s", space, size, style)
}

// Description joins one sentence per answered dimension: space type, guests,
// canopy and style, in that order.
func Description(a Answers) string {
	var parts []string
	if s, ok := spaceDescriptions[a.SpaceType]; ok {
		parts = append(parts, s)
	}
	if s, ok := guestsDescriptions[a.GuestsCount]; ok {
		parts = append(parts, s)
	}
	if s, ok := canopyDescriptions[a.CanopyType]; ok {
		parts = append(parts, s)
	}
	if s, ok := styleDescriptions[a.Style]; ok {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// Price applies, in order: base by space type, size multiplier, feature
// add-ons, canopy add-on, style multiplier. Bounds are rounded at the end.
func Price(a Answers) PriceRange {
	base, ok := basePrices[a.SpaceType]
	if !ok {
		base = defaultBasePrice
	}
	lo, hi := float64(base.Min), float64(base.Max)

	switch a.SpaceSize {
	case SizeCompact:
		hi *= 0.7
	case SizePremium:
		lo *= 1.5
		hi *= 2
	}

	var featuresTotal int64
	for _, f := range a.FeatureSet() {
		featuresTotal += FeaturePrices[f]
	}
	lo += float64(featuresTotal)
	hi += float64(featuresTotal)

	if c, ok := canopyPrices[a.CanopyType]; ok {
		lo += float64(c.Min)
		hi += float64(c.Max)
	}

	switch a.Style {
	case StylePremium:
		lo *= 1.5
		hi *= 2
	case StyleMinimalist:
		hi *= 0.8
	}

	return PriceRange{
		Min: int64(math.Round(lo)),
		Max: int64(math.Round(hi)),
	}
}

// Dimensions looks up footprint by size, then by guest count
func Dimensions(size SpaceSize, guests GuestsCount) string {
	if d, ok := sizeDimensions[size]; ok {
		return d
	}
	if d, ok := guestsDimensions[guests]; ok {
		return d
	}
	return defaultDimensions
}

// Materials looks up materials by style; classic is the default
func Materials(style Style) []string {
	m, ok := styleMaterials[style]
	if !ok {
		m = styleMaterials[StyleClassic]
	}
	return append([]string(nil), m...)
}

// FeatureList returns the two base features followed by selected modules,
// canopy and grill length entries.
func FeatureList(a Answers) []string {
	out := append([]string(nil), baseFeatures...)
	for _, f := range a.FeatureSet() {
		out = append(out, featureNames[f])
	}
	if s, ok := canopyFeatures[a.CanopyType]; ok {
		out = append(out, s)
	}
	if s, ok := guestsFeatures[a.GuestsCount]; ok {
		out = append(out, s)
	}
	return out
}

// Images returns the gallery for a space type. Nothing else affects it.
func Images(space SpaceType) []string {
	imgs, ok := spaceImages[space]
	if !ok {
		imgs = spaceImages[SpaceMangal]
	}
	return append([]string(nil), imgs...)
}
