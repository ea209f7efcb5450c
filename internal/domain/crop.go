package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrCropNotFound is returned when a crop profile name is not in the catalog.
	ErrCropNotFound = errors.New("crop not found")

	// ErrCropCoefficientNotFound is returned when a crop family has no Kc entry.
	ErrCropCoefficientNotFound = errors.New("crop coefficient not found")
)

// CropProfile is a crop/variety-region entry with FAO-56 stage lengths in days.
type CropProfile struct {
	Name            string `json:"name"`
	InitialDays     int    `json:"initial"`
	DevelopmentDays int    `json:"development"`
	MidSeasonDays   int    `json:"mid_season"`
	LateDays        int    `json:"late"`
}

// SeasonDays returns the total season length.
func (p CropProfile) SeasonDays() int {
	return p.InitialDays + p.DevelopmentDays + p.MidSeasonDays + p.LateDays
}

// CropCoefficients holds the FAO crop coefficient (Kc) for each growth stage.
type CropCoefficients struct {
	Initial     float64 `json:"initial"`
	Development float64 `json:"development"`
	MidSeason   float64 `json:"mid_season"`
	Late        float64 `json:"late"`
}

// ForStage returns the coefficient for the given stage, or 0 for an unknown stage.
func (c CropCoefficients) ForStage(stage GrowthStage) float64 {
	switch stage {
	case StageInitial:
		return c.Initial
	case StageDevelopment:
		return c.Development
	case StageMidSeason:
		return c.MidSeason
	case StageLate:
		return c.Late
	default:
		return 0
	}
}

// GeneralCropName returns the crop family used to key the Kc table: the
// profile name up to, not including, the first space. A name without spaces
// is returned unchanged.
func GeneralCropName(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

// FindCropProfile looks up a crop profile by its exact display name.
func FindCropProfile(name string) (CropProfile, error) {
	p, ok := cropProfileIndex[name]
	if !ok {
		return CropProfile{}, fmt.Errorf("%w: %q", ErrCropNotFound, name)
	}
	return p, nil
}

// FindCoefficients looks up the Kc set for a crop family.
func FindCoefficients(general string) (CropCoefficients, error) {
	c, ok := cropCoefficients[general]
	if !ok {
		return CropCoefficients{}, fmt.Errorf("%w: %q", ErrCropCoefficientNotFound, general)
	}
	return c, nil
}

// CropProfiles returns the catalog in its published order.
func CropProfiles() []CropProfile {
	out := make([]CropProfile, len(cropProfiles))
	copy(out, cropProfiles)
	return out
}

// CoefficientNames returns the crop families that have a Kc entry, sorted.
func CoefficientNames() []string {
	names := make([]string, 0, len(cropCoefficients))
	for name := range cropCoefficients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MismatchedCropProfiles returns the profiles whose general name has no Kc entry.
func MismatchedCropProfiles() []CropProfile {
	var out []CropProfile
	for _, p := range cropProfiles {
		if _, ok := cropCoefficients[GeneralCropName(p.Name)]; !ok {
			out = append(out, p)
		}
	}
	return out
}

var cropProfileIndex = func() map[string]CropProfile {
	m := make(map[string]CropProfile, len(cropProfiles))
	for _, p := range cropProfiles {
		m[p.Name] = p
	}
	return m
}()

// cropProfiles is the FAO-56 Table 11 subset offered to growers. Names are
// display strings and must not be edited: stored calculations reference them.
var cropProfiles = []CropProfile{
	// Vegetables
	{Name: "Broccoli (Sept, Calif. Desert, USA)", InitialDays: 35, DevelopmentDays: 45, MidSeasonDays: 40, LateDays: 15},
	{Name: "Cabbage (Sept, Calif. Desert, USA)", InitialDays: 40, DevelopmentDays: 60, MidSeasonDays: 50, LateDays: 15},
	{Name: "Carrots (Oct/Jan, Arid climate)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 50, LateDays: 20},
	{Name: "Carrots (Feb/Mar, Mediterranean)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 60, LateDays: 20},
	{Name: "Carrots (Oct, Calif. Desert, USA)", InitialDays: 30, DevelopmentDays: 50, MidSeasonDays: 90, LateDays: 30},
	{Name: "Cauliflower (Sept, Calif. Desert, USA)", InitialDays: 35, DevelopmentDays: 50, MidSeasonDays: 40, LateDays: 15},
	{Name: "Celery (Oct, (Semi) Arid)", InitialDays: 25, DevelopmentDays: 40, MidSeasonDays: 95, LateDays: 20},
	{Name: "Celery (April, Mediterranean)", InitialDays: 25, DevelopmentDays: 40, MidSeasonDays: 45, LateDays: 15},
	{Name: "Celery (Jan, (Semi) Arid)", InitialDays: 30, DevelopmentDays: 55, MidSeasonDays: 105, LateDays: 20},
	{Name: "Lettuce (April, Mediterranean)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 15, LateDays: 10},
	{Name: "Lettuce (Nov/Jan, Mediterranean)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 25, LateDays: 10},
	{Name: "Lettuce (Oct/Nov, Arid Region)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 30, LateDays: 10},
	{Name: "Lettuce (Feb, Mediterranean)", InitialDays: 35, DevelopmentDays: 50, MidSeasonDays: 45, LateDays: 10},
	{Name: "Onion (dry) (April, Mediterranean)", InitialDays: 15, DevelopmentDays: 25, MidSeasonDays: 70, LateDays: 40},
	{Name: "Onion (dry) (Oct; Jan., Arid Region; Calif.)", InitialDays: 20, DevelopmentDays: 35, MidSeasonDays: 110, LateDays: 45},
	{Name: "Onion (green) (April/May, Mediterranean)", InitialDays: 25, DevelopmentDays: 30, MidSeasonDays: 10, LateDays: 5},
	{Name: "Onion (green) (October, Arid Region)", InitialDays: 20, DevelopmentDays: 45, MidSeasonDays: 20, LateDays: 10},
	{Name: "Onion (green) (March, Calif., USA)", InitialDays: 30, DevelopmentDays: 55, MidSeasonDays: 55, LateDays: 40},
	{Name: "Onion (seed) (Sept, Calif. Desert, USA)", InitialDays: 20, DevelopmentDays: 45, MidSeasonDays: 165, LateDays: 45},
	{Name: "Spinach (Apr; Sep/Oct, Mediterranean)", InitialDays: 20, DevelopmentDays: 20, MidSeasonDays: 25, LateDays: 5},
	{Name: "Spinach (November, Arid Region)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 40, LateDays: 10},
	{Name: "Radish (Mar/Apr, Medit.; Europe)", InitialDays: 5, DevelopmentDays: 10, MidSeasonDays: 15, LateDays: 5},
	{Name: "Radish (Winter, Arid Region)", InitialDays: 10, DevelopmentDays: 10, MidSeasonDays: 15, LateDays: 5},
	{Name: "Egg plant (October, Arid Region)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 40, LateDays: 20},
	{Name: "Egg plant (May/June, Mediterranean)", InitialDays: 30, DevelopmentDays: 45, MidSeasonDays: 40, LateDays: 25},
	{Name: "Sweet peppers (bell) (April/June, Europe and Medit.)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 40, LateDays: 20},
	{Name: "Sweet peppers (bell) (October, Arid Region)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 110, LateDays: 30},
	{Name: "Tomato (January, Arid Region)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 40, LateDays: 25},
	{Name: "Tomato (Apr/May, Calif., USA)", InitialDays: 35, DevelopmentDays: 40, MidSeasonDays: 50, LateDays: 30},
	{Name: "Tomato (Jan, Calif. Desert, USA)", InitialDays: 25, DevelopmentDays: 40, MidSeasonDays: 60, LateDays: 30},
	{Name: "Tomato (Oct/Nov, Arid Region)", InitialDays: 35, DevelopmentDays: 45, MidSeasonDays: 70, LateDays: 30},
	{Name: "Tomato (April/May, Mediterranean)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 45, LateDays: 30},

	// Melons and Squash
	{Name: "Cantaloupe (Jan, Calif., USA)", InitialDays: 30, DevelopmentDays: 45, MidSeasonDays: 35, LateDays: 10},
	{Name: "Cantaloupe (Aug, Calif., USA)", InitialDays: 10, DevelopmentDays: 60, MidSeasonDays: 25, LateDays: 25},
	{Name: "Cucumber (June/Aug, Arid Region)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 40, LateDays: 15},
	{Name: "Cucumber (Nov; Feb, Arid Region)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 50, LateDays: 20},
	{Name: "Pumpkin, Winter squash (Mar, Aug, Mediterranean)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 30, LateDays: 20},
	{Name: "Pumpkin, Winter squash (June, Europe)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 35, LateDays: 25},
	{Name: "Squash, Zucchini (Apr; Dec., Medit.; Arid Reg.)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 25, LateDays: 15},
	{Name: "Squash, Zucchini (May/June, Medit.; Europe)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 25, LateDays: 15},
	{Name: "Sweet melons (May, Mediterranean)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 40, LateDays: 20},
	{Name: "Sweet melons (March, Calif., USA)", InitialDays: 30, DevelopmentDays: 30, MidSeasonDays: 50, LateDays: 30},
	{Name: "Sweet melons (Aug, Calif. Desert, USA)", InitialDays: 15, DevelopmentDays: 40, MidSeasonDays: 65, LateDays: 15},
	{Name: "Sweet melons (Dec/Jan, Arid Region)", InitialDays: 30, DevelopmentDays: 45, MidSeasonDays: 65, LateDays: 20},
	{Name: "Water melons (April, Italy)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 30, LateDays: 30},
	{Name: "Water melons (Mat/Aug, Near East (desert))", InitialDays: 10, DevelopmentDays: 20, MidSeasonDays: 20, LateDays: 30},

	// Root Crops
	{Name: "Beets, table (Apr/May, Mediterranean)", InitialDays: 15, DevelopmentDays: 25, MidSeasonDays: 20, LateDays: 10},
	{Name: "Beets, table (Feb/Mar, Mediterranean & Arid)", InitialDays: 25, DevelopmentDays: 30, MidSeasonDays: 25, LateDays: 10},
	{Name: "Potato (Jan/Nov, (Semi) Arid Climate)", InitialDays: 25, DevelopmentDays: 30, MidSeasonDays: 45, LateDays: 30},
	{Name: "Potato (May, Continental Climate)", InitialDays: 25, DevelopmentDays: 30, MidSeasonDays: 45, LateDays: 30},
	{Name: "Potato (April, Europe)", InitialDays: 30, DevelopmentDays: 35, MidSeasonDays: 50, LateDays: 30},
	{Name: "Potato (Apr/May, Idaho, USA)", InitialDays: 45, DevelopmentDays: 30, MidSeasonDays: 70, LateDays: 20},
	{Name: "Potato (Dec, Calif. Desert, USA)", InitialDays: 30, DevelopmentDays: 35, MidSeasonDays: 50, LateDays: 25},
	{Name: "Sweet potato (April, Mediterranean)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 60, LateDays: 40},
	{Name: "Sweet potato (Rainy seas., Tropical regions)", InitialDays: 15, DevelopmentDays: 30, MidSeasonDays: 50, LateDays: 30},
	{Name: "Sugarbeet (March, Calif., USA)", InitialDays: 30, DevelopmentDays: 45, MidSeasonDays: 90, LateDays: 15},
	{Name: "Sugarbeet (June, Calif., USA)", InitialDays: 25, DevelopmentDays: 30, MidSeasonDays: 90, LateDays: 10},
	{Name: "Sugarbeet (Sept, Calif. Desert, USA)", InitialDays: 25, DevelopmentDays: 65, MidSeasonDays: 100, LateDays: 65},
	{Name: "Sugarbeet (April, Idaho, USA)", InitialDays: 50, DevelopmentDays: 40, MidSeasonDays: 50, LateDays: 40},
	{Name: "Sugarbeet (May, Mediterranean)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 50, LateDays: 50},
	{Name: "Sugarbeet (November, Mediterranean)", InitialDays: 45, DevelopmentDays: 75, MidSeasonDays: 80, LateDays: 30},
	{Name: "Sugarbeet (November, Arid Regions)", InitialDays: 35, DevelopmentDays: 60, MidSeasonDays: 70, LateDays: 40},

	// Legumes
	{Name: "Beans (green) (Feb/Mar, Calif., Mediterranean)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 30, LateDays: 10},
	{Name: "Beans (green) (Aug/Sep, Calif., Egypt, Lebanon)", InitialDays: 15, DevelopmentDays: 25, MidSeasonDays: 25, LateDays: 10},
	{Name: "Beans (dry) (May/June, Continental Climates)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 40, LateDays: 20},
	{Name: "Beans (dry) (June, Pakistan, Calif.)", InitialDays: 15, DevelopmentDays: 25, MidSeasonDays: 35, LateDays: 20},
	{Name: "Beans (dry) (June, Idaho, USA)", InitialDays: 25, DevelopmentDays: 25, MidSeasonDays: 30, LateDays: 20},
	{Name: "Faba bean, broad bean (May, Europe)", InitialDays: 15, DevelopmentDays: 25, MidSeasonDays: 35, LateDays: 15},
	{Name: "Faba bean, broad bean (Mar/Apr, Mediterranean)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 35, LateDays: 15},
	{Name: "Groundnut (Dry, West Africa)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 45, LateDays: 25},
	{Name: "Groundnut (season, High Latitudes)", InitialDays: 35, DevelopmentDays: 35, MidSeasonDays: 35, LateDays: 35},
	{Name: "Groundnut (May May/June, Mediterranean)", InitialDays: 35, DevelopmentDays: 45, MidSeasonDays: 35, LateDays: 25},
	{Name: "Lentil (April, Europe)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 60, LateDays: 40},
	{Name: "Lentil (Oct/Nov, Arid Region)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 70, LateDays: 40},
	{Name: "Peas (May, Europe)", InitialDays: 15, DevelopmentDays: 25, MidSeasonDays: 35, LateDays: 15},
	{Name: "Peas (Mar/Apr, Mediterranean)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 35, LateDays: 15},
	{Name: "Peas (April, Idaho, USA)", InitialDays: 35, DevelopmentDays: 25, MidSeasonDays: 30, LateDays: 20},
	{Name: "Soybeans (Dec, Tropics)", InitialDays: 15, DevelopmentDays: 15, MidSeasonDays: 40, LateDays: 15},
	{Name: "Soybeans (May, Central USA)", InitialDays: 20, DevelopmentDays: 35, MidSeasonDays: 60, LateDays: 25},
	{Name: "Soybeans (June, Japan)", InitialDays: 20, DevelopmentDays: 25, MidSeasonDays: 75, LateDays: 30},

	// Grains
	{Name: "Barley/Oats/Wheat (November, Central India)", InitialDays: 15, DevelopmentDays: 25, MidSeasonDays: 50, LateDays: 30},
	{Name: "Barley/Oats/Wheat (March/Apr, 35-45 Â°L)", InitialDays: 20, DevelopmentDays: 25, MidSeasonDays: 60, LateDays: 30},
	{Name: "Barley/Oats/Wheat (July, East Africa)", InitialDays: 15, DevelopmentDays: 30, MidSeasonDays: 65, LateDays: 40},
	{Name: "Barley/Oats/Wheat (Apr)", InitialDays: 40, DevelopmentDays: 30, MidSeasonDays: 40, LateDays: 20},
	{Name: "Barley/Oats/Wheat (Nov)", InitialDays: 40, DevelopmentDays: 60, MidSeasonDays: 60, LateDays: 40},
	{Name: "Barley/Oats/Wheat (Dec, Calif. Desert, USA)", InitialDays: 20, DevelopmentDays: 50, MidSeasonDays: 60, LateDays: 30},
	{Name: "Winter Wheat (December, Calif., USA)", InitialDays: 20, DevelopmentDays: 60, MidSeasonDays: 70, LateDays: 30},
	{Name: "Winter Wheat (November, Mediterranean)", InitialDays: 30, DevelopmentDays: 140, MidSeasonDays: 40, LateDays: 30},
	{Name: "Winter Wheat (October, Idaho, USA)", InitialDays: 160, DevelopmentDays: 75, MidSeasonDays: 75, LateDays: 25},
	{Name: "Grains (small) (April, Mediterranean)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 60, LateDays: 40},
	{Name: "Grains (small) (Oct/Nov, Pakistan; Arid Reg.)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 65, LateDays: 40},
	{Name: "Maize (grain) (April, East Africa (alt.))", InitialDays: 30, DevelopmentDays: 50, MidSeasonDays: 60, LateDays: 40},
	{Name: "Maize (grain) (Dec/Jan, Arid Climate)", InitialDays: 25, DevelopmentDays: 40, MidSeasonDays: 45, LateDays: 30},
	{Name: "Maize (grain) (June, Nigeria (humid))", InitialDays: 20, DevelopmentDays: 35, MidSeasonDays: 40, LateDays: 30},
	{Name: "Maize (grain) (October, India (dry, cool))", InitialDays: 20, DevelopmentDays: 35, MidSeasonDays: 40, LateDays: 30},
	{Name: "Maize (grain) (April, Spain (spr, sum.); Calif.)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 50, LateDays: 30},
	{Name: "Maize (grain) (April, Idaho, USA)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 50, LateDays: 50},
	{Name: "Maize (sweet) (March, Philippines)", InitialDays: 20, DevelopmentDays: 20, MidSeasonDays: 30, LateDays: 10},
	{Name: "Maize (sweet) (May/June, Mediterranean)", InitialDays: 20, DevelopmentDays: 25, MidSeasonDays: 25, LateDays: 10},
	{Name: "Maize (sweet) (Oct/Dec, Arid Climate)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 50, LateDays: 10},
	{Name: "Maize (sweet) (April, Idaho, USA)", InitialDays: 30, DevelopmentDays: 30, MidSeasonDays: 30, LateDays: 10},
	{Name: "Maize (sweet) (Jan, Calif. Desert, USA)", InitialDays: 20, DevelopmentDays: 40, MidSeasonDays: 70, LateDays: 10},
	{Name: "Millet (June, Pakistan)", InitialDays: 15, DevelopmentDays: 25, MidSeasonDays: 40, LateDays: 25},
	{Name: "Millet (April, Central USA)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 55, LateDays: 35},
	{Name: "Sorghum (May/June, USA, Pakis., Med.)", InitialDays: 20, DevelopmentDays: 35, MidSeasonDays: 40, LateDays: 30},
	{Name: "Sorghum (Mar/April, Arid Region)", InitialDays: 20, DevelopmentDays: 35, MidSeasonDays: 45, LateDays: 30},
	{Name: "Rice (Dec; May, Tropics; Mediterranean)", InitialDays: 30, DevelopmentDays: 30, MidSeasonDays: 60, LateDays: 30},
	{Name: "Rice (May, Tropics)", InitialDays: 30, DevelopmentDays: 30, MidSeasonDays: 80, LateDays: 40},

	// Industrial Crops
	{Name: "Cotton (Mar-May, Egypt; Pakistan; Calif.)", InitialDays: 30, DevelopmentDays: 50, MidSeasonDays: 60, LateDays: 55},
	{Name: "Cotton (Mar, Calif. Desert, USA)", InitialDays: 45, DevelopmentDays: 90, MidSeasonDays: 45, LateDays: 45},
	{Name: "Cotton (Sept, Yemen)", InitialDays: 30, DevelopmentDays: 50, MidSeasonDays: 60, LateDays: 55},
	{Name: "Cotton (April, Texas)", InitialDays: 30, DevelopmentDays: 50, MidSeasonDays: 55, LateDays: 45},
	{Name: "Flax (April, Europe)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 50, LateDays: 40},
	{Name: "Flax (October, Arizona)", InitialDays: 30, DevelopmentDays: 40, MidSeasonDays: 100, LateDays: 50},
	{Name: "Safflower (April, California, USA)", InitialDays: 20, DevelopmentDays: 35, MidSeasonDays: 45, LateDays: 25},
	{Name: "Safflower (Mar, High Latitudes)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 55, LateDays: 30},
	{Name: "Safflower (Oct/Nov, Arid Region)", InitialDays: 35, DevelopmentDays: 55, MidSeasonDays: 60, LateDays: 40},
	{Name: "Sesame (June, China)", InitialDays: 20, DevelopmentDays: 30, MidSeasonDays: 40, LateDays: 20},
	{Name: "Sunflower (April/May, Medit.; California)", InitialDays: 25, DevelopmentDays: 35, MidSeasonDays: 45, LateDays: 25},

	// Fruits
	{Name: "Grapes (April, Low Latitudes)", InitialDays: 20, DevelopmentDays: 40, MidSeasonDays: 120, LateDays: 60},
	{Name: "Grapes (Mar, Calif., USA)", InitialDays: 20, DevelopmentDays: 50, MidSeasonDays: 75, LateDays: 60},
	{Name: "Grapes (May, High Latitudes)", InitialDays: 20, DevelopmentDays: 50, MidSeasonDays: 90, LateDays: 20},
	{Name: "Grapes (April, Mid Latitudes (wine))", InitialDays: 30, DevelopmentDays: 60, MidSeasonDays: 40, LateDays: 80},
	{Name: "Citrus (Jan, Mediterranean)", InitialDays: 60, DevelopmentDays: 90, MidSeasonDays: 120, LateDays: 95},
	{Name: "Deciduous Orchard (March, High Latitudes)", InitialDays: 20, DevelopmentDays: 70, MidSeasonDays: 90, LateDays: 30},
	{Name: "Deciduous Orchard (March, Low Latitudes)", InitialDays: 20, DevelopmentDays: 70, MidSeasonDays: 120, LateDays: 60},
	{Name: "Deciduous Orchard (March, Calif., USA)", InitialDays: 30, DevelopmentDays: 50, MidSeasonDays: 130, LateDays: 30},
	{Name: "Olives (March, Mediterranean)", InitialDays: 30, DevelopmentDays: 90, MidSeasonDays: 60, LateDays: 90},
	{Name: "Pistachios (Feb, Mediterranean)", InitialDays: 20, DevelopmentDays: 60, MidSeasonDays: 30, LateDays: 40},
	{Name: "Walnuts (April, Utah, USA)", InitialDays: 20, DevelopmentDays: 10, MidSeasonDays: 130, LateDays: 30},
}

// cropCoefficients is FAO-56 Table 12, keyed by crop family.
var cropCoefficients = map[string]CropCoefficients{
	"Broccoli":          {Initial: 0.7, Development: 1.05, MidSeason: 0.95, Late: 0.75},
	"Cabbage":           {Initial: 0.7, Development: 1.05, MidSeason: 0.95, Late: 0.9},
	"Carrots":           {Initial: 0.7, Development: 1.05, MidSeason: 1.05, Late: 0.95},
	"Cauliflower":       {Initial: 0.7, Development: 1.05, MidSeason: 0.95, Late: 0.75},
	"Celery":            {Initial: 0.7, Development: 1.05, MidSeason: 1.05, Late: 1.0},
	"Lettuce":           {Initial: 0.7, Development: 1.0, MidSeason: 1.0, Late: 0.95},
	"Onion":             {Initial: 0.7, Development: 1.05, MidSeason: 1.05, Late: 0.85},
	"Spinach":           {Initial: 0.7, Development: 1.0, MidSeason: 1.0, Late: 0.95},
	"Radish":            {Initial: 0.7, Development: 0.9, MidSeason: 0.95, Late: 0.9},
	"Egg plant":         {Initial: 0.6, Development: 1.05, MidSeason: 1.05, Late: 0.9},
	"Sweet peppers":     {Initial: 0.6, Development: 1.05, MidSeason: 1.05, Late: 0.9},
	"Tomato":            {Initial: 0.6, Development: 1.15, MidSeason: 1.15, Late: 0.8},
	"Cantaloupe":        {Initial: 0.5, Development: 0.75, MidSeason: 1.0, Late: 0.75},
	"Cucumber":          {Initial: 0.6, Development: 1.0, MidSeason: 1.0, Late: 0.75},
	"Pumpkin":           {Initial: 0.5, Development: 0.8, MidSeason: 1.0, Late: 0.8},
	"Squash":            {Initial: 0.5, Development: 0.8, MidSeason: 0.95, Late: 0.75},
	"Sweet melons":      {Initial: 0.5, Development: 0.75, MidSeason: 1.0, Late: 0.75},
	"Water melons":      {Initial: 0.4, Development: 0.8, MidSeason: 1.0, Late: 0.75},
	"Beets":             {Initial: 0.5, Development: 0.75, MidSeason: 1.05, Late: 0.95},
	"Potato":            {Initial: 0.5, Development: 0.75, MidSeason: 1.15, Late: 0.85},
	"Sweet potato":      {Initial: 0.5, Development: 0.65, MidSeason: 1.15, Late: 0.65},
	"Sugarbeet":         {Initial: 0.35, Development: 0.75, MidSeason: 1.2, Late: 0.7},
	"Beans":             {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.55},
	"Faba bean":         {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.35},
	"Groundnut":         {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.6},
	"Lentil":            {Initial: 0.4, Development: 0.7, MidSeason: 1.1, Late: 0.3},
	"Peas":              {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.35},
	"Soybeans":          {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.5},
	"Barley":            {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.4},
	"Oats":              {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.4},
	"Wheat":             {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.4},
	"Winter Wheat":      {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.4},
	"Grains":            {Initial: 0.4, Development: 0.7, MidSeason: 1.15, Late: 0.4},
	"Maize":             {Initial: 0.3, Development: 0.7, MidSeason: 1.2, Late: 0.6},
	"Millet":            {Initial: 0.3, Development: 0.7, MidSeason: 1.05, Late: 0.3},
	"Sorghum":           {Initial: 0.3, Development: 0.7, MidSeason: 1.05, Late: 0.55},
	"Rice":              {Initial: 1.05, Development: 1.2, MidSeason: 1.2, Late: 0.9},
	"Cotton":            {Initial: 0.35, Development: 0.7, MidSeason: 1.15, Late: 0.5},
	"Flax":              {Initial: 0.35, Development: 0.7, MidSeason: 1.1, Late: 0.25},
	"Safflower":         {Initial: 0.35, Development: 0.7, MidSeason: 1.15, Late: 0.25},
	"Sesame":            {Initial: 0.35, Development: 0.7, MidSeason: 1.1, Late: 0.25},
	"Sunflower":         {Initial: 0.35, Development: 0.7, MidSeason: 1.15, Late: 0.35},
	"Grapes":            {Initial: 0.3, Development: 0.7, MidSeason: 0.85, Late: 0.45},
	"Citrus":            {Initial: 0.7, Development: 0.65, MidSeason: 0.7, Late: 0.75},
	"Deciduous Orchard": {Initial: 0.45, Development: 0.6, MidSeason: 1.15, Late: 0.8},
	"Olives":            {Initial: 0.65, Development: 0.45, MidSeason: 0.7, Late: 0.65},
	"Pistachios":        {Initial: 0.4, Development: 0.7, MidSeason: 1.0, Late: 0.4},
	"Walnuts":           {Initial: 0.5, Development: 0.6, MidSeason: 1.1, Late: 0.65},
}
