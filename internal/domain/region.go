package domain

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownRegion is returned when a region has no catalog entry to
	// resolve coordinates for a live weather lookup.
	ErrUnknownRegion = errors.New("unknown region")

	// ErrOccupiedRegion is returned for regions where calculations are not offered.
	ErrOccupiedRegion = errors.New("region is temporarily occupied")
)

// Region is an oblast administrative centre with its PET offset and the
// coordinates used for live weather lookups.
type Region struct {
	Name     string  `json:"name"`
	Offset   float64 `json:"offset"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Occupied bool    `json:"occupied"`
}

// regionOffsets holds the per-region intercept correction of the PET regression.
var regionOffsets = map[string]float64{
	"Cherkasy":        0.0000,
	"Chernihiv":       0.1059,
	"Chernivtsi":      0.1587,
	"Dnipro":          0.3972,
	"Ivano-Frankivsk": 0.0430,
	"Kharkiv":         -0.0007,
	"Kherson":         0.0938,
	"Khmelnytskyi":    0.2132,
	"Kropyvnytskyi":   0.3891,
	"Kyiv":            -0.2334,
	"Lutsk":           -0.2800,
	"Lviv":            -0.0113,
	"Mykolaiv":        0.0745,
	"Odesa":           -0.3740,
	"Poltava":         -0.0193,
	"Rivne":           0.2647,
	"Simferopol":      0.4412,
	"Sumy":            0.1402,
	"Ternopil":        0.1584,
	"Uzhgorod":        -0.3121,
	"Vinnytsia":       0.1819,
	"Zaporizhzhia":    0.0017,
	"Zhytomyr":        -0.1487,
}

type coordinates struct{ lat, lon float64 }

var regionCoordinates = map[string]coordinates{
	"Cherkasy":        {49.4444, 32.0598},
	"Chernihiv":       {51.4982, 31.2893},
	"Chernivtsi":      {48.2915, 25.9403},
	"Dnipro":          {48.4647, 35.0462},
	"Donetsk":         {48.0159, 37.8028},
	"Ivano-Frankivsk": {48.9226, 24.7111},
	"Kharkiv":         {49.9935, 36.2304},
	"Kherson":         {46.6354, 32.6169},
	"Khmelnytskyi":    {49.4229, 26.9871},
	"Kropyvnytskyi":   {48.5079, 32.2623},
	"Kyiv":            {50.4501, 30.5234},
	"Luhansk":         {48.5740, 39.3078},
	"Lutsk":           {50.7472, 25.3254},
	"Lviv":            {49.8397, 24.0297},
	"Mykolaiv":        {46.9750, 31.9946},
	"Odesa":           {46.4825, 30.7233},
	"Poltava":         {49.5883, 34.5514},
	"Rivne":           {50.6199, 26.2516},
	"Simferopol":      {44.9521, 34.1024},
	"Sumy":            {50.9077, 34.7981},
	"Ternopil":        {49.5535, 25.5948},
	"Uzhgorod":        {48.6208, 22.2879},
	"Vinnytsia":       {49.2331, 28.4682},
	"Zaporizhzhia":    {47.8388, 35.1396},
	"Zhytomyr":        {50.2547, 28.6587},
}

var occupiedRegions = map[string]bool{
	"Donetsk": true,
	"Luhansk": true,
}

// RegionOffset returns the PET offset for a region, or 0 if the region is unknown.
func RegionOffset(region string) float64 {
	return regionOffsets[region]
}

// IsOccupied reports whether calculations are blocked for the region.
func IsOccupied(region string) bool {
	return occupiedRegions[region]
}

// FindRegion returns the catalog entry for a region name.
func FindRegion(name string) (Region, error) {
	c, ok := regionCoordinates[name]
	if !ok {
		return Region{}, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	return Region{
		Name:     name,
		Offset:   regionOffsets[name],
		Lat:      c.lat,
		Lon:      c.lon,
		Occupied: occupiedRegions[name],
	}, nil
}

// Regions returns every catalogued region sorted by name.
func Regions() []Region {
	names := make([]string, 0, len(regionCoordinates))
	for name := range regionCoordinates {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Region, 0, len(names))
	for _, name := range names {
		r, _ := FindRegion(name)
		out = append(out, r)
	}
	return out
}
