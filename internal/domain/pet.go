package domain

import "math"

// Regression coefficients of the PET model.
const (
	PETIntercept = 0.5640
	PETSlope     = 0.2156
)

// ComputePET estimates potential evapotranspiration in mm/day for a region at
// the given air temperature in °C. Unknown regions use an offset of 0.
func ComputePET(region string, temperature float64) float64 {
	return Round2(PETIntercept + PETSlope*temperature + RegionOffset(region))
}

// Round2 rounds half up to two decimal places.
func Round2(x float64) float64 {
	return math.Floor(x*100+0.5) / 100
}
