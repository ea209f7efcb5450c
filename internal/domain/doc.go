// Package domain models potential evapotranspiration (PET) estimation and
// irrigation advice for Ukrainian oblast centres.
//
// # PET Model
//
// PET is a linear regression on air temperature with a per-region intercept
// correction, calibrated for the oblast administrative centres:
//
//	pet = round2(0.5640 + 0.2156 * T + offset(region))
//
// T is in °C, PET in mm/day. Regions missing from the offset table fall back
// to an offset of 0 rather than failing. round2 rounds half up to two
// decimals (487.5 → 488, -487.5 → -487). The estimator performs no range
// checks; those belong to the temperature input layer (see [ResolveTemperature]).
//
// # Growth Stages
//
// FAO-56 splits a crop season into four stages with fixed lengths in days.
// Stage bands are inclusive on the upper bound and measured from the planting
// date (day 0):
//
//	days <= initial                      → initial
//	days <= initial + development        → development
//	days <= initial + development + mid  → midSeason
//	otherwise                            → late
//
// Negative day counts (current date before planting) land in the initial band.
//
// # Crop Names
//
// Crop profiles are keyed by their full display name, e.g.
// "Tomato (April/May, Mediterranean)". The Kc table is keyed by crop family.
// The family is the prefix of the profile name up to the first space
// ([GeneralCropName]). Several profiles do not resolve this way
// ("Sweet melons (...)" → "Sweet", "Beets, table (...)" → "Beets,") and yield
// [ErrCropCoefficientNotFound]. That is the published behaviour and is kept;
// [MismatchedCropProfiles] lists the affected entries.
//
// # Soil Water Balance
//
// All soil quantities are percentages of the root-zone volume or of field
// capacity, active root depth in mm, bulk density in g/cm³:
//
//	W_actual    = gsm/100 * al * bd
//	W_threshold = wt/100 * fc/100 * al * bd
//
// When W_actual >= W_threshold no irrigation is needed and the surplus is
// divided by ETc to give days until the next irrigation. Otherwise the deficit
// to field capacity, corrected for irrigation efficiency, is the recommended
// rate. Non-finite results (ETc of zero, efficiency of zero) propagate as
// ±Inf/NaN; serializers encode them as null.
//
// # ID Generation
//
// Calculation IDs are name-based UUIDs (SHA-1, RFC 4122 §4.3) derived from the
// request ID when present, otherwise from the calculation inputs. Replaying the
// same request yields the same ID. See [NewCalculationID].
package domain
