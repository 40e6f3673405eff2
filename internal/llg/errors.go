package llg

import "errors"

// Domain errors for the analytic switching formulas.
var (
	// ErrPolarDomain indicates a polar angle at 0 or pi, where the
	// tangent/logarithm terms of the closed form are singular.
	ErrPolarDomain = errors.New("llg: polar angle outside open interval (0, pi)")

	// ErrEquatorialAngle indicates a polar angle of exactly pi/2, the
	// asymptotic limit of the switching model.
	ErrEquatorialAngle = errors.New("llg: polar angle exactly pi/2")

	// ErrSubcriticalField indicates H <= Hk, for which no deterministic
	// switching occurs and the time prefactor is undefined.
	ErrSubcriticalField = errors.New("llg: applied field does not exceed anisotropy field")

	// ErrParameterBounds indicates a damping or gyromagnetic value outside
	// its valid range.
	ErrParameterBounds = errors.New("llg: parameter out of valid bounds")

	// ErrSampleCount indicates a non-positive step count was requested.
	ErrSampleCount = errors.New("llg: sample count must be positive")

	// ErrTrajectoryShape indicates mismatched point/time sequence lengths.
	ErrTrajectoryShape = errors.New("llg: trajectory points and times differ in length")
)
