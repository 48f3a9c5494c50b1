package scale

import "github.com/robmorgan/pulse/utils"

// Linear returns a function that maps a number from the interval [rMin,rMax]
// onto [dMin,dMax]. Values outside the source interval are extrapolated.
func Linear(rMin, rMax, dMin, dMax float64) func(m float64) float64 {
	span := rMax - rMin
	return func(m float64) float64 {
		if span == 0 {
			return dMin
		}
		return dMin + (m-rMin)/span*(dMax-dMin)
	}
}

// Clamp is like Linear but the result is clamped to [dMin,dMax].
func Clamp(rMin, rMax, dMin, dMax float64) func(m float64) float64 {
	f := Linear(rMin, rMax, dMin, dMax)
	return func(m float64) float64 {
		return utils.Clamp(f(m), dMin, dMax)
	}
}

// ToUnitClamp returns a function that scales a number from the interval [rMin,rMax]
// to the unit interval ([0,1]), if the result falls outside [0,1], it is clamped
// to 0 or 1.
func ToUnitClamp(rMin, rMax float64) func(m float64) float64 {
	return Clamp(rMin, rMax, 0, 1)
}
