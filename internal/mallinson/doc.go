// Package mallinson computes the exact solution of the zero-dimensional
// LLG switching problem as derived in [Mallinson2000]: closed-form
// switching time and azimuthal angle as functions of the instantaneous
// polar angle, for an applied field exceeding the anisotropy field.
//
// The solution is valid on the open polar interval (0, pi). Switching time
// is strictly increasing in the polar angle when H > Hk; the azimuthal
// angle is unbounded before wrapping and is reported modulo 2pi.
package mallinson
