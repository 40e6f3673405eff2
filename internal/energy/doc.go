// Package energy computes the reduced energy of macrospin states and
// recovers the effective damping constant from the energy dissipated
// along a trajectory. The recovered damping is the input to the
// self-consistency check: if a trajectory really solves the LLG equation
// for damping alpha, the energy balance must return alpha back.
package energy
