// Package validate cross-checks trajectories against the analytic
// switching solution. Tolerance violations are reported in the returned
// summaries, never raised as errors; errors are reserved for inputs on
// which the closed form cannot be evaluated at all.
package validate
