// Package sweep evaluates the analytic switching solution for many
// parameter sets concurrently. The calculators are pure functions with no
// shared state, so runs fan out one goroutine per job.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/macrospin/internal/llg"
	"github.com/san-kum/macrospin/internal/mallinson"
)

// Job is one parameter set to evaluate.
type Job struct {
	Name   string
	Params llg.MagParams
}

// Outcome holds the result of one job: the total switching time over the
// sampled range and the full trajectory, or the evaluation error.
type Outcome struct {
	Job
	SwitchingTime float64
	Trajectory    *llg.Trajectory
	Err           error
}

// Sweep runs a fixed sampling range against many parameter sets.
type Sweep struct {
	rng mallinson.Range
}

func New(rng mallinson.Range) *Sweep {
	return &Sweep{rng: rng}
}

// Run evaluates every job concurrently. Outcomes are index aligned with
// jobs; a canceled context marks the remaining jobs with the context
// error rather than abandoning the slice.
func (s *Sweep) Run(ctx context.Context, jobs []Job) []Outcome {
	outcomes := make([]Outcome, len(jobs))

	var wg sync.WaitGroup
	for i, job := range jobs {
		wg.Add(1)
		go func(idx int, j Job) {
			defer wg.Done()

			out := Outcome{Job: j}
			if err := ctx.Err(); err != nil {
				out.Err = err
				outcomes[idx] = out
				return
			}

			traj, err := mallinson.GenerateDynamics(j.Params, s.rng)
			if err != nil {
				out.Err = err
				outcomes[idx] = out
				return
			}
			out.Trajectory = traj
			out.SwitchingTime = traj.Times[traj.Len()-1]
			outcomes[idx] = out
		}(i, job)
	}
	wg.Wait()

	return outcomes
}

// AlphaJobs builds one job per damping value, holding the remaining
// parameters fixed.
func AlphaJobs(base llg.MagParams, alphas []float64) []Job {
	jobs := make([]Job, len(alphas))
	for i, a := range alphas {
		p := base
		p.Alpha = a
		jobs[i] = Job{Name: fmt.Sprintf("alpha=%g", a), Params: p}
	}
	return jobs
}

// FieldJobs builds one job per applied-field value, holding the remaining
// parameters fixed.
func FieldJobs(base llg.MagParams, fields []float64) []Job {
	jobs := make([]Job, len(fields))
	for i, h := range fields {
		p := base
		p.H = h
		jobs[i] = Job{Name: fmt.Sprintf("H=%g", h), Params: p}
	}
	return jobs
}
