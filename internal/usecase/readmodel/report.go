package readmodel

import "hotel-registry/internal/pkg/errs"

// Failure records one rejected field or room in an operation that applies
// its parts independently.
type Failure struct {
	Target string
	Err    error
}

// Report summarises a partially applied operation (modify, hotel creation
// with rooms). Failures never roll back the applied parts.
type Report struct {
	Applied  []string
	Failures []Failure
}

func (r *Report) Apply(target string) {
	r.Applied = append(r.Applied, target)
}

func (r *Report) Fail(target string, err error) {
	r.Failures = append(r.Failures, Failure{Target: target, Err: err})
}

func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}

// Err joins every failure, or returns nil when all parts were applied.
func (r *Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	all := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		all[i] = errs.Wrap(f.Err, f.Target)
	}
	return errs.Join(all...)
}
