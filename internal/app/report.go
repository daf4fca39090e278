package app

import (
	"errors"
	"fmt"
)

// Report summarizes one render pass.
type Report struct {
	Rendered []string
	Skipped  []string
	Failed   []string
	errs     []error
}

func (r *Report) add(name string, err error) {
	switch {
	case err == nil:
		r.Rendered = append(r.Rendered, name)
	case errors.Is(err, errSkipped):
		r.Skipped = append(r.Skipped, name)
	default:
		r.Failed = append(r.Failed, name)
		r.errs = append(r.errs, fmt.Errorf("%s: %w", name, err))
	}
}

// Total is the number of attributes processed.
func (r *Report) Total() int {
	return len(r.Rendered) + len(r.Skipped) + len(r.Failed)
}

// Err returns nil unless an attribute failed. Skipped attributes are not errors.
func (r *Report) Err() error {
	if len(r.Failed) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d attributes failed: %w", len(r.Failed), r.Total(), errors.Join(r.errs...))
}
