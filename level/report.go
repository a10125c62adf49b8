package level

import (
	"errors"
)

// ViewFailure is a viewpoint whose imagery could not be loaded. Its metadata
// is still available through Level.View.
type ViewFailure struct {
	ViewID int
	Name   string
	Err    error
}

// LoadReport summarises a successful Level.Load.
type LoadReport struct {
	Path     string
	Views    int
	Failures []ViewFailure
}

func (r *LoadReport) OK() bool {
	return len(r.Failures) == 0
}

// Err joins every per-view failure, or returns nil.
func (r *LoadReport) Err() error {
	if r.OK() {
		return nil
	}
	errs := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errs[i] = f.Err
	}
	return errors.Join(errs...)
}

// Failed reports whether the view with the given id failed to load.
func (r *LoadReport) Failed(id int) bool {
	for _, f := range r.Failures {
		if f.ViewID == id {
			return true
		}
	}
	return false
}
