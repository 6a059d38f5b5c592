package batch

import "errors"

// Failure records one input that could not be processed.
type Failure struct {
	Path string
	Err  error
}

// Result counts the outcome of a batch run. A failed file never aborts the run.
type Result struct {
	Success  int
	Failed   int
	Failures []Failure
}

// Total returns the number of inputs attempted.
func (r Result) Total() int {
	return r.Success + r.Failed
}

// Err joins every failure, or returns nil when all inputs succeeded.
func (r Result) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}

	errList := make([]error, len(r.Failures))
	for i, f := range r.Failures {
		errList[i] = f.Err
	}

	return errors.Join(errList...)
}

// Merge adds the counts and failures of other to r.
func (r *Result) Merge(other Result) {
	r.Success += other.Success
	r.Failed += other.Failed
	r.Failures = append(r.Failures, other.Failures...)
}

func (r *Result) record(path string, err error) {
	if err == nil {
		r.Success++
		return
	}

	r.Failed++
	r.Failures = append(r.Failures, Failure{Path: path, Err: err})
}
