// Package transform runs one normalizer over every staging row and writes the
// canonical values back in fixed-size batches.
package transform

import (
	"fmt"
	"sort"

	"github.com/profile-normalizer/internal/store"
)

// Warning flags a raw value that produced an undetermined or sentinel result
type Warning struct {
	Column string `json:"column"`
	Raw    string `json:"raw"`
	Reason string `json:"reason"`
}

// TransformFunc maps the raw values of one row onto the job's write columns,
// in the order of Job.Writes
type TransformFunc func(raw map[string]string) ([]any, []Warning)

// Job binds a normalizer to the columns it owns
type Job struct {
	Name      string
	Reads     []string
	Writes    []store.Column
	Transform TransformFunc
}

// Registry holds the jobs of one process, keyed by name
type Registry struct {
	jobs  map[string]Job
	order []string
}

// NewRegistry indexes jobs by name, keeping their order for "all"
func NewRegistry(jobs ...Job) *Registry {
	r := &Registry{jobs: make(map[string]Job, len(jobs))}
	for _, j := range jobs {
		r.jobs[j.Name] = j
		r.order = append(r.order, j.Name)
	}
	return r
}

// Get returns the named job
func (r *Registry) Get(name string) (Job, error) {
	j, ok := r.jobs[name]
	if !ok {
		return Job{}, fmt.Errorf("unknown job %q", name)
	}
	return j, nil
}

// All returns every job in registration order
func (r *Registry) All() []Job {
	out := make([]Job, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.jobs[name])
	}
	return out
}

// Names returns the job names sorted alphabetically
func (r *Registry) Names() []string {
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}
