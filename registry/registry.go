// Package registry provides a thread-safe mapping from job names to job
// bodies, used by callers that schedule work by name and by the periodic
// runner.
package registry

import (
	"sync"

	"github.com/shahzadadil/schedly/errors"
	"github.com/shahzadadil/schedly/job"
)

// Registry is a thread-safe job body registry
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]job.Func
}

// New creates a new registry
func New() *Registry {
	return &Registry{
		jobs: make(map[string]job.Func),
	}
}

// Register adds a job body under a name
func (r *Registry) Register(name string, body job.Func) error {
	if name == "" {
		return errors.ErrEmptyJobName
	}

	if body == nil {
		return errors.ErrNilJob
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs[name] = body
	return nil
}

// Get retrieves a job body by name
func (r *Registry) Get(name string) (job.Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	body, ok := r.jobs[name]
	return body, ok
}

// List returns all registered names
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.jobs))
	for name := range r.jobs {
		names = append(names, name)
	}

	return names
}

// Remove unregisters a job body
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.jobs, name)
	return nil
}

// Clear removes all registered jobs
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs = make(map[string]job.Func)
}
