// Package jobs tracks batch job state in process memory. Jobs are scoped to
// one process: after a restart every identifier is unknown.
package jobs

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/gbazo/bibproc/internal/biblio"
)

// Status is the lifecycle state of a batch job.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusError      Status = "error"
)

// ErrNotFound is returned when a job identifier is unknown.
var ErrNotFound = errors.New("job not found")

// Job is the status record of one batch run.
type Job struct {
	ID         string        `json:"task_id"`
	Status     Status        `json:"status"`
	Progress   int           `json:"progress"`
	Total      int           `json:"total"`
	Message    string        `json:"message"`
	Stats      *biblio.Stats `json:"stats,omitempty"`
	OutputFile string        `json:"output_file,omitempty"`
}

// Registry holds job state for all batches started by this process. It is
// an owned object passed by reference, not a package-level global, so tests
// and callers each get their own.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]Job
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]Job)}
}

// Create registers a new processing job over total rows and returns it.
func (r *Registry) Create(total int, message string) Job {
	job := Job{
		ID:      uuid.NewString(),
		Status:  StatusProcessing,
		Total:   total,
		Message: message,
	}
	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()
	return job
}

// Get returns the job for an identifier, or ErrNotFound.
func (r *Registry) Get(id string) (Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return Job{}, ErrNotFound
	}
	return job, nil
}

// Update records row-level progress for a processing job.
func (r *Registry) Update(id string, progress int, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Progress = progress
	job.Message = message
	r.jobs[id] = job
}

// Complete finalizes a job with its statistics and output reference.
func (r *Registry) Complete(id string, stats biblio.Stats, outputFile string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Status = StatusCompleted
	job.Progress = 100
	job.Message = "Processamento concluído!"
	job.Stats = &stats
	job.OutputFile = outputFile
	r.jobs[id] = job
}

// Fail marks a job as errored. The job yields no output artifact.
func (r *Registry) Fail(id, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	job.Status = StatusError
	job.Message = message
	r.jobs[id] = job
}
