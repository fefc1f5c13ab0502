package services

import (
	"sync"
	"time"
)

// ImageState is the lifecycle of one per-tour image generation job.
type ImageState string

const (
	ImageIdle      ImageState = "idle"
	ImageLoading   ImageState = "loading"
	ImageSucceeded ImageState = "succeeded"
	ImageFailed    ImageState = "failed"
)

// ImageStatus is the tagged result tracked per tour id. Image is only set in
// the succeeded state, Error only in the failed state.
type ImageStatus struct {
	State     ImageState `json:"state"`
	Image     string     `json:"image,omitempty"`
	Error     string     `json:"error,omitempty"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ImageJobs tracks independent image generation jobs keyed by tour id.
// Updates are atomic per id: a slow or failing job for one id never touches
// the status of another.
type ImageJobs struct {
	mu   sync.Mutex
	jobs map[string]ImageStatus
}

func NewImageJobs() *ImageJobs {
	return &ImageJobs{jobs: make(map[string]ImageStatus)}
}

// Get returns the current status for an id, idle if never started.
func (j *ImageJobs) Get(id string) ImageStatus {
	j.mu.Lock()
	defer j.mu.Unlock()
	if s, ok := j.jobs[id]; ok {
		return s
	}
	return ImageStatus{State: ImageIdle}
}

// Start marks an id as loading. Returns false if a job for that id is already
// in flight, so callers don't double-generate the same tour.
func (j *ImageJobs) Start(id string) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	if s, ok := j.jobs[id]; ok && s.State == ImageLoading {
		return false
	}
	j.jobs[id] = ImageStatus{State: ImageLoading, UpdatedAt: time.Now()}
	return true
}

// Succeed records the generated image for an id.
func (j *ImageJobs) Succeed(id, image string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jobs[id] = ImageStatus{State: ImageSucceeded, Image: image, UpdatedAt: time.Now()}
}

// Fail records a failed generation for an id.
func (j *ImageJobs) Fail(id, msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jobs[id] = ImageStatus{State: ImageFailed, Error: msg, UpdatedAt: time.Now()}
}
