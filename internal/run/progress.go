package run

import (
	"sync"
	"time"
)

// lossWindow bounds the loss history ring.
const lossWindow = 200

// Progress tracks the live state of a training run. Safe for concurrent
// use: the monitor goroutine writes, the UI goroutine reads snapshots.
type Progress struct {
	mu sync.Mutex

	iteration       int
	totalIterations int
	splatCount      int
	loss            float64
	losses          []float64
	updatedAt       time.Time
}

// Snapshot is an immutable copy of the progress state for rendering.
type Snapshot struct {
	Iteration       int
	TotalIterations int
	SplatCount      int
	Loss            float64
	Losses          []float64
	UpdatedAt       time.Time
}

// Update folds one metrics sample into the progress state.
// The loss history keeps the most recent lossWindow values.
func (p *Progress) Update(s Sample) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.iteration = s.Iteration
	if s.TotalIterations > 0 {
		p.totalIterations = s.TotalIterations
	}
	if s.SplatCount > 0 {
		p.splatCount = s.SplatCount
	}
	p.loss = s.Loss
	p.losses = append(p.losses, s.Loss)
	if len(p.losses) > lossWindow {
		p.losses = p.losses[len(p.losses)-lossWindow:]
	}
	p.updatedAt = time.Now()
}

// Snapshot returns a copy of the current state.
func (p *Progress) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	losses := make([]float64, len(p.losses))
	copy(losses, p.losses)

	return Snapshot{
		Iteration:       p.iteration,
		TotalIterations: p.totalIterations,
		SplatCount:      p.splatCount,
		Loss:            p.loss,
		Losses:          losses,
		UpdatedAt:       p.updatedAt,
	}
}

// Ratio returns completion in [0, 1], or 0 when the total is unknown.
func (s Snapshot) Ratio() float64 {
	if s.TotalIterations <= 0 {
		return 0
	}
	r := float64(s.Iteration) / float64(s.TotalIterations)
	if r > 1 {
		r = 1
	}
	return r
}
