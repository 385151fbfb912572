// Package run watches a Gaussian-splat training run directory: it tails
// the trainer's metrics stream, tracks progress and lists checkpoints.
package run

import (
	"encoding/json"
	"fmt"
)

// Sample is one line of the trainer's JSONL metrics stream.
type Sample struct {
	Iteration       int     `json:"iteration"`
	TotalIterations int     `json:"total_iterations"`
	Loss            float64 `json:"loss"`
	SplatCount      int     `json:"num_splats"`
	ElapsedSeconds  float64 `json:"elapsed_seconds"`
}

// ParseSample decodes a single metrics line.
func ParseSample(line []byte) (Sample, error) {
	var s Sample
	if err := json.Unmarshal(line, &s); err != nil {
		return Sample{}, fmt.Errorf("malformed metrics line: %w", err)
	}
	if s.Iteration < 0 {
		return Sample{}, fmt.Errorf("metrics line has negative iteration %d", s.Iteration)
	}
	return s, nil
}
