package run

import "testing"

func TestProgressUpdate(t *testing.T) {
	var p Progress

	p.Update(Sample{Iteration: 100, TotalIterations: 30000, Loss: 0.5, SplatCount: 120000})
	p.Update(Sample{Iteration: 200, Loss: 0.4})

	snap := p.Snapshot()
	if snap.Iteration != 200 {
		t.Errorf("Iteration = %d, want 200", snap.Iteration)
	}
	if snap.TotalIterations != 30000 {
		t.Errorf("TotalIterations = %d, want 30000 (zero update must not clear it)", snap.TotalIterations)
	}
	if snap.SplatCount != 120000 {
		t.Errorf("SplatCount = %d, want 120000 (zero update must not clear it)", snap.SplatCount)
	}
	if snap.Loss != 0.4 {
		t.Errorf("Loss = %v, want 0.4", snap.Loss)
	}
	if len(snap.Losses) != 2 {
		t.Errorf("len(Losses) = %d, want 2", len(snap.Losses))
	}
}

func TestProgressLossWindow(t *testing.T) {
	var p Progress

	for i := 0; i < lossWindow+50; i++ {
		p.Update(Sample{Iteration: i + 1, Loss: float64(i)})
	}

	snap := p.Snapshot()
	if len(snap.Losses) != lossWindow {
		t.Fatalf("len(Losses) = %d, want %d", len(snap.Losses), lossWindow)
	}
	if snap.Losses[0] != 50 {
		t.Errorf("Losses[0] = %v, want 50 (oldest entries evicted)", snap.Losses[0])
	}
	if snap.Losses[lossWindow-1] != float64(lossWindow+49) {
		t.Errorf("Losses[last] = %v, want %v", snap.Losses[lossWindow-1], float64(lossWindow+49))
	}
}

func TestProgressSnapshotIsCopy(t *testing.T) {
	var p Progress
	p.Update(Sample{Iteration: 1, Loss: 0.5})

	snap := p.Snapshot()
	snap.Losses[0] = 99

	if got := p.Snapshot().Losses[0]; got != 0.5 {
		t.Errorf("mutating a snapshot leaked into Progress: Losses[0] = %v", got)
	}
}

func TestProgressRatio(t *testing.T) {
	tests := []struct {
		name      string
		iteration int
		total     int
		want      float64
	}{
		{"no total", 500, 0, 0},
		{"halfway", 15000, 30000, 0.5},
		{"complete", 30000, 30000, 1},
		{"overshoot clamps", 31000, 30000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Progress
			p.Update(Sample{Iteration: tt.iteration, TotalIterations: tt.total, Loss: 0.1})
			if got := p.Snapshot().Ratio(); got != tt.want {
				t.Errorf("Ratio() = %v, want %v", got, tt.want)
			}
		})
	}
}
