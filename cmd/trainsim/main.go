// Synthetic trainer for exercising lumen without a real training run.
// Writes a metrics stream and periodic checkpoint files into a directory;
// point lumen at it and watch.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/mgrellier/lumen/internal/run"
)

func main() {
	var (
		dir        = flag.String("dir", "./simrun", "run directory to write into")
		total      = flag.Int("iterations", 30000, "total iterations")
		perSecond  = flag.Int("rate", 40, "iterations per second")
		ckEvery    = flag.Int("checkpoint-every", 7000, "iterations between checkpoints")
		garbagePct = flag.Int("garbage", 2, "percent of metrics lines written as garbage")
	)
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create run directory: %v", err)
	}

	metricsPath := filepath.Join(*dir, "metrics.jsonl")
	f, err := os.OpenFile(metricsPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatalf("Failed to open metrics stream: %v", err)
	}
	defer f.Close()

	log.Printf("Simulating %d iterations into %s", *total, *dir)

	start := time.Now()
	interval := time.Second / time.Duration(*perSecond)
	splats := 50000

	for i := 1; i <= *total; i++ {
		// Occasional garbage exercises the malformed-line path.
		if *garbagePct > 0 && rand.Intn(100) < *garbagePct {
			if _, err := f.WriteString("###corrupted###\n"); err != nil {
				log.Fatalf("Failed to write metrics: %v", err)
			}
		}

		splats += rand.Intn(120)
		sample := run.Sample{
			Iteration:       i,
			TotalIterations: *total,
			Loss:            syntheticLoss(i),
			SplatCount:      splats,
			ElapsedSeconds:  time.Since(start).Seconds(),
		}
		line, err := json.Marshal(sample)
		if err != nil {
			log.Fatalf("Failed to encode sample: %v", err)
		}
		if _, err := f.Write(append(line, '\n')); err != nil {
			log.Fatalf("Failed to write metrics: %v", err)
		}

		if *ckEvery > 0 && i%*ckEvery == 0 {
			writeCheckpoint(*dir, i, splats)
		}

		time.Sleep(interval)
	}

	log.Println("Simulation complete")
}

// syntheticLoss decays like a real splat run: fast early drop, slow
// tail, a little noise throughout.
func syntheticLoss(iter int) float64 {
	base := 0.05 + 0.45*math.Exp(-float64(iter)/3000.0)
	noise := (rand.Float64() - 0.5) * 0.01
	return base + noise
}

// writeCheckpoint drops a placeholder .ply sized roughly like a splat
// export so the panel has believable numbers to show.
func writeCheckpoint(dir string, iter, splats int) {
	name := fmt.Sprintf("iter_%06d.ply", iter)
	// 32 bytes per splat is a plausible packed size.
	payload := make([]byte, splats*32)
	if err := os.WriteFile(filepath.Join(dir, name), payload, 0o644); err != nil {
		log.Printf("Failed to write checkpoint %s: %v", name, err)
		return
	}
	log.Printf("Checkpoint %s (%d splats)", name, splats)
}
