package run

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Checkpoint is one produced checkpoint file.
type Checkpoint struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// ListCheckpoints returns the checkpoint files in dir matching the glob
// pattern, newest first.
func ListCheckpoints(dir, pattern string) ([]Checkpoint, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}

	checkpoints := make([]Checkpoint, 0, len(matches))
	for _, path := range matches {
		fi, err := os.Stat(path)
		if err != nil {
			// File vanished between glob and stat; skip it.
			continue
		}
		if fi.IsDir() {
			continue
		}
		checkpoints = append(checkpoints, Checkpoint{
			Name:    filepath.Base(path),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	sort.Slice(checkpoints, func(i, j int) bool {
		return checkpoints[i].ModTime.After(checkpoints[j].ModTime)
	})

	return checkpoints, nil
}
