package run

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Tailer incrementally reads a JSONL metrics file. Each Poll returns the
// samples appended since the previous one. Partial trailing lines are
// carried over; a shrinking file is treated as a restarted trainer and
// read again from the start.
type Tailer struct {
	path    string
	offset  int64
	partial []byte
	line    int
}

func NewTailer(path string) *Tailer {
	return &Tailer{path: path}
}

// Poll reads newly appended data. Malformed lines do not stop the scan;
// they come back in bad, one error per line.
func (t *Tailer) Poll() (samples []Sample, bad []error, err error) {
	f, err := os.Open(t.path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}

	if fi.Size() < t.offset {
		// Truncated: the trainer restarted the stream.
		t.offset = 0
		t.partial = nil
		t.line = 0
	}
	if fi.Size() == t.offset {
		return nil, nil, nil
	}

	if _, err := f.Seek(t.offset, io.SeekStart); err != nil {
		return nil, nil, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, nil, err
	}
	t.offset += int64(len(data))

	data = append(t.partial, data...)
	t.partial = nil

	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 {
			// Incomplete line: keep for the next poll.
			if len(data) > 0 {
				t.partial = append(t.partial, data...)
			}
			break
		}
		line := bytes.TrimSpace(data[:idx])
		data = data[idx+1:]
		t.line++

		if len(line) == 0 {
			continue
		}
		s, perr := ParseSample(line)
		if perr != nil {
			bad = append(bad, fmt.Errorf("line %d: %w", t.line, perr))
			continue
		}
		samples = append(samples, s)
	}

	return samples, bad, nil
}
