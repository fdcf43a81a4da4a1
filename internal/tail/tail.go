package tail

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"time"
)

// DefaultInterval is the poll cadence between change checks.
const DefaultInterval = 2 * time.Second

// State tracks the tail position within a growing file. Offset never exceeds
// LastLen between polls. State is never persisted across restarts.
type State struct {
	Path    string
	Offset  int64
	LastLen int64
}

// Tailer watches one file and emits the bytes appended since the previous
// poll. It is owned by a single goroutine; the watch loop is sequential and
// blocking.
type Tailer struct {
	state State
	sum   [sha256.Size]byte
}

// New opens path and establishes the baseline at the current end of file.
// Content already present is never emitted; only subsequent appends are.
func New(path string) (*Tailer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	length := int64(len(data))
	return &Tailer{
		state: State{Path: path, Offset: length, LastLen: length},
		sum:   sha256.Sum256(data),
	}, nil
}

// State returns the current tail position.
func (t *Tailer) State() State {
	return t.state
}

// Poll performs one change check. A change fires only when the file content
// actually differs from the previous poll, not merely its metadata. On
// change it returns exactly the appended bytes as one batch and advances the
// offset. If the file shrank below the stored offset (rotation, truncation)
// the offset resets to zero and the entire current content is the batch.
func (t *Tailer) Poll() (string, bool, error) {
	data, err := os.ReadFile(t.state.Path)
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", t.state.Path, err)
	}

	sum := sha256.Sum256(data)
	if sum == t.sum {
		return "", false, nil
	}
	t.sum = sum

	length := int64(len(data))
	if length < t.state.Offset {
		t.state.Offset = 0
	}
	batch := string(data[t.state.Offset:length])
	t.state.Offset = length
	t.state.LastLen = length
	return batch, true, nil
}

// Run drives Poll on a fixed interval, invoking fn for every batch. It
// blocks until the context is cancelled, fn returns an error, or an I/O
// failure occurs. Failures are fatal; there is no internal retry.
func (t *Tailer) Run(ctx context.Context, every time.Duration, fn func(batch string) error) error {
	if every <= 0 {
		every = DefaultInterval
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			batch, changed, err := t.Poll()
			if err != nil {
				return err
			}
			if !changed {
				continue
			}
			if err := fn(batch); err != nil {
				return err
			}
		}
	}
}
