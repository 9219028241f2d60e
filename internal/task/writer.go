package task

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hy4ri/whatsup/internal/storage"
)

// Writer persists list snapshots in the background, one write at a time and
// in submission order. A snapshot submitted while a write is in flight
// replaces any older pending one. Failures are logged and dropped.
type Writer struct {
	ctx    context.Context
	st     storage.Storage
	logger *log.Logger

	mu      sync.Mutex
	pending []Task
	dirty   bool
	closed  bool

	wake chan struct{}
	done chan struct{}
}

// NewWriter starts a writer goroutine for st.
func NewWriter(ctx context.Context, st storage.Storage, logger *log.Logger) *Writer {
	w := &Writer{
		ctx:    ctx,
		st:     st,
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	go w.run()
	return w
}

// Submit queues snapshot for writing and returns immediately.
func (w *Writer) Submit(snapshot []Task) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		w.logger.Warn("snapshot submitted after close", "tasks", len(snapshot))
		return
	}
	w.pending = snapshot
	w.dirty = true

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Close writes any pending snapshot and stops the writer. It is safe to
// call more than once.
func (w *Writer) Close() {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.wake)
	}
	w.mu.Unlock()

	<-w.done
}

func (w *Writer) run() {
	defer close(w.done)

	for range w.wake {
		w.flush()
	}
	// wake is closed; drain whatever arrived last.
	w.flush()
}

func (w *Writer) flush() {
	w.mu.Lock()
	if !w.dirty {
		w.mu.Unlock()
		return
	}
	snapshot := w.pending
	w.pending, w.dirty = nil, false
	w.mu.Unlock()

	if err := Write(w.ctx, w.st, snapshot); err != nil {
		w.logger.Error("failed to save tasks", append(storage.LogFields(err), "tasks", len(snapshot))...)
		return
	}
	w.logger.Debug("tasks saved", "tasks", len(snapshot))
}
