package contacts

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/devlearn/internal/logging"
	"github.com/dmitrijs2005/devlearn/internal/models"
)

// DefaultDebounce is the quiet period before a touched draft is written.
const DefaultDebounce = time.Second

// DraftWriter persists a draft. *Repository implements it.
type DraftWriter interface {
	SaveDraft(ctx context.Context, d models.ContactDraft) (bool, error)
}

// DraftSaver coalesces rapid form edits into one draft write after a
// quiet period. Only the most recent draft is written.
type DraftSaver struct {
	w     DraftWriter
	delay time.Duration
	log   logging.Logger

	mu      sync.Mutex
	timer   *time.Timer
	gen     uint64
	pending *models.ContactDraft
	stopped bool
}

func NewDraftSaver(w DraftWriter, delay time.Duration, log logging.Logger) *DraftSaver {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &DraftSaver{w: w, delay: delay, log: log}
}

// Touch records d as the latest draft and restarts the quiet period.
func (s *DraftSaver) Touch(d models.ContactDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	s.pending = &d
	s.disarmLocked()
	gen := s.gen
	s.timer = time.AfterFunc(s.delay, func() { s.fire(gen) })
}

func (s *DraftSaver) fire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// a newer Touch, Flush or Cancel superseded this timer
	if s.stopped || gen != s.gen {
		return
	}
	if err := s.writeLocked(context.Background()); err != nil {
		s.log.Warn(context.Background(), "draft autosave failed", "error", err)
	}
}

// Flush writes the pending draft now, if any.
func (s *DraftSaver) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disarmLocked()
	return s.writeLocked(ctx)
}

// Cancel drops the pending draft without writing it.
func (s *DraftSaver) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disarmLocked()
	s.pending = nil
}

// Stop cancels and disables the saver. It waits for an in-flight write.
func (s *DraftSaver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disarmLocked()
	s.pending = nil
	s.stopped = true
}

func (s *DraftSaver) disarmLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *DraftSaver) writeLocked(ctx context.Context) error {
	if s.pending == nil {
		return nil
	}
	d := *s.pending
	s.pending = nil
	_, err := s.w.SaveDraft(ctx, d)
	return err
}
