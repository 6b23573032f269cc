package autosave

import (
	"log"
	"sync"
	"time"
)

type Status int

const (
	StatusIdle Status = iota
	StatusSaving
	StatusSaved
)

func (s Status) String() string {
	switch s {
	case StatusSaving:
		return "saving"
	case StatusSaved:
		return "saved"
	default:
		return "idle"
	}
}

// displayWindow is how long the "saved" status stays up before reverting.
const displayWindow = 2 * time.Second

// Scheduler debounces document snapshots into a Store. Repeated Notify calls
// within the debounce window coalesce into a single write of the most recent
// value; only one timer is ever live.
type Scheduler struct {
	mu      sync.Mutex
	store   Store
	key     string
	delay   time.Duration
	timer   *time.Timer
	revert  *time.Timer
	latest  string
	pending bool
	closed  bool

	onStatus func(Status)
}

func NewScheduler(store Store, key string, delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = time.Second
	}
	return &Scheduler{store: store, key: key, delay: delay}
}

// SetOnStatus registers the host's status display callback. The callback may
// be invoked from the debounce timer goroutine.
func (s *Scheduler) SetOnStatus(fn func(Status)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStatus = fn
}

// Notify resets the debounce window with the latest document value.
func (s *Scheduler) Notify(document string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.latest = document
	s.pending = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.flush)
}

// Flush writes any pending snapshot immediately, bypassing the debounce.
func (s *Scheduler) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.flush()
}

// Recover compares the persisted snapshot against an externally supplied
// initial document and returns the snapshot when it differs, signalling a
// crash-recovery adoption. The caller decides whether the policy is enabled.
func (s *Scheduler) Recover(initial string) (string, bool) {
	s.mu.Lock()
	key := s.key
	s.mu.Unlock()

	snapshot, ok, err := s.store.Read(key)
	if err != nil {
		log.Printf("autosave: failed to read snapshot for %q: %v", key, err)
		return initial, false
	}
	if !ok || snapshot == initial {
		return initial, false
	}
	return snapshot, true
}

// Close stops the timers, writing any pending snapshot first.
func (s *Scheduler) Close() {
	s.Flush()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.revert != nil {
		s.revert.Stop()
		s.revert = nil
	}
}

func (s *Scheduler) flush() {
	s.mu.Lock()
	if !s.pending {
		s.mu.Unlock()
		return
	}
	document := s.latest
	key := s.key
	s.pending = false
	s.mu.Unlock()

	s.report(StatusSaving)
	if err := s.store.Write(key, document); err != nil {
		log.Printf("autosave: failed to write snapshot for %q: %v", key, err)
		s.report(StatusIdle)
		return
	}
	s.report(StatusSaved)

	s.mu.Lock()
	if s.revert != nil {
		s.revert.Stop()
	}
	s.revert = time.AfterFunc(displayWindow, func() { s.report(StatusIdle) })
	s.mu.Unlock()
}

func (s *Scheduler) report(status Status) {
	s.mu.Lock()
	fn := s.onStatus
	s.mu.Unlock()
	if fn != nil {
		fn(status)
	}
}
