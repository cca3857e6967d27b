// Package sched paces scripted UI sequences (progress counters, staggered
// reveals, status swaps) with delays that can be cancelled as a group.
//
// A Scheduler belongs to one component instance. Every delay it hands out is
// a tea.Cmd that waits on a timer or on the scheduler's context; after Cancel
// the pending commands return nil and their goroutines exit. Messages that
// were already in flight are wrapped in Fired so the owner can drop them via
// Owns.
package sched

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var nextOwner atomic.Uint64

// Fired is delivered when a scheduled delay elapses.
type Fired struct {
	Owner uint64
	Seq   uint64
	Msg   tea.Msg
}

// Scheduler hands out cancellable delayed messages.
type Scheduler struct {
	id      uint64
	ctx     context.Context
	cancel  context.CancelFunc
	seq     atomic.Uint64
	pending atomic.Int64
}

// New creates a scheduler whose delays also stop when parent is done.
func New(parent context.Context) *Scheduler {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	return &Scheduler{
		id:     nextOwner.Add(1),
		ctx:    ctx,
		cancel: cancel,
	}
}

// ID returns the owner id stamped on Fired messages.
func (s *Scheduler) ID() uint64 {
	return s.id
}

// After returns a command that yields Fired{Msg: msg} once d elapses.
// A non-positive d fires on the next command run. If the scheduler is
// cancelled first, the command returns nil.
func (s *Scheduler) After(d time.Duration, msg tea.Msg) tea.Cmd {
	if s.Cancelled() {
		return nil
	}
	seq := s.seq.Add(1)
	s.pending.Add(1)
	return func() tea.Msg {
		defer s.pending.Add(-1)
		if d <= 0 {
			if s.Cancelled() {
				return nil
			}
			return Fired{Owner: s.id, Seq: seq, Msg: msg}
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
			if s.Cancelled() {
				return nil
			}
			return Fired{Owner: s.id, Seq: seq, Msg: msg}
		case <-s.ctx.Done():
			return nil
		}
	}
}

// Owns reports whether f came from this scheduler and it is still live.
func (s *Scheduler) Owns(f Fired) bool {
	return f.Owner == s.id && !s.Cancelled()
}

// Cancel stops every pending delay. It is safe to call more than once.
func (s *Scheduler) Cancel() {
	s.cancel()
}

// Cancelled reports whether Cancel was called or the parent context ended.
func (s *Scheduler) Cancelled() bool {
	return s.ctx.Err() != nil
}

// Pending returns the number of delay commands currently waiting.
// Commands that were handed out but never run are counted too.
func (s *Scheduler) Pending() int {
	return int(s.pending.Load())
}

// Context is done once the scheduler is cancelled. Use it for other work that
// must stop with the owner, such as text generation.
func (s *Scheduler) Context() context.Context {
	return s.ctx
}
