// control/stats.go
// Author: momentics <momentics@gmail.com>
//
// In-memory lifecycle counters implementing resumable.Observer.

package control

import (
	"sync/atomic"

	"github.com/momentics/hioload-resume/api"
	"github.com/momentics/hioload-resume/resumable"
)

// Stats counts computation lifecycle events.
type Stats struct {
	started      atomic.Int64
	suspended    atomic.Int64
	resumed      atomic.Int64
	completed    atomic.Int64
	closed       atomic.Int64
	blockedRead  atomic.Int64
	blockedWrite atomic.Int64
}

var _ resumable.Observer = (*Stats)(nil)

func NewStats() *Stats { return &Stats{} }

func (s *Stats) Started() { s.started.Add(1) }

func (s *Stats) Suspended(wd api.WaitDescriptor) {
	s.suspended.Add(1)
	if wd.Interest.IsReadable() {
		s.blockedRead.Add(1)
	}
	if wd.Interest.IsWritable() {
		s.blockedWrite.Add(1)
	}
}

func (s *Stats) Resumed(api.WaitDescriptor) { s.resumed.Add(1) }

func (s *Stats) Completed(int) { s.completed.Add(1) }

func (s *Stats) Closed(api.WaitDescriptor) { s.closed.Add(1) }

// StatsSnapshot is a point-in-time copy of Stats.
type StatsSnapshot struct {
	Started      int64
	Suspended    int64
	Resumed      int64
	Completed    int64
	Closed       int64
	BlockedRead  int64
	BlockedWrite int64
}

// Snapshot returns the current counters.
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Started:      s.started.Load(),
		Suspended:    s.suspended.Load(),
		Resumed:      s.resumed.Load(),
		Completed:    s.completed.Load(),
		Closed:       s.closed.Load(),
		BlockedRead:  s.blockedRead.Load(),
		BlockedWrite: s.blockedWrite.Load(),
	}
}

// Active reports computations started but neither completed nor closed.
func (s *Stats) Active() int64 {
	return s.started.Load() - s.completed.Load() - s.closed.Load()
}
