package orders

import (
	"log/slog"
	"time"
)

// Scheduler invokes the tracker's daily tick. The tick itself stays on the
// tracker so tests can drive it with synthetic clock values.
type Scheduler struct {
	tracker *Tracker
	hour    int
	stop    chan struct{}
}

// NewScheduler runs Tick once per day at the given local hour.
func NewScheduler(tracker *Tracker, hour int) *Scheduler {
	return &Scheduler{tracker: tracker, hour: hour, stop: make(chan struct{})}
}

func (s *Scheduler) Start() {
	go s.run()
}

func (s *Scheduler) Stop() {
	close(s.stop)
}

func (s *Scheduler) run() {
	for {
		now := time.Now()
		next := nextRun(now, s.hour)
		timer := time.NewTimer(next.Sub(now))
		slog.Info("Countdown check scheduled", "at", next.Format(time.RFC3339))

		select {
		case <-timer.C:
			slog.Info("Running daily countdown check")
			s.tracker.Tick(time.Now())
		case <-s.stop:
			timer.Stop()
			return
		}
	}
}

// nextRun returns the next occurrence of hour:00 strictly after now.
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
