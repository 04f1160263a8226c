package logging

import (
	"context"
	"log/slog"
	"time"
)

// Timer measures the duration of a named step and logs it when stopped.
type Timer struct {
	logger *slog.Logger
	level  slog.Level
	name   string
	start  time.Time
	now    func() time.Time
}

// StartTimer starts a Timer. Nothing is logged until Stop.
func StartTimer(logger *slog.Logger, level slog.Level, name string) *Timer {
	t := &Timer{logger: logger, level: level, name: name, now: time.Now}
	t.start = t.now()
	return t
}

// BracketTimer logs "Starting <name>" and starts a Timer.
func BracketTimer(logger *slog.Logger, level slog.Level, name string) *Timer {
	logger.Log(context.Background(), level, "Starting "+name)
	return StartTimer(logger, level, name)
}

// Elapsed returns the time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return t.now().Sub(t.start)
}

// Stop logs "Completed <name>" with the elapsed time and returns it.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.logger.Log(context.Background(), t.level, "Completed "+t.name, slog.Duration("elapsed", elapsed))
	return elapsed
}
