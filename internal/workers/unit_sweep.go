package workers

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fireDispatch/internal/domain"
)

type Sweeper interface {
	AutoDeactivateSweep(ctx context.Context) (*domain.SweepResult, error)
}

type sweepResult struct {
	res *domain.SweepResult
	err error
}

type sweepJob struct {
	ResultChan chan<- sweepResult
}

var ErrSweeperStopped = errors.New("unit sweeper is not running")

// UnitSweeper runs the end-of-shift sweep once a day at a fixed wall-clock
// time. Manual triggers go through the same job queue, so sweeps never
// overlap each other.
type UnitSweeper struct {
	sweeper  Sweeper
	logger   *slog.Logger
	jobs     chan sweepJob
	hour     int
	minute   int
	loc      *time.Location
	schedule bool
	now      func() time.Time

	mu      sync.RWMutex
	running bool
}

func NewUnitSweeper(sweeper Sweeper, logger *slog.Logger, hour, minute int, loc *time.Location, schedule bool) *UnitSweeper {
	if loc == nil {
		loc = time.UTC
	}
	return &UnitSweeper{
		sweeper:  sweeper,
		logger:   logger,
		jobs:     make(chan sweepJob, 4),
		hour:     hour,
		minute:   minute,
		loc:      loc,
		schedule: schedule,
		now:      time.Now,
	}
}

func (w *UnitSweeper) Run(ctx context.Context) {
	w.setRunning(true)
	defer w.setRunning(false)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		w.worker(ctx)
	}()

	if w.schedule {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.producer(ctx)
		}()
	}

	w.logger.Info("unit sweeper started",
		slog.Bool("scheduled", w.schedule),
		slog.Time("next_run", NextRun(w.now(), w.hour, w.minute, w.loc)))
	wg.Wait()
	w.logger.Info("unit sweeper stopped")
}

// Sweep runs one sweep on the worker and waits for its result.
func (w *UnitSweeper) Sweep(ctx context.Context) (*domain.SweepResult, error) {
	if !w.isRunning() {
		return nil, ErrSweeperStopped
	}

	results := make(chan sweepResult, 1)
	select {
	case w.jobs <- sweepJob{ResultChan: results}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case r := <-results:
		return r.res, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (w *UnitSweeper) producer(ctx context.Context) {
	for {
		next := NextRun(w.now(), w.hour, w.minute, w.loc)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			select {
			case w.jobs <- sweepJob{}:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (w *UnitSweeper) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-w.jobs:
			w.processJob(ctx, job)
		}
	}
}

func (w *UnitSweeper) processJob(ctx context.Context, job sweepJob) {
	res, err := w.sweeper.AutoDeactivateSweep(ctx)
	if err != nil {
		w.logger.Error("unit sweep failed", slog.String("error", err.Error()))
	} else {
		w.logger.Info("unit sweep finished", slog.Int("deactivated", res.Count))
	}

	if job.ResultChan != nil {
		job.ResultChan <- sweepResult{res: res, err: err}
	}
}

func (w *UnitSweeper) setRunning(v bool) {
	w.mu.Lock()
	w.running = v
	w.mu.Unlock()
}

func (w *UnitSweeper) isRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// NextRun returns the first hour:minute in loc strictly after now.
func NextRun(now time.Time, hour, minute int, loc *time.Location) time.Time {
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hour, minute, 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hour, minute, 0, 0, loc)
	}
	return next
}
