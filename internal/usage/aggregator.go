// Package usage sums token usage from the assistant's session logs over a
// trailing window. The scan runs at most once per process.
package usage

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/modu-ai/moai-deck/pkg/models"
)

// DefaultWindow is the trailing period whose log files are counted.
const DefaultWindow = 7 * 24 * time.Hour

const defaultConcurrency = 8

// markerPattern matches one usage marker, e.g. "totalUsage: input=100 output=50".
var markerPattern = regexp.MustCompile(`input=(\d+)\s+output=(\d+)`)

// Aggregator computes a UsageSnapshot from a log directory and caches it.
type Aggregator struct {
	dir         string
	window      time.Duration
	now         func() time.Time
	concurrency int
	logger      *slog.Logger

	once     sync.Once
	snapshot models.UsageSnapshot
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithWindow sets the trailing window. Non-positive values are ignored.
func WithWindow(d time.Duration) Option {
	return func(a *Aggregator) {
		if d > 0 {
			a.window = d
		}
	}
}

// WithClock sets the time source (used for testing).
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) {
		a.now = now
	}
}

// WithConcurrency bounds the number of files read at once.
func WithConcurrency(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.concurrency = n
		}
	}
}

// WithLogger sets the logger for the aggregator.
func WithLogger(l *slog.Logger) Option {
	return func(a *Aggregator) {
		a.logger = l
	}
}

// NewAggregator creates an Aggregator over the log files in dir.
func NewAggregator(dir string, opts ...Option) *Aggregator {
	a := &Aggregator{
		dir:         dir,
		window:      DefaultWindow,
		now:         time.Now,
		concurrency: defaultConcurrency,
		logger:      slog.Default().With("module", "usage"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Get returns the usage snapshot, scanning the log directory on the first
// call only. Later calls return the same snapshot even if the logs change.
func (a *Aggregator) Get(ctx context.Context) models.UsageSnapshot {
	return a.GetWithProgress(ctx, nil)
}

// GetWithProgress is Get, calling progress after each log file is scanned.
// progress only fires when this call performs the scan. Calls are serialized
// and done increases by one each time.
func (a *Aggregator) GetWithProgress(ctx context.Context, progress func(done, total int)) models.UsageSnapshot {
	a.once.Do(func() {
		a.snapshot = a.scan(ctx, progress)
	})
	return a.snapshot
}

func (a *Aggregator) scan(ctx context.Context, progress func(done, total int)) models.UsageSnapshot {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		a.logger.Debug("log directory unavailable", "dir", a.dir, "error", err)
		return models.UsageSnapshot{}
	}

	// Files modified after now are excluded as well as those before cutoff.
	now := a.now()
	cutoff := now.Add(-a.window)

	var paths []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if mt := info.ModTime(); mt.Before(cutoff) || mt.After(now) {
			continue
		}
		paths = append(paths, filepath.Join(a.dir, entry.Name()))
	}

	var input, output atomic.Int64
	total := len(paths)

	var mu sync.Mutex
	done := 0

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)

	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			in, out := a.scanFile(path)
			input.Add(in)
			output.Add(out)
			if progress != nil {
				mu.Lock()
				done++
				progress(done, total)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		a.logger.Debug("usage scan interrupted", "error", err)
	}

	return models.UsageSnapshot{
		Input:    input.Load(),
		Output:   output.Load(),
		Sessions: int64(total),
	}
}

// scanFile sums every usage marker in one file. Unreadable files add nothing.
func (a *Aggregator) scanFile(path string) (int64, int64) {
	data, err := os.ReadFile(path)
	if err != nil {
		a.logger.Debug("skipping unreadable log", "path", path, "error", err)
		return 0, 0
	}
	return SumMarkers(data)
}

// SumMarkers returns the input and output totals of all usage markers in data.
func SumMarkers(data []byte) (int64, int64) {
	var in, out int64
	for _, m := range markerPattern.FindAllSubmatch(data, -1) {
		i, err1 := strconv.ParseInt(string(m[1]), 10, 64)
		o, err2 := strconv.ParseInt(string(m[2]), 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		in += i
		out += o
	}
	return in, out
}
