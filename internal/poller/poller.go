package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/logging"
	"github.com/preston-bernstein/nba-projection-service/internal/metrics"
	"github.com/preston-bernstein/nba-projection-service/internal/providers"
	"github.com/preston-bernstein/nba-projection-service/internal/timeutil"
)

// ErrRefreshInProgress is returned by Refresh while another fetch holds the poller.
var ErrRefreshInProgress = errors.New("slate fetch already in progress")

const (
	defaultInterval = 2 * time.Minute
	// readyFailureLimit is how many consecutive failures flip the poller to not ready.
	readyFailureLimit = 3
)

// SlateStore receives each freshly fetched slate.
type SlateStore interface {
	SetSlate(slate games.Slate)
}

// SnapshotWriter archives slates to disk.
type SnapshotWriter interface {
	WriteSlateSnapshot(date string, slate games.Slate) error
}

// Poller fetches the slate on an interval, swaps it into the store and archives it.
type Poller struct {
	provider providers.SlateProvider
	store    SlateStore
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	fetchMu  sync.Mutex
	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int       `json:"consecutiveFailures"`
	LastError           string    `json:"lastError,omitempty"`
	LastAttempt         time.Time `json:"lastAttempt"`
	LastSuccess         time.Time `json:"lastSuccess"`
	Games               int       `json:"games"`
}

// IsReady reports whether the poller has had a success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureLimit
}

// New constructs a Poller with sane defaults. store and writer may be nil.
func New(provider providers.SlateProvider, store SlateStore, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		store:    store,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.ticker = time.NewTicker(p.interval)
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm the slate on boot. Failures are logged and tracked in Status.
		_, _ = p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				_, _ = p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Refresh fetches the slate immediately, outside the ticker cadence. It never waits:
// ErrRefreshInProgress is returned while another fetch runs, and a *providers.RateLimitError
// when the upstream was fetched too recently. Neither counts as a poller failure.
func (p *Poller) Refresh(ctx context.Context) (games.Slate, error) {
	if !p.fetchMu.TryLock() {
		return games.Slate{}, ErrRefreshInProgress
	}
	defer p.fetchMu.Unlock()
	return p.fetchLocked(providers.WithoutWait(ctx), true)
}

func (p *Poller) fetchOnce(ctx context.Context) (games.Slate, error) {
	p.fetchMu.Lock()
	defer p.fetchMu.Unlock()
	return p.fetchLocked(ctx, false)
}

func (p *Poller) fetchLocked(ctx context.Context, manual bool) (games.Slate, error) {
	start := p.now()
	p.recordAttempt(start)

	var (
		slate games.Slate
		err   error
	)
	if p.provider == nil {
		err = providers.ErrProviderUnavailable
	} else {
		slate, err = p.provider.FetchSlate(ctx)
	}
	if _, limited := providers.AsRateLimitError(err); manual && limited {
		logging.Warn(p.logger, "manual slate refresh rate limited", slog.Any("error", err))
		return games.Slate{}, err
	}
	p.metrics.RecordPollerCycle(time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return games.Slate{}, err
	}

	if slate.Date == "" {
		slate.Date = timeutil.FormatDate(start)
	}
	if p.store != nil {
		p.store.SetSlate(slate)
	}
	if p.writer != nil {
		if writeErr := p.writer.WriteSlateSnapshot(slate.Date, slate); writeErr != nil {
			logging.Error(p.logger, "poller snapshot write failed", writeErr, slog.String(logging.FieldDate, slate.Date))
		}
	}
	p.recordSuccess(start, len(slate.Games))
	logging.Info(p.logger, "poller refreshed slate",
		logging.FieldDate, slate.Date,
		logging.FieldSource, slate.Source,
		logging.FieldCount, len(slate.Games),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return slate, nil
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, count int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.Games = count
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.SlateProvider {
	return p.provider
}
