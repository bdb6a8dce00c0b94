package testutil

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/poller"
)

// StubPoller stands in for the slate poller. Refresh returns SlateVal and RefreshErr.
type StubPoller struct {
	StartCalls   int
	StopCalls    int
	RefreshCalls int
	Err          error
	StatusVal    poller.Status
	SlateVal     games.Slate
	RefreshErr   error
}

func (p *StubPoller) Start(context.Context) {
	p.StartCalls++
}

func (p *StubPoller) Stop(context.Context) error {
	p.StopCalls++
	return p.Err
}

func (p *StubPoller) Status() poller.Status {
	return p.StatusVal
}

func (p *StubPoller) Refresh(context.Context) (games.Slate, error) {
	p.RefreshCalls++
	if p.RefreshErr != nil {
		return games.Slate{}, p.RefreshErr
	}
	return p.SlateVal, nil
}

// StubHTTPServer returns ListenErr from ListenAndServe immediately. Use
// http.ErrServerClosed to mimic a clean shutdown.
type StubHTTPServer struct {
	AddrVal       string
	HandlerVal    http.Handler
	ListenCalls   int
	ShutdownCalls int
	ListenErr     error
	ShutdownErr   error
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.ListenCalls++
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(context.Context) error {
	s.ShutdownCalls++
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// BlockingHTTPServer holds Shutdown until Unblock is closed or the context ends.
type BlockingHTTPServer struct {
	StubHTTPServer
	Unblock chan struct{}
}

func (b *BlockingHTTPServer) ListenAndServe() error {
	return nil
}

func (b *BlockingHTTPServer) Shutdown(ctx context.Context) error {
	b.ShutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.Unblock:
		return nil
	}
}

// StubCloser counts Close calls, standing in for upstream clients such as redis.
type StubCloser struct {
	Err   error
	calls atomic.Int32
}

func (c *StubCloser) Close() error {
	c.calls.Add(1)
	return c.Err
}

// Calls reports how many times Close ran.
func (c *StubCloser) Calls() int {
	return int(c.calls.Load())
}
