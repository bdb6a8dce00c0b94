package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-projection-service/internal/config"
	"github.com/preston-bernstein/nba-projection-service/internal/domain/games"
	"github.com/preston-bernstein/nba-projection-service/internal/projection"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/file"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/fixture"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/httpslate"
	"github.com/preston-bernstein/nba-projection-service/internal/providers/redis"
	"github.com/preston-bernstein/nba-projection-service/internal/tables"
	"github.com/preston-bernstein/nba-projection-service/internal/testutil"
)

func sampleReference() tables.Reference {
	return tables.Reference{Players: testutil.SampleRoster(), DvP: testutil.SampleDvP()}
}

func waitForSuccess(t *testing.T, srv *Server) {
	t.Helper()
	deadline := time.After(time.Second)
	for srv.poller.Status().LastSuccess.IsZero() {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for poller to refresh")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestServerServesProjectionsAfterPoll(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &testutil.NotifyingProvider{
		Slate:  testutil.SampleSlate("2024-01-01"),
		Notify: make(chan struct{}),
	}

	cfg := config.Config{PollInterval: 5 * time.Millisecond}
	srv := newServerWithSource(cfg, nil, sampleReference(), provider)
	srv.poller.Start(ctx)
	defer func() { _ = srv.poller.Stop(context.Background()) }()

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}
	waitForSuccess(t, srv)

	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/projections?player=Jayson%20Tatum&stat=PRA", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var res projection.Result
	testutil.DecodeJSON(t, rr, &res)
	if res.Matchup.Opponent != "LAL" || res.Selector != projection.PRA {
		t.Fatalf("unexpected projection %+v", res)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected middleware to set request id")
	}
	testutil.AssertProjections(t, srv.metrics, "PRA", 1, 0)
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	cfg := config.Config{PollInterval: time.Hour}
	srv := newServerWithSource(cfg, nil, sampleReference(), testutil.ErrProvider{Err: context.DeadlineExceeded})

	router := srv.Handler()
	rr := testutil.Serve(router, http.MethodGet, "/slate", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	// Without a slate every player projects unadjusted by matchup.
	rr = testutil.Serve(router, http.MethodGet, "/projections?player=Jayson%20Tatum", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var res projection.Result
	testutil.DecodeJSON(t, rr, &res)
	if res.Matchup.HasOpponent() {
		t.Fatalf("expected no matchup without slate, got %+v", res.Matchup)
	}

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestServerArchivesAndServesSnapshots(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		PollInterval: time.Hour,
		Snapshots:    config.SnapshotsConfig{Enabled: true, Dir: dir, RetentionDays: 30},
	}
	today := testutil.Today()
	srv := newServerWithSource(cfg, nil, sampleReference(), testutil.GoodProvider{Slate: testutil.SampleSlate(today)})

	if _, err := srv.poller.Refresh(context.Background()); err != nil {
		t.Fatalf("expected refresh to succeed, got %v", err)
	}
	// Replace the live slate so the archived date must come from disk.
	srv.services.Slate.Replace(testutil.SampleSlate("2000-01-01"))

	rr := testutil.Serve(srv.Handler(), http.MethodGet, "/slate?date="+today, nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var slate games.Slate
	testutil.DecodeJSON(t, rr, &slate)
	if slate.Date != today || len(slate.Games) != 1 {
		t.Fatalf("unexpected archived slate %+v", slate)
	}
}

func TestAdminRouteMountedOnlyWithToken(t *testing.T) {
	provider := testutil.GoodProvider{Slate: testutil.SampleSlate("2024-01-01")}

	srv := newServerWithSource(config.Config{}, nil, sampleReference(), provider)
	rr := testutil.Serve(srv.Handler(), http.MethodPost, "/admin/slate/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	srv = newServerWithSource(config.Config{AdminToken: "secret"}, nil, sampleReference(), provider)
	req := httptest.NewRequest(http.MethodPost, "/admin/slate/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr = testutil.ServeRequest(srv.Handler(), req)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if _, ok := srv.store.Slate(); !ok {
		t.Fatalf("expected admin refresh to install the slate")
	}
}

func TestSelectProviderBySource(t *testing.T) {
	cases := []struct {
		source     string
		wantCloser bool
		check      func(any) bool
	}{
		{config.SourceFile, false, func(p any) bool { _, ok := p.(*file.Provider); return ok }},
		{"", false, func(p any) bool { _, ok := p.(*file.Provider); return ok }},
		{config.SourceHTTP, false, func(p any) bool { _, ok := p.(*httpslate.Client); return ok }},
		{config.SourceRedis, true, func(p any) bool { _, ok := p.(*redis.Provider); return ok }},
		{config.SourceFixture, false, func(p any) bool { _, ok := p.(*fixture.Provider); return ok }},
		{"carrier-pigeon", false, func(p any) bool { _, ok := p.(*fixture.Provider); return ok }},
	}
	for _, tc := range cases {
		cfg := config.Config{Slate: config.SlateConfig{
			Source: tc.source,
			File:   "slate.yaml",
			URL:    "http://example.com/slate",
			Redis:  config.RedisConfig{Addr: "127.0.0.1:0", Key: "slate:current"},
		}}
		prov, closer := selectProvider(cfg, nil)
		if !tc.check(prov) {
			t.Fatalf("source %q: unexpected provider %T", tc.source, prov)
		}
		if (closer != nil) != tc.wantCloser {
			t.Fatalf("source %q: closer presence %v, want %v", tc.source, closer != nil, tc.wantCloser)
		}
		if closer != nil {
			_ = closer.Close()
		}
	}
}

func writeTables(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	playersPath := filepath.Join(dir, "players.csv")
	dvpPath := filepath.Join(dir, "dvp.csv")
	playersCSV := "Player,Team,Position,PTS_adj,REB_adj,AST_adj,TS%,MPG\n" +
		"Jayson Tatum,BOS,F,27.5,8.1,4.6,0.60,35.8\n"
	dvpCSV := "Team,SF_PTS,PF_PTS\nLos Angeles Lakers,3,5\n"
	if err := os.WriteFile(playersPath, []byte(playersCSV), 0o644); err != nil {
		t.Fatalf("write players: %v", err)
	}
	if err := os.WriteFile(dvpPath, []byte(dvpCSV), 0o644); err != nil {
		t.Fatalf("write dvp: %v", err)
	}
	return playersPath, dvpPath
}

func TestNewConstructsServer(t *testing.T) {
	playersPath, dvpPath := writeTables(t)
	cfg := config.Config{
		Port:    "0",
		Tables:  config.TablesConfig{PlayersFile: playersPath, DvpFile: dvpPath},
		Slate:   config.SlateConfig{Source: config.SourceFixture},
		Metrics: config.MetricsConfig{Enabled: false},
	}
	srv, err := New(cfg, nil)
	if err != nil {
		t.Fatalf("expected server, got %v", err)
	}
	if srv.Handler() == nil || srv.services.Players.Count() != 1 {
		t.Fatalf("expected server with handler and loaded roster")
	}
}

func TestNewReturnsTableError(t *testing.T) {
	cfg := config.Config{
		Tables: config.TablesConfig{
			PlayersFile: filepath.Join(t.TempDir(), "missing.csv"),
			DvpFile:     filepath.Join(t.TempDir(), "missing.csv"),
		},
	}
	if _, err := New(cfg, nil); err == nil {
		t.Fatalf("expected error for missing tables")
	}
}

func TestGracefulShutdownCallsStopShutdownAndClosers(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}
	redisClient := &testutil.StubCloser{Err: errors.New("already closed")}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.closers = append(srv.closers, redisClient)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if redisClient.Calls() != 1 {
		t.Fatalf("expected closer to run once, got %d", redisClient.Calls())
	}
}

func TestGracefulShutdownStopsMetrics(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}
	metricsSrv := &testutil.StubHTTPServer{ShutdownErr: errors.New("metrics down")}
	stopped := false

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.metricsServer = metricsSrv
	srv.metricsStop = func(context.Context) error {
		stopped = true
		return errors.New("flush failed")
	}
	srv.gracefulShutdown()

	if !stopped || metricsSrv.ShutdownCalls != 1 || httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected every component shut down despite errors")
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{Unblock: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	p := &testutil.StubPoller{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	plr := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, plr)

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{ListenErr: http.ErrServerClosed}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.StartCalls)
	}
	if plr.StopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
