// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package supervisor

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// stubService counts starts and optionally fails its first runs.
type stubService struct {
	name      string
	starts    atomic.Int32
	failFirst int32
}

func (s *stubService) Serve(ctx context.Context) error {
	n := s.starts.Add(1)
	if n <= s.failFirst {
		return errors.New("simulated failure")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubService) String() string { return s.name }

// syncBuffer is a bytes.Buffer safe for the supervisor's goroutines.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func quietLogger() *slog.Logger {
	return slog.New(logging.NewSlogHandlerWithLogger(logging.NewTestLogger(&syncBuffer{})))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestNewSupervisorTreeDefaults(t *testing.T) {
	tree, err := NewSupervisorTree(quietLogger(), TreeConfig{})
	if err != nil {
		t.Fatalf("NewSupervisorTree() error = %v", err)
	}
	if tree.Root() == nil {
		t.Fatal("root supervisor should not be nil")
	}
	if tree.config != DefaultTreeConfig() {
		t.Errorf("config = %+v, want defaults %+v", tree.config, DefaultTreeConfig())
	}

	custom, _ := NewSupervisorTree(quietLogger(), TreeConfig{FailureThreshold: 2, ShutdownTimeout: time.Second})
	if custom.config.FailureThreshold != 2 || custom.config.ShutdownTimeout != time.Second {
		t.Errorf("explicit values overwritten: %+v", custom.config)
	}
	if custom.config.FailureDecay != 30 {
		t.Errorf("FailureDecay = %v, want default 30", custom.config.FailureDecay)
	}
}

func TestSupervisorTreeStartsBothLayers(t *testing.T) {
	tree, _ := NewSupervisorTree(quietLogger(), TreeConfig{ShutdownTimeout: time.Second})

	cacheSvc := &stubService{name: "cache"}
	apiSvc := &stubService{name: "api"}
	tree.AddCacheService(cacheSvc)
	tree.AddAPIService(apiSvc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return cacheSvc.starts.Load() >= 1 && apiSvc.starts.Load() >= 1 })
	cancel()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop")
	}
}

func TestSupervisorTreeRestartsFailingService(t *testing.T) {
	buf := &syncBuffer{}
	logger := slog.New(logging.NewSlogHandlerWithLogger(logging.NewTestLogger(buf)))
	tree, _ := NewSupervisorTree(logger, TreeConfig{
		FailureThreshold: 10,
		FailureBackoff:   10 * time.Millisecond,
		ShutdownTimeout:  time.Second,
	})

	flaky := &stubService{name: "flaky-cache", failFirst: 2}
	stable := &stubService{name: "http"}
	tree.AddCacheService(flaky)
	tree.AddAPIService(stable)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := tree.ServeBackground(ctx)

	waitFor(t, func() bool { return flaky.starts.Load() >= 3 })
	if got := stable.starts.Load(); got != 1 {
		t.Errorf("api service starts = %d, want 1 (isolated from cache failures)", got)
	}
	if !strings.Contains(buf.String(), "flaky-cache") {
		t.Error("expected supervisor events in the log stream")
	}

	cancel()
	<-errCh
}
