// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*CacheMaintenanceService)(nil)

type fakeMaintainer struct {
	calls atomic.Int32
	err   error
}

func (f *fakeMaintainer) Maintain(context.Context) error {
	f.calls.Add(1)
	return f.err
}

// lockedBuffer guards a bytes.Buffer written from the service goroutine.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func runFor(t *testing.T, svc *CacheMaintenanceService, cond func() bool) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			cancel()
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() = %v, want context.Canceled", err)
	}
}

func TestNewCacheMaintenanceService_DefaultInterval(t *testing.T) {
	svc := NewCacheMaintenanceService(&fakeMaintainer{}, 0, zerolog.Nop())
	if svc.interval != defaultMaintenanceInterval {
		t.Errorf("interval = %v, want %v", svc.interval, defaultMaintenanceInterval)
	}
	if svc.String() != "cache-maintenance" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheMaintenanceService_RunsOnInterval(t *testing.T) {
	target := &fakeMaintainer{}
	svc := NewCacheMaintenanceService(target, 10*time.Millisecond, zerolog.Nop())

	runFor(t, svc, func() bool { return target.calls.Load() >= 3 })
}

func TestCacheMaintenanceService_FailuresDoNotStopService(t *testing.T) {
	buf := &lockedBuffer{}
	target := &fakeMaintainer{err: errors.New("value log locked")}
	svc := NewCacheMaintenanceService(target, 10*time.Millisecond, zerolog.New(buf))

	runFor(t, svc, func() bool { return target.calls.Load() >= 2 })

	if !strings.Contains(buf.String(), "value log locked") {
		t.Errorf("expected failure to be logged, got %s", buf.String())
	}
}
