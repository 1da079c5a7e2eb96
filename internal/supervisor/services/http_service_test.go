// Reelmatch - Content-Based Movie Recommendation Lookup
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*HTTPServerService)(nil)

// fakeServer is an HTTPServer test double.
type fakeServer struct {
	listenErr   error
	block       bool
	shutdownErr error

	listens   atomic.Int32
	shutdowns atomic.Int32
	started   chan struct{}
	stopCh    chan struct{}
	stopOnce  sync.Once
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		started: make(chan struct{}, 1),
		stopCh:  make(chan struct{}),
	}
}

func (f *fakeServer) ListenAndServe() error {
	f.listens.Add(1)
	select {
	case f.started <- struct{}{}:
	default:
	}
	if f.listenErr != nil {
		return f.listenErr
	}
	if f.block {
		<-f.stopCh
		return http.ErrServerClosed
	}
	return nil
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.shutdowns.Add(1)
	f.stopOnce.Do(func() { close(f.stopCh) })
	return f.shutdownErr
}

func waitStarted(t *testing.T, f *fakeServer) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(time.Second):
		t.Fatal("server did not start")
	}
}

func TestNewHTTPServerService_Defaults(t *testing.T) {
	svc := NewHTTPServerService(newFakeServer(), 0, zerolog.Nop())
	if svc.shutdownTimeout != defaultShutdownTimeout {
		t.Errorf("shutdownTimeout = %v, want %v", svc.shutdownTimeout, defaultShutdownTimeout)
	}
	if svc.String() != "http-server" {
		t.Errorf("String() = %q, want http-server", svc.String())
	}

	svc = NewHTTPServerService(newFakeServer(), 3*time.Second, zerolog.Nop())
	if svc.shutdownTimeout != 3*time.Second {
		t.Errorf("shutdownTimeout = %v, want 3s", svc.shutdownTimeout)
	}
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	server := newFakeServer()
	server.block = true
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitStarted(t, server)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
	if server.listens.Load() != 1 || server.shutdowns.Load() != 1 {
		t.Errorf("listens = %d, shutdowns = %d, want 1 and 1", server.listens.Load(), server.shutdowns.Load())
	}
}

func TestHTTPServerService_ListenFailure(t *testing.T) {
	bindErr := errors.New("bind: address already in use")
	server := newFakeServer()
	server.listenErr = bindErr
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	err := svc.Serve(context.Background())
	if !errors.Is(err, bindErr) {
		t.Errorf("Serve() = %v, want wrapped bind error", err)
	}
}

func TestHTTPServerService_ShutdownFailure(t *testing.T) {
	shutdownErr := errors.New("shutdown timeout")
	server := newFakeServer()
	server.block = true
	server.shutdownErr = shutdownErr
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	waitStarted(t, server)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, shutdownErr) {
			t.Errorf("Serve() = %v, want shutdown error", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return")
	}
}

func TestHTTPServerService_UnderSupervisor(t *testing.T) {
	server := newFakeServer()
	server.block = true
	svc := NewHTTPServerService(server, time.Second, zerolog.Nop())

	sup := suture.New("test-api", suture.Spec{
		FailureThreshold: 3,
		FailureBackoff:   10 * time.Millisecond,
		Timeout:          2 * time.Second,
	})
	sup.Add(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := sup.ServeBackground(ctx)

	waitStarted(t, server)
	cancel()
	<-errCh

	if server.shutdowns.Load() < 1 {
		t.Error("Shutdown was not called")
	}
}
