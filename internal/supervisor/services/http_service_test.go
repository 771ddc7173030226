// Brewfinder - Coffee Shop Discovery and Scene Suitability Scoring
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/brewfinder

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// mockHTTPServer implements HTTPServer for testing.
type mockHTTPServer struct {
	listenErr     error
	shutdownErr   error
	shutdownCalls atomic.Int32
	closed        chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{closed: make(chan struct{})}
}

func (m *mockHTTPServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.closed
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(_ context.Context) error {
	m.shutdownCalls.Add(1)
	select {
	case <-m.closed:
	default:
		close(m.closed)
	}
	return m.shutdownErr
}

func TestHTTPServerService_Interface(t *testing.T) {
	var _ suture.Service = (*HTTPServerService)(nil)
}

func TestHTTPServerService_GracefulShutdown(t *testing.T) {
	server := newMockHTTPServer()
	svc := NewHTTPServerService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop in time")
	}

	if server.shutdownCalls.Load() != 1 {
		t.Errorf("expected 1 shutdown call, got %d", server.shutdownCalls.Load())
	}
}

func TestHTTPServerService_ListenFailure(t *testing.T) {
	server := newMockHTTPServer()
	server.listenErr = errors.New("address already in use")
	svc := NewHTTPServerService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("expected wrapped listen error, got %v", err)
	}
}

func TestHTTPServerService_ShutdownFailure(t *testing.T) {
	server := newMockHTTPServer()
	server.shutdownErr = errors.New("connections did not drain")
	svc := NewHTTPServerService(server, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-errCh:
		if err == nil || !errors.Is(err, server.shutdownErr) {
			t.Errorf("expected wrapped shutdown error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("service did not stop in time")
	}
}

func TestNewHTTPServerService_DefaultsTimeout(t *testing.T) {
	svc := NewHTTPServerService(newMockHTTPServer(), 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("expected default 10s timeout, got %v", svc.shutdownTimeout)
	}
}
