package crediflow

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/crediflow/crediflow-go/testutil"
)

func TestNewClientWiresServices(t *testing.T) {
	api, err := NewClient("https://demo.crediflow.dev/api")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.Clients == nil || api.Loans == nil || api.Repayments == nil || api.Savings == nil {
		t.Error("expected all services wired")
	}
	if api.Executor() == nil {
		t.Error("expected executor exposed")
	}
}

func TestNewClientInvalidBaseURL(t *testing.T) {
	_, err := NewClient("not a url")
	if err == nil {
		t.Fatal("expected error")
	}
	if CodeOf(err) != CodeConfiguration {
		t.Errorf("expected code %s, got %s", CodeConfiguration, CodeOf(err))
	}
}

func TestClientInterceptorAppliesToServices(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodGet, "/loans/1", http.StatusOK, `{}`)

	api := newTestClient(t, server)
	api.WithInterceptor(func(ctx context.Context, req *Request, next CallFunc) (*Response, error) {
		req.Header.Set("Authorization", "Basic dGVzdA==")
		return next(ctx, req)
	})

	if _, err := api.Loans.Get(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ex := server.LastExchange(t)
	if ex.Header.Get("Authorization") != "Basic dGVzdA==" {
		t.Error("interceptor header did not reach the wire")
	}
}

func TestClientLoggerRecordsCalls(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodGet, "/loans/1", http.StatusOK, `{}`)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	api := newTestClient(t, server).WithLogger(logger)
	if _, err := api.Loans.Get(context.Background(), "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "api call") || !strings.Contains(out, "loans/1") {
		t.Errorf("expected debug record of the call, got %q", out)
	}
}

func TestConcurrentCallsShareOneClient(t *testing.T) {
	server := testutil.NewServer(t)
	server.Stub(http.MethodGet, "/loans/822/repayments", http.StatusOK, `[]`)
	api := newTestClient(t, server)

	done := make(chan error, 16)
	for range 16 {
		go func() {
			_, err := api.Repayments.ForLoanAccount(context.Background(), "822")
			done <- err
		}()
	}
	for range 16 {
		if err := <-done; err != nil {
			t.Fatalf("concurrent call failed: %v", err)
		}
	}
	if got := len(server.Exchanges()); got != 16 {
		t.Errorf("expected 16 recorded calls, got %d", got)
	}
}
