package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	crediflow "github.com/crediflow/crediflow-go"
)

func fakeNext(res *crediflow.Response, err error) crediflow.CallFunc {
	return func(ctx context.Context, req *crediflow.Request) (*crediflow.Response, error) {
		return res, err
	}
}

func newRequest() *crediflow.Request {
	return &crediflow.Request{
		Method:      http.MethodGet,
		URL:         "loans/822/repayments",
		ContentType: crediflow.ContentTypeForm,
		Header:      http.Header{},
	}
}

func TestLoggingRecordsCompletion(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	req := newRequest()
	res, err := Logging(logger)(context.Background(), req, fakeNext(&crediflow.Response{Status: 200}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != 200 {
		t.Errorf("response altered: %+v", res)
	}

	out := buf.String()
	if !strings.Contains(out, "call started") || !strings.Contains(out, "call completed") {
		t.Errorf("expected start and completion records, got %q", out)
	}
	if !strings.Contains(out, "loans/822/repayments") {
		t.Errorf("expected URL in log, got %q", out)
	}
	if req.Header.Get("X-Request-ID") == "" {
		t.Error("expected a generated request id header")
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	wantErr := crediflow.NewError(crediflow.CodeTransport, "connection refused")
	_, err := Logging(logger)(context.Background(), newRequest(), fakeNext(nil, wantErr))
	if err != wantErr {
		t.Errorf("expected the error passed through, got %v", err)
	}
	if !strings.Contains(buf.String(), "call failed") {
		t.Errorf("expected failure record, got %q", buf.String())
	}
}

func TestLoggingReusesContextRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := crediflow.WithRequestID(context.Background(), "workflow-7")
	req := newRequest()
	if _, err := Logging(logger)(ctx, req, fakeNext(&crediflow.Response{Status: 200}, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.Header.Get("X-Request-ID"); got != "workflow-7" {
		t.Errorf("expected the context id reused, got %q", got)
	}
	if !strings.Contains(buf.String(), "workflow-7") {
		t.Errorf("expected the id in log output, got %q", buf.String())
	}
}

func TestLoggingGeneratesDistinctIDs(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	interceptor := Logging(logger)

	first := newRequest()
	second := newRequest()
	if _, err := interceptor(context.Background(), first, fakeNext(&crediflow.Response{Status: 200}, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := interceptor(context.Background(), second, fakeNext(&crediflow.Response{Status: 200}, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, b := first.Header.Get("X-Request-ID"), second.Header.Get("X-Request-ID")
	if a == "" || a == b {
		t.Errorf("expected distinct ids, got %q and %q", a, b)
	}
}
