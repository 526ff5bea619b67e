package middleware

import (
	"context"
	"testing"

	crediflow "github.com/crediflow/crediflow-go"
)

func TestBasicAuth(t *testing.T) {
	req := newRequest()
	_, err := BasicAuth("demo", "secret")(context.Background(), req,
		fakeNext(&crediflow.Response{Status: 200}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// base64("demo:secret")
	if got := req.Header.Get("Authorization"); got != "Basic ZGVtbzpzZWNyZXQ=" {
		t.Errorf("unexpected Authorization header %q", got)
	}
}

func TestAPIKey(t *testing.T) {
	req := newRequest()
	_, err := APIKey("key-123")(context.Background(), req,
		fakeNext(&crediflow.Response{Status: 200}, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := req.Header.Get("apiKey"); got != "key-123" {
		t.Errorf("unexpected apiKey header %q", got)
	}
}
