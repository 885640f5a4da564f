package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/johnquangdev/teamsync/pkg/config"
)

func TestSend_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("missing bearer token")
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["subject"] != "hello" {
			t.Fatalf("unexpected subject %v", payload["subject"])
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"id": "email-123"})
	}))
	defer ts.Close()

	client := NewResendClient(&config.ResendConfig{APIKey: "test-key", BaseURL: ts.URL})

	res := client.Send(context.Background(), Message{To: "a@b.c", Subject: "hello", HTML: "<p>hi</p>"})
	if res.Err != nil {
		t.Fatalf("send failed: %v", res.Err)
	}
	if !res.Delivered || res.MessageID != "email-123" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestSend_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewResendClient(&config.ResendConfig{APIKey: "test-key", BaseURL: ts.URL})

	res := client.Send(context.Background(), Message{To: "a@b.c", Subject: "hello", HTML: "<p>hi</p>"})
	if res.Err == nil || res.Delivered {
		t.Fatalf("expected failed result, got %+v", res)
	}
}
