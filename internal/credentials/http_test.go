package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestHTTPSubmitter_Submit(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     bool
		wantType    ErrorType
		wantInvalid bool
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: true, wantType: ErrTypeAuth, wantInvalid: true},
		{name: "forbidden", status: http.StatusForbidden, wantErr: true, wantType: ErrTypeAuth, wantInvalid: true},
		{name: "server error", status: http.StatusInternalServerError, body: "database down", wantErr: true, wantType: ErrTypeHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Request
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("method = %s, want POST", r.Method)
				}
				if ct := r.Header.Get("Content-Type"); ct != "application/json" {
					t.Errorf("Content-Type = %q, want application/json", ct)
				}
				if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
					t.Errorf("decode body: %v", err)
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			s := NewHTTPSubmitter(server.URL)
			err := s.Submit(context.Background(), "a@b.com", "secret")

			if got.Email != "a@b.com" || got.Password != "secret" {
				t.Errorf("server received %+v", got)
			}

			if (err != nil) != tt.wantErr {
				t.Fatalf("Submit() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}

			var ce *Error
			if !errors.As(err, &ce) {
				t.Fatalf("Submit() error type = %T, want *Error", err)
			}
			if ce.Type != tt.wantType {
				t.Errorf("Type = %v, want %v", ce.Type, tt.wantType)
			}
			if ce.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", ce.StatusCode, tt.status)
			}
			if errors.Is(err, ErrInvalidCredentials) != tt.wantInvalid {
				t.Errorf("errors.Is(ErrInvalidCredentials) = %v, want %v", !tt.wantInvalid, tt.wantInvalid)
			}
		})
	}
}

func TestHTTPSubmitter_InvalidEmailNeverSent(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	err := NewHTTPSubmitter(server.URL).Submit(context.Background(), "not-an-email", "secret")

	var ce *Error
	if !errors.As(err, &ce) || ce.Type != ErrTypeValidation {
		t.Errorf("Submit() error = %v, want validation error", err)
	}
	if called {
		t.Error("server was called for an invalid request")
	}
}

func TestHTTPSubmitter_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewHTTPSubmitter(url).Submit(context.Background(), "a@b.com", "secret")

	var ce *Error
	if !errors.As(err, &ce) || ce.Type != ErrTypeNetwork {
		t.Errorf("Submit() error = %v, want network error", err)
	}
}

func TestHTTPSubmitter_TimesOut(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	s := WithTimeout(NewHTTPSubmitter(server.URL), 50*time.Millisecond)

	start := time.Now()
	err := s.Submit(context.Background(), "a@b.com", "secret")

	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Submit() error = %v, want ErrTimeout", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("Submit() took %v, want close to the timeout", elapsed)
	}
}
