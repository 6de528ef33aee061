package tests

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-todo-backend/internal/server/middleware"
)

func TestMaxBodyBytes_OversizedBody_FailsOnRead(t *testing.T) {
	h := middleware.MaxBodyBytes(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// чтение упирается в лимит
		if _, err := io.ReadAll(r.Body); err == nil {
			t.Fatalf("expected read error, got nil")
		}
		w.WriteHeader(http.StatusRequestEntityTooLarge)
	}))

	req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader("way-more-than-eight-bytes"))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected %d, got %d", http.StatusRequestEntityTooLarge, rec.Code)
	}
}

func TestMaxBodyBytes_SmallBody_PassesThrough(t *testing.T) {
	h := middleware.MaxBodyBytes(64)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		if string(b) != `{"title":"note"}` {
			t.Fatalf("unexpected body: %q", b)
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(`{"title":"note"}`))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestMaxBodyBytes_ZeroLimit_DisablesLimit(t *testing.T) {
	h := middleware.MaxBodyBytes(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		if err != nil {
			t.Fatalf("read body: %v", err)
		}
		if len(b) != 1024 {
			t.Fatalf("expected 1024 bytes, got %d", len(b))
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(strings.Repeat("x", 1024)))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected %d, got %d", http.StatusOK, rec.Code)
	}
}
