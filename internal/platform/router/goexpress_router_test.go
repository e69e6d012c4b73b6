package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/for-hk/linkup-auth/internal/pkg/message"
	"github.com/for-hk/linkup-auth/internal/platform/router"
)

func TestGoexpressRouter_Group(t *testing.T) {
	t.Parallel()

	const header = "X-Group-Middleware"

	groupMw := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set(header, "true")
			next.ServeHTTP(w, req)
		})
	}

	r := router.NewGoexpressRouter()
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Group("/api", func(gr router.Router) {
		gr.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
	}, groupMw)

	tests := []struct {
		name   string
		target string
		code   int
		header string
	}{
		{"Route inside the group", "/api/ping", http.StatusOK, "true"},
		{"Route outside the group", "/ping", http.StatusOK, ""},
		{"Group prefix without a matching route", "/api/pong", http.StatusNotFound, "true"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tc.target, http.NoBody)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if gotCode := rec.Code; gotCode != tc.code {
				t.Errorf(message.FmtErrStatusCode, gotCode, tc.code)
			}

			if gotHeader := rec.Header().Get(header); gotHeader != tc.header {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", header, gotHeader, tc.header)
			}
		})
	}
}
