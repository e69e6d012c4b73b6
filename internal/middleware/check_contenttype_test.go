package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/for-hk/linkup-auth/internal/middleware"
	"github.com/for-hk/linkup-auth/internal/pkg/message"
	"github.com/for-hk/linkup-auth/internal/pkg/web"
)

func TestCheckContentType(t *testing.T) {
	t.Parallel()

	const (
		okContent  = "handled"
		errContent = `{"error":{"request":["invalid input"]}}`
	)

	tests := []struct {
		name, method, contentType, wantBody string
		wantCode                            int
	}{
		{"JSON post", http.MethodPost, web.MimeJSON, okContent, http.StatusOK},
		{"JSON put", http.MethodPut, web.MimeJSON, okContent, http.StatusOK},
		{"JSON with charset", http.MethodPost, "application/json; charset=utf-8", errContent, http.StatusNotAcceptable},
		{"Other content type", http.MethodPost, "text/html; charset=utf-8", errContent, http.StatusNotAcceptable},
		{"Empty content type", http.MethodPost, "", errContent, http.StatusNotAcceptable},
		{"Get request", http.MethodGet, "", okContent, http.StatusOK},
		{"Head request", http.MethodHead, "", okContent, http.StatusOK},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				if _, err := w.Write([]byte(okContent)); err != nil {
					const status = http.StatusInternalServerError
					http.Error(w, http.StatusText(status), status)
				}
			})

			req, rec := httptest.NewRequest(tc.method, "/", http.NoBody), httptest.NewRecorder()
			if tc.contentType != "" {
				req.Header.Set(web.HeaderContentType, tc.contentType)
			}

			middleware.CheckContentType(handler).ServeHTTP(rec, req)

			if gotCode := rec.Code; gotCode != tc.wantCode {
				t.Errorf(message.FmtErrStatusCode, gotCode, tc.wantCode)
			}

			gotBody := strings.TrimSuffix(rec.Body.String(), "\n")
			if gotBody != tc.wantBody {
				t.Errorf("rec.Body.String() = %q, want: %q", gotBody, tc.wantBody)
			}
		})
	}
}
