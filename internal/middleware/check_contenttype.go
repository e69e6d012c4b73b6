package middleware

import (
	"fmt"
	"net/http"

	"github.com/for-hk/linkup-auth/internal/pkg/message"
	"github.com/for-hk/linkup-auth/internal/pkg/web"
)

func CheckContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		contentType := r.Header.Get(web.HeaderContentType)
		if contentType != web.MimeJSON {
			web.RespondNotAcceptable(w, fmt.Errorf("invalid content-type: %s", contentType), message.InvalidInput)
			return
		}

		next.ServeHTTP(w, r)
	})
}
