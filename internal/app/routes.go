package app

import (
	"net/http"

	"github.com/for-hk/linkup-auth/internal/auth"
	"github.com/for-hk/linkup-auth/internal/config"
	"github.com/for-hk/linkup-auth/internal/middleware"
	"github.com/for-hk/linkup-auth/internal/pkg/web"
)

func mountRoutes(provider *Provider, cfg *config.Config) {
	r := provider.Router
	handler := provider.Auth.Handler()
	maxBodyBytes := cfg.Server.MaxBodyBytes

	r.Post("/sign_up", handler.SignUp, middleware.DecodePayload[auth.Request](maxBodyBytes))
	r.Post("/sign_in", handler.SignIn, middleware.DecodePayload[auth.Request](maxBodyBytes))
	r.Post("/forgot_password", handler.ForgotPassword, middleware.DecodePayload[auth.Request](maxBodyBytes))

	r.Get("/me", handler.CurrentUser, auth.RequireToken(provider.Signer))

	r.Get("/health", handleHealth)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	web.RespondMessage(w, http.StatusOK, "ok")
}
