package auth

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/for-hk/linkup-auth/internal/pkg/message"
	"github.com/for-hk/linkup-auth/internal/pkg/web"
	"github.com/for-hk/linkup-auth/internal/user"
)

type AuthService interface {
	SignUp(ctx context.Context, creds Credentials) (string, error)
	SignIn(ctx context.Context, creds Credentials) (string, error)
	ForgotPassword(ctx context.Context, creds Credentials) error
}

// Request is the JSON-API style envelope every authentication endpoint accepts.
type Request struct {
	Data RequestData `json:"data"`
}

type RequestData struct {
	Attributes Credentials `json:"attributes"`
}

func (r Request) LogValue() slog.Value {
	return slog.AnyValue(r.Data.Attributes)
}

type Handler struct {
	svc   AuthService
	users user.Service
}

func NewHandler(svc AuthService, users user.Service) *Handler {
	return &Handler{
		svc:   svc,
		users: users,
	}
}

func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[Request](r.Context())
	if err != nil {
		web.RespondInvalidCredentials(w, err)
		return
	}

	signed, err := h.svc.SignUp(r.Context(), req.Data.Attributes)
	if err != nil {
		web.RespondInvalidCredentials(w, err)
		return
	}

	web.RespondToken(w, signed)
}

func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[Request](r.Context())
	if err != nil {
		web.RespondInvalidCredentials(w, err)
		return
	}

	signed, err := h.svc.SignIn(r.Context(), req.Data.Attributes)
	if err != nil {
		web.RespondInvalidCredentials(w, err)
		return
	}

	web.RespondToken(w, signed)
}

func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[Request](r.Context())
	if err != nil {
		web.RespondInvalidCredentials(w, err)
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Data.Attributes); err != nil {
		web.RespondInvalidCredentials(w, err)
		return
	}

	web.RespondMessage(w, http.StatusOK, message.PasswordWasReset)
}

type CurrentUserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CurrentUser returns the account asserted by the bearer token. RequireToken
// puts the verified user id into the request context.
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, err := UserFromContext(r.Context())
	if err != nil {
		web.RespondInvalidCredentials(w, err)
		return
	}

	u, err := h.users.FindUser(r.Context(), userID)
	if err != nil {
		web.RespondInvalidCredentials(w, err)
		return
	}

	data := &CurrentUserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	web.RespondData(w, http.StatusOK, data)
}
