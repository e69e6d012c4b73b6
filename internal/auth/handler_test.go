package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/for-hk/linkup-auth/internal/auth"
	"github.com/for-hk/linkup-auth/internal/pkg/message"
	"github.com/for-hk/linkup-auth/internal/pkg/web"
	"github.com/for-hk/linkup-auth/internal/user"
)

const wantErrorBody = `{"error":{"user_authentication":["invalid credentials"]}}`

func newRequestWithParams(t *testing.T, target string, creds auth.Credentials) *http.Request {
	t.Helper()

	params := auth.Request{Data: auth.RequestData{Attributes: creds}}
	ctx := web.NewContextWithParams(context.Background(), params)
	return httptest.NewRequestWithContext(ctx, http.MethodPost, target, http.NoBody)
}

func assertErrorBody(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	var body web.ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}

	raw, err := json.Marshal(&body)
	if err != nil {
		t.Fatal(err)
	}

	if got := string(raw); got != wantErrorBody {
		t.Errorf("error body = %s, want: %s", got, wantErrorBody)
	}
}

func TestHandler_SignUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		creds      auth.Credentials
		signUpFunc func(ctx context.Context, creds auth.Credentials) (string, error)
		code       int
		token      string
	}{
		{"Successful sign up",
			auth.Credentials{Name: "John Doe", Email: "john@doe.com", Password: "password"},
			func(ctx context.Context, creds auth.Credentials) (string, error) {
				return "signed-token", nil
			},
			http.StatusOK,
			"signed-token",
		},
		{"Invalid credentials",
			auth.Credentials{},
			func(ctx context.Context, creds auth.Credentials) (string, error) {
				return "", auth.ErrInvalidCredentials
			},
			http.StatusUnauthorized,
			"",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{SignUpFunc: tc.signUpFunc}
			handler := auth.NewHandler(svc, &user.StubService{})

			req := newRequestWithParams(t, "/sign_up", tc.creds)
			rec := httptest.NewRecorder()
			handler.SignUp(rec, req)

			if gotStatus := rec.Code; gotStatus != tc.code {
				t.Errorf(message.FmtErrStatusCode, gotStatus, tc.code)
			}

			if tc.token != "" {
				var body web.TokenResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatal(err)
				}
				if body.AuthToken != tc.token {
					t.Errorf("body.AuthToken = %q, want: %q", body.AuthToken, tc.token)
				}
			} else {
				assertErrorBody(t, rec)
			}
		})
	}
}

func TestHandler_SignIn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		signInFunc func(ctx context.Context, creds auth.Credentials) (string, error)
		code       int
		token      string
	}{
		{"Successful sign in",
			func(ctx context.Context, creds auth.Credentials) (string, error) {
				return "signed-token", nil
			},
			http.StatusOK,
			"signed-token",
		},
		{"Invalid credentials",
			func(ctx context.Context, creds auth.Credentials) (string, error) {
				return "", auth.ErrInvalidCredentials
			},
			http.StatusUnauthorized,
			"",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{SignInFunc: tc.signInFunc}
			handler := auth.NewHandler(svc, &user.StubService{})

			req := newRequestWithParams(t, "/sign_in", auth.Credentials{Email: "john@doe.com", Password: "password"})
			rec := httptest.NewRecorder()
			handler.SignIn(rec, req)

			if gotStatus := rec.Code; gotStatus != tc.code {
				t.Errorf(message.FmtErrStatusCode, gotStatus, tc.code)
			}

			if tc.token != "" {
				var body web.TokenResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatal(err)
				}
				if body.AuthToken != tc.token {
					t.Errorf("body.AuthToken = %q, want: %q", body.AuthToken, tc.token)
				}
			} else {
				assertErrorBody(t, rec)
			}
		})
	}
}

func TestHandler_SignUpMissingParams(t *testing.T) {
	t.Parallel()

	handler := auth.NewHandler(&auth.StubService{}, &user.StubService{})

	// No decoded payload in the context.
	req := httptest.NewRequest(http.MethodPost, "/sign_up", http.NoBody)
	rec := httptest.NewRecorder()
	handler.SignUp(rec, req)

	if gotStatus, wantStatus := rec.Code, http.StatusUnauthorized; gotStatus != wantStatus {
		t.Errorf(message.FmtErrStatusCode, gotStatus, wantStatus)
	}
	assertErrorBody(t, rec)
}

func TestHandler_ForgotPassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		forgotFunc func(ctx context.Context, creds auth.Credentials) error
		code       int
	}{
		{"Password reset", func(ctx context.Context, creds auth.Credentials) error { return nil }, http.StatusOK},
		{"Unknown email", func(ctx context.Context, creds auth.Credentials) error { return auth.ErrInvalidCredentials }, http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := &auth.StubService{ForgotPasswordFunc: tc.forgotFunc}
			handler := auth.NewHandler(svc, &user.StubService{})

			req := newRequestWithParams(t, "/forgot_password", auth.Credentials{Email: "john@doe.com", Password: "some_new_password"})
			rec := httptest.NewRecorder()
			handler.ForgotPassword(rec, req)

			if gotStatus := rec.Code; gotStatus != tc.code {
				t.Errorf(message.FmtErrStatusCode, gotStatus, tc.code)
			}

			if tc.code == http.StatusOK {
				var body web.MessageResponse
				if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
					t.Fatal(err)
				}
				if body.Message != message.PasswordWasReset {
					t.Errorf("body.Message = %q, want: %q", body.Message, message.PasswordWasReset)
				}
			} else {
				assertErrorBody(t, rec)
			}
		})
	}
}

func TestHandler_CurrentUser(t *testing.T) {
	t.Parallel()

	now := time.Now().Truncate(0)
	users := &user.StubService{
		FindUserFunc: func(ctx context.Context, id int64) (*user.User, error) {
			return &user.User{
				ID:        id,
				Name:      "John Doe",
				Email:     "john@doe.com",
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		},
	}
	handler := auth.NewHandler(&auth.StubService{}, users)

	ctx := auth.ContextWithUser(context.Background(), 7)
	req := httptest.NewRequestWithContext(ctx, http.MethodGet, "/me", http.NoBody)
	rec := httptest.NewRecorder()
	handler.CurrentUser(rec, req)

	if gotStatus, wantStatus := rec.Code, http.StatusOK; gotStatus != wantStatus {
		t.Errorf(message.FmtErrStatusCode, gotStatus, wantStatus)
	}

	var body web.OKResponse[*auth.CurrentUserResponse]
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if got, want := body.Data.ID, int64(7); got != want {
		t.Errorf("body.Data.ID = %d, want: %d", got, want)
	}
	if got, want := body.Data.Email, "john@doe.com"; got != want {
		t.Errorf("body.Data.Email = %q, want: %q", got, want)
	}
}

func TestHandler_CurrentUserNoToken(t *testing.T) {
	t.Parallel()

	handler := auth.NewHandler(&auth.StubService{}, &user.StubService{})

	req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
	rec := httptest.NewRecorder()
	handler.CurrentUser(rec, req)

	if gotStatus, wantStatus := rec.Code, http.StatusUnauthorized; gotStatus != wantStatus {
		t.Errorf(message.FmtErrStatusCode, gotStatus, wantStatus)
	}
	assertErrorBody(t, rec)
}
