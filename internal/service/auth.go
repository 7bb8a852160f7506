// Package service contains the facades that translate domain calls into API
// requests: authentication and employee management.
package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/MoroniPereira/TIME-SHEET/internal/model"
)

// Transport is the HTTP client surface the facades depend on. api.Client
// implements it; tests substitute fakes.
type Transport interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Session is the session-store surface the auth facade writes to.
type Session interface {
	SetUser(res model.LoginResult)
	SetToken(token string)
	Logout()
}

// AuthService defines authentication operations against the backend.
type AuthService interface {
	// Login authenticates and, on success, pushes the result into the session.
	Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error)
	// Logout clears the session; the remote call is best-effort.
	Logout(ctx context.Context) error
	// Validate asks the backend whether the current token is still accepted.
	Validate(ctx context.Context) (bool, error)
	// Refresh exchanges the current token for a fresh one.
	Refresh(ctx context.Context) (string, error)
	// ChangePassword updates the signed-in user's password.
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	// ForgotPassword requests a reset mail for the given address.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword sets a new password using a reset token.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type AuthServiceImpl struct {
	api     Transport
	session Session
	log     *zap.Logger
}

// NewAuthService constructs the auth facade.
func NewAuthService(api Transport, session Session, log *zap.Logger) *AuthServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &AuthServiceImpl{api: api, session: session, log: log}
}

// Login posts the credentials and stores the returned identity and token.
func (s *AuthServiceImpl) Login(ctx context.Context, creds model.Credentials) (model.LoginResult, error) {
	if creds.Email == "" || creds.Password == "" {
		return model.LoginResult{}, errors.New("validation: empty email/password")
	}
	var res model.LoginResult
	if err := s.api.Post(ctx, "/auth/login", creds, &res); err != nil {
		s.log.Warn("login failed", zap.String("email", creds.Email), zap.Error(err))
		return model.LoginResult{}, err
	}
	s.session.SetUser(res)
	s.log.Info("logged in", zap.Int64("userID", res.User.ID))
	return res, nil
}

// Logout notifies the backend and clears the local session. A transport
// failure is logged and swallowed: the client ends up signed out either way.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := s.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		s.log.Warn("remote logout failed, clearing local session anyway", zap.Error(err))
	}
	s.session.Logout()
	return nil
}

// Validate returns the backend's verdict on the current token.
func (s *AuthServiceImpl) Validate(ctx context.Context) (bool, error) {
	var out struct {
		Valid bool `json:"valid"`
	}
	if err := s.api.Get(ctx, "/auth/validate", &out); err != nil {
		return false, err
	}
	return out.Valid, nil
}

// Refresh stores and returns the renewed token.
func (s *AuthServiceImpl) Refresh(ctx context.Context) (string, error) {
	var out struct {
		Token string `json:"token"`
	}
	if err := s.api.Post(ctx, "/auth/refresh", nil, &out); err != nil {
		s.log.Warn("token refresh failed", zap.Error(err))
		return "", err
	}
	s.session.SetToken(out.Token)
	return out.Token, nil
}

// ChangePassword updates the password of the signed-in user.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return errors.New("validation: empty password")
	}
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return s.api.Post(ctx, "/auth/change-password", body, nil)
}

// ForgotPassword triggers the password-recovery flow.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	if email == "" {
		return errors.New("validation: empty email")
	}
	return s.api.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, nil)
}

// ResetPassword completes the recovery flow with the mailed token.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return errors.New("validation: empty token/password")
	}
	body := map[string]string{
		"token":       token,
		"newPassword": newPassword,
	}
	return s.api.Post(ctx, "/auth/reset-password", body, nil)
}
