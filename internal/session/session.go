// Package session holds the signed-in identity and bearer token, mirrored to
// the persistent key-value bridge. The invariant is that user and token are
// always set together and cleared together; consumers observe no partial
// state.
package session

import (
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/MoroniPereira/TIME-SHEET/internal/model"
	"github.com/MoroniPereira/TIME-SHEET/internal/storage"
)

// Store is the session store. Single-instance per process; construct once and
// inject into the guard and facades.
type Store struct {
	kv    storage.Store
	log   *zap.Logger
	user  *model.User
	token string
}

// New hydrates the session from the bridge. A malformed persisted user record
// degrades to signed-out: both keys are removed and a warning is logged, the
// parse error is not propagated.
func New(kv storage.Store, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{kv: kv, log: log}
	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	rawUser, okUser := s.kv.Get(storage.KeyUser)
	token, okToken := s.kv.Get(storage.KeyToken)
	if !okUser || !okToken {
		// Half a session is no session.
		if okUser || okToken {
			s.kv.Remove(storage.KeyUser)
			s.kv.Remove(storage.KeyToken)
		}
		return
	}

	var u model.User
	if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
		s.log.Warn("persisted user record is malformed, signing out", zap.Error(err))
		s.kv.Remove(storage.KeyUser)
		s.kv.Remove(storage.KeyToken)
		return
	}
	s.user = &u
	s.token = token
}

// SetUser stores the login result in memory and persists both keys. It never
// fails: a storage outage only costs persistence across restarts, the
// in-memory session stays valid.
func (s *Store) SetUser(res model.LoginResult) {
	u := res.User
	s.user = &u
	s.token = res.Token

	raw, err := json.Marshal(res.User)
	if err != nil {
		s.log.Warn("marshal user for persistence", zap.Error(err))
		return
	}
	s.kv.Set(storage.KeyUser, string(raw))
	s.kv.Set(storage.KeyToken, res.Token)
}

// SetToken replaces only the credential, keeping the current user. Used by
// token refresh. A call without a signed-in user is ignored to preserve the
// both-or-neither invariant.
func (s *Store) SetToken(token string) {
	if s.user == nil {
		s.log.Warn("SetToken without a signed-in user ignored")
		return
	}
	s.token = token
	s.kv.Set(storage.KeyToken, token)
}

// Logout clears the session in memory and in the bridge.
func (s *Store) Logout() {
	s.user = nil
	s.token = ""
	s.kv.Remove(storage.KeyUser)
	s.kv.Remove(storage.KeyToken)
}

// IsAuthenticated reports whether a user is signed in. Recomputed on every
// read; the guard relies on seeing mutations immediately.
func (s *Store) IsAuthenticated() bool {
	return s.user != nil
}

// CurrentUser returns a copy of the signed-in user, or nil.
func (s *Store) CurrentUser() *model.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the current bearer token, empty when signed out.
func (s *Store) Token() string {
	return s.token
}

// TokenExpiresAt returns the expiry claim of the bearer token. The token is
// opaque to this client, but when it happens to be a JWT the claims are
// readable without the signing key. Returns false for non-JWT tokens or
// tokens without an exp claim.
func (s *Store) TokenExpiresAt() (time.Time, bool) {
	if s.token == "" {
		return time.Time{}, false
	}
	var claims jwt.RegisteredClaims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	if _, _, err := parser.ParseUnverified(s.token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// TokenExpired reports whether the token carries an exp claim in the past.
func (s *Store) TokenExpired() bool {
	exp, ok := s.TokenExpiresAt()
	return ok && time.Now().After(exp)
}
