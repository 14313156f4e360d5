// Package session holds the authenticated user and bearer token for the
// running console, persisted across invocations.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/openpos/poscon/internal/models"
	"github.com/openpos/poscon/internal/storage"
)

// Storage keys. The token and user are persisted separately; a read that
// finds one without the other is treated as corruption.
const (
	keyToken               = "token"
	keyUser                = "user"
	keyPendingOrganization = "pending_organizations"
)

// ErrNotAuthenticated is returned when an operation needs a session and
// none is present.
var ErrNotAuthenticated = errors.New("not authenticated")

// Store manages the persisted session. A session is either fully present
// (token and user) or fully absent; readers never observe a partial pair.
type Store struct {
	kv storage.KV

	token   string
	user    *models.AuthenticatedUser
	pending []models.UserOrganizationOption
}

// New creates a session store backed by kv and restores any persisted
// session. Corrupted state (a token without a user, a user without a token,
// or an unparseable user) is cleared rather than surfaced as an error.
func New(kv storage.KV) (*Store, error) {
	s := &Store{kv: kv}

	if err := s.restore(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Store) restore() error {
	tokenData, hasToken, err := s.kv.Get(keyToken)
	if err != nil {
		return fmt.Errorf("failed to read session token: %w", err)
	}
	userData, hasUser, err := s.kv.Get(keyUser)
	if err != nil {
		return fmt.Errorf("failed to read session user: %w", err)
	}

	if !hasToken && !hasUser {
		return nil
	}

	if hasToken != hasUser {
		log.Warn().Msg("partial session state found, clearing")
		return s.Clear()
	}

	var user models.AuthenticatedUser
	if err := json.Unmarshal(userData, &user); err != nil {
		log.Warn().Err(err).Msg("stored session user is unreadable, clearing")
		return s.Clear()
	}

	token := string(tokenData)
	if expired(token) {
		log.Info().Msg("stored session token has expired, clearing")
		return s.Clear()
	}

	s.token = token
	s.user = &user

	if pendingData, ok, err := s.kv.Get(keyPendingOrganization); err == nil && ok {
		var pending []models.UserOrganizationOption
		if err := json.Unmarshal(pendingData, &pending); err == nil {
			s.pending = pending
		}
	}

	log.Debug().Str("username", user.Username).Msg("session restored")
	return nil
}

// expired reports whether token is a JWT whose expiry has passed. Opaque
// tokens (anything that does not parse as a JWT) are never considered
// expired; their validity is the service's call.
func expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}

// GetCurrentUser returns the authenticated user, or nil when logged out.
func (s *Store) GetCurrentUser() *models.AuthenticatedUser {
	return s.user
}

// Token returns the bearer token, or the empty string when logged out.
func (s *Store) Token() string {
	return s.token
}

// IsAuthenticated reports whether a full token and user pair is present.
func (s *Store) IsAuthenticated() bool {
	return s.token != "" && s.user != nil
}

// HasPermission reports whether the current user holds permission p.
// Global admins satisfy every permission check.
func (s *Store) HasPermission(p string) bool {
	if s.user == nil {
		return false
	}
	if s.user.IsGlobalAdmin {
		return true
	}
	return slices.Contains(s.user.Permissions, p)
}

// HasRole reports whether the current user holds role r. Global admins
// satisfy every role check.
func (s *Store) HasRole(r string) bool {
	if s.user == nil {
		return false
	}
	if s.user.IsGlobalAdmin {
		return true
	}
	return slices.Contains(s.user.Roles, r)
}

// TokenExpiry returns the expiry of the stored token when it is a JWT
// carrying an exp claim. The second return value is false for opaque
// tokens or when logged out.
func (s *Store) TokenExpiry() (time.Time, bool) {
	if s.token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// SetSession persists token and user together and updates the in-memory
// session. On a persistence failure the store is cleared so readers never
// see a half-written pair.
func (s *Store) SetSession(token string, user models.AuthenticatedUser) error {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session user: %w", err)
	}

	if err := s.kv.Set(keyUser, userData); err != nil {
		s.forceClear()
		return fmt.Errorf("failed to persist session user: %w", err)
	}
	if err := s.kv.Set(keyToken, []byte(token)); err != nil {
		s.forceClear()
		return fmt.Errorf("failed to persist session token: %w", err)
	}

	s.token = token
	s.user = &user

	log.Debug().Str("username", user.Username).Msg("session stored")
	return nil
}

// SetPendingOrganizations persists the transient tenant choices offered
// mid-login.
func (s *Store) SetPendingOrganizations(orgs []models.UserOrganizationOption) error {
	data, err := json.Marshal(orgs)
	if err != nil {
		return fmt.Errorf("failed to encode pending organizations: %w", err)
	}
	if err := s.kv.Set(keyPendingOrganization, data); err != nil {
		return fmt.Errorf("failed to persist pending organizations: %w", err)
	}
	s.pending = orgs
	return nil
}

// PendingOrganizations returns the tenant choices held since login, or nil.
func (s *Store) PendingOrganizations() []models.UserOrganizationOption {
	return s.pending
}

// ClearPendingOrganizations drops the holding area once a tenant has been
// chosen.
func (s *Store) ClearPendingOrganizations() error {
	if err := s.kv.Delete(keyPendingOrganization); err != nil {
		return err
	}
	s.pending = nil
	return nil
}

// Clear removes the token, user, and pending-organizations holding area
// from memory and storage.
func (s *Store) Clear() error {
	var firstErr error
	for _, key := range []string{keyToken, keyUser, keyPendingOrganization} {
		if err := s.kv.Delete(key); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.forceClear()

	if firstErr != nil {
		return fmt.Errorf("failed to clear session: %w", firstErr)
	}
	return nil
}

func (s *Store) forceClear() {
	s.token = ""
	s.user = nil
	s.pending = nil
}
