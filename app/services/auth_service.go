// Package services holds the credential subsystem: registration,
// authentication, password changes and the persisted login session.
//
// Domain failures are returned as sentinel error values so callers can
// branch without exception machinery; storage failures never surface here
// at all (the store adapter is fail-soft).
package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jfcardenas/panapp/app/models"
	"github.com/jfcardenas/panapp/app/repositories"
	"github.com/jfcardenas/panapp/pkg/hash"
	"github.com/jfcardenas/panapp/pkg/kvstore"
	"github.com/jfcardenas/panapp/pkg/logger"
	"github.com/jfcardenas/panapp/pkg/token"
)

var (
	ErrMissingField      = errors.New("auth: username, password and name are required")
	ErrDuplicateUsername = errors.New("auth: username already taken")
	ErrUserNotFound      = errors.New("auth: user not found")
	ErrWrongPassword     = errors.New("auth: current password is incorrect")
)

// MinPasswordLen is the policy callers are expected to enforce before
// calling Register or ChangePassword.
const MinPasswordLen = 6

// ProfileUpdate holds a partial profile edit; nil fields are left unchanged.
// The password digest is never touched through this path.
type ProfileUpdate struct {
	Name  *string
	Email *string
}

// AuthService manages the credential table and the session record.
type AuthService struct {
	store *kvstore.Adapter
}

func NewAuthService(store *kvstore.Adapter) *AuthService {
	return &AuthService{store: store}
}

func (s *AuthService) credentials() []models.Credential {
	var creds []models.Credential
	s.store.ReadInto(repositories.KeyCredentials, &creds)
	return creds
}

func findByUsername(creds []models.Credential, username string) (int, bool) {
	for i, c := range creds {
		if strings.EqualFold(c.Username, username) {
			return i, true
		}
	}
	return 0, false
}

// Register creates a new credential record and returns the public user
// view. Usernames are unique case-insensitively.
func (s *AuthService) Register(username, password, name, email string) (models.User, error) {
	if username == "" || password == "" || name == "" {
		return models.User{}, ErrMissingField
	}

	creds := s.credentials()
	if _, ok := findByUsername(creds, username); ok {
		return models.User{}, ErrDuplicateUsername
	}

	cred := models.Credential{
		User: models.User{
			ID:        uuid.NewString(),
			Username:  username,
			Name:      name,
			Email:     email,
			CreatedAt: time.Now(),
		},
		PasswordHash: hash.Password(password),
	}

	s.store.Write(repositories.KeyCredentials, append(creds, cred))
	logger.Info("auth: user registered", "username", username)
	return cred.Public(), nil
}

// Authenticate looks up the username case-insensitively and compares
// password digests. Returns the public user view on match.
func (s *AuthService) Authenticate(username, password string) (models.User, bool) {
	creds := s.credentials()
	i, ok := findByUsername(creds, username)
	if !ok {
		return models.User{}, false
	}
	if !hash.Verify(creds[i].PasswordHash, password) {
		return models.User{}, false
	}
	return creds[i].Public(), true
}

// ChangePassword replaces the stored digest after verifying the current
// password. The minimum-length policy is the caller's job.
func (s *AuthService) ChangePassword(userID, currentPassword, newPassword string) error {
	creds := s.credentials()
	for i := range creds {
		if creds[i].ID != userID {
			continue
		}
		if !hash.Verify(creds[i].PasswordHash, currentPassword) {
			return ErrWrongPassword
		}
		creds[i].PasswordHash = hash.Password(newPassword)
		s.store.Write(repositories.KeyCredentials, creds)
		return nil
	}
	return ErrUserNotFound
}

// UpdateProfile merges non-credential fields into the stored record.
// Unknown ids are a silent no-op, mirroring the entity repositories.
func (s *AuthService) UpdateProfile(userID string, updates ProfileUpdate) (models.User, bool) {
	creds := s.credentials()
	for i := range creds {
		if creds[i].ID != userID {
			continue
		}
		if updates.Name != nil {
			creds[i].Name = *updates.Name
		}
		if updates.Email != nil {
			creds[i].Email = *updates.Email
		}
		s.store.Write(repositories.KeyCredentials, creds)
		return creds[i].Public(), true
	}
	return models.User{}, false
}

// ─── Session ──────────────────────────────────────────────────────────────────

// SaveSession persists user as the logged-in account, together with a
// signed token bounding the session lifetime.
func (s *AuthService) SaveSession(user models.User) {
	t, err := token.Generate(user.ID, user.Username)
	if err != nil {
		// Still remember the login for the running process; it just will
		// not survive a restart.
		logger.Warn("auth: session token", "error", err)
	}
	s.store.Write(repositories.KeySession, models.Session{User: user, Token: t})
}

// CurrentUser returns the persisted logged-in user, if any. An absent
// record, or one whose token no longer validates, means logged out.
func (s *AuthService) CurrentUser() (models.User, bool) {
	var sess models.Session
	if !s.store.ReadInto(repositories.KeySession, &sess) {
		return models.User{}, false
	}
	if _, err := token.Validate(sess.Token); err != nil {
		logger.Debug("auth: stale session", "error", err)
		return models.User{}, false
	}
	return sess.User, true
}

// ClearSession removes the persisted login (logout).
func (s *AuthService) ClearSession() {
	s.store.Remove(repositories.KeySession)
}
