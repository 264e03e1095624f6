// Package users keeps registered accounts in memory and checks credentials.
//
// A new Store is seeded with the built-in administrator account, so logging
// in as admin goes through the same path as any registered user. The seeded
// account is not part of Registered() and therefore never persisted.
package users

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/workplace/internal/common"
	"github.com/dmitrijs2005/workplace/internal/models"
	"github.com/google/uuid"
)

// Built-in administrator credentials.
const (
	AdminEmail    = "admin@workplace.com"
	AdminPassword = "work123"
	AdminFullName = "Admin"
)

// Store is the list of accounts in registration order.
// It is not safe for concurrent use; the session manager serialises access.
type Store struct {
	seed  []models.User
	users []models.User
	now   func() time.Time
	newID func() (string, error)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides the generator of user ids.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Store) { s.newID = gen }
}

// WithoutAdmin skips seeding the built-in administrator.
func WithoutAdmin() Option {
	return func(s *Store) { s.seed = nil }
}

// NewStore returns a Store containing only the built-in administrator.
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: newTimeOrderedID,
	}
	s.seed = []models.User{{
		ID:       "admin",
		FullName: AdminFullName,
		Email:    AdminEmail,
		Password: AdminPassword,
		Role:     models.RoleAdmin,
	}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// newTimeOrderedID returns a UUIDv7, whose leading bits are a millisecond
// timestamp.
func newTimeOrderedID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Load replaces the registered users with snapshot. Entries repeating an
// email already present (including the administrator's) are dropped and
// counted in the result.
func (s *Store) Load(snapshot []models.User) (skipped int) {
	s.users = make([]models.User, 0, len(snapshot))
	for _, u := range snapshot {
		if _, ok := s.findByEmail(u.Email); ok {
			skipped++
			continue
		}
		s.users = append(s.users, u)
	}
	return skipped
}

// Register creates a new account. Full name and email are trimmed and
// required (common.ErrValidation). It fails with common.ErrWeakPassword when
// the password has fewer than common.MinPasswordLength characters and with
// common.ErrDuplicateEmail when the email is taken. Emails are compared
// exactly, without case folding. An empty role means models.RoleEmployee.
func (s *Store) Register(fullName, email, password, role string) (models.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(email)
	if fullName == "" || email == "" {
		return models.User{}, common.ErrValidation
	}
	if utf8.RuneCountInString(password) < common.MinPasswordLength {
		return models.User{}, common.ErrWeakPassword
	}
	if role = strings.TrimSpace(role); role == "" {
		role = models.RoleEmployee
	}
	if _, ok := s.findByEmail(email); ok {
		return models.User{}, fmt.Errorf("%w: %s", common.ErrDuplicateEmail, email)
	}

	id, err := s.newID()
	if err != nil {
		return models.User{}, fmt.Errorf("failed to generate user id: %w", err)
	}

	u := models.User{
		ID:        id,
		FullName:  fullName,
		Email:     email,
		Password:  password,
		Role:      role,
		CreatedAt: s.now().UTC(),
	}
	s.users = append(s.users, u)
	return u, nil
}

// Authenticate returns the first account whose email and password both match
// exactly, or common.ErrInvalidCredentials.
func (s *Store) Authenticate(email, password string) (models.User, error) {
	for _, list := range [][]models.User{s.seed, s.users} {
		for _, u := range list {
			if u.Email == email && u.Password == password {
				return u, nil
			}
		}
	}
	return models.User{}, common.ErrInvalidCredentials
}

// Registered returns a copy of the accounts created through Register or Load,
// without the built-in administrator.
func (s *Store) Registered() []models.User {
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out
}

// Count returns the number of registered accounts, administrator excluded.
func (s *Store) Count() int {
	return len(s.users)
}

func (s *Store) findByEmail(email string) (models.User, bool) {
	for _, list := range [][]models.User{s.seed, s.users} {
		for _, u := range list {
			if u.Email == email {
				return u, true
			}
		}
	}
	return models.User{}, false
}
