// Package app holds the session-scoped state of the application: the
// employee and user stores, the logged-in identity and the theme flag.
//
// A Manager is created once at start and handed to the UI layer; the stores
// themselves never persist anything, the Manager writes the affected key
// after each successful mutation.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/workplace/internal/common"
	"github.com/dmitrijs2005/workplace/internal/employees"
	"github.com/dmitrijs2005/workplace/internal/logging"
	"github.com/dmitrijs2005/workplace/internal/models"
	"github.com/dmitrijs2005/workplace/internal/storage"
	"github.com/dmitrijs2005/workplace/internal/users"
)

// Manager owns all mutable application state. Its methods are safe for
// concurrent use, since debounced searches run on timer goroutines.
type Manager struct {
	mu        sync.Mutex
	kv        storage.Repository
	log       logging.Logger
	employees *employees.Store
	users     *users.Store
	current   *models.Identity
	darkMode  bool
}

// NewManager returns a Manager over kv with empty stores. Call Load to
// restore persisted state.
func NewManager(kv storage.Repository, log logging.Logger, opts ...users.Option) *Manager {
	return &Manager{
		kv:        kv,
		log:       log,
		employees: employees.NewStore(),
		users:     users.NewStore(opts...),
	}
}

// Load restores employees, users, the session and the theme from the store.
// Absent keys leave the defaults in place.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var list []models.Employee
	if err := m.getJSON(ctx, common.EmployeesKey, &list); err != nil {
		return err
	}
	if skipped := m.employees.Load(list); skipped > 0 {
		m.log.Warn(ctx, "dropped invalid employee records", "count", skipped)
	}

	var accounts []models.User
	if err := m.getJSON(ctx, common.UsersKey, &accounts); err != nil {
		return err
	}
	if skipped := m.users.Load(accounts); skipped > 0 {
		m.log.Warn(ctx, "dropped duplicate user records", "count", skipped)
	}

	var current *models.Identity
	if err := m.getJSON(ctx, common.CurrentUserKey, &current); err != nil {
		return err
	}
	m.current = current

	raw, err := m.kv.Get(ctx, common.DarkModeKey)
	switch {
	case errors.Is(err, storage.ErrNotFound):
	case err != nil:
		return fmt.Errorf("failed to load %s: %w", common.DarkModeKey, err)
	default:
		m.darkMode = raw == "true"
	}

	m.log.Info(ctx, "state loaded",
		"employees", m.employees.Count(), "users", m.users.Count(), "logged_in", m.current != nil)
	return nil
}

// Save writes every key in a single batch.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.kv.Batch(ctx, func(ctx context.Context, kv storage.KV) error {
		if err := setJSON(ctx, kv, common.EmployeesKey, m.employees.All()); err != nil {
			return err
		}
		if err := setJSON(ctx, kv, common.UsersKey, m.users.Registered()); err != nil {
			return err
		}
		if err := writeSession(ctx, kv, m.current); err != nil {
			return err
		}
		return kv.Set(ctx, common.DarkModeKey, strconv.FormatBool(m.darkMode))
	})
}

// Register creates an account and persists the user list.
func (m *Manager) Register(ctx context.Context, fullName, email, password, role string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	prev := m.users.Registered()
	u, err := m.users.Register(fullName, email, password, role)
	if err != nil {
		return models.User{}, err
	}
	if err := setJSON(ctx, m.kv, common.UsersKey, m.users.Registered()); err != nil {
		m.users.Load(prev)
		return models.User{}, err
	}

	m.log.Info(ctx, "user registered", "email", u.Email, "role", u.Role)
	return u, nil
}

// Login checks the credentials, starts a session and persists it.
func (m *Manager) Login(ctx context.Context, email, password string) (models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.users.Authenticate(email, password)
	if err != nil {
		m.log.Warn(ctx, "login failed", "email", email)
		return models.Identity{}, err
	}

	id := u.Identity()
	if err := writeSession(ctx, m.kv, &id); err != nil {
		return models.Identity{}, err
	}
	m.current = &id

	m.log.Info(ctx, "user logged in", "email", id.Email, "role", id.Role)
	return id, nil
}

// Logout ends the session and removes it from the store.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := writeSession(ctx, m.kv, nil); err != nil {
		return err
	}
	if m.current != nil {
		m.log.Info(ctx, "user logged out", "email", m.current.Email)
	}
	m.current = nil
	return nil
}

// CurrentUser returns the logged-in identity, if any.
func (m *Manager) CurrentUser() (models.Identity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return models.Identity{}, false
	}
	return *m.current, true
}

// IsLoggedIn reports whether a session is active.
func (m *Manager) IsLoggedIn() bool {
	_, ok := m.CurrentUser()
	return ok
}

// AddEmployee validates and appends a new employee, then persists the list.
func (m *Manager) AddEmployee(ctx context.Context, id, name, contact, email string) (models.Employee, error) {
	return m.mutateEmployees(ctx, "employee added", func(s *employees.Store) (models.Employee, error) {
		return s.Add(id, name, contact, email)
	})
}

// UpdateEmployee replaces the employee with the given id, then persists the list.
func (m *Manager) UpdateEmployee(ctx context.Context, id, name, contact, email string) (models.Employee, error) {
	return m.mutateEmployees(ctx, "employee updated", func(s *employees.Store) (models.Employee, error) {
		return s.Update(id, name, contact, email)
	})
}

// RemoveEmployee deletes the employee with the given id, then persists the
// list. Asking the user for confirmation is up to the caller.
func (m *Manager) RemoveEmployee(ctx context.Context, id string) error {
	_, err := m.mutateEmployees(ctx, "employee removed", func(s *employees.Store) (models.Employee, error) {
		e, _ := s.Get(id)
		return e, s.Remove(id)
	})
	return err
}

// mutateEmployees applies fn and persists the result. When persisting fails
// the previous list is restored, so the call has no effect.
func (m *Manager) mutateEmployees(
	ctx context.Context,
	event string,
	fn func(s *employees.Store) (models.Employee, error),
) (models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current == nil {
		return models.Employee{}, common.ErrNotLoggedIn
	}

	prev := m.employees.All()
	e, err := fn(m.employees)
	if err != nil {
		return models.Employee{}, err
	}
	if err := setJSON(ctx, m.kv, common.EmployeesKey, m.employees.All()); err != nil {
		m.employees.Load(prev)
		return models.Employee{}, err
	}

	m.log.Info(ctx, event, "id", e.ID, "count", m.employees.Count())
	return e, nil
}

// Employee returns the employee with the given id.
func (m *Manager) Employee(id string) (models.Employee, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.employees.Get(id)
}

// Employees returns every employee in insertion order.
func (m *Manager) Employees() []models.Employee {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.employees.All()
}

// Count returns the number of employees.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.employees.Count()
}

// Filter returns the employees matching every non-empty field of c.
func (m *Manager) Filter(c models.Criteria) []models.Employee {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.employees.Filter(c)
}

// Search returns the employees where any field contains query.
func (m *Manager) Search(query string) []models.Employee {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.employees.Search(query)
}

// DarkMode reports the theme flag.
func (m *Manager) DarkMode() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.darkMode
}

// ToggleTheme flips the theme flag, persists it and returns the new value.
func (m *Manager) ToggleTheme(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := !m.darkMode
	if err := m.kv.Set(ctx, common.DarkModeKey, strconv.FormatBool(next)); err != nil {
		return m.darkMode, err
	}
	m.darkMode = next
	return next, nil
}

// getJSON decodes key into dst, leaving dst untouched when the key is absent.
func (m *Manager) getJSON(ctx context.Context, key string, dst any) error {
	raw, err := m.kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

func setJSON(ctx context.Context, kv storage.KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := kv.Set(ctx, key, string(b)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// writeSession stores id under the current-user key, or removes the key
// when id is nil.
func writeSession(ctx context.Context, kv storage.KV, id *models.Identity) error {
	if id == nil {
		if err := kv.Delete(ctx, common.CurrentUserKey); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}
	return setJSON(ctx, kv, common.CurrentUserKey, id)
}
