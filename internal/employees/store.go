// Package employees keeps the ordered in-memory list of employee records and
// enforces its invariants: required fields and a unique id per record.
//
// The store never touches persistence. Callers persist the result of All()
// after a mutation succeeds.
package employees

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/workplace/internal/common"
	"github.com/dmitrijs2005/workplace/internal/models"
)

// Store is the authoritative list of employees in insertion order.
// It is not safe for concurrent use; the session manager serialises access.
type Store struct {
	items []models.Employee
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Load replaces the contents of the store with snapshot. Rows that would
// break an invariant (missing required field, repeated id) are dropped; their
// number is returned so the caller can report them.
func (s *Store) Load(snapshot []models.Employee) (skipped int) {
	s.items = make([]models.Employee, 0, len(snapshot))
	for _, e := range snapshot {
		e = models.NewEmployee(e.ID, e.Name, e.Contact, e.Email)
		if validate(e) != nil || s.indexOf(e.ID) >= 0 {
			skipped++
			continue
		}
		s.items = append(s.items, e)
	}
	return skipped
}

// Add appends a new employee. It fails with common.ErrValidation when id,
// name or contact is empty after trimming and with common.ErrDuplicateID
// when the id is already taken.
func (s *Store) Add(id, name, contact, email string) (models.Employee, error) {
	e := models.NewEmployee(id, name, contact, email)
	if err := validate(e); err != nil {
		return models.Employee{}, err
	}
	if s.indexOf(e.ID) >= 0 {
		return models.Employee{}, fmt.Errorf("%w: %s", common.ErrDuplicateID, e.ID)
	}
	s.items = append(s.items, e)
	return e, nil
}

// Update replaces every field of the employee with the given id, keeping its
// position. It fails with common.ErrValidation under the same rules as Add
// and with common.ErrNotFound when no such employee exists.
func (s *Store) Update(id, name, contact, email string) (models.Employee, error) {
	e := models.NewEmployee(id, name, contact, email)
	if err := validate(e); err != nil {
		return models.Employee{}, err
	}
	i := s.indexOf(e.ID)
	if i < 0 {
		return models.Employee{}, fmt.Errorf("employee %s: %w", e.ID, common.ErrNotFound)
	}
	s.items[i] = e
	return e, nil
}

// Remove deletes the employee with the given id, or returns
// common.ErrNotFound. Confirmation is the caller's job.
func (s *Store) Remove(id string) error {
	id = strings.TrimSpace(id)
	i := s.indexOf(id)
	if i < 0 {
		return fmt.Errorf("employee %s: %w", id, common.ErrNotFound)
	}
	s.items = slices.Delete(s.items, i, i+1)
	return nil
}

// Get returns the employee with the given id.
func (s *Store) Get(id string) (models.Employee, bool) {
	i := s.indexOf(strings.TrimSpace(id))
	if i < 0 {
		return models.Employee{}, false
	}
	return s.items[i], true
}

// All returns a copy of the list in insertion order.
func (s *Store) All() []models.Employee {
	out := make([]models.Employee, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of employees.
func (s *Store) Count() int {
	return len(s.items)
}

// Filter returns, in insertion order, the employees matching every non-empty
// field of c. Matching is a case-insensitive substring test.
func (s *Store) Filter(c models.Criteria) []models.Employee {
	id := strings.ToLower(c.ID)
	name := strings.ToLower(c.Name)
	contact := strings.ToLower(c.Contact)
	email := strings.ToLower(c.Email)

	out := make([]models.Employee, 0, len(s.items))
	for _, e := range s.items {
		if contains(e.ID, id) && contains(e.Name, name) &&
			contains(e.Contact, contact) && contains(e.Email, email) {
			out = append(out, e)
		}
	}
	return out
}

// Search matches a single query against id, name, contact and email and
// keeps employees where any of them contains it. An empty query returns
// everything.
func (s *Store) Search(query string) []models.Employee {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]models.Employee, 0, len(s.items))
	for _, e := range s.items {
		if q == "" ||
			strings.Contains(strings.ToLower(e.ID), q) ||
			strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Contact), q) ||
			(e.Email != "" && strings.Contains(strings.ToLower(e.Email), q)) {
			out = append(out, e)
		}
	}
	return out
}

func (s *Store) indexOf(id string) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

// contains reports whether value holds needle; needle must already be lower-case.
// An empty needle matches anything.
func contains(value, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), needle)
}

func validate(e models.Employee) error {
	switch {
	case e.ID == "":
		return fmt.Errorf("%w: id", common.ErrValidation)
	case e.Name == "":
		return fmt.Errorf("%w: name", common.ErrValidation)
	case e.Contact == "":
		return fmt.Errorf("%w: contact", common.ErrValidation)
	}
	return nil
}
